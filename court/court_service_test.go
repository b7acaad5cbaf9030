package court_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/court"
	ct_mocks "github.com/nikoleta-vukajlovic/padel-platz-backend/court/mocks"
	"github.com/nikoleta-vukajlovic/padel-platz-backend/schedule"
)

func validCourt() court.Court {
	return court.Court{
		Name:        "Center Court",
		Description: "Our showpiece",
		Category:    court.CategoryIndoor,
		Features:    []string{"panoramic glass"},
		PricingPeriods: []schedule.PricingPeriod{
			{Start: 7 * 60, End: 16 * 60, PricePerHalfHour: 10},
			{Start: 16 * 60, End: 23 * 60, PricePerHalfHour: 15},
		},
	}
}

func newDeps(t *testing.T) (*gomock.Controller, *ct_mocks.MockCourtRepository, *court.Service, context.Context) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := ct_mocks.NewMockCourtRepository(ctrl)
	return ctrl, repo, court.NewService(repo), context.Background()
}

func TestGetAllCourtsIsCached(t *testing.T) {
	ctrl, repo, svc, ctx := newDeps(t)
	defer ctrl.Finish()

	stored := []court.Court{validCourt()}
	repo.EXPECT().GetAllCourts(ctx).Return(stored, nil).Times(1)

	first, err := svc.GetAllCourts(ctx)
	require.NoError(t, err)

	second, err := svc.GetAllCourts(ctx)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestCreateCourt(t *testing.T) {

	t.Run("assigns an id and invalidates the cache", func(t *testing.T) {
		ctrl, repo, svc, ctx := newDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().GetAllCourts(ctx).Return([]court.Court{}, nil).Times(2)
		repo.EXPECT().InsertCourt(ctx, gomock.Any()).DoAndReturn(
			func(_ context.Context, c court.Court) (court.Court, error) { return c, nil }).Times(1)

		_, err := svc.GetAllCourts(ctx)
		require.NoError(t, err)

		inserted, err := svc.CreateCourt(ctx, validCourt())
		require.NoError(t, err)
		require.NotEmpty(t, inserted.ID)

		// second list hits the repository again
		_, err = svc.GetAllCourts(ctx)
		require.NoError(t, err)
	})

	t.Run("rejects a pricing schedule with a gap", func(t *testing.T) {
		ctrl, repo, svc, ctx := newDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().InsertCourt(gomock.Any(), gomock.Any()).Times(0)

		bad := validCourt()
		bad.PricingPeriods = []schedule.PricingPeriod{
			{Start: 7 * 60, End: 12 * 60, PricePerHalfHour: 10},
			{Start: 13 * 60, End: 23 * 60, PricePerHalfHour: 10},
		}

		_, err := svc.CreateCourt(ctx, bad)

		require.ErrorIs(t, err, schedule.ErrPricingGap)
	})

	t.Run("rejects an unknown category", func(t *testing.T) {
		ctrl, repo, svc, ctx := newDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().InsertCourt(gomock.Any(), gomock.Any()).Times(0)

		bad := validCourt()
		bad.Category = "rooftop"

		_, err := svc.CreateCourt(ctx, bad)

		require.ErrorIs(t, err, court.ErrInvalidCategory)
	})
}

func TestModifyCourt(t *testing.T) {

	t.Run("success", func(t *testing.T) {
		ctrl, repo, svc, ctx := newDeps(t)
		defer ctrl.Finish()

		updated := validCourt()
		updated.ID = "court-a"

		repo.EXPECT().UpdateCourt(ctx, updated).Return(nil).Times(1)

		require.NoError(t, svc.ModifyCourt(ctx, updated))
	})

	t.Run("missing court", func(t *testing.T) {
		ctrl, repo, svc, ctx := newDeps(t)
		defer ctrl.Finish()

		updated := validCourt()
		updated.ID = "missing"

		repo.EXPECT().UpdateCourt(ctx, updated).Return(court.ErrCourtNotFound).Times(1)

		require.ErrorIs(t, svc.ModifyCourt(ctx, updated), court.ErrCourtNotFound)
	})

	t.Run("invalid pricing never reaches the repository", func(t *testing.T) {
		ctrl, repo, svc, ctx := newDeps(t)
		defer ctrl.Finish()

		repo.EXPECT().UpdateCourt(gomock.Any(), gomock.Any()).Times(0)

		bad := validCourt()
		bad.ID = "court-a"
		bad.PricingPeriods = nil

		require.ErrorIs(t, svc.ModifyCourt(ctx, bad), schedule.ErrPricingGap)
	})
}

func TestRemoveCourt(t *testing.T) {
	ctrl, repo, svc, ctx := newDeps(t)
	defer ctrl.Finish()

	repo.EXPECT().DeleteCourt(ctx, "court-a").Return(nil).Times(1)

	require.NoError(t, svc.RemoveCourt(ctx, "court-a"))
}
