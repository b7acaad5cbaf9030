package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/schedule"
)

func clock(t *testing.T, s string) schedule.Clock {
	t.Helper()
	c, err := schedule.ParseClock(s)
	require.NoError(t, err)
	return c
}

func flatRate(price int) []schedule.PricingPeriod {
	return []schedule.PricingPeriod{
		{Start: schedule.DayOpen, End: schedule.DayClose, PricePerHalfHour: price},
	}
}

func TestPriceSinglePeriod(t *testing.T) {
	periods := flatRate(10)

	require.Equal(t, 20, schedule.Price(periods, clock(t, "09:00"), 1))
	require.Equal(t, 30, schedule.Price(periods, clock(t, "09:00"), 1.5))
	require.Equal(t, 40, schedule.Price(periods, clock(t, "09:00"), 2))
}

func TestPriceTieredPeriods(t *testing.T) {
	periods := []schedule.PricingPeriod{
		{Start: clock(t, "07:00"), End: clock(t, "16:00"), PricePerHalfHour: 10},
		{Start: clock(t, "16:00"), End: clock(t, "23:00"), PricePerHalfHour: 15},
	}

	// 15:30-16:00 at the day rate, 16:00-16:30 at the evening rate.
	require.Equal(t, 25, schedule.Price(periods, clock(t, "15:30"), 1))

	// entirely inside one tier
	require.Equal(t, 20, schedule.Price(periods, clock(t, "10:00"), 1))
	require.Equal(t, 30, schedule.Price(periods, clock(t, "20:00"), 1))
}

func TestPriceIsAdditiveOverConsecutiveIntervals(t *testing.T) {
	periods := []schedule.PricingPeriod{
		{Start: clock(t, "07:00"), End: clock(t, "12:00"), PricePerHalfHour: 8},
		{Start: clock(t, "12:00"), End: clock(t, "18:00"), PricePerHalfHour: 12},
		{Start: clock(t, "18:00"), End: clock(t, "23:00"), PricePerHalfHour: 20},
	}

	for _, start := range []string{"07:00", "11:00", "11:30", "17:00", "21:00"} {
		s := clock(t, start)
		whole := schedule.Price(periods, s, 2)
		split := schedule.Price(periods, s, 1) + schedule.Price(periods, s+60, 1)
		require.Equal(t, whole, split, "start %s", start)
	}
}

func TestPriceIgnoresSlotsOutsideBooking(t *testing.T) {
	// Expensive slice right after the booking must not leak into the total.
	periods := []schedule.PricingPeriod{
		{Start: clock(t, "07:00"), End: clock(t, "10:00"), PricePerHalfHour: 10},
		{Start: clock(t, "10:00"), End: clock(t, "23:00"), PricePerHalfHour: 1000},
	}

	require.Equal(t, 20, schedule.Price(periods, clock(t, "09:00"), 1))
}

func TestPriceUncoveredBoundaryCountsZero(t *testing.T) {
	periods := []schedule.PricingPeriod{
		{Start: clock(t, "07:00"), End: clock(t, "09:30"), PricePerHalfHour: 10},
		// gap 09:30-10:00
		{Start: clock(t, "10:00"), End: clock(t, "23:00"), PricePerHalfHour: 10},
	}

	require.Equal(t, 10, schedule.Price(periods, clock(t, "09:00"), 1))
}

func TestValidatePricingPeriods(t *testing.T) {
	cases := []struct {
		name    string
		periods []schedule.PricingPeriod
		wantErr bool
	}{
		{
			name:    "full day single period",
			periods: flatRate(10),
		},
		{
			name: "tiled tiers",
			periods: []schedule.PricingPeriod{
				{Start: 7 * 60, End: 16 * 60, PricePerHalfHour: 10},
				{Start: 16 * 60, End: 23 * 60, PricePerHalfHour: 15},
			},
		},
		{
			name:    "empty",
			periods: nil,
			wantErr: true,
		},
		{
			name: "starts late",
			periods: []schedule.PricingPeriod{
				{Start: 8 * 60, End: 23 * 60, PricePerHalfHour: 10},
			},
			wantErr: true,
		},
		{
			name: "gap in the middle",
			periods: []schedule.PricingPeriod{
				{Start: 7 * 60, End: 12 * 60, PricePerHalfHour: 10},
				{Start: 13 * 60, End: 23 * 60, PricePerHalfHour: 10},
			},
			wantErr: true,
		},
		{
			name: "overlapping tiers",
			periods: []schedule.PricingPeriod{
				{Start: 7 * 60, End: 16 * 60, PricePerHalfHour: 10},
				{Start: 15 * 60, End: 23 * 60, PricePerHalfHour: 15},
			},
			wantErr: true,
		},
		{
			name: "ends early",
			periods: []schedule.PricingPeriod{
				{Start: 7 * 60, End: 22 * 60, PricePerHalfHour: 10},
			},
			wantErr: true,
		},
		{
			name: "negative rate",
			periods: []schedule.PricingPeriod{
				{Start: 7 * 60, End: 23 * 60, PricePerHalfHour: -1},
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := schedule.ValidatePricingPeriods(tc.periods)

			if tc.wantErr {
				require.ErrorIs(t, err, schedule.ErrPricingGap)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
