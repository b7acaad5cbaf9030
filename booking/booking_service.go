package booking

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/auth"
	"github.com/nikoleta-vukajlovic/padel-platz-backend/court"
	"github.com/nikoleta-vukajlovic/padel-platz-backend/mailer"
	"github.com/nikoleta-vukajlovic/padel-platz-backend/schedule"
)

type BookingRepository interface {
	GetBookingsForDate(ctx context.Context, date string, all bool) ([]Booking, error)
	GetConfirmedBookingsForDate(ctx context.Context, date string) ([]Booking, error)
	GetBookingByID(ctx context.Context, id string) (Booking, error)
	GetBookingsPerUser(ctx context.Context, userID string) ([]Booking, error)
	GetRecentBookings(ctx context.Context, limit int) ([]Booking, error)
	InsertBooking(ctx context.Context, booking Booking) (Booking, error)
	SetBookingStatus(ctx context.Context, id string, status string) error
}

type CourtDirectory interface {
	GetAllCourts(ctx context.Context) ([]court.Court, error)
	FindCourtByID(ctx context.Context, id string) (court.Court, error)
}

type Service struct {
	repo   BookingRepository
	courts CourtDirectory
	mailer mailer.Mailer
	logger *slog.Logger
}

func NewService(repo BookingRepository, courts CourtDirectory, m mailer.Mailer) *Service {
	return &Service{
		repo:   repo,
		courts: courts,
		mailer: m,
		logger: slog.Default().With("component", "booking"),
	}
}

// AvailableSlots builds the day grid for one calendar date from a fresh read
// of that day's confirmed bookings.
func (s *Service) AvailableSlots(ctx context.Context, date string) ([]Slot, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidSelection, date)
	}

	courts, err := s.courts.GetAllCourts(ctx)

	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.GetConfirmedBookingsForDate(ctx, date)

	if err != nil {
		return nil, err
	}

	grid := schedule.GenerateSlots(reservations(bookings), courtIDs(courts))

	byID := make(map[string]court.Court, len(courts))
	for _, c := range courts {
		byID[c.ID] = c
	}

	slots := make([]Slot, 0, len(grid))

	for _, cell := range grid {
		free := make([]court.Court, 0, len(cell.FreeCourts))
		for _, id := range cell.FreeCourts {
			free = append(free, byID[id])
		}

		slots = append(slots, Slot{
			StartTime:       cell.Start,
			EndTime:         cell.End,
			IsAvailable:     cell.Available,
			AvailableCourts: free,
		})
	}

	return slots, nil
}

// AvailableCourts lists the courts with no confirmed booking overlapping
// [start, end) on the given date.
func (s *Service) AvailableCourts(ctx context.Context, date string, start, end schedule.Clock) ([]court.Court, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidSelection, date)
	}

	courts, err := s.courts.GetAllCourts(ctx)

	if err != nil {
		return nil, err
	}

	bookings, err := s.repo.GetConfirmedBookingsForDate(ctx, date)

	if err != nil {
		return nil, err
	}

	available := []court.Court{}

	for _, c := range courts {
		if !courtTaken(bookings, c.ID, start, end) {
			available = append(available, c)
		}
	}

	return available, nil
}

// MaxBookableDuration returns the longest bookable duration starting at start
// on the given date, in hours. With a court id it is restricted to that
// court's free runs (admin rebooking); without, any court counts.
func (s *Service) MaxBookableDuration(ctx context.Context, date string, start schedule.Clock, courtID string) (float64, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return 0, fmt.Errorf("%w: bad date %q", ErrInvalidSelection, date)
	}

	courts, err := s.courts.GetAllCourts(ctx)

	if err != nil {
		return 0, err
	}

	bookings, err := s.repo.GetConfirmedBookingsForDate(ctx, date)

	if err != nil {
		return 0, err
	}

	grid := schedule.GenerateSlots(reservations(bookings), courtIDs(courts))

	if courtID != "" {
		return schedule.MaxDurationForCourt(grid, start, courtID), nil
	}

	return schedule.MaxDuration(grid, start), nil
}

// CreateBooking validates the candidate, re-checks the requested interval
// against a fresh read, and commits through the repository's conditional
// insert. The price is always recomputed server side from the court's pricing
// schedule. A failed confirmation email never unwinds the booking.
func (s *Service) CreateBooking(ctx context.Context, candidate Booking) (Booking, error) {
	day, err := time.ParseInLocation(time.DateOnly, candidate.Date, time.Local)

	if err != nil {
		return Booking{}, fmt.Errorf("%w: bad date %q", ErrInvalidSelection, candidate.Date)
	}

	crt, err := s.courts.FindCourtByID(ctx, candidate.CourtID)

	if errors.Is(err, court.ErrCourtNotFound) {
		return Booking{}, fmt.Errorf("%w: unknown court %q", ErrInvalidSelection, candidate.CourtID)
	}

	if err != nil {
		return Booking{}, err
	}

	halfHours := int(candidate.End-candidate.Start) / schedule.SlotLength

	switch {
	case candidate.Start < schedule.DayOpen || candidate.End > schedule.DayClose:
		return Booking{}, fmt.Errorf("%w: outside operating hours", ErrInvalidSelection)
	case int(candidate.End-candidate.Start)%schedule.SlotLength != 0:
		return Booking{}, fmt.Errorf("%w: times must be half-hour aligned", ErrInvalidSelection)
	case halfHours < 2 || halfHours > 4:
		return Booking{}, fmt.Errorf("%w: duration must be 1, 1.5 or 2 hours", ErrInvalidSelection)
	case candidate.UserID == "" && candidate.ManagerID == "":
		return Booking{}, fmt.Errorf("%w: booking has no owner", ErrInvalidSelection)
	case candidate.Start.At(day).Before(time.Now()):
		return Booking{}, fmt.Errorf("%w: start time is in the past", ErrInvalidSelection)
	}

	candidate.Price = schedule.Price(crt.PricingPeriods, candidate.Start, float64(halfHours)/2)

	// Cheap re-check against a fresh read before touching the court-day lock.
	// The repository repeats it authoritatively inside the transaction.
	existing, err := s.repo.GetConfirmedBookingsForDate(ctx, candidate.Date)

	if err != nil {
		return Booking{}, err
	}

	if courtTaken(existing, candidate.CourtID, candidate.Start, candidate.End) {
		return Booking{}, ErrSlotUnavailable
	}

	candidate.ID = uuid.NewString()
	candidate.Status = StatusConfirmed

	inserted, err := s.repo.InsertBooking(ctx, candidate)

	if err != nil {
		return Booking{}, err
	}

	s.sendConfirmation(ctx, inserted, crt)

	return inserted, nil
}

func (s *Service) CancelBooking(ctx context.Context, id string, user auth.User) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.Status != StatusConfirmed {
		return ErrInvalidBookingState
	}

	if !user.Admin && booking.UserID != user.ID {
		return ErrNotAllowed
	}

	err = s.repo.SetBookingStatus(ctx, id, StatusCancelled)

	if err != nil {
		return fmt.Errorf("failed to cancel booking: %w", err)
	}

	return nil
}

func (s *Service) MarkNoShow(ctx context.Context, id string) error {
	booking, err := s.repo.GetBookingByID(ctx, id)

	if err != nil {
		return err
	}

	if booking.Status != StatusConfirmed {
		return ErrInvalidBookingState
	}

	day, err := time.ParseInLocation(time.DateOnly, booking.Date, time.Local)

	if err != nil {
		return fmt.Errorf("booking %v has malformed date %q: %w", id, booking.Date, err)
	}

	if booking.End.At(day).After(time.Now()) {
		return ErrBookingNotEnded
	}

	return s.repo.SetBookingStatus(ctx, id, StatusNoShow)
}

func (s *Service) FindBookingsForDate(ctx context.Context, date string, all bool) ([]Booking, error) {
	if _, err := time.Parse(time.DateOnly, date); err != nil {
		return nil, fmt.Errorf("%w: bad date %q", ErrInvalidSelection, date)
	}

	return s.repo.GetBookingsForDate(ctx, date, all)
}

func (s *Service) FindBookingsPerUser(ctx context.Context, userID string) ([]Booking, error) {
	return s.repo.GetBookingsPerUser(ctx, userID)
}

func (s *Service) FindRecentBookings(ctx context.Context, limit int) ([]Booking, error) {
	return s.repo.GetRecentBookings(ctx, limit)
}

func (s *Service) sendConfirmation(ctx context.Context, booking Booking, crt court.Court) {
	if booking.CustomerEmail == "" {
		return
	}

	email := mailer.BookingConfirmation(
		booking.CustomerEmail,
		crt.Name,
		booking.Date,
		booking.Start.String(),
		booking.End.String(),
		booking.Price,
	)

	if err := s.mailer.Send(ctx, email); err != nil {
		s.logger.Error("failed to send confirmation email", "bookingId", booking.ID, "err", err)
	}
}

func reservations(bookings []Booking) []schedule.Reservation {
	out := make([]schedule.Reservation, 0, len(bookings))

	for _, b := range bookings {
		out = append(out, schedule.Reservation{CourtID: b.CourtID, Start: b.Start, End: b.End})
	}

	return out
}

func courtIDs(courts []court.Court) []string {
	ids := make([]string, 0, len(courts))

	for _, c := range courts {
		ids = append(ids, c.ID)
	}

	return ids
}

func courtTaken(bookings []Booking, courtID string, start, end schedule.Clock) bool {
	for _, b := range bookings {
		if b.CourtID == courtID && schedule.Overlaps(start, end, b.Start, b.End) {
			return true
		}
	}

	return false
}
