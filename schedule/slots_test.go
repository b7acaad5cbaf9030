package schedule_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/schedule"
)

var twoCourts = []string{"court-a", "court-b"}

func findSlot(t *testing.T, slots []schedule.TimeSlot, start string) schedule.TimeSlot {
	t.Helper()
	for _, s := range slots {
		if s.Start.String() == start {
			return s
		}
	}
	t.Fatalf("no slot starting at %v", start)
	return schedule.TimeSlot{}
}

func TestGenerateSlotsEmptyDay(t *testing.T) {
	slots := schedule.GenerateSlots(nil, twoCourts)

	require.Len(t, slots, 32)
	require.Equal(t, schedule.DayOpen, slots[0].Start)
	require.Equal(t, schedule.DayClose, slots[len(slots)-1].End)

	for i, s := range slots {
		require.Equal(t, schedule.Clock(30), s.End-s.Start)
		require.True(t, s.Available)
		require.Equal(t, twoCourts, s.FreeCourts)

		if i > 0 {
			require.Equal(t, slots[i-1].End, s.Start, "grid must be contiguous")
		}
	}
}

func TestGenerateSlotsGridSizeIsBookingIndependent(t *testing.T) {
	reservations := []schedule.Reservation{
		{CourtID: "court-a", Start: 7 * 60, End: 23 * 60},
		{CourtID: "court-b", Start: 7 * 60, End: 23 * 60},
	}

	slots := schedule.GenerateSlots(reservations, twoCourts)

	require.Len(t, slots, 32)

	for _, s := range slots {
		require.False(t, s.Available)
		require.Empty(t, s.FreeCourts)
	}
}

func TestGenerateSlotsMarksBookedCourts(t *testing.T) {
	reservations := []schedule.Reservation{
		{CourtID: "court-a", Start: 10 * 60, End: 11 * 60},
	}

	slots := schedule.GenerateSlots(reservations, twoCourts)

	for _, start := range []string{"10:00", "10:30"} {
		slot := findSlot(t, slots, start)
		require.True(t, slot.Available, "one court is still free")
		require.Equal(t, []string{"court-b"}, slot.FreeCourts)
	}

	before := findSlot(t, slots, "09:30")
	require.Equal(t, twoCourts, before.FreeCourts)

	after := findSlot(t, slots, "11:00")
	require.Equal(t, twoCourts, after.FreeCourts)
}

func TestGenerateSlotsUnavailableOnlyWhenEveryCourtBooked(t *testing.T) {
	reservations := []schedule.Reservation{
		{CourtID: "court-a", Start: 10 * 60, End: 11 * 60},
		{CourtID: "court-b", Start: 10 * 60, End: 11 * 60},
	}

	slots := schedule.GenerateSlots(reservations, twoCourts)

	require.False(t, findSlot(t, slots, "10:00").Available)
	require.False(t, findSlot(t, slots, "10:30").Available)
	require.True(t, findSlot(t, slots, "09:30").Available)
	require.True(t, findSlot(t, slots, "11:00").Available)
}

func TestGenerateSlotsCancelledBookingsAreNotPassedIn(t *testing.T) {
	// The generator only ever sees confirmed reservations; a booking on an
	// unknown court must not poison the grid either.
	reservations := []schedule.Reservation{
		{CourtID: "court-x", Start: 10 * 60, End: 11 * 60},
	}

	slots := schedule.GenerateSlots(reservations, twoCourts)

	require.Equal(t, twoCourts, findSlot(t, slots, "10:00").FreeCourts)
}
