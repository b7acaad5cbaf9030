package schedule_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nikoleta-vukajlovic/padel-platz-backend/schedule"
)

var (
	day     = time.Date(2031, 5, 10, 0, 0, 0, 0, time.UTC)
	dayPrev = time.Date(2031, 5, 9, 12, 0, 0, 0, time.UTC)
)

// gridWithBusyWindow books every court between the given times.
func gridWithBusyWindow(busyStart, busyEnd schedule.Clock) []schedule.TimeSlot {
	reservations := []schedule.Reservation{}
	for _, id := range twoCourts {
		reservations = append(reservations, schedule.Reservation{CourtID: id, Start: busyStart, End: busyEnd})
	}
	return schedule.GenerateSlots(reservations, twoCourts)
}

func TestIsValidSelection(t *testing.T) {
	cases := []struct {
		name     string
		slots    []schedule.TimeSlot
		start    schedule.Clock
		duration float64
		now      time.Time
		want     bool
	}{
		{
			name:     "free run",
			slots:    schedule.GenerateSlots(nil, twoCourts),
			start:    9 * 60,
			duration: 2,
			now:      dayPrev,
			want:     true,
		},
		{
			name:     "start slot fully booked",
			slots:    gridWithBusyWindow(10*60, 11*60),
			start:    10 * 60,
			duration: 1,
			now:      dayPrev,
			want:     false,
		},
		{
			name:     "free start but blocked mid-run",
			slots:    gridWithBusyWindow(10*60, 11*60),
			start:    9*60 + 30,
			duration: 1,
			now:      dayPrev,
			want:     false,
		},
		{
			name:     "run would pass the end of the day",
			slots:    schedule.GenerateSlots(nil, twoCourts),
			start:    22*60 + 30,
			duration: 1,
			now:      dayPrev,
			want:     false,
		},
		{
			name:     "last bookable hour",
			slots:    schedule.GenerateSlots(nil, twoCourts),
			start:    22 * 60,
			duration: 1,
			now:      dayPrev,
			want:     true,
		},
		{
			name:     "start not on the grid",
			slots:    schedule.GenerateSlots(nil, twoCourts),
			start:    9*60 + 15,
			duration: 1,
			now:      dayPrev,
			want:     false,
		},
		{
			name:     "start already passed",
			slots:    schedule.GenerateSlots(nil, twoCourts),
			start:    9 * 60,
			duration: 1,
			now:      time.Date(2031, 5, 10, 9, 1, 0, 0, time.UTC),
			want:     false,
		},
		{
			name:     "later same day is still fine",
			slots:    schedule.GenerateSlots(nil, twoCourts),
			start:    18 * 60,
			duration: 1,
			now:      time.Date(2031, 5, 10, 9, 1, 0, 0, time.UTC),
			want:     true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := schedule.IsValidSelection(tc.slots, day, tc.start, tc.duration, tc.now)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestMaxDuration(t *testing.T) {
	cases := []struct {
		name  string
		slots []schedule.TimeSlot
		start schedule.Clock
		want  float64
	}{
		{
			name:  "open day gives the two hour ceiling",
			slots: schedule.GenerateSlots(nil, twoCourts),
			start: 9 * 60,
			want:  2,
		},
		{
			name:  "three free slots",
			slots: gridWithBusyWindow(10*60+30, 11*60),
			start: 9 * 60,
			want:  1.5,
		},
		{
			name:  "two free slots",
			slots: gridWithBusyWindow(10*60, 11*60),
			start: 9 * 60,
			want:  1,
		},
		{
			name:  "a single free slot is below the minimum booking",
			slots: gridWithBusyWindow(9*60+30, 10*60),
			start: 9 * 60,
			want:  0,
		},
		{
			name:  "blocked start",
			slots: gridWithBusyWindow(9*60, 10*60),
			start: 9 * 60,
			want:  0,
		},
		{
			name:  "start not on the grid",
			slots: schedule.GenerateSlots(nil, twoCourts),
			start: 6 * 60,
			want:  0,
		},
		{
			name:  "end of day caps the scan",
			slots: schedule.GenerateSlots(nil, twoCourts),
			start: 22 * 60,
			want:  1,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, schedule.MaxDuration(tc.slots, tc.start))
		})
	}
}

func TestMaxDurationForCourt(t *testing.T) {
	// court-a is busy 10:00-11:00, court-b is free all morning: whole-grid
	// availability says 2h from 09:00, court-a alone allows only 1h.
	reservations := []schedule.Reservation{
		{CourtID: "court-a", Start: 10 * 60, End: 11 * 60},
	}
	slots := schedule.GenerateSlots(reservations, twoCourts)

	require.Equal(t, float64(2), schedule.MaxDuration(slots, 9*60))
	require.Equal(t, float64(1), schedule.MaxDurationForCourt(slots, 9*60, "court-a"))
	require.Equal(t, float64(2), schedule.MaxDurationForCourt(slots, 9*60, "court-b"))
	require.Equal(t, float64(0), schedule.MaxDurationForCourt(slots, 10*60, "court-a"))
}

func TestSelectionEnd(t *testing.T) {
	slots := schedule.GenerateSlots(nil, twoCourts)

	end, ok := schedule.SelectionEnd(slots, 9*60, 1.5)
	require.True(t, ok)
	require.Equal(t, "10:30", end.String())

	end, ok = schedule.SelectionEnd(slots, 22*60, 1)
	require.True(t, ok)
	require.Equal(t, "23:00", end.String())

	_, ok = schedule.SelectionEnd(slots, 22*60+30, 1)
	require.False(t, ok)

	_, ok = schedule.SelectionEnd(slots, 6*60, 1)
	require.False(t, ok)
}

func TestFreeCourts(t *testing.T) {
	reservations := []schedule.Reservation{
		{CourtID: "court-a", Start: 10 * 60, End: 11 * 60},
	}
	slots := schedule.GenerateSlots(reservations, twoCourts)

	require.Equal(t, twoCourts, schedule.FreeCourts(slots, 9*60, 1))
	require.Equal(t, []string{"court-b"}, schedule.FreeCourts(slots, 9*60+30, 1))
	require.Equal(t, []string{"court-b"}, schedule.FreeCourts(slots, 10*60, 2))
	require.Nil(t, schedule.FreeCourts(slots, 22*60+30, 1))
}
