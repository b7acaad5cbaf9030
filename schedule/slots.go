package schedule

import "slices"

// Reservation is the slice of a confirmed booking the grid cares about.
type Reservation struct {
	CourtID string
	Start   Clock
	End     Clock
}

// TimeSlot is one 30-minute cell of the day grid. Ephemeral: recomputed from a
// fresh read on every query, never persisted or cached.
type TimeSlot struct {
	Start      Clock    `json:"startTime"`
	End        Clock    `json:"endTime"`
	Available  bool     `json:"isAvailable"`
	FreeCourts []string `json:"availableCourts"`
}

// GenerateSlots derives the full day grid from the confirmed reservations of
// one calendar day: 32 slots from DayOpen to DayClose, ascending. A slot is
// available iff at least one court has no reservation overlapping it. The
// court order of courtIDs is preserved in each slot's free set.
func GenerateSlots(reservations []Reservation, courtIDs []string) []TimeSlot {
	slots := make([]TimeSlot, 0, int(DayClose-DayOpen)/SlotLength)

	for t := DayOpen; t < DayClose; t += SlotLength {
		free := make([]string, 0, len(courtIDs))

		for _, id := range courtIDs {
			if !courtBooked(reservations, id, t, t+SlotLength) {
				free = append(free, id)
			}
		}

		slots = append(slots, TimeSlot{
			Start:      t,
			End:        t + SlotLength,
			Available:  len(free) > 0,
			FreeCourts: free,
		})
	}

	return slots
}

func courtBooked(reservations []Reservation, courtID string, start, end Clock) bool {
	for _, r := range reservations {
		if r.CourtID == courtID && Overlaps(start, end, r.Start, r.End) {
			return true
		}
	}

	return false
}

func (s TimeSlot) courtFree(courtID string) bool {
	return slices.Contains(s.FreeCourts, courtID)
}
