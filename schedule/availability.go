package schedule

import (
	"slices"
	"time"
)

func slotIndex(slots []TimeSlot, start Clock) int {
	return slices.IndexFunc(slots, func(s TimeSlot) bool { return s.Start == start })
}

// IsValidSelection reports whether a booking of durationHours starting at
// start on the given day can be placed on the grid: the start slot exists and
// is not in the past relative to now, enough slots remain in the day, every
// slot of the run is available, and the run is contiguous.
func IsValidSelection(slots []TimeSlot, day time.Time, start Clock, durationHours float64, now time.Time) bool {
	i := slotIndex(slots, start)
	if i == -1 {
		return false
	}

	if start.At(day).Before(now) {
		return false
	}

	required := RequiredHalfHours(durationHours)
	if required > len(slots)-i {
		return false
	}

	for k := 0; k < required; k++ {
		slot := slots[i+k]
		if !slot.Available {
			return false
		}
		if k > 0 && slot.Start != slots[i+k-1].End {
			return false
		}
	}

	return true
}

// MaxDuration returns the longest bookable duration starting at start, one of
// 0, 1, 1.5 or 2 hours. A single free slot is below the one-hour minimum and
// yields 0.
func MaxDuration(slots []TimeSlot, start Clock) float64 {
	return maxDuration(slots, start, func(s TimeSlot) bool { return s.Available })
}

// MaxDurationForCourt is MaxDuration restricted to a single court's free runs,
// used by the admin surface when rebooking a specific court.
func MaxDurationForCourt(slots []TimeSlot, start Clock, courtID string) float64 {
	return maxDuration(slots, start, func(s TimeSlot) bool { return s.courtFree(courtID) })
}

func maxDuration(slots []TimeSlot, start Clock, free func(TimeSlot) bool) float64 {
	i := slotIndex(slots, start)
	if i == -1 {
		return 0
	}

	consecutive := 0
	for k := 0; k < 4 && i+k < len(slots); k++ { // 2h ceiling
		if !free(slots[i+k]) {
			break
		}
		consecutive++
	}

	switch {
	case consecutive >= 4:
		return 2
	case consecutive == 3:
		return 1.5
	case consecutive == 2:
		return 1
	default:
		return 0
	}
}

// SelectionEnd returns the end time of a run of durationHours starting at
// start. ok is false when the run does not fit on the grid.
func SelectionEnd(slots []TimeSlot, start Clock, durationHours float64) (end Clock, ok bool) {
	i := slotIndex(slots, start)
	if i == -1 {
		return 0, false
	}

	last := i + RequiredHalfHours(durationHours) - 1
	if last >= len(slots) {
		return 0, false
	}

	return slots[last].End, true
}

// FreeCourts returns the courts free for the whole run of durationHours
// starting at start, preserving the grid's court order. Empty when the run
// does not fit.
func FreeCourts(slots []TimeSlot, start Clock, durationHours float64) []string {
	i := slotIndex(slots, start)
	if i == -1 {
		return nil
	}

	required := RequiredHalfHours(durationHours)
	if required > len(slots)-i {
		return nil
	}

	free := slices.Clone(slots[i].FreeCourts)
	for k := 1; k < required; k++ {
		slot := slots[i+k]
		free = slices.DeleteFunc(free, func(id string) bool { return !slot.courtFree(id) })
	}

	return free
}
