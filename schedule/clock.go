package schedule

import (
	"fmt"
	"time"
)

// Clock is a time of day in minutes since midnight. All scheduling math runs
// on Clock values; "HH:MM" strings exist only at the JSON and SQL boundaries.
type Clock int

const (
	// DayOpen and DayClose bound the venue's operating day.
	DayOpen  Clock = 7 * 60
	DayClose Clock = 23 * 60

	// SlotLength is the granularity of the booking grid, in minutes.
	SlotLength = 30
)

func ParseClock(s string) (Clock, error) {
	var h, m int
	if _, err := fmt.Sscanf(s, "%2d:%2d", &h, &m); err != nil {
		return 0, fmt.Errorf("invalid time %q: %w", s, err)
	}
	if len(s) != 5 || s[2] != ':' || h < 0 || h > 23 || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid time %q", s)
	}
	return Clock(h*60 + m), nil
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", int(c)/60, int(c)%60)
}

func (c Clock) MarshalJSON() ([]byte, error) {
	return []byte(`"` + c.String() + `"`), nil
}

func (c *Clock) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("invalid time %s", data)
	}
	parsed, err := ParseClock(string(data[1 : len(data)-1]))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// At anchors the clock time on the given calendar day, in that day's location.
func (c Clock) At(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), int(c)/60, int(c)%60, 0, 0, day.Location())
}

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) intersect.
func Overlaps(aStart, aEnd, bStart, bEnd Clock) bool {
	return aStart < bEnd && bStart < aEnd
}

// RequiredHalfHours converts a booking duration in hours to the number of
// 30-minute slots it occupies. The only place the 1.5h case is handled.
func RequiredHalfHours(durationHours float64) int {
	return int(durationHours*2 + 0.5)
}
