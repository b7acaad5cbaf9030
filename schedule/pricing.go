package schedule

import (
	"errors"
	"fmt"
)

// ErrPricingGap rejects a pricing schedule that does not tile the operating
// day. An uncovered half hour would otherwise be silently priced at zero.
var ErrPricingGap = errors.New("pricing periods do not cover the operating day")

// PricingPeriod is a sub-interval of the operating day with its own rate,
// expressed in the smallest currency unit per half hour.
type PricingPeriod struct {
	Start            Clock `json:"startTime"`
	End              Clock `json:"endTime"`
	PricePerHalfHour int   `json:"pricePerHalfHour"`
}

// Price computes the total price of a booking starting at start and lasting
// durationHours, by walking every 30-minute boundary of the booking and
// charging the rate of the first period containing it. A boundary covered by
// no period contributes zero; ValidatePricingPeriods keeps such schedules out
// of the store, but legacy court documents may still carry them.
func Price(periods []PricingPeriod, start Clock, durationHours float64) int {
	total := 0
	end := start + Clock(RequiredHalfHours(durationHours)*SlotLength)

	for t := start; t < end; t += SlotLength {
		for _, p := range periods {
			if t >= p.Start && t < p.End {
				total += p.PricePerHalfHour
				break
			}
		}
	}

	return total
}

// ValidatePricingPeriods checks that the periods tile the operating day
// exactly: ascending, contiguous, starting at DayOpen and ending at DayClose,
// with non-negative rates. Any defect is reported as ErrPricingGap.
func ValidatePricingPeriods(periods []PricingPeriod) error {
	if len(periods) == 0 {
		return fmt.Errorf("%w: no periods", ErrPricingGap)
	}

	cursor := DayOpen

	for i, p := range periods {
		if p.Start != cursor {
			return fmt.Errorf("%w: period %d starts at %v, want %v", ErrPricingGap, i, p.Start, cursor)
		}
		if p.End <= p.Start {
			return fmt.Errorf("%w: period %d ends at %v, before its start %v", ErrPricingGap, i, p.End, p.Start)
		}
		if p.PricePerHalfHour < 0 {
			return fmt.Errorf("%w: period %d has negative price", ErrPricingGap, i)
		}
		cursor = p.End
	}

	if cursor != DayClose {
		return fmt.Errorf("%w: coverage ends at %v, want %v", ErrPricingGap, cursor, DayClose)
	}

	return nil
}
