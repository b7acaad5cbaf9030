package booking

import "errors"

var ErrBookingNotFound = errors.New("booking not found")

var ErrInvalidBookingState = errors.New("invalid booking state")

var ErrNotAllowed = errors.New("not allowed to perform this operation")

// ErrSlotUnavailable is the conflict failure: the requested interval became
// unavailable between the grid read and the write.
var ErrSlotUnavailable = errors.New("time slot is no longer available")

// ErrInvalidSelection covers every pre-store validation failure of a booking
// candidate (unknown court, bad times, unsupported duration, past start,
// missing attribution).
var ErrInvalidSelection = errors.New("invalid booking selection")

// ErrBookingNotEnded guards the no-show transition, which is only meaningful
// once the booked interval is over.
var ErrBookingNotEnded = errors.New("booking has not ended yet")
