package booking

import (
	"fmt"

	"hotel_booking/internal/domain"
)

// CapacityError reports a guest count above what the room accommodates.
type CapacityError struct {
	Guests   int
	Capacity int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("this room can accommodate maximum %d guests (requested %d)", e.Capacity, e.Guests)
}

func (e *CapacityError) Unwrap() error { return domain.ErrCapacityExceeded }

// SubmissionError is returned when the store rejects a validated booking.
// The draft is left intact so the user can retry.
type SubmissionError struct {
	Err error
}

func (e *SubmissionError) Error() string {
	if e.Err == nil {
		return "failed to create booking"
	}
	return e.Err.Error()
}

func (e *SubmissionError) Unwrap() []error {
	return []error{domain.ErrStoreUnavailable, e.Err}
}
