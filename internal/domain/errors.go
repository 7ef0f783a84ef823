package domain

import "errors"

var (
	ErrNotFound = errors.New("not found")

	// ErrStoreUnavailable wraps any failed read or write against the booking store.
	ErrStoreUnavailable = errors.New("booking store unavailable")

	ErrMissingFields          = errors.New("missing required booking fields")
	ErrInvalidDates           = errors.New("check-out must be after check-in")
	ErrInvalidGuests          = errors.New("at least one guest is required")
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrSessionUnavailable means the session could not be checked, not that
	// the caller is signed out.
	ErrSessionUnavailable = errors.New("session registry unavailable")
	ErrCapacityExceeded   = errors.New("guest count exceeds room capacity")
)
