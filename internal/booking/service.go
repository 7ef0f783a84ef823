// Package booking computes stay prices and submits reservations to the booking store.
package booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

// SessionSource reports the current authenticated user, or ok=false when
// there is none. It is consulted on every call; results are never cached.
type SessionSource interface {
	Current(ctx context.Context) (domain.Session, bool, error)
}

// Notifier tells the user their booking went through.
type Notifier interface {
	BookingConfirmed(ctx context.Context, b domain.Booking, hotel domain.Hotel) error
}

type Service struct {
	store    domain.BookingStore
	notifier Notifier
}

// NewService wires the booking flow. notifier may be nil.
func NewService(store domain.BookingStore, n Notifier) *Service {
	return &Service{store: store, notifier: n}
}

func (s *Service) Quote(room domain.Room, checkIn, checkOut domain.Date) Quote {
	return QuoteFor(room, checkIn, checkOut)
}

// Validate checks the draft and, when it passes, returns the session the
// booking will be made for.
func (s *Service) Validate(ctx context.Context, sessions SessionSource, d *Draft) (domain.Session, error) {
	sess, err := s.validate(ctx, sessions, d)
	if err != nil {
		d.err = err
		return domain.Session{}, err
	}
	d.err = nil
	d.state = StateValidated
	return sess, nil
}

func (s *Service) validate(ctx context.Context, sessions SessionSource, d *Draft) (domain.Session, error) {
	if d.Room == nil || d.Hotel == nil || d.CheckIn.IsZero() || d.CheckOut.IsZero() {
		return domain.Session{}, domain.ErrMissingFields
	}
	if d.Nights() == 0 {
		return domain.Session{}, domain.ErrInvalidDates
	}

	sess, ok, err := currentSession(ctx, sessions)
	if err != nil {
		return domain.Session{}, err
	}
	if !ok {
		return domain.Session{}, domain.ErrAuthenticationRequired
	}

	if d.Guests < 1 {
		return domain.Session{}, domain.ErrInvalidGuests
	}
	if d.Guests > d.Room.Capacity {
		return domain.Session{}, &CapacityError{Guests: d.Guests, Capacity: d.Room.Capacity}
	}
	return sess, nil
}

func currentSession(ctx context.Context, sessions SessionSource) (domain.Session, bool, error) {
	if sessions == nil {
		return domain.Session{}, false, nil
	}
	sess, ok, err := sessions.Current(ctx)
	if err != nil {
		return domain.Session{}, false, fmt.Errorf("resolve session: %w: %w", domain.ErrSessionUnavailable, err)
	}
	if !ok || sess.UserID == "" {
		return domain.Session{}, false, nil
	}
	return sess, true, nil
}

// Submit validates the draft and writes a confirmed booking for the current
// user. On success the draft is reset; on failure it is left as entered.
func (s *Service) Submit(ctx context.Context, sessions SessionSource, d *Draft) (domain.Booking, error) {
	sess, err := s.Validate(ctx, sessions, d)
	if err != nil {
		observability.ObserveBooking(outcome(err))
		return domain.Booking{}, err
	}

	d.state = StateSubmitting
	nb := domain.NewBooking{
		UserID:          sess.UserID,
		HotelID:         d.Hotel.ID,
		RoomID:          d.Room.ID,
		CheckIn:         d.CheckIn,
		CheckOut:        d.CheckOut,
		Guests:          d.Guests,
		TotalPrice:      d.Total(),
		SpecialRequests: d.specialRequests(),
		Status:          domain.BookingConfirmed,
	}

	b, err := s.store.InsertBooking(ctx, nb)
	observability.ObserveStore("insert_booking", err)
	if err != nil {
		log.Error().Err(err).
			Str("err_type", observability.LabelErr(err)).
			Str("hotel_id", nb.HotelID).
			Str("room_id", nb.RoomID).
			Msg("booking insert failed")
		serr := &SubmissionError{Err: err}
		d.state = StateFailed
		d.err = serr
		observability.ObserveBooking("store_error")
		return domain.Booking{}, serr
	}

	if s.notifier != nil {
		if nerr := s.notifier.BookingConfirmed(ctx, b, *d.Hotel); nerr != nil {
			log.Warn().Err(nerr).Str("booking_id", b.ID).Msg("booking notification failed")
		}
	}

	d.Reset()
	d.state = StateConfirmed
	observability.ObserveBooking("confirmed")
	return b, nil
}

// ListBookings returns the current user's bookings, newest first.
func (s *Service) ListBookings(ctx context.Context, sessions SessionSource) ([]domain.BookingDetails, error) {
	sess, ok, err := currentSession(ctx, sessions)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, domain.ErrAuthenticationRequired
	}
	out, err := s.store.ListBookings(ctx, sess.UserID)
	observability.ObserveStore("list_bookings", err)
	if err != nil {
		return nil, fmt.Errorf("list bookings: %w: %w", domain.ErrStoreUnavailable, err)
	}
	return out, nil
}

func outcome(err error) string {
	switch {
	case errors.Is(err, domain.ErrMissingFields):
		return "missing_fields"
	case errors.Is(err, domain.ErrInvalidDates):
		return "invalid_dates"
	case errors.Is(err, domain.ErrInvalidGuests):
		return "invalid_guests"
	case errors.Is(err, domain.ErrAuthenticationRequired):
		return "auth_required"
	case errors.Is(err, domain.ErrSessionUnavailable):
		return "session_unavailable"
	case errors.Is(err, domain.ErrCapacityExceeded):
		return "capacity_exceeded"
	}
	return "error"
}
