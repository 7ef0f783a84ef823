package booking

import (
	"strings"

	"hotel_booking/internal/domain"
)

type State int

const (
	StateEmpty State = iota
	StateDatesSelected
	StateValidated
	StateSubmitting
	StateConfirmed
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateDatesSelected:
		return "dates_selected"
	case StateValidated:
		return "validated"
	case StateSubmitting:
		return "submitting"
	case StateConfirmed:
		return "confirmed"
	case StateFailed:
		return "failed"
	}
	return "unknown"
}

// Draft holds the user-entered inputs of one booking attempt.
// It is not safe for concurrent use.
type Draft struct {
	Hotel           *domain.Hotel
	Room            *domain.Room
	CheckIn         domain.Date
	CheckOut        domain.Date
	Guests          int
	SpecialRequests string

	state State
	err   error
}

// NewDraft starts a draft for the selected room; either may be nil.
func NewDraft(hotel *domain.Hotel, room *domain.Room) *Draft {
	return &Draft{Hotel: hotel, Room: room, Guests: 1}
}

func (d *Draft) State() State { return d.state }

// Err is the reason of the last failed validation or submission.
func (d *Draft) Err() error { return d.err }

// SetDates records the stay. The draft moves to DatesSelected once both are set.
func (d *Draft) SetDates(checkIn, checkOut domain.Date) {
	d.CheckIn, d.CheckOut = checkIn, checkOut
	d.touch()
}

func (d *Draft) SetGuests(n int) {
	d.Guests = n
	d.touch()
}

func (d *Draft) SetSpecialRequests(s string) {
	d.SpecialRequests = s
	d.touch()
}

// any edit invalidates a previous validation
func (d *Draft) touch() {
	if d.state == StateSubmitting {
		return
	}
	if d.CheckIn.IsZero() || d.CheckOut.IsZero() {
		d.state = StateEmpty
		return
	}
	d.state = StateDatesSelected
}

func (d *Draft) Nights() int { return NightCount(d.CheckIn, d.CheckOut) }

func (d *Draft) Total() float64 {
	if d.Room == nil {
		return 0
	}
	return TotalPrice(d.Nights(), d.Room.PricePerNight)
}

func (d *Draft) specialRequests() *string {
	s := strings.TrimSpace(d.SpecialRequests)
	if s == "" {
		return nil
	}
	v := d.SpecialRequests
	return &v
}

// Reset clears every entered field; the room selection is kept.
func (d *Draft) Reset() {
	d.CheckIn, d.CheckOut = domain.Date{}, domain.Date{}
	d.Guests = 1
	d.SpecialRequests = ""
	d.err = nil
	d.state = StateEmpty
}
