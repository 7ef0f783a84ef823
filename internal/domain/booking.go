package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "confirmed"
	BookingPending   BookingStatus = "pending"
	BookingCancelled BookingStatus = "cancelled"
)

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingConfirmed, BookingPending, BookingCancelled:
		return true
	}
	return false
}

// Booking is owned by the store once created; the client never mutates it.
type Booking struct {
	ID              string        `json:"id"`
	UserID          string        `json:"user_id"`
	HotelID         string        `json:"hotel_id"`
	RoomID          string        `json:"room_id"`
	CheckIn         Date          `json:"check_in_date"`
	CheckOut        Date          `json:"check_out_date"`
	Guests          int           `json:"guests"`
	TotalPrice      float64       `json:"total_price"`
	SpecialRequests *string       `json:"special_requests"`
	Status          BookingStatus `json:"status"`
	CreatedAt       time.Time     `json:"created_at"`
}

// NewBooking is the insert payload; ID and CreatedAt are assigned by the store.
type NewBooking struct {
	UserID          string
	HotelID         string
	RoomID          string
	CheckIn         Date
	CheckOut        Date
	Guests          int
	TotalPrice      float64
	SpecialRequests *string
	Status          BookingStatus
}

type BookingDetails struct {
	Booking
	Hotel HotelSummary `json:"hotels"`
	Room  RoomSummary  `json:"rooms"`
}

// Session is the authenticated identity an operation runs on behalf of.
type Session struct {
	UserID string
}

// Profile holds the optional display details of a signed-in user.
type Profile struct {
	UserID    string  `json:"user_id"`
	FullName  *string `json:"full_name"`
	Phone     *string `json:"phone"`
	AvatarURL *string `json:"avatar_url"`
}
