package redisad

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"hotel_booking/internal/domain"
)

// NewClient opens the shared Redis client used for sessions and notifications.
func NewClient(addr, pass string, db int) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr, Password: pass, DB: db})
}

// Notification is the message a signed-in client receives after booking.
type Notification struct {
	Kind      string    `json:"kind"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	BookingID string    `json:"booking_id"`
	HotelID   string    `json:"hotel_id"`
	SentAt    time.Time `json:"sent_at"`
}

// Channel is the pub/sub channel a user's notifications go to.
func Channel(userID string) string { return "notifications:" + userID }

// Notifier publishes booking confirmations on the user's channel.
type Notifier struct {
	c   *redis.Client
	now func() time.Time
}

func NewNotifier(c *redis.Client) *Notifier {
	return &Notifier{c: c, now: time.Now}
}

func (n *Notifier) BookingConfirmed(ctx context.Context, b domain.Booking, h domain.Hotel) error {
	msg := Notification{
		Kind:      "booking_confirmed",
		Title:     "Booking Confirmed!",
		Message:   fmt.Sprintf("Your booking at %s has been confirmed.", h.Name),
		BookingID: b.ID,
		HotelID:   b.HotelID,
		SentAt:    n.now().UTC(),
	}
	payload, err := json.Marshal(msg)
	if err != nil {
		return err
	}
	return n.c.Publish(ctx, Channel(b.UserID), payload).Err()
}
