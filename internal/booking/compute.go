package booking

import (
	"math"
	"time"

	"hotel_booking/internal/domain"
)

const day = 24 * time.Hour

// NightCount is the ceiling of whole days between the two dates, or 0 when
// checkOut is not strictly after checkIn.
func NightCount(checkIn, checkOut domain.Date) int {
	if checkIn.IsZero() || checkOut.IsZero() || !checkOut.After(checkIn) {
		return 0
	}
	return int(math.Ceil(float64(checkOut.Sub(checkIn)) / float64(day)))
}

func TotalPrice(nights int, rate float64) float64 {
	if nights <= 0 {
		return 0
	}
	return float64(nights) * rate
}

// Quote is the booking summary shown before confirmation.
type Quote struct {
	Nights int     `json:"nights"`
	Rate   float64 `json:"rate"`
	Total  float64 `json:"total"`
}

func QuoteFor(room domain.Room, checkIn, checkOut domain.Date) Quote {
	n := NightCount(checkIn, checkOut)
	return Quote{Nights: n, Rate: room.PricePerNight, Total: TotalPrice(n, room.PricePerNight)}
}
