package app

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"hotel_booking/internal/domain"
)

// HotelList holds the last hotel list that loaded successfully. A failed
// refresh reports its error and leaves the held list untouched.
type HotelList struct {
	catalog *CatalogService

	mu       sync.RWMutex
	hotels   []domain.Hotel
	loadedAt time.Time
}

func NewHotelList(c *CatalogService) *HotelList {
	return &HotelList{catalog: c}
}

// Refresh reloads the list from the store.
func (l *HotelList) Refresh(ctx context.Context) ([]domain.Hotel, error) {
	hs, err := l.catalog.ListHotels(ctx)
	if err != nil {
		l.mu.RLock()
		held := len(l.hotels)
		l.mu.RUnlock()
		log.Warn().Err(err).Int("held", held).Msg("hotel list refresh failed")
		return nil, err
	}
	l.mu.Lock()
	l.hotels = hs
	l.loadedAt = time.Now()
	l.mu.Unlock()
	return hs, nil
}

// Hotels returns the held list and when it was loaded; the zero time means
// nothing has loaded yet.
func (l *HotelList) Hotels() ([]domain.Hotel, time.Time) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.hotels, l.loadedAt
}
