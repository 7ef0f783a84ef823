package app

import (
	"context"
	"fmt"
	"sort"

	"hotel_booking/internal/adapters/observability"
	"hotel_booking/internal/domain"
)

// CatalogService fetches hotels and rooms from the booking store.
// Every call is one round trip; nothing is cached or retried.
type CatalogService struct {
	store domain.BookingStore
}

func NewCatalogService(s domain.BookingStore) *CatalogService {
	return &CatalogService{store: s}
}

// ListHotels returns all hotels, highest rated first.
func (s *CatalogService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	hs, err := s.store.ListHotels(ctx)
	observability.ObserveStore("list_hotels", err)
	if err != nil {
		return nil, fmt.Errorf("list hotels: %w: %w", domain.ErrStoreUnavailable, err)
	}
	// copy so callers never share the store's backing array
	out := make([]domain.Hotel, len(hs))
	copy(out, hs)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	return out, nil
}

// ListRooms returns the rooms of one hotel, cheapest first.
func (s *CatalogService) ListRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	rs, err := s.store.ListRooms(ctx, hotelID)
	observability.ObserveStore("list_rooms", err)
	if err != nil {
		return nil, fmt.Errorf("list rooms for %s: %w: %w", hotelID, domain.ErrStoreUnavailable, err)
	}
	out := make([]domain.Room, 0, len(rs))
	for _, r := range rs {
		if r.HotelID == "" || r.HotelID == hotelID {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PricePerNight < out[j].PricePerNight })
	return out, nil
}

// FindRoom looks up a room within its hotel's listing. It returns
// domain.ErrNotFound when either the hotel or the room is unknown.
func (s *CatalogService) FindRoom(ctx context.Context, hotelID, roomID string) (domain.Hotel, domain.Room, error) {
	hs, err := s.ListHotels(ctx)
	if err != nil {
		return domain.Hotel{}, domain.Room{}, err
	}
	var hotel *domain.Hotel
	for i := range hs {
		if hs[i].ID == hotelID {
			hotel = &hs[i]
			break
		}
	}
	if hotel == nil {
		return domain.Hotel{}, domain.Room{}, fmt.Errorf("hotel %s: %w", hotelID, domain.ErrNotFound)
	}
	rs, err := s.ListRooms(ctx, hotelID)
	if err != nil {
		return domain.Hotel{}, domain.Room{}, err
	}
	for _, r := range rs {
		if r.ID == roomID {
			return *hotel, r, nil
		}
	}
	return domain.Hotel{}, domain.Room{}, fmt.Errorf("room %s: %w", roomID, domain.ErrNotFound)
}
