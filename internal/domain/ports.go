package domain

import "context"

// BookingStore is the external backend holding hotels, rooms and bookings.
type BookingStore interface {
	// Read paths
	ListHotels(ctx context.Context) ([]Hotel, error)
	ListRooms(ctx context.Context, hotelID string) ([]Room, error)
	ListBookings(ctx context.Context, userID string) ([]BookingDetails, error)

	// Write paths
	InsertBooking(ctx context.Context, b NewBooking) (Booking, error)
}

// ProfileStore reads user profiles. A user without a row has no profile;
// that is not an error.
type ProfileStore interface {
	GetProfile(ctx context.Context, userID string) (Profile, bool, error)
}

// CatalogWriter is used by the ingestor only; the booking flow never writes hotels or rooms.
type CatalogWriter interface {
	UpsertHotel(ctx context.Context, h Hotel) error
	UpsertRooms(ctx context.Context, hotelID string, rooms []Room) error
}

// ContentClient reads one property of the upstream content API, already
// mapped onto the catalog model.
type ContentClient interface {
	GetProperty(ctx context.Context, id int64) (Hotel, []Room, error)
}
