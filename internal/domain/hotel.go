package domain

type Hotel struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Address     string   `json:"address"`
	City        string   `json:"city"`
	Country     string   `json:"country"`
	ImageURL    string   `json:"image_url"`
	Rating      float64  `json:"rating"`
	Amenities   []string `json:"amenities"`
}

type Room struct {
	ID            string   `json:"id"`
	HotelID       string   `json:"hotel_id"` // reference only; rooms never embed their hotel
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	Type          string   `json:"type"`
	Capacity      int      `json:"capacity"` // >= 1
	PricePerNight float64  `json:"price_per_night"`
	ImageURL      string   `json:"image_url"`
	Amenities     []string `json:"amenities"`
	Available     bool     `json:"is_available"`
}

// HotelSummary and RoomSummary are the display fields joined onto a booking listing.
type HotelSummary struct {
	Name     string `json:"name"`
	Address  string `json:"address"`
	City     string `json:"city"`
	Country  string `json:"country"`
	ImageURL string `json:"image_url"`
}

type RoomSummary struct {
	Name     string `json:"name"`
	Type     string `json:"type"`
	ImageURL string `json:"image_url"`
}
