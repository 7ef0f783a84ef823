package content

import (
	"cmp"
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"hotel_booking/internal/domain"
)

// Property is one property document of the content API.
type Property struct {
	ID          flexString `json:"hotel_id"`
	Name        string     `json:"hotel_name"`
	Description string     `json:"description"`
	Address     Address    `json:"address"`
	MainImage   string     `json:"main_image_th"`
	Rating      flexFloat  `json:"rating"`
	Facilities  []named    `json:"facilities"`
	Photos      []named    `json:"photos"`
	Rooms       []Room     `json:"rooms"`
}

// Address arrives either as an object or as a single line.
type Address struct {
	Line    string `json:"address"`
	City    string `json:"city"`
	Country string `json:"country"`
}

func (a *Address) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		return json.Unmarshal(b, &a.Line)
	}
	type plain Address
	return json.Unmarshal(b, (*plain)(a))
}

type Room struct {
	ID            flexString `json:"id"`
	Name          string     `json:"room_name"`
	Description   string     `json:"description"`
	Type          string     `json:"room_type"`
	BedTypes      []bedType  `json:"bed_types"`
	MaxOccupancy  flexFloat  `json:"max_occupancy"`
	PricePerNight flexFloat  `json:"price_per_night"`
	Price         flexFloat  `json:"price"`
	Available     *bool      `json:"is_available"`
	Amenities     []named    `json:"room_amenities"`
	Photos        []named    `json:"photos"`
}

type bedType struct {
	BedType string `json:"bed_type"`
}

// toDomain clamps what the catalog forbids: non-positive ratings and prices
// become 0 and capacities below 1 become 1. Rooms without an id are dropped.
func (p Property) toDomain() (domain.Hotel, []domain.Room) {
	h := domain.Hotel{
		ID:          string(p.ID),
		Name:        strings.TrimSpace(p.Name),
		Description: strings.TrimSpace(p.Description),
		Address:     strings.TrimSpace(p.Address.Line),
		City:        strings.TrimSpace(p.Address.City),
		Country:     strings.TrimSpace(p.Address.Country),
		ImageURL:    p.MainImage,
		Rating:      positive(p.Rating),
		Amenities:   names(p.Facilities),
	}
	if photos := names(p.Photos); h.ImageURL == "" && len(photos) > 0 {
		h.ImageURL = photos[0]
	}

	rooms := make([]domain.Room, 0, len(p.Rooms))
	for _, rm := range p.Rooms {
		if rm.ID == "" {
			log.Warn().Str("hotel_id", h.ID).Str("room_name", rm.Name).Msg("room without id skipped")
			continue
		}
		rooms = append(rooms, rm.toDomain(h.ID))
	}
	return h, rooms
}

func (rm Room) toDomain(hotelID string) domain.Room {
	r := domain.Room{
		ID:            string(rm.ID),
		HotelID:       hotelID,
		Name:          strings.TrimSpace(rm.Name),
		Description:   strings.TrimSpace(rm.Description),
		Type:          rm.Type,
		Capacity:      max(int(positive(rm.MaxOccupancy)), 1),
		PricePerNight: positive(rm.PricePerNight),
		Amenities:     names(rm.Amenities),
		Available:     rm.Available == nil || *rm.Available,
	}
	if r.Type == "" && len(rm.BedTypes) > 0 {
		r.Type = rm.BedTypes[0].BedType
	}
	if r.PricePerNight == 0 {
		r.PricePerNight = positive(rm.Price)
	}
	if photos := names(rm.Photos); len(photos) > 0 {
		r.ImageURL = photos[0]
	}
	return r
}

func positive(f flexFloat) float64 {
	v := float64(f)
	if v > 0 && !math.IsInf(v, 0) {
		return v
	}
	return 0
}

func names(in []named) []string {
	out := make([]string, 0, len(in))
	for _, n := range in {
		if n != "" {
			out = append(out, string(n))
		}
	}
	return out
}

// flexString is an id sent either as a JSON string or a number.
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if string(b) == "null" {
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(strings.TrimSpace(v))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	// 101 and 101.0 name the same room
	if f, err := n.Float64(); err == nil && f == math.Trunc(f) && math.Abs(f) < 1<<53 {
		*s = flexString(strconv.FormatInt(int64(f), 10))
		return nil
	}
	*s = flexString(n.String())
	return nil
}

// flexFloat accepts numbers and numeric strings with either decimal mark.
// Anything unparseable decodes as 0.
type flexFloat float64

func (f *flexFloat) UnmarshalJSON(b []byte) error {
	v := strings.TrimSpace(strings.Trim(string(b), `"`))
	v = strings.ReplaceAll(v, ",", ".")
	if n, err := strconv.ParseFloat(v, 64); err == nil && !math.IsNaN(n) {
		*f = flexFloat(n)
	}
	return nil
}

// named is a list entry given as a plain string or as an object carrying
// its text under name or url.
type named string

func (n *named) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*n = named(strings.TrimSpace(v))
		return nil
	}
	var obj struct {
		Name string `json:"name"`
		URL  string `json:"url"`
	}
	if err := json.Unmarshal(b, &obj); err != nil {
		// numbers and nested lists carry nothing to show
		return nil
	}
	*n = named(strings.TrimSpace(cmp.Or(obj.Name, obj.URL)))
	return nil
}
