// Package search narrows an in-memory hotel list by the user's search form.
package search

import (
	"fmt"
	"strings"

	"hotel_booking/internal/domain"
)

type PriceRange string

const (
	PriceAny      PriceRange = "all"
	Price0To100   PriceRange = "0-100"
	Price100To200 PriceRange = "100-200"
	Price200To400 PriceRange = "200-400"
	Price400Plus  PriceRange = "400+"
)

var priceRanges = []PriceRange{PriceAny, Price0To100, Price100To200, Price200To400, Price400Plus}

// ParsePriceRange accepts the bucket names of the search form; "" means PriceAny.
func ParsePriceRange(s string) (PriceRange, error) {
	if s == "" {
		return PriceAny, nil
	}
	for _, r := range priceRanges {
		if string(r) == s {
			return r, nil
		}
	}
	return "", fmt.Errorf("unknown price range %q", s)
}

// Filters is the search form. Only Destination narrows results; the other
// fields are carried so callers can round-trip the form.
type Filters struct {
	Destination string
	CheckIn     *domain.Date
	CheckOut    *domain.Date
	Guests      int
	PriceRange  PriceRange
}

// DefaultFilters is the state after a form reset.
func DefaultFilters() Filters {
	return Filters{Guests: 1, PriceRange: PriceAny}
}

// Filter returns the hotels whose name, city or country contains the
// destination, case-insensitively, in input order. An empty destination
// returns hotels as given. The input slice is never modified.
func Filter(hotels []domain.Hotel, f Filters) []domain.Hotel {
	if f.Destination == "" {
		return hotels
	}
	needle := strings.ToLower(f.Destination)
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if matches(h, needle) {
			out = append(out, h)
		}
	}
	return out
}

func matches(h domain.Hotel, needle string) bool {
	return strings.Contains(strings.ToLower(h.Name), needle) ||
		strings.Contains(strings.ToLower(h.City), needle) ||
		strings.Contains(strings.ToLower(h.Country), needle)
}
