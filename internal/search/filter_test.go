package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_booking/internal/domain"
	"hotel_booking/internal/search"
)

func sampleHotels() []domain.Hotel {
	return []domain.Hotel{
		{ID: "h1", Name: "Le Grand Paris", City: "Paris", Country: "France", Rating: 4.9},
		{ID: "h2", Name: "Harbour View", City: "Sydney", Country: "Australia", Rating: 4.7},
		{ID: "h3", Name: "Riverside Inn", City: "Lyon", Country: "France", Rating: 4.2},
		{ID: "h4", Name: "Paris Hotel & Casino", City: "Las Vegas", Country: "USA", Rating: 4.0},
		{ID: "h5", Name: "Canal House", City: "Amsterdam", Country: "Netherlands", Rating: 3.8},
	}
}

func ids(hs []domain.Hotel) []string {
	out := make([]string, 0, len(hs))
	for _, h := range hs {
		out = append(out, h.ID)
	}
	return out
}

func TestFilter_Destination(t *testing.T) {
	tests := []struct {
		name        string
		destination string
		want        []string
	}{
		{"name or city", "Paris", []string{"h1", "h4"}},
		{"case insensitive", "pARIS", []string{"h1", "h4"}},
		{"country", "france", []string{"h1", "h3"}},
		{"substring of city", "dam", []string{"h5"}},
		{"no match", "Tokyo", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := search.Filter(sampleHotels(), search.Filters{Destination: tt.destination})
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_EmptyDestinationIsIdentity(t *testing.T) {
	in := sampleHotels()
	got := search.Filter(in, search.DefaultFilters())
	assert.Equal(t, in, got)
}

func TestFilter_DoesNotMutateInput(t *testing.T) {
	in := sampleHotels()
	before := ids(in)
	_ = search.Filter(in, search.Filters{Destination: "france"})
	assert.Equal(t, before, ids(in))
}

func TestFilter_IgnoresStructuredFields(t *testing.T) {
	in, err := domain.ParseDate("2024-06-01")
	require.NoError(t, err)
	out, err := domain.ParseDate("2024-06-05")
	require.NoError(t, err)

	got := search.Filter(sampleHotels(), search.Filters{
		Destination: "france",
		CheckIn:     &in,
		CheckOut:    &out,
		Guests:      9,
		PriceRange:  search.Price400Plus,
	})
	assert.Equal(t, []string{"h1", "h3"}, ids(got))
}

func TestParsePriceRange(t *testing.T) {
	r, err := search.ParsePriceRange("")
	require.NoError(t, err)
	assert.Equal(t, search.PriceAny, r)

	r, err = search.ParsePriceRange("200-400")
	require.NoError(t, err)
	assert.Equal(t, search.Price200To400, r)

	_, err = search.ParsePriceRange("cheap")
	assert.Error(t, err)
}
