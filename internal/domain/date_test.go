package domain_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel_booking/internal/domain"
)

func TestParseDate(t *testing.T) {
	d, err := domain.ParseDate("2024-01-03")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-03", d.String())
	assert.Equal(t, domain.NewDate(2024, time.January, 3), d)

	_, err = domain.ParseDate("03/01/2024")
	assert.Error(t, err)
}

func TestDate_JSON(t *testing.T) {
	var in struct {
		CheckIn  domain.Date `json:"check_in"`
		CheckOut domain.Date `json:"check_out"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"check_in":"2024-01-01","check_out":null}`), &in))
	assert.Equal(t, "2024-01-01", in.CheckIn.String())
	assert.True(t, in.CheckOut.IsZero())

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"check_in":"2024-01-01","check_out":null}`, string(b))
}

func TestDate_Scan(t *testing.T) {
	var d domain.Date
	require.NoError(t, d.Scan([]byte("2024-02-29")))
	assert.Equal(t, domain.NewDate(2024, time.February, 29), d)

	require.NoError(t, d.Scan(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2024-03-01", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(42))
}
