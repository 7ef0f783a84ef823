package mysql

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSONList(t *testing.T) {
	got, err := parseJSONList([]byte(`["Spa","WiFi"]`))
	require.NoError(t, err)
	assert.Equal(t, []string{"Spa", "WiFi"}, got)

	for _, in := range [][]byte{nil, []byte(`null`)} {
		got, err = parseJSONList(in)
		require.NoError(t, err)
		assert.Equal(t, []string{}, got)
	}
}

func TestParseJSONList_CorruptIsAnError(t *testing.T) {
	for _, in := range []string{`["Spa",`, `{"name":"Spa"}`, `[1,2]`} {
		got, err := parseJSONList([]byte(in))
		assert.Error(t, err, in)
		assert.Nil(t, got, in)
	}
}

func TestStrPtr(t *testing.T) {
	assert.Nil(t, strPtr(sql.NullString{}))
	p := strPtr(sql.NullString{String: "", Valid: true})
	require.NotNil(t, p)
	assert.Equal(t, "", *p)
}
