package shared

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFromEnv_Defaults(t *testing.T) {
	c := fromEnv(func(string) string { return "" })

	assert.Equal(t, "prod", c.AppEnv)
	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, ":8080", c.HTTPAddr)
	assert.Equal(t, 10*time.Second, c.HTTPTimeout)
	assert.Equal(t, 24*time.Hour, c.SessionTTL)
	assert.Equal(t, 8, c.Workers)
	assert.Contains(t, c.MySQLDSN, "parseTime=true")
	assert.Empty(t, c.PropertyIDs)
	assert.False(t, c.DevLogin())
}

func TestFromEnv_Overrides(t *testing.T) {
	vars := map[string]string{
		"APP_ENV":              "dev",
		"REDIS_DB":             "3",
		"SESSION_TTL_SECONDS":  "60",
		"HTTP_TIMEOUT_SECONDS": "nope",
		"INGEST_WORKERS":       "0",
		"INGEST_PROPERTY_IDS":  " 1200,abc, ,42,-7",
	}
	c := fromEnv(func(k string) string { return vars[k] })

	assert.True(t, c.DevLogin())
	assert.Equal(t, 3, c.RedisDB)
	assert.Equal(t, time.Minute, c.SessionTTL)
	assert.Equal(t, 10*time.Second, c.HTTPTimeout, "bad integer falls back")
	assert.Equal(t, 1, c.Workers)
	assert.Equal(t, []int64{1200, 42}, c.PropertyIDs)
}

func TestValidateAPI_SessionSecret(t *testing.T) {
	prod := fromEnv(func(string) string { return "" })
	assert.ErrorContains(t, prod.ValidateAPI(), "SESSION_SECRET")

	prod.SessionSecret = "s3cret"
	assert.NoError(t, prod.ValidateAPI())
	assert.Equal(t, "s3cret", prod.SessionSecret)

	dev := fromEnv(func(k string) string {
		if k == "APP_ENV" {
			return "dev"
		}
		return ""
	})
	assert.NoError(t, dev.ValidateAPI())
	assert.NotEmpty(t, dev.SessionSecret)
}
