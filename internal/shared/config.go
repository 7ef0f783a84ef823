package shared

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	AppEnv      string
	LogLevel    string
	HTTPAddr    string
	MetricsAddr string
	HTTPTimeout time.Duration
	MySQLDSN    string
	RedisAddr   string
	RedisDB     int
	RedisPass   string

	SessionSecret string
	SessionTTL    time.Duration

	ContentBase string
	ContentKey  string
	ContentRPS  int
	Workers     int
	PropertyIDs []int64
}

// DevLogin reports whether the unauthenticated sign-in route is exposed.
func (c Config) DevLogin() bool { return c.AppEnv == "dev" }

// Load reads configuration from the environment, after applying a .env file
// in the working directory when one exists. Real env vars win over .env.
func Load() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warn().Err(err).Msg("could not read .env")
	}
	return fromEnv(os.Getenv)
}

func fromEnv(getenv func(string) string) Config {
	str := func(k, def string) string {
		if v := getenv(k); v != "" {
			return v
		}
		return def
	}
	atoi := func(k string, def int) int {
		if v := getenv(k); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n
			}
			log.Warn().Str("key", k).Str("value", v).Msg("not an integer, using default")
		}
		return def
	}
	c := Config{
		AppEnv:        str("APP_ENV", "prod"),
		LogLevel:      str("LOG_LEVEL", "info"),
		HTTPAddr:      str("HTTP_ADDR", ":8080"),
		MetricsAddr:   str("METRICS_ADDR", ":9100"),
		HTTPTimeout:   time.Duration(atoi("HTTP_TIMEOUT_SECONDS", 10)) * time.Second,
		MySQLDSN:      str("MYSQL_DSN", "root:root@tcp(localhost:3306)/hotel_booking?parseTime=true&charset=utf8mb4,utf8&loc=UTC"),
		RedisAddr:     str("REDIS_ADDR", "localhost:6379"),
		RedisPass:     str("REDIS_PASSWORD", ""),
		RedisDB:       atoi("REDIS_DB", 0),
		SessionSecret: str("SESSION_SECRET", ""),
		SessionTTL:    time.Duration(atoi("SESSION_TTL_SECONDS", 86400)) * time.Second,
		ContentBase:   str("CONTENT_BASE_URL", "http://localhost:8081/v1"),
		ContentKey:    str("CONTENT_API_KEY", ""),
		ContentRPS:    atoi("CONTENT_RPS", 5),
		Workers:       atoi("INGEST_WORKERS", 8),
		PropertyIDs:   parseIDs(getenv("INGEST_PROPERTY_IDS")),
	}
	if c.Workers <= 0 {
		c.Workers = 1
	}
	return c
}

// ValidateAPI checks what the API server needs before it may start. An empty
// session secret is only accepted in dev, where a random per-process secret
// is used instead and tokens do not survive a restart.
func (c *Config) ValidateAPI() error {
	if c.SessionSecret != "" {
		return nil
	}
	if !c.DevLogin() {
		return fmt.Errorf("SESSION_SECRET is required when APP_ENV=%q", c.AppEnv)
	}
	c.SessionSecret = uuid.NewString()
	log.Warn().Msg("SESSION_SECRET is empty, using a random per-process secret")
	return nil
}

// parseIDs reads a comma separated id list, skipping blanks and junk.
func parseIDs(s string) []int64 {
	var out []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			log.Warn().Str("value", part).Msg("skipping bad property id")
			continue
		}
		out = append(out, id)
	}
	return out
}
