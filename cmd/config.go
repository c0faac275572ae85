package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"storefront/internal/adapters/out/geoapi"
	"storefront/internal/pkg/i18n"

	"github.com/lib/pq"
)

const (
	SelectionStoreMemory = "memory"
	SelectionStoreRedis  = "redis"

	defaultHTTPPort     = "8080"
	defaultSelectionTTL = 30 * time.Minute
)

// Config is read from the environment (and .env) by main. Values are kept as
// the raw strings; the accessors parse them and apply defaults.
type Config struct {
	HTTPPort string
	LogLevel string

	DatabaseURL string
	DBHost      string
	DBPort      string
	DBUser      string
	DBPassword  string
	DBName      string
	DBSslMode   string

	GeoAPIBaseURL    string
	GeoAPITimeout    string
	ProvinceCacheTTL string

	SelectionStore     string
	SelectionTTL       string
	FormSweepSchedule  string
	RedisURL           string
	RedisAddr          string
	RedisPassword      string
	RedisKeyPrefix     string
	DefaultLocaleValue string
}

func (c Config) Port() string {
	if c.HTTPPort == "" {
		return defaultHTTPPort
	}
	return c.HTTPPort
}

// DSN returns a libpq connection string. DATABASE_URL wins over the DB_*
// variables.
func (c Config) DSN() (string, error) {
	if c.DatabaseURL != "" {
		dsn, err := pq.ParseURL(c.DatabaseURL)
		if err != nil {
			return "", fmt.Errorf("invalid DATABASE_URL: %w", err)
		}
		return dsn, nil
	}

	if c.DBHost == "" || c.DBName == "" {
		return "", errors.New("database is not configured: set DATABASE_URL or DB_HOST and DB_NAME")
	}

	sslMode := c.DBSslMode
	if sslMode == "" {
		sslMode = "disable"
	}
	port := c.DBPort
	if port == "" {
		port = "5432"
	}

	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, port, c.DBUser, c.DBPassword, c.DBName, sslMode), nil
}

func (c Config) GeoAPIURL() string {
	if c.GeoAPIBaseURL == "" {
		return geoapi.DefaultBaseURL
	}
	return c.GeoAPIBaseURL
}

func (c Config) GeoAPIRequestTimeout() (time.Duration, error) {
	return parseDuration("GEO_API_TIMEOUT", c.GeoAPITimeout, geoapi.DefaultTimeout)
}

func (c Config) ProvinceListTTL() (time.Duration, error) {
	ttl, err := parseDuration("PROVINCE_CACHE_TTL", c.ProvinceCacheTTL, geoapi.DefaultProvinceCacheTTL)
	if err != nil {
		return 0, err
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("PROVINCE_CACHE_TTL must be positive, got %s", ttl)
	}
	return ttl, nil
}

// SessionTTL is how long an untouched delivery form survives.
func (c Config) SessionTTL() (time.Duration, error) {
	ttl, err := parseDuration("SELECTION_TTL", c.SelectionTTL, defaultSelectionTTL)
	if err != nil {
		return 0, err
	}
	if ttl <= 0 {
		return 0, fmt.Errorf("SELECTION_TTL must be positive, got %s", ttl)
	}
	return ttl, nil
}

func (c Config) SelectionStoreKind() (string, error) {
	switch kind := strings.ToLower(strings.TrimSpace(c.SelectionStore)); kind {
	case "", SelectionStoreMemory:
		return SelectionStoreMemory, nil
	case SelectionStoreRedis:
		return SelectionStoreRedis, nil
	default:
		return "", fmt.Errorf("unknown SELECTION_STORE %q: want %s or %s", kind, SelectionStoreMemory, SelectionStoreRedis)
	}
}

// DefaultLocale is used for requests that name no language.
func (c Config) DefaultLocale() i18n.Locale {
	if tag, ok := i18n.ParseTag(c.DefaultLocaleValue); ok {
		return i18n.NewLocale(tag, nil)
	}
	return i18n.Default()
}

func (c Config) SlogLevel() slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

func parseDuration(name, value string, fallback time.Duration) (time.Duration, error) {
	if value == "" {
		return fallback, nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", name, err)
	}
	return d, nil
}
