package cmd_test

import (
	"log/slog"
	"testing"
	"time"

	"storefront/cmd"
	"storefront/internal/adapters/out/geoapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestConfig_DSN(t *testing.T) {
	t.Run("database url wins", func(t *testing.T) {
		c := cmd.Config{
			DatabaseURL: "postgres://shop:secret@db:5432/storefront?sslmode=disable",
			DBHost:      "ignored",
		}

		dsn, err := c.DSN()

		require.NoError(t, err)
		assert.Equal(t,
			"dbname='storefront' host='db' password='secret' port='5432' sslmode='disable' user='shop'",
			dsn)
	})

	t.Run("invalid database url", func(t *testing.T) {
		_, err := cmd.Config{DatabaseURL: "mysql://x"}.DSN()
		require.Error(t, err)
	})

	t.Run("db variables with defaults", func(t *testing.T) {
		c := cmd.Config{DBHost: "localhost", DBUser: "u", DBPassword: "p", DBName: "storefront"}

		dsn, err := c.DSN()

		require.NoError(t, err)
		assert.Equal(t, "host=localhost port=5432 user=u password=p dbname=storefront sslmode=disable", dsn)
	})

	t.Run("nothing configured", func(t *testing.T) {
		_, err := cmd.Config{}.DSN()
		require.Error(t, err)
	})
}

func TestConfig_Defaults(t *testing.T) {
	var c cmd.Config

	assert.Equal(t, "8080", c.Port())
	assert.Equal(t, geoapi.DefaultBaseURL, c.GeoAPIURL())

	timeout, err := c.GeoAPIRequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, geoapi.DefaultTimeout, timeout)

	ttl, err := c.SessionTTL()
	require.NoError(t, err)
	assert.Equal(t, 30*time.Minute, ttl)

	provinceTTL, err := c.ProvinceListTTL()
	require.NoError(t, err)
	assert.Equal(t, geoapi.DefaultProvinceCacheTTL, provinceTTL)

	kind, err := c.SelectionStoreKind()
	require.NoError(t, err)
	assert.Equal(t, cmd.SelectionStoreMemory, kind)

	assert.Equal(t, language.Vietnamese, c.DefaultLocale().Tag())
	assert.Equal(t, slog.LevelInfo, c.SlogLevel())
}

func TestConfig_Parsing(t *testing.T) {
	c := cmd.Config{
		GeoAPITimeout:      "3s",
		SelectionTTL:       "1h",
		SelectionStore:     "Redis",
		DefaultLocaleValue: "en",
		LogLevel:           "debug",
	}

	timeout, err := c.GeoAPIRequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, timeout)

	ttl, err := c.SessionTTL()
	require.NoError(t, err)
	assert.Equal(t, time.Hour, ttl)

	kind, err := c.SelectionStoreKind()
	require.NoError(t, err)
	assert.Equal(t, cmd.SelectionStoreRedis, kind)

	assert.Equal(t, language.English, c.DefaultLocale().Tag())
	assert.Equal(t, slog.LevelDebug, c.SlogLevel())
}

func TestConfig_Errors(t *testing.T) {
	_, err := cmd.Config{GeoAPITimeout: "soon"}.GeoAPIRequestTimeout()
	require.Error(t, err)

	_, err = cmd.Config{SelectionTTL: "-5m"}.SessionTTL()
	require.Error(t, err)

	_, err = cmd.Config{ProvinceCacheTTL: "0s"}.ProvinceListTTL()
	require.Error(t, err)

	_, err = cmd.Config{SelectionStore: "memcached"}.SelectionStoreKind()
	require.Error(t, err)
}
