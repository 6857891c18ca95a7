package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDefaults(t *testing.T) {
	cfg, err := Parse()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, 7*24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "saree_session", cfg.SessionCookie)
	assert.Equal(t, 10, cfg.BcryptCost)
	assert.Equal(t, 2999.0, cfg.FreeShippingThreshold)
	assert.Equal(t, 199.0, cfg.ShippingFee)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.False(t, cfg.EventsEnabled())
	assert.False(t, cfg.IsProduction())
}

func TestParseOverrides(t *testing.T) {
	t.Setenv("ENV", "production")
	t.Setenv("SHOP_ADDR", ":9090")
	t.Setenv("SHOP_SESSION_TTL", "24h")
	t.Setenv("SHOP_COOKIE_SECURE", "true")
	t.Setenv("SHOP_KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("SHOP_CORS_ORIGINS", "https://shop.example,https://admin.shop.example")

	cfg, err := Parse()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.True(t, cfg.CookieSecure)
	assert.True(t, cfg.EventsEnabled())
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, []string{"https://shop.example", "https://admin.shop.example"}, cfg.CORSOrigins)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name, key, value, want string
	}{
		{"unparseable duration", "SHOP_SESSION_TTL", "a week", "parse env:"},
		{"non-positive ttl", "SHOP_SESSION_TTL", "0s", "SHOP_SESSION_TTL"},
		{"cost too low", "SHOP_BCRYPT_COST", "2", "SHOP_BCRYPT_COST"},
		{"negative fee", "SHOP_SHIPPING_FEE", "-1", "SHOP_SHIPPING_FEE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := Parse()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
