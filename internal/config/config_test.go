package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, int64(40), cfg.Storefront.DeliveryFee)
	assert.Equal(t, 6, cfg.Storefront.StoreLimit)
	assert.Equal(t, 8, cfg.Storefront.ProductLimit)
	assert.Equal(t, 24*time.Hour, cfg.Storefront.CartSessionTTL)
	assert.True(t, cfg.IsDevelopment())
	assert.False(t, cfg.IsProduction())
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("STOREFRONT_DELIVERY_FEE", "55")
	t.Setenv("STOREFRONT_STORE_LIMIT", "3")
	t.Setenv("CART_SESSION_TTL", "1h")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(55), cfg.Storefront.DeliveryFee)
	assert.Equal(t, 3, cfg.Storefront.StoreLimit)
	assert.Equal(t, time.Hour, cfg.Storefront.CartSessionTTL)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.Security.CORSAllowedOrigins)
}

func TestValidateRejectsBadValues(t *testing.T) {
	t.Setenv("STOREFRONT_DELIVERY_FEE", "-1")
	_, err := Load()
	assert.Error(t, err)
}

func TestEnvHelpersIgnoreMalformedValues(t *testing.T) {
	t.Setenv("DB_MAX_OPEN_CONNS", "not-a-number")
	t.Setenv("APP_DEBUG", "not-a-bool")
	t.Setenv("SERVER_READ_TIMEOUT", "not-a-duration")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.True(t, cfg.App.Debug)
	assert.Equal(t, 30*time.Second, cfg.Server.ReadTimeout)
}

func TestDSNBuilders(t *testing.T) {
	cfg := &Config{
		Database: DatabaseConfig{
			Host: "db", Port: "5432", Name: "cartigo", User: "u", Password: "p", SSLMode: "disable",
		},
		Redis: RedisConfig{Host: "cache", Port: "6379"},
	}

	assert.Equal(t, "host=db port=5432 user=u password=p dbname=cartigo sslmode=disable", cfg.GetDatabaseDSN())
	assert.Equal(t, "cache:6379", cfg.GetRedisAddr())
}
