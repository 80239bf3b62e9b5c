package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "ecommerce-shop", cfg.MongoDB)
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.False(t, cfg.Production)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("MONGO_DB", "shop-test")
	t.Setenv("PORT", "8080")
	t.Setenv("JWT_SECRET", "hunter2hunter2")
	t.Setenv("TOKEN_TTL_HOURS", "2")
	t.Setenv("APP_ENV", "production")

	cfg := Load()

	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoURI)
	assert.Equal(t, "shop-test", cfg.MongoDB)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "hunter2hunter2", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.True(t, cfg.Production)
}

func TestBadTTLFallsBack(t *testing.T) {
	t.Setenv("TOKEN_TTL_HOURS", "not-a-number")

	cfg := Load()

	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
}
