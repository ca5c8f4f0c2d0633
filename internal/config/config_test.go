package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newViper(env map[string]interface{}) *viper.Viper {
	v := viper.New()
	setDefaults(v)
	for k, val := range env {
		v.Set(k, val)
	}
	return v
}

func TestFromViper_Defaults(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]interface{}{"JWT_SECRET": "s"}))
	require.NoError(t, err)

	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, ":3000", cfg.Addr())
	assert.Equal(t, 24*time.Hour, cfg.JWTExpiresIn)
	assert.Equal(t, 12, cfg.BcryptCost)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowOrigins)
	assert.False(t, cfg.OrderReserveStock)
	assert.Empty(t, cfg.RabbitMQURL)
	assert.Equal(t, "host=localhost port=5432 user=postgres password=postgres dbname=doka sslmode=disable", cfg.DSN())
}

func TestFromViper_JWTSecretRequired(t *testing.T) {
	_, err := fromViper(newViper(nil))
	assert.EqualError(t, err, "JWT_SECRET is required")
}

func TestFromViper_InvalidDuration(t *testing.T) {
	_, err := fromViper(newViper(map[string]interface{}{"JWT_SECRET": "s", "JWT_EXPIRES_IN": "90d"}))
	assert.Error(t, err)
}

func TestFromViper_Overrides(t *testing.T) {
	cfg, err := fromViper(newViper(map[string]interface{}{
		"JWT_SECRET":          "s",
		"DATABASE_URL":        "postgres://u:p@db:5432/x",
		"PORT":                ":8080",
		"ORDER_RESERVE_STOCK": "true",
		"CORS_ALLOW_ORIGINS":  "http://a.test, http://b.test",
	}))
	require.NoError(t, err)

	assert.Equal(t, "postgres://u:p@db:5432/x", cfg.DSN())
	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.OrderReserveStock)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORSAllowOrigins)
}
