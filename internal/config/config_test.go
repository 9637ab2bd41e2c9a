package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "unit-test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.ServerPort)
	assert.Equal(t, "./tracker_coin.db", cfg.DatabasePath)
	assert.Equal(t, "unit-test-secret", cfg.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.TokenTTL)
	assert.Equal(t, "https://api.coincap.io/v2/assets", cfg.CoinAPIURL)
	assert.Equal(t, "@hourly", cfg.RefreshSchedule)
	assert.Equal(t, 15608.90, cfg.UsdIdrRate)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s")
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_TTL_MINUTES", "5")
	t.Setenv("USD_IDR_RATE", "16000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.ServerPort)
	assert.Equal(t, 5*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 16000.0, cfg.UsdIdrRate)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value string
	}{
		{name: "bad port", key: "PORT", value: "not-a-port"},
		{name: "bad ttl", key: "TOKEN_TTL_MINUTES", value: "-10"},
		{name: "bad rate", key: "USD_IDR_RATE", value: "zero"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "s")
			t.Setenv(tt.key, tt.value)

			_, err := Load()
			assert.Error(t, err)
		})
	}
}
