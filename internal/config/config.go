package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds the application configuration.
type Config struct {
	ServerPort      int
	DatabasePath    string
	JWTSecret       string
	TokenTTL        time.Duration
	CoinAPIURL      string        // Upstream price source (CoinCap assets endpoint)
	RefreshSchedule string        // Cron expression for the catalog refresh job
	UsdIdrRate      float64       // USD -> IDR conversion rate applied during ingestion
	HTTPTimeout     time.Duration // Timeout for upstream fetches
}

// Load loads configuration from environment variables or sets defaults.
// JWT_SECRET has no default: a baked-in signing key would make every
// deployment's tokens forgeable, so startup fails instead.
func Load() (*Config, error) {
	portStr := getEnv("PORT", "8080")
	port, err := strconv.Atoi(portStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PORT %q: %w", portStr, err)
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	ttlStr := getEnv("TOKEN_TTL_MINUTES", "30")
	ttlMinutes, err := strconv.Atoi(ttlStr)
	if err != nil || ttlMinutes <= 0 {
		return nil, fmt.Errorf("invalid TOKEN_TTL_MINUTES %q", ttlStr)
	}

	rateStr := getEnv("USD_IDR_RATE", "15608.90")
	rate, err := strconv.ParseFloat(rateStr, 64)
	if err != nil || rate <= 0 {
		return nil, fmt.Errorf("invalid USD_IDR_RATE %q", rateStr)
	}

	return &Config{
		ServerPort:      port,
		DatabasePath:    getEnv("DATABASE_PATH", "./tracker_coin.db"),
		JWTSecret:       secret,
		TokenTTL:        time.Duration(ttlMinutes) * time.Minute,
		CoinAPIURL:      getEnv("COINCAP_API_URL", "https://api.coincap.io/v2/assets"),
		RefreshSchedule: getEnv("COIN_REFRESH_SCHEDULE", "@hourly"),
		UsdIdrRate:      rate,
		HTTPTimeout:     15 * time.Second,
	}, nil
}

// Helper to get an environment variable with a default value.
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
