package config

import (
	"log"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	DatabaseURL     string
	Port            string
	IsProduction    bool
	FrontendBaseURL string

	// Rate pipeline
	RateFeedBaseURL     string
	RateFetchTimeout    time.Duration
	HistoricalTimeout   time.Duration
	RateRefreshInterval time.Duration
	BulkRateConcurrency int

	// API rate limiting, e.g. "120-M" (120 requests per minute per IP)
	APIRateLimit string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	viper.SetDefault("PGSQL_URL", "")
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("IS_PRODUCTION", false)
	viper.SetDefault("FRONTEND_BASE_URL", "http://localhost:3000")
	viper.SetDefault("RATE_FEED_BASE_URL", "https://www.tcmb.gov.tr/kurlar")
	viper.SetDefault("RATE_FETCH_TIMEOUT", "5s")
	viper.SetDefault("HISTORICAL_RATE_TIMEOUT", "3s")
	viper.SetDefault("RATE_REFRESH_INTERVAL", "5m")
	viper.SetDefault("BULK_RATE_CONCURRENCY", 10)
	viper.SetDefault("API_RATE_LIMIT", "120-M")

	viper.AutomaticEnv()

	cfg := &Config{}

	cfg.DatabaseURL = viper.GetString("PGSQL_URL")
	if cfg.DatabaseURL == "" {
		log.Println("Warning: PGSQL_URL environment variable not set.")
	}

	cfg.Port = viper.GetString("PORT")
	cfg.IsProduction = viper.GetBool("IS_PRODUCTION")
	cfg.FrontendBaseURL = viper.GetString("FRONTEND_BASE_URL")
	cfg.RateFeedBaseURL = viper.GetString("RATE_FEED_BASE_URL")
	cfg.APIRateLimit = viper.GetString("API_RATE_LIMIT")

	cfg.RateFetchTimeout = durationOrDefault("RATE_FETCH_TIMEOUT", 5*time.Second)
	cfg.HistoricalTimeout = durationOrDefault("HISTORICAL_RATE_TIMEOUT", 3*time.Second)
	cfg.RateRefreshInterval = durationOrDefault("RATE_REFRESH_INTERVAL", 5*time.Minute)

	cfg.BulkRateConcurrency = viper.GetInt("BULK_RATE_CONCURRENCY")
	if cfg.BulkRateConcurrency <= 0 {
		cfg.BulkRateConcurrency = 10
		log.Printf("Warning: Invalid BULK_RATE_CONCURRENCY. Defaulting to %d.\n", cfg.BulkRateConcurrency)
	}

	return cfg, nil
}

func durationOrDefault(key string, fallback time.Duration) time.Duration {
	raw := viper.GetString(key)
	d, err := time.ParseDuration(raw)
	if err != nil || d <= 0 {
		if raw != "" {
			log.Printf("Warning: Invalid value for %s ('%s'). Defaulting to %s.\n", key, raw, fallback)
		}
		return fallback
	}
	return d
}
