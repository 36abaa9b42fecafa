package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

const DefaultSearchURL = "https://portal.uooutlands.com/api/VendorSearch/Search"

type Config struct {
	AccessToken string // Bearer token for the vendor search API
	SearchURL   string
	OutputPath  string
	SheetName   string

	// Pacing: RequestsPerInterval requests every RateInterval
	RequestsPerInterval int
	RateInterval        time.Duration
	RequestTimeout      time.Duration

	TermsFile   string // optional YAML list overriding the built-in terms
	DatabaseURL string // optional MySQL DSN, empty disables history
	Port        string
	Environment string
}

func Load() *Config {
	cfg := &Config{
		AccessToken: getEnv("ACCESS_TOKEN", ""),
		SearchURL:   getEnv("OUTLANDS_SEARCH_URL", DefaultSearchURL),
		OutputPath:  getEnv("OUTPUT_PATH", "item_prices.xlsx"),
		SheetName:   getEnv("OUTPUT_SHEET", "Sheet1"),

		RequestsPerInterval: getEnvInt("RATE_REQUESTS", 1),
		RateInterval:        getEnvDuration("RATE_INTERVAL", 5*time.Second),
		RequestTimeout:      getEnvDuration("REQUEST_TIMEOUT", 30*time.Second),

		TermsFile:   getEnv("TERMS_FILE", ""),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		Port:        getEnv("PORT", "8080"),
		Environment: getEnv("ENVIRONMENT", "development"),
	}

	if cfg.AccessToken == "" {
		log.Println("⚠️  ACCESS_TOKEN not set, requests will be sent without credentials")
	}
	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v <= 0 {
		log.Printf("invalid %s=%q, using %d", key, raw, defaultValue)
		return defaultValue
	}
	return v
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	v, err := time.ParseDuration(raw)
	if err != nil || v <= 0 {
		log.Printf("invalid %s=%q, using %v", key, raw, defaultValue)
		return defaultValue
	}
	return v
}
