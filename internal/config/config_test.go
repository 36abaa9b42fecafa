package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{
		"ACCESS_TOKEN", "OUTLANDS_SEARCH_URL", "OUTPUT_PATH", "OUTPUT_SHEET",
		"RATE_REQUESTS", "RATE_INTERVAL", "REQUEST_TIMEOUT", "TERMS_FILE", "DATABASE_URL", "PORT",
	} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, DefaultSearchURL, cfg.SearchURL)
	require.Equal(t, "item_prices.xlsx", cfg.OutputPath)
	require.Equal(t, "Sheet1", cfg.SheetName)
	require.Equal(t, 1, cfg.RequestsPerInterval)
	require.Equal(t, 5*time.Second, cfg.RateInterval)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
	require.Empty(t, cfg.DatabaseURL)
	require.Equal(t, "8080", cfg.Port)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("ACCESS_TOKEN", "secret")
	t.Setenv("RATE_REQUESTS", "3")
	t.Setenv("RATE_INTERVAL", "10s")
	t.Setenv("OUTPUT_PATH", "out.xlsx")

	cfg := Load()
	require.Equal(t, "secret", cfg.AccessToken)
	require.Equal(t, 3, cfg.RequestsPerInterval)
	require.Equal(t, 10*time.Second, cfg.RateInterval)
	require.Equal(t, "out.xlsx", cfg.OutputPath)
}

func TestLoadInvalidNumbersFallBack(t *testing.T) {
	t.Setenv("RATE_REQUESTS", "many")
	t.Setenv("RATE_INTERVAL", "-2s")
	t.Setenv("REQUEST_TIMEOUT", "soon")

	cfg := Load()
	require.Equal(t, 1, cfg.RequestsPerInterval)
	require.Equal(t, 5*time.Second, cfg.RateInterval)
	require.Equal(t, 30*time.Second, cfg.RequestTimeout)
}
