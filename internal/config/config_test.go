package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "https://ws.geonorge.no/hoydedata/v1", cfg.BaseURL)
	assert.Equal(t, "osm-fix-peak-names-with-elevation", cfg.UserAgent)
	assert.Equal(t, 4326, cfg.EPSG)
	assert.Equal(t, 50, cfg.BatchSize)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 1024, cfg.CacheSize)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Empty(t, cfg.MetricsAddr)
	assert.False(t, cfg.XMLIndent)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("HOYDEDATA_BASE_URL", "http://localhost:8081/hoydedata/v1")
	t.Setenv("HOYDEDATA_USER_AGENT", "fixpeaks-test")
	t.Setenv("HOYDEDATA_EPSG", "25833")
	t.Setenv("HOYDEDATA_BATCH_SIZE", "10")
	t.Setenv("HOYDEDATA_TIMEOUT", "5s")
	t.Setenv("CACHE_SIZE", "64")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("METRICS_ADDR", ":9090")
	t.Setenv("XML_INDENT", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8081/hoydedata/v1", cfg.BaseURL)
	assert.Equal(t, "fixpeaks-test", cfg.UserAgent)
	assert.Equal(t, 25833, cfg.EPSG)
	assert.Equal(t, 10, cfg.BatchSize)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
	assert.Equal(t, 64, cfg.CacheSize)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, ":9090", cfg.MetricsAddr)
	assert.True(t, cfg.XMLIndent)
}

func TestLoad_InvalidTimeout(t *testing.T) {
	t.Setenv("HOYDEDATA_TIMEOUT", "not-a-duration")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOYDEDATA_TIMEOUT")
}

func TestLoad_NegativeTimeout(t *testing.T) {
	t.Setenv("HOYDEDATA_TIMEOUT", "-1s")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOYDEDATA_TIMEOUT")
}

func TestLoad_InvalidBatchSize(t *testing.T) {
	t.Setenv("HOYDEDATA_BATCH_SIZE", "0")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOYDEDATA_BATCH_SIZE")
}

func TestLoad_BatchSizeTooLarge(t *testing.T) {
	t.Setenv("HOYDEDATA_BATCH_SIZE", "200")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOYDEDATA_BATCH_SIZE")
}

func TestLoad_InvalidEPSG(t *testing.T) {
	t.Setenv("HOYDEDATA_EPSG", "wgs84")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "HOYDEDATA_EPSG")
}

func TestLoad_InvalidCacheSize(t *testing.T) {
	t.Setenv("CACHE_SIZE", "-5")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CACHE_SIZE")
}
