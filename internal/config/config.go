package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// The høydedata API caps the number of points per request.
const maxBatchSize = 50

// Config holds all tool settings, populated from environment variables.
// The tool itself takes no command-line flags: it reads an OSM XML document
// from stdin and writes the corrected document to stdout.
type Config struct {
	// Kartverket høydedata lookup.
	BaseURL   string
	UserAgent string
	EPSG      int
	BatchSize int
	Timeout   time.Duration
	CacheSize int

	LogLevel  string
	LogFormat string

	// MetricsAddr, when set, serves /healthz and /metrics while a run is in
	// flight. Empty disables the server (the default for one-shot use).
	MetricsAddr string

	// XMLIndent pretty-prints the output document.
	XMLIndent bool
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	timeoutStr := envOrDefault("HOYDEDATA_TIMEOUT", "30s")
	timeout, err := time.ParseDuration(timeoutStr)
	if err != nil || timeout <= 0 {
		return nil, fmt.Errorf("invalid HOYDEDATA_TIMEOUT %q", timeoutStr)
	}

	epsg, err := parsePositiveInt("HOYDEDATA_EPSG", 4326)
	if err != nil {
		return nil, err
	}

	batchSize, err := parsePositiveInt("HOYDEDATA_BATCH_SIZE", maxBatchSize)
	if err != nil {
		return nil, err
	}
	if batchSize > maxBatchSize {
		return nil, fmt.Errorf("HOYDEDATA_BATCH_SIZE must be at most %d", maxBatchSize)
	}

	cacheSize, err := parsePositiveInt("CACHE_SIZE", 1024)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		BaseURL:     envOrDefault("HOYDEDATA_BASE_URL", "https://ws.geonorge.no/hoydedata/v1"),
		UserAgent:   envOrDefault("HOYDEDATA_USER_AGENT", "osm-fix-peak-names-with-elevation"),
		EPSG:        epsg,
		BatchSize:   batchSize,
		Timeout:     timeout,
		CacheSize:   cacheSize,
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "text"),
		MetricsAddr: os.Getenv("METRICS_ADDR"),
		XMLIndent:   os.Getenv("XML_INDENT") == "true",
	}

	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("HOYDEDATA_BASE_URL is required")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func parsePositiveInt(key string, def int) (int, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("invalid %s %q", key, s)
	}
	return n, nil
}
