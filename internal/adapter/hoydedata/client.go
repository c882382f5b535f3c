// Package hoydedata implements domain.ElevationResolver against the
// Kartverket høydedata API (https://ws.geonorge.no/hoydedata/v1), the
// authoritative DTM service for Norway.
package hoydedata

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/couchcryptid/osm-peak-fixer/internal/domain"
	"github.com/couchcryptid/osm-peak-fixer/internal/observability"
)

const (
	defaultBaseURL   = "https://ws.geonorge.no/hoydedata/v1"
	defaultUserAgent = "osm-fix-peak-names-with-elevation"
	defaultEPSG      = 4326

	// maxChunk is the API's per-request point limit.
	maxChunk = 50
)

// defaultTiers is the endpoint waterfall: the high-resolution DTM1 source is
// tried first, then the generic endpoint which falls back across all data
// sources. Each tier resolves the points it can; the rest move on to the
// next tier. A point unresolved after the last tier has no DTM coverage
// (some coastline points and areas in the far north).
var defaultTiers = []string{"datakilder/dtm1/punkt", "punkt"}

// Client queries the høydedata point endpoints over HTTP.
type Client struct {
	baseURL    string
	userAgent  string
	epsg       int
	chunkSize  int
	tiers      []string
	httpClient *http.Client
	logger     *slog.Logger
	metrics    *observability.Metrics
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the API base URL (mainly for tests).
func WithBaseURL(u string) ClientOption {
	return func(c *Client) { c.baseURL = u }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) ClientOption {
	return func(c *Client) { c.userAgent = ua }
}

// WithEPSG sets the coordinate reference system of the request coordinates.
func WithEPSG(code int) ClientOption {
	return func(c *Client) { c.epsg = code }
}

// WithChunkSize caps the number of coordinates per request.
func WithChunkSize(n int) ClientOption {
	return func(c *Client) {
		if n > 0 && n <= maxChunk {
			c.chunkSize = n
		}
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) ClientOption {
	return func(c *Client) { c.httpClient.Timeout = d }
}

// NewClient creates a høydedata client.
func NewClient(logger *slog.Logger, metrics *observability.Metrics, options ...ClientOption) *Client {
	c := &Client{
		baseURL:    defaultBaseURL,
		userAgent:  defaultUserAgent,
		epsg:       defaultEPSG,
		chunkSize:  maxChunk,
		tiers:      defaultTiers,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
		metrics:    metrics,
	}
	for _, option := range options {
		option(c)
	}
	return c
}

// Elevations resolves the given coordinates through the endpoint waterfall.
// The returned map has an entry for every requested coordinate. Any HTTP or
// protocol failure is returned as an error; there is no retry, a partial run
// must fail loudly rather than accept incomplete elevation data.
func (c *Client) Elevations(ctx context.Context, coords []domain.Coordinate) (map[domain.Coordinate]domain.Elevation, error) {
	results := make(map[domain.Coordinate]domain.Elevation, len(coords))
	pending := append([]domain.Coordinate(nil), coords...)

	for i, tier := range c.tiers {
		if len(pending) == 0 {
			break
		}
		lastTier := i == len(c.tiers)-1

		var next []domain.Coordinate
		for start := 0; start < len(pending); start += c.chunkSize {
			end := min(start+c.chunkSize, len(pending))

			points, err := c.lookup(ctx, tier, pending[start:end])
			if err != nil {
				return nil, err
			}

			for _, p := range points {
				coord := domain.Coordinate{Lon: p.X, Lat: p.Y}
				switch {
				case p.Z != nil:
					c.logger.Debug("resolved elevation", "tier", tier, "lon", p.X, "lat", p.Y, "ele", *p.Z)
					results[coord] = domain.Elevation{
						Value:  *p.Z,
						Source: p.DataSource,
						Found:  true,
					}
				case lastTier:
					results[coord] = domain.Elevation{Found: false}
					c.metrics.CoordinatesMissing.Inc()
				default:
					// One more try in the next tier.
					next = append(next, coord)
				}
			}
		}
		pending = next
	}

	c.logMissing(len(coords), results)
	return results, nil
}

// logMissing reports run-level lookup diagnostics: an all-miss batch of any
// size usually means the API itself is unhealthy.
func (c *Client) logMissing(total int, results map[domain.Coordinate]domain.Elevation) {
	missing := 0
	for _, e := range results {
		if !e.Found {
			missing++
		}
	}
	switch {
	case missing == total && total > 10:
		c.logger.Warn("no elevations found - perhaps API is currently down")
	case missing > 0:
		c.logger.Info("elevations not found", "count", missing)
	}
}

// pointResponse mirrors the høydedata JSON payload.
type pointResponse struct {
	Punkter []point `json:"punkter"`
}

type point struct {
	X          float64  `json:"x"`
	Y          float64  `json:"y"`
	Z          *float64 `json:"z"` // null when the tier has no coverage
	DataSource string   `json:"datakilde"`
}

func (c *Client) lookup(ctx context.Context, tier string, coords []domain.Coordinate) ([]point, error) {
	pts := make([][]float64, len(coords))
	for i, coord := range coords {
		pts[i] = []float64{coord.Lon, coord.Lat}
	}
	payload, err := json.Marshal(pts)
	if err != nil {
		return nil, fmt.Errorf("encode points: %w", err)
	}

	params := url.Values{
		"punkter":  {string(payload)},
		"geojson":  {"false"},
		"koordsys": {fmt.Sprint(c.epsg)},
	}
	fullURL := fmt.Sprintf("%s/%s?%s", c.baseURL, tier, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.LookupDuration.WithLabelValues(tier).Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.LookupRequests.WithLabelValues(tier, "error").Inc()
		return nil, fmt.Errorf("høydedata request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.LookupRequests.WithLabelValues(tier, "error").Inc()
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("høydedata API error: status %d: %s", resp.StatusCode, body)
	}

	var out pointResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		c.metrics.LookupRequests.WithLabelValues(tier, "error").Inc()
		return nil, fmt.Errorf("decode response: %w", err)
	}

	c.metrics.LookupRequests.WithLabelValues(tier, "success").Inc()
	return out.Punkter, nil
}
