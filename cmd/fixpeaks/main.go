// Command fixpeaks corrects peak and hill nodes whose name tag has an
// elevation glued onto it. It reads an OSM XML document from stdin, validates
// each embedded elevation against the Kartverket høydedata DTM service, and
// writes the corrected document to stdout. Logs and diagnostics go to stderr.
//
// Usage:
//
//	fixpeaks < peaks.osm > fixed.osm
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	httpadapter "github.com/couchcryptid/osm-peak-fixer/internal/adapter/http"
	"github.com/couchcryptid/osm-peak-fixer/internal/adapter/hoydedata"
	"github.com/couchcryptid/osm-peak-fixer/internal/adapter/osmio"
	"github.com/couchcryptid/osm-peak-fixer/internal/config"
	"github.com/couchcryptid/osm-peak-fixer/internal/observability"
	"github.com/couchcryptid/osm-peak-fixer/internal/pipeline"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	_ = godotenv.Load() // optional .env, environment wins

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(cfg)
	metrics := observability.NewMetrics()

	client := hoydedata.NewClient(logger, metrics,
		hoydedata.WithBaseURL(cfg.BaseURL),
		hoydedata.WithUserAgent(cfg.UserAgent),
		hoydedata.WithEPSG(cfg.EPSG),
		hoydedata.WithChunkSize(cfg.BatchSize),
		hoydedata.WithTimeout(cfg.Timeout),
	)
	resolver, err := hoydedata.NewCachedResolver(client, cfg.CacheSize, metrics)
	if err != nil {
		return fmt.Errorf("create elevation cache: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Optional health and metrics endpoints for long runs over large extracts.
	if cfg.MetricsAddr != "" {
		srv := httpadapter.NewServer(cfg.MetricsAddr, logger)
		go func() {
			if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("http server error", "error", err)
			}
		}()
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error("http server shutdown error", "error", err)
			}
		}()
	}

	doc, err := osmio.Read(ctx, os.Stdin)
	if err != nil {
		return fmt.Errorf("read input document: %w", err)
	}
	logger.Info("document loaded",
		"nodes", len(doc.Nodes), "ways", len(doc.Ways), "relations", len(doc.Relations))

	p := pipeline.New(resolver, logger, metrics)
	if _, err := p.Run(ctx, doc); err != nil {
		// Nothing is written on failure; partial output would be worse
		// than none.
		return fmt.Errorf("run: %w", err)
	}

	if err := osmio.Write(os.Stdout, doc, cfg.XMLIndent); err != nil {
		return fmt.Errorf("write output document: %w", err)
	}
	return nil
}
