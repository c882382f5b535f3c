// Package pipeline orchestrates the single-pass correction run: classify
// each candidate node's name, validate the embedded elevation against the
// DTM service, and rewrite accepted nodes in place.
package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/paulmach/osm"

	"github.com/couchcryptid/osm-peak-fixer/internal/adapter/osmio"
	"github.com/couchcryptid/osm-peak-fixer/internal/domain"
	"github.com/couchcryptid/osm-peak-fixer/internal/observability"
)

// Pipeline processes one document sequentially, one node at a time.
type Pipeline struct {
	resolver domain.ElevationResolver
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Pipeline with the given elevation resolver and observability.
func New(resolver domain.ElevationResolver, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		resolver: resolver,
		logger:   logger,
		metrics:  metrics,
	}
}

// Stats summarizes one run.
type Stats struct {
	Nodes      int // nodes in the document
	Candidates int // named peak/hill nodes
	Matched    int // candidates whose name classified as embedding an elevation
	Fixed      int // candidates rewritten
	Skipped    int // matched candidates left untouched
}

// Run mutates the document in place. Per-node problems are logged and
// skipped; a resolver failure aborts the run immediately. There is no retry,
// and the caller must not emit partial output.
func (p *Pipeline) Run(ctx context.Context, doc *osmio.Document) (Stats, error) {
	var stats Stats

	for _, node := range doc.Nodes {
		if err := ctx.Err(); err != nil {
			return stats, err
		}

		stats.Nodes++
		p.metrics.NodesScanned.Inc()

		if !domain.IsCandidate(node) {
			continue
		}
		stats.Candidates++

		if err := p.processNode(ctx, node, &stats); err != nil {
			return stats, err
		}
	}

	p.logger.Info("run complete",
		"nodes", stats.Nodes,
		"candidates", stats.Candidates,
		"matched", stats.Matched,
		"fixed", stats.Fixed,
		"skipped", stats.Skipped,
	)
	return stats, nil
}

func (p *Pipeline) processNode(ctx context.Context, node *osm.Node, stats *Stats) error {
	name := domain.FindTag(node, domain.KeyName).Value

	match, ok := domain.ParseName(name)
	if !ok {
		return nil
	}
	stats.Matched++

	claimed, err := strconv.ParseFloat(match.ElevationPart, 64)
	if err != nil {
		// The elevation part is all digits, so this only happens for an
		// absurdly long number; skip rather than crash.
		p.logger.Warn("elevation digits do not parse, skipping", "name", name, "error", err)
		stats.Skipped++
		return nil
	}

	eval := domain.Evaluation{
		Name:    name,
		Match:   match,
		Claimed: claimed,
	}

	if eleTag := domain.FindTag(node, domain.KeyEle); eleTag != nil && eleTag.Value != "" {
		v, parseErr := strconv.ParseFloat(strings.TrimSpace(eleTag.Value), 64)
		if parseErr != nil {
			p.logger.Warn("existing ele tag is not numeric, ignoring it",
				"name", name, "ele", eleTag.Value)
		} else {
			eval.Existing = &v
		}
	}

	// The remainder rule rejects regardless of elevation agreement, so only
	// consult the DTM service when the name can still pass.
	if match.Remainder == "" {
		coord := domain.Coord(node)
		elevations, err := p.resolver.Elevations(ctx, []domain.Coordinate{coord})
		if err != nil {
			return fmt.Errorf("resolve elevation for %q: %w", name, err)
		}
		if e, ok := elevations[coord]; ok {
			eval.Terrain = &e
		}
	}

	if rej := domain.Evaluate(eval); rej != nil {
		p.skip(node, name, rej, stats)
		return nil
	}

	domain.ApplyFix(node, match, *eval.Terrain)
	stats.Fixed++
	p.metrics.NodesFixed.Inc()

	if match.NamePart == "" {
		p.logger.Warn("fix leaves node without a name", "node_id", node.ID, "name_original", name)
	}
	p.logger.Info("fixed name with elevation",
		"node_id", node.ID,
		"name", match.NamePart,
		"ele", match.ElevationPart,
		"dtm_ele", domain.FormatElevation(eval.Terrain.Value),
	)
	return nil
}

func (p *Pipeline) skip(node *osm.Node, name string, rej *domain.Rejection, stats *Stats) {
	stats.Skipped++
	p.metrics.NodesSkipped.WithLabelValues(rej.Reason).Inc()

	args := append([]any{"node_id", node.ID, "name", name, "reason", rej.Reason}, rej.Args...)
	p.logger.Warn("skipping candidate", args...)
}
