// Command genpeaks generates a synthetic OSM XML extract of peak and hill
// nodes for exercising the fixer end to end without hitting Overpass. The
// generated names cover the shapes the classifier handles: elevation glued
// onto the name, bare elevation digits, trailing qualifiers, and clean names
// that should pass through untouched.
//
// Usage:
//
//	go run ./cmd/genpeaks -count 200 -seed 42 -out testdata/peaks.osm
package main

import (
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/paulmach/osm"

	"github.com/couchcryptid/osm-peak-fixer/internal/adapter/osmio"
)

// Bounding box roughly covering mainland Norway.
const (
	minLat, maxLat = 58.0, 71.0
	minLon, maxLon = 4.0, 31.0
)

var peakNames = []string{
	"Storefjell", "Blåtinden", "Snøhornet", "Litlefjell", "Grønkollen",
	"Kvitfjell", "Høgda", "Rundhaugen", "Svartnuten", "Midtfjellet",
	"Langfjella", "Steinkollen", "Vardefjell", "Bratthø", "Sølenkletten",
}

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	count := flag.Int("count", 100, "number of nodes to generate")
	seed := flag.Int64("seed", 1, "random seed for reproducible output")
	out := flag.String("out", "", "output path, stdout if empty")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	// A fixed clock keeps node timestamps stable across regenerations.
	clock := clockwork.NewFakeClockAt(time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))

	doc := &osmio.Document{}
	for i := 0; i < *count; i++ {
		doc.Nodes = append(doc.Nodes, makeNode(rng, clock.Now(), int64(i+1)))
	}

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create output: %w", err)
		}
		defer f.Close()
		w = f
	}

	if err := osmio.Write(w, doc, true); err != nil {
		return fmt.Errorf("write document: %w", err)
	}
	if *out != "" {
		log.Printf("wrote %d nodes: %s", *count, *out)
	}
	return nil
}

func makeNode(rng *rand.Rand, ts time.Time, id int64) *osm.Node {
	name := peakNames[rng.Intn(len(peakNames))]
	ele := 100 + rng.Intn(2400)

	natural := "peak"
	if rng.Intn(4) == 0 {
		natural = "hill"
	}

	tags := osm.Tags{{Key: "natural", Value: natural}}

	switch rng.Intn(6) {
	case 0, 1: // name with glued elevation, the defect under repair
		tags = append(tags, osm.Tag{Key: "name", Value: fmt.Sprintf("%s %d", name, ele)})
	case 2: // bare elevation digits as the whole name
		tags = append(tags, osm.Tag{Key: "name", Value: fmt.Sprint(ele)})
	case 3: // trailing qualifier after the digits
		tags = append(tags, osm.Tag{Key: "name", Value: fmt.Sprintf("%s %d moh.", name, ele)})
	default: // clean name, nothing for the fixer to do
		tags = append(tags, osm.Tag{Key: "name", Value: name})
	}

	// Some nodes already carry an ele tag, occasionally a conflicting one.
	if rng.Intn(3) == 0 {
		existing := ele
		if rng.Intn(4) == 0 {
			existing += 5 + rng.Intn(40)
		}
		tags = append(tags, osm.Tag{Key: "ele", Value: fmt.Sprint(existing)})
	}

	return &osm.Node{
		ID:        osm.NodeID(id),
		Lat:       minLat + rng.Float64()*(maxLat-minLat),
		Lon:       minLon + rng.Float64()*(maxLon-minLon),
		Version:   1,
		Visible:   true,
		Timestamp: ts,
		Tags:      tags,
	}
}
