// Package osmio reads and writes OSM XML documents over io streams. It is
// the tool's only transport: a document in on stdin, the corrected document
// out on stdout.
package osmio

import (
	"context"
	"fmt"
	"io"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmxml"
)

// Document is one parsed OSM extract. Element order within each kind is
// preserved; ways and relations only ever pass through untouched.
type Document struct {
	Nodes     osm.Nodes
	Ways      osm.Ways
	Relations osm.Relations
}

// Read parses an OSM XML document from r.
func Read(ctx context.Context, r io.Reader) (*Document, error) {
	doc := &Document{}

	scanner := osmxml.New(ctx, r)
	defer scanner.Close()

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			doc.Nodes = append(doc.Nodes, o)
		case *osm.Way:
			doc.Ways = append(doc.Ways, o)
		case *osm.Relation:
			doc.Relations = append(doc.Relations, o)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scan osm xml: %w", err)
	}

	return doc, nil
}
