package domain

import "github.com/paulmach/osm"

// Tag keys the fixer reads or writes.
const (
	KeyName    = "name"
	KeyEle     = "ele"
	KeyNatural = "natural"
)

// FindTag returns a pointer to the first tag with the given key, or nil.
// Extracts occasionally carry duplicate keys; first-seen wins.
func FindTag(n *osm.Node, key string) *osm.Tag {
	for i := range n.Tags {
		if n.Tags[i].Key == key {
			return &n.Tags[i]
		}
	}
	return nil
}

// IsCandidate reports whether the node is a named peak or hill. Everything
// else passes through the run unmodified.
func IsCandidate(n *osm.Node) bool {
	natural := FindTag(n, KeyNatural)
	if natural == nil || (natural.Value != "peak" && natural.Value != "hill") {
		return false
	}
	return FindTag(n, KeyName) != nil
}

// Coord returns the node position as a lookup coordinate.
func Coord(n *osm.Node) Coordinate {
	return Coordinate{Lon: n.Lon, Lat: n.Lat}
}
