package domain

import "context"

// Coordinate identifies a point as (longitude, latitude) in decimal degrees,
// the axis order the høydedata API expects.
type Coordinate struct {
	Lon float64
	Lat float64
}

// Elevation is one DTM lookup result.
type Elevation struct {
	Value  float64
	Source string // data source that resolved the point, e.g. "dtm1"
	Found  bool   // false when no tier had coverage for the coordinate
}

// ElevationResolver resolves terrain elevations for a batch of coordinates.
// Implementations must return an entry for every requested coordinate, with
// Found set to false for points outside DTM coverage. A transport or protocol
// failure is returned as an error and aborts the whole run; partial elevation
// data must never be silently accepted into a correctness-sensitive edit.
type ElevationResolver interface {
	Elevations(ctx context.Context, coords []Coordinate) (map[Coordinate]Elevation, error)
}
