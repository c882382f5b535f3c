package domain

import (
	"strconv"

	"github.com/paulmach/osm"
)

// Audit tag keys and values appended by ApplyFix.
const (
	KeyNote         = "NOTE"
	KeyNameOriginal = "name:original"
	KeyTerrainEle   = "ele:kartverket-dmt"

	NoteFixed = "fixed name with elevation"
)

// ApplyFix rewrites the node's tags for an accepted correction: the name tag
// is reduced to the name part, the embedded elevation becomes a proper ele
// tag, and audit tags record the original name and the DTM value. Tags are
// only set or appended, never removed; in particular a conflicting
// pre-existing ele tag stays in place for a human to reconcile.
//
// The caller guarantees the node carries a name tag.
func ApplyFix(n *osm.Node, match NameMatch, terrain Elevation) {
	nameTag := FindTag(n, KeyName)
	original := nameTag.Value
	nameTag.Value = match.NamePart

	n.Tags = append(n.Tags,
		osm.Tag{Key: KeyEle, Value: match.ElevationPart},
		osm.Tag{Key: KeyNote, Value: NoteFixed},
		osm.Tag{Key: KeyNameOriginal, Value: original},
		osm.Tag{Key: KeyTerrainEle, Value: FormatElevation(terrain.Value)},
	)
}

// FormatElevation renders a DTM elevation in its shortest exact decimal
// form: "1195" for a whole number, "1194.6" otherwise.
func FormatElevation(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
