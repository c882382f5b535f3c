package domain

import "math"

const (
	// TerrainTolerance is the maximum accepted absolute difference in meters
	// between the elevation embedded in the name and the DTM elevation.
	TerrainTolerance = 20.0

	// ExistingTolerance is the maximum accepted absolute difference in meters
	// between the embedded elevation and a pre-existing ele tag.
	ExistingTolerance = 10.0
)

// Evaluation is the decision context for one candidate node.
type Evaluation struct {
	Name     string
	Match    NameMatch
	Claimed  float64    // elevation parsed from the name's digit string
	Existing *float64   // numeric value of an existing ele tag, nil if absent
	Terrain  *Elevation // DTM lookup result, nil when not queried
}

// Rejection explains why a candidate was left untouched. Reason is a stable
// slug used as a metric label; Args are structured log attributes with the
// values relevant for diagnosis.
type Rejection struct {
	Reason string
	Args   []any
}

// Rejection reason slugs.
const (
	ReasonTrailingContent  = "trailing_content"
	ReasonTerrainUnknown   = "dtm_unavailable"
	ReasonTerrainMismatch  = "dtm_mismatch"
	ReasonExistingMismatch = "existing_ele_mismatch"
)

// rule is a single predicate check over the decision context. Returning nil
// means the rule passes.
type rule func(Evaluation) *Rejection

// rules is evaluated in order with short-circuit rejection. Later rules may
// rely on earlier ones: terrainAgreement assumes terrainKnown passed.
var rules = []rule{
	trailingRemainder,
	terrainKnown,
	terrainAgreement,
	existingAgreement,
}

// Evaluate runs the acceptance rules in order and returns the first
// rejection, or nil when the correction is trustworthy.
func Evaluate(e Evaluation) *Rejection {
	for _, r := range rules {
		if rej := r(e); rej != nil {
			return rej
		}
	}
	return nil
}

// trailingRemainder rejects names with content after the digits, such as
// "Snøhetta 2286 (highest)"; the digits are then probably not a pure
// elevation suffix, regardless of whether the elevation would agree.
func trailingRemainder(e Evaluation) *Rejection {
	if e.Match.Remainder == "" {
		return nil
	}
	return &Rejection{
		Reason: ReasonTrailingContent,
		Args:   []any{"remainder", e.Match.Remainder},
	}
}

func terrainKnown(e Evaluation) *Rejection {
	if e.Terrain != nil && e.Terrain.Found {
		return nil
	}
	return &Rejection{Reason: ReasonTerrainUnknown}
}

func terrainAgreement(e Evaluation) *Rejection {
	diff := math.Abs(e.Terrain.Value - e.Claimed)
	if diff <= TerrainTolerance {
		return nil
	}
	return &Rejection{
		Reason: ReasonTerrainMismatch,
		Args:   []any{"dtm_ele", e.Terrain.Value, "diff_m", diff},
	}
}

func existingAgreement(e Evaluation) *Rejection {
	if e.Existing == nil {
		return nil
	}
	diff := math.Abs(e.Claimed - *e.Existing)
	if diff <= ExistingTolerance {
		return nil
	}
	return &Rejection{
		Reason: ReasonExistingMismatch,
		Args:   []any{"existing_ele", *e.Existing, "diff_m", diff},
	}
}
