package domain

import (
	"regexp"
	"strings"
)

var (
	// nameWithElevationRe matches "<non-digit prefix> <digits><remainder>",
	// e.g. "Storefjell 1200" splits into ("Storefjell", "1200", "").
	nameWithElevationRe = regexp.MustCompile(`\A([^0-9]*)\s+([0-9]+)(.*)\z`)

	// onlyElevationRe matches a name that starts with the digits themselves,
	// such as a bare "1340".
	onlyElevationRe = regexp.MustCompile(`\A([0-9]+)\s*(.*)\z`)
)

// NameMatch is the result of splitting a raw name into its parts.
// A non-empty Remainder disqualifies the node later in the rule chain.
type NameMatch struct {
	NamePart      string
	ElevationPart string // ASCII digits only
	Remainder     string
}

// ParseName classifies a raw name string. The two patterns are tried in
// order and must match the full string; a bare numeric name and a
// "word + number" name are structurally different shapes of the same defect.
// Returns false when neither pattern matches, in which case the node is not
// a correction candidate.
func ParseName(name string) (NameMatch, bool) {
	if m := nameWithElevationRe.FindStringSubmatch(name); m != nil {
		return NameMatch{
			NamePart:      strings.TrimRight(m[1], " \t"),
			ElevationPart: m[2],
			Remainder:     m[3],
		}, true
	}
	if m := onlyElevationRe.FindStringSubmatch(name); m != nil {
		return NameMatch{
			NamePart:      "",
			ElevationPart: m[1],
			Remainder:     m[2],
		}, true
	}
	return NameMatch{}, false
}
