// Package domain holds the decision logic for correcting peak names that
// embed an elevation value.
//
// # The defect
//
// OpenStreetMap peak and hill nodes in Norway sometimes carry the summit
// elevation inside the name tag instead of the ele tag:
//
//	name="Storefjell 1200"  →  should be  name="Storefjell" ele="1200"
//	name="1340"             →  should be  name="" ele="1340" (unnamed survey point)
//
// Input extracts are produced with an Overpass query along the lines of
//
//	[out:xml][timeout:90][bbox:{{bbox}}];
//	( nwr["natural"="peak"]; );
//	(._;>;);
//	out meta;
//
// # Correction rules
//
// A name is split into (name part, elevation digits, remainder) by
// [ParseName]. The embedded elevation is only trusted when three independent
// signals agree:
//
//   - the remainder after the digits is empty (a qualifier like "(highest)"
//     means the digits are probably not a plain elevation suffix),
//   - the Kartverket DTM elevation for the node coordinate is within 20 m of
//     the embedded value,
//   - any pre-existing ele tag, when numeric, is within 10 m of the embedded
//     value.
//
// Both tolerances are inclusive: a difference of exactly 20 m (10 m for the
// existing tag) still passes. The rules are evaluated in a fixed order by
// [Evaluate] with short-circuit rejection; a rejected node is left untouched.
//
// # Audit trail
//
// [ApplyFix] never removes a tag. The original name is kept in name:original,
// the DTM value in ele:kartverket-dmt, and a NOTE tag marks the node for human
// review before upload. A conflicting pre-existing ele tag stays in place next
// to the new one so a mapper can reconcile the two. Helper tags must be
// cleaned up before uploading the result.
package domain
