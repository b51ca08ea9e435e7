// Package spatial implements the containment classifier that decides, for an
// ordered pair of detections, whether one lies "inside" the other for
// tree-nesting purposes.
//
// Containment here is not geometric containment. Detection boxes from the
// upstream model are noisy and inconsistently sized per class, so the
// classifier applies an ordered set of class-pair-specific rules: tables are
// adopted by sections they merely overlap, checkbox glyphs attach to option
// labels they sit beside, and only unmatched pairs fall back to a strict
// overlap-ratio test.
//
// All thresholds live in [Rules], a named calibration table with a
// documented baseline ([DefaultRules]) and YAML loading ([LoadRules]), so
// recalibration never touches classifier logic.
package spatial
