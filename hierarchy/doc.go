// Package hierarchy assembles a flat list of classified detections into the
// nested document structure of a scanned form: document → section →
// table/checkbox-group → field/checkbox.
//
// The [Builder] places detections largest-first, attaching each one to the
// smallest already-placed detection that contains it according to the
// spatial package's classifier. The result is an ordered tree: children in
// reading order, container text blanked, leaf nodes without a children
// slice.
//
// [ApplyReorganization] accepts the output of an external reorganizer
// collaborator as an alternative source of parent/child edges and cleaned
// text, without depending on how that output was produced.
package hierarchy
