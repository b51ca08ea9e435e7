// Package model provides the intermediate representation for scanned-form
// structure analysis.
//
// This package defines the data types that the rest of the module operates
// on: detections flowing in from the upstream recognition services, and the
// assembled document hierarchy flowing out.
//
// # Detections
//
// A [Detection] is one classified, localized text region: a class such as
// section, table, field or checkbox, a center-based bounding box in image
// pixels, a confidence score, and the OCR text recovered for the region.
// [DetectionRecord] is its JSON wire form, and [ParseDetections] decodes a
// batch.
//
// # Hierarchy
//
// A [Node] is one element of the nested document structure: document →
// section → table/checkbox-group → field/checkbox. The root node is
// synthetic (class "document") and carries no detection payload. Children
// are kept in reading order (top to bottom, then left to right), and leaf
// nodes carry a nil children slice so serialized output stays compact.
//
// # Geometry
//
// [BBox] is a center-based bounding box with Y growing downward, matching
// the detection model's coordinate system. It provides the pure overlap and
// proximity primitives (OverlapArea, OverlapRatio, VerticallyClose) that the
// containment rules in the spatial package are built from.
package model
