package model

// Class identifies the kind of region the upstream detection model assigned
// to a bounding box.
type Class string

// Detection classes produced by the form detection model. ClassDocument is
// synthetic: it only ever appears on the root node of an assembled hierarchy.
const (
	ClassDocument        Class = "document"
	ClassSection         Class = "section"
	ClassTable           Class = "table"
	ClassField           Class = "field"
	ClassCheckboxContext Class = "checkbox_context"
	ClassCheckboxOption  Class = "checkbox_option"
	ClassCheckbox        Class = "checkbox"
	ClassTitle           Class = "title"
)

// IsContainer reports whether text detected inside this class of region is
// usually cropped noise rather than meaningful content. Section and table
// boxes cover many smaller detections, so their own OCR text is discarded
// during hierarchy assembly.
func (c Class) IsContainer() bool {
	return c == ClassSection || c == ClassTable
}

// Detection is one classified, localized text region produced by the upstream
// detection model and enriched with OCR text. Apart from Text, which the
// table layout engine may fill in for empty cells, a Detection is never
// modified after ingestion.
type Detection struct {
	// ID is an opaque unique identifier assigned upstream.
	ID string

	// Class is the detected region type.
	Class Class

	// Box is the detection's bounding box (center-based, image pixels).
	Box BBox

	// Confidence is the detection model's score in [0, 1].
	Confidence float64

	// Text is the OCR result for the region, possibly empty.
	Text string

	// ParentID is set only for detections produced with a known parent,
	// e.g. snippets cropped out of a larger region.
	ParentID string

	// Filename is the source image the detection came from, when known.
	Filename string
}

// Area returns the area of the detection's bounding box.
func (d Detection) Area() float64 {
	return d.Box.Area()
}
