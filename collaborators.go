package credocs

import (
	"github.com/spilbergdylan/credentiable-docs/hierarchy"
	"github.com/spilbergdylan/credentiable-docs/model"
)

// DetectionSource supplies the flat detection set a Pipeline operates on.
// Implementations wrap whatever produced the detections: a file, an object
// store, a detector service.
type DetectionSource interface {
	Detections() ([]model.Detection, error)
}

// TextRecognizer reads text out of a cropped form region. The ocr package
// provides a Tesseract-backed implementation behind the "ocr" build tag.
type TextRecognizer interface {
	RecognizeImage(image []byte) (string, error)
}

// Reorganizer proposes a semantic regrouping of an assembled hierarchy:
// which elements belong under which sections, plus cleaned text per
// element. Implementations typically call out to an external service; the
// pipeline applies whatever they return via hierarchy.ApplyReorganization.
type Reorganizer interface {
	Reorganize(root *model.Node) (hierarchy.Reorganization, error)
}
