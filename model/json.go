package model

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

// DetectionRecord is the JSON wire form of one detection, as produced by the
// upstream detection and OCR services. Coordinates are center-based, in image
// pixels.
type DetectionRecord struct {
	DetectionID string  `json:"detection_id"`
	Class       string  `json:"class"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	Width       float64 `json:"width"`
	Height      float64 `json:"height"`
	Confidence  float64 `json:"confidence"`
	Text        string  `json:"text"`
	ParentID    string  `json:"parent_id,omitempty"`
	Filename    string  `json:"filename,omitempty"`
}

// Detection converts the record to its in-memory form. Records without a
// detection_id are assigned a fresh UUID rather than rejected; the upstream
// model occasionally drops ids from re-run snippets.
func (r DetectionRecord) Detection() Detection {
	id := r.DetectionID
	if id == "" {
		id = uuid.NewString()
	}
	return Detection{
		ID:         id,
		Class:      Class(r.Class),
		Box:        NewBBox(r.X, r.Y, r.Width, r.Height),
		Confidence: r.Confidence,
		Text:       r.Text,
		ParentID:   r.ParentID,
		Filename:   r.Filename,
	}
}

// Record converts a detection back to its JSON wire form.
func (d Detection) Record() DetectionRecord {
	return DetectionRecord{
		DetectionID: d.ID,
		Class:       string(d.Class),
		X:           d.Box.X,
		Y:           d.Box.Y,
		Width:       d.Box.Width,
		Height:      d.Box.Height,
		Confidence:  d.Confidence,
		Text:        d.Text,
		ParentID:    d.ParentID,
		Filename:    d.Filename,
	}
}

// ParseDetections decodes a JSON array of detection records.
func ParseDetections(data []byte) ([]Detection, error) {
	var records []DetectionRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing detections: %w", err)
	}
	detections := make([]Detection, 0, len(records))
	for _, r := range records {
		detections = append(detections, r.Detection())
	}
	return detections, nil
}

// FormatBox serializes a bounding box as four space-separated numbers:
// center x, center y, width, height.
func FormatBox(b BBox) string {
	return fmt.Sprintf("%g %g %g %g", b.X, b.Y, b.Width, b.Height)
}

// ParseBox parses the space-separated box form produced by FormatBox.
func ParseBox(s string) (BBox, error) {
	var b BBox
	n, err := fmt.Sscanf(s, "%g %g %g %g", &b.X, &b.Y, &b.Width, &b.Height)
	if err != nil || n != 4 {
		return BBox{}, fmt.Errorf("invalid box %q", s)
	}
	return b, nil
}

// nodeJSON is the serialized form of a Node. The root carries only a type
// and children; empty fields are omitted throughout.
type nodeJSON struct {
	ID         string  `json:"id,omitempty"`
	Type       Class   `json:"type"`
	Text       string  `json:"text,omitempty"`
	Box        string  `json:"box,omitempty"`
	Confidence float64 `json:"confidence,omitempty"`
	Children   []*Node `json:"children,omitempty"`
}

// MarshalJSON serializes the node with its box as a space-separated string
// and the children key omitted for leaves.
func (n *Node) MarshalJSON() ([]byte, error) {
	enc := nodeJSON{
		ID:         n.ID,
		Type:       n.Type,
		Text:       n.Text,
		Confidence: n.Confidence,
		Children:   n.Children,
	}
	if n.Box.IsValid() {
		enc.Box = FormatBox(n.Box)
	}
	return json.Marshal(enc)
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (n *Node) UnmarshalJSON(data []byte) error {
	var dec nodeJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	n.ID = dec.ID
	n.Type = dec.Type
	n.Text = dec.Text
	n.Confidence = dec.Confidence
	n.Children = dec.Children
	if dec.Box != "" {
		box, err := ParseBox(dec.Box)
		if err != nil {
			return err
		}
		n.Box = box
	}
	return nil
}
