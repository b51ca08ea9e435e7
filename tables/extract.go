package tables

import (
	"encoding/json"

	"github.com/spilbergdylan/credentiable-docs/model"
)

// Field is one cell-level detection belonging to an extracted table: a field
// proper, a title, or a checkbox context that landed inside the table box.
type Field struct {
	ID         string
	Type       model.Class
	Text       string
	Box        model.BBox
	Confidence float64
}

// Table is a derived view of a table node: the node's own metadata plus the
// flat list of cell-level detections inside it. It is created during
// extraction, consumed and mutated (field text only) by the layout engine,
// and then merged back into the tree it came from.
type Table struct {
	DetectionID string
	Text        string
	Confidence  float64
	Box         model.BBox
	ParentID    string
	Fields      []Field
}

type fieldJSON struct {
	ID         string      `json:"id"`
	Type       model.Class `json:"type"`
	Text       string      `json:"text"`
	Box        string      `json:"box"`
	Confidence float64     `json:"confidence"`
}

type tableJSON struct {
	Text        string      `json:"text"`
	Confidence  float64     `json:"confidence"`
	DetectionID string      `json:"detection_id"`
	Box         string      `json:"box,omitempty"`
	Fields      []fieldJSON `json:"fields"`
	ParentID    string      `json:"parent_id"`
}

// MarshalJSON serializes the field with its box in space-separated form.
func (f Field) MarshalJSON() ([]byte, error) {
	return json.Marshal(fieldJSON{
		ID:         f.ID,
		Type:       f.Type,
		Text:       f.Text,
		Box:        model.FormatBox(f.Box),
		Confidence: f.Confidence,
	})
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (f *Field) UnmarshalJSON(data []byte) error {
	var dec fieldJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	box, err := model.ParseBox(dec.Box)
	if err != nil {
		return err
	}
	*f = Field{
		ID:         dec.ID,
		Type:       dec.Type,
		Text:       dec.Text,
		Box:        box,
		Confidence: dec.Confidence,
	}
	return nil
}

// MarshalJSON serializes the table in the extracted-tables wire shape.
func (t *Table) MarshalJSON() ([]byte, error) {
	enc := tableJSON{
		Text:        t.Text,
		Confidence:  t.Confidence,
		DetectionID: t.DetectionID,
		ParentID:    t.ParentID,
		Fields:      make([]fieldJSON, 0, len(t.Fields)),
	}
	if t.Box.IsValid() {
		enc.Box = model.FormatBox(t.Box)
	}
	for _, f := range t.Fields {
		enc.Fields = append(enc.Fields, fieldJSON{
			ID:         f.ID,
			Type:       f.Type,
			Text:       f.Text,
			Box:        model.FormatBox(f.Box),
			Confidence: f.Confidence,
		})
	}
	return json.Marshal(enc)
}

// UnmarshalJSON decodes the form produced by MarshalJSON.
func (t *Table) UnmarshalJSON(data []byte) error {
	var dec tableJSON
	if err := json.Unmarshal(data, &dec); err != nil {
		return err
	}
	out := Table{
		Text:        dec.Text,
		Confidence:  dec.Confidence,
		DetectionID: dec.DetectionID,
		ParentID:    dec.ParentID,
	}
	if dec.Box != "" {
		box, err := model.ParseBox(dec.Box)
		if err != nil {
			return err
		}
		out.Box = box
	}
	for _, fd := range dec.Fields {
		box, err := model.ParseBox(fd.Box)
		if err != nil {
			return err
		}
		out.Fields = append(out.Fields, Field{
			ID:         fd.ID,
			Type:       fd.Type,
			Text:       fd.Text,
			Box:        box,
			Confidence: fd.Confidence,
		})
	}
	*t = out
	return nil
}

// isCellClass reports whether a node inside a table box contributes to the
// table's cell structure.
func isCellClass(class model.Class) bool {
	return class == model.ClassField || class == model.ClassTitle || class == model.ClassCheckboxContext
}

// Extract walks an assembled hierarchy and returns every table in it as a
// derived Table, keyed by the table's detection id. The parent id is the id
// of the node the table hangs under, empty for tables attached directly to
// the document root.
func Extract(root *model.Node) map[string]*Table {
	extracted := make(map[string]*Table)
	if root == nil {
		return extracted
	}

	var walk func(parent, n *model.Node)
	walk = func(parent, n *model.Node) {
		if n.Type == model.ClassTable {
			table := &Table{
				DetectionID: n.ID,
				Text:        n.Text,
				Confidence:  n.Confidence,
				Box:         n.Box,
			}
			if parent != nil && parent.Type != model.ClassDocument {
				table.ParentID = parent.ID
			}
			for _, child := range n.Children {
				// Flatten one level: cell detections attach directly to
				// the table during assembly.
				if isCellClass(child.Type) {
					table.Fields = append(table.Fields, Field{
						ID:         child.ID,
						Type:       child.Type,
						Text:       child.Text,
						Box:        child.Box,
						Confidence: child.Confidence,
					})
				}
			}
			extracted[n.ID] = table
		}
		for _, child := range n.Children {
			walk(n, child)
		}
	}
	walk(nil, root)

	return extracted
}
