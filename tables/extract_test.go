package tables

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spilbergdylan/credentiable-docs/model"
)

func testTree() *model.Node {
	root := model.NewDocumentRoot()

	section := &model.Node{ID: "sec-1", Type: model.ClassSection, Box: model.NewBBox(300, 100, 600, 200), Confidence: 0.9}
	sectionTable := &model.Node{ID: "tbl-1", Type: model.ClassTable, Box: model.NewBBox(300, 120, 560, 80), Confidence: 0.95}
	sectionTable.AppendChild(&model.Node{ID: "f-1", Type: model.ClassField, Text: "State", Box: model.NewBBox(120, 100, 60, 14), Confidence: 0.9})
	sectionTable.AppendChild(&model.Node{ID: "f-2", Type: model.ClassField, Box: model.NewBBox(120, 130, 60, 14), Confidence: 0.85})
	sectionTable.AppendChild(&model.Node{ID: "cc-1", Type: model.ClassCheckboxContext, Text: "Yes / No", Box: model.NewBBox(400, 130, 80, 14), Confidence: 0.8})
	sectionTable.AppendChild(&model.Node{ID: "cb-1", Type: model.ClassCheckbox, Box: model.NewBBox(440, 130, 12, 12), Confidence: 0.8})
	section.AppendChild(sectionTable)
	root.AppendChild(section)

	rootTable := &model.Node{ID: "tbl-2", Type: model.ClassTable, Box: model.NewBBox(300, 400, 560, 60), Confidence: 0.9}
	rootTable.AppendChild(&model.Node{ID: "f-3", Type: model.ClassField, Text: "Number", Box: model.NewBBox(120, 390, 60, 14), Confidence: 0.9})
	root.AppendChild(rootTable)

	return root
}

func TestExtract(t *testing.T) {
	extracted := Extract(testTree())

	if len(extracted) != 2 {
		t.Fatalf("Extract() found %d tables, want 2", len(extracted))
	}

	nested, ok := extracted["tbl-1"]
	if !ok {
		t.Fatal("table tbl-1 not extracted")
	}
	if nested.ParentID != "sec-1" {
		t.Errorf("ParentID = %q, want sec-1", nested.ParentID)
	}
	if len(nested.Fields) != 3 {
		t.Fatalf("tbl-1 has %d fields, want 3 (checkbox excluded)", len(nested.Fields))
	}
	for _, f := range nested.Fields {
		if f.ID == "cb-1" {
			t.Error("checkbox child extracted as a table field")
		}
	}

	top, ok := extracted["tbl-2"]
	if !ok {
		t.Fatal("table tbl-2 not extracted")
	}
	if top.ParentID != "" {
		t.Errorf("root-attached table ParentID = %q, want empty", top.ParentID)
	}
}

func TestExtractNilRoot(t *testing.T) {
	if got := Extract(nil); len(got) != 0 {
		t.Errorf("Extract(nil) = %v, want empty map", got)
	}
}

func TestTableJSON(t *testing.T) {
	extracted := Extract(testTree())

	data, err := json.Marshal(extracted["tbl-1"])
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if !strings.Contains(string(data), `"box":"300 120 560 80"`) {
		t.Errorf("table box not space-separated: %s", data)
	}
	if !strings.Contains(string(data), `"parent_id":"sec-1"`) {
		t.Errorf("parent id missing: %s", data)
	}

	var decoded Table
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if decoded.DetectionID != "tbl-1" || len(decoded.Fields) != 3 {
		t.Errorf("round trip lost data: %+v", decoded)
	}
	if decoded.Fields[0].Box != extracted["tbl-1"].Fields[0].Box {
		t.Errorf("field box changed across round trip")
	}
}

func TestTableJSONBadBox(t *testing.T) {
	var decoded Table
	err := json.Unmarshal([]byte(`{"detection_id":"t","box":"1 2 3","fields":[]}`), &decoded)
	if err == nil {
		t.Error("expected error for malformed box string")
	}
}

func TestMerge(t *testing.T) {
	root := testTree()
	extracted := Extract(root)
	processed := quietEngine().Process(extracted)

	Merge(root, processed)

	var filled, kept, context string
	root.Walk(func(n *model.Node) {
		switch n.ID {
		case "f-2":
			filled = n.Text
		case "f-1":
			kept = n.Text
		case "cc-1":
			context = n.Text
		}
	})
	if filled != "State1" {
		t.Errorf("empty field text after merge = %q, want State1", filled)
	}
	if kept != "State" {
		t.Errorf("populated field text after merge = %q, want unchanged", kept)
	}
	if context != "Yes / No" {
		t.Errorf("checkbox context text after merge = %q, want unchanged", context)
	}
}

func TestMergeIgnoresUnknownTables(t *testing.T) {
	root := testTree()
	before := root.CountNodes()

	Merge(root, map[string]*Table{"missing": {DetectionID: "missing"}})

	if got := root.CountNodes(); got != before {
		t.Errorf("node count changed from %d to %d", before, got)
	}
}
