package cleandoc

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/spilbergdylan/credentiable-docs/model"
)

func TestClean(t *testing.T) {
	root := model.NewDocumentRoot()
	section := &model.Node{
		ID:         "sec-1",
		Type:       model.ClassSection,
		Box:        model.NewBBox(300, 100, 600, 200),
		Confidence: 0.9,
	}
	section.AppendChild(&model.Node{
		ID:         "f-1",
		Type:       model.ClassField,
		Text:       "Jane\u200bDoe\n",
		Box:        model.NewBBox(120, 80, 60, 14),
		Confidence: 0.85,
	})
	root.AppendChild(section)

	cleaned := Clean(root)

	if cleaned.Type != model.ClassDocument {
		t.Fatalf("root type = %q, want document", cleaned.Type)
	}
	if len(cleaned.Children) != 1 || len(cleaned.Children[0].Children) != 1 {
		t.Fatal("tree shape not preserved")
	}

	sec := cleaned.Children[0]
	if sec.SpatialInfo != "600 200 300 100" {
		t.Errorf("spatial_info = %q, want width height x y order", sec.SpatialInfo)
	}

	fld := sec.Children[0]
	if fld.Text != "JaneDoe" {
		t.Errorf("normalized text = %q, want JaneDoe", fld.Text)
	}

	// The source tree keeps its ids and boxes.
	if section.ID != "sec-1" || !section.Box.IsValid() {
		t.Error("Clean modified its input")
	}
}

func TestCleanNil(t *testing.T) {
	if Clean(nil) != nil {
		t.Error("Clean(nil) should return nil")
	}
}

func TestCleanJSONOmitsIDs(t *testing.T) {
	root := model.NewDocumentRoot()
	root.AppendChild(&model.Node{
		ID:         "f-1",
		Type:       model.ClassField,
		Text:       "value",
		Box:        model.NewBBox(10, 20, 30, 40),
		Confidence: 0.5,
	})

	data, err := json.Marshal(Clean(root))
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if strings.Contains(string(data), "f-1") {
		t.Errorf("cleaned output leaks detection ids: %s", data)
	}
	if !strings.Contains(string(data), `"spatial_info":"30 40 10 20"`) {
		t.Errorf("spatial_info missing or misformatted: %s", data)
	}
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "License Number", "License Number"},
		{"zero width", "12\u200b34\ufeff", "1234"},
		{"newlines to spaces", "line one\nline two", "line one line two"},
		{"control stripped", "ab\x07cd", "abcd"},
		{"nfc composition", "José", "José"},
		{"trimmed", "  padded\t", "padded"},
		{"empty", "", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeText(tt.in); got != tt.want {
				t.Errorf("NormalizeText(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
