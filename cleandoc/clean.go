package cleandoc

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"

	"github.com/spilbergdylan/credentiable-docs/model"
)

// Node is the compacted form of a hierarchy node: geometry folded into a
// single spatial_info string ("width height x y"), detection ids dropped,
// text normalized. It is what downstream consumers receive once the
// structure itself is no longer being edited.
type Node struct {
	SpatialInfo string      `json:"spatial_info,omitempty"`
	Text        string      `json:"text,omitempty"`
	Type        model.Class `json:"type"`
	Confidence  float64     `json:"confidence,omitempty"`
	Children    []*Node     `json:"children,omitempty"`
}

// Clean compacts a processed hierarchy for output. The tree is not
// modified; ordering of children is preserved.
func Clean(root *model.Node) *Node {
	if root == nil {
		return nil
	}

	out := &Node{
		Type:       root.Type,
		Text:       NormalizeText(root.Text),
		Confidence: root.Confidence,
	}
	if root.Box.IsValid() {
		out.SpatialInfo = fmt.Sprintf("%g %g %g %g",
			root.Box.Width, root.Box.Height, root.Box.X, root.Box.Y)
	}
	for _, child := range root.Children {
		out.Children = append(out.Children, Clean(child))
	}
	return out
}

// NormalizeText canonicalizes OCR text: NFC normalization, zero-width and
// control runes stripped (newlines and tabs become spaces), surrounding
// whitespace trimmed.
func NormalizeText(s string) string {
	if s == "" {
		return ""
	}
	s = norm.NFC.String(s)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '\u200b' || r == '\u200c' || r == '\u200d' || r == '\ufeff':
			// Zero-width characters show up in OCR output of dense scans.
		case r == '\n' || r == '\t' || r == '\r':
			b.WriteRune(' ')
		case unicode.IsControl(r):
		default:
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}
