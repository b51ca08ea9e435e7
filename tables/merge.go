package tables

import (
	"strings"

	"github.com/spilbergdylan/credentiable-docs/model"
)

// Merge writes processed table fields back into the hierarchy they were
// extracted from. For every table node present in processed, field children
// whose text is still empty receive the processed field's text (the
// synthesized context); fields that already carry OCR text and non-field
// children are left untouched. The tree is updated in place.
//
// Merge must run after context synthesis has completed for the tables
// involved; it only reads the processed mapping.
func Merge(root *model.Node, processed map[string]*Table) {
	if root == nil || len(processed) == 0 {
		return
	}

	root.Walk(func(n *model.Node) {
		if n.Type != model.ClassTable {
			return
		}
		table, ok := processed[n.ID]
		if !ok {
			return
		}

		byID := make(map[string]Field, len(table.Fields))
		for _, f := range table.Fields {
			byID[f.ID] = f
		}
		for _, child := range n.Children {
			if child.Type != model.ClassField || strings.TrimSpace(child.Text) != "" {
				continue
			}
			if f, ok := byID[child.ID]; ok && f.Text != "" {
				child.Text = f.Text
			}
		}
	})
}
