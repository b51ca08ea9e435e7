package hierarchy

import (
	"errors"

	"github.com/spilbergdylan/credentiable-docs/model"
)

// ErrNoRoot reports a reorganization applied to a tree without a document
// root node.
var ErrNoRoot = errors.New("hierarchy: missing document root")

// Reorganization is the output shape of an external reorganizer collaborator
// (typically an LLM): section-to-element assignments and cleaned text, keyed
// by detection id. The core accepts this as an alternative source of
// parent/child edges and text without depending on how it was produced.
type Reorganization struct {
	// Structure maps a section id to the element ids assigned to it.
	Structure map[string][]string `json:"structure"`

	// CleanedText maps a detection id to its cleaned OCR text.
	CleanedText map[string]string `json:"cleaned_text"`
}

// ApplyReorganization rewires a built tree according to a reorganizer's
// output and applies its cleaned text. The tree is modified in place and
// returned.
//
// Only edges the reorganization names are moved: each listed element is
// detached from its current parent and attached to the named section.
// Checkbox hierarchies are left where geometric assembly put them (the
// reorganizer sees flattened text and routinely misplaces checkbox glyphs),
// and ids that do not resolve to a node in the tree are ignored, so a noisy
// reorganization degrades to a no-op rather than losing detections.
// Cleaned text never overwrites section or table nodes, whose text stays
// blank.
func ApplyReorganization(root *model.Node, reorg Reorganization) (*model.Node, error) {
	if root == nil || root.Type != model.ClassDocument {
		return nil, ErrNoRoot
	}

	parents := parentIndex(root)

	for sectionID, elementIDs := range reorg.Structure {
		section := root.Find(sectionID)
		if section == nil || section.Type != model.ClassSection {
			continue
		}
		for _, id := range elementIDs {
			node := root.Find(id)
			if node == nil || node == section {
				continue
			}
			switch node.Type {
			case model.ClassCheckbox, model.ClassCheckboxOption, model.ClassCheckboxContext:
				continue
			}
			if isDescendant(node, section) {
				// Moving an ancestor under its own descendant would cut a
				// cycle into the tree.
				continue
			}
			current := parents[node]
			if current == section {
				continue
			}
			detach(current, node)
			section.AppendChild(node)
			parents[node] = section
		}
	}

	if len(reorg.CleanedText) > 0 {
		root.Walk(func(n *model.Node) {
			if n.ID == "" || n.Type.IsContainer() {
				return
			}
			if text, ok := reorg.CleanedText[n.ID]; ok {
				n.Text = text
			}
		})
	}

	root.SortChildren()
	root.PruneEmptyChildren()
	return root, nil
}

func parentIndex(root *model.Node) map[*model.Node]*model.Node {
	parents := make(map[*model.Node]*model.Node)
	root.Walk(func(n *model.Node) {
		for _, child := range n.Children {
			parents[child] = n
		}
	})
	return parents
}

func isDescendant(node, candidate *model.Node) bool {
	found := false
	node.Walk(func(n *model.Node) {
		if n == candidate {
			found = true
		}
	})
	return found
}

func detach(parent, child *model.Node) {
	if parent == nil {
		return
	}
	for i, c := range parent.Children {
		if c == child {
			parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
			return
		}
	}
}
