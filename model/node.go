package model

import "sort"

// Node is one element of an assembled document hierarchy. It wraps a
// Detection plus an ordered list of children. Each node is owned by exactly
// one parent; the tree stays acyclic through reorganization because a move
// detaches a node before reattaching it.
type Node struct {
	// ID is the wrapped detection's id, empty for the synthetic root.
	ID string

	// Type is the detection class, or ClassDocument for the root.
	Type Class

	// Text is the OCR text. Blank for section and table nodes, whose own
	// text is usually cropping noise.
	Text string

	// Box is the detection's bounding box. Zero for the root.
	Box BBox

	// Confidence is the detection confidence. Zero for the root.
	Confidence float64

	// Children are the nested nodes in reading order. Nil (not an empty
	// slice) when the node is a leaf, so serialized output omits the key.
	Children []*Node
}

// NewDocumentRoot creates the synthetic root node of a hierarchy. It carries
// no detection payload.
func NewDocumentRoot() *Node {
	return &Node{Type: ClassDocument}
}

// NewNode creates a node wrapping the given detection. Text for section and
// table classes is dropped; the model crops container headers imprecisely
// and their OCR output is noise.
func NewNode(d Detection) *Node {
	text := d.Text
	if d.Class.IsContainer() {
		text = ""
	}
	return &Node{
		ID:         d.ID,
		Type:       d.Class,
		Text:       text,
		Box:        d.Box,
		Confidence: d.Confidence,
	}
}

// AppendChild attaches a child node.
func (n *Node) AppendChild(child *Node) {
	n.Children = append(n.Children, child)
}

// Walk visits the node and all its descendants in depth-first order.
func (n *Node) Walk(visit func(*Node)) {
	visit(n)
	for _, child := range n.Children {
		child.Walk(visit)
	}
}

// Find returns the descendant node with the given id, or nil. The root
// itself is never matched (it has no id).
func (n *Node) Find(id string) *Node {
	var found *Node
	n.Walk(func(node *Node) {
		if found == nil && node.ID != "" && node.ID == id {
			found = node
		}
	})
	return found
}

// SortChildren recursively orders every children list into document reading
// order: top to bottom, then left to right at equal vertical position.
// Sorting is stable and idempotent: re-sorting a sorted tree is a no-op.
func (n *Node) SortChildren() {
	sort.SliceStable(n.Children, func(i, j int) bool {
		a, b := n.Children[i], n.Children[j]
		if a.Box.Y != b.Box.Y {
			return a.Box.Y < b.Box.Y
		}
		return a.Box.X < b.Box.X
	})
	for _, child := range n.Children {
		child.SortChildren()
	}
}

// PruneEmptyChildren recursively replaces empty children slices with nil so
// that leaf nodes serialize without a children key.
func (n *Node) PruneEmptyChildren() {
	if len(n.Children) == 0 {
		n.Children = nil
		return
	}
	for _, child := range n.Children {
		child.PruneEmptyChildren()
	}
}

// CountNodes returns the number of nodes in the subtree, including n itself.
func (n *Node) CountNodes() int {
	count := 0
	n.Walk(func(*Node) { count++ })
	return count
}
