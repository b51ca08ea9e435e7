package hierarchy

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/spilbergdylan/credentiable-docs/model"
	"github.com/spilbergdylan/credentiable-docs/spatial"
)

// DuplicateIDError reports two detections sharing an id. Duplicate ids are a
// data error upstream; the builder fails fast rather than silently letting
// one detection overwrite the other.
type DuplicateIDError struct {
	ID string
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("duplicate detection id %q", e.ID)
}

// Builder assembles a flat detection list into a document hierarchy using a
// containment classifier. The zero value is not usable; create builders with
// NewBuilder.
type Builder struct {
	classifier *spatial.Classifier
	logger     *slog.Logger
}

// NewBuilder creates a builder with the baseline containment calibration and
// the default slog logger.
func NewBuilder() *Builder {
	return &Builder{
		classifier: spatial.NewClassifier(),
		logger:     slog.Default(),
	}
}

// WithClassifier replaces the containment classifier.
func (b *Builder) WithClassifier(c *spatial.Classifier) *Builder {
	b.classifier = c
	return b
}

// WithLogger replaces the warning logger.
func (b *Builder) WithLogger(logger *slog.Logger) *Builder {
	b.logger = logger
	return b
}

// placed tracks a detection already attached to the tree, so later (smaller)
// detections can search it as a candidate ancestor.
type placed struct {
	detection model.Detection
	area      float64
	node      *model.Node
}

// Build assembles the detection list into an ordered tree rooted at a
// synthetic document node.
//
// Detections are processed largest-area first: a larger box is a plausible
// container for a smaller one, and placing containers before their contents
// lets each element pick the smallest already-placed ancestor that contains
// it, producing tight nesting in a single pass. Elements no ancestor claims
// attach directly to the root. Children end up in reading order and leaf
// nodes carry no children slice.
//
// Detections with non-positive width or height cannot participate in
// containment tests; they are skipped with a warning, never fatally. A
// duplicate detection id aborts the build with a DuplicateIDError.
func (b *Builder) Build(detections []model.Detection) (*model.Node, []model.Warning, error) {
	var warnings []model.Warning

	seen := make(map[string]struct{}, len(detections))
	valid := make([]model.Detection, 0, len(detections))
	for _, d := range detections {
		if _, dup := seen[d.ID]; dup {
			return nil, warnings, &DuplicateIDError{ID: d.ID}
		}
		seen[d.ID] = struct{}{}

		if !d.Box.IsValid() {
			warnings = append(warnings, model.Warning{
				DetectionID: d.ID,
				Message:     fmt.Sprintf("skipped: degenerate box %gx%g", d.Box.Width, d.Box.Height),
			})
			b.logger.Warn("skipping detection with degenerate box",
				"detection_id", d.ID,
				"class", string(d.Class),
				"width", d.Box.Width,
				"height", d.Box.Height)
			continue
		}
		valid = append(valid, d)
	}

	ordered := make([]model.Detection, len(valid))
	copy(ordered, valid)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Area() > ordered[j].Area()
	})

	root := model.NewDocumentRoot()
	placedNodes := make([]placed, 0, len(ordered))

	for _, d := range ordered {
		node := model.NewNode(d)

		// Smallest already-placed detection that contains this one. All
		// prior entries have area >= this one, so any hit is a valid
		// ancestor; the smallest hit gives the tightest nesting. A plain
		// pairwise scan is fine at per-page detection counts.
		var parent *placed
		for i := range placedNodes {
			candidate := &placedNodes[i]
			if !b.classifier.Contains(d, candidate.detection) {
				continue
			}
			if parent == nil || candidate.area < parent.area {
				parent = candidate
			}
		}

		if parent != nil {
			parent.node.AppendChild(node)
		} else {
			root.AppendChild(node)
		}
		placedNodes = append(placedNodes, placed{detection: d, area: d.Area(), node: node})
	}

	root.SortChildren()
	root.PruneEmptyChildren()
	return root, warnings, nil
}
