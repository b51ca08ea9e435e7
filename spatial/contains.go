package spatial

import (
	"math"

	"github.com/spilbergdylan/credentiable-docs/model"
)

// Classifier decides whether one detection is contained in another. The
// relation is a deliberately asymmetric, class-pair-tuned heuristic: it is
// not symmetric, transitive or antisymmetric, and it is recomputed on demand
// from the two boxes and classes rather than stored.
type Classifier struct {
	rules Rules
}

// NewClassifier creates a classifier with the baseline calibration.
func NewClassifier() *Classifier {
	return &Classifier{rules: DefaultRules()}
}

// NewClassifierWithRules creates a classifier with a custom calibration,
// e.g. one loaded via LoadRules.
func NewClassifierWithRules(rules Rules) *Classifier {
	return &Classifier{rules: rules}
}

// Rules returns the classifier's calibration table.
func (c *Classifier) Rules() Rules {
	return c.rules
}

// Contains reports whether element belongs inside container. The rule set is
// ordered; the first matching class pair wins:
//
//  1. A table element is adopted by any container it overlaps enough,
//     using the dedicated table thresholds.
//  2. Fields and checkbox elements inside a table container use the coarse
//     "mostly inside" test, or the center-point test when enabled.
//  3. The class-pair calibration list (checkbox hierarchies, checkbox
//     contexts in sections).
//  4. The default overlap-ratio threshold.
//
// Detections with degenerate boxes are never contained anywhere.
func (c *Classifier) Contains(element, container model.Detection) bool {
	if !element.Box.IsValid() || !container.Box.IsValid() {
		return false
	}

	if element.Class == model.ClassTable {
		return c.tableContained(element.Box, container.Box)
	}

	if container.Class == model.ClassTable && isTableMember(element.Class) {
		return c.tableMemberContained(element.Box, container.Box)
	}

	for _, rule := range c.rules.Pairs {
		if rule.matches(element.Class, container.Class) {
			return c.pairContained(element.Box, container.Box, rule)
		}
	}

	return element.Box.OverlapRatio(container.Box) > c.rules.DefaultOverlap
}

// ContainsWithThreshold is Contains with a caller-supplied default overlap
// threshold for pairs no special rule matches.
func (c *Classifier) ContainsWithThreshold(element, container model.Detection, threshold float64) bool {
	scoped := *c
	scoped.rules.DefaultOverlap = threshold
	return scoped.Contains(element, container)
}

func isTableMember(class model.Class) bool {
	switch class {
	case model.ClassField, model.ClassCheckbox, model.ClassCheckboxOption, model.ClassCheckboxContext:
		return true
	}
	return false
}

// tableContained tests a table against a candidate container. Tables rarely
// sit fully inside their section box, so the naive overlap-ratio test fails;
// instead the table must share enough vertical and horizontal extent with
// the container and lie within its proximity-extended vertical span.
func (c *Classifier) tableContained(table, container model.BBox) bool {
	overlap := table.Intersection(container)
	if overlap.IsEmpty() {
		return false
	}

	if overlap.Height/table.Height < c.rules.TableVerticalOverlap {
		return false
	}

	minWidth := math.Min(table.Width, container.Width)
	if minWidth <= 0 || overlap.Width/minWidth < c.rules.TableHorizontalOverlap {
		return false
	}

	margin := c.rules.TableProximityPx
	return table.Top() >= container.Top()-margin && table.Bottom() <= container.Bottom()+margin
}

func (c *Classifier) tableMemberContained(element, table model.BBox) bool {
	if element.OverlapRatio(table) > c.rules.TableMemberOverlap {
		return true
	}
	return c.rules.TableMemberCenterTest && table.Contains(element.Center())
}

func (c *Classifier) pairContained(element, container model.BBox, rule PairRule) bool {
	if element.OverlapRatio(container) <= rule.Overlap {
		return false
	}
	if rule.ProximityPx <= 0 {
		return true
	}
	return element.VerticallyClose(container, rule.ProximityPx)
}
