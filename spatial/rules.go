package spatial

import (
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/spilbergdylan/credentiable-docs/model"
)

// PairRule calibrates containment for one element-class / container-class
// pairing: the element must overlap the container by more than Overlap
// (as a fraction of the element's own area) and, when ProximityPx is
// positive, be vertically within ProximityPx of it.
type PairRule struct {
	// Element lists the element classes the rule applies to.
	Element []model.Class `yaml:"element"`

	// Container lists the container classes the rule applies to.
	Container []model.Class `yaml:"container"`

	// Overlap is the minimum overlap ratio, exclusive.
	Overlap float64 `yaml:"overlap"`

	// ProximityPx is the vertical proximity requirement in pixels.
	// Zero disables the proximity test.
	ProximityPx float64 `yaml:"proximity_px"`
}

// matches reports whether the rule applies to the given class pair.
func (r PairRule) matches(element, container model.Class) bool {
	return containsClass(r.Element, element) && containsClass(r.Container, container)
}

func containsClass(classes []model.Class, c model.Class) bool {
	for _, candidate := range classes {
		if candidate == c {
			return true
		}
	}
	return false
}

// Rules is the complete calibration table for the containment classifier.
// Detection boxes from the upstream model are noisy and inconsistently sized
// per class (a checkbox glyph box is tiny relative to its label box), so a
// single global threshold fails; every class pair carries its own overlap
// and proximity calibration, tuned empirically. All constants live here so
// recalibration never touches classifier control flow.
type Rules struct {
	// TableVerticalOverlap is the minimum overlap height as a fraction of
	// the table's height for a table to belong to a surrounding container.
	TableVerticalOverlap float64 `yaml:"table_vertical_overlap"`

	// TableHorizontalOverlap is the minimum overlap width as a fraction of
	// the narrower of the two boxes.
	TableHorizontalOverlap float64 `yaml:"table_horizontal_overlap"`

	// TableProximityPx extends the container's vertical span when testing
	// whether the table lies within it.
	TableProximityPx float64 `yaml:"table_proximity_px"`

	// TableMemberOverlap is the minimum overlap ratio for fields and
	// checkbox elements inside a table.
	TableMemberOverlap float64 `yaml:"table_member_overlap"`

	// TableMemberCenterTest additionally accepts a table member whose
	// center point lies within the table box, regardless of overlap ratio.
	TableMemberCenterTest bool `yaml:"table_member_center_test"`

	// Pairs is the ordered class-pair calibration list; the first matching
	// rule wins, so earlier entries can shadow later ones.
	Pairs []PairRule `yaml:"pairs"`

	// DefaultOverlap is the fallback overlap ratio threshold for class
	// pairs no rule matches.
	DefaultOverlap float64 `yaml:"default_overlap"`
}

// DefaultRules returns the documented baseline calibration. The threshold
// values here drifted across revisions of the upstream model; treat any
// change as a recalibration policy decision, not a bug fix.
func DefaultRules() Rules {
	return Rules{
		TableVerticalOverlap:   0.3,
		TableHorizontalOverlap: 0.2,
		TableProximityPx:       100,
		TableMemberOverlap:     0.5,
		TableMemberCenterTest:  true,
		Pairs: []PairRule{
			{
				Element:     []model.Class{model.ClassCheckbox, model.ClassCheckboxOption},
				Container:   []model.Class{model.ClassCheckboxContext},
				Overlap:     0.1,
				ProximityPx: 100,
			},
			// Shadowed by the entry above for checkbox_option elements;
			// retained so recalibration can reorder or split the pair.
			{
				Element:     []model.Class{model.ClassCheckboxOption},
				Container:   []model.Class{model.ClassCheckboxContext},
				Overlap:     0.2,
				ProximityPx: 120,
			},
			{
				Element:     []model.Class{model.ClassCheckbox},
				Container:   []model.Class{model.ClassCheckboxOption},
				Overlap:     0.05,
				ProximityPx: 80,
			},
			{
				Element:     []model.Class{model.ClassCheckboxContext},
				Container:   []model.Class{model.ClassSection},
				Overlap:     0.3,
				ProximityPx: 150,
			},
		},
		DefaultOverlap: 0.8,
	}
}

// LoadRules reads a YAML calibration file. Fields omitted from the document
// keep their baseline values from DefaultRules, so a calibration file only
// needs to name what it changes.
func LoadRules(r io.Reader) (Rules, error) {
	rules := DefaultRules()
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&rules); err != nil {
		return Rules{}, fmt.Errorf("loading containment rules: %w", err)
	}
	return rules, nil
}
