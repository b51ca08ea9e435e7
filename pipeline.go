package credocs

import (
	"fmt"
	"log/slog"

	"github.com/spilbergdylan/credentiable-docs/cleandoc"
	"github.com/spilbergdylan/credentiable-docs/hierarchy"
	"github.com/spilbergdylan/credentiable-docs/model"
	"github.com/spilbergdylan/credentiable-docs/spatial"
	"github.com/spilbergdylan/credentiable-docs/tables"
)

// Pipeline provides a fluent interface for assembling detections into a
// document hierarchy. Each configuration method returns a new Pipeline
// instance, making it safe for concurrent use and allowing method
// chaining. Terminal operations (Hierarchy, Tables, ProcessedTables,
// Document, Cleaned) run the assembly and return accumulated warnings
// alongside the result.
type Pipeline struct {
	// Input. Exactly one of detections or source is set.
	detections []model.Detection
	source     DetectionSource

	// Collaborators.
	recognizer  TextRecognizer
	crops       map[string][]byte
	reorganizer Reorganizer

	// Configuration.
	options pipelineOptions

	// Accumulated error (fail-fast).
	err error
}

// clone creates a shallow copy of the Pipeline with a deep copy of
// options. This ensures immutability: each chain method returns a new
// instance.
func (p *Pipeline) clone() *Pipeline {
	return &Pipeline{
		detections:  p.detections,
		source:      p.source,
		recognizer:  p.recognizer,
		crops:       p.crops,
		reorganizer: p.reorganizer,
		options:     p.options.clone(),
		err:         p.err,
	}
}

// WithRules replaces the baseline containment rules, typically with a set
// loaded via spatial.LoadRules.
func (p *Pipeline) WithRules(rules spatial.Rules) *Pipeline {
	newP := p.clone()
	newP.options.rules = rules
	newP.options.rulesSet = true
	return newP
}

// WithDefaultOverlap overrides the fallback containment threshold applied
// to class pairs with no dedicated rule.
func (p *Pipeline) WithDefaultOverlap(threshold float64) *Pipeline {
	newP := p.clone()
	newP.options.rules.DefaultOverlap = threshold
	newP.options.rulesSet = true
	return newP
}

// WithLayoutConfig replaces the table layout engine configuration.
func (p *Pipeline) WithLayoutConfig(config tables.Config) *Pipeline {
	newP := p.clone()
	newP.options.layout = config
	return newP
}

// WithLogger sets the logger used for non-fatal processing records.
// The default is slog.Default().
func (p *Pipeline) WithLogger(logger *slog.Logger) *Pipeline {
	newP := p.clone()
	newP.options.logger = logger
	return newP
}

// WithRecognizer attaches a text recognizer and the cropped region images
// to run it over, keyed by detection id. Before assembly, detections with
// empty text whose crop is present are filled in from OCR; recognition
// failures become warnings, not errors.
func (p *Pipeline) WithRecognizer(rec TextRecognizer, crops map[string][]byte) *Pipeline {
	newP := p.clone()
	newP.recognizer = rec
	newP.crops = crops
	return newP
}

// WithReorganizer attaches a reorganizer whose proposal is applied to the
// assembled tree during Document and Cleaned.
func (p *Pipeline) WithReorganizer(r Reorganizer) *Pipeline {
	newP := p.clone()
	newP.reorganizer = r
	return newP
}

func (p *Pipeline) logger() *slog.Logger {
	if p.options.logger != nil {
		return p.options.logger
	}
	return slog.Default()
}

// resolveDetections returns the pipeline's input detections, reading the
// source if one was supplied.
func (p *Pipeline) resolveDetections() ([]model.Detection, error) {
	if p.source == nil {
		return p.detections, nil
	}
	detections, err := p.source.Detections()
	if err != nil {
		return nil, fmt.Errorf("reading detection source: %w", err)
	}
	return detections, nil
}

// recognizeText fills empty detection text from cropped region images when
// a recognizer is attached. It returns a new slice; the input is not
// modified.
func (p *Pipeline) recognizeText(detections []model.Detection) ([]model.Detection, []Warning) {
	if p.recognizer == nil || len(p.crops) == 0 {
		return detections, nil
	}

	var warnings []Warning
	out := append([]model.Detection(nil), detections...)
	for i := range out {
		if out[i].Text != "" || out[i].Class.IsContainer() {
			continue
		}
		crop, ok := p.crops[out[i].ID]
		if !ok {
			continue
		}
		text, err := p.recognizer.RecognizeImage(crop)
		if err != nil {
			warnings = append(warnings, Warning{
				DetectionID: out[i].ID,
				Message:     fmt.Sprintf("text recognition failed: %v", err),
			})
			p.logger().Warn("text recognition failed",
				"detection_id", out[i].ID, "error", err)
			continue
		}
		out[i].Text = text
	}
	return out, warnings
}

func (p *Pipeline) classifier() *spatial.Classifier {
	if p.options.rulesSet {
		return spatial.NewClassifierWithRules(p.options.rules)
	}
	return spatial.NewClassifier()
}

// Hierarchy assembles the detections into a nested document tree. It is
// the first terminal operation most callers reach for; Document runs the
// table pass and any reorganizer on top of it.
func (p *Pipeline) Hierarchy() (*model.Node, []Warning, error) {
	if p.err != nil {
		return nil, nil, p.err
	}

	detections, err := p.resolveDetections()
	if err != nil {
		return nil, nil, err
	}
	detections, warnings := p.recognizeText(detections)

	builder := hierarchy.NewBuilder().
		WithClassifier(p.classifier()).
		WithLogger(p.logger())
	root, buildWarnings, err := builder.Build(detections)
	if err != nil {
		return nil, nil, err
	}
	return root, append(warnings, buildWarnings...), nil
}

// Tables assembles the hierarchy and returns its tables in extracted form,
// keyed by detection id, without running layout inference.
func (p *Pipeline) Tables() (map[string]*tables.Table, []Warning, error) {
	root, warnings, err := p.Hierarchy()
	if err != nil {
		return nil, nil, err
	}
	return tables.Extract(root), warnings, nil
}

// ProcessedTables assembles the hierarchy, extracts its tables and runs
// layout inference and context synthesis over them. Empty cells in the
// returned tables carry their synthesized context labels.
func (p *Pipeline) ProcessedTables() (map[string]*tables.Table, []Warning, error) {
	root, warnings, err := p.Hierarchy()
	if err != nil {
		return nil, nil, err
	}
	processed, err := p.processTables(root)
	if err != nil {
		return nil, nil, err
	}
	return processed, warnings, nil
}

func (p *Pipeline) processTables(root *model.Node) (map[string]*tables.Table, error) {
	engine := tables.NewEngine().WithLogger(p.logger())
	if err := engine.Configure(p.options.layout); err != nil {
		return nil, fmt.Errorf("configuring layout engine: %w", err)
	}
	return engine.Process(tables.Extract(root)), nil
}

// Document runs the full assembly: hierarchy, table layout inference with
// context labels merged back into the tree, and the reorganizer's proposal
// if one is attached.
func (p *Pipeline) Document() (*model.Node, []Warning, error) {
	root, warnings, err := p.Hierarchy()
	if err != nil {
		return nil, nil, err
	}

	processed, err := p.processTables(root)
	if err != nil {
		return nil, nil, err
	}
	tables.Merge(root, processed)

	if p.reorganizer != nil {
		reorg, err := p.reorganizer.Reorganize(root)
		if err != nil {
			return nil, nil, fmt.Errorf("reorganizing document: %w", err)
		}
		if root, err = hierarchy.ApplyReorganization(root, reorg); err != nil {
			return nil, nil, fmt.Errorf("applying reorganization: %w", err)
		}
	}

	return root, warnings, nil
}

// Cleaned runs Document and compacts the result for output: ids dropped,
// geometry folded into spatial_info strings, text normalized.
func (p *Pipeline) Cleaned() (*cleandoc.Node, []Warning, error) {
	root, warnings, err := p.Document()
	if err != nil {
		return nil, nil, err
	}
	return cleandoc.Clean(root), warnings, nil
}
