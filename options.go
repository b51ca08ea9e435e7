package credocs

import (
	"log/slog"

	"github.com/spilbergdylan/credentiable-docs/spatial"
	"github.com/spilbergdylan/credentiable-docs/tables"
)

// pipelineOptions holds configuration for document assembly.
type pipelineOptions struct {
	// Containment rules for the classifier. rulesSet distinguishes an
	// explicitly supplied rule set from the baseline.
	rules    spatial.Rules
	rulesSet bool

	// Table layout engine configuration.
	layout tables.Config

	// Structured logging; nil means slog.Default().
	logger *slog.Logger
}

// defaultOptions returns the default assembly options.
func defaultOptions() pipelineOptions {
	return pipelineOptions{
		rules:  spatial.DefaultRules(),
		layout: tables.DefaultConfig(),
	}
}

// clone creates a deep copy of pipelineOptions.
func (o pipelineOptions) clone() pipelineOptions {
	newOpts := o

	// Deep copy the pair rule table; everything else is scalar.
	if o.rules.Pairs != nil {
		newOpts.rules.Pairs = make([]spatial.PairRule, len(o.rules.Pairs))
		copy(newOpts.rules.Pairs, o.rules.Pairs)
	}

	return newOpts
}
