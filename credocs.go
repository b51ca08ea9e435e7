// Package credocs assembles flat object detections from scanned credential
// forms into a structured document hierarchy.
//
// Basic usage:
//
//	root, warnings, err := credocs.FromJSON(data).Document()
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", credocs.FormatWarnings(warnings))
//	}
//
// With options:
//
//	root, _, err := credocs.FromDetections(detections).
//	    WithRules(rules).
//	    WithLayoutConfig(cfg).
//	    Document()
//
// For advanced use cases the lower-level spatial, hierarchy and tables
// packages are also available.
package credocs

import (
	"github.com/spilbergdylan/credentiable-docs/model"
)

// FromDetections creates a Pipeline over an in-memory detection set.
// The slice is copied; the caller may reuse it.
func FromDetections(detections []model.Detection) *Pipeline {
	return &Pipeline{
		detections: append([]model.Detection(nil), detections...),
		options:    defaultOptions(),
	}
}

// FromJSON creates a Pipeline from a JSON array of detection records, the
// wire format produced by the upstream detector. Records missing a
// detection id are assigned a fresh UUID. A decode failure is deferred to
// the first terminal operation.
func FromJSON(data []byte) *Pipeline {
	detections, err := model.ParseDetections(data)
	p := &Pipeline{
		detections: detections,
		options:    defaultOptions(),
	}
	p.err = err
	return p
}

// FromSource creates a Pipeline that pulls its detections from src. The
// source is read once, at the first terminal operation.
func FromSource(src DetectionSource) *Pipeline {
	return &Pipeline{
		source:  src,
		options: defaultOptions(),
	}
}

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}

// MustResult wraps a terminal operation returning (T, []Warning, error),
// panicking on error and discarding warnings.
//
// Example:
//
//	root := credocs.MustResult(credocs.FromJSON(data).Hierarchy())
func MustResult[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
