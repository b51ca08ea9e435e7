package model

import "fmt"

// Warning describes a non-fatal issue encountered while processing a batch
// of detections, such as a detection skipped for having a degenerate
// bounding box. Processing succeeded, but results may be incomplete.
type Warning struct {
	// DetectionID identifies the detection the warning refers to, when one
	// is involved.
	DetectionID string

	// Message is a human-readable description.
	Message string
}

func (w Warning) String() string {
	if w.DetectionID == "" {
		return w.Message
	}
	return fmt.Sprintf("%s: %s", w.DetectionID, w.Message)
}
