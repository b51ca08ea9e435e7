package credocs

import (
	"strings"

	"github.com/spilbergdylan/credentiable-docs/model"
)

// Warning is a non-fatal issue encountered while processing a document.
// Terminal operations return the warnings accumulated along the way next
// to their result.
type Warning = model.Warning

// FormatWarnings renders a warning list as a single newline-separated
// string for logging.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	lines := make([]string, len(warnings))
	for i, w := range warnings {
		lines[i] = w.String()
	}
	return strings.Join(lines, "\n")
}
