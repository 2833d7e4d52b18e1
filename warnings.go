package mdview

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered during conversion, such
// as a page that produced no glyph runs. Warnings never abort a
// conversion.
type Warning struct {
	// Page is the 1-indexed page the warning concerns, or 0 for
	// document-level warnings.
	Page int

	// Message describes the issue.
	Message string
}

// String returns a human-readable representation of the warning.
func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single string, one per line.
// It returns "" for an empty slice.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "\n")
}
