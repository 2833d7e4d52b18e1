package mdview

import (
	"errors"
	"fmt"
)

// ErrEmptyContent is returned when every page of a document yields only
// whitespace after rendering. It is reported instead of an empty document
// so callers can tell "everything was filtered" apart from a trivially
// short but valid conversion.
var ErrEmptyContent = errors.New("document produced no text content")

// ExtractionError wraps a failure reported by the glyph provider. The
// engine never generates extraction failures itself and never retries
// them; they are surfaced verbatim to the caller.
type ExtractionError struct {
	// Page is the zero-based index of the page that failed, or -1 when the
	// failure is not page-specific (page count retrieval, for example).
	Page int

	// Err is the provider's error.
	Err error
}

// Error implements the error interface.
func (e *ExtractionError) Error() string {
	if e.Page < 0 {
		return fmt.Sprintf("extraction failed: %v", e.Err)
	}
	return fmt.Sprintf("extraction failed on page %d: %v", e.Page+1, e.Err)
}

// Unwrap returns the underlying provider error.
func (e *ExtractionError) Unwrap() error {
	return e.Err
}
