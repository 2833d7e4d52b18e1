// Package glyph defines the positioned text runs consumed by the
// reconstruction pipeline and the provider contract that supplies them.
package glyph

import (
	"context"
	"fmt"
)

// Run is a contiguous span of text sharing one font and one position, as
// emitted by the page-content extraction layer. Runs are immutable and
// scoped to a single page.
type Run struct {
	Text     string  `json:"text"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	FontSize float64 `json:"fontSize"`
	FontName string  `json:"fontName"`
}

// Provider supplies glyph runs for the pages of one document. Implementations
// wrap a page-description decoder (PDF, XPS, and so on); the engine never
// opens the underlying format itself, so any failure to decode a page is
// reported by the provider.
//
// Page retrieval may block on I/O; both methods honour ctx cancellation.
// Providers must be safe for use by a single conversion at a time; the
// engine retrieves pages strictly in order.
type Provider interface {
	// PageCount returns the number of pages in the document.
	PageCount(ctx context.Context) (int, error)

	// Page returns the glyph runs of the page at the given zero-based index.
	// Run order within the slice carries no meaning; the engine orders runs
	// itself.
	Page(ctx context.Context, index int) ([]Run, error)
}

// SliceProvider is a Provider backed by in-memory pages, one slice of runs
// per page. It is useful in tests and for pre-extracted glyph-run dumps.
type SliceProvider [][]Run

// PageCount returns the number of pages.
func (p SliceProvider) PageCount(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Page returns the runs of the page at index.
func (p SliceProvider) Page(ctx context.Context, index int) ([]Run, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if index < 0 || index >= len(p) {
		return nil, fmt.Errorf("page index %d out of range [0,%d)", index, len(p))
	}
	return p[index], nil
}
