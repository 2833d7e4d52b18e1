// Package mdview reconstructs Markdown documents from positioned glyph runs
// extracted from page-description formats such as PDF.
//
// The engine infers logical structure — paragraphs, bold emphasis, bullet
// lists, numbered lists — that the source format does not expose directly.
// Byte-level decoding of the source format is not performed here; a
// glyph.Provider supplies per-page runs and the engine does the rest.
//
// Basic usage:
//
//	result, warnings, err := mdview.FromProvider(provider, "report.pdf").Convert(ctx)
//	if err != nil {
//	    // handle error
//	}
//	if len(warnings) > 0 {
//	    log.Println("Warnings:", mdview.FormatWarnings(warnings))
//	}
//	fmt.Println(result.Markdown)
//
// With options:
//
//	result, _, err := mdview.FromProvider(provider, "report.pdf").
//	    Pages(1, 2, 3).
//	    Title("Quarterly Report").
//	    Convert(ctx)
package mdview

import "github.com/thezuck/mdview/glyph"

// FromProvider creates a Converter that reads glyph runs from the given
// provider. The filename is used to derive the document title heading and
// the renamed output filename; it is never opened.
//
// Example:
//
//	result, warnings, err := mdview.FromProvider(p, "document.pdf").Convert(ctx)
func FromProvider(p glyph.Provider, filename string) *Converter {
	return &Converter{
		provider: p,
		filename: filename,
		options:  defaultOptions(),
	}
}

// FromPages creates a Converter over in-memory pages of glyph runs. This is
// a convenience for pre-extracted run dumps and tests.
func FromPages(pages [][]glyph.Run, filename string) *Converter {
	return FromProvider(glyph.SliceProvider(pages), filename)
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

// MustConvert is a helper that wraps a call to Convert and panics if the
// error is non-nil. It discards warnings and returns just the result.
//
// Example:
//
//	md := mdview.MustConvert(mdview.FromPages(pages, "notes.pdf").Convert(ctx)).Markdown
func MustConvert[T any](val T, _ []Warning, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
