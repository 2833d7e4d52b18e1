package mdview

import (
	"path/filepath"
	"strings"
)

// Result holds the output of a conversion.
type Result struct {
	// Markdown is the reconstructed document: a first-level heading derived
	// from the source filename followed by the normalized body.
	Markdown string

	// PageCount is the number of pages in the source document.
	PageCount int

	// Filename is the source filename with its extension swapped to .md.
	Filename string
}

// MarkdownFilename returns the given filename with its extension replaced
// by .md. A name without an extension simply gains the suffix.
func MarkdownFilename(name string) string {
	return strings.TrimSuffix(name, filepath.Ext(name)) + ".md"
}

// titleFromFilename derives the document heading text from the source
// filename: base name with the extension stripped.
func titleFromFilename(name string) string {
	base := filepath.Base(name)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
