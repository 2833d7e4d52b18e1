package layout

import (
	"strings"

	"github.com/thezuck/mdview/glyph"
)

// citationMaxFontSize is the font size below which an all-digit run is
// presumed to be a footnote or reference marker. Fixed, not configurable.
const citationMaxFontSize = 10.0

// AnnotatedRun is a glyph run tagged with the two derived properties the
// renderer needs: whether it is emphasized and whether it is a citation
// marker to be elided from output.
type AnnotatedRun struct {
	glyph.Run

	// Bold is true if the run's font signals weight by name, or if the font
	// is non-empty and differs from the document's regular font.
	Bold bool

	// Citation is true if the run is a short, small-font, purely numeric
	// run presumed to be a footnote/reference marker.
	Citation bool
}

// Annotate tags each run of a line with bold and citation flags. It is a
// pure function with no cross-line state: citation detection is
// intentionally line-local and conservative so that legitimate numbers in
// running text survive.
func Annotate(line Line, regularFont string) []AnnotatedRun {
	annotated := make([]AnnotatedRun, len(line.Runs))
	for i, r := range line.Runs {
		annotated[i] = AnnotatedRun{
			Run:      r,
			Bold:     isBoldFont(r.FontName, regularFont),
			Citation: isCitation(r),
		}
	}
	return annotated
}

// isBoldFont reports whether a font name signals emphasis, either by naming
// a weight or by differing from the document's regular font. When the
// regular font is empty (empty document), only the name heuristic applies.
func isBoldFont(fontName, regularFont string) bool {
	if fontName == "" {
		return false
	}

	lower := strings.ToLower(fontName)
	if strings.Contains(lower, "bold") ||
		strings.Contains(lower, "heavy") ||
		strings.Contains(lower, "black") {
		return true
	}

	return regularFont != "" && fontName != regularFont
}

// isCitation reports whether a run looks like a footnote marker: trimmed
// text that is one or more digits, set in a font smaller than the citation
// threshold.
func isCitation(r glyph.Run) bool {
	if r.FontSize >= citationMaxFontSize {
		return false
	}

	trimmed := strings.TrimSpace(r.Text)
	if trimmed == "" {
		return false
	}
	for _, c := range trimmed {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
