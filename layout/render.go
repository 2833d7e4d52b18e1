package layout

import "strings"

// RenderLine flattens an annotated line into text. Citation runs contribute
// nothing, not even whitespace; bold runs are wrapped in ** markers; all
// other runs contribute their text unmodified. Adjacent runs are
// concatenated without inserted whitespace, faithful to source spacing.
//
// Consecutive bold spans are not merged here; merging needs look-ahead
// across runs and is handled by the markdown normalizer.
func RenderLine(runs []AnnotatedRun) string {
	var sb strings.Builder
	for _, r := range runs {
		if r.Citation {
			continue
		}
		if r.Bold {
			sb.WriteString("**")
			sb.WriteString(r.Text)
			sb.WriteString("**")
			continue
		}
		sb.WriteString(r.Text)
	}
	return sb.String()
}
