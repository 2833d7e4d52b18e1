// Package markdown repairs raw reconstructed Markdown text.
//
// The normalizer applies a fixed, ordered sequence of pure string-to-string
// passes: citation-number stripping, bold-marker merging and spacing repair,
// and whitespace collapsing. Each pass is idempotent in isolation and
// normalization never fails; the worst case is a no-op.
package markdown

import (
	"regexp"
	"strings"
	"unicode"
)

// maxMergeIterations bounds the bold-merge fixed-point loop against
// pathological run-on merges.
const maxMergeIterations = 10

// pass is one named repair step. Names are used by tests to exercise passes
// independently.
type pass struct {
	name string
	fn   func(string) string
}

// Normalizer applies the repair passes in order.
type Normalizer struct {
	passes []pass
}

// NewNormalizer creates a normalizer with the standard pass sequence.
func NewNormalizer() *Normalizer {
	return &Normalizer{
		passes: []pass{
			{"strip-trailing-citations", stripTrailingCitations},
			{"strip-inline-citations", stripInlineCitations},
			{"strip-period-citations", stripPeriodCitations},
			{"merge-bold-spans", mergeBoldSpans},
			{"fix-bold-spacing", fixBoldSpacing},
			{"remove-empty-bold", removeEmptyBold},
			{"collapse-whitespace", collapseWhitespace},
		},
	}
}

// Normalize runs every pass in order and returns the repaired text.
func (n *Normalizer) Normalize(text string) string {
	for _, p := range n.passes {
		text = p.fn(text)
	}
	return text
}

// apply runs a single named pass; it exists for per-pass tests.
func (n *Normalizer) apply(name, text string) string {
	for _, p := range n.passes {
		if p.name == name {
			return p.fn(text)
		}
	}
	return text
}

var (
	trailingCitationRe = regexp.MustCompile(`(?m)[ \t]+\d+[ \t]*$`)
	inlineCitationRe   = regexp.MustCompile(`([ \t])\d+[ \t]`)
	periodCitationRe   = regexp.MustCompile(`\. \d+\b`)
	adjacentBoldRe     = regexp.MustCompile(`\*\*(\s*)\*\*`)
	emptyBoldRe        = regexp.MustCompile(`\*\*\s*\*\*`)
	multiSpaceRe       = regexp.MustCompile(`[ \t]{2,}`)
	multiNewlineRe     = regexp.MustCompile(`\n{4,}`)
)

// fixedPoint reapplies fn until its output stops changing. Every caller
// strictly shrinks its input, so termination is guaranteed. The loop makes
// each pass idempotent even when matches overlap: "word 12 13" needs two
// applications of the trailing-citation strip.
func fixedPoint(fn func(string) string) func(string) string {
	return func(text string) string {
		for {
			next := fn(text)
			if next == text {
				return next
			}
			text = next
		}
	}
}

// stripTrailingCitations removes standalone digit groups at end of line:
// citation fragments the annotator's small-font heuristic missed.
var stripTrailingCitations = fixedPoint(func(text string) string {
	return trailingCitationRe.ReplaceAllString(text, "")
})

// stripInlineCitations removes mid-line digit groups surrounded by
// whitespace.
var stripInlineCitations = fixedPoint(func(text string) string {
	return inlineCitationRe.ReplaceAllString(text, "$1")
})

// stripPeriodCitations removes digit groups immediately following a
// period-space, the footnote-style trailing citation form.
var stripPeriodCitations = fixedPoint(func(text string) string {
	return periodCitationRe.ReplaceAllString(text, ".")
})

// mergeBoldSpans collapses adjacent bold spans separated only by optional
// whitespace, iterating to a fixed point within the merge bound.
func mergeBoldSpans(text string) string {
	for i := 0; i < maxMergeIterations; i++ {
		merged := adjacentBoldRe.ReplaceAllString(text, "$1")
		if merged == text {
			return merged
		}
		text = merged
	}
	return text
}

// fixBoldSpacing normalizes spacing around bold markers: an opening marker
// glued to the preceding word gets a space before it, and a closing marker
// glued to the following word gets a space after it unless the next
// character is punctuation.
//
// Marker parity (opening vs closing) cannot be told apart by a regex, so
// this pass walks the markers in order, treating odd occurrences as opening
// and even as closing.
func fixBoldSpacing(text string) string {
	var sb strings.Builder
	sb.Grow(len(text) + 8)

	runes := []rune(text)
	opening := true
	for i := 0; i < len(runes); i++ {
		if runes[i] != '*' || i+1 >= len(runes) || runes[i+1] != '*' {
			sb.WriteRune(runes[i])
			continue
		}

		if opening && i > 0 && !unicode.IsSpace(runes[i-1]) && runes[i-1] != '*' {
			sb.WriteRune(' ')
		}
		sb.WriteString("**")
		if !opening && i+2 < len(runes) {
			next := runes[i+2]
			if !unicode.IsSpace(next) && next != '*' && !unicode.IsPunct(next) {
				sb.WriteRune(' ')
			}
		}
		opening = !opening
		i++
	}
	return sb.String()
}

// removeEmptyBold drops marker pairs that contain only whitespace.
func removeEmptyBold(text string) string {
	return emptyBoldRe.ReplaceAllString(text, "")
}

// collapseWhitespace collapses runs of two or more spaces to one and four
// or more consecutive newlines to exactly two.
func collapseWhitespace(text string) string {
	text = multiSpaceRe.ReplaceAllString(text, " ")
	return multiNewlineRe.ReplaceAllString(text, "\n\n")
}
