package layout

import (
	"regexp"
	"strings"
	"unicode"
)

// BlockKind classifies a segmented unit of rendered line text.
type BlockKind int

const (
	BlockBlank BlockKind = iota
	BlockParagraph
	BlockBullet
	BlockNumbered
)

// String returns a string representation of the block kind.
func (k BlockKind) String() string {
	switch k {
	case BlockBlank:
		return "blank"
	case BlockParagraph:
		return "paragraph"
	case BlockBullet:
		return "bullet"
	case BlockNumbered:
		return "numbered"
	default:
		return "unknown"
	}
}

// Block is a classified unit of rendered line text used to drive Markdown
// emission.
type Block struct {
	Kind BlockKind
	Text string
}

// Markdown renders the block as a Markdown line. Numbered items use a fixed
// "1." marker; ordinal renumbering is left to the Markdown renderer's own
// auto-numbering.
func (b Block) Markdown() string {
	switch b.Kind {
	case BlockBullet:
		return "- " + b.Text
	case BlockNumbered:
		return "1. " + b.Text
	case BlockParagraph:
		return b.Text
	default:
		return ""
	}
}

// bulletRunes is the closed set of glyphs recognized as bullet markers at
// the start of a line. Extending it is a versioned change, not runtime
// configuration.
var bulletRunes = map[rune]bool{
	'•': true, '●': true, '○': true,
	'■': true, '□': true, '▪': true, '▫': true,
	'✓': true, '✗': true,
	'◆': true, '◇': true,
	'★': true, '☆': true,
	'➤': true, '➢': true, '⮞': true,
	'-': true, '–': true, '—': true,
}

// dashRunes are the bullet glyphs that double as prose characters; they only
// count as bullets at the start of a line and never split a line mid-text.
var dashRunes = map[rune]bool{
	'-': true, '–': true, '—': true,
}

// numberedPattern matches numbered-list prefixes: decimal, single lowercase
// letter, or lowercase roman numeral, each followed by '.' or ')' and
// whitespace.
var numberedPattern = regexp.MustCompile(`^(?:\d+[.)]|[a-z][.)]|[ivxlcdm]+[.)])\s+`)

// SegmentLine classifies one rendered line and returns the blocks it
// contributes plus the updated list state. inList tracks whether the
// previous lines were list items; it is threaded explicitly by the caller
// as fold state across the lines of a page.
//
// Decision order, first match wins: blank line, mid-line bullets, leading
// bullet, numbered prefix, paragraph. Unmatched list-like text falls
// through to a plain paragraph rather than erroring.
func SegmentLine(text string, inList bool) ([]Block, bool) {
	trimmed := strings.TrimSpace(text)

	if trimmed == "" {
		// Blank terminates any open list.
		return []Block{{Kind: BlockBlank}}, false
	}

	if hasMidlineBullet(trimmed) {
		return splitMidlineBullets(trimmed), true
	}

	if rest, ok := trimLeadingBullet(trimmed); ok {
		return []Block{{Kind: BlockBullet, Text: rest}}, true
	}

	if m := numberedPattern.FindString(trimmed); m != "" {
		rest := strings.TrimSpace(trimmed[len(m):])
		return []Block{{Kind: BlockNumbered, Text: rest}}, true
	}

	blocks := make([]Block, 0, 2)
	if inList {
		// Leaving a list: separate it from the paragraph.
		blocks = append(blocks, Block{Kind: BlockBlank})
	}
	blocks = append(blocks, Block{Kind: BlockParagraph, Text: trimmed})
	return blocks, false
}

// hasMidlineBullet reports whether the line contains a bullet glyph past the
// first rune. Dash glyphs are excluded: mid-line hyphens and dashes are
// prose, not list markers.
func hasMidlineBullet(text string) bool {
	for i, c := range text {
		if i > 0 && bulletRunes[c] && !dashRunes[c] {
			return true
		}
	}
	return false
}

// splitMidlineBullets splits a line containing embedded bullet glyphs. Each
// span following a bullet glyph becomes a bullet item; a non-empty leading
// span becomes a paragraph.
func splitMidlineBullets(text string) []Block {
	spans := strings.FieldsFunc(text, func(c rune) bool {
		return bulletRunes[c] && !dashRunes[c]
	})

	var blocks []Block
	leading := !startsWithBulletGlyph(text)
	for _, span := range spans {
		span = strings.TrimSpace(span)
		if span == "" {
			continue
		}
		if leading {
			blocks = append(blocks, Block{Kind: BlockParagraph, Text: span})
			leading = false
			continue
		}
		blocks = append(blocks, Block{Kind: BlockBullet, Text: span})
	}
	return blocks
}

// startsWithBulletGlyph reports whether the first rune is a non-dash bullet.
func startsWithBulletGlyph(text string) bool {
	for _, c := range text {
		return bulletRunes[c] && !dashRunes[c]
	}
	return false
}

// trimLeadingBullet strips a leading bullet marker and returns the
// remainder. Graphical bullets need no trailing whitespace; dash bullets
// must be followed by whitespace so hyphenated words stay intact.
func trimLeadingBullet(text string) (string, bool) {
	runes := []rune(text)
	if len(runes) == 0 || !bulletRunes[runes[0]] {
		return "", false
	}
	if dashRunes[runes[0]] {
		if len(runes) < 2 || !unicode.IsSpace(runes[1]) {
			return "", false
		}
	}
	return strings.TrimSpace(string(runes[1:])), true
}
