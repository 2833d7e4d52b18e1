package layout

import "github.com/thezuck/mdview/glyph"

// FontProfile records how often each font identifier occurs across a
// document. It is built in a single pass over all pages before any page is
// rendered, and is read-only afterwards.
//
// First-seen order is preserved so that RegularFont breaks frequency ties
// deterministically.
type FontProfile struct {
	counts map[string]int
	order  []string
}

// NewFontProfile creates an empty font profile.
func NewFontProfile() *FontProfile {
	return &FontProfile{
		counts: make(map[string]int),
	}
}

// Observe records the fonts of the given runs. Runs with an empty font name
// are counted too; they can still win the majority vote, in which case the
// "differs from regular" bold heuristic is effectively disabled.
func (p *FontProfile) Observe(runs []glyph.Run) {
	for _, r := range runs {
		if _, seen := p.counts[r.FontName]; !seen {
			p.order = append(p.order, r.FontName)
		}
		p.counts[r.FontName]++
	}
}

// Count returns the number of observed runs using the given font.
func (p *FontProfile) Count(font string) int {
	if p == nil {
		return 0
	}
	return p.counts[font]
}

// FontCount returns the number of distinct font identifiers observed.
func (p *FontProfile) FontCount() int {
	if p == nil {
		return 0
	}
	return len(p.order)
}

// RegularFont returns the most frequently observed font identifier, the
// baseline against which emphasis is judged. Ties are broken in favour of
// the font observed first. An empty profile yields "".
func (p *FontProfile) RegularFont() string {
	if p == nil || len(p.order) == 0 {
		return ""
	}

	regular := p.order[0]
	best := p.counts[regular]
	for _, font := range p.order[1:] {
		if p.counts[font] > best {
			regular = font
			best = p.counts[font]
		}
	}
	return regular
}
