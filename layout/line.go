package layout

import (
	"math"
	"sort"

	"github.com/thezuck/mdview/glyph"
)

// Line represents a single visual line of text on a page: the glyph runs
// sharing one rounded baseline, ordered left to right. Lines are constructed
// once by AssembleLines and never mutated afterwards.
type Line struct {
	// Y is the rounded baseline shared by the line's runs.
	Y float64

	// Runs are the line's glyph runs, sorted ascending by raw X.
	Runs []glyph.Run
}

// AssembleLines groups the glyph runs of one page into ordered lines.
//
// Runs are bucketed by their baseline rounded half away from zero; the
// rounding is the tolerance mechanism that keeps sub-pixel jitter from
// fragmenting a single visual line into many. Within a line, runs are sorted
// ascending by raw (unrounded) X to preserve left-to-right precision; runs
// with exactly equal X keep their stream order. Lines are ordered descending
// by baseline so the topmost line of the page comes first.
//
// Two genuinely distinct lines that share a rounded baseline (superscript or
// subscript pairs, for example) are merged; this is an accepted false-merge
// risk carried over for fidelity.
func AssembleLines(runs []glyph.Run) []Line {
	if len(runs) == 0 {
		return nil
	}

	buckets := make(map[float64][]glyph.Run)
	for _, r := range runs {
		y := math.Round(r.Y)
		buckets[y] = append(buckets[y], r)
	}

	lines := make([]Line, 0, len(buckets))
	for y, group := range buckets {
		sort.SliceStable(group, func(i, j int) bool {
			return group[i].X < group[j].X
		})
		lines = append(lines, Line{Y: y, Runs: group})
	}

	// Topmost line first (page-description coordinates grow upward).
	sort.Slice(lines, func(i, j int) bool {
		return lines[i].Y > lines[j].Y
	})

	return lines
}

// Text returns the raw concatenated text of the line, without annotation.
func (l Line) Text() string {
	var out string
	for _, r := range l.Runs {
		out += r.Text
	}
	return out
}

// IsEmpty returns true if the line has no runs.
func (l Line) IsEmpty() bool {
	return len(l.Runs) == 0
}
