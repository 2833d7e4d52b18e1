package mdview

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/thezuck/mdview/glyph"
	"github.com/thezuck/mdview/layout"
	"github.com/thezuck/mdview/markdown"
)

// Converter provides a fluent interface for reconstructing Markdown from a
// document's glyph runs. Each configuration method returns a new Converter
// instance, making configured converters safe to share and allowing method
// chaining. Independent conversions may run concurrently; a conversion owns
// all of its intermediate state.
type Converter struct {
	// Source
	provider glyph.Provider
	filename string

	// Configuration
	options ConvertOptions

	// Accumulated error (fail-fast)
	err error

	// Warnings accumulated during processing
	warnings []Warning
}

// clone creates a shallow copy of the Converter with a deep copy of
// options. This ensures immutability - each chain method returns a new
// instance.
func (c *Converter) clone() *Converter {
	return &Converter{
		provider: c.provider,
		filename: c.filename,
		options:  c.options.clone(),
		err:      c.err,
		warnings: append([]Warning(nil), c.warnings...),
	}
}

// Pages restricts rendering to specific pages (1-indexed). Font statistics
// are still gathered over the whole document so that emphasis detection is
// unaffected by the selection.
//
// Example:
//
//	result, _, err := mdview.FromProvider(p, "doc.pdf").Pages(1, 3).Convert(ctx)
func (c *Converter) Pages(pages ...int) *Converter {
	newConv := c.clone()
	for _, p := range pages {
		if p < 1 {
			newConv.err = fmt.Errorf("invalid page number %d: pages are 1-indexed", p)
			return newConv
		}
	}
	newConv.options.pages = append([]int(nil), pages...)
	return newConv
}

// Title overrides the filename-derived document heading.
func (c *Converter) Title(title string) *Converter {
	newConv := c.clone()
	newConv.options.title = title
	return newConv
}

// WithoutNormalization disables the post-normalization passes, leaving the
// raw reconstructed Markdown untouched. Mainly useful for debugging the
// earlier pipeline stages.
func (c *Converter) WithoutNormalization() *Converter {
	newConv := c.clone()
	newConv.options.normalize = false
	return newConv
}

// Convert runs the reconstruction pipeline and returns the result, any
// warnings encountered, and an error if conversion failed.
//
// The pipeline is a blocking two-pass structure: pass one retrieves every
// page and gathers font statistics, pass two renders pages in order. Page
// retrieval is the only suspension point; ctx is honoured there and nowhere
// else.
//
// Provider failures are returned as *ExtractionError. A document whose
// rendered body trims to nothing returns ErrEmptyContent.
func (c *Converter) Convert(ctx context.Context) (*Result, []Warning, error) {
	if c.err != nil {
		return nil, c.warnings, c.err
	}
	if c.provider == nil {
		return nil, c.warnings, fmt.Errorf("no glyph provider configured")
	}

	warnings := append([]Warning(nil), c.warnings...)

	pageCount, err := c.provider.PageCount(ctx)
	if err != nil {
		return nil, warnings, &ExtractionError{Page: -1, Err: err}
	}

	// Pass 1: retrieve all pages and gather font statistics. The regular
	// font is a whole-document majority vote, so no page can be rendered
	// before every page has been seen.
	pages := make([][]glyph.Run, pageCount)
	profile := layout.NewFontProfile()
	for i := 0; i < pageCount; i++ {
		runs, err := c.provider.Page(ctx, i)
		if err != nil {
			return nil, warnings, &ExtractionError{Page: i, Err: err}
		}
		pages[i] = normalizeRuns(runs)
		profile.Observe(pages[i])
		if len(runs) == 0 {
			warnings = append(warnings, Warning{Page: i + 1, Message: "no glyph runs extracted"})
		}
	}
	regularFont := profile.RegularFont()

	// Pass 2: render the selected pages in document order.
	selected := c.selectPages(pageCount, &warnings)
	pageTexts := make([]string, 0, len(selected))
	for _, i := range selected {
		pageTexts = append(pageTexts, renderPage(pages[i], regularFont))
	}

	body := strings.Join(pageTexts, "\n\n")
	if c.options.normalize {
		body = markdown.NewNormalizer().Normalize(body)
	}
	if strings.TrimSpace(body) == "" {
		return nil, warnings, ErrEmptyContent
	}

	title := c.options.title
	if title == "" {
		title = titleFromFilename(c.filename)
	}

	return &Result{
		Markdown:  "# " + title + "\n\n" + body,
		PageCount: pageCount,
		Filename:  MarkdownFilename(c.filename),
	}, warnings, nil
}

// selectPages resolves the configured page selection into deduplicated
// zero-based indices in document order, whatever order the caller listed
// them in. Out-of-range selections are skipped with a warning rather than
// failing the conversion.
func (c *Converter) selectPages(pageCount int, warnings *[]Warning) []int {
	if c.options.pages == nil {
		all := make([]int, pageCount)
		for i := range all {
			all[i] = i
		}
		return all
	}

	seen := make(map[int]bool)
	var selected []int
	for _, p := range c.options.pages {
		if p > pageCount {
			*warnings = append(*warnings, Warning{Page: p, Message: "page not in document, skipped"})
			continue
		}
		if seen[p-1] {
			continue
		}
		seen[p-1] = true
		selected = append(selected, p-1)
	}

	// Document order, not selection order.
	sort.Ints(selected)
	return selected
}

// normalizeRuns returns a copy of runs with text normalized to NFC.
// Extraction layers commonly emit decomposed sequences; normalizing here
// keeps every later stage byte-comparable.
func normalizeRuns(runs []glyph.Run) []glyph.Run {
	out := make([]glyph.Run, len(runs))
	for i, r := range runs {
		r.Text = norm.NFC.String(r.Text)
		out[i] = r
	}
	return out
}

// renderPage runs the per-page stages: line assembly, annotation,
// rendering, and segmentation. List state is threaded through the page's
// lines and resets at page boundaries.
func renderPage(runs []glyph.Run, regularFont string) string {
	lines := layout.AssembleLines(runs)

	var out []string
	inList := false
	for _, line := range lines {
		annotated := layout.Annotate(line, regularFont)
		rendered := layout.RenderLine(annotated)

		var blocks []layout.Block
		blocks, inList = layout.SegmentLine(rendered, inList)
		for _, b := range blocks {
			out = append(out, b.Markdown())
		}
	}
	return strings.Join(out, "\n")
}
