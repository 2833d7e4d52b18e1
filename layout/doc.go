// Package layout reconstructs logical document structure from positioned
// glyph runs.
//
// The package performs structural inference from noisy positional data: the
// source format exposes only text, baseline coordinates, and font
// identifiers, so paragraphs, emphasis, and lists must be inferred.
//
// # Pipeline
//
// The stages run leaves-first, each consuming the previous stage's output:
//
//   - [FontProfile] - counts font occurrences across the whole document and
//     elects the "regular" font used as the emphasis baseline
//   - [AssembleLines] - buckets runs by rounded baseline into ordered lines
//   - [Annotate] - tags each run with bold and citation flags
//   - [RenderLine] - flattens an annotated line into Markdown-ish text
//   - [SegmentLine] - classifies rendered text into blocks (paragraph,
//     bullet item, numbered item, blank)
//
// Data flows strictly forward; no stage mutates another stage's output.
// List state is threaded explicitly through [SegmentLine] rather than held
// in the package.
package layout
