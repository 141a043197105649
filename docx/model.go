package docx

import (
	"fmt"

	"github.com/unidoc/unioffice/document"

	"github.com/aerissecure/charformat"
)

// Intermediate representation (IR) for DOCX documents.
//
// Character formatting is carried as charformat.Format so that a run read
// from a document can be handed straight to the codec, the CSS renderer or
// a rich-edit control.

// -----------------------------------------------------------------------------
// Run-level information
// -----------------------------------------------------------------------------

// RenderRun represents a single run (\<w:r>) within a paragraph.
type RenderRun struct {
	Run           document.Run      // underlying run
	Text          string            // already expanded/decoded text for the run
	Format        charformat.Format // direct run formatting, absent where the run does not set it
	VerticalAlign string            // "superscript" | "subscript" | "baseline" | ""
}

func (r RenderRun) String() string {
	return fmt.Sprintf("Text: %q, Format: [%s], VerticalAlign: %s", r.Text, r.Format.String(), r.VerticalAlign)
}

// -----------------------------------------------------------------------------
// Paragraph-level information
// -----------------------------------------------------------------------------

// RenderParagraph is the IR for a paragraph.
type RenderParagraph struct {
	Paragraph    document.Paragraph
	Runs         []RenderRun
	Style        string // paragraph style ID, e.g. "Heading1"
	HeadingLevel int    // 0 means normal paragraph, 1-6 for headings
}

func (p RenderParagraph) String() string {
	return fmt.Sprintf("Runs: %d, Style: %q, HeadingLevel: %d", len(p.Runs), p.Style, p.HeadingLevel)
}

// -----------------------------------------------------------------------------
// Table-level information
// -----------------------------------------------------------------------------

// RenderTableCell is the IR for a single table cell.
type RenderTableCell struct {
	Paragraphs []RenderParagraph
}

// RenderTableRow represents a row within a table.
type RenderTableRow struct {
	Cells []RenderTableCell
}

// RenderTable is the IR for a table – rows in order.
type RenderTable struct {
	Rows []RenderTableRow
}

func (t RenderTable) String() string {
	return fmt.Sprintf("Rows: %d", len(t.Rows))
}

// -----------------------------------------------------------------------------
// Top-level document model
// -----------------------------------------------------------------------------

// DocumentBlock represents a top-level block element in the DOCX body – either
// a paragraph or a table.  Exactly one of Paragraph/Table will be non-nil.
type DocumentBlock struct {
	Paragraph *RenderParagraph
	Table     *RenderTable
}

// DocumentModel is the body of a document in reading order.
type DocumentModel struct {
	Blocks []DocumentBlock
}

// Runs returns every run of the document in reading order, including runs
// inside table cells.
func (d DocumentModel) Runs() []RenderRun {
	var runs []RenderRun
	for _, blk := range d.Blocks {
		switch {
		case blk.Paragraph != nil:
			runs = append(runs, blk.Paragraph.Runs...)
		case blk.Table != nil:
			for _, row := range blk.Table.Rows {
				for _, cell := range row.Cells {
					for _, p := range cell.Paragraphs {
						runs = append(runs, p.Runs...)
					}
				}
			}
		}
	}
	return runs
}

func (d DocumentModel) String() string {
	return fmt.Sprintf("Blocks: %d", len(d.Blocks))
}
