package docx

import (
	"io"
	"strconv"
	"strings"

	"github.com/unidoc/unioffice/document"
	"github.com/unidoc/unioffice/schema/soo/wml"
)

// ParseDocumentModel reads a DOCX document from the provided reader and size
// and builds a DocumentModel with each run's direct formatting resolved.
// Formatting inherited from styles is not resolved.
func ParseDocumentModel(r io.ReaderAt, size int64) (DocumentModel, error) {
	doc, err := document.Read(r, size)
	if err != nil {
		return DocumentModel{}, err
	}
	return BuildDocumentModel(doc), nil
}

// BuildDocumentModel builds the IR from an already opened document.
func BuildDocumentModel(doc *document.Document) DocumentModel {
	var mdl DocumentModel

	// ---- Build lookup maps from underlying XML ptr -> high-level wrapper ----
	pMap := make(map[*wml.CT_P]document.Paragraph)
	for _, p := range doc.Paragraphs() {
		pMap[p.X()] = p
	}

	tMap := make(map[*wml.CT_Tbl]document.Table)
	for _, tbl := range doc.Tables() {
		tMap[tbl.X()] = tbl
	}

	body := doc.X().Body
	if body == nil {
		return mdl
	}

	for _, bl := range body.EG_BlockLevelElts {
		for _, c := range bl.EG_ContentBlockContent {
			for _, cp := range c.P {
				if par, ok := pMap[cp]; ok {
					rp := convertParagraph(par)
					mdl.Blocks = append(mdl.Blocks, DocumentBlock{Paragraph: &rp})
				}
			}
			for _, ct := range c.Tbl {
				if tbl, ok := tMap[ct]; ok {
					rt := convertTable(tbl)
					mdl.Blocks = append(mdl.Blocks, DocumentBlock{Table: &rt})
				}
			}
		}
	}

	return mdl
}

func convertRun(r document.Run) RenderRun {
	f, valign := RunFormat(r.Properties())
	return RenderRun{
		Run:           r,
		Text:          r.Text(),
		Format:        f,
		VerticalAlign: valign,
	}
}

func convertParagraph(p document.Paragraph) RenderParagraph {
	rp := RenderParagraph{
		Paragraph:    p,
		Style:        p.Style(),
		HeadingLevel: headingLevel(p.Style()),
	}
	for _, run := range p.Runs() {
		rp.Runs = append(rp.Runs, convertRun(run))
	}
	return rp
}

// headingLevel returns n for a "HeadingN" style with 1 <= n <= 6.
func headingLevel(style string) int {
	rest, ok := strings.CutPrefix(style, "Heading")
	if !ok {
		return 0
	}
	n, err := strconv.Atoi(rest)
	if err != nil || n < 1 || n > 6 {
		return 0
	}
	return n
}

func convertTable(t document.Table) RenderTable {
	var rt RenderTable
	for _, row := range t.Rows() {
		var rr RenderTableRow
		for _, cell := range row.Cells() {
			var rc RenderTableCell
			for _, p := range cell.Paragraphs() {
				rc.Paragraphs = append(rc.Paragraphs, convertParagraph(p))
			}
			rr.Cells = append(rr.Cells, rc)
		}
		rt.Rows = append(rt.Rows, rr)
	}
	return rt
}
