package docx

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// DebugHTML controls whether extra data attributes with raw format info are included in the rendered HTML output.
var DebugHTML bool

// DocxToHTML is a convenience wrapper that converts a DOCX reader to HTML
// using the intermediate representation defined in this package.
func DocxToHTML(r io.ReaderAt, size int64) (string, error) {
	ir, err := ParseDocumentModel(r, size)
	if err != nil {
		return "", err
	}
	return RenderDocumentHTML(ir), nil
}

// -----------------------------------------------------------------------------
// Paragraph & Run rendering
// -----------------------------------------------------------------------------

func renderRunsHTML(runs []RenderRun) string {
	var b strings.Builder
	for _, run := range runs {
		text := html.EscapeString(run.Text)
		text = strings.ReplaceAll(text, "\n", "<br>")
		css := run.Format.CSS()
		debugAttr := ""
		if DebugHTML {
			debugAttr = fmt.Sprintf(" data-run-format=\"%s\"", html.EscapeString(run.Format.String()))
		}
		if css != "" {
			fmt.Fprintf(&b, "<span style=\"%s\"%s>%s</span>", css, debugAttr, text)
		} else {
			fmt.Fprintf(&b, "<span%s>%s</span>", debugAttr, text)
		}
	}
	return b.String()
}

func renderParagraphHTML(p RenderParagraph) string {
	tag := "p"
	if p.HeadingLevel > 0 {
		tag = fmt.Sprintf("h%d", p.HeadingLevel)
	}
	return fmt.Sprintf("<%s>%s</%s>\n", tag, renderRunsHTML(p.Runs), tag)
}

func renderTableHTML(t RenderTable) string {
	var b strings.Builder
	b.WriteString("<table style=\"border-collapse:collapse;\">\n")
	for _, row := range t.Rows {
		b.WriteString("  <tr>")
		for _, cell := range row.Cells {
			cellHTML := "&nbsp;"
			if len(cell.Paragraphs) > 0 {
				var paraB strings.Builder
				for _, p := range cell.Paragraphs {
					paraB.WriteString(renderParagraphHTML(p))
				}
				cellHTML = paraB.String()
			}
			fmt.Fprintf(&b, "<td style=\"border:1px solid #333; padding:4px;\">%s</td>", cellHTML)
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</table>\n")
	return b.String()
}

// RenderDocumentHTML converts the DocumentModel into an HTML string.
func RenderDocumentHTML(m DocumentModel) string {
	var b strings.Builder
	b.WriteString("<html><body>\n")
	for _, blk := range m.Blocks {
		if blk.Paragraph != nil {
			b.WriteString(renderParagraphHTML(*blk.Paragraph))
		} else if blk.Table != nil {
			b.WriteString(renderTableHTML(*blk.Table))
		}
	}
	b.WriteString("</body></html>\n")
	return b.String()
}
