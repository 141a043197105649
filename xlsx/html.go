package xlsx

import (
	"fmt"
	"html"
	"io"
	"strings"
)

// XlsxToHTML renders the styled cells of every sheet as HTML tables, one
// table per sheet, each cell carrying its resolved character format as
// inline CSS.
func XlsxToHTML(r io.ReaderAt, size int64) (string, error) {
	sheets, err := ParseWorkbookFormats(r, size)
	if err != nil {
		return "", err
	}
	return RenderSheetsHTML(sheets), nil
}

// RenderSheetsHTML converts parsed sheet formats into an HTML string.
// Cells without a style are left empty.
func RenderSheetsHTML(sheets []SheetFormats) string {
	var builder strings.Builder

	builder.WriteString("<style>\n")
	builder.WriteString(".table { border-collapse: collapse; table-layout: fixed; margin-bottom: 2em; }\n")
	builder.WriteString(".table td { border: 1px solid #333; padding: 4px 8px; vertical-align: bottom; }\n")
	builder.WriteString(".sheet { margin-bottom: 2em; }\n")
	builder.WriteString("</style>\n")

	if len(sheets) == 0 {
		return builder.String() + "<table class=\"table\"></table>"
	}

	for _, sheet := range sheets {
		fmt.Fprintf(&builder, "<div class=\"sheet\" data-name=\"%s\">\n", html.EscapeString(sheet.Name))
		builder.WriteString("<table class=\"table\">\n")

		// Grid extent covers only the styled cells.
		maxRow, maxCol := 0, -1
		cellMap := make(map[[2]int]CellFormat)
		for _, cell := range sheet.Cells {
			cellMap[[2]int{cell.Row, cell.Col}] = cell
			maxRow = max(maxRow, cell.Row)
			maxCol = max(maxCol, cell.Col)
		}

		for row := 1; row <= maxRow; row++ {
			builder.WriteString("  <tr>\n")
			for col := 0; col <= maxCol; col++ {
				cell, ok := cellMap[[2]int{row, col}]
				if !ok {
					builder.WriteString("    <td></td>\n")
					continue
				}
				fmt.Fprintf(&builder, "    <td data-ref=\"%s\" style=\"%s\">%s</td>\n",
					cell.Ref, cell.Format.CSS(), html.EscapeString(cell.Value))
			}
			builder.WriteString("  </tr>\n")
		}
		builder.WriteString("</table>\n")
		builder.WriteString("</div>\n")
	}
	return builder.String()
}
