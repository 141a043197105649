package xlsx

import (
	"fmt"
	"io"
	"strings"

	"github.com/unidoc/unioffice/spreadsheet"
	"github.com/unidoc/unioffice/spreadsheet/reference"
)

// ParseWorkbookFormats reads an XLSX from r/size and returns the resolved
// character format of every cell that carries a style.
func ParseWorkbookFormats(r io.ReaderAt, size int64) ([]SheetFormats, error) {
	wb, err := spreadsheet.Read(r, size)
	if err != nil {
		return nil, err
	}
	return WorkbookFormats(wb), nil
}

// WorkbookFormats is ParseWorkbookFormats for an already opened workbook.
func WorkbookFormats(wb *spreadsheet.Workbook) []SheetFormats {
	theme := func(idx int) (string, bool) { return ThemeColorToRGB(wb, idx) }

	var sheets []SheetFormats
	for _, sheet := range wb.Sheets() {
		sf := SheetFormats{Name: sheet.Name()}
		for _, row := range sheet.Rows() {
			for _, cell := range row.Cells() {
				if cell.X().SAttr == nil {
					continue
				}
				font := GetFontProps(wb.StyleSheet, *cell.X().SAttr)
				if font == nil {
					continue
				}
				colName, err := cell.Column()
				if err != nil {
					continue
				}
				sf.Cells = append(sf.Cells, CellFormat{
					Ref:    fmt.Sprintf("%s%d", colName, row.RowNumber()),
					Row:    int(row.RowNumber()),
					Col:    int(reference.ColumnToIndex(colName)),
					Value:  cell.GetFormattedValue(),
					Format: FontFormat(font, theme),
				})
			}
		}
		sheets = append(sheets, sf)
	}
	return sheets
}

// normalizeColor converts an 8-digit ARGB hex (as used in XLSX) to a 6-digit RGB string.
// If the string is already 6 digits (or any other length), it is returned unchanged.
func normalizeColor(hex string) string {
	hex = strings.TrimPrefix(hex, "#")
	if len(hex) == 8 {
		return hex[2:]
	}
	return hex
}
