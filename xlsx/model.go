package xlsx

import (
	"fmt"

	"github.com/aerissecure/charformat"
)

// Intermediate representation for XLSX: the resolved character format of
// every styled cell.

// CellFormat is the character format of a single cell.
type CellFormat struct {
	Ref    string            // e.g. "A1"
	Row    int               // 1-based
	Col    int               // 0-based, as returned by reference.ColumnToIndex
	Value  string            // already formatted value
	Format charformat.Format // resolved from the cell's font
}

func (c CellFormat) String() string {
	return fmt.Sprintf("Ref: %s, Value: %q, Format: [%s]", c.Ref, c.Value, c.Format.String())
}

// SheetFormats holds the cell formats of one worksheet in row order.
type SheetFormats struct {
	Name  string
	Cells []CellFormat
}

func (s SheetFormats) String() string {
	return fmt.Sprintf("Name: %s, Cells: %d", s.Name, len(s.Cells))
}
