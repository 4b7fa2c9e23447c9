package report

import "fmt"

// Cell is a 1-based (column, row) cell position.
type Cell struct {
	Col int
	Row int
}

// String returns the A1-style name of the cell, e.g. "B4".
func (c Cell) String() string {
	return ColumnName(c.Col) + fmt.Sprint(c.Row)
}

// ColumnName returns the letter name of a 1-based column, e.g. 1 → "A", 27 → "AA".
func ColumnName(col int) string {
	name := ""
	for col > 0 {
		col--
		name = string(rune('A'+col%26)) + name
		col /= 26
	}
	return name
}

// Area is an inclusive rectangular cell range with 1-based bounds.
type Area struct {
	C1, R1 int // top-left column and row
	C2, R2 int // bottom-right column and row
}

// Contains reports whether c lies inside the area.
func (a Area) Contains(c Cell) bool {
	return c.Col >= a.C1 && c.Col <= a.C2 && c.Row >= a.R1 && c.Row <= a.R2
}

// Workbook is a spreadsheet sink. Cells not written stay blank.
type Workbook interface {
	// AddSheet adds a sheet. The first sheet added replaces the workbook's
	// default sheet.
	AddSheet(name string) error

	// SetCell writes value at cell. A nil value leaves the cell blank.
	SetCell(sheet string, cell Cell, value any) error

	// AppendRow writes values into the row after the last appended row,
	// starting at column A. Nil values leave their cell blank.
	AppendRow(sheet string, values ...any) error

	// AddImage embeds the image file at path anchored at cell, scaled to
	// width×height pixels.
	AddImage(sheet string, cell Cell, path string, width, height int) error

	// SetColWidth sets the width of a column in character units.
	SetColWidth(sheet string, col int, width float64) error

	// SetRowHeight sets the height of a row in points.
	SetRowHeight(sheet string, row int, height float64) error

	// SetBorder draws a thin border on all sides of every cell in area.
	SetBorder(sheet string, area Area) error

	// Save writes the workbook to path.
	Save(path string) error

	// Close releases resources held by the workbook.
	Close() error
}
