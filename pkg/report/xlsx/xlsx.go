// Package xlsx implements report.Workbook on top of excelize.
package xlsx

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/tilereport/pkg/report"
	"github.com/matzehuels/tilereport/pkg/thumbnail"
)

// defaultSheet is the sheet excelize creates with a new file.
const defaultSheet = "Sheet1"

// Workbook is an in-memory Excel workbook.
type Workbook struct {
	f           *excelize.File
	sheets      int
	nextRow     map[string]int
	borderStyle int
	loadImage   func(path string, width, height int) ([]byte, error)
}

// New returns an empty workbook.
func New() *Workbook {
	return &Workbook{
		f:           excelize.NewFile(),
		nextRow:     make(map[string]int),
		borderStyle: -1,
		loadImage:   thumbnail.Load,
	}
}

// File returns the underlying excelize file.
func (w *Workbook) File() *excelize.File {
	return w.f
}

// AddSheet implements report.Workbook.
func (w *Workbook) AddSheet(name string) error {
	if w.sheets == 0 {
		if err := w.f.SetSheetName(defaultSheet, name); err != nil {
			return fmt.Errorf("rename sheet: %w", err)
		}
	} else if _, err := w.f.NewSheet(name); err != nil {
		return fmt.Errorf("new sheet %s: %w", name, err)
	}
	w.sheets++
	w.nextRow[name] = 1
	return nil
}

// SetCell implements report.Workbook.
func (w *Workbook) SetCell(sheet string, cell report.Cell, value any) error {
	if value == nil {
		return nil
	}
	return w.f.SetCellValue(sheet, cell.String(), value)
}

// AppendRow implements report.Workbook.
func (w *Workbook) AppendRow(sheet string, values ...any) error {
	row, ok := w.nextRow[sheet]
	if !ok {
		return fmt.Errorf("unknown sheet %s", sheet)
	}
	for i, v := range values {
		if err := w.SetCell(sheet, report.Cell{Col: i + 1, Row: row}, v); err != nil {
			return err
		}
	}
	w.nextRow[sheet] = row + 1
	return nil
}

// AddImage implements report.Workbook. The image is resized before it is
// embedded so the cell holds exactly width×height pixels.
func (w *Workbook) AddImage(sheet string, cell report.Cell, path string, width, height int) error {
	data, err := w.loadImage(path, width, height)
	if err != nil {
		return err
	}
	return w.f.AddPictureFromBytes(sheet, cell.String(), &excelize.Picture{
		Extension: ".png",
		File:      data,
		Format:    &excelize.GraphicOptions{LockAspectRatio: true},
	})
}

// SetColWidth implements report.Workbook.
func (w *Workbook) SetColWidth(sheet string, col int, width float64) error {
	name := report.ColumnName(col)
	return w.f.SetColWidth(sheet, name, name, width)
}

// SetRowHeight implements report.Workbook.
func (w *Workbook) SetRowHeight(sheet string, row int, height float64) error {
	return w.f.SetRowHeight(sheet, row, height)
}

// SetBorder implements report.Workbook. Existing cell styles in the area are
// replaced by the border style.
func (w *Workbook) SetBorder(sheet string, area report.Area) error {
	if w.borderStyle < 0 {
		style, err := w.f.NewStyle(&excelize.Style{
			Border: []excelize.Border{
				{Type: "left", Color: "000000", Style: 1},
				{Type: "right", Color: "000000", Style: 1},
				{Type: "top", Color: "000000", Style: 1},
				{Type: "bottom", Color: "000000", Style: 1},
			},
		})
		if err != nil {
			return fmt.Errorf("border style: %w", err)
		}
		w.borderStyle = style
	}
	top := report.Cell{Col: area.C1, Row: area.R1}
	bottom := report.Cell{Col: area.C2, Row: area.R2}
	return w.f.SetCellStyle(sheet, top.String(), bottom.String(), w.borderStyle)
}

// Save implements report.Workbook.
func (w *Workbook) Save(path string) error {
	return w.f.SaveAs(path)
}

// Close implements report.Workbook.
func (w *Workbook) Close() error {
	return w.f.Close()
}

var _ report.Workbook = (*Workbook)(nil)
