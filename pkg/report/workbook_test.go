package report

import (
	"fmt"
	"testing"
)

// memWorkbook records everything written to it.
type memWorkbook struct {
	sheets  []string
	cells   map[string]map[Cell]any
	next    map[string]int
	images  map[string]map[Cell]string
	widths  map[string]map[int]float64
	heights map[string]map[int]float64
	borders map[string][]Area
	saved   string
	failOn  string
}

func newMemWorkbook() *memWorkbook {
	return &memWorkbook{
		cells:   make(map[string]map[Cell]any),
		next:    make(map[string]int),
		images:  make(map[string]map[Cell]string),
		widths:  make(map[string]map[int]float64),
		heights: make(map[string]map[int]float64),
		borders: make(map[string][]Area),
	}
}

func (m *memWorkbook) check(op string) error {
	if m.failOn == op {
		return fmt.Errorf("%s failed", op)
	}
	return nil
}

func (m *memWorkbook) AddSheet(name string) error {
	if err := m.check("AddSheet"); err != nil {
		return err
	}
	m.sheets = append(m.sheets, name)
	m.cells[name] = make(map[Cell]any)
	m.images[name] = make(map[Cell]string)
	m.widths[name] = make(map[int]float64)
	m.heights[name] = make(map[int]float64)
	m.next[name] = 1
	return nil
}

func (m *memWorkbook) SetCell(sheet string, cell Cell, value any) error {
	if err := m.check("SetCell"); err != nil {
		return err
	}
	if value != nil {
		m.cells[sheet][cell] = value
	}
	return nil
}

func (m *memWorkbook) AppendRow(sheet string, values ...any) error {
	if err := m.check("AppendRow"); err != nil {
		return err
	}
	row := m.next[sheet]
	for i, v := range values {
		if v != nil {
			m.cells[sheet][Cell{Col: i + 1, Row: row}] = v
		}
	}
	m.next[sheet] = row + 1
	return nil
}

func (m *memWorkbook) AddImage(sheet string, cell Cell, path string, width, height int) error {
	if err := m.check("AddImage"); err != nil {
		return err
	}
	m.images[sheet][cell] = fmt.Sprintf("%s@%dx%d", path, width, height)
	return nil
}

func (m *memWorkbook) SetColWidth(sheet string, col int, width float64) error {
	m.widths[sheet][col] = width
	return nil
}

func (m *memWorkbook) SetRowHeight(sheet string, row int, height float64) error {
	m.heights[sheet][row] = height
	return nil
}

func (m *memWorkbook) SetBorder(sheet string, area Area) error {
	m.borders[sheet] = append(m.borders[sheet], area)
	return nil
}

func (m *memWorkbook) Save(path string) error {
	if err := m.check("Save"); err != nil {
		return err
	}
	m.saved = path
	return nil
}

func (m *memWorkbook) Close() error { return nil }

var _ Workbook = (*memWorkbook)(nil)

func TestColumnName(t *testing.T) {
	tests := []struct {
		col  int
		want string
	}{
		{1, "A"},
		{2, "B"},
		{9, "I"},
		{26, "Z"},
		{27, "AA"},
		{52, "AZ"},
		{53, "BA"},
	}
	for _, tt := range tests {
		if got := ColumnName(tt.col); got != tt.want {
			t.Errorf("ColumnName(%d) = %q, want %q", tt.col, got, tt.want)
		}
	}
}

func TestCellString(t *testing.T) {
	if got := (Cell{Col: 2, Row: 4}).String(); got != "B4" {
		t.Errorf("Cell.String() = %q, want B4", got)
	}
}

func TestAreaContains(t *testing.T) {
	if !BorderArea.Contains(Cell{Col: 9, Row: 13}) {
		t.Error("BorderArea should contain I13")
	}
	if BorderArea.Contains(Cell{Col: 10, Row: 13}) || BorderArea.Contains(Cell{Col: 1, Row: 14}) {
		t.Error("BorderArea should end at I13")
	}
}
