package report

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/matzehuels/tilereport/pkg/tileset"
)

func countsN(n int) []tileset.ImageCount {
	out := make([]tileset.ImageCount, n)
	for i := range out {
		out[i] = tileset.ImageCount{Image: fmt.Sprintf("img%02d.png", i), Amount: n - i}
	}
	return out
}

func TestPlaceWrapsEveryTenRows(t *testing.T) {
	got := Place(25)
	if len(got) != 25 {
		t.Fatalf("len(Place(25)) = %d, want 25", len(got))
	}

	perTrack := map[int][]int{}
	for _, p := range got {
		if p.Page != 0 {
			t.Fatalf("placement %+v should be on page 0", p)
		}
		perTrack[p.Track] = append(perTrack[p.Track], p.Row)
	}

	want := map[int][]int{
		0: {4, 5, 6, 7, 8, 9, 10, 11, 12, 13},
		1: {4, 5, 6, 7, 8, 9, 10, 11, 12, 13},
		2: {4, 5, 6, 7, 8},
	}
	if diff := cmp.Diff(want, perTrack); diff != "" {
		t.Errorf("Place(25) rows per track mismatch (-want +got):\n%s", diff)
	}

	if c := got[10].ImageCell(); c != (Cell{Col: 4, Row: 4}) {
		t.Errorf("11th image cell = %v, want D4", c)
	}
	if c := got[24].AmountCell(); c != (Cell{Col: 9, Row: 8}) {
		t.Errorf("25th amount cell = %v, want I8", c)
	}
	if c := got[0].DesignCell(); c != (Cell{Col: 2, Row: 4}) {
		t.Errorf("1st design cell = %v, want B4", c)
	}
}

func TestPlaceOverflowsToNextPage(t *testing.T) {
	got := Place(31)
	if p := got[29]; p != (Placement{Page: 0, Track: 2, Row: 13}) {
		t.Errorf("30th placement = %+v, want page 0 track 2 row 13", p)
	}
	if p := got[30]; p != (Placement{Page: 1, Track: 0, Row: 4}) {
		t.Errorf("31st placement = %+v, want page 1 track 0 row 4", p)
	}
}

func TestPages(t *testing.T) {
	tests := []struct{ n, want int }{
		{0, 1}, {1, 1}, {30, 1}, {31, 2}, {60, 2}, {61, 3},
	}
	for _, tt := range tests {
		if got := Pages(tt.n); got != tt.want {
			t.Errorf("Pages(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestSheetName(t *testing.T) {
	if got := SheetName(0); got != "Tiles" {
		t.Errorf("SheetName(0) = %q, want Tiles", got)
	}
	if got := SheetName(2); got != "Tiles (3)" {
		t.Errorf("SheetName(2) = %q, want Tiles (3)", got)
	}
}

func TestWriteSummary(t *testing.T) {
	counts := countsN(25)
	counts[0].Path = "tiles/img00.png"
	counts[12].Path = "tiles/img12.png"

	wb := newMemWorkbook()
	if err := WriteSummary(wb, Summary{DesignPath: "stage1.json", Counts: counts}); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}

	if diff := cmp.Diff([]string{"Tiles"}, wb.sheets); diff != "" {
		t.Errorf("sheets mismatch (-want +got):\n%s", diff)
	}

	cells := wb.cells["Tiles"]
	if got := cells[Cell{1, 1}]; got != "デザイン: stage1.json" {
		t.Errorf("A1 = %v", got)
	}
	if got := cells[Cell{1, 2}]; got != tilesetCaption {
		t.Errorf("A2 = %v", got)
	}
	if got := cells[Cell{1, NoteRow}]; got != noteCaption {
		t.Errorf("A15 = %v", got)
	}

	for track := 0; track < Tracks; track++ {
		for i, h := range SummaryHeader {
			if got := cells[Cell{1 + track*TrackWidth + i, HeaderRow}]; got != h {
				t.Errorf("header at col %d = %v, want %v", 1+track*TrackWidth+i, got, h)
			}
		}
	}

	// Track 1 rows 4..13, track 2 rows 4..13, track 3 rows 4..8.
	if got := cells[Cell{1, 4}]; got != "img00.png" {
		t.Errorf("A4 = %v, want img00.png", got)
	}
	if got := cells[Cell{3, 4}]; got != 25 {
		t.Errorf("C4 = %v, want 25", got)
	}
	if got := cells[Cell{1, 13}]; got != "img09.png" {
		t.Errorf("A13 = %v, want img09.png", got)
	}
	if got := cells[Cell{4, 4}]; got != "img10.png" {
		t.Errorf("D4 = %v, want img10.png", got)
	}
	if got := cells[Cell{7, 8}]; got != "img24.png" {
		t.Errorf("G8 = %v, want img24.png", got)
	}
	if _, ok := cells[Cell{7, 9}]; ok {
		t.Error("G9 should be empty")
	}

	wantImages := map[Cell]string{
		{2, 4}: "tiles/img00.png@50x50",
		{5, 6}: "tiles/img12.png@50x50",
	}
	if diff := cmp.Diff(wantImages, wb.images["Tiles"]); diff != "" {
		t.Errorf("images mismatch (-want +got):\n%s", diff)
	}

	if diff := cmp.Diff([]Area{{C1: 1, R1: 3, C2: 9, R2: 13}}, wb.borders["Tiles"]); diff != "" {
		t.Errorf("borders mismatch (-want +got):\n%s", diff)
	}
	for row := HeaderRow; row <= LastDataRow; row++ {
		if wb.heights["Tiles"][row] != 40 {
			t.Errorf("row %d height = %v, want 40", row, wb.heights["Tiles"][row])
		}
	}
	if got, want := wb.widths["Tiles"][8], 52.0/7; got != want {
		t.Errorf("column H width = %v, want %v", got, want)
	}
}

func TestWriteSummaryOverflow(t *testing.T) {
	wb := newMemWorkbook()
	if err := WriteSummary(wb, Summary{DesignPath: "big.json", Counts: countsN(35)}); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}

	if diff := cmp.Diff([]string{"Tiles", "Tiles (2)"}, wb.sheets); diff != "" {
		t.Errorf("sheets mismatch (-want +got):\n%s", diff)
	}
	second := wb.cells["Tiles (2)"]
	if got := second[Cell{1, 4}]; got != "img30.png" {
		t.Errorf("second sheet A4 = %v, want img30.png", got)
	}
	if got := second[Cell{1, 1}]; got != "デザイン: big.json" {
		t.Errorf("second sheet A1 = %v", got)
	}
	if got := second[Cell{1, 8}]; got != "img34.png" {
		t.Errorf("second sheet A8 = %v, want img34.png", got)
	}
}

func TestWriteSummaryEmpty(t *testing.T) {
	wb := newMemWorkbook()
	if err := WriteSummary(wb, Summary{DesignPath: "empty.json"}); err != nil {
		t.Fatalf("WriteSummary() error = %v", err)
	}
	if len(wb.sheets) != 1 {
		t.Errorf("sheets = %v, want one", wb.sheets)
	}
	if _, ok := wb.cells["Tiles"][Cell{1, 4}]; ok {
		t.Error("empty summary should have no data")
	}
}

func TestWriteSummaryImageError(t *testing.T) {
	wb := newMemWorkbook()
	wb.failOn = "AddImage"
	counts := []tileset.ImageCount{{Image: "a.png", Amount: 1, Path: "tiles/a.png"}}
	if err := WriteSummary(wb, Summary{Counts: counts}); err == nil {
		t.Error("WriteSummary() should surface image errors")
	}
}
