package report

import (
	"fmt"

	"github.com/matzehuels/tilereport/pkg/tileset"
)

// Summary sheet geometry.
const (
	SummarySheet = "Tiles"

	Tracks        = 3  // side-by-side column groups
	TrackWidth    = 3  // columns per track: image, design, amount
	RowsPerTrack  = 10 // images per track
	PageCapacity  = Tracks * RowsPerTrack
	HeaderRow     = 3
	FirstDataRow  = 4
	LastDataRow   = FirstDataRow + RowsPerTrack - 1
	NoteRow       = 15
	ThumbnailSize = 50
	dataRowHeight = 40
)

// Fixed summary captions.
const (
	designCaption  = "デザイン: %s"
	tilesetCaption = "構成されるタイルセット"
	noteCaption    = "※立体交差下，坂道タイルは，フィールドデザインを確認し作成してください"
)

// SummaryHeader is repeated at the top of every track.
var SummaryHeader = []string{"tileType_image", "design", "amount"}

// trackColumnWidths are the widths of the image, design and amount columns.
var trackColumnWidths = [TrackWidth]float64{110.0 / 7, 52.0 / 7, 70.0 / 7}

// BorderArea is the bordered header and data region of a summary sheet.
var BorderArea = Area{C1: 1, R1: HeaderRow, C2: Tracks * TrackWidth, R2: LastDataRow}

// Summary is the input of [WriteSummary].
type Summary struct {
	// DesignPath is echoed in the first cell of every summary sheet.
	DesignPath string

	// Counts are placed in order; see [Place].
	Counts []tileset.ImageCount
}

// Placement is the position of one image count on the summary.
type Placement struct {
	Page  int // 0-based summary sheet index
	Track int // 0-based track within the sheet
	Row   int // 1-based sheet row
}

// ImageCell is the cell holding the image id.
func (p Placement) ImageCell() Cell { return Cell{Col: 1 + p.Track*TrackWidth, Row: p.Row} }

// DesignCell is the thumbnail anchor.
func (p Placement) DesignCell() Cell { return Cell{Col: 2 + p.Track*TrackWidth, Row: p.Row} }

// AmountCell is the cell holding the amount.
func (p Placement) AmountCell() Cell { return Cell{Col: 3 + p.Track*TrackWidth, Row: p.Row} }

// Place computes the positions of n image counts. A cursor starts at the
// first data row of track 0 and moves down one row per image; after every
// RowsPerTrack images it returns to the first data row of the next track,
// and after the last track to the first track of the next page.
func Place(n int) []Placement {
	out := make([]Placement, 0, n)
	row, track, page := FirstDataRow, 0, 0
	for i := 0; i < n; i++ {
		out = append(out, Placement{Page: page, Track: track, Row: row})
		row++
		if (i+1)%RowsPerTrack == 0 {
			row = FirstDataRow
			track++
			if track == Tracks {
				track = 0
				page++
			}
		}
	}
	return out
}

// Pages returns the number of summary sheets needed for n image counts.
// An empty summary still has one sheet.
func Pages(n int) int {
	if n <= PageCapacity {
		return 1
	}
	return (n + PageCapacity - 1) / PageCapacity
}

// SheetName returns the name of the summary sheet at page.
func SheetName(page int) string {
	if page == 0 {
		return SummarySheet
	}
	return fmt.Sprintf("%s (%d)", SummarySheet, page+1)
}

// WriteSummary writes the summary sheets for s. Thumbnails are embedded for
// counts with a resolved Path.
func WriteSummary(wb Workbook, s Summary) error {
	pages := Pages(len(s.Counts))
	for page := 0; page < pages; page++ {
		if err := writeSummaryFrame(wb, SheetName(page), s.DesignPath); err != nil {
			return fmt.Errorf("%s: %w", SheetName(page), err)
		}
	}

	for i, p := range Place(len(s.Counts)) {
		c := s.Counts[i]
		sheet := SheetName(p.Page)
		if err := wb.SetCell(sheet, p.ImageCell(), c.Image); err != nil {
			return err
		}
		if err := wb.SetCell(sheet, p.AmountCell(), c.Amount); err != nil {
			return err
		}
		if c.Path == "" {
			continue
		}
		if err := wb.AddImage(sheet, p.DesignCell(), c.Path, ThumbnailSize, ThumbnailSize); err != nil {
			return fmt.Errorf("thumbnail %s: %w", c.Image, err)
		}
	}
	return nil
}

// writeSummaryFrame writes the captions, headers, dimensions and borders of
// one summary sheet.
func writeSummaryFrame(wb Workbook, sheet, designPath string) error {
	if err := wb.AddSheet(sheet); err != nil {
		return err
	}

	captions := []struct {
		cell  Cell
		value string
	}{
		{Cell{1, 1}, fmt.Sprintf(designCaption, designPath)},
		{Cell{1, 2}, tilesetCaption},
		{Cell{1, NoteRow}, noteCaption},
	}
	for _, c := range captions {
		if err := wb.SetCell(sheet, c.cell, c.value); err != nil {
			return err
		}
	}

	for t := 0; t < Tracks; t++ {
		for i, h := range SummaryHeader {
			col := 1 + t*TrackWidth + i
			if err := wb.SetCell(sheet, Cell{Col: col, Row: HeaderRow}, h); err != nil {
				return err
			}
			if err := wb.SetColWidth(sheet, col, trackColumnWidths[i]); err != nil {
				return err
			}
		}
	}

	for row := HeaderRow; row <= LastDataRow; row++ {
		if err := wb.SetRowHeight(sheet, row, dataRowHeight); err != nil {
			return err
		}
	}
	return wb.SetBorder(sheet, BorderArea)
}
