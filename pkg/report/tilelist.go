package report

import "github.com/matzehuels/tilereport/pkg/tileset"

// TileListSheet is the name of the tile list sheet.
const TileListSheet = "Tileset Data"

// TileListHeader is the header row of the tile list.
var TileListHeader = []any{"x", "y", "z", "tileType_image", "rampPoints", "underRamp"}

// WriteTileList writes the tile list sheet: the header followed by one row
// per record in the given order.
func WriteTileList(wb Workbook, records []tileset.Record) error {
	if err := wb.AddSheet(TileListSheet); err != nil {
		return err
	}
	if err := wb.AppendRow(TileListSheet, TileListHeader...); err != nil {
		return err
	}
	for _, r := range records {
		if err := wb.AppendRow(TileListSheet, TileListRow(r)...); err != nil {
			return err
		}
	}
	return nil
}

// TileListRow returns the cell values of r. Absent values are nil.
func TileListRow(r tileset.Record) []any {
	var image, ramp any
	if r.Image != nil {
		image = *r.Image
	}
	if r.RampPoints != nil {
		ramp = *r.RampPoints
	}
	return []any{r.X, r.Y, r.Z, image, ramp, r.UnderRamp}
}
