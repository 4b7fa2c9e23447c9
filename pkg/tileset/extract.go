package tileset

import (
	"cmp"
	"slices"

	"github.com/matzehuels/tilereport/pkg/design"
)

// Extract projects every tile of doc into a [Record] and returns the
// records sorted ascending by (x, y, z). A nil document or tile map yields
// no records. Under-ramp flags are left unset; see [Classify].
func Extract(doc *design.Document) []Record {
	if doc == nil || len(doc.Tiles) == 0 {
		return nil
	}

	records := make([]Record, 0, len(doc.Tiles))
	for _, t := range doc.Tiles {
		if t == nil {
			continue
		}
		records = append(records, Record{
			X:          t.X,
			Y:          t.Y,
			Z:          t.Z,
			Image:      t.Image(),
			RampPoints: t.RampPoints(),
		})
	}

	slices.SortFunc(records, compareXYZ)
	return records
}

func compareXYZ(a, b Record) int {
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Y, b.Y); c != 0 {
		return c
	}
	return cmp.Compare(a.Z, b.Z)
}
