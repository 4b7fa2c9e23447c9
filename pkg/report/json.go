package report

import (
	"encoding/json"
	"io"

	"github.com/matzehuels/tilereport/pkg/tileset"
)

// jsonRecord is the JSON form of a tile record.
type jsonRecord struct {
	X          int     `json:"x"`
	Y          int     `json:"y"`
	Z          int     `json:"z"`
	Image      *string `json:"tileType_image"`
	RampPoints *bool   `json:"rampPoints"`
	UnderRamp  bool    `json:"underRamp"`
	Category   string  `json:"category"`
}

type jsonReport struct {
	Design string               `json:"design"`
	Tiles  []jsonRecord         `json:"tiles"`
	Counts []tileset.ImageCount `json:"counts"`
}

// WriteJSON writes the records and counts as one indented JSON document.
// Absent images and ramp flags are written as null.
func WriteJSON(w io.Writer, designPath string, records []tileset.Record, counts []tileset.ImageCount, evacuation tileset.ImageSet) error {
	out := jsonReport{
		Design: designPath,
		Tiles:  make([]jsonRecord, len(records)),
		Counts: counts,
	}
	if out.Counts == nil {
		out.Counts = []tileset.ImageCount{}
	}
	for i, r := range records {
		out.Tiles[i] = jsonRecord{
			X: r.X, Y: r.Y, Z: r.Z,
			Image:      r.Image,
			RampPoints: r.RampPoints,
			UnderRamp:  r.UnderRamp,
			Category:   tileset.Categorize(r, evacuation).String(),
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}
