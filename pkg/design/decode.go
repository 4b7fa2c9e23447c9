package design

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// jsonDocument is the on-disk JSON format.
type jsonDocument struct {
	Width  int                         `json:"width"`
	Height int                         `json:"height"`
	Length int                         `json:"length"`
	Tiles  map[string]*json.RawMessage `json:"tiles"`
}

type jsonTile struct {
	X         *int            `json:"x"`
	Y         *int            `json:"y"`
	Z         *int            `json:"z"`
	TileType  json.RawMessage `json:"tileType"`
	Items     json.RawMessage `json:"items"`
	UnderRamp json.RawMessage `json:"underRamp"`
}

type jsonTileType struct {
	Image json.RawMessage `json:"image"`
}

type jsonItems struct {
	RampPoints json.RawMessage `json:"rampPoints"`
}

// ReadJSON decodes a design document from r.
//
// Absent dimensions default to 0 and an absent tiles map to an empty one.
// Tiles whose value is null are dropped. Coordinates missing from a tile are
// taken from its key; coordinates present in the tile take precedence over
// the key.
//
// ReadJSON returns an error if the JSON is malformed, if a tile is not an
// object, or if a tile has neither coordinates nor a parseable key.
// ReadJSON does not close r.
func ReadJSON(r io.Reader) (*Document, error) {
	var data jsonDocument
	if err := json.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	doc := &Document{
		Width:  data.Width,
		Height: data.Height,
		Length: data.Length,
		Tiles:  make(map[string]*RawTile, len(data.Tiles)),
	}
	for key, raw := range data.Tiles {
		if raw == nil || isNull(*raw) {
			continue
		}
		t, err := decodeTile(key, *raw)
		if err != nil {
			return nil, fmt.Errorf("tile %s: %w", key, err)
		}
		doc.Tiles[key] = t
	}
	return doc, nil
}

// Import reads the design file at path and returns the decoded document.
func Import(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()
	return ReadJSON(f)
}

func decodeTile(key string, raw json.RawMessage) (*RawTile, error) {
	var jt jsonTile
	if err := json.Unmarshal(raw, &jt); err != nil {
		return nil, err
	}

	t := &RawTile{}
	if jt.X == nil || jt.Y == nil || jt.Z == nil {
		x, y, z, err := ParseKey(key)
		if err != nil {
			return nil, err
		}
		t.X, t.Y, t.Z = x, y, z
	}
	if jt.X != nil {
		t.X = *jt.X
	}
	if jt.Y != nil {
		t.Y = *jt.Y
	}
	if jt.Z != nil {
		t.Z = *jt.Z
	}

	var tt jsonTileType
	if decodeObject(jt.TileType, &tt) {
		t.TileType = &TileType{}
		var image string
		if json.Unmarshal(tt.Image, &image) == nil && !isNull(tt.Image) {
			t.TileType.Image = &image
		}
	}

	var items jsonItems
	if decodeObject(jt.Items, &items) {
		t.Items = &Items{}
		var ramp bool
		if json.Unmarshal(items.RampPoints, &ramp) == nil && !isNull(items.RampPoints) {
			t.Items.RampPoints = &ramp
		}
	}

	var underRamp bool
	if json.Unmarshal(jt.UnderRamp, &underRamp) == nil {
		t.UnderRamp = underRamp
	}
	return t, nil
}

// decodeObject unmarshals raw into v when raw is a JSON object and reports
// whether it did.
func decodeObject(raw json.RawMessage, v any) bool {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return false
	}
	return json.Unmarshal(trimmed, v) == nil
}

func isNull(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}
