package design

import (
	"fmt"
	"strconv"
	"strings"
)

// EmptyImage is the image of placeholder tiles inserted by [Densify].
const EmptyImage = "tile-empty.png"

// Document is a decoded level design.
type Document struct {
	Width  int
	Height int
	Length int

	// Tiles maps "x,y,z" keys to tiles. It is never nil after decoding.
	Tiles map[string]*RawTile
}

// RawTile is one tile as stored in the design document.
type RawTile struct {
	X, Y, Z int

	// TileType is nil when the document has no tileType object for the tile.
	TileType *TileType

	// Items is nil when the document has no items object for the tile.
	Items *Items

	// UnderRamp is the value stored by the CMS. It is superseded by the
	// value derived during classification.
	UnderRamp bool
}

// TileType describes the visual type of a tile.
type TileType struct {
	// Image is nil when the tile type carries no string image.
	Image *string
}

// Items holds the objects placed on a tile.
type Items struct {
	// RampPoints is nil when the items object carries no boolean rampPoints.
	RampPoints *bool
}

// Key returns the map key of the tile at x, y, z.
func Key(x, y, z int) string {
	return strconv.Itoa(x) + "," + strconv.Itoa(y) + "," + strconv.Itoa(z)
}

// ParseKey splits an "x,y,z" key into its coordinates.
func ParseKey(key string) (x, y, z int, err error) {
	parts := strings.Split(key, ",")
	if len(parts) != 3 {
		return 0, 0, 0, fmt.Errorf("invalid tile key %q: want x,y,z", key)
	}
	var coords [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 {
			return 0, 0, 0, fmt.Errorf("invalid tile key %q: coordinate %q", key, p)
		}
		coords[i] = n
	}
	return coords[0], coords[1], coords[2], nil
}

// Image returns the tile image, or nil when the tile has none.
func (t *RawTile) Image() *string {
	if t == nil || t.TileType == nil {
		return nil
	}
	return t.TileType.Image
}

// RampPoints returns the rampPoints flag, or nil when the tile has none.
func (t *RawTile) RampPoints() *bool {
	if t == nil || t.Items == nil {
		return nil
	}
	return t.Items.RampPoints
}

// Densify inserts an [EmptyImage] placeholder at every (x, y, 0) position of
// the grid that has no tile, and returns the number of tiles inserted.
// Positions above the ground floor are left untouched. A grid with a zero
// dimension, including a zero length, has no ground floor and is left as is.
// Densify is idempotent: a second call inserts nothing.
func Densify(doc *Document) int {
	if doc == nil || doc.Length <= 0 {
		return 0
	}
	if doc.Tiles == nil {
		doc.Tiles = make(map[string]*RawTile)
	}

	added := 0
	for x := 0; x < doc.Width; x++ {
		for y := 0; y < doc.Height; y++ {
			key := Key(x, y, 0)
			if _, ok := doc.Tiles[key]; ok {
				continue
			}
			doc.Tiles[key] = placeholder(x, y)
			added++
		}
	}
	return added
}

func placeholder(x, y int) *RawTile {
	image := EmptyImage
	ramp := false
	return &RawTile{
		X:         x,
		Y:         y,
		Z:         0,
		TileType:  &TileType{Image: &image},
		Items:     &Items{RampPoints: &ramp},
		UnderRamp: false,
	}
}
