package design_test

import (
	"fmt"
	"strings"

	"github.com/matzehuels/tilereport/pkg/design"
)

func ExampleDensify() {
	doc, _ := design.ReadJSON(strings.NewReader(`{
		"width": 2, "height": 2, "length": 1,
		"tiles": {"0,0,0": {"x": 0, "y": 0, "z": 0, "tileType": {"image": "floor.png"}}}
	}`))

	added := design.Densify(doc)
	fmt.Println("Added:", added)
	fmt.Println("Tiles:", len(doc.Tiles))
	fmt.Println("Placeholder:", *doc.Tiles["1,1,0"].Image())
	// Output:
	// Added: 3
	// Tiles: 4
	// Placeholder: tile-empty.png
}
