// Package design decodes CMS level-design documents and completes their
// ground floor.
//
// # Overview
//
// A design document describes a 3D grid of tiles. The grid is bounded by
// width (x), height (y) and length (z), and tiles are stored sparsely in a
// map keyed by "x,y,z":
//
//	{
//	  "width": 2, "height": 2, "length": 1,
//	  "tiles": {
//	    "0,0,0": {"x": 0, "y": 0, "z": 0, "tileType": {"image": "floor.png"}, "items": {"rampPoints": false}},
//	    "1,1,0": {"x": 1, "y": 1, "z": 0, "tileType": {"image": "ramp.png"}, "items": {"rampPoints": true}}
//	  }
//	}
//
// Decoding is lenient. Missing dimensions decode to zero, a missing tiles
// map decodes to an empty one, and a tileType or items value that is not an
// object decodes to nil instead of failing. Only unreadable or syntactically
// invalid documents are errors.
//
// # Densification
//
// The CMS omits untouched ground tiles. [Densify] inserts a placeholder tile
// with the [EmptyImage] image at every missing (x, y, 0) position so that
// the ground floor is fully covered. Upper floors are never filled.
package design
