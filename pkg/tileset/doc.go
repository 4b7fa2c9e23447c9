// Package tileset turns a design document into the ordered, classified tile
// records and image counts that the reports are built from.
//
// # Pipeline
//
// The functions in this package are applied in order:
//
//  1. [Extract] flattens the sparse tile map into records sorted by (x, y, z)
//  2. [Classify] derives the under-ramp flag from the full record sequence
//  3. [Reorder] groups the records by [Category] for presentation
//  4. [Aggregate] counts image usage over the ordinary tiles
//
// # Categories
//
// Every record belongs to exactly one [Category]. Evacuation tiles are
// recognised by image (see [DefaultEvacuationImages]) and take precedence
// over everything else; among the remaining tiles under-ramp takes
// precedence over ramp-point. Tiles in none of these groups are
// [CategoryOther]. Presentation order is Other, RampPoint, UnderRamp,
// Evacuation.
package tileset
