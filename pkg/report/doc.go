// Package report lays out tile records and image counts on spreadsheets.
//
// Two reports are produced from one design:
//
//   - The tile list ([WriteTileList]): sheet "Tileset Data" with a header
//     row and one row per record in presentation order.
//   - The summary ([WriteSummary]): sheet "Tiles" with three side-by-side
//     tracks of (image, thumbnail, amount) columns, ten images per track.
//
// Both writers target the [Workbook] interface; package xlsx provides the
// Excel implementation. The summary layout itself is computed by [Place],
// which is independent of any workbook.
//
// # Summary capacity
//
// A summary sheet holds [PageCapacity] images. Further images continue on
// additional sheets named "Tiles (2)", "Tiles (3)", and so on, each with the
// same captions, headers, borders and dimensions.
package report
