// Package pkg provides the core libraries for tilereport.
//
// # Overview
//
// Tilereport turns a 3D tile design into spreadsheet reports: a tile list
// with one row per tile and a summary of image usage with thumbnails. The
// pkg directory is organized into these areas:
//
//  1. [design] - Design document decoding and ground floor completion
//  2. [tileset] - Tile records, classification, ordering and image counts
//  3. [thumbnail] - Design image lookup and thumbnail scaling
//  4. [report] - Sheet layouts over a workbook sink, with xlsx and sqlite backends
//  5. [pipeline] - Orchestration (extract → aggregate → report)
//
// # Architecture
//
//	design JSON
//	     ↓
//	[design] decode + fill ground floor
//	     ↓
//	[tileset] extract → classify → reorder → aggregate
//	     ↓
//	[thumbnail] resolve design images
//	     ↓
//	[report] tile list + summary (xlsx), json, sqlite
//
// # Quick Start
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:    "stage1.json",
//	    TilesDir: "tiles",
//	    Formats:  []string{pipeline.FormatXLSX},
//	})
//
// Errors carry a code and the failing stage; see [errors].
package pkg
