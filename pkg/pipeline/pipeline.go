// Package pipeline provides the design → reports pipeline for tilereport.
//
// This package implements the complete extract → aggregate → report
// pipeline used by the CLI. By centralizing this logic, every entry point
// produces identical reports for the same design.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Extraction: decode the design, fill the ground floor, extract,
//     classify and reorder the tile records
//  2. Aggregation: count image usage and resolve design images
//  3. Report: lay out and save the requested output formats
//
// Errors returned by the runner carry the failing stage (see
// [errors.GetStage]).
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:    "stage1.json",
//	    TilesDir: "tiles",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, out := range result.Outputs {
//	    fmt.Println(out.Path)
//	}
package pipeline

import (
	"io"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tilereport/pkg/errors"
	"github.com/matzehuels/tilereport/pkg/report"
	"github.com/matzehuels/tilereport/pkg/report/xlsx"
	"github.com/matzehuels/tilereport/pkg/thumbnail"
	"github.com/matzehuels/tilereport/pkg/tileset"
)

// =============================================================================
// Default Values
// =============================================================================

const (
	// DefaultTilesDir is the directory design images are looked up in.
	DefaultTilesDir = "tiles"

	// DefaultOutputDir is the directory reports are written to.
	DefaultOutputDir = "."
)

// Format constants for output formats.
const (
	FormatXLSX   = "xlsx"
	FormatJSON   = "json"
	FormatSQLite = "sqlite"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatXLSX:   true,
	FormatJSON:   true,
	FormatSQLite: true,
}

// Output kinds.
const (
	KindTileList = "tileList"
	KindSummary  = "tileSummary"
	KindTileset  = "tileset"
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for one pipeline run.
type Options struct {
	// Input is the design document path.
	Input string `json:"input"`

	// TilesDir holds the design images, looked up by image id.
	TilesDir string `json:"tiles_dir,omitempty"`

	// OutputDir receives the reports.
	OutputDir string `json:"output_dir,omitempty"`

	// Formats lists the output formats to write.
	Formats []string `json:"formats,omitempty"`

	// EvacuationImages are the images that mark evacuation tiles.
	EvacuationImages []string `json:"evacuation_images,omitempty"`

	// Runtime options (not serialized)
	Logger      *log.Logger            `json:"-"`
	Prober      thumbnail.Prober       `json:"-"`
	NewWorkbook func() report.Workbook `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Records are the classified tile records in presentation order.
	Records []tileset.Record

	// Counts are the image counts in summary order.
	Counts []tileset.ImageCount

	// Outputs lists the files written, in write order.
	Outputs []Output

	// Stats contains timing and size information.
	Stats Stats
}

// Output is one written report file.
type Output struct {
	Format string
	Kind   string
	Path   string
}

// Stats contains pipeline execution statistics.
type Stats struct {
	TileCount        int
	PlaceholderCount int
	ImageCount       int
	ResolvedCount    int
	SummaryPages     int
	Groups           map[tileset.Category]int
	ExtractTime      time.Duration
	AggregateTime    time.Duration
	ReportTime       time.Duration
}

// =============================================================================
// Options Methods
// =============================================================================

// SetDefaults fills in unset options.
func (o *Options) SetDefaults() {
	if o.TilesDir == "" {
		o.TilesDir = DefaultTilesDir
	}
	if o.OutputDir == "" {
		o.OutputDir = DefaultOutputDir
	}
	if len(o.Formats) == 0 {
		o.Formats = []string{FormatXLSX}
	}
	if len(o.EvacuationImages) == 0 {
		o.EvacuationImages = tileset.DefaultEvacuationImages
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	if o.Prober == nil {
		o.Prober = thumbnail.OSProber{}
	}
	if o.NewWorkbook == nil {
		o.NewWorkbook = func() report.Workbook { return xlsx.New() }
	}
}

// Validate applies defaults and checks required fields.
func (o *Options) Validate() error {
	o.SetDefaults()
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "design input is required")
	}
	seen := make(map[string]bool, len(o.Formats))
	for _, f := range o.Formats {
		if err := errors.ValidateFormat(f, ValidFormats); err != nil {
			return err
		}
		if seen[f] {
			return errors.New(errors.ErrCodeInvalidFormat, "duplicate format: %q", f)
		}
		seen[f] = true
	}
	return nil
}

// Evacuation returns the evacuation image set.
func (o *Options) Evacuation() tileset.ImageSet {
	return tileset.NewImageSet(o.EvacuationImages...)
}

// Stem returns the input file name without directory and extension.
func Stem(input string) string {
	base := filepath.Base(input)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// OutputPath returns the path of the kind report in format.
// For example, "designs/stage1.json" with kind tileList and format xlsx
// becomes "<outputDir>/stage1_tileList.xlsx".
func OutputPath(input, outputDir, kind, format string) string {
	return filepath.Join(outputDir, Stem(input)+"_"+kind+"."+format)
}

// Outputs returns the files a run with o would write, in write order.
func (o *Options) Outputs() []Output {
	var out []Output
	for _, f := range o.Formats {
		switch f {
		case FormatXLSX:
			out = append(out,
				Output{Format: f, Kind: KindTileList, Path: OutputPath(o.Input, o.OutputDir, KindTileList, f)},
				Output{Format: f, Kind: KindSummary, Path: OutputPath(o.Input, o.OutputDir, KindSummary, f)},
			)
		case FormatJSON, FormatSQLite:
			out = append(out, Output{Format: f, Kind: KindTileset, Path: OutputPath(o.Input, o.OutputDir, KindTileset, f)})
		}
	}
	return out
}
