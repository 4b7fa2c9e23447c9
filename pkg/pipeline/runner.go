package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/tilereport/pkg/errors"
	"github.com/matzehuels/tilereport/pkg/observability"
	"github.com/matzehuels/tilereport/pkg/report"
	"github.com/matzehuels/tilereport/pkg/tileset"
)

// Runner executes pipeline runs.
//
// The Runner is stateless except for its logger. Multiple goroutines can
// safely use the same Runner with different options.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger uses log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Execute runs the complete extract → aggregate → report pipeline.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	result, err := r.Analyze(ctx, opts)
	if err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	opts.SetDefaults()

	// Stage 3: Report
	hooks := observability.Pipeline()
	start := time.Now()
	hooks.OnStageStart(ctx, string(errors.StageReport))
	outputs, err := WriteReports(ctx, opts, result.Records, result.Counts)
	result.Stats.ReportTime = time.Since(start)
	hooks.OnStageComplete(ctx, string(errors.StageReport), result.Stats.ReportTime, err)
	if err != nil {
		return nil, err
	}
	result.Outputs = outputs

	r.Logger.Info("wrote reports",
		"formats", opts.Formats,
		"files", len(outputs),
		"duration", result.Stats.ReportTime)

	return result, nil
}

// Analyze runs the extraction and aggregation stages without writing
// any reports.
func (r *Runner) Analyze(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)
	hooks := observability.Pipeline()
	result := &Result{}

	// Stage 1: Extraction
	start := time.Now()
	hooks.OnStageStart(ctx, string(errors.StageExtraction))
	ex, err := Extract(ctx, opts)
	result.Stats.ExtractTime = time.Since(start)
	hooks.OnStageComplete(ctx, string(errors.StageExtraction), result.Stats.ExtractTime, err)
	if err != nil {
		return nil, err
	}
	result.Records = ex.Records
	result.Stats.TileCount = len(ex.Records)
	result.Stats.PlaceholderCount = ex.Placeholders
	result.Stats.Groups = tileset.GroupSizes(ex.Records, opts.Evacuation())

	r.Logger.Info("extracted tiles",
		"tiles", result.Stats.TileCount,
		"placeholders", result.Stats.PlaceholderCount,
		"duration", result.Stats.ExtractTime)
	for _, c := range tileset.Categories {
		r.Logger.Debug("tile group", "category", c, "tiles", result.Stats.Groups[c])
	}

	// Stage 2: Aggregation
	start = time.Now()
	hooks.OnStageStart(ctx, string(errors.StageAggregation))
	counts, resolved, err := Aggregate(ctx, result.Records, opts)
	result.Stats.AggregateTime = time.Since(start)
	hooks.OnStageComplete(ctx, string(errors.StageAggregation), result.Stats.AggregateTime, err)
	if err != nil {
		return nil, err
	}
	result.Counts = counts
	result.Stats.ImageCount = len(counts)
	result.Stats.ResolvedCount = resolved
	result.Stats.SummaryPages = report.Pages(len(counts))

	r.Logger.Info("aggregated images",
		"images", result.Stats.ImageCount,
		"resolved", resolved,
		"duration", result.Stats.AggregateTime)
	if missing := len(counts) - resolved; missing > 0 {
		r.Logger.Warn("design images not found", "missing", missing, "dir", opts.TilesDir)
	}
	if result.Stats.SummaryPages > 1 {
		r.Logger.Warn("summary overflows one page", "images", len(counts), "pages", result.Stats.SummaryPages)
	}

	return result, nil
}

// applyLogger sets the logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
