package pipeline

import (
	"bytes"
	"context"
	stderrors "errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/matzehuels/tilereport/pkg/errors"
	"github.com/matzehuels/tilereport/pkg/observability"
	"github.com/matzehuels/tilereport/pkg/report"
	"github.com/matzehuels/tilereport/pkg/report/sqlite"
	"github.com/matzehuels/tilereport/pkg/tileset"
)

// artifact is a report built in memory and not yet saved.
type artifact struct {
	Output
	save func(path string) error
	done func() error
}

// WriteReports lays out every requested format and saves the results.
// All in-memory reports are built before anything is written, so a layout
// failure leaves the output directory untouched.
func WriteReports(ctx context.Context, opts Options, records []tileset.Record, counts []tileset.ImageCount) ([]Output, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	planned := opts.Outputs()
	artifacts := make([]artifact, 0, len(planned))
	defer func() {
		for _, a := range artifacts {
			if a.done != nil {
				a.done()
			}
		}
	}()

	for _, out := range planned {
		a, err := build(opts, out, records, counts)
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeOutputWrite, err, "render %s %s", out.Kind, out.Format).In(errors.StageReport)
		}
		artifacts = append(artifacts, a)
	}

	if err := os.MkdirAll(opts.OutputDir, 0o755); err != nil {
		return nil, errors.Wrap(errors.ErrCodeOutputWrite, err, "create output directory").In(errors.StageReport)
	}

	written := make([]Output, 0, len(artifacts))
	for _, a := range artifacts {
		if err := ctx.Err(); err != nil {
			return written, err
		}
		if err := a.save(a.Path); err != nil {
			return written, errors.Wrap(errors.ErrCodeOutputWrite, err, "write %s", a.Path).In(errors.StageReport)
		}
		written = append(written, a.Output)
		observability.Pipeline().OnOutput(ctx, a.Format, a.Path)
		opts.Logger.Debug("wrote report", "format", a.Format, "kind", a.Kind, "path", a.Path)
	}
	return written, nil
}

func build(opts Options, out Output, records []tileset.Record, counts []tileset.ImageCount) (artifact, error) {
	switch out.Format {
	case FormatXLSX:
		wb := opts.NewWorkbook()
		var err error
		switch out.Kind {
		case KindTileList:
			err = report.WriteTileList(wb, records)
		case KindSummary:
			err = report.WriteSummary(wb, report.Summary{DesignPath: opts.Input, Counts: counts})
		default:
			err = fmt.Errorf("unknown report kind %q", out.Kind)
		}
		if err != nil {
			wb.Close()
			return artifact{}, err
		}
		return artifact{Output: out, save: wb.Save, done: wb.Close}, nil

	case FormatJSON:
		var buf bytes.Buffer
		if err := report.WriteJSON(&buf, opts.Input, records, counts, opts.Evacuation()); err != nil {
			return artifact{}, err
		}
		return artifact{Output: out, save: func(path string) error {
			return os.WriteFile(path, buf.Bytes(), 0o644)
		}}, nil

	case FormatSQLite:
		return artifact{Output: out, save: func(path string) error {
			return writeSQLite(path, opts, records, counts)
		}}, nil

	default:
		return artifact{}, fmt.Errorf("unsupported format: %s", out.Format)
	}
}

func writeSQLite(path string, opts Options, records []tileset.Record, counts []tileset.ImageCount) (err error) {
	if err := os.Remove(path); err != nil && !stderrors.Is(err, fs.ErrNotExist) {
		return err
	}
	w, err := sqlite.NewWriter(path, sqlite.WithDesign(opts.Input), sqlite.WithLogger(opts.Logger))
	if err != nil {
		return err
	}
	defer func() {
		if cerr := w.Close(); err == nil {
			err = cerr
		}
	}()
	if err := w.WriteTiles(records, opts.Evacuation()); err != nil {
		return err
	}
	return w.WriteCounts(counts)
}
