package pipeline

import (
	"context"

	"github.com/matzehuels/tilereport/pkg/errors"
	"github.com/matzehuels/tilereport/pkg/thumbnail"
	"github.com/matzehuels/tilereport/pkg/tileset"
)

// Aggregate counts image usage over records and resolves every counted
// image against opts.TilesDir. It returns the counts and the number of
// resolved images.
func Aggregate(ctx context.Context, records []tileset.Record, opts Options) ([]tileset.ImageCount, int, error) {
	if err := ctx.Err(); err != nil {
		return nil, 0, err
	}

	counts := tileset.Aggregate(records, opts.Evacuation())
	resolver := thumbnail.NewResolver(opts.TilesDir, opts.Prober)
	resolved, err := resolver.ResolveAll(counts)
	if err != nil {
		return nil, 0, errors.Wrap(errors.ErrCodeImageResolve, err, "resolve images in %s", opts.TilesDir).In(errors.StageAggregation)
	}
	return counts, resolved, nil
}
