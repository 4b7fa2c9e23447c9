package pipeline

import (
	"context"
	"os"

	"github.com/matzehuels/tilereport/pkg/design"
	"github.com/matzehuels/tilereport/pkg/errors"
	"github.com/matzehuels/tilereport/pkg/tileset"
)

// Extraction is the output of the extraction stage.
type Extraction struct {
	Document     *design.Document
	Records      []tileset.Record
	Placeholders int
}

// Extract reads the design at opts.Input and returns its classified
// records in presentation order.
func Extract(ctx context.Context, opts Options) (*Extraction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := os.Open(opts.Input)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInputRead, err, "read design").In(errors.StageExtraction)
	}
	defer f.Close()

	doc, err := design.ReadJSON(f)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidFormat, err, "decode %s", opts.Input).In(errors.StageExtraction)
	}

	added := design.Densify(doc)
	records := tileset.Extract(doc)
	tileset.Classify(records)

	return &Extraction{
		Document:     doc,
		Records:      tileset.Reorder(records, opts.Evacuation()),
		Placeholders: added,
	}, nil
}
