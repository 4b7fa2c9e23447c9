// Package sqlite exports tile records and image counts to an SQLite database.
package sqlite

import (
	"database/sql"
	"errors"
	"io"

	"github.com/charmbracelet/log"
	_ "github.com/mattn/go-sqlite3"

	"github.com/matzehuels/tilereport/pkg/tileset"
)

// Writer writes one tileset export.
type Writer struct {
	db     *sql.DB
	logger *log.Logger
}

type writerConfig struct {
	Design string
	Logger *log.Logger
}

type WriterOption func(*writerConfig)

// WithDesign records the design path in the metadata table.
func WithDesign(path string) WriterOption {
	return func(c *writerConfig) { c.Design = path }
}

func WithLogger(logger *log.Logger) WriterOption {
	return func(c *writerConfig) { c.Logger = logger }
}

// NewWriter creates the database at filePath and its tables. The file must
// not already contain the tables.
func NewWriter(filePath string, opts ...WriterOption) (*Writer, error) {
	config := writerConfig{
		Logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(&config)
	}

	var err error
	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			db.Close()
		}
	}()

	_, err = db.Exec(`
		CREATE TABLE metadata (name TEXT, value TEXT);
		CREATE TABLE tiles (
			position INTEGER PRIMARY KEY,
			x INTEGER NOT NULL,
			y INTEGER NOT NULL,
			z INTEGER NOT NULL,
			tile_type_image TEXT,
			ramp_points INTEGER,
			under_ramp INTEGER NOT NULL,
			category TEXT NOT NULL
		);
		CREATE TABLE image_counts (
			rank INTEGER PRIMARY KEY,
			image TEXT NOT NULL,
			amount INTEGER NOT NULL,
			design_path TEXT
		);
	`)
	if err != nil {
		return nil, err
	}

	if config.Design != "" {
		_, err = db.Exec("INSERT INTO metadata (name, value) VALUES (?, ?)", "design", config.Design)
		if err != nil {
			return nil, err
		}
	}

	return &Writer{db, config.Logger}, nil
}

// WriteTiles inserts records in order, keeping their position.
func (w *Writer) WriteTiles(records []tileset.Record, evacuation tileset.ImageSet) error {
	return w.inTx("INSERT INTO tiles (position, x, y, z, tile_type_image, ramp_points, under_ramp, category) VALUES (?, ?, ?, ?, ?, ?, ?, ?)",
		func(stmt *sql.Stmt) error {
			for i, r := range records {
				var image, ramp any
				if r.Image != nil {
					image = *r.Image
				}
				if r.RampPoints != nil {
					ramp = *r.RampPoints
				}
				category := tileset.Categorize(r, evacuation).String()
				if _, err := stmt.Exec(i, r.X, r.Y, r.Z, image, ramp, r.UnderRamp, category); err != nil {
					return err
				}
			}
			w.logger.Debug("wrote tiles", "count", len(records))
			return nil
		})
}

// WriteCounts inserts image counts in order.
func (w *Writer) WriteCounts(counts []tileset.ImageCount) error {
	return w.inTx("INSERT INTO image_counts (rank, image, amount, design_path) VALUES (?, ?, ?, ?)",
		func(stmt *sql.Stmt) error {
			for i, c := range counts {
				var path any
				if c.Path != "" {
					path = c.Path
				}
				if _, err := stmt.Exec(i+1, c.Image, c.Amount, path); err != nil {
					return err
				}
			}
			w.logger.Debug("wrote image counts", "count", len(counts))
			return nil
		})
}

func (w *Writer) inTx(query string, fn func(*sql.Stmt) error) (err error) {
	tx, err := w.db.Begin()
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			err = errors.Join(err, tx.Rollback())
		}
	}()

	stmt, err := tx.Prepare(query)
	if err != nil {
		return err
	}
	defer stmt.Close()

	if err = fn(stmt); err != nil {
		return err
	}
	return tx.Commit()
}

// Close closes the database.
func (w *Writer) Close() error {
	return w.db.Close()
}
