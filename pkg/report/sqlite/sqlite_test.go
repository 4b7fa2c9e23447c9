package sqlite

import (
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/matzehuels/tilereport/pkg/tileset"
)

func str(s string) *string { return &s }
func flag(b bool) *bool    { return &b }

func TestWriter(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiles.sqlite")
	evac := tileset.NewImageSet(tileset.DefaultEvacuationImages...)

	w, err := NewWriter(path, WithDesign("stage.json"))
	if err != nil {
		t.Fatalf("NewWriter() error = %v", err)
	}
	records := []tileset.Record{
		{X: 0, Y: 0, Z: 0, Image: str("floor.png"), RampPoints: flag(false)},
		{X: 1, Y: 0, Z: 0, Image: str("ramp.png"), RampPoints: flag(true)},
		{X: 2, Y: 0, Z: 0, Image: str("ev1.png")},
		{X: 3, Y: 0, Z: 0},
	}
	if err := w.WriteTiles(records, evac); err != nil {
		t.Fatalf("WriteTiles() error = %v", err)
	}
	counts := []tileset.ImageCount{{Image: "floor.png", Amount: 1, Path: "tiles/floor.png"}}
	if err := w.WriteCounts(counts); err != nil {
		t.Fatalf("WriteCounts() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM tiles").Scan(&n); err != nil {
		t.Fatal(err)
	}
	if n != 4 {
		t.Errorf("tiles rows = %d, want 4", n)
	}

	var category string
	if err := db.QueryRow("SELECT category FROM tiles WHERE position = 1").Scan(&category); err != nil {
		t.Fatal(err)
	}
	if category != "rampPoint" {
		t.Errorf("category = %q, want rampPoint", category)
	}

	var image sql.NullString
	if err := db.QueryRow("SELECT tile_type_image FROM tiles WHERE position = 3").Scan(&image); err != nil {
		t.Fatal(err)
	}
	if image.Valid {
		t.Errorf("absent image stored as %q, want NULL", image.String)
	}

	var design string
	if err := db.QueryRow("SELECT value FROM metadata WHERE name = 'design'").Scan(&design); err != nil {
		t.Fatal(err)
	}
	if design != "stage.json" {
		t.Errorf("design = %q", design)
	}

	var amount int
	var dpath string
	if err := db.QueryRow("SELECT amount, design_path FROM image_counts WHERE rank = 1").Scan(&amount, &dpath); err != nil {
		t.Fatal(err)
	}
	if amount != 1 || dpath != "tiles/floor.png" {
		t.Errorf("image_counts row = (%d, %q)", amount, dpath)
	}
}

func TestNewWriterExistingTables(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tiles.sqlite")
	w, err := NewWriter(path)
	if err != nil {
		t.Fatal(err)
	}
	w.Close()

	if _, err := NewWriter(path); err == nil {
		t.Error("NewWriter() on an existing export should fail")
	}
}
