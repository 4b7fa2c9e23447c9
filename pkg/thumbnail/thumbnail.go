// Package thumbnail locates design images in the tiles directory and
// prepares them for embedding in a spreadsheet.
package thumbnail

import (
	"bytes"
	"errors"
	"fmt"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"

	apperrors "github.com/matzehuels/tilereport/pkg/errors"
	"github.com/matzehuels/tilereport/pkg/tileset"
)

// DefaultSize is the edge length of an embedded thumbnail.
const DefaultSize = 50

// Prober checks whether a file exists.
type Prober interface {
	// Exists reports whether path names an existing regular file.
	// A missing file is not an error.
	Exists(path string) (bool, error)
}

// OSProber checks the local file system.
type OSProber struct{}

// Exists implements Prober.
func (OSProber) Exists(path string) (bool, error) {
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return info.Mode().IsRegular(), nil
}

// Resolver maps image ids to design image files under Dir.
type Resolver struct {
	Dir    string
	Prober Prober
}

// NewResolver returns a Resolver for dir. A nil prober uses the local file system.
func NewResolver(dir string, prober Prober) *Resolver {
	if prober == nil {
		prober = OSProber{}
	}
	return &Resolver{Dir: dir, Prober: prober}
}

// Resolve returns the path of the design image for id and whether it
// exists. Ids that would leave Dir are never resolved.
func (r *Resolver) Resolve(id string) (string, bool, error) {
	if apperrors.ValidateImageID(id) != nil {
		return "", false, nil
	}
	candidate := filepath.Join(r.Dir, id)
	ok, err := r.Prober.Exists(candidate)
	if err != nil {
		return "", false, fmt.Errorf("probe %s: %w", candidate, err)
	}
	if !ok {
		return "", false, nil
	}
	return candidate, true, nil
}

// ResolveAll fills in Path for every count whose design image exists and
// returns the number of resolved images.
func (r *Resolver) ResolveAll(counts []tileset.ImageCount) (int, error) {
	resolved := 0
	for i := range counts {
		path, ok, err := r.Resolve(counts[i].Image)
		if err != nil {
			return resolved, err
		}
		if ok {
			counts[i].Path = path
			resolved++
		}
	}
	return resolved, nil
}

// Load decodes the image at path and scales it to exactly width×height
// pixels, returning it PNG-encoded.
func Load(path string, width, height int) ([]byte, error) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	thumb := imaging.Resize(img, width, height, imaging.Lanczos)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return nil, fmt.Errorf("encode %s: %w", path, err)
	}
	return buf.Bytes(), nil
}
