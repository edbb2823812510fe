package kanjivg

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Source locates the raw markup for a canonical identifier. Loading
// strategies (filesystem, network, bundled data) live behind this boundary;
// the core never retries — a failed fetch is surfaced as-is.
type Source interface {
	// Fetch returns the diagram markup for id. A missing diagram is
	// reported as *UnknownIdentifierError.
	Fetch(ctx context.Context, id string) ([]byte, error)
}

// DirSource loads diagrams from a directory of <id>.svg files.
type DirSource struct {
	Dir string
}

// NewDirSource creates a Source over a directory of diagram files.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Dir: dir}
}

// Fetch reads <dir>/<id>.svg.
func (s *DirSource) Fetch(ctx context.Context, id string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(filepath.Join(s.Dir, id+".svg"))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &UnknownIdentifierError{ID: id, Err: err}
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
