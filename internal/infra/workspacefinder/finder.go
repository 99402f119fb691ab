package workspacefinder

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/aalvaropc/shopcart/internal/domain"
	"github.com/aalvaropc/shopcart/internal/infra/config"
	"github.com/aalvaropc/shopcart/internal/ports"
)

const op = "workspacefinder.findroot"

// Finder walks up from a directory until it meets shopcart.yaml.
type Finder struct {
	marker   string
	boundary string
}

type Option func(*Finder)

// WithMarker changes the file that marks a workspace root.
func WithMarker(name string) Option {
	return func(f *Finder) { f.marker = name }
}

// WithBoundary stops the walk at dir; dir itself is still checked.
func WithBoundary(dir string) Option {
	return func(f *Finder) { f.boundary = filepath.Clean(dir) }
}

func NewFinder(opts ...Option) *Finder {
	f := &Finder{marker: config.FileName}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

var _ ports.WorkspaceLocator = (*Finder)(nil)

// FindRoot returns the nearest directory at or above startDir holding the
// marker file. A file path starts the walk from its directory.
func (f *Finder) FindRoot(startDir string) (string, error) {
	if startDir == "" {
		return "", &domain.OpError{Op: op, Kind: domain.KindInvalidConfig, Err: errors.New("startDir is empty")}
	}

	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", &domain.OpError{Op: op, Kind: domain.KindExecution, Path: startDir, Err: err}
	}
	if info, err := os.Stat(dir); err == nil && !info.IsDir() {
		dir = filepath.Dir(dir)
	}

	for dir = filepath.Clean(dir); ; {
		if isFile(filepath.Join(dir, f.marker)) {
			return dir, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir || dir == f.boundary {
			return "", &domain.OpError{Op: op, Kind: domain.KindNotFound, Path: startDir, Err: domain.ErrNotFound}
		}
		dir = parent
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
