package fs

import (
	"os"
	"path/filepath"

	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.RootResolver = (*Resolver)(nil)

// Resolver resolves project directories to absolute paths.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveRoot returns the absolute, symlink-free form of path. An empty path means the working directory.
func (r *Resolver) ResolveRoot(path string) (string, error) {
	if path == "" {
		path = "."
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "path", path)
	}

	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "path", abs)
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrFailedToGetRoot.Error()), "path", resolved)
	}
	if !info.IsDir() {
		return "", zerr.With(domain.ErrFailedToGetRoot, "path", resolved)
	}
	return resolved, nil
}
