// Package gomod reads a module's resolved requirements from its go.mod.
package gomod

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/mod/modfile"
)

var _ ports.DependencySource = (*Source)(nil)

// Source provides the dependencies required by go.mod, with replacements applied.
type Source struct{}

// NewSource creates a new Source.
func NewSource() *Source {
	return &Source{}
}

// Dependencies returns the requirements of the module at root in go.mod order.
// A replacement with a directory yields a LocalDependency.
func (s *Source) Dependencies(root string) (*domain.DependencySet, error) {
	path := domain.GoModPath(root)

	data, err := os.ReadFile(path) //nolint:gosec // path is the project's go.mod
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, zerr.With(domain.ErrModuleFileNotFound, "path", path)
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleFileReadFailed.Error()), "path", path)
	}

	f, err := modfile.Parse(path, data, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrModuleFileParseFailed.Error()), "path", path)
	}

	set := domain.NewDependencySet()
	for _, req := range f.Require {
		set.Add(toDependency(req, findReplace(f.Replace, req)))
	}
	return set, nil
}

// findReplace prefers a version-specific replacement over a wildcard one.
func findReplace(replaces []*modfile.Replace, req *modfile.Require) *modfile.Replace {
	var wildcard *modfile.Replace
	for _, r := range replaces {
		if r.Old.Path != req.Mod.Path {
			continue
		}
		if r.Old.Version == req.Mod.Version {
			return r
		}
		if r.Old.Version == "" {
			wildcard = r
		}
	}
	return wildcard
}

func toDependency(req *modfile.Require, rep *modfile.Replace) domain.Dependency {
	path := domain.NewInternedString(req.Mod.Path)
	switch {
	case rep == nil:
		return &domain.ModuleDependency{Path: path, Version: req.Mod.Version}
	case rep.New.Version == "":
		return &domain.LocalDependency{Path: path, Dir: rep.New.Path}
	default:
		return &domain.ModuleDependency{Path: path, Version: rep.New.Version, Source: rep.New.Path}
	}
}
