// Package fs provides file system adapters for walking package trees and hashing lock blocks.
package fs

import (
	"io/fs"
	"iter"
	"path/filepath"

	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.FileWalker = (*Walker)(nil)

// Walker provides file walking functionality.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields all regular files under root, skipping VCS metadata, golock state and ignored names.
// Yielded paths include root. A malformed ignore pattern is yielded as the only error.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if err := validatePatterns(ignores); err != nil {
			yield("", err)
			return
		}

		err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			if path != root {
				if skip, action := w.shouldSkip(d, ignores); skip {
					return action
				}
			}

			if !d.Type().IsRegular() {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
		if err != nil {
			yield("", zerr.With(zerr.Wrap(err, domain.ErrWalkFailed.Error()), "root", root))
		}
	}
}

func validatePatterns(patterns []string) error {
	for _, p := range patterns {
		if _, err := filepath.Match(p, ""); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrInvalidOptions.Error()), "ignore", p)
		}
	}
	return nil
}

// shouldSkip reports whether the entry is excluded, and the WalkDir action for it.
func (w *Walker) shouldSkip(d fs.DirEntry, ignores []string) (bool, error) {
	name := d.Name()

	if d.IsDir() {
		switch name {
		case ".git", ".jj", domain.StateDirName:
			return true, filepath.SkipDir
		}
	}

	for _, ignore := range ignores {
		if matched, _ := filepath.Match(ignore, name); matched {
			if d.IsDir() {
				return true, filepath.SkipDir
			}
			return true, nil
		}
	}

	return false, nil
}
