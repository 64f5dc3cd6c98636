package domain

import (
	"maps"
	"slices"
)

// Notation is the key-value form of a dependency declaration (name, version, commit, source location).
type Notation map[string]string

// Notation keys understood by the default declaration parser.
const (
	NotationName    = "name"
	NotationVersion = "version"
	NotationSource  = "source"
	NotationURL     = "url"
	NotationVcs     = "vcs"
	NotationCommit  = "commit"
	NotationTag     = "tag"
	NotationDir     = "dir"
)

// DefaultVcs is assumed when a VCS notation does not name one.
const DefaultVcs = "git"

// Keys returns the notation keys in ascending order.
func (n Notation) Keys() []string {
	return slices.Sorted(maps.Keys(n))
}

// Clone returns a copy that does not share storage with n.
func (n Notation) Clone() Notation {
	if n == nil {
		return nil
	}
	return maps.Clone(n)
}

// Dependency is a single dependency record identified by its import path.
type Dependency interface {
	// Name returns the import path that identifies the dependency.
	Name() string
}

// LockEncodable is implemented by dependencies that have a stable notation worth persisting.
// Dependencies without it are left out of the lock.
type LockEncodable interface {
	Dependency

	// ToLockNotation returns the notation written to the lock region.
	ToLockNotation() Notation
}

// ModuleDependency is a module pinned to an exact version, optionally replaced by another module.
type ModuleDependency struct {
	Path    InternedString
	Version string
	// Source is the replacement module path, empty when the module is not replaced.
	Source string
}

var _ LockEncodable = (*ModuleDependency)(nil)

// Name returns the module path.
func (d *ModuleDependency) Name() string {
	return d.Path.String()
}

// ToLockNotation returns name and version, plus source when the module is replaced.
func (d *ModuleDependency) ToLockNotation() Notation {
	n := Notation{
		NotationName:    d.Path.String(),
		NotationVersion: d.Version,
	}
	if d.Source != "" {
		n[NotationSource] = d.Source
	}
	return n
}

// VcsDependency is a dependency fetched from a repository at a fixed commit or tag.
type VcsDependency struct {
	Path   InternedString
	URL    string
	Vcs    string
	Commit string
	Tag    string
}

var _ LockEncodable = (*VcsDependency)(nil)

// Name returns the import path.
func (d *VcsDependency) Name() string {
	return d.Path.String()
}

// ToLockNotation returns the non-empty repository coordinates.
func (d *VcsDependency) ToLockNotation() Notation {
	n := Notation{NotationName: d.Path.String()}
	vcs := d.Vcs
	if vcs == "" {
		vcs = DefaultVcs
	}
	n[NotationVcs] = vcs
	if d.URL != "" {
		n[NotationURL] = d.URL
	}
	if d.Commit != "" {
		n[NotationCommit] = d.Commit
	}
	if d.Tag != "" {
		n[NotationTag] = d.Tag
	}
	return n
}

// LocalDependency points at a directory on disk. It has no stable notation and is never locked.
type LocalDependency struct {
	Path InternedString
	Dir  string
}

var _ Dependency = (*LocalDependency)(nil)

// Name returns the import path.
func (d *LocalDependency) Name() string {
	return d.Path.String()
}
