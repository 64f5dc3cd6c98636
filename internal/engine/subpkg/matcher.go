// Package subpkg decides whether a source file belongs to a declared set of subpackages.
//
//	file                subpackage    result
//	any                 ...           match
//	file.go             .             match
//	file.go             dir           no match
//	dir/file.go         .             no match
//	dir/file.go         dir           match
//	dir/file.go         dir/.         match
//	dir/file.go         dir/subdir    no match
//	dir/subdir/file.go  dir/subdir    match
//	dir/subdir/file.go  dir           match
//	dir/subdir/file.go  dir/.         no match
package subpkg

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/zerr"
)

// StatFunc reports file info for a path. os.Stat is used by default.
type StatFunc func(path string) (fs.FileInfo, error)

// Matcher evaluates files against a fixed set of subpackage specifiers relative to a root.
// It holds no mutable state after construction and is safe for concurrent use.
type Matcher struct {
	alwaysTrue bool
	root       string
	selectors  []selector
	stat       StatFunc
}

type selectorKind int

const (
	kindCurrentFiles selectorKind = iota
	kindDirectFiles
	kindSubtree
)

type selector struct {
	kind selectorKind
	// dir is the cleaned absolute directory the specifier refers to.
	dir string
}

// Option configures a Matcher.
type Option func(*Matcher)

// WithStat replaces the function used to check that matched paths are regular files.
func WithStat(stat StatFunc) Option {
	return func(m *Matcher) {
		m.stat = stat
	}
}

// New builds a matcher for the given root and specifiers.
// Specifiers are resolved and normalized once, here.
func New(root string, subpackages []string, opts ...Option) *Matcher {
	m := &Matcher{
		root: filepath.Clean(root),
		stat: os.Stat,
	}
	for _, opt := range opts {
		opt(m)
	}

	for _, sp := range subpackages {
		if sp == domain.AllDescendants {
			m.alwaysTrue = true
			m.selectors = nil
			return m
		}
		m.selectors = append(m.selectors, m.compile(sp))
	}
	return m
}

func (m *Matcher) compile(subpackage string) selector {
	switch {
	case subpackage == domain.OnlyCurrentFiles:
		return selector{kind: kindCurrentFiles, dir: m.root}
	case strings.HasSuffix(subpackage, domain.DirectFilesSuffix):
		rel := strings.TrimSuffix(subpackage, domain.DirectFilesSuffix)
		return selector{kind: kindDirectFiles, dir: m.resolve(rel)}
	default:
		return selector{kind: kindSubtree, dir: m.resolve(subpackage)}
	}
}

func (m *Matcher) resolve(rel string) string {
	return filepath.Clean(filepath.Join(m.root, filepath.FromSlash(rel)))
}

// Match reports whether file falls inside any of the matcher's subpackages.
//
// file must be a regular file under the root. Anything else is a caller bug and
// panics with an error wrapping domain.ErrPreconditionViolated.
func (m *Matcher) Match(file string) bool {
	file = filepath.Clean(file)
	m.requireRegularFile(file)
	if m.alwaysTrue {
		return true
	}
	m.requireUnderRoot(file)

	parent := filepath.Dir(file)
	for _, s := range m.selectors {
		if s.matches(file, parent) {
			return true
		}
	}
	return false
}

func (s selector) matches(file, parent string) bool {
	switch s.kind {
	case kindCurrentFiles, kindDirectFiles:
		return parent == s.dir
	default:
		return hasPathPrefix(file, s.dir)
	}
}

func (m *Matcher) requireRegularFile(file string) {
	info, err := m.stat(file)
	if err != nil {
		violate(zerr.With(zerr.Wrap(err, domain.ErrNotRegularFile.Error()), "path", file))
	}
	if !info.Mode().IsRegular() {
		violate(zerr.With(domain.ErrNotRegularFile, "path", file))
	}
}

func (m *Matcher) requireUnderRoot(file string) {
	if !hasPathPrefix(file, m.root) {
		err := zerr.With(domain.ErrOutsideRoot, "path", file)
		violate(zerr.With(err, "root", m.root))
	}
}

func violate(cause error) {
	panic(zerr.Wrap(cause, domain.ErrPreconditionViolated.Error()))
}

// hasPathPrefix compares whole path elements, so /a/bc is not under /a/b.
func hasPathPrefix(path, prefix string) bool {
	if path == prefix {
		return true
	}
	if strings.HasSuffix(prefix, string(filepath.Separator)) {
		return strings.HasPrefix(path, prefix)
	}
	return strings.HasPrefix(path, prefix+string(filepath.Separator))
}
