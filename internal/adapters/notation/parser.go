// Package notation turns lock notations back into dependencies.
package notation

import (
	"go.trai.ch/golock/internal/core/domain"
	"go.trai.ch/golock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.NotationParser = (*Parser)(nil)

// Parser is the default declaration parser.
//
//	dir                  -> LocalDependency
//	version              -> ModuleDependency
//	commit, tag or url   -> VcsDependency
type Parser struct{}

// NewParser creates a new Parser.
func NewParser() *Parser {
	return &Parser{}
}

// Parse builds the dependency described by n.
func (p *Parser) Parse(n domain.Notation) (domain.Dependency, error) {
	name := n[domain.NotationName]
	if name == "" {
		return nil, zerr.With(domain.ErrMissingNotationName, "keys", n.Keys())
	}
	path := domain.NewInternedString(name)

	if dir, ok := n[domain.NotationDir]; ok {
		return &domain.LocalDependency{Path: path, Dir: dir}, nil
	}

	if version, ok := n[domain.NotationVersion]; ok {
		return &domain.ModuleDependency{
			Path:    path,
			Version: version,
			Source:  n[domain.NotationSource],
		}, nil
	}

	if hasAny(n, domain.NotationCommit, domain.NotationTag, domain.NotationURL) {
		vcs := n[domain.NotationVcs]
		if vcs == "" {
			vcs = domain.DefaultVcs
		}
		return &domain.VcsDependency{
			Path:   path,
			URL:    n[domain.NotationURL],
			Vcs:    vcs,
			Commit: n[domain.NotationCommit],
			Tag:    n[domain.NotationTag],
		}, nil
	}

	return nil, zerr.With(zerr.With(domain.ErrInvalidNotation, "name", name), "keys", n.Keys())
}

func hasAny(n domain.Notation, keys ...string) bool {
	for _, k := range keys {
		if n[k] != "" {
			return true
		}
	}
	return false
}
