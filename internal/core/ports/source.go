package ports

import "go.trai.ch/golock/internal/core/domain"

// DependencySource provides the resolved dependency set of a project.
//
//go:generate go run go.uber.org/mock/mockgen -source=source.go -destination=mocks/mock_source.go -package=mocks
type DependencySource interface {
	Dependencies(root string) (*domain.DependencySet, error)
}
