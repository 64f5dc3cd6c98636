package ports

import "go.trai.ch/golock/internal/core/domain"

// NotationParser turns a decoded lock notation back into a live dependency.
//
//go:generate go run go.uber.org/mock/mockgen -source=notation.go -destination=mocks/mock_notation.go -package=mocks
type NotationParser interface {
	Parse(notation domain.Notation) (domain.Dependency, error)
}
