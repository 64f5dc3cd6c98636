package ports

import "go.trai.ch/golock/internal/core/domain"

// LockStateStore remembers what was last written into each settings file.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type LockStateStore interface {
	// Get retrieves the lock state of a settings file.
	// Returns nil, nil if not found.
	Get(root, settingsPath string) (*domain.LockState, error)

	// Put stores the lock state.
	Put(root string, state domain.LockState) error
}
