package ports

import "go.trai.ch/golock/internal/core/domain"

//go:generate go run go.uber.org/mock/mockgen -source=lock.go -destination=mocks/mock_lock.go -package=mocks

// LockCodec converts between notations and their on-disk form.
type LockCodec interface {
	// Encode renders one notation as a single entry line, without the trailing list separator.
	// A notation that cannot be written losslessly is an error.
	Encode(notation domain.Notation) (string, error)

	// Decode converts the raw lock property value into notations.
	// ok is false when the value is not list-shaped; a malformed entry is an error.
	Decode(raw any) (notations []domain.Notation, ok bool, err error)
}

// LockRegionWriter owns the generated region at the end of a settings file.
type LockRegionWriter interface {
	// Write replaces the generated region of path with entries, creating the file if needed.
	// It returns the block as written and whether the file content changed.
	Write(path string, entries []string) (block []string, changed bool, err error)

	// Read returns the current generated region of path. found is false when there is no marker.
	Read(path string) (block []string, found bool, err error)
}

// LockedDependencyManager reads and writes the lock of a project.
type LockedDependencyManager interface {
	// GetLockedDependencies returns the locked set. ok is false when the project has no lock data.
	GetLockedDependencies(root string) (set *domain.DependencySet, ok bool, err error)

	// Lock writes the lock-capable members of set into the project's settings file.
	Lock(root string, set *domain.DependencySet) (domain.LockResult, error)
}
