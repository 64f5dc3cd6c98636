package ports

import "iter"

//go:generate go run go.uber.org/mock/mockgen -source=walker.go -destination=mocks/mock_walker.go -package=mocks

// FileWalker lists the regular files of a package tree.
type FileWalker interface {
	// WalkFiles yields every regular file under root. A walk failure is yielded once as the error.
	WalkFiles(root string, ignores []string) iter.Seq2[string, error]
}

// RootResolver turns a user supplied project directory into a clean absolute path.
type RootResolver interface {
	ResolveRoot(path string) (string, error)
}
