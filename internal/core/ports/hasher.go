package ports

// Hasher defines the interface for computing digests.
//
//go:generate go run go.uber.org/mock/mockgen -source=hasher.go -destination=mocks/mock_hasher.go -package=mocks
type Hasher interface {
	// HashLines computes a digest of the lines as they are joined on disk.
	HashLines(lines []string) string
}
