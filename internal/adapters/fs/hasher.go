package fs

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/golock/internal/core/ports"
)

var _ ports.Hasher = (*Hasher)(nil)

// Hasher computes XXHash digests of generated lock blocks.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashLines hashes the lines joined by newlines, the way they are stored on disk.
func (h *Hasher) HashLines(lines []string) string {
	digest := xxhash.New()
	for i, line := range lines {
		if i > 0 {
			_, _ = digest.Write([]byte{'\n'})
		}
		_, _ = digest.WriteString(line)
	}
	return fmt.Sprintf("%016x", digest.Sum64())
}
