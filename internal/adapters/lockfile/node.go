package lockfile

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/golock/internal/core/ports"
)

const (
	// CodecNodeID is the unique identifier for the lock codec Graft node.
	CodecNodeID graft.ID = "adapter.lockfile.codec"
	// WriterNodeID is the unique identifier for the lock region writer Graft node.
	WriterNodeID graft.ID = "adapter.lockfile.writer"
)

func init() {
	graft.Register(graft.Node[ports.LockCodec]{
		ID:        CodecNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockCodec, error) {
			return NewCodec(), nil
		},
	})

	graft.Register(graft.Node[ports.LockRegionWriter]{
		ID:        WriterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockRegionWriter, error) {
			return NewWriter(), nil
		},
	})
}
