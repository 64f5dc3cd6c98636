package cas

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/golock/internal/core/ports"
)

// NodeID is the unique identifier for the lock state store Graft node.
const NodeID graft.ID = "adapter.lock_state_store"

func init() {
	graft.Register(graft.Node[ports.LockStateStore]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.LockStateStore, error) {
			return NewStore(), nil
		},
	})
}
