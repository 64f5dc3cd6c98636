package gomod

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/golock/internal/core/ports"
)

// NodeID is the unique identifier for the go.mod dependency source Graft node.
const NodeID graft.ID = "adapter.gomod"

func init() {
	graft.Register(graft.Node[ports.DependencySource]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.DependencySource, error) {
			return NewSource(), nil
		},
	})
}
