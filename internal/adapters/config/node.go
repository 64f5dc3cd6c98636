package config

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the options loader Graft node.
const NodeID graft.ID = "adapter.config_loader"

func init() {
	graft.Register(graft.Node[*Loader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Loader, error) {
			return NewLoader(), nil
		},
	})
}
