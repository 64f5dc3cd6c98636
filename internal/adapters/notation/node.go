package notation

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/golock/internal/core/ports"
)

// NodeID is the unique identifier for the notation parser Graft node.
const NodeID graft.ID = "adapter.notation"

func init() {
	graft.Register(graft.Node[ports.NotationParser]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.NotationParser, error) {
			return NewParser(), nil
		},
	})
}
