package settings

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/golock/internal/core/ports"
)

const (
	// LoaderNodeID is the unique identifier for the settings loader Graft node.
	LoaderNodeID graft.ID = "adapter.settings.loader"
	// ResolverNodeID is the unique identifier for the property resolver Graft node.
	ResolverNodeID graft.ID = "adapter.settings.resolver"
)

func init() {
	graft.Register(graft.Node[ports.HostConfigLoader]{
		ID:        LoaderNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.HostConfigLoader, error) {
			return NewLoader(), nil
		},
	})

	graft.Register(graft.Node[ports.PropertyResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PropertyResolver, error) {
			return NewResolver(), nil
		},
	})
}
