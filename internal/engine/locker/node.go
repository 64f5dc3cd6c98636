package locker

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/golock/internal/adapters/lockfile" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/golock/internal/adapters/logger"   //nolint:depguard // Wired in engine wiring
	"go.trai.ch/golock/internal/adapters/notation" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/golock/internal/adapters/settings" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/golock/internal/core/ports"
)

// NodeID is the unique identifier for the lock manager Graft node.
const NodeID graft.ID = "engine.locker"

func init() {
	graft.Register(graft.Node[ports.LockedDependencyManager]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			settings.LoaderNodeID,
			settings.ResolverNodeID,
			notation.NodeID,
			lockfile.CodecNodeID,
			lockfile.WriterNodeID,
			logger.NodeID,
		},
		Run: func(ctx context.Context) (ports.LockedDependencyManager, error) {
			loader, err := graft.Dep[ports.HostConfigLoader](ctx)
			if err != nil {
				return nil, err
			}

			resolver, err := graft.Dep[ports.PropertyResolver](ctx)
			if err != nil {
				return nil, err
			}

			parser, err := graft.Dep[ports.NotationParser](ctx)
			if err != nil {
				return nil, err
			}

			codec, err := graft.Dep[ports.LockCodec](ctx)
			if err != nil {
				return nil, err
			}

			writer, err := graft.Dep[ports.LockRegionWriter](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			return NewManager(loader, resolver, parser, codec, writer, log), nil
		},
	})
}
