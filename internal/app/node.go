package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/golock/internal/adapters/cas"      //nolint:depguard // Wired in app layer
	"go.trai.ch/golock/internal/adapters/config"   //nolint:depguard // Wired in app layer
	"go.trai.ch/golock/internal/adapters/fs"       //nolint:depguard // Wired in app layer
	"go.trai.ch/golock/internal/adapters/gomod"    //nolint:depguard // Wired in app layer
	"go.trai.ch/golock/internal/adapters/lockfile" //nolint:depguard // Wired in app layer
	"go.trai.ch/golock/internal/adapters/logger"   //nolint:depguard // Wired in app layer
	"go.trai.ch/golock/internal/core/ports"
	"go.trai.ch/golock/internal/engine/locker"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			locker.NodeID,
			gomod.NodeID,
			lockfile.WriterNodeID,
			fs.WalkerNodeID,
			fs.ResolverNodeID,
			fs.HasherNodeID,
			cas.NodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: func(ctx context.Context) (*Components, error) {
			app, err := graft.Dep[*App](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			loader, err := graft.Dep[*config.Loader](ctx)
			if err != nil {
				return nil, err
			}

			return NewComponents(app, log, loader), nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	manager, err := graft.Dep[ports.LockedDependencyManager](ctx)
	if err != nil {
		return nil, err
	}

	source, err := graft.Dep[ports.DependencySource](ctx)
	if err != nil {
		return nil, err
	}

	region, err := graft.Dep[ports.LockRegionWriter](ctx)
	if err != nil {
		return nil, err
	}

	walker, err := graft.Dep[ports.FileWalker](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.RootResolver](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	store, err := graft.Dep[ports.LockStateStore](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(manager, source, region, walker, resolver, hasher, store, log), nil
}
