package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/memo/internal/adapters/fs"        //nolint:depguard // Wired in app layer
	"go.trai.ch/memo/internal/adapters/linear"    //nolint:depguard // Wired in app layer
	"go.trai.ch/memo/internal/adapters/localrepo" //nolint:depguard // Wired in app layer
	"go.trai.ch/memo/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/memo/internal/adapters/remote"    //nolint:depguard // Wired in app layer
	"go.trai.ch/memo/internal/adapters/shell"     //nolint:depguard // Wired in app layer
	"go.trai.ch/memo/internal/adapters/telemetry" //nolint:depguard // Wired in app layer
	"go.trai.ch/memo/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

// Components contains all the initialized application components.
// This struct provides controlled access to components needed by the CLI layer.
type Components struct {
	App    *App
	Logger ports.Logger
}

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			config.CacheConfigNodeID,
			localrepo.NodeID,
			remote.NodeID,
			fs.ResolverNodeID,
			fs.HasherNodeID,
			fs.ArchiverNodeID,
			shell.PluginManagerNodeID,
			telemetry.TracerNodeID,
			linear.NodeID,
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

			return &Components{App: app, Logger: log}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	projects, err := graft.Dep[ports.ProjectLoader](ctx)
	if err != nil {
		return nil, err
	}

	cacheConfigs, err := graft.Dep[ports.CacheConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	opener, err := graft.Dep[ports.LocalRepositoryOpener](ctx)
	if err != nil {
		return nil, err
	}

	remotes, err := graft.Dep[ports.RemoteRepositoryProvider](ctx)
	if err != nil {
		return nil, err
	}

	resolver, err := graft.Dep[ports.InputResolver](ctx)
	if err != nil {
		return nil, err
	}

	hasher, err := graft.Dep[ports.Hasher](ctx)
	if err != nil {
		return nil, err
	}

	archiver, err := graft.Dep[ports.Archiver](ctx)
	if err != nil {
		return nil, err
	}

	plugins, err := graft.Dep[ports.PluginManager](ctx)
	if err != nil {
		return nil, err
	}

	tracer, err := graft.Dep[ports.Tracer](ctx)
	if err != nil {
		return nil, err
	}

	renderer, err := graft.Dep[ports.Renderer](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	return New(projects, cacheConfigs, opener, remotes, resolver, hasher, archiver, plugins, tracer, renderer, log), nil
}
