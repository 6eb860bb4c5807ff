package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/adapters/logger"
	"go.trai.ch/memo/internal/core/ports"
)

const (
	// NodeID is the unique identifier for the reactor loader Graft node.
	NodeID graft.ID = "adapter.config_loader"
	// CacheConfigNodeID is the unique identifier for the cache config loader Graft node.
	CacheConfigNodeID graft.ID = "adapter.cache_config_loader"
)

func init() {
	graft.Register(graft.Node[ports.ProjectLoader]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.ProjectLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(log), nil
		},
	})

	graft.Register(graft.Node[ports.CacheConfigLoader]{
		ID:        CacheConfigNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.CacheConfigLoader, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return NewCacheConfigLoader(log), nil
		},
	})
}
