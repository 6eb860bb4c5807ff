package remote

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/adapters/logger"
	"go.trai.ch/memo/internal/core/ports"
)

// NodeID is the unique identifier for the remote repository provider Graft node.
const NodeID graft.ID = "adapter.remote"

func init() {
	graft.Register(graft.Node[ports.RemoteRepositoryProvider]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.RemoteRepositoryProvider, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Provider{Logger: log}, nil
		},
	})
}
