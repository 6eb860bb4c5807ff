package localrepo

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/adapters/logger"
	"go.trai.ch/memo/internal/core/ports"
)

// NodeID is the unique identifier for the local repository opener Graft node.
const NodeID graft.ID = "adapter.localrepo"

// Opener implements ports.LocalRepositoryOpener.
type Opener struct {
	Logger ports.Logger
}

// Open implements ports.LocalRepositoryOpener.
func (o *Opener) Open(location string, maxBuildsCached int) (ports.LocalRepository, error) {
	return Open(location, maxBuildsCached, o.Logger)
}

func init() {
	graft.Register(graft.Node[ports.LocalRepositoryOpener]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{logger.NodeID},
		Run: func(ctx context.Context) (ports.LocalRepositoryOpener, error) {
			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}
			return &Opener{Logger: log}, nil
		},
	})
}
