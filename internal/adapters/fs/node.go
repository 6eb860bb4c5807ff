package fs

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/core/ports"
)

const (
	// WalkerNodeID is the Graft node of the shared Walker.
	WalkerNodeID graft.ID = "adapter.fs.walker"
	// ResolverNodeID is the Graft node of the input resolver.
	ResolverNodeID graft.ID = "adapter.fs.resolver"
	// HasherNodeID is the Graft node of the hasher.
	HasherNodeID graft.ID = "adapter.fs.hasher"
	// ArchiverNodeID is the Graft node of the archiver.
	ArchiverNodeID graft.ID = "adapter.fs.archiver"
)

func init() {
	graft.Register(graft.Node[*Walker]{
		ID:        WalkerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Walker, error) {
			return NewWalker(), nil
		},
	})

	graft.Register(graft.Node[ports.InputResolver]{
		ID:        ResolverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.InputResolver, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewResolver(walker), nil
		},
	})

	graft.Register(graft.Node[ports.Hasher]{
		ID:        HasherNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Hasher, error) {
			return NewHasher(), nil
		},
	})

	graft.Register(graft.Node[ports.Archiver]{
		ID:        ArchiverNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{WalkerNodeID},
		Run: func(ctx context.Context) (ports.Archiver, error) {
			walker, err := graft.Dep[*Walker](ctx)
			if err != nil {
				return nil, err
			}
			return NewArchiver(walker), nil
		},
	})
}
