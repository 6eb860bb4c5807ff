package shell

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/memo/internal/core/ports"
)

// PluginManagerNodeID is the unique identifier for the plugin manager Graft node.
const PluginManagerNodeID graft.ID = "adapter.plugin_manager"

func init() {
	graft.Register(graft.Node[ports.PluginManager]{
		ID:        PluginManagerNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.PluginManager, error) {
			return NewPluginManager(), nil
		},
	})
}
