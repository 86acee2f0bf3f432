package jsmin

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the script transformer Graft node.
const NodeID graft.ID = "adapter.jsmin"

func init() {
	graft.Register(graft.Node[*Minifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Minifier, error) {
			return New(DefaultOptions()), nil
		},
	})
}
