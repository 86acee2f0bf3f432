package cssmin

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the CSS transformer Graft node.
const NodeID graft.ID = "adapter.cssmin"

func init() {
	graft.Register(graft.Node[*Minifier]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Minifier, error) {
			return New(), nil
		},
	})
}
