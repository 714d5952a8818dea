package tabular

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glean/internal/core/ports"
)

// NodeID is the unique identifier for the table loader Graft node.
const NodeID graft.ID = "adapter.tabular.loader"

func init() {
	graft.Register(graft.Node[ports.TableLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.TableLoader, error) {
			return NewLoader(), nil
		},
	})
}
