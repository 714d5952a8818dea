package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glean/internal/adapters/config"
	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports"
)

const (
	// StoreNodeID is the unique identifier for the artifact store Graft node.
	StoreNodeID graft.ID = "adapter.cache.store"
	// FingerprinterNodeID is the unique identifier for the fingerprinter Graft node.
	FingerprinterNodeID graft.ID = "adapter.cache.fingerprinter"
)

func init() {
	// Store Node
	graft.Register(graft.Node[ports.ArtifactStore]{
		ID:        StoreNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID},
		Run: func(ctx context.Context) (ports.ArtifactStore, error) {
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return NewStore(cfg.Cache.Dir)
		},
	})

	// Fingerprinter Node
	graft.Register(graft.Node[ports.Fingerprinter]{
		ID:        FingerprinterNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Fingerprinter, error) {
			return NewFingerprinter(), nil
		},
	})
}
