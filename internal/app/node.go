package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glean/internal/adapters/cache"   //nolint:depguard // Wired in app layer
	"go.trai.ch/glean/internal/adapters/config"  //nolint:depguard // Wired in app layer
	"go.trai.ch/glean/internal/adapters/logger"  //nolint:depguard // Wired in app layer
	"go.trai.ch/glean/internal/adapters/nlp"     //nolint:depguard // Wired in app layer
	"go.trai.ch/glean/internal/adapters/tabular" //nolint:depguard // Wired in app layer
	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports"
	"go.trai.ch/glean/internal/engine/pipeline"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	// App Node
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			cache.StoreNodeID,
			cache.FingerprinterNodeID,
			tabular.NodeID,
			nlp.SentimentNodeID,
			nlp.EntitiesNodeID,
			nlp.KeywordsNodeID,
			nlp.ReadabilityNodeID,
			logger.NodeID,
		},
		Run: runAppNode,
	})

	// Components Node
	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
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
			cfg, err := graft.Dep[*domain.Config](ctx)
			if err != nil {
				return nil, err
			}
			return &Components{App: app, Logger: log, Config: cfg}, nil
		},
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	cfg, err := graft.Dep[*domain.Config](ctx)
	if err != nil {
		return nil, err
	}
	store, err := graft.Dep[ports.ArtifactStore](ctx)
	if err != nil {
		return nil, err
	}
	fingerprint, err := graft.Dep[ports.Fingerprinter](ctx)
	if err != nil {
		return nil, err
	}
	loader, err := graft.Dep[ports.TableLoader](ctx)
	if err != nil {
		return nil, err
	}
	sentiment, err := graft.Dep[ports.SentimentScorer](ctx)
	if err != nil {
		return nil, err
	}
	entities, err := graft.Dep[ports.EntityRecognizer](ctx)
	if err != nil {
		return nil, err
	}
	keywords, err := graft.Dep[ports.KeywordRanker](ctx)
	if err != nil {
		return nil, err
	}
	readability, err := graft.Dep[ports.ReadabilityScorer](ctx)
	if err != nil {
		return nil, err
	}
	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	factory := pipeline.NewFactory(pipeline.Deps{
		Config:      cfg,
		Store:       store,
		Fingerprint: fingerprint,
		Loader:      loader,
		Sentiment:   sentiment,
		Entities:    entities,
		Keywords:    keywords,
		Readability: readability,
		Logger:      log,
	})
	return New(cfg, factory, store, log), nil
}
