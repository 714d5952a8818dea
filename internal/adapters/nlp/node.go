package nlp

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/glean/internal/core/ports"
)

const (
	// SentimentNodeID is the unique identifier for the sentiment scorer Graft node.
	SentimentNodeID graft.ID = "adapter.nlp.sentiment"
	// EntitiesNodeID is the unique identifier for the entity recognizer Graft node.
	EntitiesNodeID graft.ID = "adapter.nlp.entities"
	// KeywordsNodeID is the unique identifier for the keyword ranker Graft node.
	KeywordsNodeID graft.ID = "adapter.nlp.keywords"
	// ReadabilityNodeID is the unique identifier for the readability scorer Graft node.
	ReadabilityNodeID graft.ID = "adapter.nlp.readability"
)

func init() {
	graft.Register(graft.Node[ports.SentimentScorer]{
		ID:        SentimentNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SentimentScorer, error) {
			return NewLexiconScorer(), nil
		},
	})

	graft.Register(graft.Node[ports.EntityRecognizer]{
		ID:        EntitiesNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.EntityRecognizer, error) {
			return NewEntityRecognizer(), nil
		},
	})

	graft.Register(graft.Node[ports.KeywordRanker]{
		ID:        KeywordsNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.KeywordRanker, error) {
			return NewKeywordRanker(), nil
		},
	})

	graft.Register(graft.Node[ports.ReadabilityScorer]{
		ID:        ReadabilityNodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ReadabilityScorer, error) {
			return NewReadabilityScorer(), nil
		},
	})
}
