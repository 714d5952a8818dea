package ports

import "go.trai.ch/glean/internal/core/domain"

// SentimentScorer scores a single text for emotional valence and tone.
//
//go:generate go run go.uber.org/mock/mockgen -source=analyzer.go -destination=mocks/mock_analyzer.go -package=mocks
type SentimentScorer interface {
	// Score returns polarity in [-1, 1] and subjectivity in [0, 1].
	Score(text string) domain.SentimentScore
}

// EntityRecognizer extracts typed named-entity spans from a single text.
type EntityRecognizer interface {
	Extract(text string) ([]domain.Entity, error)
}

// KeywordRanker extracts ranked terms from a text corpus.
type KeywordRanker interface {
	// Rank returns the top phrases by RAKE score, best first.
	Rank(texts []string, topN int) []domain.RankedTerm

	// RankTFIDF returns the top terms by average TF-IDF score, best first.
	RankTFIDF(texts []string, topN int) []domain.RankedTerm
}

// ReadabilityScorer computes readability metrics for a single text.
type ReadabilityScorer interface {
	Score(text string) domain.ReadabilityScore
}
