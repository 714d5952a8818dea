// Package nlp implements the text analysis ports: sentiment scoring,
// entity recognition, keyword ranking and readability scoring.
package nlp

import (
	"strings"

	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports"
)

var _ ports.SentimentScorer = (*LexiconScorer)(nil)

// lexiconEntry carries the polarity and subjectivity of a single term.
// Polarity is in [-1, 1], subjectivity in [0, 1].
type lexiconEntry struct {
	polarity     float64
	subjectivity float64
}

// sentimentLexicon maps lowercased terms to their scores.
var sentimentLexicon = map[string]lexiconEntry{
	"amazing":      {0.75, 0.9},
	"awesome":      {1.0, 1.0},
	"awful":        {-1.0, 1.0},
	"bad":          {-0.7, 0.67},
	"best":         {1.0, 0.3},
	"better":       {0.5, 0.5},
	"broken":       {-0.4, 0.4},
	"cheap":        {-0.4, 0.7},
	"comfortable":  {0.5, 0.7},
	"defective":    {-0.6, 0.7},
	"disappointed": {-0.75, 0.75},
	"excellent":    {1.0, 1.0},
	"expensive":    {-0.3, 0.6},
	"fantastic":    {0.9, 0.9},
	"fast":         {0.2, 0.5},
	"fine":         {0.2, 0.4},
	"flawless":     {0.8, 0.85},
	"good":         {0.7, 0.6},
	"great":        {0.8, 0.75},
	"happy":        {0.8, 1.0},
	"hate":         {-0.8, 0.9},
	"helpful":      {0.4, 0.5},
	"horrible":     {-1.0, 1.0},
	"love":         {0.5, 0.6},
	"nice":         {0.6, 1.0},
	"okay":         {0.2, 0.5},
	"perfect":      {1.0, 1.0},
	"poor":         {-0.4, 0.6},
	"quality":      {0.0, 0.0},
	"recommend":    {0.4, 0.4},
	"reliable":     {0.5, 0.5},
	"slow":         {-0.3, 0.4},
	"terrible":     {-1.0, 1.0},
	"useless":      {-0.5, 0.6},
	"waste":        {-0.6, 0.6},
	"wonderful":    {1.0, 1.0},
	"worst":        {-1.0, 1.0},
	"wrong":        {-0.5, 0.5},
}

// negations flip the polarity of the following scored term.
var negations = map[string]bool{
	"not":     true,
	"no":      true,
	"never":   true,
	"neither": true,
	"nobody":  true,
	"nothing": true,
	"dont":    true,
	"don't":   true,
	"doesnt":  true,
	"doesn't": true,
	"isnt":    true,
	"isn't":   true,
	"wasnt":   true,
	"wasn't":  true,
	"cant":    true,
	"can't":   true,
	"wont":    true,
	"won't":   true,
}

// intensifiers scale the polarity of the following scored term.
var intensifiers = map[string]float64{
	"very":       1.3,
	"really":     1.3,
	"extremely":  1.5,
	"absolutely": 1.5,
	"totally":    1.4,
	"so":         1.2,
	"quite":      1.1,
	"slightly":   0.7,
	"somewhat":   0.8,
	"barely":     0.5,
}

// LexiconScorer scores text against a fixed term lexicon. Negations flip
// the polarity of the next scored term, intensifiers scale it.
type LexiconScorer struct{}

// NewLexiconScorer creates a new LexiconScorer.
func NewLexiconScorer() *LexiconScorer {
	return &LexiconScorer{}
}

// Score returns the average polarity and subjectivity over all lexicon
// hits in text. Text with no hits scores neutral.
func (s *LexiconScorer) Score(text string) domain.SentimentScore {
	words := strings.Fields(strings.ToLower(text))

	var polaritySum, subjectivitySum float64
	hits := 0
	negate := false
	scale := 1.0
	for _, word := range words {
		word = strings.Trim(word, ".,!?;:\"'()[]")
		if word == "" {
			continue
		}
		if negations[word] {
			negate = true
			continue
		}
		if factor, ok := intensifiers[word]; ok {
			scale *= factor
			continue
		}

		entry, ok := sentimentLexicon[word]
		if ok {
			polarity := entry.polarity * scale
			if negate {
				polarity = -polarity * 0.5
			}
			polaritySum += clamp(polarity, -1, 1)
			subjectivitySum += entry.subjectivity
			hits++
		}
		negate = false
		scale = 1.0
	}

	if hits == 0 {
		return domain.SentimentScore{}
	}
	return domain.SentimentScore{
		Polarity:     polaritySum / float64(hits),
		Subjectivity: subjectivitySum / float64(hits),
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
