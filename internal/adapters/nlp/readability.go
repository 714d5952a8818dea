package nlp

import (
	"strings"

	prose "github.com/jdkato/prose/v2"
	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports"
)

var _ ports.ReadabilityScorer = (*ReadabilityScorer)(nil)

// ReadabilityScorer computes Flesch metrics using prose sentence
// segmentation and an approximate syllable counter.
type ReadabilityScorer struct{}

// NewReadabilityScorer creates a new ReadabilityScorer.
func NewReadabilityScorer() *ReadabilityScorer {
	return &ReadabilityScorer{}
}

// Score computes the Flesch reading ease (clamped to [0, 100]) and the
// Flesch-Kincaid grade level (floored at 0) of text. Empty or
// unsegmentable text scores zero on all metrics.
func (s *ReadabilityScorer) Score(text string) domain.ReadabilityScore {
	words := strings.Fields(text)
	numSentences := countSentences(text)
	if numSentences == 0 || len(words) == 0 {
		return domain.ReadabilityScore{}
	}

	syllables := 0
	for _, word := range words {
		syllables += countSyllables(word)
	}

	wordsPerSentence := float64(len(words)) / float64(numSentences)
	syllablesPerWord := float64(syllables) / float64(len(words))

	ease := 206.835 - 1.015*wordsPerSentence - 84.6*syllablesPerWord
	grade := 0.39*wordsPerSentence + 11.8*syllablesPerWord - 15.59

	return domain.ReadabilityScore{
		FleschReadingEase:   clamp(ease, 0, 100),
		FleschKincaidGrade:  max(0, grade),
		AvgWordsPerSentence: wordsPerSentence,
		AvgSyllablesPerWord: syllablesPerWord,
	}
}

func countSentences(text string) int {
	doc, err := prose.NewDocument(text,
		prose.WithTagging(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return 0
	}
	return len(doc.Sentences())
}

// countSyllables approximates syllables as runs of consecutive vowels,
// discounting a trailing silent e. Every word has at least one.
func countSyllables(word string) int {
	word = strings.ToLower(word)
	count := 0
	previousWasVowel := false
	for _, r := range word {
		isVowel := strings.ContainsRune("aeiou", r)
		if isVowel && !previousWasVowel {
			count++
		}
		previousWasVowel = isVowel
	}
	if strings.HasSuffix(word, "e") {
		count--
	}
	return max(1, count)
}
