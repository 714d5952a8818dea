package nlp

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports"
)

var _ ports.KeywordRanker = (*KeywordRanker)(nil)

// maxVocabulary caps the TF-IDF feature space to the most frequent terms.
const maxVocabulary = 100

var stopwords = buildStopwords()

func buildStopwords() map[string]bool {
	list := []string{
		"a", "about", "above", "after", "again", "against", "all", "am", "an",
		"and", "any", "are", "as", "at", "be", "because", "been", "before",
		"being", "below", "between", "both", "but", "by", "can", "did", "do",
		"does", "doing", "down", "during", "each", "few", "for", "from",
		"further", "had", "has", "have", "having", "he", "her", "here", "hers",
		"herself", "him", "himself", "his", "how", "i", "if", "in", "into",
		"is", "it", "its", "itself", "just", "me", "more", "most", "my",
		"myself", "no", "nor", "not", "now", "of", "off", "on", "once",
		"only", "or", "other", "our", "ours", "ourselves", "out", "over",
		"own", "same", "she", "should", "so", "some", "such", "than", "that",
		"the", "their", "theirs", "them", "themselves", "then", "there",
		"these", "they", "this", "those", "through", "to", "too", "under",
		"until", "up", "very", "was", "we", "were", "what", "when", "where",
		"which", "while", "who", "whom", "why", "will", "with", "you", "your",
		"yours", "yourself", "yourselves",
	}
	set := make(map[string]bool, len(list))
	for _, word := range list {
		set[word] = true
	}
	return set
}

var (
	phraseSplitter = regexp.MustCompile(`[.,!?;:()\[\]"]+`)
	wordPattern    = regexp.MustCompile(`[a-z0-9]+`)
)

// KeywordRanker implements RAKE phrase ranking and averaged TF-IDF term
// ranking over a corpus of texts.
type KeywordRanker struct{}

// NewKeywordRanker creates a new KeywordRanker.
func NewKeywordRanker() *KeywordRanker {
	return &KeywordRanker{}
}

// Rank extracts candidate phrases with RAKE and returns the topN highest
// scored phrases. Candidate phrases are maximal runs of non-stopwords,
// scored by the summed degree/frequency ratio of their words.
func (r *KeywordRanker) Rank(texts []string, topN int) []domain.RankedTerm {
	if len(texts) == 0 || topN <= 0 {
		return nil
	}

	phrases := candidatePhrases(strings.Join(texts, " "))
	if len(phrases) == 0 {
		return nil
	}

	frequency := map[string]float64{}
	degree := map[string]float64{}
	for _, phrase := range phrases {
		for _, word := range phrase {
			frequency[word]++
			degree[word] += float64(len(phrase) - 1)
		}
	}

	scores := map[string]float64{}
	for _, phrase := range phrases {
		var score float64
		for _, word := range phrase {
			score += (degree[word] + frequency[word]) / frequency[word]
		}
		scores[strings.Join(phrase, " ")] = score
	}

	return topTerms(scores, topN)
}

// RankTFIDF scores unigrams and bigrams by TF-IDF averaged across all
// texts and returns the topN highest scored terms. The vocabulary is
// capped to the most frequent terms before scoring.
func (r *KeywordRanker) RankTFIDF(texts []string, topN int) []domain.RankedTerm {
	if len(texts) == 0 || topN <= 0 {
		return nil
	}

	docs := make([]map[string]float64, len(texts))
	docFrequency := map[string]float64{}
	totalFrequency := map[string]float64{}
	for i, text := range texts {
		counts := termCounts(text)
		docs[i] = counts
		for term, count := range counts {
			docFrequency[term]++
			totalFrequency[term] += count
		}
	}

	vocabulary := capVocabulary(totalFrequency, maxVocabulary)

	// Smoothed idf as used by scikit-learn, with per-document l2
	// normalization before averaging.
	n := float64(len(texts))
	idf := make(map[string]float64, len(vocabulary))
	for _, term := range vocabulary {
		idf[term] = math.Log((1+n)/(1+docFrequency[term])) + 1
	}

	avg := map[string]float64{}
	for _, counts := range docs {
		weights := make(map[string]float64, len(counts))
		var norm float64
		for _, term := range vocabulary {
			if tf := counts[term]; tf > 0 {
				w := tf * idf[term]
				weights[term] = w
				norm += w * w
			}
		}
		if norm == 0 {
			continue
		}
		norm = math.Sqrt(norm)
		for term, w := range weights {
			avg[term] += w / norm / n
		}
	}

	return topTerms(avg, topN)
}

// candidatePhrases splits text into runs of consecutive non-stopwords.
func candidatePhrases(text string) [][]string {
	var phrases [][]string
	for _, fragment := range phraseSplitter.Split(strings.ToLower(text), -1) {
		var current []string
		for _, word := range wordPattern.FindAllString(fragment, -1) {
			if stopwords[word] {
				if len(current) > 0 {
					phrases = append(phrases, current)
					current = nil
				}
				continue
			}
			current = append(current, word)
		}
		if len(current) > 0 {
			phrases = append(phrases, current)
		}
	}
	return phrases
}

// termCounts counts unigram and bigram occurrences in text, skipping
// stopwords and bigrams containing one.
func termCounts(text string) map[string]float64 {
	words := wordPattern.FindAllString(strings.ToLower(text), -1)
	counts := map[string]float64{}
	previous := ""
	for _, word := range words {
		if stopwords[word] {
			previous = ""
			continue
		}
		counts[word]++
		if previous != "" {
			counts[previous+" "+word]++
		}
		previous = word
	}
	return counts
}

func capVocabulary(totalFrequency map[string]float64, limit int) []string {
	terms := make([]string, 0, len(totalFrequency))
	for term := range totalFrequency {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if totalFrequency[terms[i]] != totalFrequency[terms[j]] {
			return totalFrequency[terms[i]] > totalFrequency[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > limit {
		terms = terms[:limit]
	}
	return terms
}

func topTerms(scores map[string]float64, topN int) []domain.RankedTerm {
	ranked := make([]domain.RankedTerm, 0, len(scores))
	for term, score := range scores {
		ranked = append(ranked, domain.RankedTerm{Term: term, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].Term < ranked[j].Term
	})
	if len(ranked) > topN {
		ranked = ranked[:topN]
	}
	return ranked
}
