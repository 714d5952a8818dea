package pipeline

import (
	"strings"

	"go.trai.ch/glean/internal/core/domain"
)

// themeNames fixes the bucket order of the topic result.
var themeNames = []string{"quality", "price", "service", "features", "experience", "other"}

// themeTerms maps each theme to the substrings that assign a keyword to it.
var themeTerms = map[string][]string{
	"quality":    {"quality", "good", "excellent", "poor", "bad", "great", "terrible", "amazing"},
	"price":      {"price", "expensive", "cheap", "cost", "value", "worth", "money"},
	"service":    {"service", "support", "customer", "help", "response", "staff"},
	"features":   {"feature", "function", "work", "performance", "speed", "design"},
	"experience": {"use", "easy", "difficult", "simple", "experience", "recommend"},
}

// bucketTopics assigns ranked keywords to fixed themes by substring match.
// A keyword goes to the first theme with a matching term, or to "other".
// Empty themes are dropped.
func bucketTopics(keywords []domain.RankedTerm) domain.TopicResult {
	buckets := map[string][]domain.RankedTerm{}
	for _, keyword := range keywords {
		lower := strings.ToLower(keyword.Term)
		theme := "other"
		for _, name := range themeNames[:len(themeNames)-1] {
			if matchesTheme(lower, themeTerms[name]) {
				theme = name
				break
			}
		}
		buckets[theme] = append(buckets[theme], keyword)
	}

	var result domain.TopicResult
	for _, name := range themeNames {
		if terms := buckets[name]; len(terms) > 0 {
			result.Topics = append(result.Topics, domain.Topic{Name: name, Terms: terms})
		}
	}
	return result
}

func matchesTheme(keyword string, terms []string) bool {
	for _, term := range terms {
		if strings.Contains(keyword, term) {
			return true
		}
	}
	return false
}
