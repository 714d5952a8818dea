package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReadabilityScorer_Score(t *testing.T) {
	t.Parallel()

	scorer := NewReadabilityScorer()

	t.Run("simple text reads easier than dense text", func(t *testing.T) {
		t.Parallel()

		simple := scorer.Score("The cat sat. The dog ran. It was fun.")
		dense := scorer.Score("Notwithstanding considerable organizational impediments, " +
			"the implementation demonstrated extraordinary institutional resilience " +
			"throughout unprecedented administrative circumstances.")

		assert.Greater(t, simple.FleschReadingEase, dense.FleschReadingEase)
		assert.Less(t, simple.FleschKincaidGrade, dense.FleschKincaidGrade)
	})

	t.Run("scores stay within bounds", func(t *testing.T) {
		t.Parallel()

		score := scorer.Score("Incomprehensibility characterization institutionalization.")
		assert.GreaterOrEqual(t, score.FleschReadingEase, 0.0)
		assert.LessOrEqual(t, score.FleschReadingEase, 100.0)
		assert.GreaterOrEqual(t, score.FleschKincaidGrade, 0.0)
	})

	t.Run("empty text scores zero", func(t *testing.T) {
		t.Parallel()

		assert.Zero(t, scorer.Score(""))
	})

	t.Run("counts words per sentence", func(t *testing.T) {
		t.Parallel()

		score := scorer.Score("One two three. Four five six.")
		assert.InDelta(t, 3.0, score.AvgWordsPerSentence, 0.01)
	})
}

func TestCountSyllables(t *testing.T) {
	t.Parallel()

	cases := map[string]int{
		"cat":      1,
		"table":    1,
		"beautiful": 3,
		"a":        1,
		"the":      1,
		"rhythm":   1,
		"anyone":   2,
	}
	for word, want := range cases {
		assert.Equal(t, want, countSyllables(word), word)
	}
}
