package nlp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKeywordRanker_Rank(t *testing.T) {
	t.Parallel()

	ranker := NewKeywordRanker()

	t.Run("multi word phrases outrank single words", func(t *testing.T) {
		t.Parallel()

		texts := []string{
			"The battery life is amazing and the battery life lasts all day.",
			"Battery life could be better on the road.",
			"Screen looks fine.",
		}

		terms := ranker.Rank(texts, 5)
		require.NotEmpty(t, terms)
		assert.Equal(t, "battery life", terms[0].Term)
		for i := 1; i < len(terms); i++ {
			assert.GreaterOrEqual(t, terms[i-1].Score, terms[i].Score)
		}
	})

	t.Run("stopwords break phrases", func(t *testing.T) {
		t.Parallel()

		terms := ranker.Rank([]string{"quality of service"}, 10)
		for _, term := range terms {
			assert.NotContains(t, term.Term, " of ")
		}
	})

	t.Run("respects topN", func(t *testing.T) {
		t.Parallel()

		texts := []string{"red car blue car green car fast train slow boat big plane"}
		assert.LessOrEqual(t, len(ranker.Rank(texts, 3)), 3)
	})

	t.Run("empty corpus yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ranker.Rank(nil, 5))
		assert.Empty(t, ranker.Rank([]string{""}, 5))
	})
}

func TestKeywordRanker_RankTFIDF(t *testing.T) {
	t.Parallel()

	ranker := NewKeywordRanker()

	t.Run("corpus wide terms rank high", func(t *testing.T) {
		t.Parallel()

		texts := []string{
			"great camera great photos",
			"great camera decent zoom",
			"great camera terrible flash",
		}

		terms := ranker.RankTFIDF(texts, 10)
		require.NotEmpty(t, terms)

		found := map[string]bool{}
		for _, term := range terms {
			found[term.Term] = true
			assert.Positive(t, term.Score)
		}
		assert.True(t, found["great"])
		assert.True(t, found["camera"])
		assert.True(t, found["great camera"], "bigrams should be scored")
	})

	t.Run("scores are descending", func(t *testing.T) {
		t.Parallel()

		terms := ranker.RankTFIDF([]string{"alpha beta", "alpha gamma", "alpha delta"}, 10)
		for i := 1; i < len(terms); i++ {
			assert.GreaterOrEqual(t, terms[i-1].Score, terms[i].Score)
		}
	})

	t.Run("stopwords are excluded", func(t *testing.T) {
		t.Parallel()

		terms := ranker.RankTFIDF([]string{"the product is the best thing"}, 10)
		for _, term := range terms {
			assert.NotEqual(t, "the", term.Term)
			assert.NotEqual(t, "is", term.Term)
		}
	})

	t.Run("empty corpus yields nothing", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, ranker.RankTFIDF(nil, 5))
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		t.Parallel()

		texts := []string{"fast shipping good price", "slow shipping bad price", "fast delivery"}
		first := ranker.RankTFIDF(texts, 5)
		second := ranker.RankTFIDF(texts, 5)
		assert.Equal(t, first, second)
	})
}
