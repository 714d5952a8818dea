package pipeline

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glean/internal/adapters/cache"
	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports"
	"go.trai.ch/glean/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

// newMockedFactory wires a factory with a real store and fingerprinter
// but mocked analyzers, so collaborator call counts prove memoization.
func newMockedFactory(t *testing.T, ctrl *gomock.Controller) (*Factory, *mocks.MockSentimentScorer, *mocks.MockKeywordRanker, *mocks.MockReadabilityScorer) {
	t.Helper()

	cfg := domain.DefaultConfig()
	cfg.Cache.Dir = filepath.Join(t.TempDir(), "cache")
	store, err := cache.NewStore(cfg.Cache.Dir)
	require.NoError(t, err)

	sentiment := mocks.NewMockSentimentScorer(ctrl)
	keywords := mocks.NewMockKeywordRanker(ctrl)
	readability := mocks.NewMockReadabilityScorer(ctrl)

	factory := NewFactory(Deps{
		Config:      cfg,
		Store:       store,
		Fingerprint: cache.NewFingerprinter(),
		Loader:      nil,
		Sentiment:   sentiment,
		Entities:    mocks.NewMockEntityRecognizer(ctrl),
		Keywords:    keywords,
		Readability: readability,
		Logger:      testLogger{t: t},
	})
	return factory, sentiment, keywords, readability
}

func withTexts(f *Factory, texts []string) *Pipeline {
	p := f.New()
	p.texts = texts
	return p
}

func TestStages_MemoizedAcrossRuns(t *testing.T) {
	t.Parallel()

	texts := []string{"great product", "terrible service"}

	t.Run("sentiment scorer runs once per entry total", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		factory, sentiment, _, _ := newMockedFactory(t, ctrl)

		sentiment.EXPECT().Score("great product").
			Return(domain.SentimentScore{Polarity: 0.8, Subjectivity: 0.75}).Times(1)
		sentiment.EXPECT().Score("terrible service").
			Return(domain.SentimentScore{Polarity: -1, Subjectivity: 1}).Times(1)

		first := withTexts(factory, texts).AnalyzeSentiment()
		second := withTexts(factory, texts).AnalyzeSentiment()

		firstResult, _ := resultOf[domain.SentimentResult](first, domain.StageSentiment)
		secondResult, _ := resultOf[domain.SentimentResult](second, domain.StageSentiment)
		assert.Equal(t, firstResult, secondResult)
		assert.Equal(t, 1, firstResult.PositiveCount)
		assert.Equal(t, 1, firstResult.NegativeCount)
		assert.InDelta(t, -0.1, firstResult.AvgPolarity, 1e-9)
	})

	t.Run("keyword ranker runs once", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		factory, _, keywords, _ := newMockedFactory(t, ctrl)

		ranked := []domain.RankedTerm{{Term: "great product", Score: 4}}
		keywords.EXPECT().Rank(texts, 10).Return(ranked).Times(1)

		withTexts(factory, texts).ExtractKeywords()
		second := withTexts(factory, texts).ExtractKeywords()

		result, ok := resultOf[domain.KeywordResult](second, domain.StageKeywords)
		require.True(t, ok)
		assert.Equal(t, "rake", result.Method)
		assert.Equal(t, ranked, result.Terms)
	})

	t.Run("changed corpus recomputes", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		factory, _, keywords, _ := newMockedFactory(t, ctrl)

		keywords.EXPECT().Rank(gomock.Any(), 10).Return(nil).Times(2)

		withTexts(factory, texts).ExtractKeywords()
		withTexts(factory, []string{"different corpus"}).ExtractKeywords()
	})

	t.Run("different top n recomputes", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		factory, _, keywords, _ := newMockedFactory(t, ctrl)

		keywords.EXPECT().Rank(texts, 10).Return(nil).Times(1)
		keywords.EXPECT().Rank(texts, 3).Return(nil).Times(1)

		withTexts(factory, texts).ExtractKeywords()
		factory.deps.Config.Analysis.TopKeywords = 3
		withTexts(factory, texts).ExtractKeywords()
	})

	t.Run("readability scorer runs once per entry total", func(t *testing.T) {
		t.Parallel()

		ctrl := gomock.NewController(t)
		factory, _, _, readability := newMockedFactory(t, ctrl)

		readability.EXPECT().Score(gomock.Any()).
			Return(domain.ReadabilityScore{FleschReadingEase: 95, AvgWordsPerSentence: 2}).Times(2)

		withTexts(factory, texts).AnalyzeComplexity()
		second := withTexts(factory, texts).AnalyzeComplexity()

		result, ok := resultOf[domain.ComplexityResult](second, domain.StageComplexity)
		require.True(t, ok)
		assert.InDelta(t, 95, result.AvgFleschReadingEase, 1e-9)
		assert.Equal(t, "Very easy (5th grade)", result.Interpretation)
	})
}

func TestStages_CorruptEntryRecomputes(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)

	cfg := domain.DefaultConfig()
	cfg.Cache.Dir = filepath.Join(t.TempDir(), "cache")

	store := mocks.NewMockArtifactStore(ctrl)
	keywords := mocks.NewMockKeywordRanker(ctrl)
	factory := NewFactory(Deps{
		Config:      cfg,
		Store:       store,
		Fingerprint: cache.NewFingerprinter(),
		Keywords:    keywords,
		Logger:      testLogger{t: t},
	})

	// An unreadable entry surfaces as miss-with-error and must trigger
	// recomputation plus a fresh write.
	store.EXPECT().
		Get(gomock.Any(), domain.CategoryNLP, domain.StageKeywords, gomock.Any()).
		Return(false, domain.ErrEntryCorrupt)
	keywords.EXPECT().Rank(gomock.Any(), 10).Return(nil).Times(1)
	store.EXPECT().
		Set(gomock.Any(), domain.CategoryNLP, domain.StageKeywords, gomock.Any()).
		Return(nil)

	p := withTexts(factory, []string{"some text"}).ExtractKeywords()
	_, ok := p.Results().Get(domain.StageKeywords)
	assert.True(t, ok)
}

func TestStages_Preconditions(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	factory, _, _, _ := newMockedFactory(t, ctrl)

	// No table, no texts: every stage warns and records nothing, and no
	// collaborator is called (the mocks would fail on any call).
	p := factory.New().
		AnalyzeData().
		AnalyzeText().
		AnalyzeSentiment().
		ExtractEntities().
		ExtractKeywords().
		DetectTopics().
		AnalyzeComplexity().
		CorrelateWithTextLength("rating").
		CorrelateSentimentWithColumn("rating")

	assert.Zero(t, p.Results().Len())
}

func TestStages_DataStatsOnTable(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	factory, _, _, _ := newMockedFactory(t, ctrl)

	p := factory.New()
	p.table = &domain.Table{Columns: []domain.Column{
		{Name: "name", Values: []domain.Value{domain.String("a"), domain.String("b")}},
		{Name: "score", Values: []domain.Value{domain.Number(2), domain.Number(4)}},
	}}

	p.AnalyzeData()
	stats, ok := resultOf[domain.DataStats](p, domain.StageDataStats)
	require.True(t, ok)
	require.Len(t, stats.Columns, 1)
	assert.Equal(t, "score", stats.Columns[0].Column)
	assert.InDelta(t, 3, stats.Columns[0].Mean, 1e-9)
	assert.InDelta(t, 3, stats.Columns[0].Median, 1e-9)
	assert.InDelta(t, 2, stats.Columns[0].Min, 1e-9)
	assert.InDelta(t, 4, stats.Columns[0].Max, 1e-9)
}

func TestStages_TextStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	factory, _, _, _ := newMockedFactory(t, ctrl)

	p := withTexts(factory, []string{"the quick fox", "the lazy dog"}).AnalyzeText()

	stats, ok := resultOf[domain.TextStats](p, domain.StageTextStats)
	require.True(t, ok)
	assert.Equal(t, 2, stats.TotalEntries)
	assert.Equal(t, 6, stats.TotalWords)
	assert.Equal(t, 5, stats.UniqueWords)
	assert.InDelta(t, 3.0, stats.AvgWordsPerEntry, 1e-9)
	require.NotEmpty(t, stats.TopWords)
	assert.Equal(t, domain.WordCount{Word: "the", Count: 2}, stats.TopWords[0])
}

var _ ports.Logger = testLogger{}
