package domain

// StageName identifies one unit of analysis work in the result set and in
// cache envelopes.
type StageName string

const (
	// StageRawTable tags cached table snapshots in the raw_data category.
	StageRawTable StageName = "raw_table"
	// StageDataStats is descriptive statistics over numeric columns.
	StageDataStats StageName = "data_statistics"
	// StageTextStats is word-level statistics over the text corpus.
	StageTextStats StageName = "text_statistics"
	// StageSentiment is per-entry polarity and subjectivity scoring.
	StageSentiment StageName = "sentiment"
	// StageEntities is named entity extraction.
	StageEntities StageName = "entities"
	// StageKeywords is ranked keyword extraction.
	StageKeywords StageName = "keywords"
	// StageTopics is theme detection over ranked terms.
	StageTopics StageName = "topics"
	// StageComplexity is readability scoring.
	StageComplexity StageName = "complexity"
	// StageCorrelation is numeric-column vs text-length correlation.
	StageCorrelation StageName = "correlation"
	// StageSentimentCorrelation is numeric-column vs polarity correlation.
	StageSentimentCorrelation StageName = "sentiment_correlation"
)

// Sentiment categorization thresholds. Fixed design constants, not
// configurable per call.
const (
	PositiveThreshold = 0.1
	NegativeThreshold = -0.1
)

// SentimentCategory buckets a polarity score.
type SentimentCategory string

const (
	SentimentPositive SentimentCategory = "positive"
	SentimentNeutral  SentimentCategory = "neutral"
	SentimentNegative SentimentCategory = "negative"
)

// CategorizePolarity maps a polarity score onto its category.
func CategorizePolarity(polarity float64) SentimentCategory {
	switch {
	case polarity > PositiveThreshold:
		return SentimentPositive
	case polarity < NegativeThreshold:
		return SentimentNegative
	default:
		return SentimentNeutral
	}
}

// ColumnStats holds descriptive statistics for one numeric column.
type ColumnStats struct {
	Column string  `json:"column"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Std    float64 `json:"std"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// DataStats is the data-statistics stage result.
type DataStats struct {
	Columns []ColumnStats `json:"columns"`
}

// WordCount pairs a word with its occurrence count.
type WordCount struct {
	Word  string `json:"word"`
	Count int    `json:"count"`
}

// TextStats is the text-statistics stage result.
type TextStats struct {
	TotalEntries     int         `json:"total_entries"`
	TotalWords       int         `json:"total_words"`
	UniqueWords      int         `json:"unique_words"`
	AvgWordsPerEntry float64     `json:"avg_words_per_entry"`
	TopWords         []WordCount `json:"top_words"`
}

// SentimentScore is the raw output of a sentiment scorer for one text.
type SentimentScore struct {
	Polarity     float64 `json:"polarity"`
	Subjectivity float64 `json:"subjectivity"`
}

// SentimentEntry is the scored and categorized result for one corpus entry.
type SentimentEntry struct {
	Polarity     float64           `json:"polarity"`
	Subjectivity float64           `json:"subjectivity"`
	Category     SentimentCategory `json:"category"`
}

// SentimentResult is the sentiment stage result.
type SentimentResult struct {
	Entries         []SentimentEntry `json:"entries"`
	Total           int              `json:"total"`
	PositiveCount   int              `json:"positive_count"`
	NegativeCount   int              `json:"negative_count"`
	NeutralCount    int              `json:"neutral_count"`
	AvgPolarity     float64          `json:"avg_polarity"`
	AvgSubjectivity float64          `json:"avg_subjectivity"`
}

// Entity is a typed span produced by an entity recognizer.
type Entity struct {
	Text  string `json:"text"`
	Label string `json:"label"`
}

// EntityMention pairs an entity surface form with its mention count.
type EntityMention struct {
	Text  string `json:"text"`
	Count int    `json:"count"`
}

// EntityTypeSummary aggregates mentions of one entity type.
type EntityTypeSummary struct {
	Label  string          `json:"label"`
	Total  int             `json:"total"`
	Unique int             `json:"unique"`
	Top    []EntityMention `json:"top"`
}

// EntityResult is the entity stage result, one summary per observed type.
type EntityResult struct {
	Types []EntityTypeSummary `json:"types"`
}

// RankedTerm pairs a term or phrase with its score.
type RankedTerm struct {
	Term  string  `json:"term"`
	Score float64 `json:"score"`
}

// KeywordResult is the keyword stage result.
type KeywordResult struct {
	Method string       `json:"method"`
	Terms  []RankedTerm `json:"terms"`
}

// Topic groups ranked terms under a theme.
type Topic struct {
	Name  string       `json:"name"`
	Terms []RankedTerm `json:"terms"`
}

// TopicResult is the topic stage result. Empty themes are omitted.
type TopicResult struct {
	Topics []Topic `json:"topics"`
}

// ReadabilityScore holds the readability metrics for one text.
type ReadabilityScore struct {
	FleschReadingEase   float64 `json:"flesch_reading_ease"`
	FleschKincaidGrade  float64 `json:"flesch_kincaid_grade"`
	AvgWordsPerSentence float64 `json:"avg_words_per_sentence"`
	AvgSyllablesPerWord float64 `json:"avg_syllables_per_word"`
}

// ComplexityResult is the complexity stage result, aggregated over the corpus.
type ComplexityResult struct {
	AvgFleschReadingEase  float64            `json:"avg_flesch_reading_ease"`
	AvgFleschKincaidGrade float64            `json:"avg_flesch_kincaid_grade"`
	AvgWordsPerSentence   float64            `json:"avg_words_per_sentence"`
	Interpretation        string             `json:"interpretation"`
	Entries               []ReadabilityScore `json:"entries"`
}

// CorrelationTarget names the sequence a numeric column was correlated with.
type CorrelationTarget string

const (
	// CorrelateTextLength correlates against per-entry word counts.
	CorrelateTextLength CorrelationTarget = "text_length"
	// CorrelatePolarity correlates against per-entry sentiment polarity.
	CorrelatePolarity CorrelationTarget = "polarity"
)

// CorrelationResult is a correlation stage result.
type CorrelationResult struct {
	Column      string            `json:"column"`
	Target      CorrelationTarget `json:"target"`
	Coefficient float64           `json:"coefficient"`
	Strength    string            `json:"strength"`
}

// resultEntry binds a stage name to its typed output.
type resultEntry struct {
	stage StageName
	value any
}

// ResultSet maps stage names to their outputs, preserving first-insertion
// order. Re-running a stage overwrites its value in place.
type ResultSet struct {
	entries []resultEntry
}

// NewResultSet creates an empty result set.
func NewResultSet() *ResultSet {
	return &ResultSet{}
}

// Put stores or overwrites the output of a stage.
func (r *ResultSet) Put(stage StageName, value any) {
	for i := range r.entries {
		if r.entries[i].stage == stage {
			r.entries[i].value = value
			return
		}
	}
	r.entries = append(r.entries, resultEntry{stage: stage, value: value})
}

// Get returns the output of a stage, if it has run.
func (r *ResultSet) Get(stage StageName) (any, bool) {
	for i := range r.entries {
		if r.entries[i].stage == stage {
			return r.entries[i].value, true
		}
	}
	return nil, false
}

// Stages returns the stage names in insertion order.
func (r *ResultSet) Stages() []StageName {
	out := make([]StageName, len(r.entries))
	for i := range r.entries {
		out[i] = r.entries[i].stage
	}
	return out
}

// Len returns the number of populated stages.
func (r *ResultSet) Len() int { return len(r.entries) }

// Reset drops all stage outputs.
func (r *ResultSet) Reset() { r.entries = nil }
