package pipeline

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"go.trai.ch/glean/internal/core/domain"
)

// topicCandidates is how many TF-IDF terms feed topic detection.
const topicCandidates = 20

// cached runs compute through the memoization envelope: a readable cache
// entry under key is returned verbatim, anything else is computed and
// written back. Unreadable entries are logged and treated as misses.
func cached[T any](p *Pipeline, key string, category domain.Category, stage domain.StageName, compute func() T) T {
	if p.useCache() {
		var out T
		hit, err := p.deps.Store.Get(key, category, stage, &out)
		if err != nil {
			p.deps.Logger.Warn(fmt.Sprintf("unreadable cache entry for stage %s, recomputing: %v", stage, err))
		}
		if hit {
			p.deps.Logger.Info(fmt.Sprintf("stage %s served from cache", stage))
			return out
		}
	}

	out := compute()

	if p.useCache() {
		if err := p.deps.Store.Set(key, category, stage, out); err != nil {
			p.deps.Logger.Warn(fmt.Sprintf("failed to cache stage %s: %v", stage, err))
		}
	}
	return out
}

// AnalyzeData computes descriptive statistics for every numeric column.
// Without a table or numeric columns it warns and leaves no result.
func (p *Pipeline) AnalyzeData() *Pipeline {
	if p.table == nil {
		p.deps.Logger.Warn("no table loaded, skipping data statistics")
		return p
	}
	numeric := p.table.NumericColumns()
	if len(numeric) == 0 {
		p.deps.Logger.Warn("no numeric columns found, skipping data statistics")
		return p
	}

	key := p.deps.Fingerprint.Table(p.table)
	result := cached(p, key, domain.CategoryAnalysis, domain.StageDataStats, func() domain.DataStats {
		stats := domain.DataStats{Columns: make([]domain.ColumnStats, 0, len(numeric))}
		for _, col := range numeric {
			values := col.Numbers()
			lo, hi := minMax(values)
			stats.Columns = append(stats.Columns, domain.ColumnStats{
				Column: col.Name,
				Mean:   mean(values),
				Median: median(values),
				Std:    sampleStd(values),
				Min:    lo,
				Max:    hi,
			})
		}
		return stats
	})

	p.results.Put(domain.StageDataStats, result)
	p.deps.Logger.Info(fmt.Sprintf("analyzed %d numeric columns", len(result.Columns)))
	return p
}

// AnalyzeText computes word-level statistics over the text corpus.
func (p *Pipeline) AnalyzeText() *Pipeline {
	if len(p.texts) == 0 {
		p.deps.Logger.Warn("no text loaded, skipping text statistics")
		return p
	}

	key := p.deps.Fingerprint.Texts(p.texts, "_text_stats")
	result := cached(p, key, domain.CategoryAnalysis, domain.StageTextStats, func() domain.TextStats {
		words := strings.Fields(strings.ToLower(strings.Join(p.texts, " ")))
		frequency := map[string]int{}
		for _, word := range words {
			frequency[word]++
		}

		return domain.TextStats{
			TotalEntries:     len(p.texts),
			TotalWords:       len(words),
			UniqueWords:      len(frequency),
			AvgWordsPerEntry: float64(len(words)) / float64(len(p.texts)),
			TopWords:         topWords(frequency, 10),
		}
	})

	p.results.Put(domain.StageTextStats, result)
	p.deps.Logger.Info(fmt.Sprintf("analyzed %d text entries, %d words", result.TotalEntries, result.TotalWords))
	return p
}

// AnalyzeSentiment scores every corpus entry and aggregates counts and
// averages.
func (p *Pipeline) AnalyzeSentiment() *Pipeline {
	if len(p.texts) == 0 {
		p.deps.Logger.Warn("no text loaded, skipping sentiment")
		return p
	}

	key := p.deps.Fingerprint.Texts(p.texts, "_sentiment")
	result := cached(p, key, domain.CategoryNLP, domain.StageSentiment, func() domain.SentimentResult {
		result := domain.SentimentResult{
			Entries: make([]domain.SentimentEntry, 0, len(p.texts)),
			Total:   len(p.texts),
		}
		var polaritySum, subjectivitySum float64
		for _, text := range p.texts {
			score := p.deps.Sentiment.Score(text)
			category := domain.CategorizePolarity(score.Polarity)
			result.Entries = append(result.Entries, domain.SentimentEntry{
				Polarity:     score.Polarity,
				Subjectivity: score.Subjectivity,
				Category:     category,
			})
			polaritySum += score.Polarity
			subjectivitySum += score.Subjectivity
			switch category {
			case domain.SentimentPositive:
				result.PositiveCount++
			case domain.SentimentNegative:
				result.NegativeCount++
			default:
				result.NeutralCount++
			}
		}
		result.AvgPolarity = polaritySum / float64(result.Total)
		result.AvgSubjectivity = subjectivitySum / float64(result.Total)
		return result
	})

	p.results.Put(domain.StageSentiment, result)
	p.deps.Logger.Info(fmt.Sprintf("sentiment: %d positive, %d negative, %d neutral",
		result.PositiveCount, result.NegativeCount, result.NeutralCount))
	return p
}

// ExtractEntities recognizes named entities across the corpus and
// aggregates them per type. Entries the recognizer fails on are skipped
// with a warning.
func (p *Pipeline) ExtractEntities() *Pipeline {
	if len(p.texts) == 0 {
		p.deps.Logger.Warn("no text loaded, skipping entities")
		return p
	}

	key := p.deps.Fingerprint.Texts(p.texts, "_entities")
	result := cached(p, key, domain.CategoryNLP, domain.StageEntities, func() domain.EntityResult {
		counts := map[string]map[string]int{}
		for _, text := range p.texts {
			entities, err := p.deps.Entities.Extract(text)
			if err != nil {
				p.deps.Logger.Warn(fmt.Sprintf("entity extraction failed for an entry, skipping: %v", err))
				continue
			}
			for _, ent := range entities {
				if counts[ent.Label] == nil {
					counts[ent.Label] = map[string]int{}
				}
				counts[ent.Label][ent.Text]++
			}
		}
		return summarizeEntities(counts)
	})

	p.results.Put(domain.StageEntities, result)
	p.deps.Logger.Info(fmt.Sprintf("extracted entities of %d types", len(result.Types)))
	return p
}

// ExtractKeywords ranks keyword phrases over the corpus with RAKE, keeping
// the configured number of top phrases.
func (p *Pipeline) ExtractKeywords() *Pipeline {
	if len(p.texts) == 0 {
		p.deps.Logger.Warn("no text loaded, skipping keywords")
		return p
	}

	topN := p.deps.Config.Analysis.TopKeywords
	key := p.deps.Fingerprint.Texts(p.texts, "_keywords_"+strconv.Itoa(topN))
	result := cached(p, key, domain.CategoryNLP, domain.StageKeywords, func() domain.KeywordResult {
		return domain.KeywordResult{
			Method: "rake",
			Terms:  p.deps.Keywords.Rank(p.texts, topN),
		}
	})

	p.results.Put(domain.StageKeywords, result)
	p.deps.Logger.Info(fmt.Sprintf("extracted %d keywords", len(result.Terms)))
	return p
}

// DetectTopics buckets the top TF-IDF terms of the corpus into fixed
// themes.
func (p *Pipeline) DetectTopics() *Pipeline {
	if len(p.texts) == 0 {
		p.deps.Logger.Warn("no text loaded, skipping topics")
		return p
	}

	key := p.deps.Fingerprint.Texts(p.texts, "_topics")
	result := cached(p, key, domain.CategoryNLP, domain.StageTopics, func() domain.TopicResult {
		return bucketTopics(p.deps.Keywords.RankTFIDF(p.texts, topicCandidates))
	})

	p.results.Put(domain.StageTopics, result)
	p.deps.Logger.Info(fmt.Sprintf("detected %d topics", len(result.Topics)))
	return p
}

// AnalyzeComplexity computes readability metrics per entry and averages
// over the corpus.
func (p *Pipeline) AnalyzeComplexity() *Pipeline {
	if len(p.texts) == 0 {
		p.deps.Logger.Warn("no text loaded, skipping complexity")
		return p
	}

	key := p.deps.Fingerprint.Texts(p.texts, "_complexity")
	result := cached(p, key, domain.CategoryNLP, domain.StageComplexity, func() domain.ComplexityResult {
		result := domain.ComplexityResult{
			Entries: make([]domain.ReadabilityScore, 0, len(p.texts)),
		}
		var easeSum, gradeSum, wordsSum float64
		for _, text := range p.texts {
			score := p.deps.Readability.Score(text)
			result.Entries = append(result.Entries, score)
			easeSum += score.FleschReadingEase
			gradeSum += score.FleschKincaidGrade
			wordsSum += score.AvgWordsPerSentence
		}
		n := float64(len(result.Entries))
		result.AvgFleschReadingEase = easeSum / n
		result.AvgFleschKincaidGrade = gradeSum / n
		result.AvgWordsPerSentence = wordsSum / n
		result.Interpretation = interpretReadability(result.AvgFleschReadingEase)
		return result
	})

	p.results.Put(domain.StageComplexity, result)
	p.deps.Logger.Info(fmt.Sprintf("complexity: %s", result.Interpretation))
	return p
}

// CorrelateWithTextLength correlates a numeric column with per-entry word
// counts. Column and corpus must pair up row for row.
func (p *Pipeline) CorrelateWithTextLength(column string) *Pipeline {
	lengths := make([]float64, len(p.texts))
	for i, text := range p.texts {
		lengths[i] = float64(len(strings.Fields(text)))
	}
	return p.correlate(column, domain.CorrelateTextLength, domain.StageCorrelation, lengths)
}

// CorrelateSentimentWithColumn correlates a numeric column with per-entry
// sentiment polarity. The sentiment stage must have run.
func (p *Pipeline) CorrelateSentimentWithColumn(column string) *Pipeline {
	value, ok := p.results.Get(domain.StageSentiment)
	if !ok {
		p.deps.Logger.Warn("sentiment stage has not run, skipping sentiment correlation")
		return p
	}
	sentiment, ok := value.(domain.SentimentResult)
	if !ok {
		p.deps.Logger.Warn("unexpected sentiment result shape, skipping sentiment correlation")
		return p
	}

	polarities := make([]float64, len(sentiment.Entries))
	for i, entry := range sentiment.Entries {
		polarities[i] = entry.Polarity
	}
	return p.correlate(column, domain.CorrelatePolarity, domain.StageSentimentCorrelation, polarities)
}

func (p *Pipeline) correlate(column string, target domain.CorrelationTarget, stage domain.StageName, series []float64) *Pipeline {
	if p.table == nil || len(p.texts) == 0 {
		p.deps.Logger.Warn("need both table and text loaded, skipping correlation")
		return p
	}
	col, ok := p.table.Column(column)
	if !ok {
		p.deps.Logger.Warn(fmt.Sprintf("column %q not found, skipping correlation", column))
		return p
	}
	if !col.IsNumeric() {
		p.deps.Logger.Warn(fmt.Sprintf("column %q is not numeric, skipping correlation", column))
		return p
	}

	values := col.Numbers()
	coefficient, err := pearson(values, series)
	if err != nil {
		p.deps.Logger.Warn(fmt.Sprintf("correlation of %q with %s refused: %v", column, target, err))
		return p
	}

	tag := fmt.Sprintf("_%s_%s_%s", stage, column, p.deps.Fingerprint.Table(p.table))
	key := p.deps.Fingerprint.Texts(p.texts, tag)
	result := cached(p, key, domain.CategoryAnalysis, stage, func() domain.CorrelationResult {
		return domain.CorrelationResult{
			Column:      column,
			Target:      target,
			Coefficient: coefficient,
			Strength:    correlationStrength(coefficient),
		}
	})

	p.results.Put(stage, result)
	p.deps.Logger.Info(fmt.Sprintf("correlation of %q with %s: %.3f (%s)", column, target, result.Coefficient, result.Strength))
	return p
}

func topWords(frequency map[string]int, topN int) []domain.WordCount {
	words := make([]domain.WordCount, 0, len(frequency))
	for word, count := range frequency {
		words = append(words, domain.WordCount{Word: word, Count: count})
	}
	sort.Slice(words, func(i, j int) bool {
		if words[i].Count != words[j].Count {
			return words[i].Count > words[j].Count
		}
		return words[i].Word < words[j].Word
	})
	if len(words) > topN {
		words = words[:topN]
	}
	return words
}

func summarizeEntities(counts map[string]map[string]int) domain.EntityResult {
	labels := make([]string, 0, len(counts))
	for label := range counts {
		labels = append(labels, label)
	}
	sort.Strings(labels)

	result := domain.EntityResult{Types: make([]domain.EntityTypeSummary, 0, len(labels))}
	for _, label := range labels {
		mentions := make([]domain.EntityMention, 0, len(counts[label]))
		total := 0
		for text, count := range counts[label] {
			mentions = append(mentions, domain.EntityMention{Text: text, Count: count})
			total += count
		}
		sort.Slice(mentions, func(i, j int) bool {
			if mentions[i].Count != mentions[j].Count {
				return mentions[i].Count > mentions[j].Count
			}
			return mentions[i].Text < mentions[j].Text
		})
		unique := len(mentions)
		if len(mentions) > 5 {
			mentions = mentions[:5]
		}
		result.Types = append(result.Types, domain.EntityTypeSummary{
			Label:  label,
			Total:  total,
			Unique: unique,
			Top:    mentions,
		})
	}
	return result
}

// interpretReadability maps a Flesch reading ease score to a reading
// level description.
func interpretReadability(score float64) string {
	switch {
	case score >= 90:
		return "Very easy (5th grade)"
	case score >= 80:
		return "Easy (6th grade)"
	case score >= 70:
		return "Fairly easy (7th grade)"
	case score >= 60:
		return "Standard (8th-9th grade)"
	case score >= 50:
		return "Fairly difficult (10th-12th grade)"
	case score >= 30:
		return "Difficult (College)"
	default:
		return "Very difficult (College graduate)"
	}
}
