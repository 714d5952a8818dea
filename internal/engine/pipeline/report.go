package pipeline

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/zerr"
)

const reportWidth = 60

// Report renders the accumulated results into a plain-text report. Stages
// that did not run are omitted; section order is fixed regardless of
// execution order.
func (p *Pipeline) Report() string {
	var b reportBuilder
	b.rule("=")
	b.line("GLEAN ANALYSIS REPORT")
	b.rule("=")

	if stats, ok := resultOf[domain.DataStats](p, domain.StageDataStats); ok {
		b.section("STRUCTURED DATA STATISTICS")
		for _, col := range stats.Columns {
			b.line("")
			b.line(col.Column + ":")
			b.linef("  Mean: %.2f", col.Mean)
			b.linef("  Median: %.2f", col.Median)
			b.linef("  Std Dev: %.2f", col.Std)
			b.linef("  Range: %.2f - %.2f", col.Min, col.Max)
		}
	}

	if stats, ok := resultOf[domain.TextStats](p, domain.StageTextStats); ok {
		b.section("TEXT ANALYSIS")
		b.linef("Total entries: %d", stats.TotalEntries)
		b.linef("Total words: %d", stats.TotalWords)
		b.linef("Unique words: %d", stats.UniqueWords)
		b.linef("Avg words/entry: %.1f", stats.AvgWordsPerEntry)
		b.line("")
		b.linef("Top %d words:", len(stats.TopWords))
		for _, wc := range stats.TopWords {
			b.linef("  %s: %d", wc.Word, wc.Count)
		}
	}

	if sentiment, ok := resultOf[domain.SentimentResult](p, domain.StageSentiment); ok {
		b.section("SENTIMENT ANALYSIS")
		b.linef("Entries analyzed: %d", sentiment.Total)
		b.linef("Positive: %d", sentiment.PositiveCount)
		b.linef("Negative: %d", sentiment.NegativeCount)
		b.linef("Neutral: %d", sentiment.NeutralCount)
		b.linef("Avg polarity: %.3f", sentiment.AvgPolarity)
		b.linef("Avg subjectivity: %.3f", sentiment.AvgSubjectivity)
	}

	if entities, ok := resultOf[domain.EntityResult](p, domain.StageEntities); ok {
		b.section("NAMED ENTITIES")
		for _, summary := range entities.Types {
			b.line("")
			b.linef("%s: %d mentions, %d unique", summary.Label, summary.Total, summary.Unique)
			for _, mention := range summary.Top {
				b.linef("  %s: %d", mention.Text, mention.Count)
			}
		}
	}

	if keywords, ok := resultOf[domain.KeywordResult](p, domain.StageKeywords); ok {
		b.section("KEYWORDS")
		b.linef("Method: %s", keywords.Method)
		for _, term := range keywords.Terms {
			b.linef("  %s: %.3f", term.Term, term.Score)
		}
	}

	if topics, ok := resultOf[domain.TopicResult](p, domain.StageTopics); ok {
		b.section("TOPICS")
		for _, topic := range topics.Topics {
			b.line("")
			b.line(topic.Name + ":")
			for _, term := range topic.Terms {
				b.linef("  %s: %.3f", term.Term, term.Score)
			}
		}
	}

	if complexity, ok := resultOf[domain.ComplexityResult](p, domain.StageComplexity); ok {
		b.section("TEXT COMPLEXITY")
		b.linef("Avg Flesch Reading Ease: %.2f", complexity.AvgFleschReadingEase)
		b.linef("Avg Flesch-Kincaid Grade: %.2f", complexity.AvgFleschKincaidGrade)
		b.linef("Avg words/sentence: %.1f", complexity.AvgWordsPerSentence)
		b.linef("Interpretation: %s", complexity.Interpretation)
	}

	for _, stage := range []domain.StageName{domain.StageCorrelation, domain.StageSentimentCorrelation} {
		if corr, ok := resultOf[domain.CorrelationResult](p, stage); ok {
			b.section("CORRELATION ANALYSIS")
			b.linef("Column: %s", corr.Column)
			b.linef("Correlation with %s: %.3f", corr.Target, corr.Coefficient)
			b.linef("Interpretation: %s correlation", corr.Strength)
		}
	}

	b.line("")
	b.rule("=")
	b.line("REPORT COMPLETE")
	b.rule("=")
	return b.String()
}

// SaveReport renders the report and writes it to path, creating parent
// directories as needed.
func (p *Pipeline) SaveReport(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return zerr.Wrap(err, "failed to create report directory")
	}
	if err := os.WriteFile(path, []byte(p.Report()), 0o644); err != nil {
		return zerr.Wrap(err, "failed to write report")
	}
	p.deps.Logger.Info(fmt.Sprintf("report saved to %s", path))
	return nil
}

// resultOf fetches a stage result as its concrete type.
func resultOf[T any](p *Pipeline, stage domain.StageName) (T, bool) {
	var zero T
	value, ok := p.results.Get(stage)
	if !ok {
		return zero, false
	}
	typed, ok := value.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

type reportBuilder struct {
	sb strings.Builder
}

func (b *reportBuilder) line(s string) {
	b.sb.WriteString(s)
	b.sb.WriteByte('\n')
}

func (b *reportBuilder) linef(format string, args ...any) {
	fmt.Fprintf(&b.sb, format, args...)
	b.sb.WriteByte('\n')
}

func (b *reportBuilder) rule(ch string) {
	b.line(strings.Repeat(ch, reportWidth))
}

func (b *reportBuilder) section(title string) {
	b.line("")
	b.line(title)
	b.rule("-")
}

func (b *reportBuilder) String() string {
	return strings.TrimSuffix(b.sb.String(), "\n")
}
