// Package pipeline orchestrates data and text analysis stages with
// fingerprint-keyed memoization through the artifact store.
package pipeline

import (
	"fmt"
	"os"
	"strings"

	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports"
	"go.trai.ch/zerr"
)

// Deps are the collaborators a pipeline needs. Store may be nil when
// caching is disabled.
type Deps struct {
	Config      *domain.Config
	Store       ports.ArtifactStore
	Fingerprint ports.Fingerprinter
	Loader      ports.TableLoader
	Sentiment   ports.SentimentScorer
	Entities    ports.EntityRecognizer
	Keywords    ports.KeywordRanker
	Readability ports.ReadabilityScorer
	Logger      ports.Logger
}

// Factory creates independent pipelines over a shared set of adapters.
// Pipelines share no mutable state, so each batch file can get its own.
type Factory struct {
	deps Deps
}

// NewFactory creates a pipeline factory.
func NewFactory(deps Deps) *Factory {
	return &Factory{deps: deps}
}

// New creates an empty pipeline.
func (f *Factory) New() *Pipeline {
	return &Pipeline{
		deps:    f.deps,
		results: domain.NewResultSet(),
	}
}

// Pipeline holds one analysis run: at most one loaded table, one text
// corpus and the results of the stages executed so far. Not safe for
// concurrent use.
//
// Reloading inputs does not discard earlier results; stale entries stay
// in the result set until Reset or overwrite by a re-run stage.
type Pipeline struct {
	deps Deps

	table   *domain.Table
	texts   []string
	results *domain.ResultSet
}

// Table returns the loaded table, or nil.
func (p *Pipeline) Table() *domain.Table { return p.table }

// Texts returns the loaded text corpus.
func (p *Pipeline) Texts() []string { return p.texts }

// Results returns the accumulated stage results.
func (p *Pipeline) Results() *domain.ResultSet { return p.results }

// Reset drops all stage results, keeping loaded inputs.
func (p *Pipeline) Reset() { p.results.Reset() }

func (p *Pipeline) useCache() bool {
	return p.deps.Config.Cache.Enabled && p.deps.Store != nil
}

// LoadTable parses the file at path into the pipeline's table. The parsed
// table is memoized under the file's content reference, so an unchanged
// file on a later run skips parsing. A failed load leaves the pipeline
// unmodified.
func (p *Pipeline) LoadTable(path string) error {
	key := p.deps.Fingerprint.FileRef(path)

	if p.useCache() {
		var cached domain.Table
		hit, err := p.deps.Store.Get(key, domain.CategoryRawData, domain.StageRawTable, &cached)
		if err != nil {
			p.deps.Logger.Warn(fmt.Sprintf("unreadable cache entry for %s, reloading: %v", path, err))
		}
		if hit {
			p.table = &cached
			p.deps.Logger.Info(fmt.Sprintf("loaded table from cache: %d rows, %d columns", cached.Rows(), len(cached.Columns)))
			return nil
		}
	}

	table, err := p.deps.Loader.Load(path)
	if err != nil {
		return err
	}

	if p.useCache() {
		if err := p.deps.Store.Set(key, domain.CategoryRawData, domain.StageRawTable, table); err != nil {
			p.deps.Logger.Warn(fmt.Sprintf("failed to cache table for %s: %v", path, err))
		}
	}

	p.table = table
	p.deps.Logger.Info(fmt.Sprintf("loaded table: %d rows, %d columns", table.Rows(), len(table.Columns)))
	return nil
}

// LoadTextColumn extracts the named column from the loaded table as the
// text corpus. Missing cells are dropped, numeric cells are rendered as
// text.
func (p *Pipeline) LoadTextColumn(name string) error {
	if p.table == nil {
		return domain.ErrNoTableLoaded
	}
	column, ok := p.table.Column(name)
	if !ok {
		return zerr.With(domain.ErrColumnNotFound, "column", name)
	}

	texts := make([]string, 0, len(column.Values))
	for _, v := range column.Values {
		if v.Kind != domain.ValueMissing {
			texts = append(texts, v.Text())
		}
	}
	p.texts = texts
	p.deps.Logger.Info(fmt.Sprintf("extracted %d text entries from column %q", len(texts), name))
	return nil
}

// LoadTextFile loads the text corpus from a plain file, one entry per
// non-empty line. No table is required.
func (p *Pipeline) LoadTextFile(path string) error {
	content, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		if os.IsNotExist(err) {
			return zerr.With(domain.ErrFileNotFound, "path", path)
		}
		return zerr.Wrap(err, "failed to read text file")
	}

	var texts []string
	for _, line := range strings.Split(string(content), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			texts = append(texts, line)
		}
	}
	p.texts = texts
	p.deps.Logger.Info(fmt.Sprintf("loaded text file: %d entries", len(texts)))
	return nil
}

// Summary describes the pipeline's loaded inputs and executed stages.
type Summary struct {
	DataRows    int                `json:"data_rows"`
	DataColumns int                `json:"data_columns"`
	TextEntries int                `json:"text_entries"`
	Stages      []domain.StageName `json:"stages"`
}

// Summarize reports the current pipeline state.
func (p *Pipeline) Summarize() Summary {
	s := Summary{
		TextEntries: len(p.texts),
		Stages:      p.results.Stages(),
	}
	if p.table != nil {
		s.DataRows = p.table.Rows()
		s.DataColumns = len(p.table.Columns)
	}
	return s
}
