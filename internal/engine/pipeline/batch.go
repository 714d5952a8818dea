package pipeline

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"golang.org/x/sync/errgroup"
)

// RunOptions configure one full pipeline run over a single data file.
type RunOptions struct {
	// DataFile is the tabular input. Required unless TextFile is set.
	DataFile string
	// TextColumn extracts the text corpus from a table column.
	TextColumn string
	// TextFile loads the text corpus from a plain file instead.
	TextFile string
	// Clean applies the configured cleaning strategy before analysis.
	Clean bool
	// Correlate names a numeric column to correlate with text length
	// and, when sentiment runs, with polarity.
	Correlate string
	// ReportPath overrides the configured report location. Empty writes
	// no report file.
	ReportPath string
	// ExportFormat exports the annotated table when non-empty.
	ExportFormat string
	// ExportDir is the export target directory.
	ExportDir string
}

// Run executes a complete load, clean, analyze, report sequence on a
// fresh pipeline. Load failures abort the run; analysis stages degrade
// individually. The pipeline is returned for result inspection.
func (f *Factory) Run(opts RunOptions) (*Pipeline, error) {
	p := f.New()
	cfg := f.deps.Config

	if opts.DataFile != "" {
		if err := p.LoadTable(opts.DataFile); err != nil {
			return nil, err
		}
	}
	switch {
	case opts.TextColumn != "":
		if err := p.LoadTextColumn(opts.TextColumn); err != nil {
			return nil, err
		}
	case opts.TextFile != "":
		if err := p.LoadTextFile(opts.TextFile); err != nil {
			return nil, err
		}
	}

	if opts.Clean {
		p.CleanData(cfg.Clean.Strategy)
		p.CleanText()
	}

	p.AnalyzeData()
	p.AnalyzeText()
	if cfg.Analysis.Sentiment {
		p.AnalyzeSentiment()
	}
	if cfg.Analysis.Entities {
		p.ExtractEntities()
	}
	if cfg.Analysis.Keywords {
		p.ExtractKeywords()
	}
	if cfg.Analysis.Topics {
		p.DetectTopics()
	}
	if cfg.Analysis.Complexity {
		p.AnalyzeComplexity()
	}
	if opts.Correlate != "" {
		p.CorrelateWithTextLength(opts.Correlate)
		if cfg.Analysis.Sentiment {
			p.CorrelateSentimentWithColumn(opts.Correlate)
		}
	}

	if opts.ReportPath != "" {
		if err := p.SaveReport(opts.ReportPath); err != nil {
			return nil, err
		}
	}
	if opts.ExportFormat != "" {
		if _, err := p.Export(opts.ExportFormat, opts.ExportDir); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// BatchResult is the outcome of one file in a batch run.
type BatchResult struct {
	File    string
	Summary Summary
	Err     error
}

// batchParallelism bounds concurrent per-file runs.
const batchParallelism = 4

// RunBatch runs the configured sequence over each file independently on
// its own pipeline. One file's failure never aborts the others; per-file
// outcomes are returned in input order. Report paths are derived per
// file from opts.ReportPath.
func (f *Factory) RunBatch(ctx context.Context, files []string, opts RunOptions) []BatchResult {
	results := make([]BatchResult, len(files))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(batchParallelism)
	for i, file := range files {
		results[i].File = file
		if err := ctx.Err(); err != nil {
			results[i].Err = err
			continue
		}

		g.Go(func() error {
			fileOpts := opts
			fileOpts.DataFile = file
			if opts.ReportPath != "" {
				fileOpts.ReportPath = perFileReportPath(opts.ReportPath, file)
			}

			p, err := f.Run(fileOpts)
			if err != nil {
				f.deps.Logger.Warn(fmt.Sprintf("batch file %s failed: %v", file, err))
				results[i].Err = err
				return nil
			}
			results[i].Summary = p.Summarize()
			return nil
		})
	}
	g.Wait() //nolint:errcheck // Goroutines never return errors
	return results
}

// perFileReportPath derives a distinct report path for one batch input,
// keyed on the input's base name.
func perFileReportPath(reportPath, dataFile string) string {
	dir := filepath.Dir(reportPath)
	ext := filepath.Ext(reportPath)
	base := strings.TrimSuffix(filepath.Base(dataFile), filepath.Ext(dataFile))
	return filepath.Join(dir, base+"_report"+ext)
}
