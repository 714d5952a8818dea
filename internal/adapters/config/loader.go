// Package config provides the glean.yaml configuration loader.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// DefaultFilename is the config file looked up in the working directory.
const DefaultFilename = "glean.yaml"

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// gleanfile mirrors the on-disk structure of glean.yaml.
type gleanfile struct {
	Cache struct {
		Enabled *bool  `yaml:"enabled"`
		Dir     string `yaml:"dir"`
	} `yaml:"cache"`
	Clean struct {
		Strategy string `yaml:"strategy"`
	} `yaml:"clean"`
	Analysis struct {
		Sentiment   *bool `yaml:"sentiment"`
		Entities    *bool `yaml:"entities"`
		Keywords    *bool `yaml:"keywords"`
		Topics      *bool `yaml:"topics"`
		Complexity  *bool `yaml:"complexity"`
		TopKeywords int   `yaml:"topKeywords"`
	} `yaml:"analysis"`
	Report struct {
		Path string `yaml:"path"`
	} `yaml:"report"`
	Export struct {
		Format string `yaml:"format"`
		Dir    string `yaml:"dir"`
	} `yaml:"export"`
}

// Load reads the configuration at path. A missing file is not an error; the
// defaults apply. Values present in the file override defaults field by
// field.
func (l *Loader) Load(path string) (*domain.Config, error) {
	cfg := domain.DefaultConfig()

	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	var file gleanfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrConfigParseFailed.Error()), "path", path)
	}

	apply(cfg, &file)
	if !domain.ValidCleanStrategy(cfg.Clean.Strategy) {
		return nil, zerr.With(domain.ErrInvalidCleanStrategy, "strategy", string(cfg.Clean.Strategy))
	}
	return cfg, nil
}

func apply(cfg *domain.Config, file *gleanfile) {
	if file.Cache.Enabled != nil {
		cfg.Cache.Enabled = *file.Cache.Enabled
	}
	if file.Cache.Dir != "" {
		cfg.Cache.Dir = file.Cache.Dir
	}
	if file.Clean.Strategy != "" {
		cfg.Clean.Strategy = domain.CleanStrategy(file.Clean.Strategy)
	}
	if file.Analysis.Sentiment != nil {
		cfg.Analysis.Sentiment = *file.Analysis.Sentiment
	}
	if file.Analysis.Entities != nil {
		cfg.Analysis.Entities = *file.Analysis.Entities
	}
	if file.Analysis.Keywords != nil {
		cfg.Analysis.Keywords = *file.Analysis.Keywords
	}
	if file.Analysis.Topics != nil {
		cfg.Analysis.Topics = *file.Analysis.Topics
	}
	if file.Analysis.Complexity != nil {
		cfg.Analysis.Complexity = *file.Analysis.Complexity
	}
	if file.Analysis.TopKeywords > 0 {
		cfg.Analysis.TopKeywords = file.Analysis.TopKeywords
	}
	if file.Report.Path != "" {
		cfg.Report.Path = file.Report.Path
	}
	if file.Export.Format != "" {
		cfg.Export.Format = file.Export.Format
	}
	if file.Export.Dir != "" {
		cfg.Export.Dir = file.Export.Dir
	}
}
