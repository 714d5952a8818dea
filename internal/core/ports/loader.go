package ports

import "go.trai.ch/glean/internal/core/domain"

// TableLoader parses a tabular input file into a table.
//
//go:generate go run go.uber.org/mock/mockgen -source=loader.go -destination=mocks/mock_loader.go -package=mocks
type TableLoader interface {
	// Load reads the file at path. It returns domain.ErrFileNotFound when
	// the path does not exist and domain.ErrUnsupportedFormat when no
	// parser handles the extension.
	Load(path string) (*domain.Table, error)
}

// ConfigLoader reads the pipeline configuration.
type ConfigLoader interface {
	// Load reads the config file at path, falling back to defaults when
	// the file does not exist.
	Load(path string) (*domain.Config, error)
}
