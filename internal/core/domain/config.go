package domain

// CleanStrategy selects how missing table values are handled during cleaning.
type CleanStrategy string

const (
	// CleanDrop removes rows containing missing values.
	CleanDrop CleanStrategy = "drop"
	// CleanFill replaces missing values with zero.
	CleanFill CleanStrategy = "fill"
	// CleanForwardFill carries the previous non-missing value forward.
	CleanForwardFill CleanStrategy = "ffill"
)

// ValidCleanStrategy reports whether s is a known strategy.
func ValidCleanStrategy(s CleanStrategy) bool {
	return s == CleanDrop || s == CleanFill || s == CleanForwardFill
}

// DefaultCacheDir is where the artifact store lives unless configured.
const DefaultCacheDir = ".glean-cache"

// Config holds the pipeline configuration loaded from glean.yaml.
type Config struct {
	Cache    CacheConfig
	Clean    CleanConfig
	Analysis AnalysisConfig
	Report   ReportConfig
	Export   ExportConfig
}

// CacheConfig controls the artifact store.
type CacheConfig struct {
	Enabled bool
	Dir     string
}

// CleanConfig controls table and text cleaning.
type CleanConfig struct {
	Strategy CleanStrategy
}

// AnalysisConfig toggles individual stages and their parameters.
type AnalysisConfig struct {
	Sentiment   bool
	Entities    bool
	Keywords    bool
	Topics      bool
	Complexity  bool
	TopKeywords int
}

// ReportConfig controls report output.
type ReportConfig struct {
	Path string
}

// ExportConfig controls annotated table export.
type ExportConfig struct {
	Format string
	Dir    string
}

// DefaultConfig returns the configuration used when no glean.yaml exists.
func DefaultConfig() *Config {
	return &Config{
		Cache: CacheConfig{Enabled: true, Dir: DefaultCacheDir},
		Clean: CleanConfig{Strategy: CleanDrop},
		Analysis: AnalysisConfig{
			Sentiment:   true,
			Entities:    true,
			Keywords:    true,
			Topics:      true,
			Complexity:  true,
			TopKeywords: 10,
		},
		Report: ReportConfig{Path: "output/report.txt"},
		Export: ExportConfig{Format: "csv", Dir: "output"},
	}
}
