package domain

import "go.trai.ch/zerr"

var (
	// ErrFileNotFound is returned when an input file does not exist.
	ErrFileNotFound = zerr.New("file not found")

	// ErrUnsupportedFormat is returned when an input file has an extension no loader handles.
	ErrUnsupportedFormat = zerr.New("unsupported file format")

	// ErrColumnNotFound is returned when a referenced column is not in the loaded table.
	ErrColumnNotFound = zerr.New("column not found")

	// ErrNoTableLoaded is returned when a text column is requested before any table is loaded.
	ErrNoTableLoaded = zerr.New("no table loaded")

	// ErrNotNumeric is returned when a correlation column holds non-numeric values.
	ErrNotNumeric = zerr.New("column is not numeric")

	// ErrLengthMismatch is returned when two aligned sequences differ in length.
	ErrLengthMismatch = zerr.New("sequence lengths do not match")

	// ErrZeroVariance is returned when a correlation input is constant.
	ErrZeroVariance = zerr.New("sequence has zero variance")

	// ErrUnknownCategory is returned when a store operation names a category outside the fixed set.
	ErrUnknownCategory = zerr.New("unknown cache category")

	// ErrStoreCreateFailed is returned when a cache category directory cannot be created.
	ErrStoreCreateFailed = zerr.New("failed to create cache directory")

	// ErrEntryCorrupt is returned when a cache entry cannot be decoded or fails its checksum.
	ErrEntryCorrupt = zerr.New("cache entry corrupt")

	// ErrEntryStageMismatch is returned when a cache entry was written by a different stage.
	ErrEntryStageMismatch = zerr.New("cache entry written by different stage")

	// ErrEntryWriteFailed is returned when a cache entry cannot be persisted.
	ErrEntryWriteFailed = zerr.New("failed to write cache entry")

	// ErrEntryMarshalFailed is returned when a value cannot be serialized for caching.
	ErrEntryMarshalFailed = zerr.New("failed to marshal cache entry")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidCleanStrategy is returned when a clean strategy is not one of drop, fill, ffill.
	ErrInvalidCleanStrategy = zerr.New("invalid clean strategy, expected 'drop', 'fill' or 'ffill'")

	// ErrExportFailed is returned when writing an export file fails.
	ErrExportFailed = zerr.New("failed to write export file")

	// ErrInvalidExportFormat is returned when an export format is not csv, json or xlsx.
	ErrInvalidExportFormat = zerr.New("invalid export format, expected 'csv', 'json' or 'xlsx'")

	// ErrBatchPartialFailure is returned when some batch inputs failed.
	ErrBatchPartialFailure = zerr.New("some batch inputs failed")

	// ErrInvalidCategory is returned when a cache category is not one of raw_data, analysis, nlp.
	ErrInvalidCategory = zerr.New("invalid cache category, expected 'raw_data', 'analysis' or 'nlp'")
)
