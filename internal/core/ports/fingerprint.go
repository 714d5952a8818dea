package ports

import "go.trai.ch/glean/internal/core/domain"

// Fingerprinter derives stable, collision-resistant cache keys from stage
// inputs. Each method declares the shape of what it hashes; callers pick the
// variant instead of the generator sniffing at runtime.
//
// All methods are deterministic across process restarts and return a
// fixed-length, filename-safe string.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks
type Fingerprinter interface {
	// Table fingerprints every cell value in row/column order, plus the
	// column names. Incidental metadata does not contribute.
	Table(t *domain.Table) string

	// Texts fingerprints an ordered string sequence plus a stage tag, so
	// stages hashing the same corpus get distinct keys.
	Texts(entries []string, tag string) string

	// FileRef fingerprints a filesystem reference: the path string plus
	// the file's modification time when the path names an existing
	// regular file, or the literal string content otherwise. Malformed
	// path-like inputs never cause an error.
	FileRef(path string) string
}
