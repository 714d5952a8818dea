// Package ports defines the interfaces between the pipeline engine and its
// adapters.
package ports

import "go.trai.ch/glean/internal/core/domain"

// ArtifactStore is a category-partitioned persistent key/value store for
// memoized stage results. Keys are fingerprints; one value per
// (category, fingerprint) cell, last write wins.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// Exists reports whether an entry is present.
	Exists(key string, category domain.Category) bool

	// Get decodes the entry into dest. It returns false,nil on a plain
	// miss and false with a non-nil error when the entry exists but is
	// unreadable or was written by a different stage; callers treat both
	// as misses, logging the latter.
	Get(key string, category domain.Category, stage domain.StageName, dest any) (bool, error)

	// Set persists the value, overwriting any prior entry for the key.
	// Failures are reported but must be treated as non-fatal by callers;
	// caching is an optimization, not a correctness requirement.
	Set(key string, category domain.Category, stage domain.StageName, value any) error

	// Clear removes all entries in the named categories, or in every
	// category when none is given. Untargeted categories are untouched.
	Clear(categories ...domain.Category) error

	// SizeReport returns entry counts and byte totals per category.
	// Introspection only, no side effects.
	SizeReport() (map[domain.Category]domain.Usage, error)
}
