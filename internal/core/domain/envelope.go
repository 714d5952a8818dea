package domain

import "encoding/json"

// Category is a named partition of the artifact store.
type Category string

const (
	// CategoryRawData holds loaded table snapshots.
	CategoryRawData Category = "raw_data"
	// CategoryAnalysis holds statistical and correlation results.
	CategoryAnalysis Category = "analysis"
	// CategoryNLP holds sentiment, entity, keyword, topic and complexity results.
	CategoryNLP Category = "nlp"
)

// Categories returns the fixed category set, created eagerly at store init.
func Categories() []Category {
	return []Category{CategoryRawData, CategoryAnalysis, CategoryNLP}
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c Category) bool {
	for _, known := range Categories() {
		if c == known {
			return true
		}
	}
	return false
}

// Envelope is the self-describing on-disk record for a cached value. The
// stage tag lets a reader detect entries written for a different result
// shape, and the checksum lets it detect payload corruption; both are
// treated as cache misses rather than deserialized into the wrong type.
type Envelope struct {
	Stage    StageName       `json:"stage"`
	Checksum uint64          `json:"checksum"`
	Payload  json.RawMessage `json:"payload"`
}

// Usage reports the footprint of one cache category.
type Usage struct {
	EntryCount int   `json:"entry_count"`
	TotalBytes int64 `json:"total_bytes"`
}
