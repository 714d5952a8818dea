package cache

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports"
	"go.trai.ch/zerr"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644

	entryExt = ".json"
)

var _ ports.ArtifactStore = (*Store)(nil)

// Store implements ports.ArtifactStore with one JSON file per entry, named by
// fingerprint, under one subdirectory per category.
type Store struct {
	root string
}

// NewStore creates the store rooted at dir, creating the root and all
// category directories eagerly.
func NewStore(dir string) (*Store, error) {
	for _, cat := range domain.Categories() {
		if err := os.MkdirAll(filepath.Join(dir, string(cat)), dirPerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "category", string(cat))
		}
	}
	return &Store{root: dir}, nil
}

func (s *Store) entryPath(key string, cat domain.Category) string {
	return filepath.Join(s.root, string(cat), key+entryExt)
}

// Exists reports whether an entry is present for the key in the category.
func (s *Store) Exists(key string, cat domain.Category) bool {
	if !domain.ValidCategory(cat) {
		return false
	}
	_, err := os.Stat(s.entryPath(key, cat))
	return err == nil
}

// Get decodes the entry into dest. A missing entry is false,nil; an entry
// that cannot be decoded, fails its checksum, or was written by a different
// stage is false with an error the caller logs and treats as a miss.
func (s *Store) Get(key string, cat domain.Category, stage domain.StageName, dest any) (bool, error) {
	if !domain.ValidCategory(cat) {
		return false, zerr.With(domain.ErrUnknownCategory, "category", string(cat))
	}

	path := s.entryPath(key, cat)
	//nolint:gosec // Path is constructed from the store root and a hex fingerprint
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, zerr.With(zerr.Wrap(err, domain.ErrEntryCorrupt.Error()), "path", path)
	}

	var env domain.Envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrEntryCorrupt.Error()), "path", path)
	}
	if xxhash.Sum64(env.Payload) != env.Checksum {
		return false, zerr.With(domain.ErrEntryCorrupt, "path", path)
	}
	if env.Stage != stage {
		return false, zerr.With(zerr.With(domain.ErrEntryStageMismatch, "want", string(stage)), "got", string(env.Stage))
	}
	if err := json.Unmarshal(env.Payload, dest); err != nil {
		return false, zerr.With(zerr.Wrap(err, domain.ErrEntryCorrupt.Error()), "path", path)
	}
	return true, nil
}

// Set persists the value under the key, overwriting any prior entry.
func (s *Store) Set(key string, cat domain.Category, stage domain.StageName, value any) error {
	if !domain.ValidCategory(cat) {
		return zerr.With(domain.ErrUnknownCategory, "category", string(cat))
	}

	payload, err := json.Marshal(value)
	if err != nil {
		return zerr.Wrap(err, domain.ErrEntryMarshalFailed.Error())
	}

	env := domain.Envelope{
		Stage:    stage,
		Checksum: xxhash.Sum64(payload),
		Payload:  payload,
	}
	data, err := json.Marshal(env)
	if err != nil {
		return zerr.Wrap(err, domain.ErrEntryMarshalFailed.Error())
	}

	path := s.entryPath(key, cat)
	//nolint:gosec // Path is constructed from the store root and a hex fingerprint
	if err := os.WriteFile(path, data, filePerm); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrEntryWriteFailed.Error()), "path", path)
	}
	return nil
}

// Clear removes all entries in the named categories, or everywhere when none
// is given. Untargeted categories are untouched.
func (s *Store) Clear(cats ...domain.Category) error {
	if len(cats) == 0 {
		cats = domain.Categories()
	}
	for _, cat := range cats {
		if !domain.ValidCategory(cat) {
			return zerr.With(domain.ErrUnknownCategory, "category", string(cat))
		}
		dir := filepath.Join(s.root, string(cat))
		entries, err := os.ReadDir(dir)
		if err != nil {
			return zerr.With(zerr.Wrap(err, "failed to list cache directory"), "category", string(cat))
		}
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), entryExt) {
				continue
			}
			if err := os.Remove(filepath.Join(dir, e.Name())); err != nil {
				return zerr.With(zerr.Wrap(err, "failed to remove cache entry"), "entry", e.Name())
			}
		}
	}
	return nil
}

// SizeReport returns entry counts and byte totals per category.
func (s *Store) SizeReport() (map[domain.Category]domain.Usage, error) {
	report := make(map[domain.Category]domain.Usage, len(domain.Categories()))
	for _, cat := range domain.Categories() {
		dir := filepath.Join(s.root, string(cat))
		entries, err := os.ReadDir(dir)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to list cache directory"), "category", string(cat))
		}
		var usage domain.Usage
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), entryExt) {
				continue
			}
			info, err := e.Info()
			if err != nil {
				continue
			}
			usage.EntryCount++
			usage.TotalBytes += info.Size()
		}
		report[cat] = usage
	}
	return report, nil
}
