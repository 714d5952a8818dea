package cache_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/glean/internal/adapters/cache"
	"go.trai.ch/glean/internal/core/domain"
)

func sampleTable() *domain.Table {
	return &domain.Table{Columns: []domain.Column{
		{Name: "product", Values: []domain.Value{domain.String("Laptop"), domain.String("Phone")}},
		{Name: "rating", Values: []domain.Value{domain.Number(4.5), domain.Number(3.8)}},
	}}
}

func TestFingerprinter_Table_Deterministic(t *testing.T) {
	f := cache.NewFingerprinter()

	a := f.Table(sampleTable())
	b := f.Table(sampleTable())

	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestFingerprinter_Table_SingleCellChange(t *testing.T) {
	f := cache.NewFingerprinter()

	base := sampleTable()
	changed := sampleTable()
	changed.Columns[1].Values[1] = domain.Number(3.9)

	assert.NotEqual(t, f.Table(base), f.Table(changed))
}

func TestFingerprinter_Table_MissingVsEmptyString(t *testing.T) {
	f := cache.NewFingerprinter()

	withMissing := &domain.Table{Columns: []domain.Column{
		{Name: "c", Values: []domain.Value{domain.Missing()}},
	}}
	withEmpty := &domain.Table{Columns: []domain.Column{
		{Name: "c", Values: []domain.Value{domain.String("")}},
	}}

	assert.NotEqual(t, f.Table(withMissing), f.Table(withEmpty))
}

func TestFingerprinter_Texts(t *testing.T) {
	f := cache.NewFingerprinter()

	entries := []string{"first review", "second review", "third review"}

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, f.Texts(entries, ""), f.Texts(entries, ""))
	})

	t.Run("order sensitive", func(t *testing.T) {
		reordered := []string{"second review", "first review", "third review"}
		assert.NotEqual(t, f.Texts(entries, ""), f.Texts(reordered, ""))
	})

	t.Run("entry change", func(t *testing.T) {
		edited := []string{"first review", "second review", "third review!"}
		assert.NotEqual(t, f.Texts(entries, ""), f.Texts(edited, ""))
	})

	t.Run("tag disambiguates stages", func(t *testing.T) {
		assert.NotEqual(t, f.Texts(entries, "_sentiment"), f.Texts(entries, "_entities"))
	})
}

func TestFingerprinter_FileRef(t *testing.T) {
	f := cache.NewFingerprinter()

	t.Run("existing file includes mtime", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "data.csv")
		require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

		before := f.FileRef(path)
		assert.Equal(t, before, f.FileRef(path))

		// Editing the file updates mtime and must invalidate the key.
		later := time.Now().Add(2 * time.Second)
		require.NoError(t, os.Chtimes(path, later, later))
		assert.NotEqual(t, before, f.FileRef(path))
	})

	t.Run("nonexistent path hashes literal content", func(t *testing.T) {
		a := f.FileRef("no/such/file.csv")
		b := f.FileRef("no/such/file.csv")
		assert.Equal(t, a, b)
		assert.NotEqual(t, a, f.FileRef("no/such/other.csv"))
	})

	t.Run("malformed path-likes never error", func(t *testing.T) {
		long := strings.Repeat("x", 5000)
		withNul := "weird\x00name"

		assert.Len(t, f.FileRef(long), 64)
		assert.Len(t, f.FileRef(withNul), 64)
		assert.NotEqual(t, f.FileRef(long), f.FileRef(withNul))
	})
}
