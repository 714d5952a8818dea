// Package cache implements the content-addressed artifact store and the
// fingerprint generator that keys it.
package cache

import (
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
	"hash"
	"os"
	"strconv"

	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter derives sha256-based cache keys from stage inputs. Stateless
// and safe for reuse.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// Cell kind markers keep a missing cell distinct from an empty string and a
// number distinct from its decimal rendering.
const (
	markMissing = 'm'
	markNumber  = 'n'
	markString  = 's'
)

// Table fingerprints the column names and every cell value in row/column
// order. Two tables with identical cells in identical positions fingerprint
// identically; any cell change produces a different digest.
func (f *Fingerprinter) Table(t *domain.Table) string {
	h := sha256.New()

	for _, col := range t.Columns {
		_, _ = h.Write([]byte(col.Name))
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0}) // section separator

	rows := t.Rows()
	for r := 0; r < rows; r++ {
		for c := range t.Columns {
			writeCell(h, t.Columns[c].Values[r])
		}
		_, _ = h.Write([]byte{0})
	}

	return hex.EncodeToString(h.Sum(nil))
}

func writeCell(h hash.Hash, v domain.Value) {
	switch v.Kind {
	case domain.ValueNumber:
		_, _ = h.Write([]byte{markNumber})
		_, _ = h.Write([]byte(strconv.FormatFloat(v.Num, 'g', -1, 64)))
	case domain.ValueString:
		_, _ = h.Write([]byte{markString})
		_, _ = h.Write([]byte(v.Str))
	default:
		_, _ = h.Write([]byte{markMissing})
	}
	_, _ = h.Write([]byte{0})
}

// Texts fingerprints the exact contents and order of the sequence plus the
// stage tag. Reordering entries changes the digest.
func (f *Fingerprinter) Texts(entries []string, tag string) string {
	h := sha256.New()

	for _, e := range entries {
		_, _ = h.Write([]byte(e))
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte{0})
	_, _ = h.Write([]byte(tag))

	return hex.EncodeToString(h.Sum(nil))
}

// FileRef fingerprints a filesystem reference. When the path names an
// existing regular file the digest covers the path string and the file's
// mtime, so editing the file invalidates the old key. Anything else,
// including malformed path-like strings, is hashed as literal content.
func (f *Fingerprinter) FileRef(path string) string {
	h := sha256.New()
	_, _ = h.Write([]byte(path))

	if info, err := os.Stat(path); err == nil && info.Mode().IsRegular() {
		_, _ = h.Write([]byte{0})
		var mtime [8]byte
		binary.LittleEndian.PutUint64(mtime[:], uint64(info.ModTime().UnixNano()))
		_, _ = h.Write(mtime[:])
	}

	return hex.EncodeToString(h.Sum(nil))
}
