// Package tabular parses CSV, JSON and Excel files into tables.
package tabular

import (
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/glean/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.TableLoader = (*Loader)(nil)

// Loader implements ports.TableLoader for .csv, .json, .xlsx and .xls files.
type Loader struct{}

// NewLoader creates a new Loader.
func NewLoader() *Loader {
	return &Loader{}
}

// Load reads the file at path, dispatching on the extension.
func (l *Loader) Load(path string) (*domain.Table, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, zerr.With(domain.ErrFileNotFound, "path", path)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		return l.loadCSV(path)
	case ".json":
		return l.loadJSON(path)
	case ".xlsx", ".xls":
		return l.loadExcel(path)
	default:
		return nil, zerr.With(domain.ErrUnsupportedFormat, "extension", filepath.Ext(path))
	}
}

// parseCell types a raw text cell: empty is missing, parseable numbers are
// numeric, everything else stays text.
func parseCell(raw string) domain.Value {
	if raw == "" {
		return domain.Missing()
	}
	if num, err := strconv.ParseFloat(raw, 64); err == nil {
		return domain.Number(num)
	}
	return domain.String(raw)
}

// fromRows builds a table from a header row and data rows. Short rows are
// padded with missing cells.
func fromRows(header []string, rows [][]string) *domain.Table {
	table := &domain.Table{Columns: make([]domain.Column, len(header))}
	for i, name := range header {
		table.Columns[i] = domain.Column{
			Name:   name,
			Values: make([]domain.Value, 0, len(rows)),
		}
	}
	for _, row := range rows {
		for c := range header {
			if c < len(row) {
				table.Columns[c].Values = append(table.Columns[c].Values, parseCell(row[c]))
			} else {
				table.Columns[c].Values = append(table.Columns[c].Values, domain.Missing())
			}
		}
	}
	return table
}

func (l *Loader) loadCSV(path string) (*domain.Table, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse csv"), "path", path)
	}
	if len(records) == 0 {
		return &domain.Table{}, nil
	}
	return fromRows(records[0], records[1:]), nil
}

// loadJSON reads an array of flat objects. The token stream is walked
// directly so column order follows first key appearance, which keeps
// fingerprints stable across loads.
func (l *Loader) loadJSON(path string) (*domain.Table, error) {
	f, err := os.Open(path) //nolint:gosec // path is provided by the user
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	dec := json.NewDecoder(f)
	dec.UseNumber()

	if err := expectDelim(dec, '['); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse json"), "path", path)
	}

	table := &domain.Table{}
	index := map[string]int{}
	row := 0
	for dec.More() {
		if err := l.readObject(dec, table, index, row); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to parse json"), "path", path)
		}
		row++
		padColumns(table, row)
	}
	return table, nil
}

func (l *Loader) readObject(dec *json.Decoder, table *domain.Table, index map[string]int, row int) error {
	if err := expectDelim(dec, '{'); err != nil {
		return err
	}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := tok.(string)
		if !ok {
			return zerr.New("expected object key")
		}
		value, err := readScalar(dec)
		if err != nil {
			return err
		}

		col, seen := index[key]
		if !seen {
			col = len(table.Columns)
			index[key] = col
			// Backfill earlier rows of a column first seen mid-file.
			table.Columns = append(table.Columns, domain.Column{
				Name:   key,
				Values: make([]domain.Value, row),
			})
		}
		table.Columns[col].Values = append(table.Columns[col].Values, value)
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return err
	}
	return nil
}

func expectDelim(dec *json.Decoder, want rune) error {
	tok, err := dec.Token()
	if err != nil {
		return err
	}
	delim, ok := tok.(json.Delim)
	if !ok || rune(delim) != want {
		return zerr.With(zerr.New("unexpected json token"), "want", string(want))
	}
	return nil
}

func readScalar(dec *json.Decoder) (domain.Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return domain.Value{}, err
	}
	switch v := tok.(type) {
	case nil:
		return domain.Missing(), nil
	case json.Number:
		num, err := v.Float64()
		if err != nil {
			return domain.String(v.String()), nil
		}
		return domain.Number(num), nil
	case string:
		return domain.String(v), nil
	case bool:
		return domain.String(strconv.FormatBool(v)), nil
	default:
		return domain.Value{}, zerr.New("nested values are not supported in tabular json")
	}
}

// padColumns fills missing cells for columns absent from the current row.
func padColumns(table *domain.Table, rows int) {
	for c := range table.Columns {
		for len(table.Columns[c].Values) < rows {
			table.Columns[c].Values = append(table.Columns[c].Values, domain.Missing())
		}
	}
}

func (l *Loader) loadExcel(path string) (*domain.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to open workbook"), "path", path)
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return &domain.Table{}, nil
	}
	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to read sheet"), "sheet", sheets[0])
	}
	if len(rows) == 0 {
		return &domain.Table{}, nil
	}
	return fromRows(rows[0], rows[1:]), nil
}
