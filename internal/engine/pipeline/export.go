package pipeline

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.trai.ch/glean/internal/core/domain"
	"go.trai.ch/zerr"
)

// exportBasename names the export file, the extension follows the format.
const exportBasename = "glean_export"

// Export writes the loaded table to dir in the given format (csv, json or
// xlsx). When the sentiment stage has run and its entries pair up with
// the table rows, per-row polarity, subjectivity, category and word count
// columns are appended. Returns the written file path.
func (p *Pipeline) Export(format, dir string) (string, error) {
	if p.table == nil {
		return "", domain.ErrNoTableLoaded
	}
	format = strings.ToLower(format)

	table := p.annotatedTable()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", zerr.Wrap(err, domain.ErrExportFailed.Error())
	}
	path := filepath.Join(dir, exportBasename+"."+format)

	var err error
	switch format {
	case "csv":
		err = exportCSV(table, path)
	case "json":
		err = exportJSON(table, path)
	case "xlsx":
		err = exportExcel(table, path)
	default:
		return "", zerr.With(domain.ErrInvalidExportFormat, "format", format)
	}
	if err != nil {
		return "", err
	}

	p.deps.Logger.Info(fmt.Sprintf("exported results to %s", path))
	return path, nil
}

// annotatedTable returns the table extended with sentiment and word count
// columns when they pair up with the rows, or the table as is.
func (p *Pipeline) annotatedTable() *domain.Table {
	sentiment, ok := resultOf[domain.SentimentResult](p, domain.StageSentiment)
	if !ok || len(sentiment.Entries) != p.table.Rows() || len(p.texts) != p.table.Rows() {
		if ok {
			p.deps.Logger.Warn("sentiment entries do not pair with table rows, exporting without annotations")
		}
		return p.table
	}

	rows := p.table.Rows()
	polarity := domain.Column{Name: "polarity", Values: make([]domain.Value, rows)}
	subjectivity := domain.Column{Name: "subjectivity", Values: make([]domain.Value, rows)}
	category := domain.Column{Name: "sentiment", Values: make([]domain.Value, rows)}
	wordCount := domain.Column{Name: "word_count", Values: make([]domain.Value, rows)}
	for i, entry := range sentiment.Entries {
		polarity.Values[i] = domain.Number(entry.Polarity)
		subjectivity.Values[i] = domain.Number(entry.Subjectivity)
		category.Values[i] = domain.String(string(entry.Category))
		wordCount.Values[i] = domain.Number(float64(len(strings.Fields(p.texts[i]))))
	}

	annotated := &domain.Table{Columns: make([]domain.Column, 0, len(p.table.Columns)+4)}
	annotated.Columns = append(annotated.Columns, p.table.Columns...)
	annotated.Columns = append(annotated.Columns, polarity, subjectivity, category, wordCount)
	return annotated
}

func exportCSV(table *domain.Table, path string) error {
	f, err := os.Create(path) //nolint:gosec // path is derived from user config
	if err != nil {
		return zerr.Wrap(err, domain.ErrExportFailed.Error())
	}
	defer f.Close() //nolint:errcheck // Best effort close in defer

	w := csv.NewWriter(f)
	header := make([]string, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col.Name
	}
	if err := w.Write(header); err != nil {
		return zerr.Wrap(err, domain.ErrExportFailed.Error())
	}
	for i := 0; i < table.Rows(); i++ {
		record := make([]string, len(table.Columns))
		for c, v := range table.Row(i) {
			record[c] = v.Text()
		}
		if err := w.Write(record); err != nil {
			return zerr.Wrap(err, domain.ErrExportFailed.Error())
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return zerr.Wrap(err, domain.ErrExportFailed.Error())
	}
	return nil
}

// exportJSON writes an array of flat objects, keys in column order.
func exportJSON(table *domain.Table, path string) error {
	var buf bytes.Buffer
	buf.WriteString("[\n")
	for i := 0; i < table.Rows(); i++ {
		if i > 0 {
			buf.WriteString(",\n")
		}
		buf.WriteString("  {")
		for c, v := range table.Row(i) {
			if c > 0 {
				buf.WriteString(", ")
			}
			key, err := json.Marshal(table.Columns[c].Name)
			if err != nil {
				return zerr.Wrap(err, domain.ErrExportFailed.Error())
			}
			value, err := json.Marshal(v)
			if err != nil {
				return zerr.Wrap(err, domain.ErrExportFailed.Error())
			}
			buf.Write(key)
			buf.WriteString(": ")
			buf.Write(value)
		}
		buf.WriteString("}")
	}
	buf.WriteString("\n]\n")

	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return zerr.Wrap(err, domain.ErrExportFailed.Error())
	}
	return nil
}

func exportExcel(table *domain.Table, path string) error {
	wb := excelize.NewFile()
	defer wb.Close() //nolint:errcheck // Best effort close in defer
	sheet := wb.GetSheetName(0)

	header := make([]any, len(table.Columns))
	for i, col := range table.Columns {
		header[i] = col.Name
	}
	if err := setRow(wb, sheet, 1, header); err != nil {
		return err
	}
	for i := 0; i < table.Rows(); i++ {
		row := make([]any, len(table.Columns))
		for c, v := range table.Row(i) {
			switch v.Kind {
			case domain.ValueNumber:
				row[c] = v.Num
			case domain.ValueString:
				row[c] = v.Str
			default:
				row[c] = nil
			}
		}
		if err := setRow(wb, sheet, i+2, row); err != nil {
			return err
		}
	}

	if err := wb.SaveAs(path); err != nil {
		return zerr.Wrap(err, domain.ErrExportFailed.Error())
	}
	return nil
}

func setRow(wb *excelize.File, sheet string, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return zerr.Wrap(err, domain.ErrExportFailed.Error())
	}
	if err := wb.SetSheetRow(sheet, cell, &values); err != nil {
		return zerr.Wrap(err, domain.ErrExportFailed.Error())
	}
	return nil
}
