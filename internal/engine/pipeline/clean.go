package pipeline

import (
	"fmt"
	"regexp"
	"strings"

	"go.trai.ch/glean/internal/core/domain"
)

var (
	urlPattern     = regexp.MustCompile(`https?://\S+`)
	emailPattern   = regexp.MustCompile(`\S+@\S+`)
	specialPattern = regexp.MustCompile(`[^a-zA-Z0-9\s]`)
)

// CleanData applies a missing-value strategy to the loaded table and
// removes duplicate rows. Without a table it warns and no-ops.
func (p *Pipeline) CleanData(strategy domain.CleanStrategy) *Pipeline {
	if p.table == nil {
		p.deps.Logger.Warn("no table loaded, skipping data cleaning")
		return p
	}
	if !domain.ValidCleanStrategy(strategy) {
		p.deps.Logger.Warn(fmt.Sprintf("unknown clean strategy %q, skipping data cleaning", strategy))
		return p
	}

	before := p.table.Rows()
	switch strategy {
	case domain.CleanDrop:
		p.table = dropMissingRows(p.table)
	case domain.CleanFill:
		fillMissing(p.table)
	case domain.CleanForwardFill:
		forwardFillMissing(p.table)
	}
	p.table = dropDuplicateRows(p.table)

	after := p.table.Rows()
	p.deps.Logger.Info(fmt.Sprintf("cleaned data: %d -> %d rows (removed %d)", before, after, before-after))
	return p
}

// CleanText strips URLs, email addresses and special characters from
// every corpus entry, normalizes whitespace and drops entries that
// become empty.
func (p *Pipeline) CleanText() *Pipeline {
	if len(p.texts) == 0 {
		p.deps.Logger.Warn("no text loaded, skipping text cleaning")
		return p
	}

	before := len(p.texts)
	cleaned := make([]string, 0, before)
	for _, text := range p.texts {
		text = urlPattern.ReplaceAllString(text, "")
		text = emailPattern.ReplaceAllString(text, "")
		text = specialPattern.ReplaceAllString(text, "")
		text = strings.Join(strings.Fields(text), " ")
		if text != "" {
			cleaned = append(cleaned, text)
		}
	}
	p.texts = cleaned
	p.deps.Logger.Info(fmt.Sprintf("cleaned text: %d -> %d entries", before, len(cleaned)))
	return p
}

func dropMissingRows(table *domain.Table) *domain.Table {
	keep := make([]bool, table.Rows())
	for i := range keep {
		keep[i] = true
		for _, col := range table.Columns {
			if col.Values[i].Kind == domain.ValueMissing {
				keep[i] = false
				break
			}
		}
	}
	return filterRows(table, keep)
}

func fillMissing(table *domain.Table) {
	for c := range table.Columns {
		for i, v := range table.Columns[c].Values {
			if v.Kind == domain.ValueMissing {
				table.Columns[c].Values[i] = domain.Number(0)
			}
		}
	}
}

// forwardFillMissing carries the previous value forward. Leading missing
// cells have nothing to carry and stay missing.
func forwardFillMissing(table *domain.Table) {
	for c := range table.Columns {
		previous := domain.Missing()
		for i, v := range table.Columns[c].Values {
			if v.Kind == domain.ValueMissing {
				table.Columns[c].Values[i] = previous
			} else {
				previous = v
			}
		}
	}
}

func dropDuplicateRows(table *domain.Table) *domain.Table {
	seen := map[string]bool{}
	keep := make([]bool, table.Rows())
	for i := range keep {
		var sb strings.Builder
		for _, v := range table.Row(i) {
			sb.WriteByte(byte(v.Kind))
			sb.WriteString(v.Text())
			sb.WriteByte(0)
		}
		fingerprint := sb.String()
		if !seen[fingerprint] {
			seen[fingerprint] = true
			keep[i] = true
		}
	}
	return filterRows(table, keep)
}

func filterRows(table *domain.Table, keep []bool) *domain.Table {
	out := &domain.Table{Columns: make([]domain.Column, len(table.Columns))}
	for c, col := range table.Columns {
		filtered := make([]domain.Value, 0, len(col.Values))
		for i, v := range col.Values {
			if keep[i] {
				filtered = append(filtered, v)
			}
		}
		out.Columns[c] = domain.Column{Name: col.Name, Values: filtered}
	}
	return out
}
