// Package domain contains the core types for the analytics pipeline.
package domain

import (
	"encoding/json"
	"strconv"

	"go.trai.ch/zerr"
)

// ValueKind discriminates the three cell types a table can hold.
type ValueKind uint8

const (
	// ValueMissing marks an absent cell.
	ValueMissing ValueKind = iota
	// ValueNumber marks a numeric cell.
	ValueNumber
	// ValueString marks a text cell.
	ValueString
)

// Value is a single table cell: a number, a string, or missing.
type Value struct {
	Kind ValueKind
	Num  float64
	Str  string
}

// Number creates a numeric cell.
func Number(v float64) Value { return Value{Kind: ValueNumber, Num: v} }

// String creates a text cell.
func String(s string) Value { return Value{Kind: ValueString, Str: s} }

// Missing creates an absent cell.
func Missing() Value { return Value{Kind: ValueMissing} }

// Equal reports whether two cells hold the same kind and content.
func (v Value) Equal(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	switch v.Kind {
	case ValueNumber:
		return v.Num == o.Num
	case ValueString:
		return v.Str == o.Str
	default:
		return true
	}
}

// Text renders the cell for display and export. Missing cells render empty.
func (v Value) Text() string {
	switch v.Kind {
	case ValueNumber:
		return strconv.FormatFloat(v.Num, 'g', -1, 64)
	case ValueString:
		return v.Str
	default:
		return ""
	}
}

// MarshalJSON encodes missing as null, numbers as numbers, strings as strings.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueNumber:
		return json.Marshal(v.Num)
	case ValueString:
		return json.Marshal(v.Str)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*v = Missing()
		return nil
	}
	var num float64
	if err := json.Unmarshal(data, &num); err == nil {
		*v = Number(num)
		return nil
	}
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return zerr.Wrap(err, "unsupported cell value")
	}
	*v = String(str)
	return nil
}

// Column is a named, ordered sequence of cells.
type Column struct {
	Name   string  `json:"name"`
	Values []Value `json:"values"`
}

// IsNumeric reports whether the column holds at least one number and no
// strings. Missing cells do not disqualify a column.
func (c *Column) IsNumeric() bool {
	hasNumber := false
	for _, v := range c.Values {
		switch v.Kind {
		case ValueString:
			return false
		case ValueNumber:
			hasNumber = true
		}
	}
	return hasNumber
}

// Numbers returns the column's non-missing numeric values in order.
func (c *Column) Numbers() []float64 {
	out := make([]float64, 0, len(c.Values))
	for _, v := range c.Values {
		if v.Kind == ValueNumber {
			out = append(out, v.Num)
		}
	}
	return out
}

// Strings returns the column's non-missing values rendered as text, in order.
func (c *Column) Strings() []string {
	out := make([]string, 0, len(c.Values))
	for _, v := range c.Values {
		if v.Kind != ValueMissing {
			out = append(out, v.Text())
		}
	}
	return out
}

// Table is an ordered collection of named columns of equal length.
type Table struct {
	Columns []Column `json:"columns"`
}

// Rows returns the number of rows. All columns share the same length.
func (t *Table) Rows() int {
	if len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Values)
}

// Column looks up a column by name.
func (t *Table) Column(name string) (*Column, bool) {
	for i := range t.Columns {
		if t.Columns[i].Name == name {
			return &t.Columns[i], true
		}
	}
	return nil, false
}

// NumericColumns returns the table's numeric columns in declaration order.
func (t *Table) NumericColumns() []*Column {
	var out []*Column
	for i := range t.Columns {
		if t.Columns[i].IsNumeric() {
			out = append(out, &t.Columns[i])
		}
	}
	return out
}

// Row returns the cells of row i in column order.
func (t *Table) Row(i int) []Value {
	row := make([]Value, len(t.Columns))
	for c := range t.Columns {
		row[c] = t.Columns[c].Values[i]
	}
	return row
}
