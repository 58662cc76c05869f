package table

import (
	"gocolumns/domain/core"
)

// ColumnType is the classification tag carried by every column
type ColumnType string

const (
	Quantitative ColumnType = "quantitative"
	Categorical  ColumnType = "categorical"
)

// Valid reports whether t is one of the known tags
func (t ColumnType) Valid() bool {
	return t == Quantitative || t == Categorical
}

// Value is a single cell. Number is only meaningful when Numeric is true.
type Value struct {
	Text    string  `json:"text"`
	Number  float64 `json:"number,omitempty"`
	Numeric bool    `json:"numeric"`
	Missing bool    `json:"missing"`
}

// MissingValue returns a cell with no recorded value
func MissingValue() Value {
	return Value{Missing: true}
}

// TextValue returns a non-numeric cell
func TextValue(s string) Value {
	return Value{Text: s}
}

// NumberValue returns a numeric cell; text keeps the source spelling
func NumberValue(text string, n float64) Value {
	return Value{Text: text, Number: n, Numeric: true}
}

// Column is a named, tagged sequence of cells, one per row
type Column struct {
	Name   string     `json:"name"`
	Type   ColumnType `json:"type"`
	Values []Value    `json:"values"`
}

// MissingCount returns how many cells have no recorded value
func (c *Column) MissingCount() int {
	n := 0
	for _, v := range c.Values {
		if v.Missing {
			n++
		}
	}
	return n
}

// HasMissing reports whether any cell has no recorded value
func (c *Column) HasMissing() bool {
	for _, v := range c.Values {
		if v.Missing {
			return true
		}
	}
	return false
}

// Floats returns the cells as float64, with missing or non-numeric cells as NaN
func (c *Column) Floats() []float64 {
	out := make([]float64, len(c.Values))
	for i, v := range c.Values {
		if v.Missing || !v.Numeric {
			out[i] = nan
			continue
		}
		out[i] = v.Number
	}
	return out
}

func (c Column) clone() Column {
	values := make([]Value, len(c.Values))
	copy(values, c.Values)
	return Column{Name: c.Name, Type: c.Type, Values: values}
}

// ColumnSet is an ordered projection of a table's columns. It owns its data:
// mutating a ColumnSet never affects the table it came from.
type ColumnSet struct {
	IndexName string        `json:"index_name"`
	Keys      []core.RowKey `json:"keys"`
	Columns   []Column      `json:"columns"`
}

// Names returns the column names in order, repeats included
func (cs *ColumnSet) Names() []string {
	names := make([]string, len(cs.Columns))
	for i, c := range cs.Columns {
		names[i] = c.Name
	}
	return names
}

// Len returns the number of rows
func (cs *ColumnSet) Len() int {
	return len(cs.Keys)
}

// Column returns the first column with the given name
func (cs *ColumnSet) Column(name string) (*Column, bool) {
	for i := range cs.Columns {
		if cs.Columns[i].Name == name {
			return &cs.Columns[i], true
		}
	}
	return nil, false
}

// NullReport lists the columns holding at least one missing cell, split by tag
type NullReport struct {
	Categorical  []string `json:"categorical"`
	Quantitative []string `json:"quantitative"`
}

// All returns the categorical names followed by the quantitative names
func (r NullReport) All() []string {
	all := make([]string, 0, len(r.Categorical)+len(r.Quantitative))
	all = append(all, r.Categorical...)
	return append(all, r.Quantitative...)
}

// NullIndex maps a column name to the row keys where that column is missing
type NullIndex map[string][]core.RowKey
