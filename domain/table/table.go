package table

import (
	"fmt"
	"math"

	"gocolumns/domain/core"
)

var nan = math.NaN()

// Table is an in-memory dataset: ordered, tagged columns indexed by a row key.
// The index column is held as the row keys and is not one of the columns.
// A Table is not safe for concurrent mutation.
type Table struct {
	id        core.ID
	indexName string
	keys      []core.RowKey
	columns   []*Column
	byName    map[string]int
}

// ID identifies this table instance in logs
func (t *Table) ID() core.ID { return t.id }

// IndexName returns the name of the row-key column
func (t *Table) IndexName() string { return t.indexName }

// Len returns the number of rows
func (t *Table) Len() int { return len(t.keys) }

// Width returns the number of regular columns
func (t *Table) Width() int { return len(t.columns) }

// Keys returns a copy of the row keys in row order
func (t *Table) Keys() []core.RowKey {
	keys := make([]core.RowKey, len(t.keys))
	copy(keys, t.keys)
	return keys
}

// Names returns the column names in table order
func (t *Table) Names() []string {
	names := make([]string, len(t.columns))
	for i, c := range t.columns {
		names[i] = c.Name
	}
	return names
}

// Type returns the current tag of a column
func (t *Table) Type(name string) (ColumnType, error) {
	c, err := t.lookup(name)
	if err != nil {
		return "", err
	}
	return c.Type, nil
}

// Column returns a copy of the named column
func (t *Table) Column(name string) (Column, error) {
	c, err := t.lookup(name)
	if err != nil {
		return Column{}, err
	}
	return c.clone(), nil
}

func (t *Table) lookup(name string) (*Column, error) {
	i, ok := t.byName[name]
	if !ok {
		return nil, core.NewUnknownColumnError(name, "")
	}
	return t.columns[i], nil
}

// project copies the given column positions into a new ColumnSet
func (t *Table) project(positions []int) *ColumnSet {
	cs := &ColumnSet{
		IndexName: t.indexName,
		Keys:      t.Keys(),
		Columns:   make([]Column, 0, len(positions)),
	}
	for _, p := range positions {
		cs.Columns = append(cs.Columns, t.columns[p].clone())
	}
	return cs
}

// Builder assembles a Table column by column with explicitly declared tags.
type Builder struct {
	indexName string
	keys      []core.RowKey
	columns   []*Column
	byName    map[string]int
	err       error
}

// NewBuilder starts a table with the given row-key column and keys
func NewBuilder(indexName string, keys []core.RowKey) *Builder {
	b := &Builder{
		indexName: indexName,
		keys:      make([]core.RowKey, len(keys)),
		byName:    make(map[string]int),
	}
	copy(b.keys, keys)
	return b
}

// Add appends a column. The first error is kept and reported by Build.
func (b *Builder) Add(name string, typ ColumnType, values []Value) *Builder {
	if b.err != nil {
		return b
	}
	switch {
	case !typ.Valid():
		b.err = fmt.Errorf("column %q: invalid column type %q", name, typ)
	case name == b.indexName:
		b.err = fmt.Errorf("column %q: collides with the index column", name)
	case len(values) != len(b.keys):
		b.err = fmt.Errorf("column %q: has %d values, table has %d rows", name, len(values), len(b.keys))
	default:
		if _, dup := b.byName[name]; dup {
			b.err = fmt.Errorf("column %q: duplicate column name", name)
			return b
		}
		vals := make([]Value, len(values))
		copy(vals, values)
		b.byName[name] = len(b.columns)
		b.columns = append(b.columns, &Column{Name: name, Type: typ, Values: vals})
	}
	return b
}

// Build returns the assembled table
func (b *Builder) Build() (*Table, error) {
	if b.err != nil {
		return nil, b.err
	}
	return &Table{
		id:        core.NewID(),
		indexName: b.indexName,
		keys:      b.keys,
		columns:   b.columns,
		byName:    b.byName,
	}, nil
}
