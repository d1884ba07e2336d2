// types package contains the in-memory table shared by the source and projector packages
package types

import "fmt"

// Table is a rectangular grid of string cells with ordered, unique column names.
type Table struct {
	columns []string
	index   map[string]int
	rows    [][]string
}

func NewTable(columns []string, rows [][]string) (*Table, error) {
	index := make(map[string]int, len(columns))
	for i, name := range columns {
		if _, ok := index[name]; ok {
			return nil, fmt.Errorf("duplicate column '%s'", name)
		}
		index[name] = i
	}

	for i, row := range rows {
		if len(row) != len(columns) {
			return nil, fmt.Errorf("row %d has %d values, expected %d", i+1, len(row), len(columns))
		}
	}

	return &Table{
		columns: columns,
		index:   index,
		rows:    rows,
	}, nil
}

// Columns returns a copy of the column names in source order.
func (t *Table) Columns() []string {
	columns := make([]string, len(t.columns))
	copy(columns, t.columns)
	return columns
}

func (t *Table) ColumnIndex(name string) (int, bool) {
	i, ok := t.index[name]
	return i, ok
}

func (t *Table) NumRows() int {
	return len(t.rows)
}

func (t *Table) Cell(row int, column int) string {
	return t.rows[row][column]
}

// ColumnValues returns every cell of a column in row order.
func (t *Table) ColumnValues(column int) []string {
	values := make([]string, len(t.rows))
	for i, row := range t.rows {
		values[i] = row[column]
	}
	return values
}
