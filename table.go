package housing

import (
	"fmt"
	"strings"
)

// Table is an ordered set of equal-length columns. Every method that changes a table
// returns a new one; the receiver is left as it was.
type Table struct {
	name string
	cols []*Column
}

// Row is one row of a Table keyed by column name.
type Row map[string]any

func NewTable(name string, cols ...*Column) (*Table, error) {
	t := &Table{name: name}
	for _, col := range cols {
		if col == nil {
			return nil, fmt.Errorf("nil column in NewTable")
		}

		if has(col.Name(), t.ColumnNames()) {
			return nil, fmt.Errorf("duplicate column name: %s", col.Name())
		}

		if len(t.cols) > 0 && col.Len() != t.RowCount() {
			return nil, fmt.Errorf("length mismatch: table - %d, column %s - %d", t.RowCount(), col.Name(), col.Len())
		}

		t.cols = append(t.cols, col)
	}

	return t, nil
}

func (t *Table) Name() string {
	return t.name
}

// Named returns the table under a new name.
func (t *Table) Named(name string) *Table {
	return &Table{name: name, cols: t.cols}
}

func (t *Table) RowCount() int {
	if len(t.cols) == 0 {
		return 0
	}

	return t.cols[0].Len()
}

func (t *Table) ColumnCount() int {
	return len(t.cols)
}

func (t *Table) ColumnNames() []string {
	var names []string
	for _, col := range t.cols {
		names = append(names, col.Name())
	}

	return names
}

func (t *Table) Column(colName string) (*Column, error) {
	for _, col := range t.cols {
		if col.Name() == colName {
			return col, nil
		}
	}

	return nil, fmt.Errorf("column %s not found in %s: %w", colName, t.name, ErrMissingColumn)
}

func (t *Table) HasColumn(colName string) bool {
	return has(colName, t.ColumnNames())
}

// FindColumn returns the first column name, in table order, accepted by match.
func (t *Table) FindColumn(match func(name string) bool) (string, bool) {
	for _, col := range t.cols {
		if match(col.Name()) {
			return col.Name(), true
		}
	}

	return "", false
}

// Row returns the cells of row "row".
func (t *Table) Row(row int) Row {
	r := make(Row, len(t.cols))
	for _, col := range t.cols {
		r[col.Name()] = col.Element(row)
	}

	return r
}

// Rename renames columns by the from->to mapping. Names not present are ignored.
func (t *Table) Rename(renames map[string]string) (*Table, error) {
	var cols []*Column
	for _, col := range t.cols {
		if to, ok := renames[col.Name()]; ok {
			cols = append(cols, col.Rename(to))
			continue
		}

		cols = append(cols, col)
	}

	return NewTable(t.name, cols...)
}

// DropColumns removes the named columns. Names not present are ignored.
func (t *Table) DropColumns(colNames ...string) *Table {
	out := &Table{name: t.name}
	for _, col := range t.cols {
		if has(col.Name(), colNames) {
			continue
		}

		out.cols = append(out.cols, col)
	}

	return out
}

// DropColumnsFold is DropColumns with case-insensitive matching.
func (t *Table) DropColumnsFold(colNames ...string) *Table {
	var drop []string
	for _, col := range t.cols {
		for _, nm := range colNames {
			if strings.EqualFold(col.Name(), nm) {
				drop = append(drop, col.Name())
			}
		}
	}

	return t.DropColumns(drop...)
}

// KeepColumns returns a table with only the named columns, in the order given.
func (t *Table) KeepColumns(colNames ...string) (*Table, error) {
	var cols []*Column
	for _, nm := range colNames {
		var (
			col *Column
			e   error
		)
		if col, e = t.Column(nm); e != nil {
			return nil, e
		}

		cols = append(cols, col)
	}

	return NewTable(t.name, cols...)
}

func (t *Table) AppendColumn(col *Column) (*Table, error) {
	return NewTable(t.name, append(append([]*Column{}, t.cols...), col)...)
}

// ReplaceColumn swaps in col for the column of the same name, appending it if there is none.
func (t *Table) ReplaceColumn(col *Column) (*Table, error) {
	if !t.HasColumn(col.Name()) {
		return t.AppendColumn(col)
	}

	var cols []*Column
	for _, c := range t.cols {
		if c.Name() == col.Name() {
			cols = append(cols, col)
			continue
		}

		cols = append(cols, c)
	}

	return NewTable(t.name, cols...)
}

// Take returns the rows with the given indices, in that order.
func (t *Table) Take(rows []int) *Table {
	out := &Table{name: t.name}
	for _, col := range t.cols {
		out.cols = append(out.cols, col.take(rows))
	}

	return out
}

// Filter keeps the rows for which keep is true.
func (t *Table) Filter(keep func(r Row) bool) *Table {
	var rows []int
	for row := 0; row < t.RowCount(); row++ {
		if keep(t.Row(row)) {
			rows = append(rows, row)
		}
	}

	return t.Take(rows)
}

// DropDuplicates keeps the first row for each distinct combination of the key columns.
func (t *Table) DropDuplicates(keys ...string) (*Table, error) {
	var (
		keyCols []*Column
		e       error
	)
	if keyCols, e = t.columns(keys...); e != nil {
		return nil, e
	}

	seen := make(map[string]bool)
	var rows []int
	for row := 0; row < t.RowCount(); row++ {
		k := rowKey(keyCols, row)
		if seen[k] {
			continue
		}

		seen[k] = true
		rows = append(rows, row)
	}

	return t.Take(rows), nil
}

func (t *Table) columns(colNames ...string) ([]*Column, error) {
	if len(colNames) == 0 {
		return nil, fmt.Errorf("no key columns given")
	}

	var cols []*Column
	for _, nm := range colNames {
		var (
			col *Column
			e   error
		)
		if col, e = t.Column(nm); e != nil {
			return nil, e
		}

		cols = append(cols, col)
	}

	return cols, nil
}

// rowKey renders the key columns of row as one comparable string
func rowKey(keyCols []*Column, row int) string {
	const (
		sep    = "\x00"
		nilKey = "\x01"
	)

	var parts []string
	for _, col := range keyCols {
		x := col.Element(row)
		if x == nil {
			parts = append(parts, nilKey)
			continue
		}

		parts = append(parts, fmt.Sprintf("%v", x))
	}

	return strings.Join(parts, sep)
}
