package housing

import "fmt"

// Column is a named, immutable slice of cells. A nil cell is a missing value.
type Column struct {
	name string
	data []any
}

// ColOpt configures a Column at construction.
type ColOpt func(c *Column) error

// ColName sets the name of the column.
func ColName(name string) ColOpt {
	return func(c *Column) error {
		if c == nil {
			return fmt.Errorf("nil column to ColName")
		}

		if name == "" {
			return fmt.Errorf("empty column name")
		}

		c.name = name

		return nil
	}
}

// NewColumn makes a column from data. The slice is copied.
func NewColumn(data []any, ops ...ColOpt) (*Column, error) {
	c := &Column{data: append([]any{}, data...)}

	for _, op := range ops {
		if e := op(c); e != nil {
			return nil, e
		}
	}

	if c.name == "" {
		return nil, fmt.Errorf("column must be named")
	}

	return c, nil
}

// Constant makes a column of length n with every cell set to val.
func Constant(name string, val any, n int) *Column {
	data := make([]any, n)
	for ind := range data {
		data[ind] = val
	}

	return &Column{name: name, data: data}
}

func (c *Column) Name() string {
	return c.name
}

func (c *Column) Len() int {
	return len(c.data)
}

func (c *Column) Element(row int) any {
	return c.data[row]
}

// Data returns a copy of the cells.
func (c *Column) Data() []any {
	return append([]any{}, c.data...)
}

// DataType is the type shared by all non-nil cells, DTunknown if they are mixed or all nil.
func (c *Column) DataType() DataTypes {
	dt := DTunknown
	for _, x := range c.data {
		if x == nil {
			continue
		}

		xdt := WhatAmI(x)
		if dt == DTunknown {
			dt = xdt
			continue
		}

		if xdt != dt {
			return DTunknown
		}
	}

	return dt
}

func (c *Column) NullCount() int {
	n := 0
	for _, x := range c.data {
		if x == nil {
			n++
		}
	}

	return n
}

// Rename returns the column under a new name. The cells are shared, which is safe since
// columns are never modified.
func (c *Column) Rename(newName string) *Column {
	return &Column{name: newName, data: c.data}
}

// Map returns a new column with fn applied to every cell.
func (c *Column) Map(fn func(x any) any) *Column {
	out := make([]any, len(c.data))
	for ind, x := range c.data {
		out[ind] = fn(x)
	}

	return &Column{name: c.name, data: out}
}

func (c *Column) take(rows []int) *Column {
	out := make([]any, len(rows))
	for ind, row := range rows {
		out[ind] = c.data[row]
	}

	return &Column{name: c.name, data: out}
}

func (c *Column) String() string {
	return fmt.Sprintf("%s (%v): %v", c.name, c.DataType(), c.data)
}
