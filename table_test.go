package housing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func makeTable(t *testing.T) *Table {
	names, e := NewColumn([]any{"B", "A", "B", nil}, ColName("name"))
	assert.Nil(t, e)

	years, e := NewColumn([]any{2017, 2016, 2017, 2016}, ColName("year"))
	assert.Nil(t, e)

	values, e := NewColumn([]any{1.0, 2.0, 3.0, 4.0}, ColName("x"))
	assert.Nil(t, e)

	tab, e := NewTable("test", names, years, values)
	assert.Nil(t, e)

	return tab
}

func TestNewTable(t *testing.T) {
	x, _ := NewColumn([]any{1, 2}, ColName("x"))
	y, _ := NewColumn([]any{1}, ColName("y"))

	_, e := NewTable("bad", x, y)
	assert.NotNil(t, e)

	_, e = NewTable("dup", x, x)
	assert.NotNil(t, e)

	_, e = NewColumn([]any{1})
	assert.NotNil(t, e)
}

func TestTable_Column(t *testing.T) {
	tab := makeTable(t)

	col, e := tab.Column("x")
	assert.Nil(t, e)
	assert.Equal(t, []any{1.0, 2.0, 3.0, 4.0}, col.Data())
	assert.Equal(t, DTfloat, col.DataType())

	_, e = tab.Column("nope")
	assert.ErrorIs(t, e, ErrMissingColumn)

	nm, _ := tab.Column("name")
	assert.Equal(t, 1, nm.NullCount())
	assert.Equal(t, DTstring, nm.DataType())
}

func TestTable_DropDuplicates(t *testing.T) {
	tab := makeTable(t)

	out, e := tab.DropDuplicates("name", "year")
	assert.Nil(t, e)
	assert.Equal(t, 3, out.RowCount())

	x, _ := out.Column("x")
	// the first B/2017 row is kept
	assert.Equal(t, []any{1.0, 2.0, 4.0}, x.Data())

	// receiver unchanged
	assert.Equal(t, 4, tab.RowCount())

	_, e = tab.DropDuplicates("nope")
	assert.ErrorIs(t, e, ErrMissingColumn)
}

func TestTable_Columns(t *testing.T) {
	tab := makeTable(t)

	out := tab.DropColumnsFold("NAME", "missing")
	assert.Equal(t, []string{"year", "x"}, out.ColumnNames())
	assert.Equal(t, []string{"name", "year", "x"}, tab.ColumnNames())

	out, e := tab.Rename(map[string]string{"x": "value", "other": "z"})
	assert.Nil(t, e)
	assert.Equal(t, []string{"name", "year", "value"}, out.ColumnNames())

	out, e = tab.KeepColumns("x", "name")
	assert.Nil(t, e)
	assert.Equal(t, []string{"x", "name"}, out.ColumnNames())

	out, e = tab.ReplaceColumn(Constant("x", 0.0, 4))
	assert.Nil(t, e)
	x, _ := out.Column("x")
	assert.Equal(t, []any{0.0, 0.0, 0.0, 0.0}, x.Data())

	_, e = tab.AppendColumn(Constant("short", 1, 2))
	assert.NotNil(t, e)

	nm, ok := tab.FindColumn(func(name string) bool { return name == "year" })
	assert.True(t, ok)
	assert.Equal(t, "year", nm)
}

func TestTable_Filter(t *testing.T) {
	tab := makeTable(t)

	out := tab.Filter(func(r Row) bool { return r["year"] == 2017 })
	assert.Equal(t, 2, out.RowCount())
	assert.Equal(t, Row{"name": "B", "year": 2017, "x": 3.0}, out.Row(1))
}
