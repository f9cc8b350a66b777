package housing

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLeftJoin(t *testing.T) {
	left := makeTable(t)

	names, _ := NewColumn([]any{"A", "B", "C"}, ColName("name"))
	x, _ := NewColumn([]any{"a", "b", "c"}, ColName("x"))
	z, _ := NewColumn([]any{10, 20, 30}, ColName("z"))
	right, e := NewTable("right", names, x, z)
	assert.Nil(t, e)

	out, e := LeftJoin(left, right, ManyToOne, "name")
	assert.Nil(t, e)
	assert.Equal(t, left.RowCount(), out.RowCount())
	assert.Equal(t, []string{"name", "year", "x_x", "x_y", "z"}, out.ColumnNames())

	zc, _ := out.Column("z")
	assert.Equal(t, []any{20, 10, 20, nil}, zc.Data())
}

func TestLeftJoin_Cardinality(t *testing.T) {
	left := makeTable(t)
	right := makeTable(t)

	_, e := LeftJoin(left, right, ManyToOne, "name")
	assert.ErrorIs(t, e, ErrCardinality)

	var ce *CardinalityError
	assert.True(t, errors.As(e, &ce))
	assert.Equal(t, "B", ce.Key)
	assert.Equal(t, 2, ce.Matches)

	// unique on both keys
	out, e := LeftJoin(left, right.DropColumns("x"), ManyToOne, "name", "year")
	assert.ErrorIs(t, e, ErrCardinality)
	assert.Nil(t, out)

	dedup, _ := right.DropDuplicates("name", "year")
	out, e = LeftJoin(left, dedup, ManyToOne, "name", "year")
	assert.Nil(t, e)
	assert.Equal(t, 4, out.RowCount())

	out, e = LeftJoin(left, right, ManyToMany, "name")
	assert.Nil(t, e)
	// B matches twice for both B rows
	assert.Equal(t, 6, out.RowCount())
}
