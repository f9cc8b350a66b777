package housing

import (
	"fmt"
	"strings"
)

// Cardinality is the relationship a join is required to have.
type Cardinality uint8

const (
	ManyToMany Cardinality = iota
	ManyToOne
	OneToOne
)

func (c Cardinality) String() string {
	switch c {
	case ManyToOne:
		return "m:1"
	case OneToOne:
		return "1:1"
	default:
		return "m:m"
	}
}

// suffixes added to non-key columns that appear in both tables
const (
	leftSuffix  = "_x"
	rightSuffix = "_y"
)

// LeftJoin keeps every row of left, in order, and adds the non-key columns of right.
// Rows of left with no match get nil in those columns; rows of right with no match are
// dropped. validate is checked before joining: ManyToOne requires the keys of right to be
// unique, OneToOne requires both sides to be unique.
func LeftJoin(left, right *Table, validate Cardinality, on ...string) (*Table, error) {
	var (
		leftKeys, rightKeys []*Column
		e                   error
	)
	if leftKeys, e = left.columns(on...); e != nil {
		return nil, e
	}

	if rightKeys, e = right.columns(on...); e != nil {
		return nil, e
	}

	rightRows := make(map[string][]int)
	for row := 0; row < right.RowCount(); row++ {
		k := rowKey(rightKeys, row)
		rightRows[k] = append(rightRows[k], row)
	}

	if validate == ManyToOne || validate == OneToOne {
		if e := unique(right, rightKeys, left.Name(), validate, on); e != nil {
			return nil, e
		}
	}

	if validate == OneToOne {
		if e := unique(left, leftKeys, right.Name(), validate, on); e != nil {
			return nil, e
		}
	}

	// pairs of (left row, right row); right row -1 is no match
	var leftIdx, rightIdx []int
	for row := 0; row < left.RowCount(); row++ {
		matches, ok := rightRows[rowKey(leftKeys, row)]
		if !ok {
			leftIdx, rightIdx = append(leftIdx, row), append(rightIdx, -1)
			continue
		}

		for _, rr := range matches {
			leftIdx, rightIdx = append(leftIdx, row), append(rightIdx, rr)
		}
	}

	var cols []*Column
	rightNames := right.ColumnNames()
	for _, col := range left.cols {
		c := col.take(leftIdx)
		if !has(col.Name(), on) && has(col.Name(), rightNames) {
			c = c.Rename(col.Name() + leftSuffix)
		}

		cols = append(cols, c)
	}

	leftNames := left.ColumnNames()
	for _, col := range right.cols {
		if has(col.Name(), on) {
			continue
		}

		data := make([]any, len(rightIdx))
		for ind, rr := range rightIdx {
			if rr >= 0 {
				data[ind] = col.Element(rr)
			}
		}

		name := col.Name()
		if has(name, leftNames) {
			name += rightSuffix
		}

		cols = append(cols, &Column{name: name, data: data})
	}

	var (
		out *Table
		e1  error
	)
	if out, e1 = NewTable(left.Name(), cols...); e1 != nil {
		return nil, fmt.Errorf("join %s with %s: %w", left.Name(), right.Name(), e1)
	}

	return out, nil
}

func unique(t *Table, keyCols []*Column, other string, validate Cardinality, on []string) error {
	counts := make(map[string]int)
	var order []string
	for row := 0; row < t.RowCount(); row++ {
		k := rowKey(keyCols, row)
		if counts[k] == 0 {
			order = append(order, k)
		}

		counts[k]++
	}

	for _, k := range order {
		if counts[k] > 1 {
			return &CardinalityError{
				Left:     other,
				Right:    t.Name(),
				On:       on,
				Key:      strings.ReplaceAll(k, "\x00", "/"),
				Matches:  counts[k],
				Validate: validate,
			}
		}
	}

	return nil
}
