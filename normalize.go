package housing

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// upper applies full Unicode upper-casing (ß becomes SS), which strings.ToUpper does not.
func upper(s string) string {
	return cases.Upper(language.Und).String(s)
}

// NormalizeKey is the join form of a name: its text upper-cased with surrounding space removed.
// nil becomes "".
func NormalizeKey(x any) string {
	return strings.TrimSpace(upper(toString(x)))
}

// NormalizeColumn returns t with NormalizeKey applied to every cell of colName.
// t is returned unchanged if it has no such column.
func NormalizeColumn(t *Table, colName string) *Table {
	col, e := t.Column(colName)
	if e != nil {
		return t
	}

	out, _ := t.ReplaceColumn(col.Map(func(x any) any { return NormalizeKey(x) }))

	return out
}
