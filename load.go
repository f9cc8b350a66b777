package housing

import (
	"fmt"
	"strings"
)

// Loader reads the three source files and brings them to the canonical schema.
type Loader struct {
	policy Policy
	sep    rune
	diag   *Diagnostics
}

// LoaderOpt configures a Loader.
type LoaderOpt func(l *Loader) error

// LoaderPolicy sets the policy used to classify the ward table.
func LoaderPolicy(p Policy) LoaderOpt {
	return func(l *Loader) error {
		if p != PolicyStructure && p != PolicyCategory {
			return fmt.Errorf("unknown policy %v", p)
		}

		l.policy = p
		return nil
	}
}

// LoaderSeparator sets the field separator of the source files.
func LoaderSeparator(sep rune) LoaderOpt {
	return func(l *Loader) error {
		l.sep = sep
		return nil
	}
}

// LoaderDiagnostics directs the loader's notes to d.
func LoaderDiagnostics(d *Diagnostics) LoaderOpt {
	return func(l *Loader) error {
		l.diag = d
		return nil
	}
}

func NewLoader(opts ...LoaderOpt) (*Loader, error) {
	l := &Loader{policy: PolicyStructure, sep: Sep}
	for _, opt := range opts {
		if e := opt(l); e != nil {
			return nil, e
		}
	}

	return l, nil
}

func (l *Loader) Census(fileName string) (*Table, error) {
	var (
		t *Table
		e error
	)
	if t, e = l.read("census", fileName); e != nil {
		return nil, e
	}

	return PrepareCensus(t, l.diag)
}

func (l *Loader) Assessment(fileName string) (*Table, error) {
	var (
		t *Table
		e error
	)
	if t, e = l.read("assessment", fileName); e != nil {
		return nil, e
	}

	return PrepareAssessment(t, l.diag)
}

func (l *Loader) Ward(fileName string) (*Table, error) {
	var (
		t *Table
		e error
	)
	if t, e = l.read("ward", fileName); e != nil {
		return nil, e
	}

	return PrepareWard(t, l.policy, l.diag)
}

func (l *Loader) read(source, fileName string) (*Table, error) {
	var (
		t *Table
		e error
	)
	if t, e = ReadTable(fileName, FileSep(l.sep)); e != nil {
		return nil, fmt.Errorf("loading %s table: %w", source, e)
	}

	l.diag.Info("load", t.RowCount(), "read %s table from %s, %d columns", source, fileName, t.ColumnCount())

	return t.Named(source), nil
}

// PrepareCensus renames the census columns and keeps the rows of the covered years.
func PrepareCensus(t *Table, diag *Diagnostics) (*Table, error) {
	var e error
	if t, e = t.Rename(censusRenames); e != nil {
		return nil, e
	}

	if e = requireColumns(t, ColCommunity, ColYear); e != nil {
		return nil, e
	}

	for _, col := range []string{ColResidents, ColDwellings, ColVacant} {
		if !t.HasColumn(col) {
			diag.Warn("load", -1, "census table has no %s column, counts will be 0", col)
		}
	}

	return filterYears(t, diag)
}

// PrepareAssessment renames the assessment columns, including the median assessment column,
// and keeps the rows of the covered years.
func PrepareAssessment(t *Table, diag *Diagnostics) (*Table, error) {
	renames := make(map[string]string)
	for k, v := range assessmentRenames {
		renames[k] = v
	}

	median, ok := t.FindColumn(medianPattern.MatchString)
	if !ok {
		median = DefaultMedianColumn
	}
	renames[median] = ColAssessment

	var e error
	if t, e = t.Rename(renames); e != nil {
		return nil, e
	}

	if e = requireColumns(t, ColCommunity, ColYear); e != nil {
		return nil, e
	}

	if !t.HasColumn(ColAssessment) {
		diag.Warn("load", -1, "assessment table has no median assessment column")
	}

	return filterYears(t, diag)
}

// PrepareWard renames the ward columns and makes sure the table has an area type for every row.
// An existing area type column is re-read, with labels that are not an area type classified by
// policy; otherwise it is classified from the first column whose name mentions category or
// comm_structure.
func PrepareWard(t *Table, policy Policy, diag *Diagnostics) (*Table, error) {
	var e error
	if t, e = t.Rename(wardRenames); e != nil {
		return nil, e
	}

	if e = requireColumns(t, ColCommunity); e != nil {
		return nil, e
	}

	if existing, ok := t.FindColumn(func(name string) bool { return strings.EqualFold(name, ColAreaType) }); ok {
		col, _ := t.Column(existing)
		col = col.Map(func(x any) any {
			if at, ok := ParseAreaType(x); ok {
				return string(at)
			}

			return string(policy.Classify(x))
		}).Rename(ColAreaType)

		t = t.DropColumns(existing)
		if t, e = t.AppendColumn(col); e != nil {
			return nil, e
		}

		diag.Info("classify", t.RowCount(), "area type read from column %s", existing)

		return t, nil
	}

	source, ok := t.FindColumn(areaSourcePattern.MatchString)
	if !ok {
		diag.Warn("classify", t.RowCount(), "no category or comm_structure column, every community is %s", Suburban)
		return t.AppendColumn(Constant(ColAreaType, string(Suburban), t.RowCount()))
	}

	col, _ := t.Column(source)
	areaType := col.Map(func(x any) any { return string(policy.Classify(x)) }).Rename(ColAreaType)

	if t, e = t.AppendColumn(areaType); e != nil {
		return nil, e
	}

	inner := 0
	for row := 0; row < t.RowCount(); row++ {
		if areaType.Element(row) == string(InnerCity) {
			inner++
		}
	}

	diag.Info("classify", t.RowCount(), "classified %s with the %s policy: %d %s, %d %s",
		source, policy, inner, InnerCity, t.RowCount()-inner, Suburban)

	return t, nil
}

// filterYears parses the year column to int and drops rows outside Years
func filterYears(t *Table, diag *Diagnostics) (*Table, error) {
	col, e := t.Column(ColYear)
	if e != nil {
		return nil, e
	}

	years := col.Map(func(x any) any {
		if y, ok := ParseYear(x); ok {
			return y
		}

		return nil
	})

	if t, e = t.ReplaceColumn(years); e != nil {
		return nil, e
	}

	before := t.RowCount()
	t = t.Filter(func(r Row) bool {
		y, ok := r[ColYear].(int)
		return ok && ValidYear(y)
	})

	diag.Info("load", t.RowCount(), "%s: kept years %v, dropped %d rows", t.Name(), Years, before-t.RowCount())

	return t, nil
}

func requireColumns(t *Table, colNames ...string) error {
	for _, nm := range colNames {
		if !t.HasColumn(nm) {
			return fmt.Errorf("%s table has no %s column: %w", t.Name(), nm, ErrMissingColumn)
		}
	}

	return nil
}
