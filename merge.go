package housing

import "fmt"

// Merge combines the prepared census, assessment and ward tables into one table with a row
// per census row. The census drives the result: ward and assessment rows that match no census
// row are dropped, census rows that match nothing keep nil in the joined columns.
//
// A community that appears twice in the ward table fails the merge with a *CardinalityError.
func Merge(census, assessment, ward *Table, diag *Diagnostics) (*Table, error) {
	census = NormalizeColumn(census, ColCommunity)
	assessment = NormalizeColumn(assessment, ColCommunity)
	ward = NormalizeColumn(ward, ColCommunity)

	var e error
	before := assessment.RowCount()
	if assessment, e = assessment.DropDuplicates(ColCommunity, ColYear); e != nil {
		return nil, fmt.Errorf("merge: %w", e)
	}
	diag.Info("merge", assessment.RowCount(), "dropped %d duplicate assessment rows", before-assessment.RowCount())

	census = dropSentinel(census, diag)
	assessment = dropSentinel(assessment, diag)
	ward = dropSentinel(ward, diag)

	census = census.DropColumnsFold(classificationCols...)
	assessment = assessment.DropColumnsFold(classificationCols...)

	var merged *Table
	if merged, e = LeftJoin(census, ward, ManyToOne, ColCommunity); e != nil {
		return nil, fmt.Errorf("merge census with ward: %w", e)
	}
	diag.Info("merge", merged.RowCount(), "joined census with ward on %s", ColCommunity)

	if merged, e = LeftJoin(merged, assessment, ManyToOne, ColCommunity, ColYear); e != nil {
		return nil, fmt.Errorf("merge with assessment: %w", e)
	}
	diag.Info("merge", merged.RowCount(), "joined with assessment on %s, %s", ColCommunity, ColYear)

	if n := unmatched(merged, ColAreaType); n > 0 {
		diag.Warn("merge", -1, "%d census rows have no ward record", n)
	}

	if n := unmatched(merged, ColAssessment); n > 0 {
		diag.Warn("merge", -1, "%d census rows have no assessment", n)
	}

	return merged.Named("merged"), nil
}

func dropSentinel(t *Table, diag *Diagnostics) *Table {
	before := t.RowCount()
	out := t.Filter(func(r Row) bool { return r[ColCommunity] != Sentinel })

	if n := before - out.RowCount(); n > 0 {
		diag.Info("merge", out.RowCount(), "removed %d %s rows from %s", n, Sentinel, t.Name())
	}

	return out
}

func unmatched(t *Table, colName string) int {
	col, e := t.Column(colName)
	if e != nil {
		return 0
	}

	return col.NullCount()
}
