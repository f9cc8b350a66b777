package housing

import "fmt"

type deriver struct {
	zeroAssessment bool
	diag           *Diagnostics
}

// DeriveOpt configures Derive.
type DeriveOpt func(d *deriver) error

// DeriveZeroAssessment treats a missing median assessment as 0 instead of unknown.
// Per-person assessments of those communities become 0 rather than nil.
func DeriveZeroAssessment(zero bool) DeriveOpt {
	return func(d *deriver) error {
		d.zeroAssessment = zero
		return nil
	}
}

func DeriveDiagnostics(diag *Diagnostics) DeriveOpt {
	return func(d *deriver) error {
		d.diag = diag
		return nil
	}
}

// Derive turns the merged table into a Dataset. Counts that are missing or do not parse are 0.
// Census rows with the same community and year (one per dwelling structure) are summed into a
// single record, then vacancy_rate and assessment_per_person are computed from the totals.
// A zero denominator leaves the ratio nil.
func Derive(t *Table, opts ...DeriveOpt) (*Dataset, error) {
	d := &deriver{}
	for _, opt := range opts {
		if e := opt(d); e != nil {
			return nil, e
		}
	}

	if e := requireColumns(t, ColCommunity, ColYear); e != nil {
		return nil, e
	}

	var order []Key
	groups := make(map[Key]*Record)
	for row := 0; row < t.RowCount(); row++ {
		r := t.Row(row)

		year, ok := ParseYear(r[ColYear])
		if !ok {
			return nil, fmt.Errorf("derive: row %d has no year", row+1)
		}

		k := Key{Community: NormalizeKey(r[ColCommunity]), Year: year}
		rec, seen := groups[k]
		if !seen {
			rec = d.first(k, r)
			groups[k] = rec
			order = append(order, k)
		}

		dwellings := zeroIfMissing(r[ColDwellings])
		rec.Residents += zeroIfMissing(r[ColResidents])
		rec.Dwellings += dwellings
		rec.Vacant += zeroIfMissing(r[ColVacant])

		if dt := optString(r[ColDwellingType]); dt != nil {
			if rec.DwellingTypes == nil {
				rec.DwellingTypes = make(map[string]float64)
			}

			rec.DwellingTypes[*dt] += dwellings
		}
	}

	var recs []Record
	for _, k := range order {
		rec := groups[k]

		if rec.Dwellings != 0 {
			rec.VacancyRate = floatPtr(rec.Vacant / rec.Dwellings)
		}

		if rec.Assessment != nil && rec.Residents != 0 {
			rec.PerPerson = floatPtr(*rec.Assessment / rec.Residents)
		}

		recs = append(recs, *rec)
	}

	d.diag.Info("derive", len(recs), "rolled %d rows up to %d community/year records", t.RowCount(), len(recs))

	return NewDataset(recs)
}

// first starts a record from the first row of its key. Attributes that do not add up
// (ward, sector, area type, assessment) are taken from this row.
func (d *deriver) first(k Key, r Row) *Record {
	rec := &Record{
		Community:  k.Community,
		Year:       k.Year,
		Ward:       optInt(r[ColWard]),
		Sector:     optString(r[ColSector]),
		Assessment: optFloat(r[ColAssessment]),
	}

	if rec.Ward == nil {
		rec.Ward = optInt(r[ColWardNum])
	}

	rec.AreaType, _ = ParseAreaType(r[ColAreaType])

	if rec.Assessment == nil && d.zeroAssessment {
		rec.Assessment = floatPtr(0)
	}

	return rec
}
