package housing

import (
	"fmt"
	"sort"
)

// Key identifies a Record.
type Key struct {
	Community string
	Year      int
}

func (k Key) String() string {
	return fmt.Sprintf("%s (%d)", k.Community, k.Year)
}

// Record is one community in one census year. Optional values are nil when unknown.
type Record struct {
	Community string
	Year      int
	Ward      *int
	Sector    *string
	AreaType  AreaType

	Residents float64
	Dwellings float64
	Vacant    float64

	Assessment  *float64
	PerPerson   *float64
	VacancyRate *float64

	// dwellings by census dwelling structure, nil if the census did not report it
	DwellingTypes map[string]float64
}

func (r Record) Key() Key {
	return Key{Community: r.Community, Year: r.Year}
}

// Dataset is the merged, derived data: records sorted by community then year, unique on Key.
// It is not modified once built.
type Dataset struct {
	records []Record
	index   map[string]map[int]int
}

// NewDataset sorts records and indexes them. Two records with the same Key are an error.
func NewDataset(records []Record) (*Dataset, error) {
	recs := append([]Record{}, records...)
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Community != recs[j].Community {
			return recs[i].Community < recs[j].Community
		}

		return recs[i].Year < recs[j].Year
	})

	ds := &Dataset{records: recs, index: make(map[string]map[int]int)}
	for ind, r := range recs {
		years, ok := ds.index[r.Community]
		if !ok {
			years = make(map[int]int)
			ds.index[r.Community] = years
		}

		if _, dup := years[r.Year]; dup {
			return nil, fmt.Errorf("%v: %w", r.Key(), ErrDuplicateKey)
		}

		years[r.Year] = ind
	}

	return ds, nil
}

func (ds *Dataset) Len() int {
	return len(ds.records)
}

// Records returns the records in key order.
func (ds *Dataset) Records() []Record {
	return append([]Record{}, ds.records...)
}

// Get looks up a record. community is normalized first, so "abc " finds ABC.
func (ds *Dataset) Get(community string, year int) (Record, bool) {
	years, ok := ds.index[NormalizeKey(community)]
	if !ok {
		return Record{}, false
	}

	ind, ok := years[year]
	if !ok {
		return Record{}, false
	}

	return ds.records[ind], true
}

// HasCommunity reports whether any year of community is present.
func (ds *Dataset) HasCommunity(community string) bool {
	_, ok := ds.index[NormalizeKey(community)]
	return ok
}

// Communities returns the distinct community names, sorted.
func (ds *Dataset) Communities() []string {
	var names []string
	for _, r := range ds.records {
		if len(names) == 0 || names[len(names)-1] != r.Community {
			names = append(names, r.Community)
		}
	}

	return names
}

// Years returns the distinct years present, ascending.
func (ds *Dataset) Years() []int {
	var years []int
	for _, r := range ds.records {
		if !has(r.Year, years) {
			years = append(years, r.Year)
		}
	}

	sort.Ints(years)

	return years
}

func (ds *Dataset) Keys() []Key {
	keys := make([]Key, len(ds.records))
	for ind, r := range ds.records {
		keys[ind] = r.Key()
	}

	return keys
}

// Filter returns the records for which keep is true.
func (ds *Dataset) Filter(keep func(r Record) bool) *Dataset {
	var recs []Record
	for _, r := range ds.records {
		if keep(r) {
			recs = append(recs, r)
		}
	}

	// a subset of unique keys is unique
	out, _ := NewDataset(recs)

	return out
}

// Year returns the records of one year.
func (ds *Dataset) Year(year int) *Dataset {
	return ds.Filter(func(r Record) bool { return r.Year == year })
}

// Validate checks a user's choice of community and year and returns the record.
// The errors are ErrCommunity, ErrYear and ErrNoRecord, checked in that order.
func (ds *Dataset) Validate(community string, year int) (Record, error) {
	if !ds.HasCommunity(community) {
		return Record{}, fmt.Errorf("%q: %w", NormalizeKey(community), ErrCommunity)
	}

	if !ValidYear(year) {
		return Record{}, fmt.Errorf("%d: %w", year, ErrYear)
	}

	r, ok := ds.Get(community, year)
	if !ok {
		return Record{}, fmt.Errorf("%s in %d: %w", NormalizeKey(community), year, ErrNoRecord)
	}

	return r, nil
}

// Table lays the dataset out with the columns of Columns.
func (ds *Dataset) Table() *Table {
	data := make([][]any, len(Columns))
	for _, r := range ds.records {
		for ind, x := range r.values() {
			data[ind] = append(data[ind], x)
		}
	}

	var cols []*Column
	for ind, nm := range Columns {
		cols = append(cols, &Column{name: nm, data: data[ind]})
	}

	t, _ := NewTable("dataset", cols...)

	return t
}

// values are the cells of r in Columns order, nil for unknown values
func (r Record) values() []any {
	var ward, sector, assessment, perPerson, vacancy any
	if r.Ward != nil {
		ward = *r.Ward
	}

	if r.Sector != nil {
		sector = *r.Sector
	}

	if r.Assessment != nil {
		assessment = *r.Assessment
	}

	if r.PerPerson != nil {
		perPerson = *r.PerPerson
	}

	if r.VacancyRate != nil {
		vacancy = *r.VacancyRate
	}

	return []any{r.Community, r.Year, ward, sector, string(r.AreaType), r.Residents, r.Dwellings, r.Vacant,
		assessment, perPerson, vacancy}
}

// FromTable rebuilds a Dataset from a table with the columns of Columns, such as a CSV export.
// Stored ratios are kept as they are.
func FromTable(t *Table) (*Dataset, error) {
	if e := requireColumns(t, Columns...); e != nil {
		return nil, e
	}

	var recs []Record
	for row := 0; row < t.RowCount(); row++ {
		r := t.Row(row)

		year, ok := ParseYear(r[ColYear])
		if !ok {
			return nil, fmt.Errorf("row %d: bad year %v", row+1, r[ColYear])
		}

		rec := Record{
			Community:   NormalizeKey(r[ColCommunity]),
			Year:        year,
			Residents:   zeroIfMissing(r[ColResidents]),
			Dwellings:   zeroIfMissing(r[ColDwellings]),
			Vacant:      zeroIfMissing(r[ColVacant]),
			Assessment:  optFloat(r[ColAssessment]),
			PerPerson:   optFloat(r[ColPerPerson]),
			VacancyRate: optFloat(r[ColVacancyRate]),
			Ward:        optInt(r[ColWard]),
			Sector:      optString(r[ColSector]),
		}
		rec.AreaType, _ = ParseAreaType(r[ColAreaType])

		recs = append(recs, rec)
	}

	return NewDataset(recs)
}
