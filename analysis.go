package housing

import (
	"sort"

	"gonum.org/v1/gonum/floats"
)

// DefaultThreshold is the median assessment above which a community is high value.
const DefaultThreshold = 600000.0

// development patterns named by Analyze
const (
	PatternSprawl        = "suburban sprawl"
	PatternDensification = "urban densification"
)

// GroupMean is the mean median assessment of one area type.
type GroupMean struct {
	AreaType AreaType
	Mean     float64
	Count    int
}

// AreaAverages compares the area types within one year.
type AreaAverages struct {
	Year     int
	Groups   []GroupMean
	Excluded int // records of the year with no assessment or no residents
}

// AverageByArea is the mean assessment by area type over the records of year that have an
// assessment and residents.
func AverageByArea(ds *Dataset, year int) AreaAverages {
	out := AreaAverages{Year: year}
	values := make(map[AreaType][]float64)
	for _, r := range ds.Year(year).records {
		if r.Assessment == nil || r.Residents <= 0 {
			out.Excluded++
			continue
		}

		values[r.AreaType] = append(values[r.AreaType], *r.Assessment)
	}

	for _, at := range AreaTypes {
		if x := values[at]; len(x) > 0 {
			out.Groups = append(out.Groups, GroupMean{AreaType: at, Mean: *mean(x), Count: len(x)})
		}
	}

	return out
}

// HighValue is the records whose median assessment exceeds threshold.
func HighValue(ds *Dataset, threshold float64) *Dataset {
	return ds.Filter(func(r Record) bool { return r.Assessment != nil && *r.Assessment > threshold })
}

// TopAssessments returns up to n records with the highest median assessment. Ties keep key order.
func TopAssessments(ds *Dataset, n int) []Record {
	var recs []Record
	for _, r := range ds.records {
		if r.Assessment != nil {
			recs = append(recs, r)
		}
	}

	sort.SliceStable(recs, func(i, j int) bool { return *recs[i].Assessment > *recs[j].Assessment })

	if len(recs) > n {
		recs = recs[:n]
	}

	return recs
}

// SectorStats summarizes the populated communities of one sector.
type SectorStats struct {
	Sector         string
	Population     float64
	MeanAssessment *float64
	MeanVacancy    *float64
	Records        int
}

// SectorSummary groups the records that have a sector and residents, largest population first.
func SectorSummary(ds *Dataset) []SectorStats {
	populated := ds.Filter(func(r Record) bool { return r.Sector != nil && r.Residents > 0 })
	out := sectorStats(populated)

	sort.SliceStable(out, func(i, j int) bool { return out[i].Population > out[j].Population })

	return out
}

// sectorStats is sorted by sector name
func sectorStats(ds *Dataset) []SectorStats {
	type acc struct {
		pop, assess, vacancy []float64
		n                    int
	}

	groups := make(map[string]*acc)
	var names []string
	for _, r := range ds.records {
		if r.Sector == nil {
			continue
		}

		a, ok := groups[*r.Sector]
		if !ok {
			a = &acc{}
			groups[*r.Sector] = a
			names = append(names, *r.Sector)
		}

		a.n++
		a.pop = append(a.pop, r.Residents)
		if r.Assessment != nil {
			a.assess = append(a.assess, *r.Assessment)
		}

		if r.VacancyRate != nil {
			a.vacancy = append(a.vacancy, *r.VacancyRate)
		}
	}

	sort.Strings(names)

	var out []SectorStats
	for _, nm := range names {
		a := groups[nm]
		out = append(out, SectorStats{
			Sector:         nm,
			Population:     floats.Sum(a.pop),
			MeanAssessment: mean(a.assess),
			MeanVacancy:    mean(a.vacancy),
			Records:        a.n,
		})
	}

	return out
}

// PivotRow is one sector of the sector by year pivot.
type PivotRow struct {
	Sector string
	Years  map[int]SectorStats
}

// SectorPivot is population, mean assessment and mean vacancy by sector and year, sorted by sector.
func SectorPivot(ds *Dataset) []PivotRow {
	rows := make(map[string]*PivotRow)
	var names []string
	for _, year := range ds.Years() {
		for _, s := range sectorStats(ds.Year(year)) {
			row, ok := rows[s.Sector]
			if !ok {
				row = &PivotRow{Sector: s.Sector, Years: make(map[int]SectorStats)}
				rows[s.Sector] = row
				names = append(names, s.Sector)
			}

			row.Years[year] = s
		}
	}

	sort.Strings(names)

	var out []PivotRow
	for _, nm := range names {
		out = append(out, *rows[nm])
	}

	return out
}

// Growth is the change in population of a group between the first and last census year.
type Growth struct {
	Name   string
	From   float64
	To     float64
	Change float64
	Rate   float64 // percent of From
}

// SectorGrowth is the population growth of each sector present in both years with a
// population in the first, sorted by sector.
func SectorGrowth(ds *Dataset) []Growth {
	first, last := Years[0], Years[len(Years)-1]

	pop := make(map[int]map[string]float64)
	for _, year := range []int{first, last} {
		pop[year] = make(map[string]float64)
		for _, s := range sectorStats(ds.Year(year)) {
			pop[year][s.Sector] = s.Population
		}
	}

	var names []string
	for nm := range pop[first] {
		names = append(names, nm)
	}
	sort.Strings(names)

	var out []Growth
	for _, nm := range names {
		from := pop[first][nm]
		to, ok := pop[last][nm]
		if !ok || from <= 0 {
			continue
		}

		out = append(out, Growth{Name: nm, From: from, To: to, Change: to - from, Rate: 100 * (to - from) / from})
	}

	return out
}

// AreaChange compares one area type across the census years.
type AreaChange struct {
	AreaType     AreaType
	Population   Growth
	Assessment   [2]*float64 // mean assessment, first and last year
	AssessGrowth float64     // percent, 0 when the first year has no assessment
	Vacancy      *float64    // mean vacancy rate of the last year
}

// AreaComparison compares the area types present in both years.
func AreaComparison(ds *Dataset) []AreaChange {
	first, last := Years[0], Years[len(Years)-1]

	var out []AreaChange
	for _, at := range AreaTypes {
		inArea := ds.Filter(func(r Record) bool { return r.AreaType == at })
		before, after := inArea.Year(first), inArea.Year(last)
		if before.Len() == 0 || after.Len() == 0 {
			continue
		}

		ac := AreaChange{AreaType: at}

		from := floats.Sum(before.Values(residentsField))
		to := floats.Sum(after.Values(residentsField))
		ac.Population = Growth{Name: string(at), From: from, To: to, Change: to - from}
		if from > 0 {
			ac.Population.Rate = 100 * (to - from) / from
		}

		ac.Assessment = [2]*float64{mean(before.Values(assessmentField)), mean(after.Values(assessmentField))}
		if a0, a1 := ac.Assessment[0], ac.Assessment[1]; a0 != nil && a1 != nil && *a0 > 0 {
			ac.AssessGrowth = 100 * (*a1 - *a0) / *a0
		}

		ac.Vacancy = mean(after.Values(vacancyField))

		out = append(out, ac)
	}

	return out
}

var (
	residentsField  = NumericFields[2]
	assessmentField = NumericFields[5]
	vacancyField    = NumericFields[7]
)

// Analysis gathers the answers to the standard questions asked of the dataset.
type Analysis struct {
	Records   int
	Threshold float64

	Averages  AreaAverages
	HighValue *Dataset // above Threshold with residents
	Top       []Record
	Sectors   []SectorStats
	Pivot     []PivotRow

	// which sectors are growing fastest
	Growth          []Growth
	FastestGrowth   *Growth
	LargestIncrease *Growth

	// which sectors have the highest property values
	TopSectors        []SectorStats
	LargestPopulation *SectorStats
	HighestValue      *SectorStats
	InverseRelation   bool // the most populous sector is not the most valuable

	// inner-city versus suburban
	Areas         []AreaChange
	FasterArea    AreaType
	Pattern       string
	HigherVacancy AreaType
	VacancyGap    float64 // percentage points

	ValidRecords int // records with a sector and residents
}

// Analyze runs every analysis. threshold <= 0 uses DefaultThreshold.
func Analyze(ds *Dataset, threshold float64) *Analysis {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}

	last := Years[len(Years)-1]
	a := &Analysis{Records: ds.Len(), Threshold: threshold}

	a.Averages = AverageByArea(ds, last)
	a.HighValue = HighValue(ds, threshold).Filter(func(r Record) bool { return r.Residents > 0 })
	a.Top = TopAssessments(a.HighValue, 5)
	a.Sectors = SectorSummary(ds)
	a.Pivot = SectorPivot(ds)

	for _, s := range a.Sectors {
		a.ValidRecords += s.Records
	}

	a.Growth = SectorGrowth(ds)
	for ind := range a.Growth {
		g := &a.Growth[ind]
		if a.FastestGrowth == nil || g.Rate > a.FastestGrowth.Rate {
			a.FastestGrowth = g
		}

		if a.LargestIncrease == nil || g.Change > a.LargestIncrease.Change {
			a.LargestIncrease = g
		}
	}

	byValue := append([]SectorStats{}, a.Sectors...)
	sort.SliceStable(byValue, func(i, j int) bool {
		vi, vj := byValue[i].MeanAssessment, byValue[j].MeanAssessment
		if vi == nil || vj == nil {
			return vi != nil
		}

		return *vi > *vj
	})

	if len(byValue) > 3 {
		byValue = byValue[:3]
	}
	a.TopSectors = byValue

	if len(a.Sectors) > 0 {
		a.LargestPopulation = &a.Sectors[0]
		if byValue[0].MeanAssessment != nil {
			a.HighestValue = &byValue[0]
			a.InverseRelation = a.LargestPopulation.Sector != a.HighestValue.Sector
		}
	}

	a.Areas = AreaComparison(ds)
	if len(a.Areas) == len(AreaTypes) {
		inner, suburban := a.Areas[0], a.Areas[1]

		a.FasterArea, a.Pattern = InnerCity, PatternDensification
		if suburban.Population.Rate > inner.Population.Rate {
			a.FasterArea, a.Pattern = Suburban, PatternSprawl
		}

		gap := 100 * (valueOrZero(suburban.Vacancy) - valueOrZero(inner.Vacancy))
		a.HigherVacancy, a.VacancyGap = InnerCity, -gap
		if gap > 0 {
			a.HigherVacancy, a.VacancyGap = Suburban, gap
		}
	}

	return a
}

func valueOrZero(x *float64) float64 {
	if x == nil {
		return 0
	}

	return *x
}
