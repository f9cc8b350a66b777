package housing

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Summary describes the known values of one numeric field.
type Summary struct {
	Field  string
	Count  int
	Mean   float64
	Std    float64
	Min    float64
	Q25    float64
	Median float64
	Q75    float64
	Max    float64
}

// Describe summarizes values. Std is the sample standard deviation, NaN with fewer than two
// values. Every statistic is NaN when values is empty.
func Describe(field string, values []float64) Summary {
	s := Summary{Field: field, Count: len(values)}
	if len(values) == 0 {
		nan := math.NaN()
		s.Mean, s.Std, s.Min, s.Q25, s.Median, s.Q75, s.Max = nan, nan, nan, nan, nan, nan, nan
		return s
	}

	x := append([]float64{}, values...)
	sort.Float64s(x)

	s.Mean = stat.Mean(x, nil)
	s.Std = math.NaN()
	if len(x) > 1 {
		s.Std = stat.StdDev(x, nil)
	}

	s.Min, s.Max = floats.Min(x), floats.Max(x)
	s.Q25 = stat.Quantile(0.25, stat.LinInterp, x, nil)
	s.Median = stat.Quantile(0.5, stat.LinInterp, x, nil)
	s.Q75 = stat.Quantile(0.75, stat.LinInterp, x, nil)

	return s
}

// Field reads one numeric value from a record. ok is false when the value is unknown.
type Field struct {
	Name string
	Get  func(r Record) (value float64, ok bool)
}

// NumericFields are the numeric columns of a record, in Columns order.
var NumericFields = []Field{
	{ColYear, func(r Record) (float64, bool) { return float64(r.Year), true }},
	{ColWard, func(r Record) (float64, bool) { return intValue(r.Ward) }},
	{ColResidents, func(r Record) (float64, bool) { return r.Residents, true }},
	{ColDwellings, func(r Record) (float64, bool) { return r.Dwellings, true }},
	{ColVacant, func(r Record) (float64, bool) { return r.Vacant, true }},
	{ColAssessment, func(r Record) (float64, bool) { return floatValue(r.Assessment) }},
	{ColPerPerson, func(r Record) (float64, bool) { return floatValue(r.PerPerson) }},
	{ColVacancyRate, func(r Record) (float64, bool) { return floatValue(r.VacancyRate) }},
}

// Values collects the known values of field over the dataset.
func (ds *Dataset) Values(field Field) []float64 {
	var x []float64
	for _, r := range ds.records {
		if v, ok := field.Get(r); ok {
			x = append(x, v)
		}
	}

	return x
}

// DescribeAll summarizes every numeric field.
func DescribeAll(ds *Dataset) []Summary {
	var out []Summary
	for _, f := range NumericFields {
		out = append(out, Describe(f.Name, ds.Values(f)))
	}

	return out
}

// Missing is the count of unknown values in one column.
type Missing struct {
	Column  string
	Count   int
	Percent float64
}

// MissingSummary lists the columns of the dataset that have unknown values.
func MissingSummary(ds *Dataset) []Missing {
	counts := make(map[string]int)
	for _, r := range ds.records {
		for ind, x := range r.values() {
			if x == nil {
				counts[Columns[ind]]++
			}
		}
	}

	var out []Missing
	for _, col := range Columns {
		n := counts[col]
		if n == 0 {
			continue
		}

		out = append(out, Missing{Column: col, Count: n, Percent: 100 * float64(n) / float64(ds.Len())})
	}

	return out
}

func floatValue(x *float64) (float64, bool) {
	if x == nil {
		return 0, false
	}

	return *x, true
}

func intValue(x *int) (float64, bool) {
	if x == nil {
		return 0, false
	}

	return float64(*x), true
}

// mean is the mean of the known values, nil if there are none
func mean(values []float64) *float64 {
	if len(values) == 0 {
		return nil
	}

	return floatPtr(stat.Mean(values, nil))
}
