package chart

import (
	"sort"

	"github.com/invertedv/housing"
)

// Series is a set of labelled values, one bar or point each.
type Series struct {
	Names  []string
	Values []float64
}

func (s *Series) add(name string, value float64) {
	s.Names = append(s.Names, name)
	s.Values = append(s.Values, value)
}

func (s *Series) Len() int {
	return len(s.Names)
}

// GrowthSeries is population growth (percent) by sector, slowest first.
func GrowthSeries(a *housing.Analysis) Series {
	growth := append([]housing.Growth{}, a.Growth...)
	sort.SliceStable(growth, func(i, j int) bool { return growth[i].Rate < growth[j].Rate })

	var s Series
	for _, g := range growth {
		s.add(g.Name, g.Rate)
	}

	return s
}

// ValueSeries is the mean median assessment by sector in thousands of dollars, highest first.
func ValueSeries(a *housing.Analysis) Series {
	var sectors []housing.SectorStats
	for _, st := range a.Sectors {
		if st.MeanAssessment != nil {
			sectors = append(sectors, st)
		}
	}

	sort.SliceStable(sectors, func(i, j int) bool { return *sectors[i].MeanAssessment > *sectors[j].MeanAssessment })

	var s Series
	for _, st := range sectors {
		s.add(st.Sector, *st.MeanAssessment/1000)
	}

	return s
}

// AreaSeries is the population of each area type in the first and last census year.
func AreaSeries(a *housing.Analysis) map[housing.AreaType]Series {
	first, last := housing.Years[0], housing.Years[len(housing.Years)-1]

	out := make(map[housing.AreaType]Series)
	for _, ac := range a.Areas {
		var s Series
		s.add(itoa(first), ac.Population.From)
		s.add(itoa(last), ac.Population.To)
		out[ac.AreaType] = s
	}

	return out
}

// SectorCounts is the number of records in each sector, largest first.
func SectorCounts(ds *housing.Dataset) Series {
	counts := make(map[string]float64)
	var names []string
	for _, r := range ds.Records() {
		if r.Sector == nil {
			continue
		}

		if _, ok := counts[*r.Sector]; !ok {
			names = append(names, *r.Sector)
		}

		counts[*r.Sector]++
	}

	sort.Strings(names)
	sort.SliceStable(names, func(i, j int) bool { return counts[names[i]] > counts[names[j]] })

	var s Series
	for _, nm := range names {
		s.add(nm, counts[nm])
	}

	return s
}
