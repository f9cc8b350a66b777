package housing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAverageByArea(t *testing.T) {
	ds := loadFixture(t)

	avg := AverageByArea(ds, 2017)
	assert.Equal(t, 2, avg.Excluded)
	assert.Equal(t, []GroupMean{
		{AreaType: InnerCity, Mean: 500000, Count: 1},
		{AreaType: Suburban, Mean: 455000, Count: 1},
	}, avg.Groups)
}

func TestHighValue(t *testing.T) {
	ds := loadFixture(t)

	hv := HighValue(ds, 450000)
	assert.Equal(t, 3, hv.Len())

	top := TopAssessments(hv, 2)
	require.Len(t, top, 2)
	assert.Equal(t, Key{"ABC", 2017}, top[0].Key())
	assert.Equal(t, Key{"ABC", 2016}, top[1].Key())

	assert.Equal(t, 0, HighValue(ds, DefaultThreshold).Len())
}

func TestSectorSummary(t *testing.T) {
	ds := loadFixture(t)

	sectors := SectorSummary(ds)
	require.Len(t, sectors, 3)

	assert.Equal(t, "CENTRE", sectors[0].Sector)
	assert.Equal(t, 2450.0, sectors[0].Population)
	assert.Equal(t, 490000.0, *sectors[0].MeanAssessment)
	assert.InDelta(t, 0.075, *sectors[0].MeanVacancy, 1e-12)

	assert.Equal(t, "SOUTH", sectors[1].Sector)
	assert.Equal(t, 630.0, sectors[1].Population)
	assert.Equal(t, 0.1, *sectors[1].MeanVacancy)

	assert.Equal(t, "NORTH", sectors[2].Sector)
	assert.Nil(t, sectors[2].MeanAssessment)
	assert.Nil(t, sectors[2].MeanVacancy)
}

func TestSectorPivot(t *testing.T) {
	ds := loadFixture(t)

	pivot := SectorPivot(ds)
	require.Len(t, pivot, 3)
	assert.Equal(t, "CENTRE", pivot[0].Sector)
	assert.Equal(t, 1200.0, pivot[0].Years[2016].Population)
	assert.Equal(t, 1250.0, pivot[0].Years[2017].Population)

	// XYZ 2016 has no residents but still counts in the pivot
	assert.Equal(t, "NORTH", pivot[1].Sector)
	assert.Equal(t, 350000.0, *pivot[1].Years[2016].MeanAssessment)
}

func TestSectorGrowth(t *testing.T) {
	ds := loadFixture(t)

	growth := SectorGrowth(ds)
	require.Len(t, growth, 2)
	assert.Equal(t, "CENTRE", growth[0].Name)
	assert.Equal(t, 50.0, growth[0].Change)
	assert.InDelta(t, 100.0/24, growth[0].Rate, 1e-9)
	assert.Equal(t, "SOUTH", growth[1].Name)
	assert.InDelta(t, 10.0, growth[1].Rate, 1e-9)
}

func TestAreaComparison(t *testing.T) {
	ds := loadFixture(t)

	areas := AreaComparison(ds)
	require.Len(t, areas, 2)

	inner := areas[0]
	assert.Equal(t, InnerCity, inner.AreaType)
	assert.Equal(t, 1200.0, inner.Population.From)
	assert.Equal(t, 1270.0, inner.Population.To)
	assert.Equal(t, 415000.0, *inner.Assessment[0])
	assert.Equal(t, 500000.0, *inner.Assessment[1])
	assert.Equal(t, 0.05, *inner.Vacancy)

	suburban := areas[1]
	assert.Equal(t, 300.0, suburban.Population.From)
	assert.Equal(t, 340.0, suburban.Population.To)
	assert.InDelta(t, 40.0/3, suburban.Population.Rate, 1e-9)
}

func TestAnalyze(t *testing.T) {
	ds := loadFixture(t)

	a := Analyze(ds, 0)
	assert.Equal(t, DefaultThreshold, a.Threshold)
	assert.Equal(t, 7, a.Records)
	assert.Equal(t, 5, a.ValidRecords)
	assert.Equal(t, 0, a.HighValue.Len())

	require.NotNil(t, a.FastestGrowth)
	assert.Equal(t, "SOUTH", a.FastestGrowth.Name)
	assert.Equal(t, "CENTRE", a.LargestIncrease.Name)

	require.Len(t, a.TopSectors, 3)
	assert.Equal(t, "CENTRE", a.HighestValue.Sector)
	assert.Equal(t, "CENTRE", a.LargestPopulation.Sector)
	assert.False(t, a.InverseRelation)

	assert.Equal(t, Suburban, a.FasterArea)
	assert.Equal(t, PatternSprawl, a.Pattern)
	assert.Equal(t, Suburban, a.HigherVacancy)
	assert.InDelta(t, 5.0, a.VacancyGap, 1e-9)

	a = Analyze(ds, 450000)
	assert.Equal(t, 3, a.HighValue.Len())
	assert.Len(t, a.Top, 3)
}
