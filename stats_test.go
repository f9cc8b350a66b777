package housing

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDescribe(t *testing.T) {
	s := Describe("x", []float64{4, 1, 3, 2, 5})
	assert.Equal(t, 5, s.Count)
	assert.Equal(t, 3.0, s.Mean)
	assert.Equal(t, 1.0, s.Min)
	assert.Equal(t, 5.0, s.Max)
	assert.InDelta(t, math.Sqrt(2.5), s.Std, 1e-12)
	assert.True(t, s.Q25 <= s.Median && s.Median <= s.Q75)

	s = Describe("empty", nil)
	assert.Equal(t, 0, s.Count)
	assert.True(t, math.IsNaN(s.Mean))

	s = Describe("one", []float64{7})
	assert.Equal(t, 7.0, s.Mean)
	assert.True(t, math.IsNaN(s.Std))
}

func TestDescribeAll(t *testing.T) {
	ds := loadFixture(t)

	sums := DescribeAll(ds)
	assert.Len(t, sums, len(NumericFields))

	for _, s := range sums {
		switch s.Field {
		case ColResidents:
			assert.Equal(t, 7, s.Count)
			assert.Equal(t, 3110.0/7, s.Mean)
			assert.Equal(t, 1250.0, s.Max)
		case ColAssessment:
			assert.Equal(t, 5, s.Count)
			assert.Equal(t, 350000.0, s.Min)
		}
	}
}

func TestMissingSummary(t *testing.T) {
	ds := loadFixture(t)

	got := make(map[string]int)
	for _, m := range MissingSummary(ds) {
		got[m.Column] = m.Count
		assert.InDelta(t, 100*float64(m.Count)/7, m.Percent, 1e-9)
	}

	assert.Equal(t, map[string]int{ColSector: 1, ColAssessment: 2, ColPerPerson: 3, ColVacancyRate: 2}, got)
}
