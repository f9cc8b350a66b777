package report

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
	"github.com/invertedv/housing"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

func loadDataset(t *testing.T) *housing.Dataset {
	src := housing.Sources{
		Census:     filepath.Join("..", "testdata", "census.csv"),
		Assessment: filepath.Join("..", "testdata", "assessment.csv"),
		Ward:       filepath.Join("..", "testdata", "ward.csv"),
	}

	ds, _, e := housing.Run(src, housing.Options{})
	require.Nil(t, e)

	return ds
}

func TestOverview(t *testing.T) {
	ds := loadDataset(t)

	var buf bytes.Buffer
	Overview(&buf, ds)
	out := buf.String()

	assert.Contains(t, out, "Total records: 7")
	assert.Contains(t, out, housing.ColAssessment)
	assert.Contains(t, out, "28.6%")
	assert.Contains(t, out, "75%")
}

func TestHead(t *testing.T) {
	ds := loadDataset(t)

	var buf bytes.Buffer
	Head(&buf, ds, 2)
	out := buf.String()

	assert.Contains(t, out, "$480,000")
	assert.Contains(t, out, "$500,000")
	assert.NotContains(t, out, "GHOST")
}

func TestAreaDistribution(t *testing.T) {
	ds := loadDataset(t)

	var buf bytes.Buffer
	AreaDistribution(&buf, ds)
	out := buf.String()

	assert.Contains(t, out, string(housing.InnerCity))
	assert.Contains(t, out, string(housing.Suburban))
}

func TestProfile(t *testing.T) {
	ds := loadDataset(t)

	r, ok := ds.Get("abc", 2016)
	require.True(t, ok)

	var buf bytes.Buffer
	Profile(&buf, r)
	out := buf.String()

	for _, want := range []string{"ABC (2016)", "CENTRE", "Inner-City", "1,200", "10.00%", "$480,000", "$400.00",
		"Single Family", "Apartment"} {
		assert.Contains(t, out, want)
	}

	r, ok = ds.Get("xyz", 2016)
	require.True(t, ok)

	buf.Reset()
	Profile(&buf, r)
	assert.Contains(t, buf.String(), NA)
}

func TestAnalysis(t *testing.T) {
	ds := loadDataset(t)

	var buf bytes.Buffer
	Analysis(&buf, housing.Analyze(ds, 0))
	out := buf.String()

	assert.Contains(t, out, "$600,000")
	assert.Contains(t, out, "CENTRE")
	assert.Contains(t, out, housing.PatternSprawl)
	// inner-city mean assessment 415,000 in 2016, 500,000 in 2017
	assert.Contains(t, out, "+20.5%")
}

func TestPrompter(t *testing.T) {
	ds := loadDataset(t)

	in := strings.NewReader("nowhere\nlist\nghost\n2015\n2016\n ghost \n2017\n")
	var out bytes.Buffer
	r, e := NewPrompter(in, &out, ds).Choose()
	require.Nil(t, e)

	assert.Equal(t, housing.Key{Community: "GHOST", Year: 2017}, r.Key())
	assert.Contains(t, out.String(), `"NOWHERE" not found`)
	assert.Contains(t, out.String(), "year must be one of 2016, 2017")
	assert.Contains(t, out.String(), housing.ErrNoRecord.Error())
	assert.Contains(t, out.String(), "NEWTOWN")

	_, e = NewPrompter(strings.NewReader("abc\n"), &out, ds).Choose()
	assert.ErrorIs(t, e, ErrNoInput)
}

func TestFormat(t *testing.T) {
	x := 0.075
	assert.Equal(t, "7.50%", percent(&x))
	assert.Equal(t, NA, percent(nil))
	assert.Equal(t, "$1,234,568", money(1234567.8))
	assert.Equal(t, "1,270", count(1270))
	assert.Equal(t, "+24.0%", signedPct(24))
}
