package export

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/invertedv/housing"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

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

func TestWriteCSV(t *testing.T) {
	ds := loadDataset(t)

	fileName := filepath.Join(t.TempDir(), "dataset.csv")
	require.Nil(t, WriteCSV(ds, fileName))

	got, e := os.ReadFile(fileName)
	require.Nil(t, e)

	g := goldie.New(t)
	g.Assert(t, "dataset", got)
}

func TestReadCSV(t *testing.T) {
	ds := loadDataset(t)

	fileName := filepath.Join(t.TempDir(), "dataset.csv")
	require.Nil(t, WriteCSV(ds, fileName))

	back, e := ReadCSV(fileName)
	require.Nil(t, e)
	assert.Equal(t, ds.Keys(), back.Keys())

	r, _ := back.Get("NEWTOWN", 2017)
	want, _ := ds.Get("NEWTOWN", 2017)
	assert.Equal(t, *want.PerPerson, *r.PerPerson)
	assert.Equal(t, "SOUTH", *r.Sector)

	_, e = ReadCSV(filepath.Join(t.TempDir(), "none.csv"))
	assert.ErrorIs(t, e, housing.ErrMissingSource)
}

func TestWriteWorkbook(t *testing.T) {
	ds := loadDataset(t)

	fileName := filepath.Join(t.TempDir(), "analysis.xlsx")
	require.Nil(t, WriteWorkbook(ds, 450000, fileName))

	f, e := excelize.OpenFile(fileName)
	require.Nil(t, e)
	defer func() { _ = f.Close() }()

	assert.Equal(t, Sheets, f.GetSheetList())

	rows, e := f.GetRows(SheetDataset)
	require.Nil(t, e)
	assert.Len(t, rows, ds.Len()+1)
	assert.Equal(t, housing.Columns, rows[0])
	assert.Equal(t, "ABC", rows[1][0])

	rows, e = f.GetRows(SheetHighValue)
	require.Nil(t, e)
	assert.Len(t, rows, 4)

	rows, e = f.GetRows(SheetSummary)
	require.Nil(t, e)
	assert.Len(t, rows, 9)
	assert.Equal(t, "count", rows[1][0])

	rows, e = f.GetRows(SheetPivot)
	require.Nil(t, e)
	assert.Len(t, rows, 4)
	assert.Equal(t, "CENTRE", rows[1][0])

	rows, e = f.GetRows(SheetMissing)
	require.Nil(t, e)
	assert.Equal(t, []string{"Column", "Missing Count", "Missing %"}, rows[0])
	assert.Equal(t, []string{housing.ColSector, "1"}, rows[1][:2])
}
