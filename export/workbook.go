package export

import (
	"fmt"
	"math"

	"github.com/invertedv/housing"
	"github.com/xuri/excelize/v2"
)

// sheet names of the workbook, in order
const (
	SheetDataset   = "Complete Dataset"
	SheetSummary   = "Summary Statistics"
	SheetPivot     = "Sector Analysis Pivot"
	SheetHighValue = "High Value Communities"
	SheetMissing   = "Missing Values Summary"
)

var Sheets = []string{SheetDataset, SheetSummary, SheetPivot, SheetHighValue, SheetMissing}

const colWidth = 18

// WriteWorkbook saves the dataset and its summaries as an .xlsx file. High value communities
// are those with a median assessment above threshold.
func WriteWorkbook(ds *housing.Dataset, threshold float64, fileName string) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if e := f.SetSheetName("Sheet1", SheetDataset); e != nil {
		return e
	}

	for _, sheet := range Sheets[1:] {
		if _, e := f.NewSheet(sheet); e != nil {
			return e
		}
	}

	writers := []func() error{
		func() error { return writeRecords(f, SheetDataset, ds) },
		func() error { return writeSummary(f, ds) },
		func() error { return writePivot(f, ds) },
		func() error { return writeRecords(f, SheetHighValue, housing.HighValue(ds, threshold)) },
		func() error { return writeMissing(f, ds) },
	}

	for ind, w := range writers {
		if e := w(); e != nil {
			return fmt.Errorf("sheet %s: %w", Sheets[ind], e)
		}
	}

	if e := f.SaveAs(fileName); e != nil {
		return fmt.Errorf("saving workbook %s: %w", fileName, e)
	}

	return nil
}

func writeRecords(f *excelize.File, sheet string, ds *housing.Dataset) error {
	t := ds.Table()
	if e := writeRow(f, sheet, 1, toAny(t.ColumnNames())); e != nil {
		return e
	}

	for row := 0; row < t.RowCount(); row++ {
		r := t.Row(row)

		var line []any
		for _, nm := range t.ColumnNames() {
			line = append(line, r[nm])
		}

		if e := writeRow(f, sheet, row+2, line); e != nil {
			return e
		}
	}

	return setWidth(f, sheet, t.ColumnCount())
}

// writeSummary has a row per statistic and a column per field
func writeSummary(f *excelize.File, ds *housing.Dataset) error {
	sums := housing.DescribeAll(ds)

	hdr := []any{"statistic"}
	for _, s := range sums {
		hdr = append(hdr, s.Field)
	}

	if e := writeRow(f, SheetSummary, 1, hdr); e != nil {
		return e
	}

	stats := []struct {
		name string
		get  func(s housing.Summary) float64
	}{
		{"count", func(s housing.Summary) float64 { return float64(s.Count) }},
		{"mean", func(s housing.Summary) float64 { return s.Mean }},
		{"std", func(s housing.Summary) float64 { return s.Std }},
		{"min", func(s housing.Summary) float64 { return s.Min }},
		{"25%", func(s housing.Summary) float64 { return s.Q25 }},
		{"50%", func(s housing.Summary) float64 { return s.Median }},
		{"75%", func(s housing.Summary) float64 { return s.Q75 }},
		{"max", func(s housing.Summary) float64 { return s.Max }},
	}

	for ind, st := range stats {
		line := []any{st.name}
		for _, s := range sums {
			line = append(line, finite(st.get(s)))
		}

		if e := writeRow(f, SheetSummary, ind+2, line); e != nil {
			return e
		}
	}

	return setWidth(f, SheetSummary, len(hdr))
}

// writePivot has a row per sector and a column per metric and year
func writePivot(f *excelize.File, ds *housing.Dataset) error {
	years := ds.Years()
	metrics := []struct {
		name string
		get  func(s housing.SectorStats) any
	}{
		{housing.ColResidents, func(s housing.SectorStats) any { return s.Population }},
		{housing.ColAssessment, func(s housing.SectorStats) any { return ptr(s.MeanAssessment) }},
		{housing.ColVacancyRate, func(s housing.SectorStats) any { return ptr(s.MeanVacancy) }},
	}

	hdr := []any{housing.ColSector}
	for _, m := range metrics {
		for _, y := range years {
			hdr = append(hdr, fmt.Sprintf("%s %d", m.name, y))
		}
	}

	if e := writeRow(f, SheetPivot, 1, hdr); e != nil {
		return e
	}

	for ind, p := range housing.SectorPivot(ds) {
		line := []any{p.Sector}
		for _, m := range metrics {
			for _, y := range years {
				s, ok := p.Years[y]
				if !ok {
					line = append(line, nil)
					continue
				}

				line = append(line, m.get(s))
			}
		}

		if e := writeRow(f, SheetPivot, ind+2, line); e != nil {
			return e
		}
	}

	return setWidth(f, SheetPivot, len(hdr))
}

func writeMissing(f *excelize.File, ds *housing.Dataset) error {
	if e := writeRow(f, SheetMissing, 1, []any{"Column", "Missing Count", "Missing %"}); e != nil {
		return e
	}

	for ind, m := range housing.MissingSummary(ds) {
		if e := writeRow(f, SheetMissing, ind+2, []any{m.Column, m.Count, m.Percent}); e != nil {
			return e
		}
	}

	return setWidth(f, SheetMissing, 3)
}

func writeRow(f *excelize.File, sheet string, row int, values []any) error {
	cell, e := excelize.CoordinatesToCellName(1, row)
	if e != nil {
		return e
	}

	return f.SetSheetRow(sheet, cell, &values)
}

func setWidth(f *excelize.File, sheet string, cols int) error {
	last, e := excelize.ColumnNumberToName(cols)
	if e != nil {
		return e
	}

	return f.SetColWidth(sheet, "A", last, colWidth)
}

func toAny(s []string) []any {
	out := make([]any, len(s))
	for ind, x := range s {
		out[ind] = x
	}

	return out
}

// finite replaces NaN, which a sheet cannot hold, with an empty cell
func finite(x float64) any {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		return nil
	}

	return x
}

func ptr(x *float64) any {
	if x == nil {
		return nil
	}

	return *x
}
