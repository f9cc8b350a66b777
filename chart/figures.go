package chart

import (
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/invertedv/housing"
)

// colors shared by the png panel and the html figures
const (
	colorGrowth  = "#1a9850"
	colorDecline = "#d73027"
	colorValue   = "#2E86AB"
	colorCount   = "#8da0cb"
	figureWidth  = 900.0
	figureHeight = 600.0
)

var areaColors = map[housing.AreaType]string{
	housing.InnerCity: "#e74c3c",
	housing.Suburban:  "#3498db",
}

// Figures builds the interactive version of each panel chart, keyed by file stem.
func Figures(ds *housing.Dataset, a *housing.Analysis) (map[string]*Plot, error) {
	figs := make(map[string]*Plot)

	growth := GrowthSeries(a)
	p := NewPlot(WithTitle("Population Growth by Sector (2016 to 2017)"), WithXlabel("Population growth rate (%)"),
		WithWidth(figureWidth), WithHeight(figureHeight), WithLegend(false))
	if e := p.PlotBar(growth.Names, growth.Values, "growth", colorGrowth, true); e != nil {
		return nil, e
	}
	figs["sector_growth"] = p

	value := ValueSeries(a)
	p = NewPlot(WithTitle("Average Property Values by Sector"), WithYlabel("Average assessment ($1000s)"),
		WithWidth(figureWidth), WithHeight(figureHeight), WithLegend(false))
	if e := p.PlotBar(value.Names, value.Values, "assessment", colorValue, false); e != nil {
		return nil, e
	}
	figs["sector_value"] = p

	p = NewPlot(WithTitle("Inner-City vs Suburban Population"), WithXlabel("year"), WithYlabel("total population"),
		WithWidth(figureWidth), WithHeight(figureHeight), WithLegend(true))
	areas := AreaSeries(a)
	for _, at := range housing.AreaTypes {
		s, ok := areas[at]
		if !ok {
			continue
		}

		if e := p.PlotXY(yearsOf(s), s.Values, string(at), areaColors[at]); e != nil {
			return nil, e
		}
	}
	figs["area_population"] = p

	counts := SectorCounts(ds)
	p = NewPlot(WithTitle("Dataset Distribution by Sector"), WithYlabel("records"),
		WithWidth(figureWidth), WithHeight(figureHeight), WithLegend(false))
	if e := p.PlotBar(counts.Names, counts.Values, "records", colorCount, false); e != nil {
		return nil, e
	}
	figs["sector_records"] = p

	return figs, nil
}

// SaveFigures writes each figure to dir as <stem>.html and returns the file names.
func SaveFigures(ds *housing.Dataset, a *housing.Analysis, dir string) ([]string, error) {
	figs, e := Figures(ds, a)
	if e != nil {
		return nil, e
	}

	var files []string
	for _, stem := range []string{"sector_growth", "sector_value", "area_population", "sector_records"} {
		fileName := filepath.Join(dir, stem+".html")
		if e := figs[stem].Save(fileName); e != nil {
			return files, fmt.Errorf("saving %s: %w", fileName, e)
		}

		files = append(files, fileName)
	}

	return files, nil
}

func yearsOf(s Series) []float64 {
	var x []float64
	for _, nm := range s.Names {
		y, _ := strconv.ParseFloat(nm, 64)
		x = append(x, y)
	}

	return x
}

func itoa(n int) string {
	return strconv.Itoa(n)
}
