package chart

import (
	"fmt"
	"image/color"
	"math"
	"os"

	"github.com/invertedv/housing"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

const (
	panelWidth  = 16 * vg.Inch
	panelHeight = 12 * vg.Inch
	barWidth    = 20
)

// Panel draws the four charts of the analysis on one png: sector growth, sector values,
// inner-city vs suburban population and records by sector.
func Panel(ds *housing.Dataset, a *housing.Analysis, fileName string) error {
	var (
		plots [4]*plot.Plot
		e     error
	)

	if plots[0], e = growthPlot(GrowthSeries(a)); e != nil {
		return e
	}

	if plots[1], e = barPlot(ValueSeries(a), "Q2: Average Property Values by Sector", "Average assessment ($1000s)", colorValue); e != nil {
		return e
	}

	if plots[2], e = areaPlot(AreaSeries(a)); e != nil {
		return e
	}

	if plots[3], e = barPlot(SectorCounts(ds), "Dataset Distribution by Sector", "records", colorCount); e != nil {
		return e
	}

	img := vgimg.New(panelWidth, panelHeight)
	dc := draw.New(img)

	tiles := draw.Tiles{Rows: 2, Cols: 2, PadX: vg.Inch / 4, PadY: vg.Inch / 4,
		PadTop: vg.Inch / 4, PadBottom: vg.Inch / 4, PadLeft: vg.Inch / 4, PadRight: vg.Inch / 4}

	grid := [][]*plot.Plot{{plots[0], plots[1]}, {plots[2], plots[3]}}
	canvases := plot.Align(grid, tiles, dc)
	for row := range grid {
		for col, p := range grid[row] {
			p.Draw(canvases[row][col])
		}
	}

	f, e := os.Create(fileName)
	if e != nil {
		return e
	}
	defer func() { _ = f.Close() }()

	if _, e = (vgimg.PngCanvas{Canvas: img}).WriteTo(f); e != nil {
		return fmt.Errorf("writing %s: %w", fileName, e)
	}

	return nil
}

// growthPlot is a horizontal bar per sector, green for growth and red for decline
func growthPlot(s Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Q1: Population Growth by Sector (2016 to 2017)"
	p.X.Label.Text = "Population growth rate (%)"
	p.Add(plotter.NewGrid())

	if s.Len() == 0 {
		return p, nil
	}

	up, down := make(plotter.Values, s.Len()), make(plotter.Values, s.Len())
	for ind, v := range s.Values {
		if v < 0 {
			down[ind] = v
			continue
		}

		up[ind] = v
	}

	for _, part := range []struct {
		values plotter.Values
		color  string
	}{{up, colorGrowth}, {down, colorDecline}} {
		bars, e := plotter.NewBarChart(part.values, vg.Points(barWidth))
		if e != nil {
			return nil, e
		}

		bars.Horizontal = true
		bars.Color = hexColor(part.color)
		p.Add(bars)
	}

	p.NominalY(s.Names...)

	return p, nil
}

func barPlot(s Series, title, yLabel, hex string) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = title
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	if s.Len() == 0 {
		return p, nil
	}

	bars, e := plotter.NewBarChart(plotter.Values(s.Values), vg.Points(barWidth))
	if e != nil {
		return nil, e
	}

	bars.Color = hexColor(hex)
	p.Add(bars)
	p.NominalX(s.Names...)
	p.X.Tick.Label.Rotation = math.Pi / 4
	p.X.Tick.Label.XAlign = draw.XRight
	p.Y.Min = 0

	return p, nil
}

// areaPlot is a line per area type from the first to the last year
func areaPlot(areas map[housing.AreaType]Series) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Q3: Inner-City vs Suburban Population Growth Comparison"
	p.X.Label.Text = "Year"
	p.Y.Label.Text = "Total population"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for _, at := range housing.AreaTypes {
		s, ok := areas[at]
		if !ok {
			continue
		}

		xy := make(plotter.XYs, s.Len())
		for ind, x := range yearsOf(s) {
			xy[ind].X, xy[ind].Y = x, s.Values[ind]
		}

		line, points, e := plotter.NewLinePoints(xy)
		if e != nil {
			return nil, e
		}

		c := hexColor(areaColors[at])
		line.Color, points.Color = c, c
		line.Width = vg.Points(3)
		points.Radius = vg.Points(5)

		p.Add(line, points)
		p.Legend.Add(string(at), line, points)
	}

	p.X.Tick.Marker = plot.ConstantTicks(yearTicks())

	return p, nil
}

func yearTicks() []plot.Tick {
	var ticks []plot.Tick
	for _, y := range housing.Years {
		ticks = append(ticks, plot.Tick{Value: float64(y), Label: itoa(y)})
	}

	return ticks
}

// hexColor parses #rrggbb
func hexColor(hex string) color.Color {
	var r, g, b uint8
	if _, e := fmt.Sscanf(hex, "#%02x%02x%02x", &r, &g, &b); e != nil {
		return color.Black
	}

	return color.RGBA{R: r, G: g, B: b, A: 255}
}
