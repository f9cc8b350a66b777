package chart

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	grob "github.com/MetalBlueberry/go-plotly/graph_objects"
	"github.com/MetalBlueberry/go-plotly/offline"
	"github.com/invertedv/housing"
)

// Plot is an interactive plotly figure.
type Plot struct {
	Fig *grob.Fig
	Lay *grob.Layout
}

type Opt func(plot *Plot) *Plot

func NewPlot(opt ...Opt) *Plot {
	fig := &grob.Fig{}
	lay := &grob.Layout{}
	fig.Layout = lay
	p := &Plot{Fig: fig, Lay: lay}
	for _, o := range opt {
		o(p)
	}

	return p
}

func WithWidth(w float64) Opt {
	if w < 0.0 {
		panic(fmt.Errorf("negative width"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Width = w
		return p
	}
}

func WithHeight(h float64) Opt {
	if h < 0.0 {
		panic(fmt.Errorf("negative height"))
	}
	return func(p *Plot) *Plot {
		p.Lay.Height = h
		return p
	}
}

func WithTitle(title string) Opt {
	return func(p *Plot) *Plot { p.Lay.Title = &grob.LayoutTitle{Text: title}; return p }
}

func WithLegend(show bool) Opt {
	return func(p *Plot) *Plot {
		if show {
			p.Lay.Showlegend = grob.True
		} else {
			p.Lay.Showlegend = grob.False
		}

		return p
	}
}

func WithXlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Xaxis == nil {
			p.Lay.Xaxis = &grob.LayoutXaxis{}
		}

		p.Lay.Xaxis.Title = &grob.LayoutXaxisTitle{Text: label}
		return p
	}
}

func WithYlabel(label string) Opt {
	return func(p *Plot) *Plot {
		if p.Lay.Yaxis == nil {
			p.Lay.Yaxis = &grob.LayoutYaxis{}
		}

		p.Lay.Yaxis.Title = &grob.LayoutYaxisTitle{Text: label}
		return p
	}
}

// PlotBar adds a bar trace. With horizontal set the bars run along x and names label y.
func (p *Plot) PlotBar(names []string, values []float64, seriesName, color string, horizontal bool) error {
	if len(names) != len(values) {
		return fmt.Errorf("bar plot: %d names for %d values", len(names), len(values))
	}

	tr := &grob.Bar{Type: grob.TraceTypeBar, Name: seriesName, X: names, Y: values,
		Marker: &grob.BarMarker{Color: color}}

	if horizontal {
		tr.X, tr.Y = values, names
		tr.Orientation = grob.BarOrientationH
	}

	p.Fig.AddTraces(tr)

	return nil
}

func (p *Plot) PlotXY(x, y []float64, seriesName, color string) error {
	if len(x) != len(y) {
		return fmt.Errorf("xy plot: x has %d values, y has %d", len(x), len(y))
	}

	tr := &grob.Scatter{Type: grob.TraceTypeScatter, Name: seriesName, X: x, Y: y,
		Mode: grob.ScatterModeLines, Line: &grob.ScatterLine{Color: color}}

	p.Fig.AddTraces(tr)

	return nil
}

// Traces is the number of traces added so far.
func (p *Plot) Traces() int {
	return len(p.Fig.Data)
}

// Save writes the figure as a standalone html file.
func (p *Plot) Save(fileName string) error {
	if !strings.HasSuffix(strings.ToLower(fileName), ".html") {
		return fmt.Errorf("plot file %s must be .html", fileName)
	}

	if dir := filepath.Dir(fileName); dir != "" {
		if e := os.MkdirAll(dir, 0o755); e != nil {
			return e
		}
	}

	offline.ToHtml(p.Fig, fileName)

	return nil
}

// Show opens the figure in browser. With no fileName the figure goes to a temp file that is
// removed once the browser has loaded it.
func (p *Plot) Show(browser, fileName string) error {
	const nameLength = 8

	if browser == "" {
		browser = "xdg-open"
	}

	tmpFile := false
	if fileName == "" {
		fileName = tempFile("html", nameLength)
		tmpFile = true
	}

	if e := p.Save(fileName); e != nil {
		return e
	}

	cmd := exec.Command(browser, fileName)
	if e := cmd.Start(); e != nil {
		if tmpFile {
			_ = os.Remove(fileName)
		}

		return e
	}

	time.Sleep(time.Second) // need to pause while browser loads graph

	if tmpFile {
		if e := os.Remove(fileName); e != nil {
			return e
		}
	}

	return nil
}

// *********** Helpers ***********

// tempFile produces a random temp file name in the system's tmp location.
// The file has extension "ext". The file name begins with "tmp" has length 3 + length.
func tempFile(ext string, length int) string {
	return housing.Slash(os.TempDir()) + "tmp" + housing.RandomLetters(length) + "." + ext
}
