// Package report renders equilibrium fraction tables as PNG charts.
package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/san-kum/ioneq/internal/ioneq"
)

var plotColors = []color.Color{
	color.RGBA{R: 255, A: 255},
	color.RGBA{G: 170, A: 255},
	color.RGBA{B: 255, A: 255},
	color.RGBA{R: 255, G: 165, A: 255},
	color.RGBA{R: 170, B: 170, A: 255},
	color.RGBA{G: 140, B: 140, A: 255},
	color.RGBA{R: 120, G: 120, A: 255},
	color.Gray{Y: 60},
}

// Options controls chart rendering.
type Options struct {
	// MinFraction drops stages whose peak fraction never reaches this
	// value, keeping legends readable for heavy elements.
	MinFraction float64
	Width       vg.Length
	Height      vg.Length
}

// DefaultOptions renders every stage peaking above 1% at 20x12 cm.
func DefaultOptions() Options {
	return Options{
		MinFraction: 0.01,
		Width:       20 * vg.Centimeter,
		Height:      12 * vg.Centimeter,
	}
}

// FractionPlot renders one line per ionization stage against log10
// temperature and returns the encoded PNG.
func FractionPlot(symbol string, frac *ioneq.FractionTable, opts Options) ([]byte, error) {
	if frac == nil || len(frac.Fractions) == 0 {
		return nil, fmt.Errorf("report: empty fraction table")
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Equilibrium ionization of %s", symbol)
	p.X.Label.Text = "log10 T (K)"
	p.Y.Label.Text = "population fraction"
	p.Y.Min = 0
	p.Y.Max = 1.05
	p.Add(plotter.NewGrid())

	for stage := 0; stage < frac.Stages(); stage++ {
		curve, err := frac.Stage(stage)
		if err != nil {
			return nil, err
		}
		peak := 0.0
		for _, v := range curve {
			peak = math.Max(peak, v)
		}
		if peak < opts.MinFraction {
			continue
		}

		pts := make(plotter.XYs, len(curve))
		for i, v := range curve {
			pts[i].X = math.Log10(frac.Temperature[i])
			pts[i].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return nil, err
		}
		line.Color = plotColors[stage%len(plotColors)]
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("%s %d", symbol, stage+1), line)
	}
	p.Legend.Top = true

	w, err := p.WriterTo(opts.Width, opts.Height, "png")
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	if _, err := w.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
