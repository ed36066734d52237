// Package chart renders forecast charts as image files.
//
// Three charts are produced for a forecast:
//
//   - original_data.png: the observed series;
//   - all_periods_data.png: the series against a backtest of its last
//     cycle (only when a backtest is available);
//   - historic_and_prediction_data.png: the series followed by the
//     forecast of the next cycle.
//
// The file extension picks the image format (png, svg, pdf, ...).
package chart

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

// File names written by Render.
const (
	OriginalFile   = "original_data.png"
	LastPeriodFile = "all_periods_data.png"
	NextPeriodFile = "historic_and_prediction_data.png"
)

var (
	realColor       = color.RGBA{R: 214, G: 39, B: 40, A: 255}
	predictionColor = color.RGBA{R: 44, G: 160, B: 44, A: 255}
)

// Dimensions of every saved chart.
var (
	Width  = 10 * vg.Inch
	Height = 5 * vg.Inch
)

// Render writes all available charts into dir and returns their paths.
// lastPeriod holds the backtest prediction of the final cycle of history and
// may be nil.
func Render(dir string, history, lastPeriod, forecast []float64) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create chart dir: %w", err)
	}

	var paths []string
	save := func(p *plot.Plot, name string) error {
		path := filepath.Join(dir, name)
		if err := p.Save(Width, Height, path); err != nil {
			return fmt.Errorf("save %s: %w", name, err)
		}
		paths = append(paths, path)
		return nil
	}

	p, err := Original(history)
	if err != nil {
		return nil, err
	}
	if err := save(p, OriginalFile); err != nil {
		return nil, err
	}

	if lastPeriod != nil {
		p, err = LastPeriod(history, lastPeriod)
		if err != nil {
			return nil, err
		}
		if err := save(p, LastPeriodFile); err != nil {
			return nil, err
		}
	}

	p, err = NextPeriod(history, forecast)
	if err != nil {
		return nil, err
	}
	if err := save(p, NextPeriodFile); err != nil {
		return nil, err
	}

	return paths, nil
}

// Original plots the observed series.
func Original(history []float64) (*plot.Plot, error) {
	p := newPlot("Original Data")
	line, err := newLine(0, history, realColor)
	if err != nil {
		return nil, err
	}
	p.Add(line)
	return p, nil
}

// LastPeriod plots history against the same history with its final cycle
// replaced by the backtest prediction.
func LastPeriod(history, predicted []float64) (*plot.Plot, error) {
	if len(predicted) > len(history) {
		return nil, fmt.Errorf("prediction (%d) longer than history (%d)", len(predicted), len(history))
	}

	combined := make([]float64, 0, len(history))
	combined = append(combined, history[:len(history)-len(predicted)]...)
	combined = append(combined, predicted...)

	p := newPlot("Last Period Prediction")
	pred, err := newLine(0, combined, predictionColor)
	if err != nil {
		return nil, err
	}
	actual, err := newLine(0, history, realColor)
	if err != nil {
		return nil, err
	}
	p.Add(pred, actual)
	p.Legend.Add("Prediction", pred)
	p.Legend.Add("Real", actual)
	return p, nil
}

// NextPeriod plots history followed by the forecast, joined at the last
// observation.
func NextPeriod(history, forecast []float64) (*plot.Plot, error) {
	if len(history) == 0 {
		return nil, fmt.Errorf("empty history")
	}

	joined := make([]float64, 0, len(forecast)+1)
	joined = append(joined, history[len(history)-1])
	joined = append(joined, forecast...)

	p := newPlot("Data and Next Period Prediction")
	pred, err := newLine(len(history)-1, joined, predictionColor)
	if err != nil {
		return nil, err
	}
	actual, err := newLine(0, history, realColor)
	if err != nil {
		return nil, err
	}
	p.Add(pred, actual)
	p.Legend.Add("Prediction", pred)
	p.Legend.Add("Real", actual)
	return p, nil
}

func newPlot(title string) *plot.Plot {
	p := plot.New()
	p.Title.Text = title
	p.Title.TextStyle.Font.Size = vg.Points(20)
	p.Y.Label.Text = "Value"
	p.Y.Label.TextStyle.Font.Size = vg.Points(15)
	p.X.Tick.Marker = plot.ConstantTicks(nil)
	p.Legend.Top = true
	p.Add(plotter.NewGrid())
	return p
}

func newLine(start int, values []float64, c color.Color) (*plotter.Line, error) {
	pts := make(plotter.XYs, len(values))
	for i, v := range values {
		pts[i].X = float64(start + i)
		pts[i].Y = v
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.Color = c
	line.Width = vg.Points(2)
	return line, nil
}
