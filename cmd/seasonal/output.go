package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/sartorproj/goseasonal/seasonal"
)

// report is anything the CLI can print as text or JSON.
type report interface {
	writeText(w io.Writer) error
}

func (a *app) print(w io.Writer, r report) error {
	if a.cfg.OutputFormat == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(r)
	}
	return r.writeText(w)
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

type forecastReport struct {
	Column      string    `json:"column"`
	Periodicity int       `json:"periodicity"`
	Periods     []int     `json:"periods"`
	Forecast    []float64 `json:"forecast"`
}

func (r forecastReport) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "PERIOD\tFORECAST\n")
	for i, v := range r.Forecast {
		fmt.Fprintf(tw, "%d\t%s\n", r.Periods[i], num(v))
	}
	return tw.Flush()
}

type backtestReport struct {
	Column string `json:"column"`
	*seasonal.BacktestResult
}

func (r backtestReport) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "PHASE\tACTUAL\tPREDICTED\n")
	for i := range r.Actual {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, num(r.Actual[i]), num(r.Predicted[i]))
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\nMAE=%.4f RMSE=%.4f MAPE=%.2f%%\n",
		r.Accuracy.MAE, r.Accuracy.RMSE, r.Accuracy.MAPE)
	return err
}

type decomposeReport struct {
	Column string `json:"column"`
	*seasonal.Decomposition
}

func (r decomposeReport) writeText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "PHASE\tSEASONAL INDEX\n")
	for i, s := range r.SeasonalIndex {
		fmt.Fprintf(tw, "%d\t%.6f\n", i+1, s)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	_, err := fmt.Fprintf(w, "\ntrend: %.6f + %.6f*t  (adjustment %.6f)\n",
		r.Trend.Intercept, r.Trend.Slope, r.Adjustment)
	return err
}
