package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/sartorproj/goseasonal/chart"
	"github.com/sartorproj/goseasonal/seasonal"
	"github.com/sartorproj/goseasonal/timeseries"
)

func (a *app) forecastCmd() *cobra.Command {
	var (
		chartDir string
		outFile  string
	)

	cmd := &cobra.Command{
		Use:   "forecast <file>",
		Short: "Forecast the next seasonal cycle",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("chart-dir") {
				a.cfg.ChartDir = chartDir
			}

			series, err := a.loadSeries(args[0])
			if err != nil {
				return err
			}

			p := a.cfg.Periodicity
			res, err := a.forecaster().Run(series.Values, p)
			if err != nil {
				return explain(err)
			}

			a.log.Info().
				Int("periodicity", p).
				Float64("slope", res.Decomposition.Trend.Slope).
				Floats64("forecast", res.Forecast).
				Msg("forecast ready")

			if outFile != "" {
				out := timeseries.New(res.Forecast)
				out.Name = series.Name + "_forecast"
				if err := timeseries.SaveCSV(out, outFile, true); err != nil {
					return fmt.Errorf("write %s: %w", outFile, err)
				}
				a.log.Info().Str("file", outFile).Msg("forecast written")
			}

			if a.cfg.ChartDir != "" {
				if err := a.renderCharts(series.Values, res.Forecast); err != nil {
					return err
				}
			}

			return a.print(cmd.OutOrStdout(), forecastReport{
				Column:      series.Name,
				Periodicity: p,
				Periods:     res.NextPeriods,
				Forecast:    res.Forecast,
			})
		},
	}

	cmd.Flags().StringVar(&chartDir, "chart-dir", "", "write charts into this directory")
	cmd.Flags().StringVarP(&outFile, "out", "o", "", "write the forecast to a CSV file")
	return cmd
}

// renderCharts draws the forecast charts. The last-period chart needs a
// backtest, which is skipped for series shorter than three cycles.
func (a *app) renderCharts(history, forecast []float64) error {
	p := a.cfg.Periodicity

	var lastPeriod []float64
	if len(history) >= 3*p {
		bt, err := a.forecaster().Backtest(history, p)
		if err != nil {
			a.log.Warn().Err(err).Msg("last period prediction unavailable")
		} else {
			lastPeriod = bt.Predicted
		}
	}

	paths, err := chart.Render(a.cfg.ChartDir, history, lastPeriod, forecast)
	if err != nil {
		return fmt.Errorf("render charts: %w", err)
	}
	for _, path := range paths {
		a.log.Info().Str("file", path).Msg("chart written")
	}
	return nil
}

// explain adds a user-facing hint to forecasting errors.
func explain(err error) error {
	switch {
	case errors.Is(err, seasonal.ErrInvalidInput):
		return fmt.Errorf("the series cannot be forecast with this periodicity: %w", err)
	case errors.Is(err, seasonal.ErrDivisionByZero):
		return fmt.Errorf("the series has zero-valued seasons or averages: %w", err)
	case errors.Is(err, seasonal.ErrSingularMatrix):
		return fmt.Errorf("the trend could not be estimated: %w", err)
	}
	return err
}
