package main

import (
	"github.com/spf13/cobra"
)

func (a *app) backtestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "backtest <file>",
		Short: "Forecast the last observed cycle and compare it with the actual values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := a.loadSeries(args[0])
			if err != nil {
				return err
			}

			p := a.cfg.Periodicity
			bt, err := a.forecaster().Backtest(series.Values, p)
			if err != nil {
				return explain(err)
			}

			a.log.Info().
				Int("periodicity", p).
				Float64("mae", bt.Accuracy.MAE).
				Float64("mape", bt.Accuracy.MAPE).
				Msg("backtest complete")

			return a.print(cmd.OutOrStdout(), backtestReport{
				Column:         series.Name,
				BacktestResult: bt,
			})
		},
	}
}
