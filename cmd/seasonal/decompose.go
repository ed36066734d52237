package main

import (
	"github.com/spf13/cobra"
)

func (a *app) decomposeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "decompose <file>",
		Short: "Show the seasonal index and trend behind a forecast",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			series, err := a.loadSeries(args[0])
			if err != nil {
				return err
			}

			d, err := a.forecaster().Decompose(series.Values, a.cfg.Periodicity)
			if err != nil {
				return explain(err)
			}

			return a.print(cmd.OutOrStdout(), decomposeReport{
				Column:        series.Name,
				Decomposition: d,
			})
		},
	}
}
