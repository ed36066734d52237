package main

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/sartorproj/goseasonal/config"
	"github.com/sartorproj/goseasonal/seasonal"
	"github.com/sartorproj/goseasonal/timeseries"
)

const appName = "seasonal"

// app carries the state shared by every subcommand.
type app struct {
	cfg        *config.Config
	log        zerolog.Logger
	configPath string
}

func newRootCmd(logger zerolog.Logger) *cobra.Command {
	a := &app{cfg: config.Default(), log: logger}

	root := &cobra.Command{
		Use:   appName,
		Short: "Seasonal decomposition forecaster",
		Long: `Forecast the next seasonal cycle of a series using classical
multiplicative decomposition and a linear trend.

The input file holds one numeric column (CSV, TSV or XLSX). Its length must be
a multiple of the periodicity and cover at least two full cycles.

Examples:
  seasonal forecast sales.xlsx -p 4
  seasonal backtest sales.csv -p 12 --format json
  seasonal decompose sales.csv --column revenue`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.loadConfig(cmd.Flags())
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "YAML config file")
	flags.IntP("periodicity", "p", a.cfg.Periodicity, "observations per seasonal cycle")
	flags.String("column", "", "value column (default: require a single-column file)")
	flags.Int("decimals", a.cfg.Decimals, "decimal places kept in forecasts")
	flags.Bool("unrounded", false, "keep full precision")
	flags.Int("max-length", a.cfg.MaxLength, "longest accepted series (0 for no limit)")
	flags.String("log-level", a.cfg.LogLevel, "log level (debug|info|warn|error)")
	flags.String("format", a.cfg.OutputFormat, "output format (text|json)")

	root.AddCommand(a.forecastCmd())
	root.AddCommand(a.backtestCmd())
	root.AddCommand(a.decomposeCmd())

	return root
}

// loadConfig reads the config file and lets explicitly set flags win.
func (a *app) loadConfig(flags *pflag.FlagSet) error {
	cfg, err := config.Load(a.configPath, false)
	if err != nil {
		return err
	}

	overrides := []error{
		override(flags, "periodicity", flags.GetInt, &cfg.Periodicity),
		override(flags, "column", flags.GetString, &cfg.ValueColumn),
		override(flags, "decimals", flags.GetInt, &cfg.Decimals),
		override(flags, "unrounded", flags.GetBool, &cfg.Unrounded),
		override(flags, "max-length", flags.GetInt, &cfg.MaxLength),
		override(flags, "log-level", flags.GetString, &cfg.LogLevel),
		override(flags, "format", flags.GetString, &cfg.OutputFormat),
	}
	if err := errors.Join(overrides...); err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", cfg.LogLevel, err)
	}
	a.log = a.log.Level(level)
	a.cfg = cfg

	a.log.Debug().
		Str("config", a.configPath).
		Int("periodicity", cfg.Periodicity).
		Int("decimals", cfg.Decimals).
		Bool("unrounded", cfg.Unrounded).
		Int("max_length", cfg.MaxLength).
		Msg("configuration loaded")
	return nil
}

// override copies the named flag into dst when it was set on the command line.
func override[T any](flags *pflag.FlagSet, name string, get func(string) (T, error), dst *T) error {
	if !flags.Changed(name) {
		return nil
	}
	v, err := get(name)
	if err != nil {
		return fmt.Errorf("flag --%s: %w", name, err)
	}
	*dst = v
	return nil
}

func (a *app) forecaster() *seasonal.Forecaster {
	return seasonal.New(a.cfg.ForecastOptions())
}

// loadSeries reads the input file. Without a column name the file must hold
// exactly one column.
func (a *app) loadSeries(path string) (*timeseries.Series, error) {
	column := a.cfg.ValueColumn
	series, err := timeseries.Load(path, column, column == "")
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	if series.Name == "" {
		series.Name = "y"
	}

	a.log.Info().
		Str("file", path).
		Str("column", series.Name).
		Int("observations", series.Len()).
		Float64("min", series.Min()).
		Float64("max", series.Max()).
		Msg("series loaded")
	return series, nil
}
