// Package goseasonal provides next-cycle forecasting by classical
// multiplicative seasonal decomposition.
//
// GoSeasonal estimates the seasonal pattern of an equally spaced series with
// a centered moving average, removes it, fits a straight trend line by least
// squares and projects one full cycle ahead.
//
// # Features
//
//   - Centered moving average and irregular-seasonal component extraction
//   - Phase-averaged seasonal indices rescaled to sum to the periodicity
//   - Closed-form least squares trend
//   - Typed errors for invalid input, zero divisors and singular regressions
//   - Last-cycle backtesting with MAE, RMSE and MAPE
//   - CSV and Excel loaders for single-column uploads
//   - Chart rendering for history, backtest and forecast
//
// # Quick Start
//
// Forecast the next quarter:
//
//	forecast, err := seasonal.Forecast(values, 4)
//
// Load an uploaded workbook and backtest the last cycle:
//
//	series, err := timeseries.Load("sales.xlsx", "", true)
//	bt, err := seasonal.Backtest(series.Values, 4)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - seasonal: Decomposition, forecasting and backtesting
//   - timeseries: Series type plus CSV and Excel loaders
//   - stats: Forecast accuracy measures
//   - chart: PNG/SVG chart rendering
//   - config: YAML settings for the command line tool
//
// The seasonal command (cmd/seasonal) wraps these for use from a shell.
//
// # References
//
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice, ch. 3
package goseasonal
