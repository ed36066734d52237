// Package seasonal forecasts the next seasonal cycle of a time series using
// classical multiplicative decomposition.
//
// Given N observations and a periodicity P (observations per cycle), the
// forecaster
//
//  1. computes the centered moving average (CMA): a rolling mean of window P
//     followed by a rolling mean of window 2, N-P values in all;
//  2. divides the aligned series by the CMA to isolate the
//     irregular-seasonal component;
//  3. averages that component by phase to get one seasonal index per
//     position in the cycle, realigned to calendar order and rescaled so the
//     P indices sum to P;
//  4. deseasonalizes the series and fits a least squares line against the
//     period numbers 1..N;
//  5. projects the line over periods N+1..N+P and multiplies each value by
//     its seasonal index.
//
// Forecasts are rounded to two decimal places unless Options.Unrounded is
// set.
//
// # Basic Usage
//
//	quarterly := []float64{10, 20, 30, 40, 12, 22, 32, 42, 14, 24, 34, 44}
//	next, err := seasonal.Forecast(quarterly, 4)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
// # Errors
//
// Every error wraps one of three kinds:
//
//	switch {
//	case errors.Is(err, seasonal.ErrInvalidInput):
//	    // periodicity < 2, length not a multiple of P, fewer than 2 cycles
//	case errors.Is(err, seasonal.ErrDivisionByZero):
//	    // a CMA or seasonal index value is exactly zero
//	case errors.Is(err, seasonal.ErrSingularMatrix):
//	    // the trend regression cannot be solved
//	}
//
// # Options
//
//	f := seasonal.New(&seasonal.Options{Unrounded: true, MaxLength: 5000})
//	res, err := f.Run(values, 12)
//	// res.Forecast, res.Trend, res.Decomposition.SeasonalIndex
//
// # Backtesting
//
// Backtest holds out the last cycle, forecasts it from the remaining history
// and reports MAE, RMSE and MAPE:
//
//	bt, err := seasonal.Backtest(values, 4)
//	fmt.Println(bt.Actual, bt.Predicted, bt.Accuracy.MAPE)
//
// All functions are pure: inputs are never modified and concurrent calls
// share no state.
package seasonal
