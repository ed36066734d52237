package seasonal

import (
	"fmt"

	"github.com/sartorproj/goseasonal/stats"
)

// BacktestResult compares a forecast of the last observed cycle with the
// values that were actually observed.
type BacktestResult struct {
	Periodicity int            `json:"periodicity"`
	Actual      []float64      `json:"actual"`
	Predicted   []float64      `json:"predicted"`
	Accuracy    stats.Accuracy `json:"accuracy"`
}

// Backtest holds out the last cycle of values, forecasts it from the rest and
// reports the error. values needs at least three full cycles.
func Backtest(values []float64, periodicity int) (*BacktestResult, error) {
	return New(nil).Backtest(values, periodicity)
}

// Backtest holds out the last cycle of values and forecasts it from the rest.
func (f *Forecaster) Backtest(values []float64, periodicity int) (*BacktestResult, error) {
	if err := validate(values, periodicity, f.opts.MaxLength); err != nil {
		return nil, err
	}
	n := len(values)
	if n < 3*periodicity {
		return nil, fmt.Errorf("%w: backtesting needs at least three full cycles (%d observations), got %d",
			ErrInvalidInput, 3*periodicity, n)
	}

	predicted, err := f.Forecast(values[:n-periodicity], periodicity)
	if err != nil {
		return nil, err
	}

	actual := make([]float64, periodicity)
	copy(actual, values[n-periodicity:])

	acc, err := stats.Evaluate(actual, predicted)
	if err != nil {
		return nil, err
	}

	return &BacktestResult{
		Periodicity: periodicity,
		Actual:      actual,
		Predicted:   predicted,
		Accuracy:    acc,
	}, nil
}
