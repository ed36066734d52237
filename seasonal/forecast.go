package seasonal

import (
	"fmt"
	"math"
	"math/big"

	"github.com/shopspring/decimal"

	"github.com/sartorproj/goseasonal/timeseries"
)

// DefaultMaxLength caps the number of observations accepted by default.
const DefaultMaxLength = 100000

// DefaultDecimals is the number of decimal places kept in a forecast.
const DefaultDecimals = 2

// Options configures a Forecaster.
type Options struct {
	Decimals  int  // Decimal places kept after rounding (default: 2)
	Unrounded bool // Return full precision and ignore Decimals
	MaxLength int  // Longest accepted series, 0 for no limit (default: 100000)
}

// DefaultOptions returns the default forecasting options.
func DefaultOptions() *Options {
	return &Options{
		Decimals:  DefaultDecimals,
		MaxLength: DefaultMaxLength,
	}
}

// Forecaster produces next-cycle forecasts by seasonal decomposition.
// A Forecaster holds no mutable state and is safe for concurrent use.
type Forecaster struct {
	opts Options
}

// New creates a Forecaster. A nil opts uses DefaultOptions.
func New(opts *Options) *Forecaster {
	if opts == nil {
		opts = DefaultOptions()
	}
	o := *opts
	if o.Decimals < 0 {
		o.Decimals = 0
	}
	return &Forecaster{opts: o}
}

// Options returns a copy of the forecaster's options.
func (f *Forecaster) Options() Options {
	return f.opts
}

// Forecast predicts the periodicity values that follow the last observation,
// rounded to two decimal places.
//
// The length of values must be a multiple of periodicity and cover at least
// two full cycles. values is never modified.
func Forecast(values []float64, periodicity int) ([]float64, error) {
	return New(nil).Forecast(values, periodicity)
}

// Forecast predicts the periodicity values that follow the last observation.
func (f *Forecaster) Forecast(values []float64, periodicity int) ([]float64, error) {
	result, err := f.Run(values, periodicity)
	if err != nil {
		return nil, err
	}
	return result.Forecast, nil
}

// ForecastSeries is Forecast for a Series. The returned series is named after
// the input with a "_forecast" suffix.
func (f *Forecaster) ForecastSeries(series *timeseries.Series, periodicity int) (*timeseries.Series, error) {
	values, err := f.Forecast(series.Values, periodicity)
	if err != nil {
		return nil, err
	}
	out := timeseries.New(values)
	out.Name = series.Name + "_forecast"
	return out, nil
}

// Decompose returns the decomposition behind a forecast without projecting it.
func (f *Forecaster) Decompose(values []float64, periodicity int) (*Decomposition, error) {
	return decompose(values, periodicity, f.opts.MaxLength)
}

// Result bundles a forecast with the decomposition it was derived from.
type Result struct {
	Forecast      []float64      `json:"forecast"`
	Trend         []float64      `json:"trend"`
	NextPeriods   []int          `json:"next_periods"`
	Decomposition *Decomposition `json:"decomposition"`
}

// Run decomposes values and projects the next cycle.
func (f *Forecaster) Run(values []float64, periodicity int) (*Result, error) {
	d, err := f.Decompose(values, periodicity)
	if err != nil {
		return nil, err
	}

	n := len(values)
	next := make([]int, periodicity)
	trend := make([]float64, periodicity)
	forecast := make([]float64, periodicity)
	for k := range forecast {
		next[k] = n + 1 + k
		trend[k] = d.Trend.At(next[k])
		v := trend[k] * d.SeasonalIndex[k]
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, fmt.Errorf("%w: forecast for period %d is not finite", ErrInvalidInput, next[k])
		}
		forecast[k] = f.round(v)
	}

	return &Result{
		Forecast:      forecast,
		Trend:         trend,
		NextPeriods:   next,
		Decomposition: d,
	}, nil
}

func (f *Forecaster) round(v float64) float64 {
	if f.opts.Unrounded {
		return v
	}
	return Round(v, f.opts.Decimals)
}

// Round rounds v to the given number of decimal places.
//
// Rounding works on the exact binary value of v, not its shortest decimal
// form, so 2.675 (stored as 2.67499999...) rounds to 2.67. Exact ties such
// as 0.125 go to the even digit.
func Round(v float64, places int) float64 {
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	r, _ := exactDecimal(v).RoundBank(int32(places)).Float64()
	return r
}

// exactDecimal returns the decimal expansion of v with no rounding.
// A finite float64 is m * 2^e with |m| < 2^53, and 2^-k = 5^k * 10^-k.
func exactDecimal(v float64) decimal.Decimal {
	frac, exp := math.Frexp(v)
	m := big.NewInt(int64(frac * (1 << 53)))
	exp -= 53

	if exp >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(exp)), 0)
	}
	five := new(big.Int).Exp(big.NewInt(5), big.NewInt(int64(-exp)), nil)
	return decimal.NewFromBigInt(m.Mul(m, five), int32(exp))
}
