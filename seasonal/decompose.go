package seasonal

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/goseasonal/timeseries"
)

// Decomposition holds the intermediate components of a classical
// multiplicative decomposition, Y = T * S * I.
type Decomposition struct {
	Periodicity int `json:"periodicity"`

	// CMA is the centered moving average (trend-cycle), length N-P.
	CMA []float64 `json:"cma"`

	// IrregularSeasonal is the aligned series divided by CMA, length N-P.
	IrregularSeasonal []float64 `json:"irregular_seasonal"`

	// SeasonalIndex holds one rescaled factor per phase in calendar order.
	// The factors sum to Periodicity.
	SeasonalIndex []float64 `json:"seasonal_index"`

	// Adjustment is the factor applied to the raw index so it sums to P.
	Adjustment float64 `json:"adjustment"`

	// Deseasonalized is the series divided by the tiled seasonal index.
	Deseasonalized []float64 `json:"deseasonalized"`

	// Trend is the least squares line through Deseasonalized.
	Trend Trend `json:"trend"`
}

// Decompose splits values into trend-cycle, seasonal and trend components
// using the default options.
func Decompose(values []float64, periodicity int) (*Decomposition, error) {
	return decompose(values, periodicity, DefaultOptions().MaxLength)
}

// Offset returns the number of leading observations dropped when aligning
// the series with its centered moving average.
func Offset(periodicity int) int {
	return periodicity - periodicity/2
}

// validate checks the preconditions shared by every entry point.
func validate(values []float64, periodicity, maxLength int) error {
	n := len(values)
	switch {
	case periodicity < 2:
		return fmt.Errorf("%w: periodicity must be at least 2, got %d", ErrInvalidInput, periodicity)
	case n%periodicity != 0:
		return fmt.Errorf("%w: the length of the series (%d) does not match its periodicity (%d)",
			ErrInvalidInput, n, periodicity)
	case n < 2*periodicity:
		return fmt.Errorf("%w: need at least two full cycles (%d observations), got %d",
			ErrInvalidInput, 2*periodicity, n)
	case maxLength > 0 && n > maxLength:
		return fmt.Errorf("%w: series length %d exceeds the maximum of %d", ErrInvalidInput, n, maxLength)
	}
	if err := timeseries.New(values).Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	return nil
}

func decompose(values []float64, periodicity, maxLength int) (*Decomposition, error) {
	if err := validate(values, periodicity, maxLength); err != nil {
		return nil, err
	}

	p := periodicity
	series := timeseries.New(values)
	n := series.Len()

	// Step 1: centered moving average, rolling P then rolling 2
	cma := series.MovingAverage(p).MovingAverage(2).Values

	// Step 2: irregular-seasonal component over the aligned slice
	start := Offset(p)
	irregular := make([]float64, len(cma))
	for j, c := range cma {
		if c == 0 {
			return nil, fmt.Errorf("%w: centered moving average is zero at observation %d",
				ErrDivisionByZero, start+j+1)
		}
		irregular[j] = series.Values[start+j] / c
	}

	// Step 3: average by phase, then realign to calendar order
	index := rotateLeft(phaseMeans(irregular, p), p/2)

	// Step 4: rescale so the index sums to P
	total := floats.Sum(index)
	if total == 0 {
		return nil, fmt.Errorf("%w: seasonal index sums to zero", ErrDivisionByZero)
	}
	adjustment := float64(p) / total
	floats.Scale(adjustment, index)

	// Step 5: deseasonalize against the tiled index
	deseasonalized := make([]float64, n)
	for i, v := range series.Values {
		s := index[i%p]
		if s == 0 {
			return nil, fmt.Errorf("%w: seasonal index is zero for phase %d", ErrDivisionByZero, i%p+1)
		}
		deseasonalized[i] = v / s
	}

	// Step 6: linear trend through the deseasonalized series
	trend, err := FitTrend(deseasonalized)
	if err != nil {
		return nil, err
	}

	return &Decomposition{
		Periodicity:       p,
		CMA:               cma,
		IrregularSeasonal: irregular,
		SeasonalIndex:     index,
		Adjustment:        adjustment,
		Deseasonalized:    deseasonalized,
		Trend:             trend,
	}, nil
}

// phaseMeans averages values that share the same position modulo p.
// Position 0 is the first aligned observation, not calendar phase 0.
func phaseMeans(values []float64, p int) []float64 {
	sums := make([]float64, p)
	counts := make([]int, p)
	for j, v := range values {
		sums[j%p] += v
		counts[j%p]++
	}

	means := make([]float64, p)
	for i := range means {
		switch counts[i] {
		case 0:
			means[i] = math.NaN()
		case 1:
			means[i] = sums[i]
		default:
			means[i] = sums[i] / float64(counts[i])
		}
	}
	return means
}

// rotateLeft returns a copy of values circularly shifted left by k.
func rotateLeft(values []float64, k int) []float64 {
	n := len(values)
	out := make([]float64, n)
	for i := range out {
		out[i] = values[(i+k)%n]
	}
	return out
}

// AdjustedSeasonal tiles the seasonal index across n periods.
func (d *Decomposition) AdjustedSeasonal(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d.SeasonalIndex[i%d.Periodicity]
	}
	return out
}

// Fitted returns the in-sample trend times seasonal index for n periods.
func (d *Decomposition) Fitted(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Trend.At(i+1) * d.SeasonalIndex[i%d.Periodicity]
	}
	return out
}
