package seasonal

import (
	"errors"
	"math"
	"math/rand"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sartorproj/goseasonal/timeseries"
)

// repeat tiles pattern k times.
func repeat(pattern []float64, k int) []float64 {
	out := make([]float64, 0, len(pattern)*k)
	for i := 0; i < k; i++ {
		out = append(out, pattern...)
	}
	return out
}

// rampWithSeason multiplies the ramp start, start+1, ... by cyclic factors.
func rampWithSeason(start float64, factors []float64, cycles int) []float64 {
	n := len(factors) * cycles
	out := make([]float64, n)
	for i := range out {
		out[i] = (start + float64(i)) * factors[i%len(factors)]
	}
	return out
}

func TestForecastPureSeasonal(t *testing.T) {
	values := repeat([]float64{10, 20, 30, 40}, 3)

	forecast, err := Forecast(values, 4)
	require.NoError(t, err)

	expected := []float64{10, 20, 30, 40}
	require.Len(t, forecast, 4)
	for i, v := range expected {
		assert.InDelta(t, v, forecast[i], 1e-9, "period %d", i+1)
	}
}

func TestForecastTrendWithSeason(t *testing.T) {
	factors := []float64{0.8, 0.9, 1.1, 1.2}
	values := rampWithSeason(100, factors, 3)

	forecast, err := Forecast(values, 4)
	require.NoError(t, err)

	// The ramp continues at 112..115.
	for k, factor := range factors {
		expected := (112 + float64(k)) * factor
		assert.InEpsilon(t, expected, forecast[k], 0.01, "period %d", 13+k)
	}
}

func TestForecastMonthly(t *testing.T) {
	values := []float64{
		112, 118, 132, 129, 121, 135, 148, 148, 136, 119, 104, 118,
		115, 126, 141, 135, 125, 149, 170, 170, 158, 133, 114, 140,
	}
	expected := []float64{
		129.19, 140.58, 156.26, 148.99, 137.89, 163.89,
		179.36, 179.91, 165.51, 145.07, 127.21, 144.44,
	}

	forecast, err := Forecast(values, 12)
	require.NoError(t, err)
	require.Len(t, forecast, 12)
	for i, v := range expected {
		assert.InDelta(t, v, forecast[i], 0.011, "month %d", i+1)
	}
}

func TestForecastOddPeriodicity(t *testing.T) {
	tests := []struct {
		name        string
		values      []float64
		periodicity int
		expected    []float64
	}{
		{"linear p3", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 3, []float64{9.91, 10.69, 12.26}},
		{"seasonal p3", []float64{3, 5, 9, 4, 6, 10, 5, 7, 11, 6, 8, 12}, 3, []float64{6.36, 8.87, 14.51}},
		{"seasonal p5", []float64{5, 9, 4, 6, 10, 5, 7, 11, 6, 8, 12, 7, 9, 13, 8}, 5, []float64{10.92, 8.91, 12.99, 9.15, 14.02}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecast, err := Forecast(tt.values, tt.periodicity)
			require.NoError(t, err)
			require.Len(t, forecast, tt.periodicity)
			for i, v := range tt.expected {
				assert.InDelta(t, v, forecast[i], 0.011, "period %d", i+1)
			}
		})
	}
}

func TestForecastInvalidInput(t *testing.T) {
	tests := []struct {
		name        string
		values      []float64
		periodicity int
	}{
		{"periodicity one", []float64{1, 2, 3, 4}, 1},
		{"periodicity zero", []float64{1, 2, 3, 4}, 0},
		{"negative periodicity", []float64{1, 2, 3, 4}, -4},
		{"not a multiple", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9}, 4},
		{"single cycle", []float64{1, 2, 3, 4}, 4},
		{"empty", nil, 4},
		{"nan", []float64{1, 2, math.NaN(), 4, 5, 6, 7, 8}, 4},
		{"inf", []float64{1, 2, 3, 4, 5, 6, 7, math.Inf(-1)}, 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			forecast, err := Forecast(tt.values, tt.periodicity)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Nil(t, forecast)
		})
	}
}

func TestForecastMaxLength(t *testing.T) {
	values := repeat([]float64{10, 20, 30, 40}, 5)

	f := New(&Options{Decimals: 2, MaxLength: 16})
	_, err := f.Forecast(values, 4)
	assert.ErrorIs(t, err, ErrInvalidInput)

	f = New(&Options{Decimals: 2})
	_, err = f.Forecast(values, 4)
	assert.NoError(t, err, "zero MaxLength means no limit")
}

func TestForecastDivisionByZero(t *testing.T) {
	t.Run("zero moving average", func(t *testing.T) {
		_, err := Forecast(make([]float64, 8), 4)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})

	t.Run("zero seasonal index", func(t *testing.T) {
		// The second quarter is always zero, so its seasonal index is zero.
		values := repeat([]float64{10, 0, 30, 40}, 3)
		forecast, err := Forecast(values, 4)
		assert.ErrorIs(t, err, ErrDivisionByZero)
		assert.Nil(t, forecast)
	})

	t.Run("cancelling moving average", func(t *testing.T) {
		_, err := Forecast([]float64{1, -1, 1, -1, 1, -1, 1, -1}, 2)
		assert.ErrorIs(t, err, ErrDivisionByZero)
	})
}

func TestForecastErrorKindsAreDistinct(t *testing.T) {
	kinds := []error{ErrInvalidInput, ErrDivisionByZero, ErrSingularMatrix}
	for i, a := range kinds {
		for j, b := range kinds {
			assert.Equal(t, i == j, errors.Is(a, b))
		}
	}
}

func TestForecastProperties(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		p := 2 + rng.Intn(11)
		cycles := 2 + rng.Intn(5)
		values := make([]float64, p*cycles)
		for i := range values {
			values[i] = 50 + 0.5*float64(i) + 20*rng.Float64()
		}
		before := append([]float64(nil), values...)

		f := New(&Options{Unrounded: true, MaxLength: DefaultMaxLength})
		first, err := f.Run(values, p)
		require.NoError(t, err, "p=%d cycles=%d", p, cycles)

		// Exactly P values
		require.Len(t, first.Forecast, p)

		// Seasonal index sums to P
		sum := 0.0
		for _, s := range first.Decomposition.SeasonalIndex {
			sum += s
		}
		assert.InDelta(t, float64(p), sum, 1e-9)

		// Inputs are untouched
		assert.Equal(t, before, values)

		// Identical inputs give bit-identical output
		second, err := f.Run(values, p)
		require.NoError(t, err)
		for k := range first.Forecast {
			assert.Equal(t, math.Float64bits(first.Forecast[k]), math.Float64bits(second.Forecast[k]))
		}
	}
}

func TestForecastConcurrent(t *testing.T) {
	values := rampWithSeason(100, []float64{0.8, 0.9, 1.1, 1.2}, 4)
	want, err := Forecast(values, 4)
	require.NoError(t, err)

	var wg sync.WaitGroup
	results := make([][]float64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], _ = Forecast(values, 4)
		}(i)
	}
	wg.Wait()

	for _, got := range results {
		assert.Equal(t, want, got)
	}
}

func TestForecastRounding(t *testing.T) {
	values := rampWithSeason(100, []float64{0.8, 0.9, 1.1, 1.2}, 3)

	raw, err := New(&Options{Unrounded: true}).Forecast(values, 4)
	require.NoError(t, err)
	rounded, err := Forecast(values, 4)
	require.NoError(t, err)
	oneDigit, err := New(&Options{Decimals: 1}).Forecast(values, 4)
	require.NoError(t, err)

	for k := range raw {
		assert.InDelta(t, raw[k], rounded[k], 0.005)
		assert.Equal(t, rounded[k], Round(rounded[k], 2))
		assert.InDelta(t, raw[k], oneDigit[k], 0.05)
	}
	assert.InDelta(t, 89.6631589069711, raw[0], 1e-9)
	assert.Equal(t, 89.66, rounded[0])
}

func TestRound(t *testing.T) {
	tests := []struct {
		in       float64
		places   int
		expected float64
	}{
		// Stored just below the half: 2.67499999999999982236431605997495353221893310546875.
		{2.675, 2, 2.67},
		// Stored just above the half.
		{2.665, 2, 2.67},
		{1.015, 2, 1.01},
		{1.235, 2, 1.24},
		{-2.345, 2, -2.35},
		// Exact binary ties go to even.
		{0.125, 2, 0.12},
		{0.375, 2, 0.38},
		{2.5, 0, 2},
		{1.234, 2, 1.23},
		{10, 2, 10},
		{1e20, 2, 1e20},
		{0, 2, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.expected, Round(tt.in, tt.places), "Round(%v, %d)", tt.in, tt.places)
	}

	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
	assert.True(t, math.IsInf(Round(math.Inf(-1), 2), -1))
}

func TestForecastSeries(t *testing.T) {
	series := timeseries.New(repeat([]float64{10, 20, 30, 40}, 2))
	series.Name = "sales"

	out, err := New(nil).ForecastSeries(series, 4)
	require.NoError(t, err)
	assert.Equal(t, "sales_forecast", out.Name)
	assert.Equal(t, 4, out.Len())

	_, err = New(nil).ForecastSeries(series, 3)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestRunNextPeriods(t *testing.T) {
	res, err := New(nil).Run(repeat([]float64{10, 20, 30, 40}, 3), 4)
	require.NoError(t, err)

	assert.Equal(t, []int{13, 14, 15, 16}, res.NextPeriods)
	for k, tr := range res.Trend {
		assert.InDelta(t, 25.0, tr, 1e-9, "period %d", res.NextPeriods[k])
	}
}
