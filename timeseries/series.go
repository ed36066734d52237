// Package timeseries provides core time series data structures and operations.
package timeseries

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrNonFinite is returned by Validate when a series contains NaN or ±Inf.
var ErrNonFinite = errors.New("series contains non-finite values")

// Series represents an equally spaced time series.
// Timestamps are optional; when present they match Values one to one.
type Series struct {
	Timestamps []time.Time
	Values     []float64
	Name       string
}

// New creates a new time series from values.
// The values are copied so later changes to the slice do not leak into the series.
func New(values []float64) *Series {
	v := make([]float64, len(values))
	copy(v, values)
	return &Series{Values: v}
}

// NewWithTimestamps creates a time series with explicit timestamps.
// Both slices are copied, as in New.
func NewWithTimestamps(timestamps []time.Time, values []float64) (*Series, error) {
	if len(timestamps) != len(values) {
		return nil, errors.New("timestamps and values must have the same length")
	}
	s := New(values)
	s.Timestamps = make([]time.Time, len(timestamps))
	copy(s.Timestamps, timestamps)
	return s, nil
}

// Len returns the length of the series.
func (s *Series) Len() int {
	return len(s.Values)
}

// HasTimestamps reports whether every value carries a timestamp.
func (s *Series) HasTimestamps() bool {
	return len(s.Values) > 0 && len(s.Timestamps) == len(s.Values)
}

// Validate checks that every observation is a finite number.
func (s *Series) Validate() error {
	for i, v := range s.Values {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: observation %d is %v", ErrNonFinite, i+1, v)
		}
	}
	return nil
}

// Mean calculates the arithmetic mean of the series.
func (s *Series) Mean() float64 {
	if len(s.Values) == 0 {
		return 0
	}
	sum := 0.0
	for _, v := range s.Values {
		sum += v
	}
	return sum / float64(len(s.Values))
}

// Min returns the minimum value in the series.
func (s *Series) Min() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	min := s.Values[0]
	for _, v := range s.Values[1:] {
		if v < min {
			min = v
		}
	}
	return min
}

// Max returns the maximum value in the series.
func (s *Series) Max() float64 {
	if len(s.Values) == 0 {
		return math.NaN()
	}
	max := s.Values[0]
	for _, v := range s.Values[1:] {
		if v > max {
			max = v
		}
	}
	return max
}

// Slice returns a slice of the series from start to end (exclusive).
func (s *Series) Slice(start, end int) *Series {
	if start < 0 {
		start = 0
	}
	if end > len(s.Values) {
		end = len(s.Values)
	}
	if start >= end {
		return &Series{Values: []float64{}, Name: s.Name}
	}

	values := make([]float64, end-start)
	copy(values, s.Values[start:end])

	var timestamps []time.Time
	if s.HasTimestamps() {
		timestamps = make([]time.Time, len(values))
		copy(timestamps, s.Timestamps[start:end])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// Head returns all but the last k observations.
func (s *Series) Head(k int) *Series {
	return s.Slice(0, len(s.Values)-k)
}

// Tail returns the last k observations.
func (s *Series) Tail(k int) *Series {
	return s.Slice(len(s.Values)-k, len(s.Values))
}

// Copy creates a deep copy of the series.
func (s *Series) Copy() *Series {
	values := make([]float64, len(s.Values))
	copy(values, s.Values)

	var timestamps []time.Time
	if s.Timestamps != nil {
		timestamps = make([]time.Time, len(s.Timestamps))
		copy(timestamps, s.Timestamps)
	}

	return &Series{
		Timestamps: timestamps,
		Values:     values,
		Name:       s.Name,
	}
}

// MovingAverage calculates a trailing simple moving average with window size.
// Leading positions without a full window are dropped, so the result has
// Len()-window+1 values. Each mean is computed over its own window rather than
// a running sum, which keeps repeated windows bit-identical.
func (s *Series) MovingAverage(window int) *Series {
	if window <= 0 || window > len(s.Values) {
		return &Series{Values: []float64{}}
	}

	result := make([]float64, len(s.Values)-window+1)
	for i := range result {
		sum := 0.0
		for _, v := range s.Values[i : i+window] {
			sum += v
		}
		result[i] = sum / float64(window)
	}

	var timestamps []time.Time
	if s.HasTimestamps() {
		timestamps = make([]time.Time, len(result))
		copy(timestamps, s.Timestamps[window-1:])
	}

	return &Series{
		Timestamps: timestamps,
		Values:     result,
		Name:       s.Name + "_ma",
	}
}

// Append returns a new series with values added after the last observation.
// The result carries no timestamps.
func (s *Series) Append(values []float64) *Series {
	out := make([]float64, 0, len(s.Values)+len(values))
	out = append(out, s.Values...)
	out = append(out, values...)
	return &Series{Values: out, Name: s.Name}
}
