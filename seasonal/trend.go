package seasonal

import (
	"fmt"
	"math"
)

// Trend is a straight line fitted against the period numbers 1..N.
type Trend struct {
	Intercept float64 `json:"intercept"`
	Slope     float64 `json:"slope"`
}

// At returns the trend value for period t (1-based).
func (tr Trend) At(t int) float64 {
	return tr.Intercept + tr.Slope*float64(t)
}

// FitTrend fits y = b0 + b1*t by ordinary least squares, with t = 1..len(y).
//
// The design matrix X = [1, t] is N×2, so the normal equations XᵗX b = Xᵗy
// reduce to a 2×2 system solved in closed form.
func FitTrend(y []float64) (Trend, error) {
	n := float64(len(y))

	var sumT, sumTT, sumY, sumTY float64
	for i, v := range y {
		t := float64(i + 1)
		sumT += t
		sumTT += t * t
		sumY += v
		sumTY += t * v
	}

	// XᵗX = [[n, sumT], [sumT, sumTT]]
	det := n*sumTT - sumT*sumT
	if det == 0 || math.IsNaN(det) || math.IsInf(det, 0) {
		return Trend{}, fmt.Errorf("%w: normal equations for %d observations have determinant %v",
			ErrSingularMatrix, len(y), det)
	}

	return Trend{
		Intercept: (sumTT*sumY - sumT*sumTY) / det,
		Slope:     (n*sumTY - sumT*sumY) / det,
	}, nil
}
