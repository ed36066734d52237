package stats

import (
	"errors"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ErrLengthMismatch is returned when actual and predicted values differ in length.
var ErrLengthMismatch = errors.New("actual and predicted must have the same non-zero length")

// Accuracy summarizes how far a forecast is from the observed values.
type Accuracy struct {
	MAE  float64 `json:"mae"`  // Mean absolute error
	RMSE float64 `json:"rmse"` // Root mean squared error
	MAPE float64 `json:"mape"` // Mean absolute percentage error (percent)
	Bias float64 `json:"bias"` // Mean of actual - predicted
}

// Evaluate computes all accuracy measures for a forecast.
func Evaluate(actual, predicted []float64) (Accuracy, error) {
	errs, err := Errors(actual, predicted)
	if err != nil {
		return Accuracy{}, err
	}

	abs := make([]float64, len(errs))
	sq := make([]float64, len(errs))
	for i, e := range errs {
		abs[i] = math.Abs(e)
		sq[i] = e * e
	}

	return Accuracy{
		MAE:  stat.Mean(abs, nil),
		RMSE: math.Sqrt(stat.Mean(sq, nil)),
		MAPE: mape(actual, abs),
		Bias: stat.Mean(errs, nil),
	}, nil
}

// Errors returns actual - predicted elementwise.
func Errors(actual, predicted []float64) ([]float64, error) {
	if len(actual) == 0 || len(actual) != len(predicted) {
		return nil, ErrLengthMismatch
	}
	out := make([]float64, len(actual))
	floats.SubTo(out, actual, predicted)
	return out, nil
}

// MAE returns the mean absolute error.
func MAE(actual, predicted []float64) float64 {
	acc, err := Evaluate(actual, predicted)
	if err != nil {
		return math.NaN()
	}
	return acc.MAE
}

// RMSE returns the root mean squared error.
func RMSE(actual, predicted []float64) float64 {
	acc, err := Evaluate(actual, predicted)
	if err != nil {
		return math.NaN()
	}
	return acc.RMSE
}

// MAPE returns the mean absolute percentage error in percent.
// Observations equal to zero are left out of both the sum and the count;
// when every observation is zero the result is 0.
func MAPE(actual, predicted []float64) float64 {
	acc, err := Evaluate(actual, predicted)
	if err != nil {
		return math.NaN()
	}
	return acc.MAPE
}

func mape(actual, absErrs []float64) float64 {
	sum, n := 0.0, 0
	for i, a := range actual {
		if a != 0 {
			sum += absErrs[i] / math.Abs(a) * 100
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}
