// Package stats provides accuracy measures for comparing forecasts with
// observed values.
//
//	acc, err := stats.Evaluate(actual, predicted)
//	fmt.Printf("MAE=%.2f RMSE=%.2f MAPE=%.2f%%\n", acc.MAE, acc.RMSE, acc.MAPE)
//
// The single-measure helpers return NaN when the inputs are empty or differ
// in length:
//
//	mae := stats.MAE(actual, predicted)
//	rmse := stats.RMSE(actual, predicted)
//	mape := stats.MAPE(actual, predicted) // zero actuals are left out of the mean
package stats
