// Package main demonstrates seasonal decomposition forecasting on small
// built-in datasets.
package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/sartorproj/goseasonal/seasonal"
	"github.com/sartorproj/goseasonal/stats"
)

// Dataset defines a time series dataset to analyze
type Dataset struct {
	Name        string    // Display name
	Description string    // Brief description
	Period      int       // Seasonal period
	Values      []float64 // Observations, oldest first
}

// DatasetResult holds analysis results for a dataset
type DatasetResult struct {
	Name          string          `json:"name"`
	Description   string          `json:"description"`
	Period        int             `json:"period"`
	NObs          int             `json:"n_obs"`
	History       []float64       `json:"history"`
	SeasonalIndex []float64       `json:"seasonal_index"`
	Trend         seasonal.Trend  `json:"trend"`
	Forecast      []float64       `json:"forecast"`
	Backtest      *BacktestResult `json:"backtest,omitempty"`
}

// BacktestResult holds the last-cycle comparison for JSON export
type BacktestResult struct {
	Actual    []float64      `json:"actual"`
	Predicted []float64      `json:"predicted"`
	Accuracy  stats.Accuracy `json:"accuracy"`
}

// OutputData holds all results for visualization
type OutputData struct {
	Datasets []DatasetResult `json:"datasets"`
}

func main() {
	fmt.Println(strings.Repeat("=", 80))
	fmt.Println("Seasonal Decomposition Forecasting Demonstration")
	fmt.Println(strings.Repeat("=", 80))

	datasets := []Dataset{
		{
			Name:        "Quarterly Sales",
			Description: "Linear growth with a fixed quarterly pattern",
			Period:      4,
			Values: []float64{
				80.0, 90.9, 112.2, 123.6,
				83.2, 94.5, 116.6, 128.4,
				86.4, 98.1, 121.0, 133.2,
			},
		},
		{
			Name:        "Airline Passengers",
			Description: "Monthly passengers (thousands), 1949-1951",
			Period:      12,
			Values: []float64{
				112, 118, 132, 129, 121, 135, 148, 148, 136, 119, 104, 118,
				115, 126, 141, 135, 125, 149, 170, 170, 158, 133, 114, 140,
				145, 150, 178, 163, 172, 178, 199, 199, 184, 162, 146, 166,
			},
		},
		{
			Name:        "Biannual Rainfall",
			Description: "Wet and dry season totals (mm)",
			Period:      2,
			Values:      []float64{620, 180, 640, 170, 610, 190, 655, 185},
		},
		{
			Name:        "Broken Upload",
			Description: "Ten observations cannot hold whole quarterly cycles",
			Period:      4,
			Values:      []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
		},
	}

	output := OutputData{Datasets: []DatasetResult{}}
	forecaster := seasonal.New(nil)

	for i, ds := range datasets {
		fmt.Printf("\n%s\n[%d/%d] %s\n%s\n", strings.Repeat("=", 80), i+1, len(datasets), ds.Name, strings.Repeat("=", 80))

		result := analyze(forecaster, ds)
		if result != nil {
			output.Datasets = append(output.Datasets, *result)
		}
	}

	// Export results
	fmt.Printf("\n%s\nEXPORTING RESULTS\n%s\n", strings.Repeat("=", 80), strings.Repeat("=", 80))

	data, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		fmt.Printf("Export failed: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile("forecast_results.json", data, 0644); err != nil {
		fmt.Printf("Export failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Exported %d datasets to forecast_results.json\n", len(output.Datasets))
	fmt.Println(strings.Repeat("=", 80))
}

// analyze forecasts one dataset and backtests its last cycle when possible
func analyze(f *seasonal.Forecaster, ds Dataset) *DatasetResult {
	fmt.Printf("   %s\n", ds.Description)
	fmt.Printf("   %d observations, period %d\n", len(ds.Values), ds.Period)

	res, err := f.Run(ds.Values, ds.Period)
	if err != nil {
		fmt.Printf("   Error: %v\n", err)
		return nil
	}

	d := res.Decomposition
	fmt.Printf("   Trend: %.4f + %.4f*t\n", d.Trend.Intercept, d.Trend.Slope)
	fmt.Printf("   Seasonal index: %s\n", formatValues(d.SeasonalIndex, 3))
	fmt.Printf("   Forecast:       %s\n", formatValues(res.Forecast, 2))

	result := &DatasetResult{
		Name:          ds.Name,
		Description:   ds.Description,
		Period:        ds.Period,
		NObs:          len(ds.Values),
		History:       ds.Values,
		SeasonalIndex: d.SeasonalIndex,
		Trend:         d.Trend,
		Forecast:      res.Forecast,
	}

	if len(ds.Values) >= 3*ds.Period {
		bt, err := f.Backtest(ds.Values, ds.Period)
		if err != nil {
			fmt.Printf("   Backtest error: %v\n", err)
		} else {
			fmt.Printf("   Last cycle MAE=%.4f RMSE=%.4f MAPE=%.2f%%\n",
				bt.Accuracy.MAE, bt.Accuracy.RMSE, bt.Accuracy.MAPE)
			result.Backtest = &BacktestResult{
				Actual:    bt.Actual,
				Predicted: bt.Predicted,
				Accuracy:  bt.Accuracy,
			}
		}
	}

	return result
}

func formatValues(values []float64, decimals int) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = fmt.Sprintf("%.*f", decimals, v)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
