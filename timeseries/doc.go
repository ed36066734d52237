// Package timeseries provides time series data structures and input adapters.
//
// This package includes the Series type for representing an equally spaced
// sequence of observations, along with loaders that turn uploaded tables
// into a Series ready for forecasting.
//
// # Creating a Series
//
// Create a time series from a slice (the slice is copied):
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
// Load a single numeric column from a CSV file:
//
//	series, err := timeseries.LoadCSVColumn("data.csv", "sales")
//
// Uploads that must carry exactly one column:
//
//	series, err := timeseries.LoadCSVFromReader(r, timeseries.SingleColumnCSVOptions())
//	if errors.Is(err, timeseries.ErrMultipleColumns) {
//	    // tell the user to upload one column only
//	}
//
// Missing or unparsable values are an error by default, because dropping a
// row shifts every later observation into the wrong season. Set SkipInvalid
// to drop them anyway.
//
// # Loading from Excel
//
// Workbooks are read with excelize:
//
//	opts := timeseries.DefaultXLSXOptions()
//	opts.RequireSingleColumn = true
//	series, err := timeseries.LoadXLSXFromReader(upload, opts)
//
// Load picks the CSV or Excel reader from the file extension:
//
//	series, err := timeseries.Load("quarterly.xlsx", "", true)
//
// # Basic Statistics
//
//	mean := series.Mean()
//	min := series.Min()
//	max := series.Max()
//
// # Slicing and Manipulation
//
//	train := series.Head(4)          // all but the last 4 observations
//	last := series.Tail(4)           // the last 4 observations
//	ma := series.MovingAverage(4)    // trailing moving average
//	cp := series.Copy()
package timeseries
