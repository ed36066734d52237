package timeseries

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"
)

var (
	// ErrMultipleColumns is returned when a single-column file has more than one column.
	ErrMultipleColumns = errors.New("file has more than one column")
	// ErrNoData is returned when a file holds no observations.
	ErrNoData = errors.New("no valid data found")
	// ErrColumnNotFound is returned when the requested value column is absent.
	ErrColumnNotFound = errors.New("value column not found")
)

// CSVOptions holds options for CSV loading.
type CSVOptions struct {
	DateColumn          string // Column name for dates (optional)
	ValueColumn         string // Column name for values (empty: only or last column)
	DateFormat          string // Date format (default: "2006-01-02")
	HasHeader           bool   // Whether CSV has header row (default: true)
	Delimiter           rune   // Field delimiter (default: ',')
	SkipRows            int    // Number of rows to skip at start
	RequireSingleColumn bool   // Reject files with more than one column
	SkipInvalid         bool   // Drop unparsable or NA rows instead of failing
}

// DefaultCSVOptions returns default options for CSV loading.
func DefaultCSVOptions() *CSVOptions {
	return &CSVOptions{
		DateFormat: "2006-01-02",
		HasHeader:  true,
		Delimiter:  ',',
	}
}

// SingleColumnCSVOptions returns options for uploads that must contain exactly
// one numeric column.
func SingleColumnCSVOptions() *CSVOptions {
	opts := DefaultCSVOptions()
	opts.RequireSingleColumn = true
	return opts
}

// LoadCSV loads a time series from a CSV file.
func LoadCSV(filename string, opts *CSVOptions) (*Series, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return LoadCSVFromReader(file, opts)
}

// LoadCSVColumn loads a specific column from a CSV file as a series.
func LoadCSVColumn(filename string, column string) (*Series, error) {
	opts := DefaultCSVOptions()
	opts.ValueColumn = column
	return LoadCSV(filename, opts)
}

// LoadCSVFromReader loads a time series from an io.Reader.
func LoadCSVFromReader(r io.Reader, opts *CSVOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultCSVOptions()
	}

	reader := csv.NewReader(r)
	if opts.Delimiter != 0 {
		reader.Comma = opts.Delimiter
	}
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	for i := 0; i < opts.SkipRows; i++ {
		if _, err := reader.Read(); err != nil {
			return nil, err
		}
	}

	var (
		name    string
		headers []string
		first   []string
	)
	if opts.HasHeader {
		header, err := reader.Read()
		if err == io.EOF {
			return nil, ErrNoData
		}
		if err != nil {
			return nil, err
		}
		headers = make([]string, len(header))
		for i, h := range header {
			headers[i] = cleanField(h)
		}
	} else {
		// Peek at the first record to learn the column count.
		rec, err := reader.Read()
		if err == io.EOF {
			return nil, ErrNoData
		}
		if err != nil {
			return nil, err
		}
		first = rec
		headers = make([]string, len(rec))
	}

	if opts.RequireSingleColumn && len(headers) != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMultipleColumns, len(headers))
	}

	valueIdx, dateIdx, err := columnIndices(headers, opts)
	if err != nil {
		return nil, err
	}
	if opts.HasHeader {
		name = headers[valueIdx]
	}

	var (
		values     []float64
		timestamps []time.Time
		row        = 0
	)
	consume := func(record []string) error {
		row++
		if valueIdx >= len(record) {
			if opts.SkipInvalid {
				return nil
			}
			return fmt.Errorf("row %d: missing value column", row)
		}
		val, err := parseValue(record[valueIdx])
		if err != nil {
			if opts.SkipInvalid {
				return nil
			}
			return fmt.Errorf("row %d: %w", row, err)
		}
		values = append(values, val)

		if dateIdx >= 0 && dateIdx < len(record) {
			if ts, ok := parseDate(cleanField(record[dateIdx]), opts.DateFormat); ok {
				timestamps = append(timestamps, ts)
			}
		}
		return nil
	}

	if first != nil {
		if err := consume(first); err != nil {
			return nil, err
		}
	}
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(record) == 1 && cleanField(record[0]) == "" {
			continue
		}
		if err := consume(record); err != nil {
			return nil, err
		}
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}

	series := &Series{Values: values, Name: name}
	if len(timestamps) == len(values) {
		series.Timestamps = timestamps
	}
	return series, nil
}

// columnIndices resolves the value and date column positions.
func columnIndices(headers []string, opts *CSVOptions) (valueIdx, dateIdx int, err error) {
	valueIdx, dateIdx = -1, -1

	if !opts.HasHeader {
		if len(headers) == 1 {
			return 0, -1, nil
		}
		// Without a header the first column is the date, the second the value.
		return 1, 0, nil
	}

	for i, h := range headers {
		switch {
		case opts.ValueColumn != "" && h == opts.ValueColumn:
			valueIdx = i
		case opts.DateColumn != "" && h == opts.DateColumn:
			dateIdx = i
		case opts.DateColumn == "" && isDateHeader(h):
			if dateIdx == -1 {
				dateIdx = i
			}
		}
	}

	if valueIdx == -1 {
		if opts.ValueColumn != "" {
			return -1, -1, fmt.Errorf("%w: %q", ErrColumnNotFound, opts.ValueColumn)
		}
		valueIdx = len(headers) - 1
	}
	if dateIdx == valueIdx {
		dateIdx = -1
	}
	return valueIdx, dateIdx, nil
}

func isDateHeader(h string) bool {
	switch h {
	case "ds", "date", "Date", "Month", "Quarter", "Year", "period", "Period":
		return true
	}
	return false
}

func cleanField(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "\""))
}

func parseValue(raw string) (float64, error) {
	s := cleanField(raw)
	switch s {
	case "", "NA", "NaN", "nan", "null":
		return 0, fmt.Errorf("missing value %q", s)
	}
	return strconv.ParseFloat(s, 64)
}

func parseDate(s, preferred string) (time.Time, bool) {
	formats := []string{
		preferred,
		"2006-01-02",
		"2006-01-02T15:04:05",
		"2006/01/02",
		"01/02/2006",
		"02-Jan-2006",
		"2006-01",
		"2006",
	}
	for _, f := range formats {
		if f == "" {
			continue
		}
		if ts, err := time.Parse(f, s); err == nil {
			return ts, true
		}
	}
	return time.Time{}, false
}

// SaveCSV saves a time series to a CSV file.
func SaveCSV(series *Series, filename string, includeIndex bool) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := WriteCSV(file, series, includeIndex); err != nil {
		return err
	}
	return file.Close()
}

// WriteCSV writes a time series in CSV form to w.
func WriteCSV(w io.Writer, series *Series, includeIndex bool) error {
	writer := bufio.NewWriter(w)

	column := series.Name
	if column == "" {
		column = "y"
	}

	switch {
	case includeIndex && series.HasTimestamps():
		fmt.Fprintf(writer, "ds,%s\n", column)
	case includeIndex:
		fmt.Fprintf(writer, "index,%s\n", column)
	default:
		fmt.Fprintf(writer, "%s\n", column)
	}

	for i, v := range series.Values {
		if includeIndex {
			if series.HasTimestamps() {
				writer.WriteString(series.Timestamps[i].Format("2006-01-02"))
			} else {
				writer.WriteString(strconv.Itoa(i + 1))
			}
			writer.WriteString(",")
		}
		writer.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
		writer.WriteString("\n")
	}

	return writer.Flush()
}
