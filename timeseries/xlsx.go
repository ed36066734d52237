package timeseries

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"
)

// XLSXOptions holds options for Excel workbook loading.
type XLSXOptions struct {
	Sheet               string // Sheet name (default: first sheet)
	ValueColumn         string // Header of the value column (empty: only or last column)
	HasHeader           bool   // Whether the first row is a header (default: true)
	RequireSingleColumn bool   // Reject sheets with more than one column
	SkipInvalid         bool   // Drop unparsable rows instead of failing
}

// DefaultXLSXOptions returns default options for workbook loading.
func DefaultXLSXOptions() *XLSXOptions {
	return &XLSXOptions{HasHeader: true}
}

// LoadXLSX loads a time series from an Excel workbook on disk.
func LoadXLSX(filename string, opts *XLSXOptions) (*Series, error) {
	f, err := excelize.OpenFile(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return loadWorkbook(f, opts)
}

// LoadXLSXFromReader loads a time series from an Excel workbook stream,
// such as an uploaded file.
func LoadXLSXFromReader(r io.Reader, opts *XLSXOptions) (*Series, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return loadWorkbook(f, opts)
}

func loadWorkbook(f *excelize.File, opts *XLSXOptions) (*Series, error) {
	if opts == nil {
		opts = DefaultXLSXOptions()
	}

	sheet := opts.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoData
		}
		sheet = sheets[0]
	}

	// Raw values: the displayed text follows the cell number format.
	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrNoData
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	if opts.RequireSingleColumn && width != 1 {
		return nil, fmt.Errorf("%w: found %d", ErrMultipleColumns, width)
	}

	valueIdx := width - 1
	name := ""
	if opts.HasHeader {
		header := rows[0]
		rows = rows[1:]
		found := opts.ValueColumn == ""
		for i, h := range header {
			if opts.ValueColumn != "" && cleanField(h) == opts.ValueColumn {
				valueIdx = i
				found = true
				break
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, opts.ValueColumn)
		}
		if valueIdx < len(header) {
			name = cleanField(header[valueIdx])
		}
	}

	values := make([]float64, 0, len(rows))
	for i, row := range rows {
		if isBlankRow(row) {
			continue
		}
		if valueIdx >= len(row) {
			if opts.SkipInvalid {
				continue
			}
			return nil, fmt.Errorf("row %d: missing value column", i+1)
		}
		v, err := parseValue(row[valueIdx])
		if err != nil {
			if opts.SkipInvalid {
				continue
			}
			return nil, fmt.Errorf("row %d: %w", i+1, err)
		}
		values = append(values, v)
	}

	if len(values) == 0 {
		return nil, ErrNoData
	}
	return &Series{Values: values, Name: name}, nil
}

func isBlankRow(row []string) bool {
	for _, c := range row {
		if cleanField(c) != "" {
			return false
		}
	}
	return true
}
