package timeseries

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Load reads a series from a CSV or Excel file, chosen by file extension.
// When column is empty the file's only (or last) column is used; singleColumn
// rejects files with more than one column.
func Load(filename, column string, singleColumn bool) (*Series, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		opts := DefaultXLSXOptions()
		opts.ValueColumn = column
		opts.RequireSingleColumn = singleColumn
		return LoadXLSX(filename, opts)
	case ".csv", ".txt", "":
		opts := DefaultCSVOptions()
		opts.ValueColumn = column
		opts.RequireSingleColumn = singleColumn
		return LoadCSV(filename, opts)
	case ".tsv":
		opts := DefaultCSVOptions()
		opts.Delimiter = '\t'
		opts.ValueColumn = column
		opts.RequireSingleColumn = singleColumn
		return LoadCSV(filename, opts)
	default:
		return nil, fmt.Errorf("unsupported file type %q", filepath.Ext(filename))
	}
}
