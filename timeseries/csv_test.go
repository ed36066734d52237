package timeseries

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadCSVFromReader(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-04-01,101
2020-07-01,102
2020-10-01,103`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	require.NoError(t, err)

	assert.Equal(t, []float64{100, 101, 102, 103}, series.Values)
	assert.Equal(t, "y", series.Name)
	assert.True(t, series.HasTimestamps())
}

func TestLoadCSVSingleColumn(t *testing.T) {
	csvData := "sales\n10\n20\n30\n40\n"

	series, err := LoadCSVFromReader(strings.NewReader(csvData), SingleColumnCSVOptions())
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 20, 30, 40}, series.Values)
	assert.Equal(t, "sales", series.Name)
	assert.False(t, series.HasTimestamps())
}

func TestLoadCSVRejectsMultipleColumns(t *testing.T) {
	csvData := "ds,y\n2020-01-01,1\n"

	_, err := LoadCSVFromReader(strings.NewReader(csvData), SingleColumnCSVOptions())
	assert.ErrorIs(t, err, ErrMultipleColumns)
}

func TestLoadCSVNoHeader(t *testing.T) {
	opts := DefaultCSVOptions()
	opts.HasHeader = false

	series, err := LoadCSVFromReader(strings.NewReader("5\n6\n7\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6, 7}, series.Values)

	series, err = LoadCSVFromReader(strings.NewReader("2020-01-01,5\n2020-02-01,6\n"), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{5, 6}, series.Values)
	assert.True(t, series.HasTimestamps())
}

func TestLoadCSVMissingValues(t *testing.T) {
	csvData := `ds,y
2020-01-01,100
2020-01-02,NA
2020-01-03,102
2020-01-04,NaN
2020-01-05,104`

	_, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	require.Error(t, err, "missing values shift the seasonal phase and must be rejected")
	assert.Contains(t, err.Error(), "row 2")

	opts := DefaultCSVOptions()
	opts.SkipInvalid = true
	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{100, 102, 104}, series.Values)
}

func TestLoadCSVMultipleColumns(t *testing.T) {
	csvData := `ds,Beer,Cement,Gas
2020-01-01,100,200,50
2020-01-02,110,210,55
2020-01-03,120,220,60`

	opts := DefaultCSVOptions()
	opts.ValueColumn = "Cement"

	series, err := LoadCSVFromReader(strings.NewReader(csvData), opts)
	require.NoError(t, err)
	assert.Equal(t, []float64{200, 210, 220}, series.Values)

	opts.ValueColumn = "Wine"
	_, err = LoadCSVFromReader(strings.NewReader(csvData), opts)
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestLoadCSVQuotedFields(t *testing.T) {
	csvData := `"ds","y"
"2020-01-01","1000000"
"2020-01-02","1000100"
"2020-01-03","1000200"`

	series, err := LoadCSVFromReader(strings.NewReader(csvData), DefaultCSVOptions())
	require.NoError(t, err)
	assert.Equal(t, 3, series.Len())
	assert.Equal(t, 1000100.0, series.Values[1])
}

func TestLoadCSVEmpty(t *testing.T) {
	_, err := LoadCSVFromReader(strings.NewReader(""), DefaultCSVOptions())
	assert.ErrorIs(t, err, ErrNoData)

	_, err = LoadCSVFromReader(strings.NewReader("y\n"), DefaultCSVOptions())
	assert.ErrorIs(t, err, ErrNoData)
}

func TestDefaultCSVOptions(t *testing.T) {
	opts := DefaultCSVOptions()

	assert.Empty(t, opts.ValueColumn)
	assert.Equal(t, "2006-01-02", opts.DateFormat)
	assert.True(t, opts.HasHeader)
	assert.Equal(t, ',', opts.Delimiter)
	assert.False(t, opts.RequireSingleColumn)
}

func TestSaveAndLoadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	s := New([]float64{1.5, 2.25, 3})
	s.Name = "forecast"

	require.NoError(t, SaveCSV(s, path, true))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "index,forecast\n1,1.5\n2,2.25\n3,3\n", string(raw))

	loaded, err := LoadCSVColumn(path, "forecast")
	require.NoError(t, err)
	assert.Equal(t, s.Values, loaded.Values)
}

func TestLoadDispatch(t *testing.T) {
	dir := t.TempDir()

	tsv := filepath.Join(dir, "data.tsv")
	require.NoError(t, os.WriteFile(tsv, []byte("a\tb\n1\t2\n3\t4\n"), 0o644))
	series, err := Load(tsv, "b", false)
	require.NoError(t, err)
	assert.Equal(t, []float64{2, 4}, series.Values)

	_, err = Load(filepath.Join(dir, "data.json"), "", true)
	assert.Error(t, err)
}
