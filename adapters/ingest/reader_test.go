package ingest

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

func TestReadCSV(t *testing.T) {
	input := "Name,Age,Salary,Department,Experience\nAlice,30,50000,Engineering,5\nBob,25,42000,HR,2\n"

	ds, err := NewDataReader(discardLogger()).Read("staff.csv", strings.NewReader(input))
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Age", "Salary", "Department", "Experience"}, ds.Columns)
	require.Len(t, ds.Rows, 2)
	assert.Equal(t, []string{"Alice", "30", "50000", "Engineering", "5"}, ds.Rows[0])
}

func TestReadCSVPadsShortRows(t *testing.T) {
	input := "Name,Age\nAlice,30\nBob\n"

	ds, err := NewDataReader(discardLogger()).Read("staff.csv", strings.NewReader(input))
	require.NoError(t, err)

	require.Len(t, ds.Rows, 2)
	assert.Equal(t, []string{"Bob", ""}, ds.Rows[1])
}

func TestReadCSVHeaderOnly(t *testing.T) {
	ds, err := NewDataReader(discardLogger()).Read("staff.csv", strings.NewReader("Name,Age\n"))
	require.NoError(t, err)
	assert.Empty(t, ds.Rows)
}

func TestReadEmptyFileFails(t *testing.T) {
	_, err := NewDataReader(discardLogger()).Read("staff.csv", strings.NewReader(""))
	assert.Error(t, err)
}

func TestReadExcel(t *testing.T) {
	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	cells := [][]interface{}{
		{"Name", "Age", "Salary", "Department", "Experience"},
		{"Alice", 30, 50000.5, "Engineering", 5},
	}
	for r, row := range cells {
		for c, v := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))

	ds, err := NewDataReader(discardLogger()).Read("staff.xlsx", &buf)
	require.NoError(t, err)

	assert.Equal(t, []string{"Name", "Age", "Salary", "Department", "Experience"}, ds.Columns)
	require.Len(t, ds.Rows, 1)
	assert.Equal(t, "Alice", ds.Rows[0][0])
	assert.Equal(t, "30", ds.Rows[0][1])
}
