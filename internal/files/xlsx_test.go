package files

import (
	"io"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeXLSX(t *testing.T, rows [][]interface{}) string {
	t.Helper()

	file := excelize.NewFile()
	defer file.Close()

	sheet := file.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, file.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "export.xlsx")
	require.NoError(t, file.SaveAs(path))
	return path
}

func TestOpenXLSX(t *testing.T) {
	path := writeXLSX(t, [][]interface{}{
		{"Date", "Duration", "Distance"},
		{"2020-01-01 10:00:00", "1:00:00", "10.0"},
		{"2020-01-02 10:00:00", "0:30:00", "5.0"},
	})

	source, err := OpenXLSX(path)
	require.NoError(t, err)
	defer source.Close()

	assert.Equal(t, []string{"Date", "Duration", "Distance"}, source.Header())

	row, err := source.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"2020-01-01 10:00:00", "1:00:00", "10.0"}, row)

	row, err = source.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"2020-01-02 10:00:00", "0:30:00", "5.0"}, row)

	_, err = source.Next()
	assert.Equal(t, io.EOF, err)
}

func TestOpenXLSX_PadsShortRows(t *testing.T) {
	// Spreadsheet readers trim trailing empty cells; rows must come back
	// padded to header width so positional projection stays in range.
	path := writeXLSX(t, [][]interface{}{
		{"Date", "Duration", "Distance"},
		{"2020-01-01 10:00:00"},
	})

	source, err := OpenXLSX(path)
	require.NoError(t, err)
	defer source.Close()

	row, err := source.Next()
	require.NoError(t, err)
	assert.Equal(t, []string{"2020-01-01 10:00:00", "", ""}, row)
}

func TestOpenXLSX_DispatchedByExtension(t *testing.T) {
	path := writeXLSX(t, [][]interface{}{
		{"Date", "Duration", "Distance"},
	})

	source, err := OpenExport(path)
	require.NoError(t, err)
	defer source.Close()

	_, ok := source.(*XLSXSource)
	assert.True(t, ok)
}

func TestOpenXLSX_MissingFile(t *testing.T) {
	_, err := OpenXLSX(filepath.Join(t.TempDir(), "missing.xlsx"))

	assert.Error(t, err)
}
