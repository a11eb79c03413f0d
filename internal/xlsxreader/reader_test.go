package xlsxreader

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook builds a workbook shaped like the production input: the
// account number under a header in column I, and the two-column data range
// with headers on row 4 and values on row 5.
func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	require.NoError(t, f.SetCellValue(sheet, "I1", "Compte"))
	require.NoError(t, f.SetCellValue(sheet, "I2", "193"))
	require.NoError(t, f.SetCellValue(sheet, "L4", "Coût d'acquisition"))
	require.NoError(t, f.SetCellValue(sheet, "M4", "Valorisation "))
	require.NoError(t, f.SetCellValue(sheet, "L5", "1355.97"))
	require.NoError(t, f.SetCellValue(sheet, "M5", "1392.60"))

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestReadCell(t *testing.T) {
	path := writeWorkbook(t)

	field, err := ReadCell(path, 0, "I")
	require.NoError(t, err)
	require.True(t, field.Present())
	assert.Equal(t, "193", field.String())
}

func TestReadCell_EmptyCellIsAbsent(t *testing.T) {
	path := writeWorkbook(t)

	field, err := ReadCell(path, 10, "B")
	require.NoError(t, err)
	assert.False(t, field.Present())
}

func TestReadCell_MissingFile(t *testing.T) {
	field, err := ReadCell(filepath.Join(t.TempDir(), "nope.xlsx"), 0, "I")
	assert.Error(t, err)
	assert.False(t, field.Present())
}

func TestReadRange(t *testing.T) {
	path := writeWorkbook(t)

	columns, err := ReadRange(path, 3, 1, "L", "M")
	require.NoError(t, err)

	// Headers are matched verbatim, trailing space included.
	cost, ok := columns["Coût d'acquisition"]
	require.True(t, ok)
	require.Len(t, cost, 1)
	assert.Equal(t, "1355.97", cost[0].String())

	valuation, ok := columns["Valorisation "]
	require.True(t, ok, "trailing-space header must be preserved")
	require.Len(t, valuation, 1)
	assert.Equal(t, "1392.60", valuation[0].String())
}

func TestReadRange_EmptyHeaderColumnsSkipped(t *testing.T) {
	path := writeWorkbook(t)

	// Columns K through M: K has no header and must not appear.
	columns, err := ReadRange(path, 3, 1, "K", "M")
	require.NoError(t, err)
	assert.Len(t, columns, 2)
}

func TestReadRange_MissingFile(t *testing.T) {
	_, err := ReadRange(filepath.Join(t.TempDir(), "nope.xlsx"), 3, 1, "L", "M")
	assert.Error(t, err)
}

func TestReadRange_ReversedColumns(t *testing.T) {
	path := writeWorkbook(t)

	_, err := ReadRange(path, 3, 1, "M", "L")
	assert.Error(t, err)
}
