// =============================================================================
// Position Extractor - Excel Reader
// =============================================================================
//
// Thin reads over the input workbook using excelize. The legacy export this
// replaces addressed the workbook the same way a pandas read_excel call
// does: skip N rows, treat the next row as a header row, then read data
// rows below it. Both entry points here keep that convention so the
// configured offsets stay directly comparable to the old tooling.
//
// Each call opens the workbook, reads, and closes it before returning; no
// file handle survives the call.
//
// =============================================================================

package xlsxreader

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/Panasaurio/position-extractor/internal/accounts"
)

// ReadCell returns the value of the single cell in the given column, one
// row below the header row that follows skipRows skipped rows. A missing
// file, a workbook without sheets, or an empty cell yields an absent field;
// only the first two also yield an error for the caller to log.
func ReadCell(path string, skipRows int, column string) (accounts.Field, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return accounts.Absent(), fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return accounts.Absent(), fmt.Errorf("workbook has no sheets")
	}

	// Header row is skipRows+1, the value sits on the row below it.
	cell, err := cellName(column, skipRows+2)
	if err != nil {
		return accounts.Absent(), err
	}

	value, err := f.GetCellValue(sheet, cell)
	if err != nil {
		return accounts.Absent(), fmt.Errorf("failed to read cell %s: %w", cell, err)
	}

	value = strings.TrimSpace(value)
	if value == "" {
		return accounts.Absent(), nil
	}
	return accounts.Value(value), nil
}

// ReadRange reads a header row plus numRows data rows across the column
// span [firstColumn, lastColumn] and returns column header -> values.
// Columns with an empty header cell are skipped. Callers are expected to
// match headers exactly, trailing spaces included.
func ReadRange(path string, skipRows, numRows int, firstColumn, lastColumn string) (map[string][]accounts.Field, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	if sheet == "" {
		return nil, fmt.Errorf("workbook has no sheets")
	}

	firstCol, err := excelize.ColumnNameToNumber(firstColumn)
	if err != nil {
		return nil, fmt.Errorf("invalid column %q: %w", firstColumn, err)
	}
	lastCol, err := excelize.ColumnNameToNumber(lastColumn)
	if err != nil {
		return nil, fmt.Errorf("invalid column %q: %w", lastColumn, err)
	}
	if lastCol < firstCol {
		return nil, fmt.Errorf("column range %s:%s is reversed", firstColumn, lastColumn)
	}

	headerRow := skipRows + 1
	columns := make(map[string][]accounts.Field)

	for col := firstCol; col <= lastCol; col++ {
		header, err := cellValue(f, sheet, col, headerRow)
		if err != nil {
			return nil, err
		}
		// Header names are matched verbatim downstream ("Valorisation " has
		// a trailing space in the source workbook), so no trimming here.
		if strings.TrimSpace(header) == "" {
			continue
		}

		values := make([]accounts.Field, 0, numRows)
		for row := headerRow + 1; row <= headerRow+numRows; row++ {
			raw, err := cellValue(f, sheet, col, row)
			if err != nil {
				return nil, err
			}
			raw = strings.TrimSpace(raw)
			if raw == "" {
				values = append(values, accounts.Absent())
			} else {
				values = append(values, accounts.Value(raw))
			}
		}
		columns[header] = values
	}

	return columns, nil
}

// cellName builds an A1-style reference from a column letter and 1-based row.
func cellName(column string, row int) (string, error) {
	col, err := excelize.ColumnNameToNumber(column)
	if err != nil {
		return "", fmt.Errorf("invalid column %q: %w", column, err)
	}
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", fmt.Errorf("invalid cell %s%d: %w", column, row, err)
	}
	return name, nil
}

func cellValue(f *excelize.File, sheet string, col, row int) (string, error) {
	name, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return "", fmt.Errorf("invalid coordinates (%d,%d): %w", col, row, err)
	}
	value, err := f.GetCellValue(sheet, name)
	if err != nil {
		return "", fmt.Errorf("failed to read cell %s: %w", name, err)
	}
	return value, nil
}
