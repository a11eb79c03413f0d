// =============================================================================
// Position Extractor - CSV Writer Module
// =============================================================================
//
// Serializes the final record table to comma-delimited UTF-8 text: one
// fixed 13-column header row followed by one data row per aligned index.
// Absent fields render as empty cells.
//
// =============================================================================

package csvwriter

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Panasaurio/position-extractor/internal/accounts"
	"github.com/Panasaurio/position-extractor/pkg/utils"
)

// Write creates (or truncates) the file at path and writes the header plus
// all records. The parent directory is created when missing.
func Write(path string, records []accounts.Record) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := utils.EnsureDir(dir); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)

	if err := w.Write(accounts.Header()); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for i, rec := range records {
		if err := w.Write(rec.Strings()); err != nil {
			return fmt.Errorf("failed to write row %d: %w", i+1, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}

	return file.Close()
}
