package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "input/EXEMPLE EXCEL.xlsx", cfg.ExcelPath)
	assert.Equal(t, "input/CIC.pdf", cfg.PDFPath)
	assert.Equal(t, "extracted_data_with_full_details.csv", cfg.OutputFile)
	assert.Equal(t, 1, cfg.PDFPages)

	assert.Equal(t, CellSelector{SkipRows: 0, Column: "I"}, cfg.AccountCell)
	assert.Equal(t, RangeSelector{SkipRows: 3, NumRows: 1, FirstColumn: "L", LastColumn: "M"}, cfg.DataRange)

	assert.Equal(t, "Coût d'acquisition", cfg.ValueColumn)
	assert.Equal(t, "Valorisation ", cfg.ChangeColumn, "trailing space is part of the header")

	require.Len(t, cfg.Rectangles, 3)
	assert.Equal(t, Rectangle{X0: 370, Y0: 120, X1: 470, Y1: 140}, cfg.Rectangles[RegionValue])
	assert.Equal(t, Rectangle{X0: 370, Y0: 150, X1: 444, Y1: 165}, cfg.Rectangles[RegionChange])
	assert.Equal(t, Rectangle{X0: 100, Y0: 150, X1: 200, Y1: 170}, cfg.Rectangles[RegionAccountNum])
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "no-such-config.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoad_PartialOverride(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
excel_path: data/positions.xlsx
pdf_pages: 3
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "data/positions.xlsx", cfg.ExcelPath)
	assert.Equal(t, 3, cfg.PDFPages)
	// Everything else keeps its default.
	assert.Equal(t, "input/CIC.pdf", cfg.PDFPath)
	assert.Equal(t, "Valorisation ", cfg.ChangeColumn)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("excel_path: [unclosed"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_DegenerateRectangle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
rectangles:
  value: {x0: 470, y0: 120, x1: 370, y1: 140}
  change: {x0: 370, y0: 150, x1: 444, y1: 165}
  account_num: {x0: 100, y0: 150, x1: 200, y1: 170}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "degenerate")
}

func TestLoad_MissingRequiredRectangle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
rectangles:
  value: {x0: 370, y0: 120, x1: 470, y1: 140}
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	_, err := Load(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestLoad_BadPageCount(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("pdf_pages: -2"), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
