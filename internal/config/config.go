// =============================================================================
// Position Extractor - Configuration Module
// =============================================================================
//
// This module loads the application configuration. All settings ship with
// built-in defaults matching the production input layout (CIC statement PDF
// plus the client Excel workbook), so the tool runs without any config file
// at all; an optional config.yaml overrides individual values.
//
// The account lookup table is intentionally NOT configurable here: it is an
// embedded immutable structure in internal/accounts.
//
// =============================================================================

package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// =============================================================================
// CONFIGURATION STRUCTURES
// =============================================================================

// MainConfig holds the global application configuration.
type MainConfig struct {
	// ExcelPath is the path to the input Excel workbook.
	// Default: "input/EXEMPLE EXCEL.xlsx"
	ExcelPath string `yaml:"excel_path"`

	// PDFPath is the path to the input PDF statement.
	// Default: "input/CIC.pdf"
	PDFPath string `yaml:"pdf_path"`

	// OutputFile is the path of the generated CSV export.
	// Default: "extracted_data_with_full_details.csv"
	OutputFile string `yaml:"output_file"`

	// PDFPages is how many pages of the statement are scanned, starting at
	// page 1. Capped at the document's page count at extraction time.
	// Default: 1
	PDFPages int `yaml:"pdf_pages"`

	// AccountCell selects the single Excel cell read as the account number.
	AccountCell CellSelector `yaml:"account_cell"`

	// DataRange selects the Excel range holding the acquisition cost and
	// valuation columns.
	DataRange RangeSelector `yaml:"data_range"`

	// ValueColumn is the exact header of the acquisition-cost column.
	// Default: "Coût d'acquisition"
	ValueColumn string `yaml:"value_column"`

	// ChangeColumn is the exact header of the valuation column. The trailing
	// space is present in the source workbook and must be matched verbatim.
	// Default: "Valorisation "
	ChangeColumn string `yaml:"change_column"`

	// Rectangles are the named PDF regions to extract, in page points with
	// the origin at the top-left corner of the page.
	Rectangles map[string]Rectangle `yaml:"rectangles"`
}

// CellSelector addresses a single spreadsheet cell the way the legacy
// export did: skip SkipRows rows, treat the next row as a header, and read
// the cell below it in the given column.
type CellSelector struct {
	SkipRows int    `yaml:"skip_rows"`
	Column   string `yaml:"column"`
}

// RangeSelector addresses a header row plus NumRows data rows across a
// contiguous column span.
type RangeSelector struct {
	SkipRows    int    `yaml:"skip_rows"`
	NumRows     int    `yaml:"num_rows"`
	FirstColumn string `yaml:"first_column"`
	LastColumn  string `yaml:"last_column"`
}

// Rectangle is an axis-aligned region in page points, origin top-left.
type Rectangle struct {
	X0 float64 `yaml:"x0"`
	Y0 float64 `yaml:"y0"`
	X1 float64 `yaml:"x1"`
	Y1 float64 `yaml:"y1"`
}

// Region names used by the extraction pipeline.
const (
	RegionValue      = "value"
	RegionChange     = "change"
	RegionAccountNum = "account_num"
)

// =============================================================================
// LOADING
// =============================================================================

// Load reads the configuration from configPath. A missing file is not an
// error: the built-in defaults apply. A present but unparsable file is an
// error, since running with half-applied settings would silently extract
// the wrong cells.
func Load(configPath string) (*MainConfig, error) {
	cfg := &MainConfig{}

	data, err := os.ReadFile(configPath)
	if err == nil {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	applyDefaults(cfg)

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Default returns the built-in configuration without touching the filesystem.
func Default() *MainConfig {
	cfg := &MainConfig{}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *MainConfig) {
	if cfg.ExcelPath == "" {
		cfg.ExcelPath = "input/EXEMPLE EXCEL.xlsx"
	}
	if cfg.PDFPath == "" {
		cfg.PDFPath = "input/CIC.pdf"
	}
	if cfg.OutputFile == "" {
		cfg.OutputFile = "extracted_data_with_full_details.csv"
	}
	if cfg.PDFPages == 0 {
		cfg.PDFPages = 1
	}
	if cfg.AccountCell.Column == "" {
		cfg.AccountCell = CellSelector{SkipRows: 0, Column: "I"}
	}
	if cfg.DataRange.FirstColumn == "" {
		cfg.DataRange = RangeSelector{
			SkipRows:    3,
			NumRows:     1,
			FirstColumn: "L",
			LastColumn:  "M",
		}
	}
	if cfg.ValueColumn == "" {
		cfg.ValueColumn = "Coût d'acquisition"
	}
	if cfg.ChangeColumn == "" {
		cfg.ChangeColumn = "Valorisation "
	}
	if len(cfg.Rectangles) == 0 {
		cfg.Rectangles = map[string]Rectangle{
			RegionValue:      {X0: 370, Y0: 120, X1: 470, Y1: 140},
			RegionChange:     {X0: 370, Y0: 150, X1: 444, Y1: 165},
			RegionAccountNum: {X0: 100, Y0: 150, X1: 200, Y1: 170},
		}
	}
}

// validate rejects configurations the pipeline cannot act on.
func validate(cfg *MainConfig) error {
	if cfg.PDFPages < 1 {
		return fmt.Errorf("pdf_pages must be at least 1, got %d", cfg.PDFPages)
	}
	for name, r := range cfg.Rectangles {
		if r.X1 <= r.X0 || r.Y1 <= r.Y0 {
			return fmt.Errorf("rectangle %q is degenerate: (%.0f,%.0f,%.0f,%.0f)",
				name, r.X0, r.Y0, r.X1, r.Y1)
		}
	}
	for _, name := range []string{RegionValue, RegionChange, RegionAccountNum} {
		if _, ok := cfg.Rectangles[name]; !ok {
			return fmt.Errorf("rectangle %q is not configured", name)
		}
	}
	if cfg.AccountCell.SkipRows < 0 || cfg.DataRange.SkipRows < 0 {
		return fmt.Errorf("skip_rows cannot be negative")
	}
	if cfg.DataRange.NumRows < 1 {
		return fmt.Errorf("data_range num_rows must be at least 1, got %d", cfg.DataRange.NumRows)
	}
	return nil
}
