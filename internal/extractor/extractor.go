// =============================================================================
// Position Extractor - Pipeline Orchestration
// =============================================================================
//
// This module runs the extraction pipeline for one input pair end to end:
//
//   1. Read the account cell and the data range from the Excel workbook
//   2. Extract the three named rectangles from the PDF statement
//   3. Normalize the extracted text
//   4. Assemble the aligned output table (lookup-enriched records)
//   5. Write the CSV export and report totals
//
// Every source failure is logged and degrades to absent/empty data; the
// pipeline itself never aborts. The only terminal "failure" is an empty
// table, which is reported as a message and still exits successfully.
//
// =============================================================================

package extractor

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/Panasaurio/position-extractor/internal/accounts"
	"github.com/Panasaurio/position-extractor/internal/config"
	"github.com/Panasaurio/position-extractor/internal/csvwriter"
	"github.com/Panasaurio/position-extractor/internal/normalizer"
	"github.com/Panasaurio/position-extractor/internal/pdfreader"
	"github.com/Panasaurio/position-extractor/internal/xlsxreader"
)

// =============================================================================
// RESULT TYPES
// =============================================================================

// Result is the outcome of one extraction run.
type Result struct {
	// RunID identifies this run in logs and reports.
	RunID string

	// OutputFile is the path of the written CSV. Empty when nothing was
	// written (no data, or dry run).
	OutputFile string

	// Rows is the assembled output table.
	Rows []accounts.Record

	// Success reports whether the run completed. Source failures degrade to
	// absent data instead of failing the run.
	Success bool

	// Error is set when Success is false.
	Error error

	// Stats carries run statistics for the summary report.
	Stats Stats
}

// Stats contains statistics about one extraction run.
type Stats struct {
	// PDFLines counts the normalized lines kept per rectangle.
	PDFLines map[string]int

	// RowsWritten is the number of data rows in the CSV.
	RowsWritten int

	// TotalQuantity and TotalCostBasis sum the parseable values of the two
	// extracted columns. QuantityParsed / CostBasisParsed count how many
	// rows contributed.
	TotalQuantity   decimal.Decimal
	TotalCostBasis  decimal.Decimal
	QuantityParsed  int
	CostBasisParsed int

	// Elapsed is the total pipeline duration.
	Elapsed time.Duration
}

// =============================================================================
// EXTRACTOR
// =============================================================================

// Extractor runs the pipeline for the configured input pair.
type Extractor struct {
	cfg    *config.MainConfig
	table  accounts.Table
	logger Logger

	// dryRun runs the full pipeline but skips the final write.
	dryRun bool
}

// New creates an Extractor using the built-in account table.
func New(cfg *config.MainConfig, logger Logger) *Extractor {
	return &Extractor{
		cfg:    cfg,
		table:  accounts.DefaultTable(),
		logger: logger,
	}
}

// SetDryRun toggles dry-run mode.
func (e *Extractor) SetDryRun(dryRun bool) {
	e.dryRun = dryRun
}

// Run executes the pipeline.
func (e *Extractor) Run() Result {
	start := time.Now()
	result := Result{
		RunID:   uuid.New().String(),
		Success: true,
	}
	result.Stats.PDFLines = make(map[string]int)

	e.logger.Info("Starting extraction run %s", result.RunID)

	// =========================================================================
	// STEP 1: EXCEL SOURCES
	// =========================================================================

	account := e.readExcelAccount()
	acquisitionCost, valuation := e.readExcelRange()

	// =========================================================================
	// STEP 2: PDF RECTANGLES
	// =========================================================================

	rawRegions := e.readPDFRegions()

	// =========================================================================
	// STEP 3: NORMALIZATION
	// =========================================================================

	values := normalizer.Clean(joinLines(rawRegions[config.RegionValue]), false)
	changes := normalizer.Clean(joinLines(rawRegions[config.RegionChange]), false)
	accountLines := normalizer.Clean(joinLines(rawRegions[config.RegionAccountNum]), true)

	result.Stats.PDFLines[config.RegionValue] = len(values)
	result.Stats.PDFLines[config.RegionChange] = len(changes)
	result.Stats.PDFLines[config.RegionAccountNum] = len(accountLines)

	e.logger.Debug("Normalized PDF lines: %d values, %d changes, %d accounts",
		len(values), len(changes), len(accountLines))

	// =========================================================================
	// STEP 4: ROW ASSEMBLY
	// =========================================================================

	result.Rows = AssembleRows(Inputs{
		Account:         account,
		AcquisitionCost: acquisitionCost,
		Valuation:       valuation,
		PDFValues:       values,
		PDFChanges:      changes,
		PDFAccounts:     accountLines,
	}, e.table)

	if len(result.Rows) == 0 {
		e.logger.Info("No meaningful data extracted from PDF or Excel file.")
		result.Stats.Elapsed = time.Since(start)
		return result
	}

	e.tallyTotals(&result)

	// =========================================================================
	// STEP 5: OUTPUT
	// =========================================================================

	if e.dryRun {
		e.logger.Info("Dry run: %d row(s) assembled, nothing written", len(result.Rows))
		result.Stats.RowsWritten = len(result.Rows)
		result.Stats.Elapsed = time.Since(start)
		return result
	}

	if err := csvwriter.Write(e.cfg.OutputFile, result.Rows); err != nil {
		// The table was assembled; only the write failed. Report it and end
		// the run without a partial file.
		e.logger.Error("Failed to write output: %v", err)
		result.Stats.Elapsed = time.Since(start)
		return result
	}

	result.OutputFile = e.cfg.OutputFile
	result.Stats.RowsWritten = len(result.Rows)
	result.Stats.Elapsed = time.Since(start)

	e.logger.Info("Data saved to %s (%d row(s))", result.OutputFile, result.Stats.RowsWritten)
	return result
}

// =============================================================================
// SOURCE READS
// =============================================================================

// readExcelAccount reads the account-number cell. Failures collapse to an
// absent field.
func (e *Extractor) readExcelAccount() accounts.Field {
	cell := e.cfg.AccountCell
	account, err := xlsxreader.ReadCell(e.cfg.ExcelPath, cell.SkipRows, cell.Column)
	if err != nil {
		e.logger.Warn("No account number from Excel: %v", err)
		return accounts.Absent()
	}
	if account.Present() {
		e.logger.Debug("Account from Excel: %s", account.String())
	}
	return account
}

// readExcelRange reads the acquisition-cost and valuation scalars. A column
// whose configured header is not present in the workbook is a data-shape
// problem and is reported as such rather than silently treated as absent.
func (e *Extractor) readExcelRange() (acquisitionCost, valuation accounts.Field) {
	r := e.cfg.DataRange
	columns, err := xlsxreader.ReadRange(e.cfg.ExcelPath, r.SkipRows, r.NumRows, r.FirstColumn, r.LastColumn)
	if err != nil {
		e.logger.Warn("No data range from Excel: %v", err)
		return accounts.Absent(), accounts.Absent()
	}

	return e.columnScalar(columns, e.cfg.ValueColumn),
		e.columnScalar(columns, e.cfg.ChangeColumn)
}

// columnScalar pulls the first value of a named column out of a range read.
func (e *Extractor) columnScalar(columns map[string][]accounts.Field, name string) accounts.Field {
	values, ok := columns[name]
	if !ok {
		e.logger.Warn("Excel column %q not found in range; headers present: %s",
			name, headerList(columns))
		return accounts.Absent()
	}
	if len(values) == 0 {
		return accounts.Absent()
	}
	return values[0]
}

// readPDFRegions extracts the raw rectangle text. Failures are logged and
// whatever was collected is used.
func (e *Extractor) readPDFRegions() map[string][]string {
	regions := make(map[string]pdfreader.Rect, len(e.cfg.Rectangles))
	for name, r := range e.cfg.Rectangles {
		regions[name] = pdfreader.Rect{X0: r.X0, Y0: r.Y0, X1: r.X1, Y1: r.Y1}
	}

	collected, err := pdfreader.ExtractRegions(e.cfg.PDFPath, regions, e.cfg.PDFPages)
	if err != nil {
		e.logger.Warn("PDF extraction incomplete: %v", err)
	}
	return collected
}

// =============================================================================
// TOTALS
// =============================================================================

// tallyTotals sums the parseable Quantité / Prix de revient values for the
// summary report. Currency symbols are stripped before parsing; rows whose
// value still does not parse are skipped.
func (e *Extractor) tallyTotals(result *Result) {
	for _, row := range result.Rows {
		if v, ok := parseAmount(row[accounts.FieldQuantity]); ok {
			result.Stats.TotalQuantity = result.Stats.TotalQuantity.Add(v)
			result.Stats.QuantityParsed++
		}
		if v, ok := parseAmount(row[accounts.FieldCostBasis]); ok {
			result.Stats.TotalCostBasis = result.Stats.TotalCostBasis.Add(v)
			result.Stats.CostBasisParsed++
		}
	}
}

// parseAmount turns a normalized field into a decimal, ignoring any
// currency symbol characters the normalizer let through.
func parseAmount(f accounts.Field) (decimal.Decimal, bool) {
	if !f.Present() {
		return decimal.Zero, false
	}
	s := strings.Map(func(r rune) rune {
		switch r {
		case '€', 'E', 'U', 'R':
			return -1
		}
		return r
	}, f.String())
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, false
	}
	return d, true
}

// joinLines rebuilds a multi-line raw text block for the normalizer.
func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// headerList renders the available range headers for a warning message.
func headerList(columns map[string][]accounts.Field) string {
	names := make([]string, 0, len(columns))
	for name := range columns {
		names = append(names, "\""+name+"\"")
	}
	if len(names) == 0 {
		return "(none)"
	}
	return strings.Join(names, ", ")
}
