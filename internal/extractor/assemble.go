// =============================================================================
// Position Extractor - Row Assembly
// =============================================================================
//
// Pure assembly of the output table from the already-normalized inputs.
// Three parallel sequences are built (quantity, cost basis, account
// identifiers), each with the single Excel scalar as row 0 when present and
// one further row per extracted PDF line. After right-padding them to equal
// length, every aligned index becomes one 13-field record: the account
// identifier selects a template from the lookup table, then the Quantité
// and Prix de revient fields are overwritten from the aligned sequences.
//
// =============================================================================

package extractor

import (
	"github.com/Panasaurio/position-extractor/internal/accounts"
	"github.com/Panasaurio/position-extractor/internal/aligner"
)

// Inputs carries the normalized source data for one extraction run.
type Inputs struct {
	// Account is the account identifier read from the Excel workbook.
	Account accounts.Field

	// AcquisitionCost and Valuation are the two scalars from the Excel data
	// range.
	AcquisitionCost accounts.Field
	Valuation       accounts.Field

	// PDFValues, PDFChanges and PDFAccounts are the cleaned line sequences
	// from the three statement rectangles.
	PDFValues   []string
	PDFChanges  []string
	PDFAccounts []string
}

// AssembleRows builds the aligned output table. Rows that would carry no
// data at all are not emitted.
func AssembleRows(in Inputs, table accounts.Table) []accounts.Record {
	quantity := combined(in.AcquisitionCost, in.PDFValues)
	costBasis := combined(in.Valuation, in.PDFChanges)
	accountIDs := combined(in.Account, in.PDFAccounts)

	padded := aligner.Pad([][]accounts.Field{quantity, costBasis, accountIDs})
	quantity, costBasis, accountIDs = padded[0], padded[1], padded[2]

	rows := make([]accounts.Record, 0, len(accountIDs))
	for i := range accountIDs {
		rec := accounts.Lookup(accountIDs[i], table)
		rec[accounts.FieldQuantity] = quantity[i]
		rec[accounts.FieldCostBasis] = costBasis[i]

		if rec.Empty() {
			continue
		}
		rows = append(rows, rec)
	}
	return rows
}

// combined prepends the Excel scalar (when present) to the PDF lines.
func combined(scalar accounts.Field, lines []string) []accounts.Field {
	seq := make([]accounts.Field, 0, len(lines)+1)
	if scalar.Present() {
		seq = append(seq, scalar)
	}
	for _, line := range lines {
		seq = append(seq, accounts.Value(line))
	}
	return seq
}
