// =============================================================================
// Position Extractor - Account Lookup Table
// =============================================================================
//
// Static mapping from a 3-character account-number prefix to a default record
// template. The table is built once at startup and never mutated afterwards;
// Lookup always hands back an independent copy, so callers are free to
// overwrite the Quantité / Prix de revient placeholders without corrupting
// later lookups for the same prefix.
//
// =============================================================================

package accounts

import "strings"

// PrefixLen is the number of leading characters of an account identifier
// used as the join key into the table.
const PrefixLen = 3

// Table maps account-number prefixes to record templates.
type Table map[string]Record

// DefaultTable returns the built-in account table. Quantité and Prix de
// revient start absent in every template; they are filled per row from the
// extracted data.
func DefaultTable() Table {
	return Table{
		"193": {
			FieldClient:        Value("Juandi"),
			FieldAccountType:   Value("Debit account"),
			FieldAccountNumber: Value("193000"),
			FieldBankName:      Value("CIC"),
			FieldAssetClass:    Value("Funds"),
			FieldISIN:          Value("A123"),
			FieldPrice:         Value(""),
			FieldCurrency:      Value("EUR"),
			FieldZone:          Value("Medellin"),
			FieldLabel:         Value("Fund XYZ"),
			FieldSector:        Value("Finance"),
		},
		"100": {
			FieldClient:        Value("Juanse"),
			FieldAccountType:   Value("Credit account"),
			FieldAccountNumber: Value("100123"),
			FieldBankName:      Value("EXEX"),
			FieldAssetClass:    Value("Stocks"),
			FieldISIN:          Value("B456"),
			FieldPrice:         Value(""),
			FieldCurrency:      Value("EUR"),
			FieldZone:          Value("Tolima"),
			FieldLabel:         Value("Stock ABC"),
			FieldSector:        Value("Technology"),
		},
	}
}

// Lookup resolves an account identifier to a record.
//
// An absent identifier yields an all-absent record. Otherwise the first
// PrefixLen characters of the trimmed identifier (the whole string if
// shorter) select a template; a hit returns a copy of it, a miss returns an
// all-absent record carrying the identifier in the account-number field.
func Lookup(id Field, table Table) Record {
	if !id.Present() {
		return Record{}
	}

	trimmed := strings.TrimSpace(id.String())
	key := trimmed
	if len(trimmed) >= PrefixLen {
		key = trimmed[:PrefixLen]
	}

	// Record is an array type, so the indexed read below already copies the
	// template; the shared table entry stays untouched.
	if template, ok := table[key]; ok {
		return template
	}

	var rec Record
	rec[FieldAccountNumber] = Value(trimmed)
	return rec
}
