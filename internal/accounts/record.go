// =============================================================================
// Position Extractor - Account Records
// =============================================================================
//
// This module defines the 13-field output record and the absent-aware Field
// type used throughout the pipeline. A Field distinguishes "no value" from a
// present-but-empty string: absent fields render as empty CSV cells, but the
// two states are never conflated internally.
//
// RECORD LAYOUT (fixed, index-addressed):
//   0  Client              7  Devise
//   1  Type de compte      8  Zone géographique
//   2  Nom et N. de compte 9  Libellé
//   3  Nom de banque       10 Quantité
//   4  Classe d'actifs     11 Prix de revient
//   5  Code ISIN           12 Secteur
//   6  Cours
//
// =============================================================================

package accounts

// NumFields is the fixed width of every output record.
const NumFields = 13

// Field indices into a Record. The order matches the CSV header exactly.
const (
	FieldClient = iota
	FieldAccountType
	FieldAccountNumber
	FieldBankName
	FieldAssetClass
	FieldISIN
	FieldPrice
	FieldCurrency
	FieldZone
	FieldLabel
	FieldQuantity
	FieldCostBasis
	FieldSector
)

// Field holds one cell of an output record. The zero value is absent.
type Field struct {
	value   string
	present bool
}

// Absent returns the explicit no-value marker.
func Absent() Field {
	return Field{}
}

// Value returns a present field holding s. Value("") is present and empty,
// which is not the same as Absent().
func Value(s string) Field {
	return Field{value: s, present: true}
}

// Present reports whether the field holds a value.
func (f Field) Present() bool {
	return f.present
}

// String returns the field's value, or "" for an absent field.
func (f Field) String() string {
	return f.value
}

// Record is one output row. It is a value type: assigning or returning a
// Record copies all 13 fields, so callers can never alias a shared template.
type Record [NumFields]Field

// Header returns the CSV header row for serialized records.
func Header() []string {
	return []string{
		"Client",
		"Type de compte",
		"Nom et N. de compte",
		"Nom de banque",
		"Classe d'actifs",
		"Code ISIN",
		"Cours",
		"Devise",
		"Zone géographique",
		"Libellé",
		"Quantité",
		"Prix de revient",
		"Secteur",
	}
}

// Strings renders the record for the CSV writer. Absent fields become empty
// cells.
func (r Record) Strings() []string {
	out := make([]string, NumFields)
	for i, f := range r {
		out[i] = f.String()
	}
	return out
}

// Empty reports whether every field of the record is absent.
func (r Record) Empty() bool {
	for _, f := range r {
		if f.Present() {
			return false
		}
	}
	return true
}
