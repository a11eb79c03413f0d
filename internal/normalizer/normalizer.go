// =============================================================================
// Position Extractor - Text Normalizer
// =============================================================================
//
// Cleans raw text pulled out of PDF rectangles (and any other free-form
// source) into flat value lists. Two modes:
//
//   - Account mode: lines are only trimmed; account identifiers are never
//     numeric-cleaned.
//   - Numeric mode: locale-formatted amounts ("1 234,56", "1.500,00 €") are
//     reduced to plain period-decimal strings. Lines without a single digit
//     are dropped entirely.
//
// Clean is a pure function: no state, no errors, same input same output.
//
// =============================================================================

package normalizer

import "strings"

// allowedRune reports whether a character survives numeric cleaning.
// The currency allowlist is per-character, not token-aware: '€' plus the
// letters E, U, R. That means digits embedded in unrelated text also pass
// the digit-presence filter; the behavior is kept as-is on purpose.
func allowedRune(r rune) bool {
	if r >= '0' && r <= '9' {
		return true
	}
	switch r {
	case '.', '€', 'E', 'U', 'R':
		return true
	}
	return false
}

// Clean splits raw on line breaks, trims each line, drops empty lines, and
// (unless isAccount is set) numeric-cleans each remaining line.
//
// Numeric cleaning per line:
//  1. remove all spaces
//  2. when a comma is present it is the locale decimal separator: periods
//     are thousands separators and are stripped, then the comma becomes a
//     period
//  3. keep only digits, '.', and currency symbol characters
//  4. drop the line when no digit remains
func Clean(raw string, isAccount bool) []string {
	if raw == "" {
		return nil
	}

	var out []string
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(strings.TrimSuffix(line, "\r"))
		if line == "" {
			continue
		}

		if isAccount {
			out = append(out, line)
			continue
		}

		if cleaned, ok := cleanNumeric(line); ok {
			out = append(out, cleaned)
		}
	}
	return out
}

// cleanNumeric normalizes a single trimmed line. The boolean is false when
// the line holds no digit after filtering.
func cleanNumeric(line string) (string, bool) {
	line = strings.ReplaceAll(line, " ", "")

	// "1.500,00" reads as 1500.00: the comma is the decimal separator and
	// any periods before it are thousands separators.
	if strings.Contains(line, ",") {
		line = strings.ReplaceAll(line, ".", "")
		line = strings.ReplaceAll(line, ",", ".")
	}

	var b strings.Builder
	hasDigit := false
	for _, r := range line {
		if !allowedRune(r) {
			continue
		}
		if r >= '0' && r <= '9' {
			hasDigit = true
		}
		b.WriteRune(r)
	}

	if !hasDigit {
		return "", false
	}
	return b.String(), true
}
