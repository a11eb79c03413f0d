// =============================================================================
// Position Extractor - Sequence Aligner
// =============================================================================
//
// Reconciles differently-lengthened value streams (spreadsheet scalars, PDF
// value lines, PDF account lines) into equal-length parallel sequences, so
// that index i across all of them refers to the same logical account entry.
//
// =============================================================================

package aligner

import "github.com/Panasaurio/position-extractor/internal/accounts"

// Pad right-pads every sequence with the absent marker up to the length of
// the longest one. Empty input yields empty output. The input slices are not
// mutated; the result always holds fresh backing arrays.
func Pad(seqs [][]accounts.Field) [][]accounts.Field {
	if len(seqs) == 0 {
		return nil
	}

	maxLen := 0
	for _, seq := range seqs {
		if len(seq) > maxLen {
			maxLen = len(seq)
		}
	}

	padded := make([][]accounts.Field, len(seqs))
	for i, seq := range seqs {
		p := make([]accounts.Field, maxLen)
		copy(p, seq)
		for j := len(seq); j < maxLen; j++ {
			p[j] = accounts.Absent()
		}
		padded[i] = p
	}
	return padded
}
