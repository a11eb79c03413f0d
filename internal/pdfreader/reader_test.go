package pdfreader

import (
	"path/filepath"
	"testing"

	"github.com/ledongthuc/pdf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// frag builds a text fragment at a bottom-left-origin position.
func frag(s string, x, y, w float64) pdf.Text {
	return pdf.Text{S: s, X: x, Y: y, W: w}
}

func TestContains_FlipsTopLeftRectangles(t *testing.T) {
	// Page height 842; the configured rectangle (370,120,470,140) covers
	// fragments whose bottom-left Y falls between 702 and 722.
	rect := Rect{X0: 370, Y0: 120, X1: 470, Y1: 140}

	assert.True(t, contains(rect, 400, 712, 842))
	assert.False(t, contains(rect, 400, 600, 842), "below the rectangle")
	assert.False(t, contains(rect, 400, 750, 842), "above the rectangle")
	assert.False(t, contains(rect, 300, 712, 842), "left of the rectangle")
	assert.False(t, contains(rect, 500, 712, 842), "right of the rectangle")
}

func TestLinesInRect_GroupsAndOrders(t *testing.T) {
	rect := Rect{X0: 100, Y0: 100, X1: 300, Y1: 200}
	height := 842.0

	texts := []pdf.Text{
		// Second line (lower on the page, smaller Y in page space).
		frag("2", 110, 700, 6),
		frag("00,00", 116, 700.5, 30),
		// First line, fragments deliberately out of order.
		frag("500,00", 126, 730, 36),
		frag("1.", 114, 730.4, 12),
		// Outside the rectangle.
		frag("9999", 400, 730, 24),
		// Blank fragment is dropped.
		frag("  ", 120, 730, 5),
	}

	lines := linesInRect(texts, rect, height)

	require.Len(t, lines, 2)
	assert.Equal(t, "1.500,00", lines[0])
	assert.Equal(t, "200,00", lines[1])
}

func TestJoinFragments_SpacesOnlyAcrossRealGaps(t *testing.T) {
	// Adjacent glyph runs of one number are concatenated; a wide gap gets a
	// separating space.
	joined := joinFragments([]pdf.Text{
		frag("100", 100, 700, 18),
		frag("123", 118.5, 700, 18),
		frag("456", 160, 700, 18),
	})
	assert.Equal(t, "100123 456", joined)
}

func TestExtractRegions_MissingFile(t *testing.T) {
	regions := map[string]Rect{
		"value": {X0: 370, Y0: 120, X1: 470, Y1: 140},
	}

	collected, err := ExtractRegions(filepath.Join(t.TempDir(), "nope.pdf"), regions, 1)

	// The error is reported, but the caller still gets a map with every
	// region present so the pipeline can continue with empty data.
	assert.Error(t, err)
	require.Contains(t, collected, "value")
	assert.Empty(t, collected["value"])
}
