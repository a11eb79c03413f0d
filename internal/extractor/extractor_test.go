package extractor

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Panasaurio/position-extractor/internal/accounts"
	"github.com/Panasaurio/position-extractor/internal/config"
)

// nopLogger swallows all output in tests.
type nopLogger struct{}

func (nopLogger) Debug(string, ...interface{}) {}
func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRun_BothInputsMissing(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Default()
	cfg.ExcelPath = filepath.Join(dir, "missing.xlsx")
	cfg.PDFPath = filepath.Join(dir, "missing.pdf")
	cfg.OutputFile = filepath.Join(dir, "out.csv")

	result := New(cfg, nopLogger{}).Run()

	// Missing sources degrade to empty data; the run still succeeds and
	// writes nothing.
	assert.True(t, result.Success)
	assert.NoError(t, result.Error)
	assert.Empty(t, result.Rows)
	assert.Empty(t, result.OutputFile)

	_, err := os.Stat(cfg.OutputFile)
	assert.True(t, os.IsNotExist(err))
}

func TestRun_DryRunWritesNothing(t *testing.T) {
	dir := t.TempDir()

	cfg := config.Default()
	cfg.ExcelPath = filepath.Join(dir, "missing.xlsx")
	cfg.PDFPath = filepath.Join(dir, "missing.pdf")
	cfg.OutputFile = filepath.Join(dir, "out.csv")

	ext := New(cfg, nopLogger{})
	ext.SetDryRun(true)
	result := ext.Run()

	assert.True(t, result.Success)
	_, err := os.Stat(cfg.OutputFile)
	assert.True(t, os.IsNotExist(err))
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name  string
		field accounts.Field
		want  string
		ok    bool
	}{
		{"plain decimal", accounts.Value("1500.00"), "1500", true},
		{"euro suffix", accounts.Value("1500.00€"), "1500", true},
		{"EUR letters", accounts.Value("250.10EUR"), "250.1", true},
		{"absent", accounts.Absent(), "0", false},
		{"present empty", accounts.Value(""), "0", false},
		{"not a number", accounts.Value("12.34.56"), "0", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseAmount(tt.field)
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.True(t, got.Equal(decimal.RequireFromString(tt.want)),
					"got %s, want %s", got, tt.want)
			}
		})
	}
}

func TestTallyTotals(t *testing.T) {
	var r1, r2 accounts.Record
	r1[accounts.FieldQuantity] = accounts.Value("1355.97")
	r1[accounts.FieldCostBasis] = accounts.Value("1392.60")
	r2[accounts.FieldQuantity] = accounts.Value("1500.00€")

	result := &Result{Rows: []accounts.Record{r1, r2}}
	ext := New(config.Default(), nopLogger{})
	ext.tallyTotals(result)

	require.Equal(t, 2, result.Stats.QuantityParsed)
	require.Equal(t, 1, result.Stats.CostBasisParsed)
	assert.True(t, result.Stats.TotalQuantity.Equal(decimal.RequireFromString("2855.97")))
	assert.True(t, result.Stats.TotalCostBasis.Equal(decimal.RequireFromString("1392.60")))
}
