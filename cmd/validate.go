// =============================================================================
// Position Extractor - Validate Command
// =============================================================================
//
// This file defines the 'validate' command, which checks the configuration
// and reports on the input files without running the pipeline.
//
// COMMAND USAGE:
//   position-extractor validate
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Panasaurio/position-extractor/internal/config"
	"github.com/Panasaurio/position-extractor/pkg/utils"
)

// validateCmd represents the 'validate' command.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and report on the input files",
	Long: `The validate command loads the configuration (applying built-in defaults
for anything unset), verifies the PDF rectangles and range selectors are
well-formed, and reports whether the configured input files are present.

Missing input files are reported but are not an error: the extract command
degrades gracefully when a source is absent.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runValidate()
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

// runValidate checks the configuration and prints findings.
func runValidate() error {
	fmt.Println("=== Configuration Validation ===")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("configuration is invalid: %w", err)
	}
	fmt.Println("Configuration OK")

	reportInput("Excel workbook", cfg.ExcelPath)
	reportInput("PDF statement", cfg.PDFPath)

	fmt.Printf("Output file:    %s\n", cfg.OutputFile)
	fmt.Printf("PDF pages:      %d\n", cfg.PDFPages)
	for _, name := range []string{config.RegionValue, config.RegionChange, config.RegionAccountNum} {
		r := cfg.Rectangles[name]
		fmt.Printf("Rectangle %-12s (%.0f, %.0f, %.0f, %.0f)\n", name+":", r.X0, r.Y0, r.X1, r.Y1)
	}

	return nil
}

// reportInput prints the presence and size of an input file.
func reportInput(label, path string) {
	if !utils.FileExists(path) {
		fmt.Printf("%s: MISSING (%s) - extraction will continue without it\n", label, path)
		return
	}
	size, err := utils.GetFileSize(path)
	if err != nil {
		fmt.Printf("%s: %s (size unknown: %v)\n", label, path, err)
		return
	}
	fmt.Printf("%s: %s (%d bytes)\n", label, path, size)
}
