// =============================================================================
// Position Extractor - Extract Command
// =============================================================================
//
// This file defines the 'extract' command, which runs the extraction
// pipeline end to end.
//
// COMMAND USAGE:
//   position-extractor extract [flags]
//
// FLAGS:
//   --dry-run : Run the full pipeline without writing the output file
//   --output  : Override the configured output file path
//   --pages   : Override the number of PDF pages to scan
//
// PIPELINE:
//   1. Load configuration (built-in defaults if no config file)
//   2. Read the Excel account cell and data range
//   3. Extract the named PDF rectangles
//   4. Normalize, align and enrich the rows
//   5. Write the CSV export and print a summary
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Panasaurio/position-extractor/internal/config"
	"github.com/Panasaurio/position-extractor/internal/extractor"
)

// dryRun runs the pipeline without writing the output file.
var dryRun bool

// outputFile overrides the configured output path when non-empty.
var outputFile string

// pdfPages overrides the configured page count when positive.
var pdfPages int

// extractCmd represents the 'extract' command.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract positions from the Excel and PDF inputs and write the CSV export",
	Long: `The extract command reads the configured Excel workbook and PDF statement,
normalizes and aligns the extracted values, enriches each row through the
account lookup table, and writes the 13-column CSV export.

A missing or unreadable input file is reported and treated as "no data from
that source"; the run continues with the remaining source and still exits
successfully. The only terminal condition is an empty result table, which is
reported as a message and writes nothing.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runExtract()
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)

	extractCmd.Flags().BoolVar(
		&dryRun,
		"dry-run",
		false,
		"Run the full pipeline without writing the output file",
	)

	extractCmd.Flags().StringVar(
		&outputFile,
		"output",
		"",
		"Override the configured output file path",
	)

	extractCmd.Flags().IntVar(
		&pdfPages,
		"pages",
		0,
		"Override the number of PDF pages to scan",
	)
}

// runExtract loads the configuration, applies flag overrides, and runs the
// pipeline.
func runExtract() error {
	fmt.Println("=== Position Extractor ===")

	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	if outputFile != "" {
		cfg.OutputFile = outputFile
	}
	if pdfPages > 0 {
		cfg.PDFPages = pdfPages
	}

	logger := &extractor.StdoutLogger{Verbose: verbose}
	ext := extractor.New(cfg, logger)
	ext.SetDryRun(dryRun)

	result := ext.Run()

	fmt.Println("\n=== Extraction Complete ===")
	fmt.Printf("Run ID:          %s\n", result.RunID)
	fmt.Printf("Rows assembled:  %d\n", len(result.Rows))
	if result.OutputFile != "" {
		fmt.Printf("Output file:     %s\n", result.OutputFile)
	}
	if result.Stats.QuantityParsed > 0 {
		fmt.Printf("Total Quantité:  %s (%d row(s))\n",
			result.Stats.TotalQuantity.String(), result.Stats.QuantityParsed)
	}
	if result.Stats.CostBasisParsed > 0 {
		fmt.Printf("Total Prix de revient: %s (%d row(s))\n",
			result.Stats.TotalCostBasis.String(), result.Stats.CostBasisParsed)
	}
	fmt.Printf("Time elapsed:    %s\n", result.Stats.Elapsed)

	// An empty table is a reported condition, not a process failure.
	return nil
}
