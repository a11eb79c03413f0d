// =============================================================================
// Position Extractor - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. The root command is
// the base command that the other commands ('extract', 'validate',
// 'version') are attached to.
//
// COBRA CLI STRUCTURE:
//   rootCmd (position-extractor)
//   ├── extractCmd  (position-extractor extract)
//   ├── validateCmd (position-extractor validate)
//   └── versionCmd  (position-extractor version)
//
// =============================================================================

package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

// cfgFile holds the path to the configuration file.
// This can be overridden using the --config flag.
var cfgFile string

// verbose enables debug logging when set to true.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use: "position-extractor",

	Short: "Position Extractor - Export financial positions from Excel and PDF sources",

	Long: `Position Extractor is a CLI tool that extracts financial position data
from two heterogeneous sources - a cell range of an Excel workbook and fixed
rectangular regions of a PDF bank statement - normalizes the extracted
values, enriches each record through a static account-number lookup table,
and writes a flat 13-column CSV export.

Key Features:
  - Positional PDF text extraction from named page rectangles
  - Locale-aware numeric cleaning (French decimal commas, Euro symbols)
  - Account-prefix enrichment from an embedded lookup table
  - Graceful degradation: a missing or unreadable source never aborts a run

Example Usage:
  position-extractor extract                     # Run with the built-in settings
  position-extractor extract --config ./my.yaml  # Use a custom configuration file
  position-extractor validate                    # Check configuration and inputs`,

	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print the help message.
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags are available to this command and all subcommands.
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"config.yaml",
		"Path to the configuration file (built-in defaults apply if absent)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable verbose output for debugging",
	)
}
