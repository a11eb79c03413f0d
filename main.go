// =============================================================================
// Position Extractor - Main Entry Point
// =============================================================================
//
// This is the main entry point for the Position Extractor CLI application.
// It initializes the Cobra CLI framework and delegates command execution to
// the cmd package.
//
// USAGE:
//   position-extractor extract    - Extract positions from the Excel/PDF inputs
//   position-extractor validate   - Validate configuration and input files
//   position-extractor version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/        : CLI command definitions (Cobra)
//   - internal/   : Core extraction logic (not for external import)
//   - pkg/        : Shared utilities
//
// =============================================================================

package main

import (
	"github.com/Panasaurio/position-extractor/cmd"
)

func main() {
	cmd.Execute()
}
