// =============================================================================
// pain.001 / pain.002 Batch Generator - Main Entry Point
// =============================================================================
//
// USAGE:
//   paingen generate   - Generate a batch of pain.001/pain.002 files
//   paingen validate   - Validate the configuration without writing files
//   paingen version    - Display the application version
//
// ARCHITECTURE:
//   - cmd/                 : CLI command definitions (Cobra)
//   - internal/config      : YAML run parameters and defaults
//   - internal/pain        : pain.001/pain.002 template expansion
//   - internal/generator   : batch loop and file-set writing
//   - internal/accounts    : optional .xlsx/.csv account lists
//   - internal/xmlwriter   : optional XML pretty printing
//   - pkg/utils            : file operations and the batch summary
//
// =============================================================================

package main

import (
	"github.com/ginjaninja78/pain-batch-generator/cmd"
)

func main() {
	cmd.Execute()
}
