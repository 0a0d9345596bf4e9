// =============================================================================
// pain.001 / pain.002 Batch Generator - Generate Command
// =============================================================================
//
// COMMAND USAGE:
//   paingen generate [flags]
//
// FLAGS:
//   --count          : Number of pain.001/pain.002 pairs (file_count)
//   --txn-per-block  : Transactions in each payment-info block
//   --blocks         : Payment-info blocks in each pain.001
//   --output-root    : Directory holding pain001/ and pain002/
//
// Flags override the configuration file; unset flags keep its values.
//
// PROCESSING PIPELINE:
//   1. Load configuration (and the accounts file, if any)
//   2. Clear pain001/ and pain002/ under the output root
//   3. Generate each run in sequence, stopping at the first write error
//   4. Print the summary
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/pain-batch-generator/internal/generator"
	"github.com/ginjaninja78/pain-batch-generator/pkg/utils"
)

// =============================================================================
// COMMAND FLAGS
// =============================================================================

var (
	fileCount   int
	txnPerBlock int
	blocks      int
	outputRoot  string
)

// =============================================================================
// GENERATE COMMAND DEFINITION
// =============================================================================

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a batch of pain.001/pain.002 files",
	Long: `The generate command clears the pain001 and pain002 output directories and
writes one pain.001 file set and one pain.002 file set per run.

Every run gets a message id made of the batch start second and the run
index, so ids are unique within a batch. Trigger files are written after the
file they announce.

On error:
  - The batch stops at the first failed write
  - Files already written are left in place
  - The command exits with a non-zero status`,

	RunE: func(cmd *cobra.Command, args []string) error {
		return runGenerate(cmd)
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)

	generateCmd.Flags().IntVar(&fileCount, "count", 0, "Number of file pairs to generate (default from config)")
	generateCmd.Flags().IntVar(&txnPerBlock, "txn-per-block", 0, "Transactions per payment-info block (default from config)")
	generateCmd.Flags().IntVar(&blocks, "blocks", 0, "Payment-info blocks per message (default from config)")
	generateCmd.Flags().StringVar(&outputRoot, "output-root", "", "Output root directory (default from config)")
}

// =============================================================================
// MAIN PROCESSING FUNCTION
// =============================================================================

func runGenerate(cmd *cobra.Command) error {
	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("count") {
		cfg.FileCount = fileCount
	}
	if flags.Changed("txn-per-block") {
		cfg.TransactionsPerBlock = txnPerBlock
	}
	if flags.Changed("blocks") {
		cfg.BlocksPerMessage = blocks
	}
	if flags.Changed("output-root") {
		cfg.OutputRoot = outputRoot
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid parameters: %w", err)
	}

	gen := generator.New(cfg, generator.WithLogger(logger))
	summary, err := gen.Run(cfg.FileCount, cfg.TransactionsPerBlock, cfg.BlocksPerMessage)
	if err != nil {
		return err
	}

	return utils.WriteSummary(cmd.OutOrStdout(), *summary)
}
