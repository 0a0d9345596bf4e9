// =============================================================================
// pain.001 / pain.002 Batch Generator - Validate Command
// =============================================================================
//
// COMMAND USAGE:
//   paingen validate [--config file]
//
// Loads the configuration (and accounts file, if set) exactly as generate
// would and prints the resolved run parameters. Nothing is written.
//
// =============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and print the resolved values",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, _, err := loadConfig()
		if err != nil {
			return err
		}

		source := cfgFile
		if source == "" {
			source = "(built-in defaults)"
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Configuration OK: %s\n", source)
		fmt.Fprintf(out, "Output root:         %s\n", cfg.OutputRoot)
		fmt.Fprintf(out, "File count:          %d\n", cfg.FileCount)
		fmt.Fprintf(out, "Transactions/block:  %d\n", cfg.TransactionsPerBlock)
		fmt.Fprintf(out, "Blocks/message:      %d\n", cfg.BlocksPerMessage)
		fmt.Fprintf(out, "Transactions/file:   %d\n", cfg.TransactionsPerBlock*cfg.BlocksPerMessage)
		fmt.Fprintf(out, "Instructed amount:   %s NOK\n", cfg.Amount())
		fmt.Fprintf(out, "Agreement / bank:    %s / %s (%s)\n", cfg.AgreementID, cfg.BankID, cfg.BankName)
		fmt.Fprintf(out, "System / market:     %s / %s\n", cfg.System, cfg.MarketType)
		fmt.Fprintf(out, "Debtor accounts:     %d\n", len(cfg.DebtorAccounts))
		fmt.Fprintf(out, "Creditor accounts:   %d\n", len(cfg.CreditorAccounts))
		fmt.Fprintf(out, "Pretty print:        %t\n", cfg.PrettyPrint)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
