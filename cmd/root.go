// =============================================================================
// pain.001 / pain.002 Batch Generator - Root Command
// =============================================================================
//
// This file defines the root command for the Cobra CLI. All other commands
// are attached to it.
//
// COBRA CLI STRUCTURE:
//   rootCmd (paingen)
//   ├── generateCmd (paingen generate)
//   ├── validateCmd (paingen validate)
//   └── versionCmd  (paingen version)
//
// The root command owns the global flags (--config, --verbose) and the
// shared configuration and logging setup used by the subcommands.
//
// =============================================================================

package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/ginjaninja78/pain-batch-generator/internal/accounts"
	"github.com/ginjaninja78/pain-batch-generator/internal/config"
	"github.com/ginjaninja78/pain-batch-generator/internal/logging"
)

// =============================================================================
// GLOBAL VARIABLES
// =============================================================================

// cfgFile holds the path to the configuration file. Empty means built-in
// defaults.
var cfgFile string

// verbose forces debug logging regardless of log_level.
var verbose bool

// =============================================================================
// ROOT COMMAND DEFINITION
// =============================================================================

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "paingen",
	Short: "pain.001/pain.002 Batch Generator - synthetic ISO 20022 test files",
	Long: `paingen writes batches of synthetic ISO 20022 credit-transfer initiation
files (pain.001.001.09) and the matching payment status reports
(pain.002.001.10) for load-testing a downstream payment pipeline.

Each run produces:
  pain001/<SYSTEM>_<BANKID>_<id>.meta        + .meta.trigger
  pain001/<SYSTEM>_<BANKID>_<id>.xml         + .xml.trigger
  pain002/Pain002_<SYSTEM>_<BANKID>_<id>.xml + .xml.trigger

Example Usage:
  paingen generate                         # 200 runs with the built-in defaults
  paingen generate --count 2 --blocks 3    # a small batch
  paingen generate --config ./paingen.yaml # use a configuration file
  paingen validate --config ./paingen.yaml # check a configuration file`,

	SilenceUsage:  true,
	SilenceErrors: true,

	Run: func(cmd *cobra.Command, args []string) {
		cmd.Help()
	},
}

// =============================================================================
// EXECUTE FUNCTION
// =============================================================================

// Execute runs the root command. It is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// =============================================================================
// INITIALIZATION
// =============================================================================

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile,
		"config",
		"",
		"Path to a YAML configuration file (built-in defaults when empty)",
	)

	rootCmd.PersistentFlags().BoolVarP(
		&verbose,
		"verbose",
		"v",
		false,
		"Enable debug logging",
	)
}

// =============================================================================
// SHARED SETUP
// =============================================================================

// loadConfig loads and validates the configuration, replaces the account
// lists when an accounts file is configured, and initializes logging.
func loadConfig() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	level := cfg.LogLevel
	if verbose {
		level = "debug"
	}
	logger := logging.Init(logging.LogConfig{Level: level, Format: cfg.LogFormat})

	if cfg.AccountsFile != "" {
		lists, err := accounts.Load(cfg.AccountsFile, cfg.AccountsSheet)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to load accounts: %w", err)
		}
		cfg.DebtorAccounts = lists.Debtors
		cfg.CreditorAccounts = lists.Creditors
		logger.Info("Loaded account lists",
			"file", cfg.AccountsFile,
			"debtors", len(lists.Debtors),
			"creditors", len(lists.Creditors))
	}

	return cfg, logger, nil
}
