// =============================================================================
// pain.001 / pain.002 Batch Generator - Configuration Module
// =============================================================================
//
// This module loads the run parameters used by the batch generator. Every
// value has a default, so the generator can run without any config file.
//
// CONFIGURATION FILE:
//   config.yaml (path set with --config). All keys are optional; any key left
//   out keeps its default value.
//
// EXAMPLE:
//   output_root: ./out
//   file_count: 2
//   transactions_per_block: 5
//   blocks_per_message: 3
//   debtor_accounts: ["42010256938", "42010256946"]
//
// =============================================================================

package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// =============================================================================
// DEFAULT VALUES
// =============================================================================

const (
	DefaultOutputRoot           = "PMR files/Auto Generator"
	DefaultFileCount            = 200
	DefaultTransactionsPerBlock = 200
	DefaultBlocksPerMessage     = 100
	DefaultAgreementID          = "10000025"
	DefaultBankID               = "3240"
	DefaultMarketType           = "PM"
	DefaultSystem               = "CDS"
	DefaultInstructedAmount     = "106"
	DefaultBIC                  = "HAUGNO21XXX"
	DefaultBankName             = "Haugesund Sparebank"
	DefaultLogLevel             = "info"
	DefaultLogFormat            = "text"

	// Pain001DirName and Pain002DirName are the output sub-directories
	// created under OutputRoot.
	Pain001DirName = "pain001"
	Pain002DirName = "pain002"
)

// DefaultDebtorAccounts and DefaultCreditorAccounts are used when no
// accounts are configured.
var (
	DefaultDebtorAccounts   = []string{"42010256938"}
	DefaultCreditorAccounts = []string{"96500461516"}
)

// =============================================================================
// CONFIGURATION STRUCTURE
// =============================================================================

// Config holds the run parameters for a batch.
type Config struct {
	// =========================================================================
	// OUTPUT SETTINGS
	// =========================================================================

	// OutputRoot is the directory holding the pain001 and pain002 folders.
	OutputRoot string `yaml:"output_root"`

	// FileCount is the number of pain.001/pain.002 pairs per batch.
	FileCount int `yaml:"file_count"`

	// TransactionsPerBlock is the number of CdtTrfTxInf entries in each PmtInf.
	TransactionsPerBlock int `yaml:"transactions_per_block"`

	// BlocksPerMessage is the number of PmtInf blocks in each pain.001.
	BlocksPerMessage int `yaml:"blocks_per_message"`

	// PrettyPrint re-indents generated XML. Off by default: downstream
	// consumers expect the raw single-line documents.
	PrettyPrint bool `yaml:"pretty_print"`

	// =========================================================================
	// PARTY SETTINGS
	// =========================================================================

	// AgreementID is written unquoted to the .meta file and prefixes the
	// pain.002 message id.
	AgreementID string `yaml:"agreement_id"`

	BankID     string `yaml:"bank_id"`
	MarketType string `yaml:"market_type"`

	// System is the source system code used in file names and .meta files.
	System string `yaml:"system"`

	BIC      string `yaml:"bic"`
	BankName string `yaml:"bank_name"`

	// =========================================================================
	// PAYMENT SETTINGS
	// =========================================================================

	// DebtorAccounts and CreditorAccounts are picked round-robin by the
	// payment-info block index.
	DebtorAccounts   []string `yaml:"debtor_accounts"`
	CreditorAccounts []string `yaml:"creditor_accounts"`

	// AccountsFile optionally points to an .xlsx or .csv file with the
	// debtor and creditor lists. When set it replaces the lists above.
	AccountsFile string `yaml:"accounts_file"`

	// AccountsSheet is the sheet read from an .xlsx AccountsFile.
	// Default: the first sheet.
	AccountsSheet string `yaml:"accounts_sheet"`

	// InstructedAmount is the NOK amount of every transaction, as a decimal string.
	InstructedAmount string `yaml:"instructed_amount"`

	// =========================================================================
	// LOGGING SETTINGS
	// =========================================================================

	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `yaml:"log_level"`

	// LogFormat is "text" or "json".
	LogFormat string `yaml:"log_format"`
}

// =============================================================================
// CONFIGURATION LOADING FUNCTIONS
// =============================================================================

// Default returns a configuration populated with the default run parameters.
func Default() *Config {
	cfg := &Config{}
	applyDefaults(cfg)
	return cfg
}

// Load reads the configuration from a YAML file. An empty path returns the
// defaults.
func Load(configPath string) (*Config, error) {
	if configPath == "" {
		cfg := Default()
		if err := cfg.Validate(); err != nil {
			return nil, fmt.Errorf("invalid configuration: %w", err)
		}
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// applyDefaults sets default values for any unset configuration options.
func applyDefaults(cfg *Config) {
	if cfg.OutputRoot == "" {
		cfg.OutputRoot = DefaultOutputRoot
	}
	if cfg.FileCount == 0 {
		cfg.FileCount = DefaultFileCount
	}
	if cfg.TransactionsPerBlock == 0 {
		cfg.TransactionsPerBlock = DefaultTransactionsPerBlock
	}
	if cfg.BlocksPerMessage == 0 {
		cfg.BlocksPerMessage = DefaultBlocksPerMessage
	}
	if cfg.AgreementID == "" {
		cfg.AgreementID = DefaultAgreementID
	}
	if cfg.BankID == "" {
		cfg.BankID = DefaultBankID
	}
	if cfg.MarketType == "" {
		cfg.MarketType = DefaultMarketType
	}
	if cfg.System == "" {
		cfg.System = DefaultSystem
	}
	if cfg.BIC == "" {
		cfg.BIC = DefaultBIC
	}
	if cfg.BankName == "" {
		cfg.BankName = DefaultBankName
	}
	if len(cfg.DebtorAccounts) == 0 {
		cfg.DebtorAccounts = append([]string(nil), DefaultDebtorAccounts...)
	}
	if len(cfg.CreditorAccounts) == 0 {
		cfg.CreditorAccounts = append([]string(nil), DefaultCreditorAccounts...)
	}
	if cfg.InstructedAmount == "" {
		cfg.InstructedAmount = DefaultInstructedAmount
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = DefaultLogLevel
	}
	if cfg.LogFormat == "" {
		cfg.LogFormat = DefaultLogFormat
	}
}

// Validate checks the values the generator relies on. Account numbers,
// dates and identifiers are not checked for well-formedness.
func (c *Config) Validate() error {
	var errs []error

	if c.FileCount < 1 {
		errs = append(errs, fmt.Errorf("file_count must be at least 1, got %d", c.FileCount))
	}
	if c.TransactionsPerBlock < 1 {
		errs = append(errs, fmt.Errorf("transactions_per_block must be at least 1, got %d", c.TransactionsPerBlock))
	}
	if c.BlocksPerMessage < 1 {
		errs = append(errs, fmt.Errorf("blocks_per_message must be at least 1, got %d", c.BlocksPerMessage))
	}
	if len(c.DebtorAccounts) == 0 {
		errs = append(errs, errors.New("debtor_accounts must not be empty"))
	}
	if len(c.CreditorAccounts) == 0 {
		errs = append(errs, errors.New("creditor_accounts must not be empty"))
	}
	if _, err := decimal.NewFromString(c.InstructedAmount); err != nil {
		errs = append(errs, fmt.Errorf("instructed_amount %q is not a decimal number", c.InstructedAmount))
	}
	if ext := strings.ToLower(filepath.Ext(c.AccountsFile)); c.AccountsFile != "" && ext != ".xlsx" && ext != ".csv" {
		errs = append(errs, fmt.Errorf("accounts_file must be an .xlsx or .csv file, got %q", c.AccountsFile))
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Errorf("log_format must be text or json, got %q", c.LogFormat))
	}

	return errors.Join(errs...)
}

// =============================================================================
// DERIVED VALUES
// =============================================================================

// Amount returns the instructed amount as a decimal. Validate must have
// succeeded first.
func (c *Config) Amount() decimal.Decimal {
	return decimal.RequireFromString(c.InstructedAmount)
}

// Pain001Dir returns the output directory for pain.001 files.
func (c *Config) Pain001Dir() string {
	return filepath.Join(c.OutputRoot, Pain001DirName)
}

// Pain002Dir returns the output directory for pain.002 files.
func (c *Config) Pain002Dir() string {
	return filepath.Join(c.OutputRoot, Pain002DirName)
}
