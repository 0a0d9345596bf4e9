// =============================================================================
// pain.001 / pain.002 Batch Generator - Template Expansion
// =============================================================================
//
// Both documents are built in three levels, each with its own function:
//
//   document  <Document> ... YYYYY ... </Document>
//     block     <PmtInf> / <OrgnlPmtInfAndSts> ... XXXXX ...
//       leaf      <CdtTrfTxInf> / <TxInfAndSts>
//
// Leaves are concatenated into a block, blocks are concatenated into the
// document. A transaction counter runs across the whole expansion and only
// after every block is built are the document totals substituted.
//
// =============================================================================

package pain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ginjaninja78/pain-batch-generator/internal/config"
	"github.com/ginjaninja78/pain-batch-generator/internal/types"
	"github.com/shopspring/decimal"
)

// Params are the run parameters bound into the templates.
type Params struct {
	AgreementID string
	BankID      string
	MarketType  string
	System      string
	BIC         string
	BankName    string

	DebtorAccounts   []string
	CreditorAccounts []string

	InstructedAmount decimal.Decimal
}

// ParamsFromConfig copies the template parameters out of a validated config.
func ParamsFromConfig(cfg *config.Config) Params {
	return Params{
		AgreementID:      cfg.AgreementID,
		BankID:           cfg.BankID,
		MarketType:       cfg.MarketType,
		System:           cfg.System,
		BIC:              cfg.BIC,
		BankName:         cfg.BankName,
		DebtorAccounts:   cfg.DebtorAccounts,
		CreditorAccounts: cfg.CreditorAccounts,
		InstructedAmount: cfg.Amount(),
	}
}

// Document is an expanded pain document.
type Document struct {
	Text string

	// Transactions is the number of leaf blocks in Text.
	Transactions int

	// ControlSum is Transactions times the instructed amount.
	ControlSum decimal.Decimal
}

// Builder expands pain.001 and pain.002 templates for one set of run
// parameters.
type Builder struct {
	params Params

	cdtTrfTxInf       string
	pmtInf            string
	pain001           string
	txInfAndSts       string
	orgnlPmtInfAndSts string
	pain002           string
}

// NewBuilder binds the run parameters into the templates.
func NewBuilder(params Params) *Builder {
	bind := strings.NewReplacer(
		tokenAmount, params.InstructedAmount.String(),
		tokenAgreementID, params.AgreementID,
		tokenBankID, params.BankID,
		tokenBankName, params.BankName,
		tokenBIC, params.BIC,
	)

	return &Builder{
		params:            params,
		cdtTrfTxInf:       bind.Replace(cdtTrfTxInfTemplate),
		pmtInf:            bind.Replace(pmtInfTemplate),
		pain001:           bind.Replace(pain001Template),
		txInfAndSts:       bind.Replace(txInfAndStsTemplate),
		orgnlPmtInfAndSts: bind.Replace(orgnlPmtInfAndStsTemplate),
		pain002:           bind.Replace(pain002Template),
	}
}

// =============================================================================
// FILE NAMING
// =============================================================================

// BaseName returns SYSTEM_BANKID_messageId, the stem of every pain.001 file.
func (b *Builder) BaseName(id types.MessageID) string {
	return b.params.System + "_" + b.params.BankID + "_" + id.String()
}

// Pain002BaseName returns the stem of the pain.002 files for id.
func (b *Builder) Pain002BaseName(id types.MessageID) string {
	return "Pain002_" + b.BaseName(id)
}

// Meta returns the .meta sidecar content. It does not depend on the
// message id.
func (b *Builder) Meta() string {
	return fmt.Sprintf(metaTemplate, b.params.AgreementID, b.params.MarketType, b.params.BankID, b.params.System)
}

// =============================================================================
// PAIN.001
// =============================================================================

// Pain001 expands a CstmrCdtTrfInitn document with blocks PmtInf blocks of
// txnPerBlock CdtTrfTxInf entries each.
func (b *Builder) Pain001(id types.MessageID, txnPerBlock, blocks int) Document {
	var body strings.Builder
	txnCount := 0
	for blockIndex := 1; blockIndex <= blocks; blockIndex++ {
		body.WriteString(b.paymentInfo(blockIndex, txnPerBlock, &txnCount))
	}

	controlSum := decimal.NewFromInt(int64(txnCount)).Mul(b.params.InstructedAmount)

	text := strings.ReplaceAll(b.pain001, tokenTotalTxns, strconv.Itoa(txnCount))
	text = strings.ReplaceAll(text, tokenControlSum, controlSum.String())
	text = strings.ReplaceAll(text, tokenBlocks, body.String())
	text = strings.ReplaceAll(text, tokenMessageID, id.String())

	return Document{
		Text:         text,
		Transactions: txnCount,
		ControlSum:   controlSum,
	}
}

// paymentInfo builds one PmtInf block and advances txnCount by txnPerBlock.
func (b *Builder) paymentInfo(blockIndex, txnPerBlock int, txnCount *int) string {
	debtor := roundRobin(b.params.DebtorAccounts, blockIndex)
	creditor := roundRobin(b.params.CreditorAccounts, blockIndex)

	var leaves strings.Builder
	for txnIndex := 1; txnIndex <= txnPerBlock; txnIndex++ {
		leaves.WriteString(b.creditTransfer(txnIndex, creditor))
		*txnCount++
	}

	block := strings.ReplaceAll(b.pmtInf, tokenLeaves, leaves.String())
	block = strings.ReplaceAll(block, tokenDebtorAcct, debtor)
	return strings.ReplaceAll(block, tokenBlockIndex, strconv.Itoa(blockIndex))
}

func (b *Builder) creditTransfer(txnIndex int, creditor string) string {
	leaf := strings.ReplaceAll(b.cdtTrfTxInf, tokenCreditorAcct, creditor)
	return strings.ReplaceAll(leaf, tokenTxnIndex, strconv.Itoa(txnIndex))
}

// =============================================================================
// PAIN.002
// =============================================================================

// Pain002 expands a CstmrPmtStsRpt accepting every transaction of the
// pain.001 with the same id and shape.
func (b *Builder) Pain002(id types.MessageID, txnPerBlock, blocks int) Document {
	var body strings.Builder
	txnCount := 0
	for blockIndex := 1; blockIndex <= blocks; blockIndex++ {
		body.WriteString(b.paymentStatus(blockIndex, txnPerBlock, &txnCount))
	}

	text := strings.ReplaceAll(b.pain002, tokenBlocks, body.String())
	text = strings.ReplaceAll(text, tokenMessageID, id.String())

	return Document{
		Text:         text,
		Transactions: txnCount,
		ControlSum:   decimal.NewFromInt(int64(txnCount)).Mul(b.params.InstructedAmount),
	}
}

func (b *Builder) paymentStatus(blockIndex, txnPerBlock int, txnCount *int) string {
	var leaves strings.Builder
	for txnIndex := 1; txnIndex <= txnPerBlock; txnIndex++ {
		leaves.WriteString(b.transactionStatus(txnIndex))
		*txnCount++
	}

	block := strings.ReplaceAll(b.orgnlPmtInfAndSts, tokenLeaves, leaves.String())
	return strings.ReplaceAll(block, tokenBlockIndex, strconv.Itoa(blockIndex))
}

func (b *Builder) transactionStatus(txnIndex int) string {
	return strings.ReplaceAll(b.txInfAndSts, tokenTxnIndex, strconv.Itoa(txnIndex))
}

// roundRobin picks accounts[(blockIndex-1) % len(accounts)].
func roundRobin(accounts []string, blockIndex int) string {
	if len(accounts) == 0 {
		return ""
	}
	return accounts[(blockIndex-1)%len(accounts)]
}
