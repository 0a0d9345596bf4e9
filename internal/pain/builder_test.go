package pain

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/ginjaninja78/pain-batch-generator/internal/config"
	"github.com/ginjaninja78/pain-batch-generator/internal/types"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMessageID = types.MessageID("202503241244081")

type testPain001 struct {
	GrpHdr struct {
		MsgID   string `xml:"MsgId"`
		NbOfTxs int    `xml:"NbOfTxs"`
		CtrlSum string `xml:"CtrlSum"`
	} `xml:"CstmrCdtTrfInitn>GrpHdr"`
	PmtInf []struct {
		PmtInfID string `xml:"PmtInfId"`
		DbtrAcct string `xml:"DbtrAcct>Id>Othr>Id"`
		Txs      []struct {
			EndToEndID string `xml:"PmtId>EndToEndId"`
			CdtrAcct   string `xml:"CdtrAcct>Id>Othr>Id"`
			Amount     string `xml:"Amt>InstdAmt"`
		} `xml:"CdtTrfTxInf"`
	} `xml:"CstmrCdtTrfInitn>PmtInf"`
}

type testPain002 struct {
	GrpHdr struct {
		MsgID string `xml:"MsgId"`
		Name  string `xml:"InitgPty>Nm"`
		BIC   string `xml:"InitgPty>Id>OrgId>AnyBIC"`
		MmbID string `xml:"DbtrAgt>FinInstnId>ClrSysMmbId>MmbId"`
	} `xml:"CstmrPmtStsRpt>GrpHdr"`
	OrgnlMsgID   string `xml:"CstmrPmtStsRpt>OrgnlGrpInfAndSts>OrgnlMsgId"`
	OrgnlMsgNmID string `xml:"CstmrPmtStsRpt>OrgnlGrpInfAndSts>OrgnlMsgNmId"`
	Blocks       []struct {
		OrgnlPmtInfID string `xml:"OrgnlPmtInfId"`
		Txs           []struct {
			OrgnlEndToEndID string `xml:"OrgnlEndToEndId"`
			TxSts           string `xml:"TxSts"`
			AddtlInf        string `xml:"StsRsnInf>AddtlInf"`
		} `xml:"TxInfAndSts"`
	} `xml:"CstmrPmtStsRpt>OrgnlPmtInfAndSts"`
}

func defaultBuilder(t *testing.T) *Builder {
	t.Helper()
	cfg, err := config.Load("")
	require.NoError(t, err)
	return NewBuilder(ParamsFromConfig(cfg))
}

func TestPain001SingleTransactionExactOutput(t *testing.T) {
	doc := defaultBuilder(t).Pain001(testMessageID, 1, 1)

	expected := `<?xml version='1.0' encoding='UTF-8'?><Document xmlns="urn:iso:std:iso:20022:tech:xsd:pain.001.001.09">` +
		`<CstmrCdtTrfInitn><GrpHdr><MsgId>M202503241244081</MsgId><CreDtTm>2025-03-24T12:44:08.8802478</CreDtTm>` +
		`<NbOfTxs>1</NbOfTxs><CtrlSum>106</CtrlSum><InitgPty><Id><OrgId><AnyBIC>SPTRNO22XXX</AnyBIC>` +
		`<Othr><Id>4201</Id></Othr></OrgId></Id></InitgPty></GrpHdr>` +
		`<PmtInf><PmtInfId>M202503241244081-P1</PmtInfId><PmtMtd>TRF</PmtMtd><ReqdExctnDt><Dt>2025-04-18</Dt>` +
		`</ReqdExctnDt><Dbtr><Nm>Glass stopper; co..</Nm><CtryOfRes>NO</CtryOfRes></Dbtr><DbtrAcct><Id><Othr><Id>42010256938</Id>` +
		`<SchmeNm><Cd>BBAN</Cd></SchmeNm></Othr></Id><Ccy>NOK</Ccy></DbtrAcct><DbtrAgt><FinInstnId><Othr><Id>4201</Id></Othr>` +
		`</FinInstnId></DbtrAgt>` +
		`<CdtTrfTxInf><PmtId><EndToEndId>M202503241244081-P1-T1</EndToEndId></PmtId>` +
		`<PmtTpInf><InstrPrty>NORM</InstrPrty><CtgyPurp><Cd>DIVI</Cd></CtgyPurp></PmtTpInf><Amt><InstdAmt Ccy="NOK">106</InstdAmt>` +
		`</Amt><CdtrAgt><FinInstnId><Othr><Id>4201</Id></Othr></FinInstnId></CdtrAgt><Cdtr><Nm>Ramesh A</Nm><CtryOfRes>NO</CtryOfRes>` +
		`</Cdtr><CdtrAcct><Id><Othr><Id>96500461516</Id><SchmeNm><Cd>BBAN</Cd></SchmeNm></Othr></Id><Ccy>NOK</Ccy></CdtrAcct><Purp>` +
		`<Cd>DDIV</Cd></Purp></CdtTrfTxInf>` +
		`</PmtInf></CstmrCdtTrfInitn></Document>`

	assert.Equal(t, expected, doc.Text)
	assert.Equal(t, 1, doc.Transactions)
	assert.Equal(t, "106", doc.ControlSum.String())
}

func TestPain001Totals(t *testing.T) {
	tests := []struct {
		name        string
		txnPerBlock int
		blocks      int
		wantTxns    int
		wantSum     string
	}{
		{name: "one by one", txnPerBlock: 1, blocks: 1, wantTxns: 1, wantSum: "106"},
		{name: "four by three", txnPerBlock: 4, blocks: 3, wantTxns: 12, wantSum: "1272"},
		{name: "one block many txns", txnPerBlock: 25, blocks: 1, wantTxns: 25, wantSum: "2650"},
		{name: "many blocks one txn", txnPerBlock: 1, blocks: 7, wantTxns: 7, wantSum: "742"},
	}

	b := defaultBuilder(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := b.Pain001(testMessageID, tt.txnPerBlock, tt.blocks)

			var parsed testPain001
			require.NoError(t, xml.Unmarshal([]byte(doc.Text), &parsed))

			assert.Equal(t, tt.wantTxns, doc.Transactions)
			assert.Equal(t, tt.wantTxns, parsed.GrpHdr.NbOfTxs)
			assert.Equal(t, tt.wantSum, parsed.GrpHdr.CtrlSum)
			assert.Equal(t, tt.wantTxns, strings.Count(doc.Text, "<CdtTrfTxInf>"))
			require.Len(t, parsed.PmtInf, tt.blocks)
			for _, block := range parsed.PmtInf {
				assert.Len(t, block.Txs, tt.txnPerBlock)
			}
		})
	}
}

func TestPain001Identifiers(t *testing.T) {
	doc := defaultBuilder(t).Pain001(testMessageID, 3, 2)

	var parsed testPain001
	require.NoError(t, xml.Unmarshal([]byte(doc.Text), &parsed))

	assert.Equal(t, "M202503241244081", parsed.GrpHdr.MsgID)
	require.Len(t, parsed.PmtInf, 2)
	assert.Equal(t, "M202503241244081-P1", parsed.PmtInf[0].PmtInfID)
	assert.Equal(t, "M202503241244081-P2", parsed.PmtInf[1].PmtInfID)
	assert.Equal(t, "M202503241244081-P1-T1", parsed.PmtInf[0].Txs[0].EndToEndID)
	assert.Equal(t, "M202503241244081-P2-T3", parsed.PmtInf[1].Txs[2].EndToEndID)
	assert.Equal(t, "106", parsed.PmtInf[1].Txs[2].Amount)
	assert.NotContains(t, doc.Text, tokenMessageID)
	assert.NotContains(t, doc.Text, tokenBlockIndex)
	assert.NotContains(t, doc.Text, tokenTxnIndex)
}

func TestPain001RoundRobinAccounts(t *testing.T) {
	b := NewBuilder(Params{
		AgreementID:      "1",
		BankID:           "3240",
		System:           "CDS",
		DebtorAccounts:   []string{"D1", "D2"},
		CreditorAccounts: []string{"C1", "C2", "C3"},
		InstructedAmount: decimal.NewFromInt(10),
	})

	doc := b.Pain001(testMessageID, 2, 4)

	var parsed testPain001
	require.NoError(t, xml.Unmarshal([]byte(doc.Text), &parsed))
	require.Len(t, parsed.PmtInf, 4)

	wantDebtors := []string{"D1", "D2", "D1", "D2"}
	wantCreditors := []string{"C1", "C2", "C3", "C1"}
	for i, block := range parsed.PmtInf {
		assert.Equal(t, wantDebtors[i], block.DbtrAcct, "block %d", i+1)
		for _, tx := range block.Txs {
			assert.Equal(t, wantCreditors[i], tx.CdtrAcct, "block %d", i+1)
		}
	}
	assert.Equal(t, "80", parsed.GrpHdr.CtrlSum)
}

func TestPain001SingleAccountUsedByEveryBlock(t *testing.T) {
	doc := defaultBuilder(t).Pain001(testMessageID, 1, 5)

	var parsed testPain001
	require.NoError(t, xml.Unmarshal([]byte(doc.Text), &parsed))
	for _, block := range parsed.PmtInf {
		assert.Equal(t, "42010256938", block.DbtrAcct)
		assert.Equal(t, "96500461516", block.Txs[0].CdtrAcct)
	}
}

func TestPain001DecimalAmount(t *testing.T) {
	b := NewBuilder(Params{
		DebtorAccounts:   []string{"D"},
		CreditorAccounts: []string{"C"},
		InstructedAmount: decimal.RequireFromString("0.10"),
	})

	doc := b.Pain001(testMessageID, 3, 1)
	assert.Contains(t, doc.Text, `<InstdAmt Ccy="NOK">0.1</InstdAmt>`)
	assert.Contains(t, doc.Text, "<CtrlSum>0.3</CtrlSum>")
}

func TestPain001TokenInAccountIsExpanded(t *testing.T) {
	b := NewBuilder(Params{
		DebtorAccounts:   []string{"D"},
		CreditorAccounts: []string{"ACCT-PAYINFOIDNUMBER"},
		InstructedAmount: decimal.NewFromInt(1),
	})

	doc := b.Pain001(testMessageID, 1, 2)
	assert.Contains(t, doc.Text, "<Id>ACCT-1</Id>")
	assert.Contains(t, doc.Text, "<Id>ACCT-2</Id>")
}

func TestPain002MatchesPain001(t *testing.T) {
	b := defaultBuilder(t)
	request := b.Pain001(testMessageID, 3, 2)
	report := b.Pain002(testMessageID, 3, 2)

	var req testPain001
	require.NoError(t, xml.Unmarshal([]byte(request.Text), &req))
	var rpt testPain002
	require.NoError(t, xml.Unmarshal([]byte(report.Text), &rpt))

	assert.Equal(t, req.GrpHdr.MsgID, rpt.OrgnlMsgID)
	assert.Equal(t, "10000025.202503241244081", rpt.GrpHdr.MsgID)
	assert.Equal(t, "Haugesund Sparebank", rpt.GrpHdr.Name)
	assert.Equal(t, "HAUGNO21XXX", rpt.GrpHdr.BIC)
	assert.Equal(t, "3240", rpt.GrpHdr.MmbID)
	assert.Equal(t, "pain.001.001.09", rpt.OrgnlMsgNmID)
	assert.Equal(t, 6, report.Transactions)
	assert.Contains(t, report.Text, pain002Namespace)

	require.Len(t, rpt.Blocks, 2)
	for i, block := range rpt.Blocks {
		assert.Equal(t, req.PmtInf[i].PmtInfID, block.OrgnlPmtInfID)
		require.Len(t, block.Txs, 3)
		for j, tx := range block.Txs {
			assert.Equal(t, req.PmtInf[i].Txs[j].EndToEndID, tx.OrgnlEndToEndID)
			assert.Equal(t, "ACCP", tx.TxSts)
			assert.Equal(t, "7003013625", tx.AddtlInf)
		}
	}
	assert.Equal(t, 6, strings.Count(report.Text, "<TxSts>ACCP</TxSts>"))
	assert.False(t, strings.HasSuffix(report.Text, "\n"))
}

func TestMetaExactBytes(t *testing.T) {
	meta := defaultBuilder(t).Meta()
	assert.Equal(t,
		`{ "agreementId": 10000025, "parentAgreementId": "32323123", "marketType": "PM", "bankId": "3240", "sourceSystem": "CDS" }`,
		meta)
}

func TestBaseNames(t *testing.T) {
	b := defaultBuilder(t)
	assert.Equal(t, "CDS_3240_202503241244081", b.BaseName(testMessageID))
	assert.Equal(t, "Pain002_CDS_3240_202503241244081", b.Pain002BaseName(testMessageID))
}

func TestRoundRobin(t *testing.T) {
	accounts := []string{"a", "b", "c"}
	assert.Equal(t, "a", roundRobin(accounts, 1))
	assert.Equal(t, "c", roundRobin(accounts, 3))
	assert.Equal(t, "a", roundRobin(accounts, 4))
	assert.Equal(t, "", roundRobin(nil, 1))
}
