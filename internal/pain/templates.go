package pain

// Placeholder tokens. Expansion is plain find-and-replace, so a literal
// value containing one of these tokens will be rewritten as well.
const (
	tokenMessageID     = "UNIQUEMSGID"
	tokenTotalTxns     = "TOTALNUMBEROFTXNS"
	tokenControlSum    = "TOTALCONTROLSUM"
	tokenBlocks        = "YYYYY"
	tokenLeaves        = "XXXXX"
	tokenBlockIndex    = "PAYINFOIDNUMBER"
	tokenTxnIndex      = "TRANSACTIONIDNUMBER"
	tokenDebtorAcct    = "WWWWWW"
	tokenCreditorAcct  = "VVVVVV"
	tokenAmount        = "{{INSTRUCTED_AMOUNT}}"
	tokenAgreementID   = "{{AGREEMENT_ID}}"
	tokenBankID        = "{{BANK_ID}}"
	tokenBankName      = "{{BANK_NAME}}"
	tokenBIC           = "{{BIC}}"
	pain001Namespace   = "urn:iso:std:iso:20022:tech:xsd:pain.001.001.09"
	pain002Namespace   = "urn:iso:std:iso:20022:tech:xsd:pain.002.001.10"
	pain001MessageName = "pain.001.001.09"
)

// Tokens in {{...}} form are bound from the run parameters when a Builder is
// created; the rest are expanded per document.

const cdtTrfTxInfTemplate = `<CdtTrfTxInf><PmtId><EndToEndId>MUNIQUEMSGID-PPAYINFOIDNUMBER-TTRANSACTIONIDNUMBER</EndToEndId></PmtId>` +
	`<PmtTpInf><InstrPrty>NORM</InstrPrty><CtgyPurp><Cd>DIVI</Cd></CtgyPurp></PmtTpInf><Amt><InstdAmt Ccy="NOK">{{INSTRUCTED_AMOUNT}}</InstdAmt>` +
	`</Amt><CdtrAgt><FinInstnId><Othr><Id>4201</Id></Othr></FinInstnId></CdtrAgt><Cdtr><Nm>Ramesh A</Nm><CtryOfRes>NO</CtryOfRes>` +
	`</Cdtr><CdtrAcct><Id><Othr><Id>VVVVVV</Id><SchmeNm><Cd>BBAN</Cd></SchmeNm></Othr></Id><Ccy>NOK</Ccy></CdtrAcct><Purp>` +
	`<Cd>DDIV</Cd></Purp></CdtTrfTxInf>`

const pmtInfTemplate = `<PmtInf><PmtInfId>MUNIQUEMSGID-PPAYINFOIDNUMBER</PmtInfId><PmtMtd>TRF</PmtMtd><ReqdExctnDt><Dt>2025-04-18</Dt>` +
	`</ReqdExctnDt><Dbtr><Nm>Glass stopper; co..</Nm><CtryOfRes>NO</CtryOfRes></Dbtr><DbtrAcct><Id><Othr><Id>WWWWWW</Id>` +
	`<SchmeNm><Cd>BBAN</Cd></SchmeNm></Othr></Id><Ccy>NOK</Ccy></DbtrAcct><DbtrAgt><FinInstnId><Othr><Id>4201</Id></Othr>` +
	`</FinInstnId></DbtrAgt>XXXXX</PmtInf>`

const pain001Template = `<?xml version='1.0' encoding='UTF-8'?><Document xmlns="` + pain001Namespace + `">` +
	`<CstmrCdtTrfInitn><GrpHdr><MsgId>MUNIQUEMSGID</MsgId><CreDtTm>2025-03-24T12:44:08.8802478</CreDtTm>` +
	`<NbOfTxs>TOTALNUMBEROFTXNS</NbOfTxs><CtrlSum>TOTALCONTROLSUM</CtrlSum><InitgPty><Id><OrgId><AnyBIC>SPTRNO22XXX</AnyBIC>` +
	`<Othr><Id>4201</Id></Othr></OrgId></Id></InitgPty></GrpHdr>YYYYY</CstmrCdtTrfInitn></Document>`

const txInfAndStsTemplate = `<TxInfAndSts><OrgnlEndToEndId>MUNIQUEMSGID-PPAYINFOIDNUMBER-TTRANSACTIONIDNUMBER</OrgnlEndToEndId>` +
	`<TxSts>ACCP</TxSts><StsRsnInf><AddtlInf>7003013625</AddtlInf></StsRsnInf></TxInfAndSts>`

const orgnlPmtInfAndStsTemplate = `<OrgnlPmtInfAndSts><OrgnlPmtInfId>MUNIQUEMSGID-PPAYINFOIDNUMBER</OrgnlPmtInfId>XXXXX</OrgnlPmtInfAndSts>`

const pain002Template = `<?xml version='1.0' encoding='UTF-8'?><Document xmlns="` + pain002Namespace + `">` +
	`<CstmrPmtStsRpt><GrpHdr><MsgId>{{AGREEMENT_ID}}.UNIQUEMSGID</MsgId><CreDtTm>2024-01-31T20:18:13.990+01:00</CreDtTm>` +
	`<InitgPty><Nm>{{BANK_NAME}}</Nm><Id><OrgId><AnyBIC>{{BIC}}</AnyBIC><Othr><Id>{{AGREEMENT_ID}}</Id><SchmeNm>` +
	`<Cd>BANK</Cd></SchmeNm></Othr></OrgId></Id></InitgPty><DbtrAgt><FinInstnId><ClrSysMmbId><ClrSysId>` +
	`<Prtry>NOBSK</Prtry></ClrSysId><MmbId>{{BANK_ID}}</MmbId></ClrSysMmbId></FinInstnId></DbtrAgt></GrpHdr>` +
	`<OrgnlGrpInfAndSts><OrgnlMsgId>MUNIQUEMSGID</OrgnlMsgId><OrgnlMsgNmId>` + pain001MessageName + `</OrgnlMsgNmId>` +
	`</OrgnlGrpInfAndSts>YYYYY</CstmrPmtStsRpt></Document>`

// metaTemplate is the sidecar for a pain.001 file. agreementId is emitted
// unquoted; downstream parsers depend on these exact bytes.
const metaTemplate = `{ "agreementId": %s, "parentAgreementId": "32323123", "marketType": "%s", "bankId": "%s", "sourceSystem": "%s" }`
