package swiftmt

import (
	"testing"

	"github.com/deltran/swiftmt/fields"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const rawMT101SingleTransaction = "{1:F01BANKDEFFAXXX0000000001}{2:I101BANKUS33XXXXN}{4:\r\n" +
	":20:MT101REF00000001\r\n" +
	":28D:1/1\r\n" +
	":50K:ORDERING CUSTOMER INC\r\n" +
	":21:TXNREF000000001\r\n" +
	":32B:USD1000,00\r\n" +
	":59:BENEFICIARY COMPANY LTD\r\n" +
	":71A:OUR\r\n" +
	"-}"

func TestMT101SingleTransactionRoundTrip(t *testing.T) {
	msg, err := Parse([]byte(rawMT101SingleTransaction))
	require.NoError(t, err)
	require.Equal(t, "101", msg.MessageType())

	body := msg.Body.(*MT101)
	assert.Equal(t, "MT101REF00000001", body.Field20.Reference)
	assert.Equal(t, 1, body.Field28D.StatementNumber)
	require.Len(t, body.Transactions, 1)

	txn := body.Transactions[0]
	assert.Equal(t, "TXNREF000000001", txn.Field21.Reference)
	assert.Equal(t, "USD", txn.Field32B.Currency)
	ben, ok := txn.Field59.(fields.Field59)
	require.True(t, ok)
	assert.Equal(t, []string{"BENEFICIARY COMPANY LTD"}, ben.Name)
	assert.Equal(t, "OUR", txn.Field71A.Code)

	errs, err := Validate(msg)
	require.NoError(t, err)
	assert.Empty(t, errs)

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, rawMT101SingleTransaction, reemitted)
}

func TestMT101RequiresAtLeastOneTransaction(t *testing.T) {
	raw := "{1:F01BANKDEFFAXXX0000000001}{2:I101BANKUS33XXXXN}{4:\r\n" +
		":20:MT101REF00000001\r\n" +
		":28D:1/1\r\n" +
		"-}"
	_, err := Parse([]byte(raw))
	require.Error(t, err)
}

const rawMT104TwoTransactions = "{1:F01BANKDEFFAXXX0000000001}{2:I104BANKUS33XXXXN}{4:\r\n" +
	":20:MT104REF00000001\r\n" +
	":30:210315\r\n" +
	":50K:CREDITOR COMPANY LTD\r\n" +
	":71A:OUR\r\n" +
	":21:TXNREF000000001\r\n" +
	":32B:USD500,00\r\n" +
	":59:DEBTOR ONE LTD\r\n" +
	":21:TXNREF000000002\r\n" +
	":32B:USD750,00\r\n" +
	":59:DEBTOR TWO LTD\r\n" +
	"-}"

func TestMT104TwoTransactionsRoundTrip(t *testing.T) {
	msg, err := Parse([]byte(rawMT104TwoTransactions))
	require.NoError(t, err)
	require.Equal(t, "104", msg.MessageType())

	body := msg.Body.(*MT104)
	assert.Equal(t, "MT104REF00000001", body.Field20.Reference)
	require.Len(t, body.Transactions, 2)
	assert.Equal(t, "TXNREF000000001", body.Transactions[0].Field21.Reference)
	assert.Equal(t, "TXNREF000000002", body.Transactions[1].Field21.Reference)

	errs, err := Validate(msg)
	require.NoError(t, err)
	assert.Empty(t, errs)

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, rawMT104TwoTransactions, reemitted)
}

// MT107 is registered against the same parser/emitter pair as MT104; the
// body it produces is an *MT104 whose self-reported message type still
// reads "104" since MT107 carries no distinguishing field of its own.
func TestMT107SharesMT104Grammar(t *testing.T) {
	raw := "{1:F01BANKDEFFAXXX0000000001}{2:I107BANKUS33XXXXN}{4:\r\n" +
		":20:MT107REF00000001\r\n" +
		":30:210315\r\n" +
		":50K:CREDITOR COMPANY LTD\r\n" +
		":71A:OUR\r\n" +
		":21:TXNREF000000001\r\n" +
		":32B:USD500,00\r\n" +
		":59:DEBTOR ONE LTD\r\n" +
		"-}"
	msg, err := Parse([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, "107", msg.MessageType())

	body, ok := msg.Body.(*MT104)
	require.True(t, ok)
	assert.Equal(t, "104", body.MessageType())

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, raw, reemitted)
}

const rawMT110TwoCheques = "{1:F01BANKDEFFAXXX0000000001}{2:I110BANKUS33XXXXN}{4:\r\n" +
	":20:MT110REF00000001\r\n" +
	":53A:INTMDEFF\r\n" +
	":21:CHQREF00000001\r\n" +
	":30:210315\r\n" +
	":32A:210315USD1000,00\r\n" +
	":59:PAYEE COMPANY LTD\r\n" +
	":21:CHQREF00000002\r\n" +
	":30:210316\r\n" +
	":32A:210316USD2000,00\r\n" +
	":59:PAYEE TWO LTD\r\n" +
	":72:/REJT/9/NARR\r\n" +
	"-}"

func TestMT110TwoChequesRoundTrip(t *testing.T) {
	msg, err := Parse([]byte(rawMT110TwoCheques))
	require.NoError(t, err)
	require.Equal(t, "110", msg.MessageType())

	body := msg.Body.(*MT110)
	assert.NotNil(t, body.Field53)
	require.Len(t, body.Cheques, 2)
	assert.Equal(t, "CHQREF00000001", body.Cheques[0].Field21.Reference)
	assert.Equal(t, "CHQREF00000002", body.Cheques[1].Field21.Reference)
	require.NotNil(t, body.Field72)
	assert.True(t, body.Field72.HasCode("REJT"))

	errs, err := Validate(msg)
	require.NoError(t, err)
	assert.Empty(t, errs)

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, rawMT110TwoCheques, reemitted)
}

const rawMT111StopPayment = "{1:F01BANKDEFFAXXX0000000001}{2:I111BANKUS33XXXXN}{4:\r\n" +
	":20:MT111REF00000001\r\n" +
	":21:CHQREF00000001\r\n" +
	":30:210315\r\n" +
	":32A:210315USD1000,00\r\n" +
	":52A:INTMDEFF\r\n" +
	":59:PAYEE COMPANY LTD\r\n" +
	":75:CHEQUE REPORTED LOST\r\n" +
	"-}"

func TestMT111StopPaymentRoundTrip(t *testing.T) {
	msg, err := Parse([]byte(rawMT111StopPayment))
	require.NoError(t, err)
	require.Equal(t, "111", msg.MessageType())

	body := msg.Body.(*MT111)
	assert.Equal(t, "CHQREF00000001", body.Field21.Reference)
	require.NotNil(t, body.Field75)
	assert.Equal(t, []string{"CHEQUE REPORTED LOST"}, body.Field75.Lines)

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, rawMT111StopPayment, reemitted)
}

const rawMT112StopAnswer = "{1:F01BANKDEFFAXXX0000000001}{2:I112BANKUS33XXXXN}{4:\r\n" +
	":20:MT112REF00000001\r\n" +
	":21:CHQREF00000001\r\n" +
	":30:210315\r\n" +
	":32A:210315USD1000,00\r\n" +
	":76:STOP PAYMENT CONFIRMED\r\n" +
	"-}"

func TestMT112StopAnswerRoundTrip(t *testing.T) {
	msg, err := Parse([]byte(rawMT112StopAnswer))
	require.NoError(t, err)
	require.Equal(t, "112", msg.MessageType())

	body := msg.Body.(*MT112)
	require.NotNil(t, body.Field76)
	assert.Equal(t, []string{"STOP PAYMENT CONFIRMED"}, body.Field76.Lines)

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, rawMT112StopAnswer, reemitted)
}

const rawMT200OwnAccountTransfer = "{1:F01BANKDEFFAXXX0000000001}{2:I200BANKUS33XXXXN}{4:\r\n" +
	":20:MT200REF00000001\r\n" +
	":32A:210315USD500000,00\r\n" +
	":53A:INTMDEFF\r\n" +
	":56A:ACWIDEFF\r\n" +
	":57A:BENEFDEF\r\n" +
	":72:/TRANSFER OWN FUNDS\r\n" +
	"-}"

func TestMT200OwnAccountTransferRoundTrip(t *testing.T) {
	msg, err := Parse([]byte(rawMT200OwnAccountTransfer))
	require.NoError(t, err)
	require.Equal(t, "200", msg.MessageType())

	body := msg.Body.(*MT200)
	assert.Equal(t, "USD", body.Field32A.Currency)
	assert.NotNil(t, body.Field53)
	assert.NotNil(t, body.Field56)
	assert.NotNil(t, body.Field57)

	errs, err := Validate(msg)
	require.NoError(t, err)
	assert.Empty(t, errs)

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, rawMT200OwnAccountTransfer, reemitted)
}

const rawMT199FreeFormat = "{1:F01BANKDEFFAXXX0000000001}{2:I199BANKUS33XXXXN}{4:\r\n" +
	":20:MT199REF00000001\r\n" +
	":21:RELATEDREF00001\r\n" +
	":79:PLEASE CONFIRM RECEIPT OF PRIOR PAYMENT\r\n" +
	"-}"

func TestMT199FreeFormatRoundTrip(t *testing.T) {
	msg, err := Parse([]byte(rawMT199FreeFormat))
	require.NoError(t, err)
	require.Equal(t, "199", msg.MessageType())

	body, ok := msg.Body.(*MT19x)
	require.True(t, ok)
	assert.Equal(t, "199", body.MessageType())
	assert.Equal(t, "MT199REF00000001", body.Field20.Reference)
	require.NotNil(t, body.Field21)
	assert.Equal(t, "RELATEDREF00001", body.Field21.Reference)
	require.NotNil(t, body.Field79)
	assert.Equal(t, []string{"PLEASE CONFIRM RECEIPT OF PRIOR PAYMENT"}, body.Field79.Lines)

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, rawMT199FreeFormat, reemitted)
}

func TestMT19xField11SRoundTrip(t *testing.T) {
	raw := "{1:F01BANKDEFFAXXX0000000001}{2:I196BANKUS33XXXXN}{4:\r\n" +
		":20:MT196REF00000001\r\n" +
		":11S:103210315\r\nSESSIONREF123\r\n" +
		"-}"
	msg, err := Parse([]byte(raw))
	require.NoError(t, err)
	require.Equal(t, "196", msg.MessageType())

	body := msg.Body.(*MT19x)
	require.NotNil(t, body.Field11S)
	assert.Equal(t, "103", body.Field11S.MessageType)
	assert.Equal(t, 2021, body.Field11S.Date.Date.Year())
	assert.Equal(t, "SESSIONREF123", body.Field11S.SessionRef)

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, raw, reemitted)
}
