package swiftmt

import (
	"testing"

	"github.com/deltran/swiftmt/fields"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// rawMT103Minimal is seed scenario S1: a minimal customer credit transfer
// that must parse clean, validate clean, and round-trip byte-for-byte.
const rawMT103Minimal = "{1:F01BANKDEFFAXXX0000000001}{2:I103BANKUS33XXXXN}{4:\r\n" +
	":20:FT2021001234567\r\n" +
	":23B:CRED\r\n" +
	":32A:210315USD1000000,00\r\n" +
	":50K:ORDERING CUSTOMER INC\r\n123 BUSINESS STREET\r\n" +
	":59:BENEFICIARY COMPANY LTD\r\n" +
	":71A:OUR\r\n" +
	"-}"

func TestMT103MinimalRoundTrip(t *testing.T) {
	msg, err := Parse([]byte(rawMT103Minimal))
	require.NoError(t, err)
	require.Equal(t, "103", msg.MessageType())

	body := msg.Body.(*MT103)
	assert.Equal(t, "FT2021001234567", body.Field20.Reference)
	assert.Equal(t, "CRED", body.Field23B.Code)
	assert.Equal(t, "USD", body.Field32A.Currency)
	assert.Equal(t, "1000000,00", body.Field32A.Amount.String())
	assert.Equal(t, 2021, body.Field32A.ValueDate.Year())
	assert.Equal(t, 3, int(body.Field32A.ValueDate.Month()))
	assert.Equal(t, 15, body.Field32A.ValueDate.Day())

	k, ok := body.Field50.(fields.Field50K)
	require.True(t, ok)
	assert.Equal(t, []string{"ORDERING CUSTOMER INC", "123 BUSINESS STREET"}, k.Name)

	ben, ok := body.Field59.(fields.Field59)
	require.True(t, ok)
	assert.Equal(t, []string{"BENEFICIARY COMPANY LTD"}, ben.Name)
	assert.Equal(t, "OUR", body.Field71A.Code)

	errs, err := Validate(msg)
	require.NoError(t, err)
	assert.Empty(t, errs)

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, rawMT103Minimal, reemitted)
}

func TestMT103RejectsCommodityCurrencyAtParse(t *testing.T) {
	raw := "{1:F01BANKDEFFAXXX0000000001}{2:I103BANKUS33XXXXN}{4:\r\n" +
		":20:FT2021001234567\r\n" +
		":23B:CRED\r\n" +
		":32A:240719XAU1000,00\r\n" +
		":50K:ORDERING CUSTOMER INC\r\n" +
		":59:BENEFICIARY COMPANY LTD\r\n" +
		":71A:OUR\r\n" +
		"-}"
	_, err := Parse([]byte(raw))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "C08")
}

func TestMT103RejectsZeroSettlementAmountWithFraction(t *testing.T) {
	raw := "{1:F01BANKDEFFAXXX0000000001}{2:I103BANKUS33XXXXN}{4:\r\n" +
		":20:FT2021001234567\r\n" +
		":23B:CRED\r\n" +
		":32A:210315USD0,00\r\n" +
		":50K:ORDERING CUSTOMER INC\r\n" +
		":59:BENEFICIARY COMPANY LTD\r\n" +
		":71A:OUR\r\n" +
		"-}"
	msg, err := Parse([]byte(raw))
	require.NoError(t, err)

	errs, err := Validate(msg)
	require.NoError(t, err)
	found := false
	for _, e := range errs {
		if e.ID == "32A-POSITIVE" {
			found = true
		}
	}
	assert.True(t, found, "expected 32A-POSITIVE for a zero amount written as USD0,00")
}

func TestMT103STPRejectsOption56D(t *testing.T) {
	m := &MT103{Variant: "STP", Field56: fields.Field56D{}}
	errs := m.Validate(Default())
	found := false
	for _, e := range errs {
		if e.ID == "STP-56D" {
			found = true
		}
	}
	assert.True(t, found)
}
