package swiftmt

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S2: field 56A is present with no accompanying 57a, which C81 requires.
const rawMT202MissingField57 = "{1:F01BANKDEFFAXXX0000000001}{2:I202BANKUS33XXXXN}{4:\r\n" +
	":20:MT202REF12345678\r\n" +
	":21:RELREF1234567\r\n" +
	":32A:210315USD1000000,00\r\n" +
	":56A:INTMDEFF\r\n" +
	":58A:BENEFDEF\r\n" +
	"-}"

func TestMT202C81ViolationOnMissingField57(t *testing.T) {
	msg, err := Parse([]byte(rawMT202MissingField57))
	require.NoError(t, err)
	require.Equal(t, "202", msg.MessageType())

	body := msg.Body.(*MT202)
	assert.NotNil(t, body.Field56)
	assert.Nil(t, body.Field57)
	assert.False(t, body.IsCoverMessage())

	errs, err := Validate(msg)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "C81", errs[0].ID)
	assert.Equal(t, RelationRule, errs[0].Kind)
	assert.ElementsMatch(t, []string{"56a", "57a"}, errs[0].Involved)
}

func TestMT202CleanWhenField57Present(t *testing.T) {
	raw := "{1:F01BANKDEFFAXXX0000000001}{2:I202BANKUS33XXXXN}{4:\r\n" +
		":20:MT202REF12345678\r\n" +
		":21:RELREF1234567\r\n" +
		":32A:210315USD1000000,00\r\n" +
		":56A:INTMDEFF\r\n" +
		":57A:ACWIDEFF\r\n" +
		":58A:BENEFDEF\r\n" +
		"-}"
	msg, err := Parse([]byte(raw))
	require.NoError(t, err)
	errs, err := Validate(msg)
	require.NoError(t, err)
	assert.Empty(t, errs)

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, raw, reemitted)
}

func TestMT202CoverMessageDiscriminator(t *testing.T) {
	raw := "{1:F01BANKDEFFAXXX0000000001}{2:I202BANKUS33XXXXN}{4:\r\n" +
		":20:MT202REF12345678\r\n" +
		":21:RELREF1234567\r\n" +
		":32A:210315USD1000000,00\r\n" +
		":58A:BENEFDEF\r\n" +
		":50K:ORDERING CUSTOMER INC\r\n" +
		":59:BENEFICIARY COMPANY LTD\r\n" +
		"-}"
	msg, err := Parse([]byte(raw))
	require.NoError(t, err)
	body := msg.Body.(*MT202)
	require.NotNil(t, body.SequenceB)
	assert.True(t, body.IsCoverMessage())
	assert.Equal(t, "202COV", body.MessageType())
}
