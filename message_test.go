package swiftmt

import (
	"errors"
	"testing"

	"github.com/deltran/swiftmt/fields"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMessageTypeReturnsRawEnvelopeType(t *testing.T) {
	msg, err := Parse([]byte(rawMT103Minimal))
	require.NoError(t, err)
	assert.Equal(t, "103", msg.MessageType())
	assert.Equal(t, "103", msg.Envelope.Application.MessageType)
}

func TestParseRejectsUnknownMessageType(t *testing.T) {
	raw := "{1:F01BANKDEFFAXXX0000000001}{2:I999BANKUS33XXXXN}{4:\r\n" +
		":20:UNKNOWNTYPE000001\r\n" +
		"-}"
	_, err := Parse([]byte(raw))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownMessageType))
}

func TestParseRejectsMissingBlocks(t *testing.T) {
	t.Run("missing block 1", func(t *testing.T) {
		raw := "{2:I103BANKUS33XXXXN}{4:\r\n:20:REF\r\n-}"
		_, err := Parse([]byte(raw))
		require.Error(t, err)
	})
	t.Run("missing block 4", func(t *testing.T) {
		raw := "{1:F01BANKDEFFAXXX0000000001}{2:I103BANKUS33XXXXN}"
		_, err := Parse([]byte(raw))
		require.Error(t, err)
	})
}

// Envelope round-trip with Block 3 (user header) and Block 5 (trailer)
// present: both are order-preserving {tag:value} blocks that must survive
// Parse/Emit unchanged alongside the Block 4 body.
const rawMT103WithBlocks35 = "{1:F01BANKDEFFAXXX0000000001}{2:I103BANKUS33XXXXN}" +
	"{3:{108:REF123456}{121:abcd1234-ab12-cd34-ef12-abcdef123456}}" +
	"{4:\r\n" +
	":20:FT2021001234567\r\n" +
	":23B:CRED\r\n" +
	":32A:210315USD1000000,00\r\n" +
	":50K:ORDERING CUSTOMER INC\r\n" +
	":59:BENEFICIARY COMPANY LTD\r\n" +
	":71A:OUR\r\n" +
	"-}" +
	"{5:{MAC:12345678}{CHK:123456789ABC}}"

func TestEnvelopeRoundTripWithUserHeaderAndTrailer(t *testing.T) {
	msg, err := Parse([]byte(rawMT103WithBlocks35))
	require.NoError(t, err)

	require.NotNil(t, msg.Envelope.UserHeader)
	v, ok := msg.Envelope.UserHeader.Get("108")
	require.True(t, ok)
	assert.Equal(t, "REF123456", v)
	assert.Equal(t, []string{"108", "121"}, msg.Envelope.UserHeader.Tags())

	require.NotNil(t, msg.Envelope.Trailer)
	chk, ok := msg.Envelope.Trailer.Get("CHK")
	require.True(t, ok)
	assert.Equal(t, "123456789ABC", chk)

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, rawMT103WithBlocks35, reemitted)
}

func TestParseAndValidateConvenienceWrapper(t *testing.T) {
	msg, errs, err := ParseAndValidate([]byte(rawMT103Minimal))
	require.NoError(t, err)
	require.NotNil(t, msg)
	assert.Empty(t, errs)
}

func TestParseAndValidatePropagatesParseFailure(t *testing.T) {
	msg, errs, err := ParseAndValidate([]byte("not a FIN message"))
	require.Error(t, err)
	assert.Nil(t, msg)
	assert.Nil(t, errs)
}

func TestValidateLimitsMaxValidationErrors(t *testing.T) {
	body := &MT103{Variant: "STP", Field56: fields.Field56D{}, Field57: fields.Field57D{}}
	msg := &Message{Body: body}

	unlimited, err := Validate(msg)
	require.NoError(t, err)
	require.Len(t, unlimited, 3)

	cfg := Default()
	cfg.Limits.MaxValidationErrors = 1
	capped, err := Validate(msg, WithRuleConfig(cfg))
	require.NoError(t, err)
	require.Len(t, capped, 1)
	assert.Equal(t, unlimited[0], capped[0])
}
