package swiftmt

import (
	"fmt"
	"strings"
	"testing"

	"github.com/deltran/swiftmt/fields"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// S3: a rate-change sequence carrying both field 23 and field 25 violates
// C83's exactly-one-of relation. The wire grammar itself can only ever
// produce one or the other per sequence (package cursor reads 23 xor 25
// before looking for 30), so this exercises Validate directly against a
// sequence assembled the way a looser upstream sender might still send one.
func TestMT935C83ViolationBothFieldsPresent(t *testing.T) {
	f23, err := fields.ParseField23("USDNOTICE")
	require.NoError(t, err)
	f25, err := fields.ParseField25("12345678")
	require.NoError(t, err)
	f30, err := fields.ParseField30("210101")
	require.NoError(t, err)

	m := &MT935{
		RateChange: []MT935RateChange{
			{Field23: &f23, Field25: &f25, Field30: f30},
		},
	}
	errs := m.Validate(Default())
	require.Len(t, errs, 1)
	assert.Equal(t, "C83", errs[0].ID)
	assert.Equal(t, RelationRule, errs[0].Kind)
	assert.Equal(t, 0, errs[0].SeqIndex)
	assert.ElementsMatch(t, []string{"23", "25"}, errs[0].Involved)
}

// S4: eleven rate-change sequences exceed T10's cap of ten.
func TestMT935T10ViolationElevenSequences(t *testing.T) {
	var b strings.Builder
	b.WriteString("{1:F01BANKDEFFAXXX0000000001}{2:I935BANKUS33XXXXN}{4:\r\n")
	b.WriteString(":20:RATECHANGE000001\r\n")
	for i := 0; i < 11; i++ {
		b.WriteString(":23:USDNOTICE\r\n")
		b.WriteString(":30:210101\r\n")
		b.WriteString(":37H:C1,50\r\n")
	}
	b.WriteString("-}")
	raw := b.String()

	msg, err := Parse([]byte(raw))
	require.NoError(t, err)
	body := msg.Body.(*MT935)
	require.Len(t, body.RateChange, 11)

	errs, err := Validate(msg)
	require.NoError(t, err)
	require.NotEmpty(t, errs)

	found := false
	for _, e := range errs {
		if e.ID == "T10" {
			found = true
			assert.Equal(t, ContentRule, e.Kind)
		}
	}
	assert.True(t, found, "expected a T10 violation among %v", errs)
}

// T26: field 23's function code must be one of the fixed list.
func TestMT935T26ViolationUnknownFunctionCode(t *testing.T) {
	f23, err := fields.ParseField23("USDBOGUSCODE")
	require.NoError(t, err)
	f30, err := fields.ParseField30("210101")
	require.NoError(t, err)

	m := &MT935{RateChange: []MT935RateChange{{Field23: &f23, Field30: f30}}}
	errs := m.Validate(Default())
	require.Len(t, errs, 1)
	assert.Equal(t, "T26", errs[0].ID)
	assert.Equal(t, ContentRule, errs[0].Kind)
	assert.Equal(t, 0, errs[0].SeqIndex)
}

// T26: the 2-digit days prefix on field 23 is only valid alongside NOTICE.
func TestMT935T26ViolationDaysPrefixWithoutNotice(t *testing.T) {
	f23, err := fields.ParseField23("USD07BASE")
	require.NoError(t, err)
	f30, err := fields.ParseField30("210101")
	require.NoError(t, err)

	m := &MT935{RateChange: []MT935RateChange{{Field23: &f23, Field30: f30}}}
	errs := m.Validate(Default())
	require.Len(t, errs, 1)
	assert.Equal(t, "T26", errs[0].ID)
	assert.Contains(t, errs[0].Message, "NOTICE")
}

// T26: a days prefix together with NOTICE is the one permitted combination.
func TestMT935T26AllowsDaysPrefixWithNotice(t *testing.T) {
	f23, err := fields.ParseField23("USD07NOTICE")
	require.NoError(t, err)
	f30, err := fields.ParseField30("210101")
	require.NoError(t, err)

	m := &MT935{RateChange: []MT935RateChange{{Field23: &f23, Field30: f30}}}
	errs := m.Validate(Default())
	assert.Empty(t, errs)
}

// T14: field 37H must not carry the negative-sign indicator for a zero rate.
func TestMT935T14ViolationNegativeZeroRate(t *testing.T) {
	f23, err := fields.ParseField23("USDNOTICE")
	require.NoError(t, err)
	f30, err := fields.ParseField30("210101")
	require.NoError(t, err)
	f37H, err := fields.ParseField37H("CN0,")
	require.NoError(t, err)

	m := &MT935{RateChange: []MT935RateChange{{Field23: &f23, Field30: f30, Field37H: []fields.Field37H{f37H}}}}
	errs := m.Validate(Default())
	require.Len(t, errs, 1)
	assert.Equal(t, "T14", errs[0].ID)
	assert.Equal(t, ContentRule, errs[0].Kind)
}

// T14: a nonzero rate may legitimately carry the negative-sign indicator.
func TestMT935T14AllowsNegativeNonzeroRate(t *testing.T) {
	f23, err := fields.ParseField23("USDNOTICE")
	require.NoError(t, err)
	f30, err := fields.ParseField30("210101")
	require.NoError(t, err)
	f37H, err := fields.ParseField37H("CN1,5")
	require.NoError(t, err)

	m := &MT935{RateChange: []MT935RateChange{{Field23: &f23, Field30: f30, Field37H: []fields.Field37H{f37H}}}}
	errs := m.Validate(Default())
	assert.Empty(t, errs)
}

func TestMT935CleanWithinTenSequences(t *testing.T) {
	var b strings.Builder
	b.WriteString("{1:F01BANKDEFFAXXX0000000001}{2:I935BANKUS33XXXXN}{4:\r\n")
	b.WriteString(":20:RATECHANGE000001\r\n")
	for i := 0; i < 3; i++ {
		b.WriteString(fmt.Sprintf(":25:ACCOUNT%08d\r\n", i))
		b.WriteString(":30:210101\r\n")
		b.WriteString(":37H:C1,50\r\n")
	}
	b.WriteString("-}")
	raw := b.String()

	msg, err := Parse([]byte(raw))
	require.NoError(t, err)
	errs, err := Validate(msg)
	require.NoError(t, err)
	assert.Empty(t, errs)

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, raw, reemitted)
}

// S5: field 60F's currency (USD) diverges from the statement's anchor
// currency carried by field 62F (EUR), a C27 violation.
const rawMT941CurrencyMismatch = "{1:F01BANKDEFFAXXX0000000001}{2:I941BANKUS33XXXXN}{4:\r\n" +
	":20:MT941REF00000001\r\n" +
	":25:ACCOUNT123456789\r\n" +
	":28:1\r\n" +
	":60F:C251003USD595771,95\r\n" +
	":62F:C251003EUR659851,95\r\n" +
	"-}"

func TestMT941C27ViolationOnCurrencyMismatch(t *testing.T) {
	msg, err := Parse([]byte(rawMT941CurrencyMismatch))
	require.NoError(t, err)

	errs, err := Validate(msg)
	require.NoError(t, err)
	require.Len(t, errs, 1)
	assert.Equal(t, "C27", errs[0].ID)
	assert.Equal(t, BusinessRule, errs[0].Kind)
	assert.Contains(t, errs[0].Involved, "60F")
	assert.Contains(t, errs[0].Message, "USD")

	reemitted, err := Emit(msg)
	require.NoError(t, err)
	assert.Equal(t, rawMT941CurrencyMismatch, reemitted)
}

func TestMT941CleanWhenCurrenciesMatch(t *testing.T) {
	raw := "{1:F01BANKDEFFAXXX0000000001}{2:I941BANKUS33XXXXN}{4:\r\n" +
		":20:MT941REF00000001\r\n" +
		":25:ACCOUNT123456789\r\n" +
		":28:1\r\n" +
		":60F:C251003EUR595771,95\r\n" +
		":62F:C251003EUR659851,95\r\n" +
		"-}"
	msg, err := Parse([]byte(raw))
	require.NoError(t, err)
	errs, err := Validate(msg)
	require.NoError(t, err)
	assert.Empty(t, errs)
}
