package block

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleMT103 = "{1:F01BANKBEBBAXXX1234123456}{2:I103BANKDEFFXXXXN}{4:\r\n" +
	":20:FT2021001234567\r\n" +
	":23B:CRED\r\n" +
	":32A:210315USD1000000,00\r\n" +
	":50K:ORDERING CUSTOMER INC\r\n" +
	"123 BUSINESS STREET\r\n" +
	":59:BENEFICIARY COMPANY LTD\r\n" +
	":71A:OUR\r\n" +
	"-}"

func TestSplitBlocks(t *testing.T) {
	blocks, err := SplitBlocks(sampleMT103)
	require.NoError(t, err)
	require.Len(t, blocks, 3)
	assert.Equal(t, byte('1'), blocks[0].ID)
	assert.Equal(t, "F01BANKBEBBAXXX1234123456", blocks[0].Content)
	assert.Equal(t, byte('2'), blocks[1].ID)
	assert.Equal(t, byte('4'), blocks[2].ID)
	assert.Contains(t, blocks[2].Content, ":20:FT2021001234567")
}

func TestTokenizeBlock4(t *testing.T) {
	blocks, err := SplitBlocks(sampleMT103)
	require.NoError(t, err)
	fields, err := TokenizeBlock4(blocks[2].Content)
	require.NoError(t, err)
	require.Len(t, fields, 6)
	assert.Equal(t, "20", fields[0].Tag)
	assert.Equal(t, "FT2021001234567", fields[0].Value)
	assert.Equal(t, "50K", fields[3].Tag)
	assert.Equal(t, "ORDERING CUSTOMER INC\n123 BUSINESS STREET", fields[3].Value)
	assert.Equal(t, "71A", fields[5].Tag)
	assert.Equal(t, "OUR", fields[5].Value)
}

func TestSplitBlocksUnterminated(t *testing.T) {
	_, err := SplitBlocks("{1:F01BANK}{2:I103BANK}{4:\r\n:20:REF\r\n")
	require.Error(t, err)
	tokErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, UnterminatedBlock, tokErr.Kind)
}

func TestSplitBlocksStrayByte(t *testing.T) {
	_, err := SplitBlocks("{1:F01BANK}X{2:I103BANK}")
	require.Error(t, err)
	tokErr, ok := err.(*Error)
	require.True(t, ok)
	assert.Equal(t, StrayByte, tokErr.Kind)
}

func TestEmitBlock4RoundTrip(t *testing.T) {
	blocks, err := SplitBlocks(sampleMT103)
	require.NoError(t, err)
	fields, err := TokenizeBlock4(blocks[2].Content)
	require.NoError(t, err)

	content := EmitBlock4(fields)
	out := EmitBlock('4', content)
	refields, err := TokenizeBlock4(content)
	require.NoError(t, err)
	assert.Equal(t, fields, refields)
	assert.Contains(t, out, "{4:")
}

func TestSplitFieldLineVariants(t *testing.T) {
	tag, value, err := splitFieldLine(":32A:210315USD1000,00", 0)
	require.NoError(t, err)
	assert.Equal(t, "32A", tag)
	assert.Equal(t, "210315USD1000,00", value)

	_, _, err = splitFieldLine(":2A:x", 0)
	assert.Error(t, err)

	_, _, err = splitFieldLine("20:x", 0)
	assert.Error(t, err)
}
