package primitive

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFixedNumeric(t *testing.T) {
	v, err := FixedNumeric("123456rest", 6)
	require.NoError(t, err)
	assert.Equal(t, "123456", v)

	_, err = FixedNumeric("12A456", 6)
	assert.Error(t, err)

	_, err = FixedNumeric("123", 6)
	assert.Error(t, err)
}

func TestBIC(t *testing.T) {
	v, err := BIC("DEUTDEFF")
	require.NoError(t, err)
	assert.Equal(t, "DEUTDEFF", v)

	v, err = BIC("DEUTDEFFXXX")
	require.NoError(t, err)
	assert.Equal(t, "DEUTDEFFXXX", v)

	_, err = BIC("DEUT")
	assert.Error(t, err)

	_, err = BIC("1234DEFF")
	assert.Error(t, err)

	assert.Equal(t, "DE", BICCountry("DEUTDEFFXXX"))
}

func TestCurrencyCommodityRejection(t *testing.T) {
	_, err := Currency("XAU", true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "C08")

	v, err := Currency("USD", true)
	require.NoError(t, err)
	assert.Equal(t, "USD", v)

	v, err = Currency("XAU", false)
	require.NoError(t, err)
	assert.Equal(t, "XAU", v)
}

func TestParseAmount(t *testing.T) {
	a, err := ParseAmount("1000,50")
	require.NoError(t, err)
	assert.Equal(t, "1000", a.Integer)
	assert.Equal(t, "50", a.Fraction)
	assert.Equal(t, "1000,50", a.String())
	d, err := a.Decimal()
	require.NoError(t, err)
	assert.True(t, d.Equal(decimal.RequireFromString("1000.50")))
	assert.Equal(t, 2, a.DecimalPlaces())

	a, err = ParseAmount("1500000")
	require.NoError(t, err)
	assert.Equal(t, 0, a.DecimalPlaces())
	assert.Equal(t, "1500000", a.String())

	_, err = ParseAmount("")
	assert.Error(t, err)

	_, err = ParseAmount("abc")
	assert.Error(t, err)
}

func TestAmountIsPositive(t *testing.T) {
	positive, err := ParseAmount("1000,00")
	require.NoError(t, err)
	assert.True(t, positive.IsPositive())

	zero, err := ParseAmount("0,00")
	require.NoError(t, err)
	assert.False(t, zero.IsPositive())

	zeroNoFraction, err := ParseAmount("0")
	require.NoError(t, err)
	assert.False(t, zeroNoFraction.IsPositive())
}

func TestCheckExponent(t *testing.T) {
	usd, _ := ParseAmount("100,505")
	err := CheckExponent(usd, "USD")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "C03")

	bhd, _ := ParseAmount("100,505")
	err = CheckExponent(bhd, "BHD")
	require.NoError(t, err)

	jpy, _ := ParseAmount("1500000,5")
	err = CheckExponent(jpy, "JPY")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "C03")
}

func TestDateYYMMDDCenturyWindow(t *testing.T) {
	d, err := DateYYMMDD("490101")
	require.NoError(t, err)
	assert.Equal(t, 2049, d.Year())
	assert.Equal(t, "490101", EmitYYMMDD(d))

	d, err = DateYYMMDD("500101")
	require.NoError(t, err)
	assert.Equal(t, 1950, d.Year())

	_, err = DateYYMMDD("991332")
	assert.Error(t, err)
}

func TestDateYYYYMMDD(t *testing.T) {
	d, err := DateYYYYMMDD("20240719")
	require.NoError(t, err)
	assert.Equal(t, 2024, d.Year())
	assert.Equal(t, "20240719", EmitYYYYMMDD(d))
}

func TestTimeHHMM(t *testing.T) {
	h, m, err := TimeHHMM("1345")
	require.NoError(t, err)
	assert.Equal(t, 13, h)
	assert.Equal(t, 45, m)
	assert.Equal(t, "1345", EmitHHMM(h, m))

	_, _, err = TimeHHMM("2561")
	assert.Error(t, err)
}

func TestText(t *testing.T) {
	_, err := Text("hello/world-123", 20)
	require.NoError(t, err)

	_, err = Text("toolong", 3)
	assert.Error(t, err)

	_, err = Text("bad\x01char", 20)
	assert.Error(t, err)
}

func TestLines(t *testing.T) {
	lines, err := Lines("line one\nline two", 4, 35)
	require.NoError(t, err)
	assert.Equal(t, []string{"line one", "line two"}, lines)

	_, err = Lines("a\nb\nc\nd\ne", 4, 35)
	assert.Error(t, err)
}
