// Package primitive implements the SWIFT FIN primitive scanners: fixed-width
// numeric/alpha/alphanumeric tokens, free text, amounts, dates, times, BIC
// and currency codes. Every field codec in package fields is built by
// composing these scanners; none of them know about tags or messages.
package primitive

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// Error is a primitive-level format violation. It always carries the SWIFT
// rule code when one applies (T-series format rules, C03/C08 content rules).
type Error struct {
	Code    string // e.g. "T26", "C03", "C08"; empty when no SR code applies
	Message string
}

func (e *Error) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func fmtErr(code, format string, args ...interface{}) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// swiftSpecial is the SWIFT 'x' character set special-punctuation subset, not
// counting letters/digits which are checked separately.
const swiftSpecial = "/-?:().,'+{} \r\n%&*;<=>@[]_$!\"#|"

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

func isUpperAlpha(b byte) bool { return b >= 'A' && b <= 'Z' }

func isUpperAlnum(b byte) bool { return isUpperAlpha(b) || isDigit(b) }

// FixedNumeric consumes exactly n digit characters (n!n). Leading zeros are
// preserved in the returned string.
func FixedNumeric(s string, n int) (string, error) {
	if len(s) < n {
		return "", fmtErr("", "expected %d digits, found %d characters", n, len(s))
	}
	head := s[:n]
	for i := 0; i < n; i++ {
		if !isDigit(head[i]) {
			return "", fmtErr("", "expected %d digits, found non-digit %q at position %d", n, head[i], i)
		}
	}
	return head, nil
}

// FixedAlpha consumes exactly n uppercase alphabetic characters (n!a).
func FixedAlpha(s string, n int) (string, error) {
	if len(s) < n {
		return "", fmtErr("", "expected %d letters, found %d characters", n, len(s))
	}
	head := s[:n]
	for i := 0; i < n; i++ {
		c := head[i]
		if !(isUpperAlpha(c) || (c >= 'a' && c <= 'z')) {
			return "", fmtErr("", "expected %d letters, found non-letter %q at position %d", n, c, i)
		}
	}
	return strings.ToUpper(head), nil
}

// FixedAlnum consumes exactly n characters from the uppercase-letter+digit
// set (n!c).
func FixedAlnum(s string, n int) (string, error) {
	if len(s) < n {
		return "", fmtErr("", "expected %d alphanumeric characters, found %d characters", n, len(s))
	}
	head := s[:n]
	for i := 0; i < n; i++ {
		c := head[i]
		if !(isUpperAlnum(c) || (c >= 'a' && c <= 'z')) {
			return "", fmtErr("", "expected %d alphanumeric characters, found %q at position %d", n, c, i)
		}
	}
	return strings.ToUpper(head), nil
}

// IsSwiftChar reports whether r belongs to the SWIFT 'x' character set.
func IsSwiftChar(r rune) bool {
	if r > 127 {
		return false
	}
	b := byte(r)
	if (b >= '0' && b <= '9') || (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') {
		return true
	}
	return strings.ContainsRune(swiftSpecial, r)
}

// Text validates that s contains only SWIFT 'x' characters and has at most
// maxLen runes; a control character other than CR/LF is always a hard
// blocker regardless of maxLen.
func Text(s string, maxLen int) (string, error) {
	count := 0
	for _, r := range s {
		if r < 0x20 && r != '\r' && r != '\n' {
			return "", fmtErr("", "control character 0x%02x is not permitted in SWIFT text", r)
		}
		if !IsSwiftChar(r) {
			return "", fmtErr("", "character %q is outside the SWIFT character set", r)
		}
		count++
	}
	if maxLen > 0 && count > maxLen {
		return "", fmtErr("", "text exceeds maximum length of %d characters, found %d", maxLen, count)
	}
	return s, nil
}

// Lines splits a multi-line field value on '\n' (CR already stripped by the
// tokenizer) and validates each line against Text(maxWidth), enforcing at
// most maxLines lines (the N*Mx grammar).
func Lines(s string, maxLines, maxWidth int) ([]string, error) {
	if s == "" {
		return nil, nil
	}
	lines := strings.Split(s, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		return nil, fmtErr("", "expected at most %d lines, found %d", maxLines, len(lines))
	}
	for i, line := range lines {
		if _, err := Text(line, maxWidth); err != nil {
			return nil, fmtErr("", "line %d: %s", i+1, err.(*Error).Message)
		}
	}
	return lines, nil
}

// Amount is the canonical decimal-text representation of a SWIFT 'd'
// amount: sign-free digits, a single ',' decimal separator, and the
// fractional digit count as written on the wire. The numeric view is
// obtained via Decimal(); the textual view (String) is always round-trip
// exact.
type Amount struct {
	Integer    string // digits before the comma, never empty
	Fraction   string // digits after the comma, may be empty ("no fractional part written")
	HasComma   bool
}

// ParseAmount parses one or more digits, an optional ',' and zero or more
// trailing digits, requiring at least one digit overall (the 'd' primitive).
func ParseAmount(s string) (Amount, error) {
	if s == "" {
		return Amount{}, fmtErr("", "amount is empty")
	}
	comma := strings.IndexByte(s, ',')
	var intPart, fracPart string
	hasComma := comma >= 0
	if hasComma {
		intPart = s[:comma]
		fracPart = s[comma+1:]
	} else {
		intPart = s
		fracPart = ""
	}
	if intPart == "" && fracPart == "" {
		return Amount{}, fmtErr("", "amount %q has no digits", s)
	}
	for i := 0; i < len(intPart); i++ {
		if !isDigit(intPart[i]) {
			return Amount{}, fmtErr("", "amount %q contains a non-digit in the integer part", s)
		}
	}
	for i := 0; i < len(fracPart); i++ {
		if !isDigit(fracPart[i]) {
			return Amount{}, fmtErr("", "amount %q contains a non-digit in the fractional part", s)
		}
	}
	if intPart == "" {
		return Amount{}, fmtErr("", "amount %q has no digits before the comma", s)
	}
	return Amount{Integer: intPart, Fraction: fracPart, HasComma: hasComma}, nil
}

// String renders the amount back to SWIFT wire form (',' decimal point).
func (a Amount) String() string {
	if !a.HasComma {
		return a.Integer
	}
	return a.Integer + "," + a.Fraction
}

// DecimalPlaces is the number of digits written after the comma.
func (a Amount) DecimalPlaces() int {
	return len(a.Fraction)
}

// decimalText renders the plain decimal-point text form consumed by
// decimal.NewFromString.
func (a Amount) decimalText() string {
	if !a.HasComma || a.Fraction == "" {
		return a.Integer
	}
	return a.Integer + "." + a.Fraction
}

// Decimal converts the amount to github.com/shopspring/decimal's
// arbitrary-precision type, so magnitude comparisons (zero/sign checks,
// rate arithmetic) never rely on the zero-padded wire text. Only fails for
// an Amount never produced by ParseAmount.
func (a Amount) Decimal() (decimal.Decimal, error) {
	text := a.decimalText()
	if text == "" {
		text = "0"
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, fmtErr("", "amount %q is not a valid decimal: %s", a.String(), err)
	}
	return d, nil
}

// IsPositive reports whether the amount is strictly greater than zero,
// e.g. for the 32A-POSITIVE settlement-amount check.
func (a Amount) IsPositive() bool {
	d, err := a.Decimal()
	return err == nil && d.IsPositive()
}

// century window per spec.md §3.2: 00-49 -> 20xx, 50-99 -> 19xx.
func century(yy int) int {
	if yy <= 49 {
		return 2000 + yy
	}
	return 1900 + yy
}

func atoi2(s string) (int, bool) {
	if len(s) != 2 || !isDigit(s[0]) || !isDigit(s[1]) {
		return 0, false
	}
	return int(s[0]-'0')*10 + int(s[1]-'0'), true
}

func atoiN(s string) (int, bool) {
	n := 0
	if len(s) == 0 {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
		n = n*10 + int(s[i]-'0')
	}
	return n, true
}

// DateYYMMDD parses a 6-digit date using the century window.
func DateYYMMDD(s string) (time.Time, error) {
	if len(s) != 6 {
		return time.Time{}, fmtErr("T50", "date must be 6 digits (YYMMDD), found %d characters", len(s))
	}
	yy, ok := atoi2(s[0:2])
	if !ok {
		return time.Time{}, fmtErr("T50", "invalid year in date %q", s)
	}
	mm, ok := atoi2(s[2:4])
	if !ok {
		return time.Time{}, fmtErr("T50", "invalid month in date %q", s)
	}
	dd, ok := atoi2(s[4:6])
	if !ok {
		return time.Time{}, fmtErr("T50", "invalid day in date %q", s)
	}
	return buildDate(century(yy), mm, dd, s)
}

// DateYYYYMMDD parses an 8-digit date with an explicit century.
func DateYYYYMMDD(s string) (time.Time, error) {
	if len(s) != 8 {
		return time.Time{}, fmtErr("T50", "date must be 8 digits (YYYYMMDD), found %d characters", len(s))
	}
	yyyy, ok := atoiN(s[0:4])
	if !ok {
		return time.Time{}, fmtErr("T50", "invalid year in date %q", s)
	}
	mm, ok := atoi2(s[4:6])
	if !ok {
		return time.Time{}, fmtErr("T50", "invalid month in date %q", s)
	}
	dd, ok := atoi2(s[6:8])
	if !ok {
		return time.Time{}, fmtErr("T50", "invalid day in date %q", s)
	}
	return buildDate(yyyy, mm, dd, s)
}

func buildDate(year, month, day int, raw string) (time.Time, error) {
	if month < 1 || month > 12 {
		return time.Time{}, fmtErr("T50", "invalid month in date %q", raw)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return time.Time{}, fmtErr("T50", "invalid calendar date %q", raw)
	}
	return t, nil
}

// EmitYYMMDD renders t back to 6-digit form.
func EmitYYMMDD(t time.Time) string {
	return fmt.Sprintf("%02d%02d%02d", t.Year()%100, int(t.Month()), t.Day())
}

// EmitYYYYMMDD renders t back to 8-digit form.
func EmitYYYYMMDD(t time.Time) string {
	return fmt.Sprintf("%04d%02d%02d", t.Year(), int(t.Month()), t.Day())
}

// TimeHHMM parses a 4-digit time of day.
func TimeHHMM(s string) (hour, minute int, err error) {
	if len(s) != 4 {
		return 0, 0, fmtErr("", "time must be 4 digits (HHMM), found %d characters", len(s))
	}
	h, ok := atoi2(s[0:2])
	if !ok || h > 23 {
		return 0, 0, fmtErr("", "invalid hour in time %q", s)
	}
	m, ok := atoi2(s[2:4])
	if !ok || m > 59 {
		return 0, 0, fmtErr("", "invalid minute in time %q", s)
	}
	return h, m, nil
}

// EmitHHMM renders hour/minute back to 4-digit form.
func EmitHHMM(hour, minute int) string {
	return fmt.Sprintf("%02d%02d", hour, minute)
}

// BIC validates a Bank Identifier Code: 4 alpha + 2 alpha + 2 alnum + optional
// 3 alnum branch, length 8 or 11.
func BIC(s string) (string, error) {
	if len(s) != 8 && len(s) != 11 {
		return "", fmtErr("T27", "BIC must be 8 or 11 characters, found %d", len(s))
	}
	for i := 0; i < 4; i++ {
		c := s[i]
		if !(isUpperAlpha(c) || (c >= 'a' && c <= 'z')) {
			return "", fmtErr("T27", "BIC bank code (first 4 chars) must be letters: %q", s)
		}
	}
	for i := 4; i < 6; i++ {
		c := s[i]
		if !(isUpperAlpha(c) || (c >= 'a' && c <= 'z')) {
			return "", fmtErr("T27", "BIC country code (chars 5-6) must be letters: %q", s)
		}
	}
	for i := 6; i < 8; i++ {
		c := s[i]
		if !(isUpperAlnum(c) || (c >= 'a' && c <= 'z')) {
			return "", fmtErr("T27", "BIC location code (chars 7-8) must be alphanumeric: %q", s)
		}
	}
	if len(s) == 11 {
		for i := 8; i < 11; i++ {
			c := s[i]
			if !(isUpperAlnum(c) || (c >= 'a' && c <= 'z')) {
				return "", fmtErr("T27", "BIC branch code (chars 9-11) must be alphanumeric: %q", s)
			}
		}
	}
	return strings.ToUpper(s), nil
}

// BICCountry returns the 2-letter country code embedded in a BIC (chars 5-6).
func BICCountry(bic string) string {
	if len(bic) < 6 {
		return ""
	}
	return strings.ToUpper(bic[4:6])
}

// commodityCurrencies are the metal codes some field contracts must reject.
var commodityCurrencies = map[string]bool{
	"XAU": true, "XAG": true, "XPT": true, "XPD": true,
}

// Currency validates a 3-letter uppercase ISO 4217-shaped code. When
// rejectCommodity is set, XAU/XAG/XPT/XPD fail with C08.
func Currency(s string, rejectCommodity bool) (string, error) {
	if len(s) != 3 {
		return "", fmtErr("T52", "currency code must be exactly 3 characters, found %d", len(s))
	}
	for i := 0; i < 3; i++ {
		if !isUpperAlpha(s[i]) {
			return "", fmtErr("T52", "currency code %q must be uppercase letters", s)
		}
	}
	if rejectCommodity && commodityCurrencies[s] {
		return "", fmtErr("C08", "commodity currency %q is not permitted in this field", s)
	}
	return s, nil
}

// currencyExponent is the ISO 4217 minor-unit count (decimal exponent) used
// by the C03 decimal-precision rule. Unknown currencies default to 2, the
// common case, matching how most correspondent-banking codecs treat an
// unlisted code.
var currencyExponent = map[string]int{
	"BHD": 3, "IQD": 3, "JOD": 3, "KWD": 3, "LYD": 3, "OMR": 3, "TND": 3,
	"BIF": 0, "CLP": 0, "DJF": 0, "GNF": 0, "ISK": 0, "JPY": 0, "KMF": 0,
	"KRW": 0, "PYG": 0, "RWF": 0, "UGX": 0, "UYI": 0, "VND": 0, "VUV": 0,
	"XAF": 0, "XOF": 0, "XPF": 0,
	"CLF": 4, "UYW": 4,
}

// Exponent returns the currency's ISO 4217 decimal exponent.
func Exponent(currency string) int {
	if e, ok := currencyExponent[currency]; ok {
		return e
	}
	return 2
}

// CheckExponent enforces C03: an amount's decimal places must not exceed the
// currency's ISO 4217 exponent.
func CheckExponent(a Amount, currency string) error {
	if a.DecimalPlaces() > Exponent(currency) {
		return fmtErr("C03", "amount %q has %d decimal places, currency %s allows at most %d",
			a.String(), a.DecimalPlaces(), currency, Exponent(currency))
	}
	return nil
}
