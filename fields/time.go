package fields

import (
	"fmt"
	"time"

	"github.com/deltran/swiftmt/internal/primitive"
)

// Field13C is a time indication tied to a SWIFT code word, format
// /8c/4!n1!x4!n: code, HHMM, sign ('+' or '-'), HHMM UTC offset.
type Field13C struct {
	Code   string
	Hour   int
	Minute int
	Sign   string // "+" or "-"
	OffHour, OffMinute int
}

func ParseField13C(raw string) (Field13C, error) {
	if len(raw) < 2 || raw[0] != '/' {
		return Field13C{}, perr("13C", "code", fmt.Errorf("value %q must begin with '/'", raw))
	}
	end := indexByte(raw[1:], '/')
	if end < 0 {
		return Field13C{}, perr("13C", "code", fmt.Errorf("value %q is missing its closing '/'", raw))
	}
	code := raw[1 : 1+end]
	rest := raw[1+end+1:]
	if len(rest) != 9 {
		return Field13C{}, perr("13C", "time", fmt.Errorf("expected 4!n1!x4!n after the code, found %q", rest))
	}
	h, m, err := primitive.TimeHHMM(rest[:4])
	if err != nil {
		return Field13C{}, perr("13C", "time", err)
	}
	sign := rest[4:5]
	if sign != "+" && sign != "-" {
		return Field13C{}, perr("13C", "sign", fmt.Errorf("sign must be '+' or '-', found %q", sign))
	}
	oh, om, err := primitive.TimeHHMM(rest[5:])
	if err != nil {
		return Field13C{}, perr("13C", "offset", err)
	}
	return Field13C{Code: code, Hour: h, Minute: m, Sign: sign, OffHour: oh, OffMinute: om}, nil
}

func (f Field13C) Tag() string { return "13C" }
func (f Field13C) Emit() string {
	return fmt.Sprintf(":13C:/%s/%s%s%s", f.Code, primitive.EmitHHMM(f.Hour, f.Minute), f.Sign, primitive.EmitHHMM(f.OffHour, f.OffMinute))
}

// Field13D is a plain date/time indication, format 6!n4!n1!x4!n.
type Field13D struct {
	Date               time.Time
	Hour, Minute       int
	Sign               string
	OffHour, OffMinute int
}

func ParseField13D(raw string) (Field13D, error) {
	if len(raw) != 15 {
		return Field13D{}, perr("13D", "", fmt.Errorf("expected 6!n4!n1!x4!n (15 characters), found %d", len(raw)))
	}
	d, err := primitive.DateYYMMDD(raw[:6])
	if err != nil {
		return Field13D{}, perr("13D", "date", err)
	}
	h, m, err := primitive.TimeHHMM(raw[6:10])
	if err != nil {
		return Field13D{}, perr("13D", "time", err)
	}
	sign := raw[10:11]
	if sign != "+" && sign != "-" {
		return Field13D{}, perr("13D", "sign", fmt.Errorf("sign must be '+' or '-', found %q", sign))
	}
	oh, om, err := primitive.TimeHHMM(raw[11:])
	if err != nil {
		return Field13D{}, perr("13D", "offset", err)
	}
	return Field13D{Date: d, Hour: h, Minute: m, Sign: sign, OffHour: oh, OffMinute: om}, nil
}

func (f Field13D) Tag() string { return "13D" }
func (f Field13D) Emit() string {
	return fmt.Sprintf(":13D:%s%s%s%s", primitive.EmitYYMMDD(f.Date), primitive.EmitHHMM(f.Hour, f.Minute), f.Sign, primitive.EmitHHMM(f.OffHour, f.OffMinute))
}

// Field23 is MT935's Further Identification field, format 3!a[2!n]11x:
// currency, an optional day count valid only alongside the NOTICE function,
// and the function code itself. Enum/day-count membership is enforced by
// the validator (T26), not the codec.
type Field23 struct {
	Currency string
	Days     *int
	Function string
}

func ParseField23(raw string) (Field23, error) {
	if len(raw) < 4 {
		return Field23{}, perr("23", "", fmt.Errorf("value %q must be at least 4 characters", raw))
	}
	cur, err := primitive.Currency(raw[:3], false)
	if err != nil {
		return Field23{}, perr("23", "currency", err)
	}
	rest := raw[3:]
	var days *int
	if len(rest) >= 2 && isAllDigits(rest[:2]) {
		d, _ := parseSmallInt(rest[:2])
		days = &d
		rest = rest[2:]
	}
	if _, err := primitive.Text(rest, 11); err != nil {
		return Field23{}, perr("23", "function", err)
	}
	return Field23{Currency: cur, Days: days, Function: rest}, nil
}

func isAllDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

func (f Field23) Tag() string { return "23" }
func (f Field23) Emit() string {
	if f.Days == nil {
		return ":23:" + f.Currency + f.Function
	}
	return fmt.Sprintf(":23:%s%02d%s", f.Currency, *f.Days, f.Function)
}

// Field30 is a plain 6-digit date (e.g. new-rate effective date in MT935).
type Field30 struct{ Date time.Time }

func ParseField30(raw string) (Field30, error) {
	d, err := primitive.DateYYMMDD(raw)
	if err != nil {
		return Field30{}, perr("30", "", err)
	}
	return Field30{Date: d}, nil
}
func (f Field30) Tag() string  { return "30" }
func (f Field30) Emit() string { return ":30:" + primitive.EmitYYMMDD(f.Date) }

// Field36 is an exchange rate, format 12d.
type Field36 struct{ Rate primitive.Amount }

func ParseField36(raw string) (Field36, error) {
	a, err := primitive.ParseAmount(raw)
	if err != nil {
		return Field36{}, perr("36", "", err)
	}
	return Field36{Rate: a}, nil
}
func (f Field36) Tag() string  { return "36" }
func (f Field36) Emit() string { return ":36:" + f.Rate.String() }

// Field37H is the new interest rate, format 1!a[1!a]12d: a C/D indicator, an
// optional 'N' sign marking a negative rate, and the rate itself.
type Field37H struct {
	Indicator byte // 'C' or 'D'
	Negative  bool
	Rate      primitive.Amount
}

func ParseField37H(raw string) (Field37H, error) {
	if len(raw) < 1 {
		return Field37H{}, perr("37H", "indicator", fmt.Errorf("value is empty"))
	}
	ind := raw[0]
	rest := raw[1:]
	if ind != 'C' && ind != 'D' {
		return Field37H{}, perr("37H", "indicator", fmt.Errorf("T51: indicator must be 'C' or 'D', found %q", ind))
	}
	neg := false
	if len(rest) > 0 && rest[0] == 'N' {
		neg = true
		rest = rest[1:]
	}
	amt, err := primitive.ParseAmount(rest)
	if err != nil {
		return Field37H{}, perr("37H", "rate", err)
	}
	return Field37H{Indicator: ind, Negative: neg, Rate: amt}, nil
}

func (f Field37H) Tag() string { return "37H" }
func (f Field37H) Emit() string {
	sign := ""
	if f.Negative {
		sign = "N"
	}
	return fmt.Sprintf(":37H:%c%s%s", f.Indicator, sign, f.Rate.String())
}

// balanceField is the shared 1!a6!n3!a15d shape of Field60F/60M/62F/62M/64/65.
type balanceField struct {
	Mark      byte // 'C' or 'D'
	Date      time.Time
	Currency  string
	Amount    primitive.Amount
}

func parseBalance(tag, raw string) (balanceField, error) {
	if len(raw) < 16 {
		return balanceField{}, perr(tag, "", fmt.Errorf("value %q too short for 1!a6!n3!a15d", raw))
	}
	mark := raw[0]
	if mark != 'C' && mark != 'D' {
		return balanceField{}, perr(tag, "mark", fmt.Errorf("balance mark must be 'C' or 'D', found %q", mark))
	}
	d, err := primitive.DateYYMMDD(raw[1:7])
	if err != nil {
		return balanceField{}, perr(tag, "date", err)
	}
	cur, err := primitive.Currency(raw[7:10], false)
	if err != nil {
		return balanceField{}, perr(tag, "currency", err)
	}
	amt, err := primitive.ParseAmount(raw[10:])
	if err != nil {
		return balanceField{}, perr(tag, "amount", err)
	}
	if err := primitive.CheckExponent(amt, cur); err != nil {
		return balanceField{}, perr(tag, "amount", err)
	}
	return balanceField{Mark: mark, Date: d, Currency: cur, Amount: amt}, nil
}

func emitBalance(tag string, b balanceField) string {
	return fmt.Sprintf(":%s:%c%s%s%s", tag, b.Mark, primitive.EmitYYMMDD(b.Date), b.Currency, b.Amount.String())
}

// Field60F is the opening (first/only) balance of a statement.
type Field60F struct{ balanceField }

func ParseField60F(raw string) (Field60F, error) {
	b, err := parseBalance("60F", raw)
	return Field60F{b}, err
}
func (f Field60F) Tag() string  { return "60F" }
func (f Field60F) Emit() string { return emitBalance("60F", f.balanceField) }

// Field60M is the opening balance of an intermediate (non-first) statement
// page.
type Field60M struct{ balanceField }

func ParseField60M(raw string) (Field60M, error) {
	b, err := parseBalance("60M", raw)
	return Field60M{b}, err
}
func (f Field60M) Tag() string  { return "60M" }
func (f Field60M) Emit() string { return emitBalance("60M", f.balanceField) }

// Field62F is the closing (booked) balance.
type Field62F struct{ balanceField }

func ParseField62F(raw string) (Field62F, error) {
	b, err := parseBalance("62F", raw)
	return Field62F{b}, err
}
func (f Field62F) Tag() string  { return "62F" }
func (f Field62F) Emit() string { return emitBalance("62F", f.balanceField) }

// Field62M is the closing balance of an intermediate statement page.
type Field62M struct{ balanceField }

func ParseField62M(raw string) (Field62M, error) {
	b, err := parseBalance("62M", raw)
	return Field62M{b}, err
}
func (f Field62M) Tag() string  { return "62M" }
func (f Field62M) Emit() string { return emitBalance("62M", f.balanceField) }

// Field64 is the closing available balance, no variant letter.
type Field64 struct{ balanceField }

func ParseField64(raw string) (Field64, error) {
	b, err := parseBalance("64", raw)
	return Field64{b}, err
}
func (f Field64) Tag() string  { return "64" }
func (f Field64) Emit() string { return emitBalance("64", f.balanceField) }

// Field65 is a forward available balance; it may repeat, one per
// value-dated tranche of available funds.
type Field65 struct{ balanceField }

func ParseField65(raw string) (Field65, error) {
	b, err := parseBalance("65", raw)
	return Field65{b}, err
}
func (f Field65) Tag() string  { return "65" }
func (f Field65) Emit() string { return emitBalance("65", f.balanceField) }

// Field61 is one statement line: value date, optional entry date, a
// debit/credit/reversal mark, optional funds code, amount, transaction type
// (a swift code letter + 3 chars), customer/account reference, an optional
// "//"-prefixed bank reference, and an optional supplementary details tail.
// Format: 6!n[4!n]2a[1!a]15d1!a3!c16x[//16x][34x]
type Field61 struct {
	ValueDate         time.Time
	EntryDate         *time.Time // 4!n month+day, year taken from ValueDate
	Mark              string     // "C", "D", "RC", or "RD"
	FundsCode         byte       // optional 1!a, 0 if absent
	Amount            primitive.Amount
	TransactionType   string // 1!a3!c, e.g. "NTRF", "NMSC"
	CustomerReference string
	BankReference     string // without the leading "//"
	Supplementary     string
}

var validMarks = map[string]bool{"C": true, "D": true, "RC": true, "RD": true}

func ParseField61(raw string) (Field61, error) {
	if len(raw) < 6 {
		return Field61{}, perr("61", "value date", fmt.Errorf("value %q too short", raw))
	}
	valueDate, err := primitive.DateYYMMDD(raw[:6])
	if err != nil {
		return Field61{}, perr("61", "value date", err)
	}
	rest := raw[6:]

	var entryDate *time.Time
	if len(rest) >= 4 && isAllDigits(rest[:4]) {
		mm, mmErr := parseSmallInt(rest[:2])
		dd, ddErr := parseSmallInt(rest[2:4])
		if mmErr == nil && ddErr == nil && mm >= 1 && mm <= 12 {
			t := time.Date(valueDate.Year(), time.Month(mm), dd, 0, 0, 0, 0, time.UTC)
			entryDate = &t
			rest = rest[4:]
		}
	}

	mark := ""
	switch {
	case len(rest) >= 2 && (rest[:2] == "RC" || rest[:2] == "RD"):
		mark = rest[:2]
		rest = rest[2:]
	case len(rest) >= 1 && (rest[:1] == "C" || rest[:1] == "D"):
		mark = rest[:1]
		rest = rest[1:]
	default:
		return Field61{}, perr("61", "mark", fmt.Errorf("value %q is missing its C/D/RC/RD mark", raw))
	}
	if !validMarks[mark] {
		return Field61{}, perr("61", "mark", fmt.Errorf("invalid debit/credit mark %q", mark))
	}

	var fundsCode byte
	if len(rest) > 0 && isAsciiLetterByte(rest[0]) && !isDigitByte(rest[0]) {
		// a funds code letter precedes the amount only when the next run of
		// digits doesn't start immediately; SWIFT distinguishes it from the
		// amount by it being a single alphabetic character.
		fundsCode = rest[0]
		rest = rest[1:]
	}

	amtEnd := 0
	for amtEnd < len(rest) && (isDigitByte(rest[amtEnd]) || rest[amtEnd] == ',') {
		amtEnd++
	}
	if amtEnd == 0 {
		return Field61{}, perr("61", "amount", fmt.Errorf("value %q is missing its amount", raw))
	}
	amt, err := primitive.ParseAmount(rest[:amtEnd])
	if err != nil {
		return Field61{}, perr("61", "amount", err)
	}
	rest = rest[amtEnd:]

	if len(rest) < 4 {
		return Field61{}, perr("61", "transaction type", fmt.Errorf("value %q is missing its 4-character transaction type", raw))
	}
	txType := rest[:4]
	rest = rest[4:]

	ref := rest
	bankRef := ""
	supplementary := ""
	if idx := indexOf(rest, "//"); idx >= 0 {
		ref = rest[:idx]
		afterSlash := rest[idx+2:]
		nl := indexByte(afterSlash, '\n')
		if nl >= 0 {
			bankRef = afterSlash[:nl]
			supplementary = afterSlash[nl+1:]
		} else {
			bankRef = afterSlash
		}
	} else if nl := indexByte(rest, '\n'); nl >= 0 {
		ref = rest[:nl]
		supplementary = rest[nl+1:]
	}
	if _, err := primitive.Text(ref, 16); err != nil {
		return Field61{}, perr("61", "customer reference", err)
	}

	return Field61{
		ValueDate: valueDate, EntryDate: entryDate, Mark: mark, FundsCode: fundsCode,
		Amount: amt, TransactionType: txType, CustomerReference: ref,
		BankReference: bankRef, Supplementary: supplementary,
	}, nil
}

func (f Field61) Tag() string { return "61" }
func (f Field61) Emit() string {
	out := ":61:" + primitive.EmitYYMMDD(f.ValueDate)
	if f.EntryDate != nil {
		out += fmt.Sprintf("%02d%02d", int(f.EntryDate.Month()), f.EntryDate.Day())
	}
	out += f.Mark
	if f.FundsCode != 0 {
		out += string(f.FundsCode)
	}
	out += f.Amount.String() + f.TransactionType + f.CustomerReference
	if f.BankReference != "" {
		out += "//" + f.BankReference
	}
	if f.Supplementary != "" {
		out += "\n" + f.Supplementary
	}
	return out
}

func isAsciiLetterByte(b byte) bool { return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z') }
func isDigitByte(b byte) bool       { return b >= '0' && b <= '9' }

func indexOf(s, sub string) int {
	n := len(sub)
	for i := 0; i+n <= len(s); i++ {
		if s[i:i+n] == sub {
			return i
		}
	}
	return -1
}
