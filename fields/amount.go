package fields

import (
	"fmt"
	"time"

	"github.com/deltran/swiftmt/internal/primitive"
)

// Field32A is the value date / currency / interbank settled amount,
// format 6!n3!a15d.
type Field32A struct {
	ValueDate time.Time
	Currency  string
	Amount    primitive.Amount
}

func ParseField32A(raw string) (Field32A, error) {
	return parse32DateCurrencyAmount("32A", raw)
}

func (f Field32A) Tag() string { return "32A" }
func (f Field32A) Emit() string {
	return fmt.Sprintf(":32A:%s%s%s", primitive.EmitYYMMDD(f.ValueDate), f.Currency, f.Amount.String())
}

// Field32B is currency / amount only, format 3!a15d (instructed amount of
// the settlement currency, used when no value date applies to this leg).
type Field32B struct {
	Currency string
	Amount   primitive.Amount
}

func ParseField32B(raw string) (Field32B, error) {
	if len(raw) < 3 {
		return Field32B{}, perr("32B", "currency", fmt.Errorf("value %q too short", raw))
	}
	cur, err := primitive.Currency(raw[:3], true)
	if err != nil {
		return Field32B{}, perr("32B", "currency", err)
	}
	amt, err := primitive.ParseAmount(raw[3:])
	if err != nil {
		return Field32B{}, perr("32B", "amount", err)
	}
	if err := primitive.CheckExponent(amt, cur); err != nil {
		return Field32B{}, perr("32B", "amount", err)
	}
	return Field32B{Currency: cur, Amount: amt}, nil
}

func (f Field32B) Tag() string  { return "32B" }
func (f Field32B) Emit() string { return fmt.Sprintf(":32B:%s%s", f.Currency, f.Amount.String()) }

// Field32C is value date / currency / amount for a debit statement entry
// summary (MT9xx family); same wire shape as 32A.
type Field32C struct {
	ValueDate time.Time
	Currency  string
	Amount    primitive.Amount
}

func ParseField32C(raw string) (Field32C, error) {
	a, err := parse32DateCurrencyAmount("32C", raw)
	if err != nil {
		return Field32C{}, err
	}
	return Field32C(a), nil
}

func (f Field32C) Tag() string { return "32C" }
func (f Field32C) Emit() string {
	return fmt.Sprintf(":32C:%s%s%s", primitive.EmitYYMMDD(f.ValueDate), f.Currency, f.Amount.String())
}

// Field32D is the credit-side counterpart of 32C; identical wire shape.
type Field32D struct {
	ValueDate time.Time
	Currency  string
	Amount    primitive.Amount
}

func ParseField32D(raw string) (Field32D, error) {
	a, err := parse32DateCurrencyAmount("32D", raw)
	if err != nil {
		return Field32D{}, err
	}
	return Field32D(a), nil
}

func (f Field32D) Tag() string { return "32D" }
func (f Field32D) Emit() string {
	return fmt.Sprintf(":32D:%s%s%s", primitive.EmitYYMMDD(f.ValueDate), f.Currency, f.Amount.String())
}

func parse32DateCurrencyAmount(tag, raw string) (Field32A, error) {
	if len(raw) < 9 {
		return Field32A{}, perr(tag, "<value>", fmt.Errorf("value %q too short for 6!n3!a15d", raw))
	}
	d, err := primitive.DateYYMMDD(raw[:6])
	if err != nil {
		return Field32A{}, perr(tag, "value date", err)
	}
	cur, err := primitive.Currency(raw[6:9], true)
	if err != nil {
		return Field32A{}, perr(tag, "currency", err)
	}
	amt, err := primitive.ParseAmount(raw[9:])
	if err != nil {
		return Field32A{}, perr(tag, "amount", err)
	}
	if err := primitive.CheckExponent(amt, cur); err != nil {
		return Field32A{}, perr(tag, "amount", err)
	}
	return Field32A{ValueDate: d, Currency: cur, Amount: amt}, nil
}

// Field33B is the instructed currency/amount as given by the ordering
// customer before any deduction of charges, format 3!a15d.
type Field33B struct {
	Currency string
	Amount   primitive.Amount
}

func ParseField33B(raw string) (Field33B, error) {
	b, err := ParseField32B(raw)
	return Field33B(b), err
}

func (f Field33B) Tag() string  { return "33B" }
func (f Field33B) Emit() string { return fmt.Sprintf(":33B:%s%s", f.Currency, f.Amount.String()) }

// Field71A is the charges code, format 3!a, normally one of OUR/SHA/BEN.
// The codec checks only the 3!a shape; no validator in this module checks
// the value against that code list.
type Field71A struct {
	Code string
}

func ParseField71A(raw string) (Field71A, error) {
	code, err := primitive.FixedAlpha(raw, 3)
	if err != nil {
		return Field71A{}, perr("71A", "code", err)
	}
	return Field71A{Code: code}, nil
}

func (f Field71A) Tag() string  { return "71A" }
func (f Field71A) Emit() string { return ":71A:" + f.Code }

// Field71F is the sender's charges, format 3!a15d; repeats when more than
// one deduction was taken along the payment chain.
type Field71F struct {
	Currency string
	Amount   primitive.Amount
}

func ParseField71F(raw string) (Field71F, error) {
	b, err := ParseField32B(raw)
	if err != nil {
		return Field71F{}, perr("71F", "", err)
	}
	return Field71F(b), nil
}

func (f Field71F) Tag() string  { return "71F" }
func (f Field71F) Emit() string { return fmt.Sprintf(":71F:%s%s", f.Currency, f.Amount.String()) }

// Field71G is the receiver's charges, same shape as 71F.
type Field71G struct {
	Currency string
	Amount   primitive.Amount
}

func ParseField71G(raw string) (Field71G, error) {
	b, err := ParseField32B(raw)
	if err != nil {
		return Field71G{}, perr("71G", "", err)
	}
	return Field71G(b), nil
}

func (f Field71G) Tag() string  { return "71G" }
func (f Field71G) Emit() string { return fmt.Sprintf(":71G:%s%s", f.Currency, f.Amount.String()) }

// Field90C is the number and sum of credit entries on a statement,
// format 5n3!a15d.
type Field90C struct {
	Count    int
	Currency string
	Amount   primitive.Amount
}

func ParseField90C(raw string) (Field90C, error) {
	c, cur, amt, err := parse90(raw)
	if err != nil {
		return Field90C{}, perr("90C", "", err)
	}
	return Field90C{Count: c, Currency: cur, Amount: amt}, nil
}

func (f Field90C) Tag() string { return "90C" }
func (f Field90C) Emit() string {
	return fmt.Sprintf(":90C:%d%s%s", f.Count, f.Currency, f.Amount.String())
}

// Field90D is the number and sum of debit entries; same wire shape as 90C.
type Field90D struct {
	Count    int
	Currency string
	Amount   primitive.Amount
}

func ParseField90D(raw string) (Field90D, error) {
	c, cur, amt, err := parse90(raw)
	if err != nil {
		return Field90D{}, perr("90D", "", err)
	}
	return Field90D{Count: c, Currency: cur, Amount: amt}, nil
}

func (f Field90D) Tag() string { return "90D" }
func (f Field90D) Emit() string {
	return fmt.Sprintf(":90D:%d%s%s", f.Count, f.Currency, f.Amount.String())
}

// Field34F is a floor limit indicator on an MT920 request or MT942
// report, format 3!a[1!a]15d: currency, an optional D/C mark (debit and
// credit floor limits differ when both are given; its absence means the
// single limit applies to both), then the amount.
type Field34F struct {
	Currency string
	Mark     byte // 0 when absent
	Amount   primitive.Amount
}

func ParseField34F(raw string) (Field34F, error) {
	if len(raw) < 3 {
		return Field34F{}, perr("34F", "currency", fmt.Errorf("value %q too short", raw))
	}
	cur, err := primitive.Currency(raw[:3], true)
	if err != nil {
		return Field34F{}, perr("34F", "currency", err)
	}
	rest := raw[3:]
	var mark byte
	if len(rest) > 0 && (rest[0] == 'D' || rest[0] == 'C') {
		mark = rest[0]
		rest = rest[1:]
	}
	amt, err := primitive.ParseAmount(rest)
	if err != nil {
		return Field34F{}, perr("34F", "amount", err)
	}
	if err := primitive.CheckExponent(amt, cur); err != nil {
		return Field34F{}, perr("34F", "amount", err)
	}
	return Field34F{Currency: cur, Mark: mark, Amount: amt}, nil
}

func (f Field34F) Tag() string { return "34F" }
func (f Field34F) Emit() string {
	if f.Mark == 0 {
		return fmt.Sprintf(":34F:%s%s", f.Currency, f.Amount.String())
	}
	return fmt.Sprintf(":34F:%s%c%s", f.Currency, f.Mark, f.Amount.String())
}

func parse90(raw string) (count int, currency string, amt primitive.Amount, err error) {
	i := 0
	for i < len(raw) && i < 5 && raw[i] >= '0' && raw[i] <= '9' {
		i++
	}
	if i == 0 {
		return 0, "", primitive.Amount{}, fmt.Errorf("value %q is missing its entry count", raw)
	}
	for _, r := range raw[:i] {
		count = count*10 + int(r-'0')
	}
	rest := raw[i:]
	if len(rest) < 3 {
		return 0, "", primitive.Amount{}, fmt.Errorf("value %q too short for currency", raw)
	}
	currency, err = primitive.Currency(rest[:3], true)
	if err != nil {
		return 0, "", primitive.Amount{}, err
	}
	amt, err = primitive.ParseAmount(rest[3:])
	if err != nil {
		return 0, "", primitive.Amount{}, err
	}
	return count, currency, amt, primitive.CheckExponent(amt, currency)
}
