package swiftmt

import (
	"strconv"

	"github.com/deltran/swiftmt/fields"
	"github.com/deltran/swiftmt/internal/block"
	"github.com/deltran/swiftmt/internal/cursor"
	"github.com/deltran/swiftmt/internal/validate"
)

func init() {
	registerMessageType("900", parseMT900Body, emitMT900Body)
	registerMessageType("910", parseMT910Body, emitMT910Body)
	registerMessageType("920", parseMT920Body, emitMT920Body)
	registerMessageType("935", parseMT935Body, emitMT935Body)
	registerMessageType("940", parseMT940Body, emitMT940Body)
	registerMessageType("941", parseMT941Body, emitMT941Body)
	registerMessageType("942", parseMT942Body, emitMT942Body)
	registerMessageType("950", parseMT950Body, emitMT950Body)
}

// MT900 is a confirmation of debit.
type MT900 struct {
	Field20  fields.Field20
	Field21  fields.Field21
	Field25  fields.Field25
	Field32A fields.Field32A
	Field52  fields.Field // 52A|D
	Field72  *fields.Field72
}

func (m *MT900) MessageType() string { return "900" }

func parseMT900Body(bfields []block.Field) (Body, error) {
	c := cursor.New(bfields)
	m := &MT900{}
	var err error
	var raw string

	if raw, err = c.Expect("20"); err != nil {
		return nil, err
	}
	if m.Field20, err = fields.ParseField20(raw); err != nil {
		return nil, err
	}
	if raw, err = c.Expect("21"); err != nil {
		return nil, err
	}
	if m.Field21, err = fields.ParseField21(raw); err != nil {
		return nil, err
	}
	if raw, err = c.Expect("25"); err != nil {
		return nil, err
	}
	if m.Field25, err = fields.ParseField25(raw); err != nil {
		return nil, err
	}
	if raw, err = c.Expect("32A"); err != nil {
		return nil, err
	}
	if m.Field32A, err = fields.ParseField32A(raw); err != nil {
		return nil, err
	}
	if f, ok, err := tryParty(c, "52", parseInstitution52AD); err != nil {
		return nil, err
	} else if ok {
		m.Field52 = f
	}
	if raw, ok, err := c.TryOptional("72"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField72(raw)
		if err != nil {
			return nil, err
		}
		m.Field72 = &f
	}
	if !c.Done() {
		return nil, c.Unexpected("in MT900")
	}
	return m, nil
}

func emitMT900Body(b Body) []block.Field {
	m := b.(*MT900)
	var fs []block.Field
	add := func(line string) { fs = append(fs, toBlockField(line)) }
	add(m.Field20.Emit())
	add(m.Field21.Emit())
	add(m.Field25.Emit())
	add(m.Field32A.Emit())
	addIfPresent(&fs, m.Field52)
	if m.Field72 != nil {
		add(m.Field72.Emit())
	}
	return fs
}

// MT910 is a confirmation of credit, same shape as MT900 plus an optional
// ordering customer/institution pair since the credit may originate
// outside the receiver's own book.
type MT910 struct {
	Field20  fields.Field20
	Field21  fields.Field21
	Field25  fields.Field25
	Field32A fields.Field32A
	Field50  fields.Field // 50A|F|K
	Field52  fields.Field // 52A|D
	Field72  *fields.Field72
}

func (m *MT910) MessageType() string { return "910" }

func parseMT910Body(bfields []block.Field) (Body, error) {
	c := cursor.New(bfields)
	m := &MT910{}
	var err error
	var raw string

	if raw, err = c.Expect("20"); err != nil {
		return nil, err
	}
	if m.Field20, err = fields.ParseField20(raw); err != nil {
		return nil, err
	}
	if raw, err = c.Expect("21"); err != nil {
		return nil, err
	}
	if m.Field21, err = fields.ParseField21(raw); err != nil {
		return nil, err
	}
	if raw, err = c.Expect("25"); err != nil {
		return nil, err
	}
	if m.Field25, err = fields.ParseField25(raw); err != nil {
		return nil, err
	}
	if raw, err = c.Expect("32A"); err != nil {
		return nil, err
	}
	if m.Field32A, err = fields.ParseField32A(raw); err != nil {
		return nil, err
	}
	if f, ok, err := tryParty(c, "50", parseOrderingCustomer50); err != nil {
		return nil, err
	} else if ok {
		m.Field50 = f
	}
	if f, ok, err := tryParty(c, "52", parseInstitution52AD); err != nil {
		return nil, err
	} else if ok {
		m.Field52 = f
	}
	if raw, ok, err := c.TryOptional("72"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField72(raw)
		if err != nil {
			return nil, err
		}
		m.Field72 = &f
	}
	if !c.Done() {
		return nil, c.Unexpected("in MT910")
	}
	return m, nil
}

func emitMT910Body(b Body) []block.Field {
	m := b.(*MT910)
	var fs []block.Field
	add := func(line string) { fs = append(fs, toBlockField(line)) }
	add(m.Field20.Emit())
	add(m.Field21.Emit())
	add(m.Field25.Emit())
	add(m.Field32A.Emit())
	addIfPresent(&fs, m.Field50)
	addIfPresent(&fs, m.Field52)
	if m.Field72 != nil {
		add(m.Field72.Emit())
	}
	return fs
}

// MT920 is a request for an account statement/balance report, one
// repetition per requested message type and account.
type MT920 struct {
	Field20      fields.Field20
	Transactions []MT920Request
}

type MT920Request struct {
	Field12 string // message type requested, e.g. "940"
	Field25 fields.Field25
	Field34F []fields.Field34F
}

func (m *MT920) MessageType() string { return "920" }

func parseMT920Body(bfields []block.Field) (Body, error) {
	c := cursor.New(bfields)
	m := &MT920{}
	var err error
	var raw string

	if raw, err = c.Expect("20"); err != nil {
		return nil, err
	}
	if m.Field20, err = fields.ParseField20(raw); err != nil {
		return nil, err
	}

	err = c.RepeatUntil(func(string) bool { return false }, func() error {
		var req MT920Request
		raw, err := c.Expect("12")
		if err != nil {
			return err
		}
		req.Field12 = raw
		raw, err = c.Expect("25")
		if err != nil {
			return err
		}
		if req.Field25, err = fields.ParseField25(raw); err != nil {
			return err
		}
		for c.Peek("34F") {
			raw, _ := c.Expect("34F")
			f, err := fields.ParseField34F(raw)
			if err != nil {
				return err
			}
			req.Field34F = append(req.Field34F, f)
		}
		m.Transactions = append(m.Transactions, req)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(m.Transactions) == 0 {
		return nil, c.Unexpected("in MT920: at least one requested statement is required")
	}
	return m, nil
}

func emitMT920Body(b Body) []block.Field {
	m := b.(*MT920)
	var fs []block.Field
	add := func(line string) { fs = append(fs, toBlockField(line)) }
	add(m.Field20.Emit())
	for _, r := range m.Transactions {
		fs = append(fs, block.Field{Tag: "12", Value: r.Field12})
		add(r.Field25.Emit())
		for _, f := range r.Field34F {
			add(f.Emit())
		}
	}
	return fs
}

// MT935 is a rate change notification: a main reference then 1..10
// repetitions of { (23 xor 25), 30, 37H+ }, then an optional closing
// remark. Grounded directly on spec.md's §4.6 grammar and §4.7's T10/C83
// rules.
type MT935 struct {
	Field20    fields.Field20
	RateChange []MT935RateChange
	Field72    *fields.Field72
}

type MT935RateChange struct {
	Field23 *fields.Field23
	Field25 *fields.Field25
	Field30 fields.Field30
	Field37H []fields.Field37H
}

func (m *MT935) MessageType() string { return "935" }

func parseMT935Body(bfields []block.Field) (Body, error) {
	c := cursor.New(bfields)
	m := &MT935{}
	var err error
	var raw string

	if raw, err = c.Expect("20"); err != nil {
		return nil, err
	}
	if m.Field20, err = fields.ParseField20(raw); err != nil {
		return nil, err
	}

	for c.PeekAnyBase("23", "25") {
		var rc MT935RateChange
		if c.Peek("23") {
			raw, _ := c.Expect("23")
			f, err := fields.ParseField23(raw)
			if err != nil {
				return nil, err
			}
			rc.Field23 = &f
		} else {
			raw, _ := c.Expect("25")
			f, err := fields.ParseField25(raw)
			if err != nil {
				return nil, err
			}
			rc.Field25 = &f
		}
		raw, err := c.Expect("30")
		if err != nil {
			return nil, err
		}
		if rc.Field30, err = fields.ParseField30(raw); err != nil {
			return nil, err
		}
		if !c.Peek("37H") {
			_, err := c.Expect("37H")
			return nil, err
		}
		for c.Peek("37H") {
			raw, _ := c.Expect("37H")
			f, err := fields.ParseField37H(raw)
			if err != nil {
				return nil, err
			}
			rc.Field37H = append(rc.Field37H, f)
		}
		m.RateChange = append(m.RateChange, rc)
		if len(m.RateChange) > 10 {
			break
		}
	}

	if raw, ok, err := c.TryOptional("72"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField72(raw)
		if err != nil {
			return nil, err
		}
		m.Field72 = &f
	}
	if !c.Done() {
		return nil, c.Unexpected("in MT935")
	}
	return m, nil
}

func emitMT935Body(b Body) []block.Field {
	m := b.(*MT935)
	var fs []block.Field
	add := func(line string) { fs = append(fs, toBlockField(line)) }
	add(m.Field20.Emit())
	for _, rc := range m.RateChange {
		if rc.Field23 != nil {
			add(rc.Field23.Emit())
		}
		if rc.Field25 != nil {
			add(rc.Field25.Emit())
		}
		add(rc.Field30.Emit())
		for _, f := range rc.Field37H {
			add(f.Emit())
		}
	}
	if m.Field72 != nil {
		add(m.Field72.Emit())
	}
	return fs
}

// field23FunctionCodes is the Further Identification code list for T26;
// the 2-digit days prefix on field 23 is only meaningful alongside NOTICE.
var field23FunctionCodes = []string{"BASE", "CALL", "COMMERCIAL", "CURRENT", "DEPOSIT", "NOTICE", "PRIME"}

// Validate implements T10 (sequence count in [1,10]), C83 (23 xor 25 per
// sequence), T26 (field 23's function code is one of a fixed list, and its
// optional days prefix is valid only together with NOTICE), and T14 (field
// 37H: a zero rate forbids the negative-sign indicator).
func (m *MT935) Validate(cfg *RuleConfig) ValidationErrors {
	var errs ValidationErrors
	if n := len(m.RateChange); n < 1 || n > 10 {
		errs = append(errs, validate.NewGlobal("T10", validate.ContentRule,
			"MT935 must carry between 1 and 10 rate-change sequences"))
	}
	for i, rc := range m.RateChange {
		if v := validate.ExactlyOneOf("C83", i, "23", rc.Field23 != nil, "25", rc.Field25 != nil); v != nil {
			errs = append(errs, v)
		}
		if rc.Field23 != nil {
			if v := validate.EnumMember("T26", "23", "", i, rc.Field23.Function, field23FunctionCodes); v != nil {
				errs = append(errs, v)
			} else if rc.Field23.Days != nil && rc.Field23.Function != "NOTICE" {
				errs = append(errs, validate.New("T26", validate.ContentRule, i,
					"field 23's days prefix is only permitted with function code NOTICE", "23"))
			}
		}
		for _, f := range rc.Field37H {
			if f.Negative && !f.Rate.IsPositive() {
				errs = append(errs, validate.New("T14", validate.ContentRule, i,
					"field 37H must not carry the negative-sign indicator for a zero rate", "37H"))
			}
		}
	}
	return errs
}

// MT940 is a customer statement message.
type MT940 struct {
	Field20  fields.Field20
	Field21  *fields.Field21
	Field25  fields.Field25
	Field28C fields.Field28C
	Field60F fields.Field60F
	Lines    []MT940StatementLine
	Field62F fields.Field62F
	Field64  *fields.Field64
	Field65  []fields.Field65
	Field86  *fields.Field86
}

type MT940StatementLine struct {
	Field61 fields.Field61
	Field86 *fields.Field86
}

func (m *MT940) MessageType() string { return "940" }

func parseMT940Body(bfields []block.Field) (Body, error) {
	c := cursor.New(bfields)
	m := &MT940{}
	var err error
	var raw string

	if raw, err = c.Expect("20"); err != nil {
		return nil, err
	}
	if m.Field20, err = fields.ParseField20(raw); err != nil {
		return nil, err
	}
	if raw, ok, err := c.TryOptional("21"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField21(raw)
		if err != nil {
			return nil, err
		}
		m.Field21 = &f
	}
	if raw, err = c.Expect("25"); err != nil {
		return nil, err
	}
	if m.Field25, err = fields.ParseField25(raw); err != nil {
		return nil, err
	}
	if raw, err = c.Expect("28C"); err != nil {
		return nil, err
	}
	if m.Field28C, err = fields.ParseField28C(raw); err != nil {
		return nil, err
	}
	if raw, err = c.Expect("60F"); err != nil {
		return nil, err
	}
	if m.Field60F, err = fields.ParseField60F(raw); err != nil {
		return nil, err
	}

	// Each statement line may carry its own 86.
	c.WithDuplicates(true)
	for c.Peek("61") {
		var line MT940StatementLine
		raw, _ := c.Expect("61")
		if line.Field61, err = fields.ParseField61(raw); err != nil {
			return nil, err
		}
		if raw, ok, err := c.TryOptional("86"); err != nil {
			return nil, err
		} else if ok {
			f, err := fields.ParseField86(raw)
			if err != nil {
				return nil, err
			}
			line.Field86 = &f
		}
		m.Lines = append(m.Lines, line)
	}

	if raw, err = c.Expect("62F"); err != nil {
		return nil, err
	}
	if m.Field62F, err = fields.ParseField62F(raw); err != nil {
		return nil, err
	}
	if raw, ok, err := c.TryOptional("64"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField64(raw)
		if err != nil {
			return nil, err
		}
		m.Field64 = &f
	}
	for c.Peek("65") {
		raw, _ := c.Expect("65")
		f, err := fields.ParseField65(raw)
		if err != nil {
			return nil, err
		}
		m.Field65 = append(m.Field65, f)
	}
	if raw, ok, err := c.TryOptional("86"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField86(raw)
		if err != nil {
			return nil, err
		}
		m.Field86 = &f
	}
	if !c.Done() {
		return nil, c.Unexpected("in MT940")
	}
	return m, nil
}

func emitMT940Body(b Body) []block.Field {
	m := b.(*MT940)
	var fs []block.Field
	add := func(line string) { fs = append(fs, toBlockField(line)) }
	add(m.Field20.Emit())
	if m.Field21 != nil {
		add(m.Field21.Emit())
	}
	add(m.Field25.Emit())
	add(m.Field28C.Emit())
	add(m.Field60F.Emit())
	for _, line := range m.Lines {
		add(line.Field61.Emit())
		if line.Field86 != nil {
			add(line.Field86.Emit())
		}
	}
	add(m.Field62F.Emit())
	if m.Field64 != nil {
		add(m.Field64.Emit())
	}
	for _, f := range m.Field65 {
		add(f.Emit())
	}
	if m.Field86 != nil {
		add(m.Field86.Emit())
	}
	return fs
}

// MT941 is a balance report. Grounded directly on spec.md's §4.6 grammar
// and the C27 currency-consistency rule in §4.7.
type MT941 struct {
	Field20  fields.Field20
	Field21  *fields.Field21
	Field25  fields.Field25
	Field28  fields.Field28
	Field13D *fields.Field13D
	Field60F *fields.Field60F
	Field90D *fields.Field90D
	Field90C *fields.Field90C
	Field62F fields.Field62F
	Field64  *fields.Field64
	Field65  []fields.Field65
	Field86  *fields.Field86
}

func (m *MT941) MessageType() string { return "941" }

func parseMT941Body(bfields []block.Field) (Body, error) {
	c := cursor.New(bfields)
	m := &MT941{}
	var err error
	var raw string

	if raw, err = c.Expect("20"); err != nil {
		return nil, err
	}
	if m.Field20, err = fields.ParseField20(raw); err != nil {
		return nil, err
	}
	if raw, ok, err := c.TryOptional("21"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField21(raw)
		if err != nil {
			return nil, err
		}
		m.Field21 = &f
	}
	if raw, err = c.Expect("25"); err != nil {
		return nil, err
	}
	if m.Field25, err = fields.ParseField25(raw); err != nil {
		return nil, err
	}
	if raw, err = c.Expect("28"); err != nil {
		return nil, err
	}
	if m.Field28, err = fields.ParseField28(raw); err != nil {
		return nil, err
	}
	if raw, ok, err := c.TryOptional("13D"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField13D(raw)
		if err != nil {
			return nil, err
		}
		m.Field13D = &f
	}
	if raw, ok, err := c.TryOptional("60F"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField60F(raw)
		if err != nil {
			return nil, err
		}
		m.Field60F = &f
	}
	if raw, ok, err := c.TryOptional("90D"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField90D(raw)
		if err != nil {
			return nil, err
		}
		m.Field90D = &f
	}
	if raw, ok, err := c.TryOptional("90C"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField90C(raw)
		if err != nil {
			return nil, err
		}
		m.Field90C = &f
	}
	if raw, err = c.Expect("62F"); err != nil {
		return nil, err
	}
	if m.Field62F, err = fields.ParseField62F(raw); err != nil {
		return nil, err
	}
	if raw, ok, err := c.TryOptional("64"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField64(raw)
		if err != nil {
			return nil, err
		}
		m.Field64 = &f
	}
	for c.Peek("65") {
		raw, _ := c.Expect("65")
		f, err := fields.ParseField65(raw)
		if err != nil {
			return nil, err
		}
		m.Field65 = append(m.Field65, f)
	}
	if raw, ok, err := c.TryOptional("86"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField86(raw)
		if err != nil {
			return nil, err
		}
		m.Field86 = &f
	}
	if !c.Done() {
		return nil, c.Unexpected("in MT941")
	}
	return m, nil
}

func emitMT941Body(b Body) []block.Field {
	m := b.(*MT941)
	var fs []block.Field
	add := func(line string) { fs = append(fs, toBlockField(line)) }
	add(m.Field20.Emit())
	if m.Field21 != nil {
		add(m.Field21.Emit())
	}
	add(m.Field25.Emit())
	add(m.Field28.Emit())
	if m.Field13D != nil {
		add(m.Field13D.Emit())
	}
	if m.Field60F != nil {
		add(m.Field60F.Emit())
	}
	if m.Field90D != nil {
		add(m.Field90D.Emit())
	}
	if m.Field90C != nil {
		add(m.Field90C.Emit())
	}
	add(m.Field62F.Emit())
	if m.Field64 != nil {
		add(m.Field64.Emit())
	}
	for _, f := range m.Field65 {
		add(f.Emit())
	}
	if m.Field86 != nil {
		add(m.Field86.Emit())
	}
	return fs
}

// Validate implements C27: the first two characters of the currency in
// every balance/turnover field present must match field 62F's currency.
func (m *MT941) Validate(cfg *RuleConfig) ValidationErrors {
	others := make(map[string]string)
	if m.Field60F != nil {
		others["60F"] = m.Field60F.Currency
	}
	if m.Field90D != nil {
		others["90D"] = m.Field90D.Currency
	}
	if m.Field90C != nil {
		others["90C"] = m.Field90C.Currency
	}
	if m.Field64 != nil {
		others["64"] = m.Field64.Currency
	}
	for i, f := range m.Field65 {
		others[fieldTagIndexed("65", i)] = f.Currency
	}
	violations := validate.CurrencyConsistency("C27", m.Field62F.Currency, others)
	var errs ValidationErrors
	errs = append(errs, violations...)
	return errs
}

func fieldTagIndexed(tag string, i int) string {
	if i == 0 {
		return tag
	}
	return tag + "#" + strconv.Itoa(i)
}

// MT942 is an interim transaction report, the same shape as MT940 but
// without the mandatory closing balance (62F is replaced by the
// mandatory floor-limit/statement pair and optional 62F-equivalent is
// not required between reports).
type MT942 struct {
	Field20  fields.Field20
	Field21  *fields.Field21
	Field25  fields.Field25
	Field28C fields.Field28C
	Field34F []fields.Field34F
	Lines    []MT940StatementLine
	Field90D *fields.Field90D
	Field90C *fields.Field90C
	Field86  *fields.Field86
}

func (m *MT942) MessageType() string { return "942" }

func parseMT942Body(bfields []block.Field) (Body, error) {
	c := cursor.New(bfields)
	m := &MT942{}
	var err error
	var raw string

	if raw, err = c.Expect("20"); err != nil {
		return nil, err
	}
	if m.Field20, err = fields.ParseField20(raw); err != nil {
		return nil, err
	}
	if raw, ok, err := c.TryOptional("21"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField21(raw)
		if err != nil {
			return nil, err
		}
		m.Field21 = &f
	}
	if raw, err = c.Expect("25"); err != nil {
		return nil, err
	}
	if m.Field25, err = fields.ParseField25(raw); err != nil {
		return nil, err
	}
	if raw, err = c.Expect("28C"); err != nil {
		return nil, err
	}
	if m.Field28C, err = fields.ParseField28C(raw); err != nil {
		return nil, err
	}
	if !c.Peek("34F") {
		_, err := c.Expect("34F")
		return nil, err
	}
	for c.Peek("34F") {
		raw, _ := c.Expect("34F")
		f, err := fields.ParseField34F(raw)
		if err != nil {
			return nil, err
		}
		m.Field34F = append(m.Field34F, f)
	}
	// Each statement line may carry its own 86.
	c.WithDuplicates(true)
	for c.Peek("61") {
		var line MT940StatementLine
		raw, _ := c.Expect("61")
		if line.Field61, err = fields.ParseField61(raw); err != nil {
			return nil, err
		}
		if raw, ok, err := c.TryOptional("86"); err != nil {
			return nil, err
		} else if ok {
			f, err := fields.ParseField86(raw)
			if err != nil {
				return nil, err
			}
			line.Field86 = &f
		}
		m.Lines = append(m.Lines, line)
	}
	if raw, ok, err := c.TryOptional("90D"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField90D(raw)
		if err != nil {
			return nil, err
		}
		m.Field90D = &f
	}
	if raw, ok, err := c.TryOptional("90C"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField90C(raw)
		if err != nil {
			return nil, err
		}
		m.Field90C = &f
	}
	if raw, ok, err := c.TryOptional("86"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField86(raw)
		if err != nil {
			return nil, err
		}
		m.Field86 = &f
	}
	if !c.Done() {
		return nil, c.Unexpected("in MT942")
	}
	return m, nil
}

func emitMT942Body(b Body) []block.Field {
	m := b.(*MT942)
	var fs []block.Field
	add := func(line string) { fs = append(fs, toBlockField(line)) }
	add(m.Field20.Emit())
	if m.Field21 != nil {
		add(m.Field21.Emit())
	}
	add(m.Field25.Emit())
	add(m.Field28C.Emit())
	for _, f := range m.Field34F {
		add(f.Emit())
	}
	for _, line := range m.Lines {
		add(line.Field61.Emit())
		if line.Field86 != nil {
			add(line.Field86.Emit())
		}
	}
	if m.Field90D != nil {
		add(m.Field90D.Emit())
	}
	if m.Field90C != nil {
		add(m.Field90C.Emit())
	}
	if m.Field86 != nil {
		add(m.Field86.Emit())
	}
	return fs
}

// MT950 is a statement message, the bank-copy counterpart of MT940
// without free-text account owner narrative per line.
type MT950 struct {
	Field20  fields.Field20
	Field25  fields.Field25
	Field28C fields.Field28C
	Field60F fields.Field60F
	Field61  []fields.Field61
	Field62F fields.Field62F
	Field64  *fields.Field64
}

func (m *MT950) MessageType() string { return "950" }

func parseMT950Body(bfields []block.Field) (Body, error) {
	c := cursor.New(bfields)
	m := &MT950{}
	var err error
	var raw string

	if raw, err = c.Expect("20"); err != nil {
		return nil, err
	}
	if m.Field20, err = fields.ParseField20(raw); err != nil {
		return nil, err
	}
	if raw, err = c.Expect("25"); err != nil {
		return nil, err
	}
	if m.Field25, err = fields.ParseField25(raw); err != nil {
		return nil, err
	}
	if raw, err = c.Expect("28C"); err != nil {
		return nil, err
	}
	if m.Field28C, err = fields.ParseField28C(raw); err != nil {
		return nil, err
	}
	if raw, err = c.Expect("60F"); err != nil {
		return nil, err
	}
	if m.Field60F, err = fields.ParseField60F(raw); err != nil {
		return nil, err
	}
	for c.Peek("61") {
		raw, _ := c.Expect("61")
		f, err := fields.ParseField61(raw)
		if err != nil {
			return nil, err
		}
		m.Field61 = append(m.Field61, f)
	}
	if raw, err = c.Expect("62F"); err != nil {
		return nil, err
	}
	if m.Field62F, err = fields.ParseField62F(raw); err != nil {
		return nil, err
	}
	if raw, ok, err := c.TryOptional("64"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField64(raw)
		if err != nil {
			return nil, err
		}
		m.Field64 = &f
	}
	if !c.Done() {
		return nil, c.Unexpected("in MT950")
	}
	return m, nil
}

func emitMT950Body(b Body) []block.Field {
	m := b.(*MT950)
	var fs []block.Field
	add := func(line string) { fs = append(fs, toBlockField(line)) }
	add(m.Field20.Emit())
	add(m.Field25.Emit())
	add(m.Field28C.Emit())
	add(m.Field60F.Emit())
	for _, f := range m.Field61 {
		add(f.Emit())
	}
	add(m.Field62F.Emit())
	if m.Field64 != nil {
		add(m.Field64.Emit())
	}
	return fs
}
