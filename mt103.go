package swiftmt

import (
	"github.com/deltran/swiftmt/fields"
	"github.com/deltran/swiftmt/internal/block"
	"github.com/deltran/swiftmt/internal/cursor"
	"github.com/deltran/swiftmt/internal/validate"
)

func init() {
	registerMessageType("103", parseMT103Body, emitMT103Body)
	registerMessageType("103STP", parseMT103VariantBody("STP"), emitMT103Body)
	registerMessageType("103REMIT", parseMT103VariantBody("REMIT"), emitMT103Body)
}

func parseMT103VariantBody(variant string) bodyParser {
	return func(bfields []block.Field) (Body, error) {
		body, err := parseMT103Body(bfields)
		if err != nil {
			return nil, err
		}
		body.(*MT103).Variant = variant
		return body, nil
	}
}

// MT103 is a single customer credit transfer. Variant distinguishes the
// base message from its STP and REMIT flavors, which share one field set
// and differ only in which option letters and trailing fields the
// validator allows — grounded in how the SWIFT User Handbook documents
// 103STP/103REMIT as constrained profiles of 103, not separate grammars.
type MT103 struct {
	Variant string // "", "STP", "REMIT"

	Field20  fields.Field20
	Field13C []fields.Field13C
	Field23B fields.Field23B
	Field23E []fields.Field23E
	Field26T *fields.Field26T
	Field32A fields.Field32A
	Field33B *fields.Field33B
	Field36  *fields.Field36
	Field50  fields.Field // 50A|F|K
	Field51A *fields.Field51A
	Field52  fields.Field // 52A|D
	Field53  fields.Field // 53A|B|D
	Field54  fields.Field // 54A|B|D
	Field55  fields.Field // 55A|B|D
	Field56  fields.Field // 56A|C|D
	Field57  fields.Field // 57A|B|C|D
	Field59  fields.Field // 59|A|F
	Field70  *fields.Field70
	Field71A fields.Field71A
	Field71F []fields.Field71F
	Field71G *fields.Field71G
	Field72  *fields.Field72
	Field77B *fields.Field77B
	Field77T *fields.Field77T // REMIT only
}

func (m *MT103) MessageType() string {
	if m.Variant == "" {
		return "103"
	}
	return "103" + m.Variant
}

func parseMT103Body(bfields []block.Field) (Body, error) {
	c := cursor.New(bfields)
	m := &MT103{}

	raw, err := c.Expect("20")
	if err != nil {
		return nil, err
	}
	if m.Field20, err = fields.ParseField20(raw); err != nil {
		return nil, err
	}

	for c.Peek("13C") {
		raw, _ = c.Expect("13C")
		f, err := fields.ParseField13C(raw)
		if err != nil {
			return nil, err
		}
		m.Field13C = append(m.Field13C, f)
	}

	raw, err = c.Expect("23B")
	if err != nil {
		return nil, err
	}
	if m.Field23B, err = fields.ParseField23B(raw); err != nil {
		return nil, err
	}

	for c.Peek("23E") {
		raw, _ = c.Expect("23E")
		f, err := fields.ParseField23E(raw)
		if err != nil {
			return nil, err
		}
		m.Field23E = append(m.Field23E, f)
	}

	if raw, ok, err := c.TryOptional("26T"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField26T(raw)
		if err != nil {
			return nil, err
		}
		m.Field26T = &f
	}

	raw, err = c.Expect("32A")
	if err != nil {
		return nil, err
	}
	if m.Field32A, err = fields.ParseField32A(raw); err != nil {
		return nil, err
	}

	if raw, ok, err := c.TryOptional("33B"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField33B(raw)
		if err != nil {
			return nil, err
		}
		m.Field33B = &f
	}

	if raw, ok, err := c.TryOptional("36"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField36(raw)
		if err != nil {
			return nil, err
		}
		m.Field36 = &f
	}

	letter, raw, err := c.ExpectVariant("50")
	if err != nil {
		return nil, err
	}
	if m.Field50, err = parseOrderingCustomer50(letter, raw); err != nil {
		return nil, err
	}

	if raw, ok, err := c.TryOptional("51A"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField51A(raw)
		if err != nil {
			return nil, err
		}
		m.Field51A = &f
	}

	if f, ok, err := tryParty(c, "52", parseInstitution52AD); err != nil {
		return nil, err
	} else if ok {
		m.Field52 = f
	}
	if f, ok, err := tryParty(c, "53", parseInstitution53); err != nil {
		return nil, err
	} else if ok {
		m.Field53 = f
	}
	if f, ok, err := tryParty(c, "54", parseInstitution54); err != nil {
		return nil, err
	} else if ok {
		m.Field54 = f
	}
	if f, ok, err := tryParty(c, "55", parseInstitution55); err != nil {
		return nil, err
	} else if ok {
		m.Field55 = f
	}
	if f, ok, err := tryParty(c, "56", parseInstitution56); err != nil {
		return nil, err
	} else if ok {
		m.Field56 = f
	}
	if f, ok, err := tryParty(c, "57", parseInstitution57); err != nil {
		return nil, err
	} else if ok {
		m.Field57 = f
	}

	letter, raw, err = c.ExpectVariant("59")
	if err != nil {
		return nil, err
	}
	if m.Field59, err = parseBeneficiary59(letter, raw); err != nil {
		return nil, err
	}

	if raw, ok, err := c.TryOptional("70"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField70(raw)
		if err != nil {
			return nil, err
		}
		m.Field70 = &f
	}

	raw, err = c.Expect("71A")
	if err != nil {
		return nil, err
	}
	if m.Field71A, err = fields.ParseField71A(raw); err != nil {
		return nil, err
	}

	for c.Peek("71F") {
		raw, _ = c.Expect("71F")
		f, err := fields.ParseField71F(raw)
		if err != nil {
			return nil, err
		}
		m.Field71F = append(m.Field71F, f)
	}

	if raw, ok, err := c.TryOptional("71G"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField71G(raw)
		if err != nil {
			return nil, err
		}
		m.Field71G = &f
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

	if raw, ok, err := c.TryOptional("77B"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField77B(raw)
		if err != nil {
			return nil, err
		}
		m.Field77B = &f
	}

	if raw, ok, err := c.TryOptional("77T"); err != nil {
		return nil, err
	} else if ok {
		f, err := fields.ParseField77T(raw)
		if err != nil {
			return nil, err
		}
		m.Field77T = &f
	}

	if !c.Done() {
		return nil, c.Unexpected("in MT103")
	}
	return m, nil
}

func emitMT103Body(b Body) []block.Field {
	m := b.(*MT103)
	var fs []block.Field
	add := func(line string) {
		fs = append(fs, toBlockField(line))
	}
	add(m.Field20.Emit())
	for _, f := range m.Field13C {
		add(f.Emit())
	}
	add(m.Field23B.Emit())
	for _, f := range m.Field23E {
		add(f.Emit())
	}
	if m.Field26T != nil {
		add(m.Field26T.Emit())
	}
	add(m.Field32A.Emit())
	if m.Field33B != nil {
		add(m.Field33B.Emit())
	}
	if m.Field36 != nil {
		add(m.Field36.Emit())
	}
	add(m.Field50.Emit())
	if m.Field51A != nil {
		add(m.Field51A.Emit())
	}
	addIfPresent(&fs, m.Field52)
	addIfPresent(&fs, m.Field53)
	addIfPresent(&fs, m.Field54)
	addIfPresent(&fs, m.Field55)
	addIfPresent(&fs, m.Field56)
	addIfPresent(&fs, m.Field57)
	add(m.Field59.Emit())
	if m.Field70 != nil {
		add(m.Field70.Emit())
	}
	add(m.Field71A.Emit())
	for _, f := range m.Field71F {
		add(f.Emit())
	}
	if m.Field71G != nil {
		add(m.Field71G.Emit())
	}
	if m.Field72 != nil {
		add(m.Field72.Emit())
	}
	if m.Field77B != nil {
		add(m.Field77B.Emit())
	}
	if m.Field77T != nil {
		add(m.Field77T.Emit())
	}
	return fs
}

// addIfPresent appends f's rendered line when f is non-nil, working around
// the typed-nil problem of storing concrete *FieldXX values in a
// fields.Field interface slot.
func addIfPresent(fs *[]block.Field, f fields.Field) {
	if f == nil {
		return
	}
	*fs = append(*fs, toBlockField(f.Emit()))
}

// toBlockField splits a rendered ":TAG:value" line (possibly multi-line)
// back into a block.Field, the inverse of how the tokenizer read it.
func toBlockField(line string) block.Field {
	if len(line) < 1 || line[0] != ':' {
		return block.Field{Tag: "", Value: line}
	}
	rest := line[1:]
	idx := 0
	for idx < len(rest) && rest[idx] != ':' {
		idx++
	}
	return block.Field{Tag: rest[:idx], Value: rest[idx+1:]}
}

// Validate implements Validator for MT103: field 32A's content rules
// (C08/C03) are already enforced by the codec at parse time; Validate adds
// the amount-positivity and STP/REMIT option-letter constraints that
// depend on more than one field.
func (m *MT103) Validate(cfg *RuleConfig) ValidationErrors {
	var errs ValidationErrors

	if !m.Field32A.Amount.IsPositive() {
		errs = append(errs, validate.NewGlobal("32A-POSITIVE", validate.BusinessRule,
			"settlement amount must be strictly positive", "32A"))
	}

	if m.Variant == "STP" {
		if _, is56D := m.Field56.(fields.Field56D); is56D {
			errs = append(errs, validate.NewGlobal("STP-56D", validate.BusinessRule,
				"MT103STP does not permit option D (name/address) for field 56, only A or C", "56D"))
		}
		if _, is57D := m.Field57.(fields.Field57D); is57D {
			errs = append(errs, validate.NewGlobal("STP-57D", validate.BusinessRule,
				"MT103STP does not permit option D (name/address) for field 57", "57D"))
		}
		if _, is59F := m.Field59.(fields.Field59F); is59F {
			errs = append(errs, validate.NewGlobal("STP-59F", validate.BusinessRule,
				"MT103STP does not permit the structured option F for field 59", "59F"))
		}
	}

	for _, e := range m.Field23E {
		allowed := []string{"SDVA", "INTC", "REPA", "CORT", "HOLD", "CHQB", "PHOB", "TELB", "PHON"}
		if v := validate.EnumMember("T26", "23E", "", -1, e.Code, allowed); v != nil {
			errs = append(errs, v)
		}
	}

	return errs
}
