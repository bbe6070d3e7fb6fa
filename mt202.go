package swiftmt

import (
	"fmt"

	"github.com/deltran/swiftmt/fields"
	"github.com/deltran/swiftmt/internal/block"
	"github.com/deltran/swiftmt/internal/cursor"
	"github.com/deltran/swiftmt/internal/validate"
)

func init() {
	registerMessageType("202", parseMT202Body, emitMT202Body)
	registerMessageType("202COV", parseMT202Body, emitMT202Body)
	registerMessageType("203", parseMT203Body, emitMT203Body)
	registerMessageType("205", parseMT205Body, emitMT205Body)
}

// MT202 is a general financial institution transfer. SequenceB is present
// only for the COV (cover payment) flavor, carrying the underlying
// customer credit transfer's ordering/beneficiary details; this mirrors
// how the Rust reference implementation models MT202/MT202COV as one
// message type with an optional second sequence rather than two distinct
// structs, since every field in Sequence A is identical between the two.
type MT202 struct {
	Field20  fields.Field20
	Field21  fields.Field21
	Field13C []fields.Field13C
	Field32A fields.Field32A
	Field52  fields.Field // 52A|D
	Field53  fields.Field // 53A|B|D
	Field54  fields.Field // 54A|B|D
	Field56  fields.Field // 56A|D
	Field57  fields.Field // 57A|B|D
	Field58  fields.Field // 58A|D
	Field72  *fields.Field72

	SequenceB *MT202SequenceB
}

// MT202SequenceB carries the underlying customer credit transfer details
// of a cover payment (MT202COV), fields 50-59 as in MT103's Sequence A.
type MT202SequenceB struct {
	Field50 fields.Field // 50A|F|K, ordering customer
	Field52 fields.Field // 52A|D, ordering institution
	Field56 fields.Field // 56A|D, intermediary institution
	Field57 fields.Field // 57A|B|C|D, account with institution
	Field59 fields.Field // 59|A|F, beneficiary customer
	Field70 *fields.Field70
	Field72 *fields.Field72
	Field33B *fields.Field33B
}

func (m *MT202) MessageType() string {
	if m.IsCoverMessage() {
		return "202COV"
	}
	return "202"
}

// IsCoverMessage reports whether this message carries underlying customer
// details, i.e. whether it is a COV message.
func (m *MT202) IsCoverMessage() bool {
	return m.SequenceB != nil && (m.SequenceB.Field50 != nil || m.SequenceB.Field59 != nil)
}

func parseMT202Body(bfields []block.Field) (Body, error) {
	c := cursor.New(bfields)
	m := &MT202{}

	var err error
	raw, err := c.Expect("20")
	if err != nil {
		return nil, err
	}
	if m.Field20, err = fields.ParseField20(raw); err != nil {
		return nil, err
	}

	raw, err = c.Expect("21")
	if err != nil {
		return nil, err
	}
	if m.Field21, err = fields.ParseField21(raw); err != nil {
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

	raw, err = c.Expect("32A")
	if err != nil {
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
	if f, ok, err := tryParty(c, "56", parseInstitution56AD); err != nil {
		return nil, err
	} else if ok {
		m.Field56 = f
	}
	if f, ok, err := tryParty(c, "57", parseInstitution57ABD); err != nil {
		return nil, err
	} else if ok {
		m.Field57 = f
	}
	letter58, raw58, err := c.ExpectVariant("58")
	if err != nil {
		return nil, err
	}
	if m.Field58, err = parseInstitution58(letter58, raw58); err != nil {
		return nil, err
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

	// Sequence B (cover payment underlying transfer) only appears after a
	// 50a starts it; its own 72 shares a tag with Sequence A's 72, already
	// consumed above when present, so a second sighting here always
	// belongs to Sequence B.
	if c.PeekAnyBase("50") {
		seqB := &MT202SequenceB{}
		c.WithDuplicates(true)
		letter, raw, err := c.ExpectVariant("50")
		if err != nil {
			return nil, err
		}
		if seqB.Field50, err = parseOrderingCustomer50(letter, raw); err != nil {
			return nil, err
		}
		if f, ok, err := tryParty(c, "52", parseInstitution52AD); err != nil {
			return nil, err
		} else if ok {
			seqB.Field52 = f
		}
		if f, ok, err := tryParty(c, "56", parseInstitution56AD); err != nil {
			return nil, err
		} else if ok {
			seqB.Field56 = f
		}
		if f, ok, err := tryParty(c, "57", parseInstitution57); err != nil {
			return nil, err
		} else if ok {
			seqB.Field57 = f
		}
		if raw, ok, err := c.TryOptional("33B"); err != nil {
			return nil, err
		} else if ok {
			f, err := fields.ParseField33B(raw)
			if err != nil {
				return nil, err
			}
			seqB.Field33B = &f
		}
		if c.PeekAnyBase("59") {
			letter, raw, err := c.ExpectVariant("59")
			if err != nil {
				return nil, err
			}
			if seqB.Field59, err = parseBeneficiary59(letter, raw); err != nil {
				return nil, err
			}
		}
		if raw, ok, err := c.TryOptional("70"); err != nil {
			return nil, err
		} else if ok {
			f, err := fields.ParseField70(raw)
			if err != nil {
				return nil, err
			}
			seqB.Field70 = &f
		}
		if raw, ok, err := c.TryOptional("72"); err != nil {
			return nil, err
		} else if ok {
			f, err := fields.ParseField72(raw)
			if err != nil {
				return nil, err
			}
			seqB.Field72 = &f
		}
		m.SequenceB = seqB
	}

	if !c.Done() {
		return nil, c.Unexpected("in MT202")
	}
	return m, nil
}

func emitMT202Body(b Body) []block.Field {
	m := b.(*MT202)
	var fs []block.Field
	add := func(line string) { fs = append(fs, toBlockField(line)) }

	add(m.Field20.Emit())
	add(m.Field21.Emit())
	for _, f := range m.Field13C {
		add(f.Emit())
	}
	add(m.Field32A.Emit())
	addIfPresent(&fs, m.Field52)
	addIfPresent(&fs, m.Field53)
	addIfPresent(&fs, m.Field54)
	addIfPresent(&fs, m.Field56)
	addIfPresent(&fs, m.Field57)
	addIfPresent(&fs, m.Field58)
	if m.Field72 != nil {
		add(m.Field72.Emit())
	}
	if m.SequenceB != nil {
		addIfPresent(&fs, m.SequenceB.Field50)
		addIfPresent(&fs, m.SequenceB.Field52)
		addIfPresent(&fs, m.SequenceB.Field56)
		addIfPresent(&fs, m.SequenceB.Field57)
		if m.SequenceB.Field33B != nil {
			add(m.SequenceB.Field33B.Emit())
		}
		addIfPresent(&fs, m.SequenceB.Field59)
		if m.SequenceB.Field70 != nil {
			add(m.SequenceB.Field70.Emit())
		}
		if m.SequenceB.Field72 != nil {
			add(m.SequenceB.Field72.Emit())
		}
	}
	return fs
}

// Validate implements the C81/C68 relation rules: if field 56a is present
// in a sequence, field 57a becomes mandatory in that same sequence.
func (m *MT202) Validate(cfg *RuleConfig) ValidationErrors {
	var errs ValidationErrors
	if v := validate.RequireTogether("C81", -1, "56a", m.Field56 != nil, "57a", m.Field57 != nil); v != nil {
		errs = append(errs, v)
	}
	if m.SequenceB != nil {
		if v := validate.RequireTogether("C68", 1, "56a", m.SequenceB.Field56 != nil, "57a", m.SequenceB.Field57 != nil); v != nil {
			errs = append(errs, v)
		}
	}
	return errs
}

// parseInstitution56AD restricts field 56 to A/D (no bare-account option C),
// the subset MT202 permits.
func parseInstitution56AD(letter, raw string) (fields.Field, error) {
	switch letter {
	case "A":
		return fields.ParseField56A(raw)
	case "D":
		return fields.ParseField56D(raw)
	default:
		return nil, fmt.Errorf("field 56%s is not a recognized option for this message type", letter)
	}
}

// parseInstitution57ABD restricts field 57 to A/B/D (no bare-account
// option C), the subset MT202/MT205 permit.
func parseInstitution57ABD(letter, raw string) (fields.Field, error) {
	switch letter {
	case "A":
		return fields.ParseField57A(raw)
	case "B":
		return fields.ParseField57B(raw)
	case "D":
		return fields.ParseField57D(raw)
	default:
		return nil, fmt.Errorf("field 57%s is not a recognized option for this message type", letter)
	}
}

// MT203 is a general financial institution transfer for multiple ordered
// customers, same Sequence A shape as MT202 repeated per beneficiary
// institution, modeled here as a thin wrapper reusing MT202's fields.
type MT203 struct {
	Field20      fields.Field20
	Transactions []MT203Transaction
}

type MT203Transaction struct {
	Field21  fields.Field21
	Field32A fields.Field32A
	Field57  fields.Field // 57A|B|D
	Field58  fields.Field // 58A|D
	Field72  *fields.Field72
}

func (m *MT203) MessageType() string { return "203" }

func parseMT203Body(bfields []block.Field) (Body, error) {
	c := cursor.New(bfields)
	m := &MT203{}

	raw, err := c.Expect("20")
	if err != nil {
		return nil, err
	}
	if m.Field20, err = fields.ParseField20(raw); err != nil {
		return nil, err
	}

	err = c.RepeatUntil(func(tag string) bool { return false }, func() error {
		var t MT203Transaction
		raw, err := c.Expect("21")
		if err != nil {
			return err
		}
		if t.Field21, err = fields.ParseField21(raw); err != nil {
			return err
		}
		raw, err = c.Expect("32A")
		if err != nil {
			return err
		}
		if t.Field32A, err = fields.ParseField32A(raw); err != nil {
			return err
		}
		if f, ok, err := tryParty(c, "57", parseInstitution57ABD); err != nil {
			return err
		} else if ok {
			t.Field57 = f
		}
		if f, ok, err := tryParty(c, "58", parseInstitution58); err != nil {
			return err
		} else if ok {
			t.Field58 = f
		}
		if raw, ok, err := c.TryOptional("72"); err != nil {
			return err
		} else if ok {
			f, err := fields.ParseField72(raw)
			if err != nil {
				return err
			}
			t.Field72 = &f
		}
		m.Transactions = append(m.Transactions, t)
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(m.Transactions) == 0 {
		return nil, c.Unexpected("in MT203: at least one repetition of 21/32A is required")
	}
	return m, nil
}

func emitMT203Body(b Body) []block.Field {
	m := b.(*MT203)
	var fs []block.Field
	add := func(line string) { fs = append(fs, toBlockField(line)) }
	add(m.Field20.Emit())
	for _, t := range m.Transactions {
		add(t.Field21.Emit())
		add(t.Field32A.Emit())
		addIfPresent(&fs, t.Field57)
		addIfPresent(&fs, t.Field58)
		if t.Field72 != nil {
			add(t.Field72.Emit())
		}
	}
	return fs
}

// MT205 is a financial institution transfer execution, the receiver-side
// counterpart of MT202 with the same Sequence A field set.
type MT205 struct {
	Field20  fields.Field20
	Field21  fields.Field21
	Field13C []fields.Field13C
	Field32A fields.Field32A
	Field53  fields.Field // 53A|B|D
	Field56  fields.Field // 56A|D
	Field57  fields.Field // 57A|B|D
	Field58  fields.Field // 58A|D
	Field72  *fields.Field72
}

func (m *MT205) MessageType() string { return "205" }

func parseMT205Body(bfields []block.Field) (Body, error) {
	c := cursor.New(bfields)
	m := &MT205{}

	raw, err := c.Expect("20")
	if err != nil {
		return nil, err
	}
	if m.Field20, err = fields.ParseField20(raw); err != nil {
		return nil, err
	}
	raw, err = c.Expect("21")
	if err != nil {
		return nil, err
	}
	if m.Field21, err = fields.ParseField21(raw); err != nil {
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
	raw, err = c.Expect("32A")
	if err != nil {
		return nil, err
	}
	if m.Field32A, err = fields.ParseField32A(raw); err != nil {
		return nil, err
	}
	if f, ok, err := tryParty(c, "53", parseInstitution53); err != nil {
		return nil, err
	} else if ok {
		m.Field53 = f
	}
	if f, ok, err := tryParty(c, "56", parseInstitution56AD); err != nil {
		return nil, err
	} else if ok {
		m.Field56 = f
	}
	if f, ok, err := tryParty(c, "57", parseInstitution57ABD); err != nil {
		return nil, err
	} else if ok {
		m.Field57 = f
	}
	if f, ok, err := tryParty(c, "58", parseInstitution58); err != nil {
		return nil, err
	} else if ok {
		m.Field58 = f
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
		return nil, c.Unexpected("in MT205")
	}
	return m, nil
}

func emitMT205Body(b Body) []block.Field {
	m := b.(*MT205)
	var fs []block.Field
	add := func(line string) { fs = append(fs, toBlockField(line)) }
	add(m.Field20.Emit())
	add(m.Field21.Emit())
	for _, f := range m.Field13C {
		add(f.Emit())
	}
	add(m.Field32A.Emit())
	addIfPresent(&fs, m.Field53)
	addIfPresent(&fs, m.Field56)
	addIfPresent(&fs, m.Field57)
	addIfPresent(&fs, m.Field58)
	if m.Field72 != nil {
		add(m.Field72.Emit())
	}
	return fs
}
