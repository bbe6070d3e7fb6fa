// Package validate implements the SR2025 network-validation layer (C7):
// the conditional rules (Cn) and content/format rules (Tn) that sit above
// the field codec, expressed as reusable checks shared across message
// families. Message-specific rule wiring lives with each assembler in
// package swiftmt, which calls into these helpers and assembles the
// results into a stable ValidationErrors list.
package validate

import (
	"fmt"
	"sort"
)

// Kind classifies a rule by the taxonomy spec.md assigns it.
type Kind int

const (
	FormatRule Kind = iota
	ContentRule
	RelationRule
	BusinessRule
)

func (k Kind) String() string {
	switch k {
	case FormatRule:
		return "FormatRule"
	case ContentRule:
		return "ContentRule"
	case RelationRule:
		return "RelationRule"
	case BusinessRule:
		return "BusinessRule"
	default:
		return "UnknownRule"
	}
}

// Error is one SR rule violation: its SWIFT code, kind, the field tag(s)
// involved, a sequence index for repetitive blocks (-1 when not
// applicable), and a short display message.
type Error struct {
	ID       string
	Kind     Kind
	Involved []string
	SeqIndex int
	Message  string
}

func (e *Error) Error() string {
	if e.SeqIndex >= 0 {
		return fmt.Sprintf("%s (%s) sequence %d, fields %v: %s", e.ID, e.Kind, e.SeqIndex, e.Involved, e.Message)
	}
	return fmt.Sprintf("%s (%s) fields %v: %s", e.ID, e.Kind, e.Involved, e.Message)
}

// Errors is an ordered, stable-under-same-input violation list.
type Errors []*Error

func (e Errors) Error() string {
	if len(e) == 0 {
		return "no validation errors"
	}
	return fmt.Sprintf("%d validation error(s), first: %s", len(e), e[0].Error())
}

// New builds a sequence-scoped relation/business rule violation (C-series).
func New(id string, kind Kind, seqIndex int, message string, involved ...string) *Error {
	return &Error{ID: id, Kind: kind, Involved: involved, SeqIndex: seqIndex, Message: message}
}

// NewGlobal builds a message-scoped violation with no sequence index.
func NewGlobal(id string, kind Kind, message string, involved ...string) *Error {
	return New(id, kind, -1, message, involved...)
}

// RequireTogether enforces a C-series "if A present then B must be
// present" relation rule (e.g. C81: 56a present implies 57a mandatory).
func RequireTogether(id string, seqIndex int, aTag string, aPresent bool, bTag string, bPresent bool) *Error {
	if aPresent && !bPresent {
		return New(id, RelationRule, seqIndex,
			fmt.Sprintf("field %s is present but field %s is missing", aTag, bTag), aTag, bTag)
	}
	return nil
}

// ExactlyOneOf enforces a C-series exclusive-or relation between two
// optional fields in the same sequence (e.g. C83: exactly one of 23/25).
func ExactlyOneOf(id string, seqIndex int, aTag string, aPresent bool, bTag string, bPresent bool) *Error {
	if aPresent == bPresent {
		state := "neither is present"
		if aPresent {
			state = "both are present"
		}
		return New(id, RelationRule, seqIndex,
			fmt.Sprintf("exactly one of %s/%s is required, but %s", aTag, bTag, state), aTag, bTag)
	}
	return nil
}

// EnumMember enforces a T-series content rule restricting a field to a
// fixed code list.
func EnumMember(id, tag, seqIndexTag string, seqIndex int, value string, allowed []string) *Error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return New(id, ContentRule, seqIndex,
		fmt.Sprintf("field %s value %q is not one of %v", tag, value, allowed), tag)
}

// CurrencyConsistency enforces the MT9xx rule that the first two characters
// of every currency-bearing field's currency in a statement match those of
// the base currency (e.g. C27).
func CurrencyConsistency(id string, base string, others map[string]string) []*Error {
	tags := make([]string, 0, len(others))
	for tag := range others {
		tags = append(tags, tag)
	}
	sort.Strings(tags)

	prefix := func(c string) string {
		if len(c) < 2 {
			return c
		}
		return c[:2]
	}
	var errs []*Error
	for _, tag := range tags {
		if cur := others[tag]; prefix(cur) != prefix(base) {
			errs = append(errs, NewGlobal(id, BusinessRule,
				fmt.Sprintf("field %s currency %q does not match statement currency %q", tag, cur, base), tag))
		}
	}
	return errs
}
