// Package cursor implements the Block 4 pointer parser (C5): a position-
// tracking reader over the ordered (tag, value) field list produced by
// package block, which drives field consumption in the exact order an
// assembler expects.
package cursor

import (
	"fmt"

	"github.com/deltran/swiftmt/internal/block"
)

// Kind enumerates cursor-level parse failures.
type Kind int

const (
	MissingRequiredField Kind = iota
	UnexpectedField
)

// Error is a cursor-level failure pinned to a position in the field list.
type Error struct {
	Kind    Kind
	Tag     string // tag the cursor expected (or the base tag for a variant)
	Found   string // tag actually present at this position, "" at end-of-block
	Offset  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s (offset %d)", e.Message, e.Offset)
}

// Cursor walks block.Field records strictly in input order. Optional fields
// are tested only at the current position — never found by scanning ahead.
type Cursor struct {
	fields      []block.Field
	pos         int
	seen        map[string]bool // tags already consumed, for duplicate detection
	duplicatesOK bool
}

// New builds a cursor over fields.
func New(fields []block.Field) *Cursor {
	return &Cursor{fields: fields, seen: make(map[string]bool)}
}

// WithDuplicates toggles whether re-consuming a previously seen tag is an
// error (used inside repetitive sequences where the same tag legitimately
// recurs).
func (c *Cursor) WithDuplicates(on bool) {
	c.duplicatesOK = on
}

// Done reports whether every field has been consumed.
func (c *Cursor) Done() bool {
	return c.pos >= len(c.fields)
}

// Remaining returns the count of unconsumed fields.
func (c *Cursor) Remaining() int {
	return len(c.fields) - c.pos
}

// PeekTag returns the tag of the next unconsumed field, or "" at end.
func (c *Cursor) PeekTag() string {
	if c.Done() {
		return ""
	}
	return c.fields[c.pos].Tag
}

// Peek reports whether the next unconsumed field has exactly this tag.
func (c *Cursor) Peek(tag string) bool {
	return c.PeekTag() == tag
}

// PeekBase reports whether the next unconsumed field's base (its numeric
// part, stripping a trailing letter) equals base.
func (c *Cursor) PeekBase(base string) bool {
	t := c.PeekTag()
	return baseOf(t) == base
}

// PeekAnyBase reports whether the next unconsumed field's base matches any
// of bases.
func (c *Cursor) PeekAnyBase(bases ...string) bool {
	t := c.PeekTag()
	if t == "" {
		return false
	}
	b := baseOf(t)
	for _, want := range bases {
		if b == want {
			return true
		}
	}
	return false
}

func baseOf(tag string) string {
	if tag == "" {
		return ""
	}
	last := tag[len(tag)-1]
	if last >= 'A' && last <= 'Z' {
		return tag[:len(tag)-1]
	}
	return tag
}

func letterOf(tag string) string {
	if tag == "" {
		return ""
	}
	last := tag[len(tag)-1]
	if last >= 'A' && last <= 'Z' {
		return string(last)
	}
	return ""
}

// Expect requires the next field to carry exactly this tag, advancing past
// it and returning its raw value. A mismatched tag is a MissingRequiredField
// error pinned to this position. Expect does not consult duplicate
// detection, so assemblers may call it repeatedly for a repeating tag.
func (c *Cursor) Expect(tag string) (string, error) {
	if !c.Peek(tag) {
		return "", c.missing(tag)
	}
	return c.advance(tag), nil
}

// TryOptional consumes the next field only if it carries exactly this tag.
// The second return reports whether a field was consumed.
func (c *Cursor) TryOptional(tag string) (string, bool, error) {
	if !c.Peek(tag) {
		return "", false, nil
	}
	if err := c.checkDuplicate(tag); err != nil {
		return "", false, err
	}
	return c.advance(tag), true, nil
}

// ExpectVariant requires the next field's tag to share base, returning the
// variant letter (possibly "") and raw value.
func (c *Cursor) ExpectVariant(base string) (letter, value string, err error) {
	if !c.PeekBase(base) {
		return "", "", c.missing(base)
	}
	tag := c.PeekTag()
	letter = letterOf(tag)
	value = c.advance(tag)
	return letter, value, nil
}

// TryOptionalVariant consumes the next field only if its base matches, and
// reports whether a field was consumed.
func (c *Cursor) TryOptionalVariant(base string) (letter, value string, ok bool, err error) {
	if !c.PeekBase(base) {
		return "", "", false, nil
	}
	tag := c.PeekTag()
	if dupErr := c.checkDuplicate(tag); dupErr != nil {
		return "", "", false, dupErr
	}
	letter = letterOf(tag)
	value = c.advance(tag)
	return letter, value, true, nil
}

// TryOptionalAnyVariant consumes the next field only if its base matches one
// of bases, and additionally reports which base matched.
func (c *Cursor) TryOptionalAnyVariant(bases ...string) (matchedBase, letter, value string, ok bool, err error) {
	t := c.PeekTag()
	if t == "" {
		return "", "", "", false, nil
	}
	b := baseOf(t)
	for _, want := range bases {
		if b == want {
			if dupErr := c.checkDuplicate(t); dupErr != nil {
				return "", "", "", false, dupErr
			}
			letter = letterOf(t)
			value = c.advance(t)
			return b, letter, value, true, nil
		}
	}
	return "", "", "", false, nil
}

func (c *Cursor) checkDuplicate(tag string) error {
	if !c.duplicatesOK && c.seen[tag] {
		return &Error{
			Kind:    UnexpectedField,
			Tag:     tag,
			Found:   tag,
			Offset:  c.fields[c.pos].Offset,
			Message: fmt.Sprintf("field %s is a duplicate outside a repetitive sequence", tag),
		}
	}
	return nil
}

func (c *Cursor) advance(tag string) string {
	v := c.fields[c.pos].Value
	c.seen[tag] = true
	c.pos++
	return v
}

func (c *Cursor) missing(tag string) error {
	offset := -1
	if !c.Done() {
		offset = c.fields[c.pos].Offset
	}
	found := c.PeekTag()
	msg := fmt.Sprintf("expected field %s, found end of block", tag)
	if found != "" {
		msg = fmt.Sprintf("expected field %s, found %s", tag, found)
	}
	return &Error{Kind: MissingRequiredField, Tag: tag, Found: found, Offset: offset, Message: msg}
}

// RepeatUntil drives a repetitive sequence: body runs once per iteration
// until stop reports true for the next tag, or the block ends. Tag
// duplicate-detection is suspended for the duration and restored afterwards
// (sequences legitimately re-see the same tags record to record).
func (c *Cursor) RepeatUntil(stop func(nextTag string) bool, body func() error) error {
	prevDup := c.duplicatesOK
	c.duplicatesOK = true
	defer func() { c.duplicatesOK = prevDup }()

	for !c.Done() && !stop(c.PeekTag()) {
		if err := body(); err != nil {
			return err
		}
	}
	return nil
}

// Unexpected builds an UnexpectedField error for a field found at the
// current position that does not belong in the message at this point.
func (c *Cursor) Unexpected(context string) error {
	if c.Done() {
		return nil
	}
	f := c.fields[c.pos]
	return &Error{
		Kind:    UnexpectedField,
		Tag:     f.Tag,
		Found:   f.Tag,
		Offset:  f.Offset,
		Message: fmt.Sprintf("field %s is not expected %s", f.Tag, context),
	}
}
