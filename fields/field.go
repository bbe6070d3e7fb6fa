// Package fields implements the SWIFT field codec (C2) and the
// field-variant dispatcher (C3): one Go type per (tag, variant) pair, each
// able to parse its raw Block 4 value and emit it back, built from the
// primitive scanners in package primitive.
package fields

import (
	"fmt"
	"strings"

	"github.com/deltran/swiftmt/internal/primitive"
)

// Field is implemented by every field type. Tag returns the wire tag
// including the variant letter (e.g. "32A", "50K", "59" for NoOption).
type Field interface {
	Tag() string
	Emit() string // full ":TAG:value" line(s), '\n'-joined for multi-line fields
}

// ParseError wraps a primitive or component failure with the field tag and
// component name, matching spec.md's InvalidFieldFormat taxonomy entry.
type ParseError struct {
	FieldTag  string
	Component string
	Err       error
}

func (e *ParseError) Error() string {
	if e.Component == "" {
		return fmt.Sprintf("field %s: %v", e.FieldTag, e.Err)
	}
	return fmt.Sprintf("field %s component %s: %v", e.FieldTag, e.Component, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func perr(tag, component string, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{FieldTag: tag, Component: component, Err: err}
}

// residue is a fatal error when a field's raw value carries trailing
// characters a variant's format did not consume.
func residue(tag string, rest string) error {
	if rest != "" {
		return &ParseError{FieldTag: tag, Component: "<residue>", Err: fmt.Errorf("unparsed trailing text %q", rest)}
	}
	return nil
}

// splitLeadingOptionalSlash peels an optional "/..." first line (the
// "[/34x]" shape common to party fields) and returns it (without its
// leading slash) plus the remainder.
func splitLeadingOptionalSlash(s string) (account string, rest string) {
	if !strings.HasPrefix(s, "/") {
		return "", s
	}
	nl := strings.IndexByte(s, '\n')
	line := s
	if nl >= 0 {
		line = s[:nl]
	}
	end := strings.IndexByte(line[1:], '/')
	// account runs to end of the first line (no closing slash required by
	// the 34x grammar; a second '/' is uncommon but tolerated as content).
	_ = end
	account = strings.TrimPrefix(line, "/")
	if nl >= 0 {
		rest = s[nl+1:]
	}
	return account, rest
}

// firstLine / restLines split a raw multi-line field value.
func firstLine(s string) (string, string) {
	nl := strings.IndexByte(s, '\n')
	if nl < 0 {
		return s, ""
	}
	return s[:nl], s[nl+1:]
}

func linesOf(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func joinLines(lines []string) string {
	return strings.Join(lines, "\n")
}

// amountField is a small helper embedded by fields carrying a decimal
// amount, preserving the original wire text for round-trip exactness.
type amountField struct {
	raw primitive.Amount
}

func (a amountField) Text() string { return a.raw.String() }

// Text is a free-text component (Nx / N*Mx), preserving original lines.
type Text struct {
	Lines []string
}

func (t Text) String() string { return joinLines(t.Lines) }
