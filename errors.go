package swiftmt

import (
	"errors"
	"fmt"

	"github.com/deltran/swiftmt/internal/validate"
)

// ErrUnknownMessageType is returned by Parse and Emit when Block 2's
// message type has no registered assembler.
var ErrUnknownMessageType = errors.New("swiftmt: unknown message type")

// ParseError is returned by Parse for any failure below the
// message-assembly layer: envelope, tokenizer, cursor, or field-codec
// failures are all wrapped here so callers have one error type to match on.
type ParseError struct {
	Stage  string // "envelope", "block4" or "assembler" (cursor and field-codec failures surface as "assembler")
	Tag    string // field tag involved, if applicable
	Offset int    // byte offset in the original input
	Err    error
}

func (e *ParseError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("swiftmt: %s: field %s: %v", e.Stage, e.Tag, e.Err)
	}
	return fmt.Sprintf("swiftmt: %s: %v", e.Stage, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

func wrapParseError(stage, tag string, offset int, err error) error {
	if err == nil {
		return nil
	}
	return &ParseError{Stage: stage, Tag: tag, Offset: offset, Err: err}
}

// ValidationErrorKind classifies a network-validation failure by the rule
// family it belongs to (spec.md's error taxonomy). It is an alias of
// package validate's Kind so message assemblers (in this package) and the
// rule helpers (in internal/validate) share one vocabulary without a
// circular import.
type ValidationErrorKind = validate.Kind

const (
	FormatRule   = validate.FormatRule
	ContentRule  = validate.ContentRule
	RelationRule = validate.RelationRule
	BusinessRule = validate.BusinessRule
)

// ValidationError is one SR network-validation failure, as produced by
// internal/validate's rule helpers.
type ValidationError = validate.Error

// ValidationErrors is an ordered, stable-under-same-input list of
// ValidationError, returned by Validate.
type ValidationErrors = validate.Errors
