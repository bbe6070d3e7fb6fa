package swiftmt

import (
	"fmt"

	"github.com/deltran/swiftmt/fields"
	"github.com/deltran/swiftmt/internal/cursor"
)

// The parseXxx helpers below dispatch a (letter, raw value) pair — as
// returned by cursor.ExpectVariant/TryOptionalVariant — to the matching
// fields.ParseFieldNNL constructor, returning a fields.Field interface
// value so assemblers can carry "any option of field N" in one struct slot
// without a bespoke sum type per field.

func parseOrderingCustomer50(letter, raw string) (fields.Field, error) {
	switch letter {
	case "A":
		return fields.ParseField50A(raw)
	case "F":
		return fields.ParseField50F(raw)
	case "K":
		return fields.ParseField50K(raw)
	default:
		return nil, fmt.Errorf("field 50%s is not a recognized option", letter)
	}
}

func parseInstitution52(letter, raw string) (fields.Field, error) {
	switch letter {
	case "A":
		return fields.ParseField52A(raw)
	case "B":
		return fields.ParseField52B(raw)
	case "D":
		return fields.ParseField52D(raw)
	default:
		return nil, fmt.Errorf("field 52%s is not a recognized option", letter)
	}
}

// parseInstitution52AD restricts field 52 to options A and D, the subset
// MT103 permits (no bare-location option B).
func parseInstitution52AD(letter, raw string) (fields.Field, error) {
	switch letter {
	case "A":
		return fields.ParseField52A(raw)
	case "D":
		return fields.ParseField52D(raw)
	default:
		return nil, fmt.Errorf("field 52%s is not a recognized option for this message type", letter)
	}
}

func parseInstitution53(letter, raw string) (fields.Field, error) {
	switch letter {
	case "A":
		return fields.ParseField53A(raw)
	case "B":
		return fields.ParseField53B(raw)
	case "D":
		return fields.ParseField53D(raw)
	default:
		return nil, fmt.Errorf("field 53%s is not a recognized option", letter)
	}
}

func parseInstitution54(letter, raw string) (fields.Field, error) {
	switch letter {
	case "A":
		return fields.ParseField54A(raw)
	case "B":
		return fields.ParseField54B(raw)
	case "D":
		return fields.ParseField54D(raw)
	default:
		return nil, fmt.Errorf("field 54%s is not a recognized option", letter)
	}
}

func parseInstitution55(letter, raw string) (fields.Field, error) {
	switch letter {
	case "A":
		return fields.ParseField55A(raw)
	case "B":
		return fields.ParseField55B(raw)
	case "D":
		return fields.ParseField55D(raw)
	default:
		return nil, fmt.Errorf("field 55%s is not a recognized option", letter)
	}
}

func parseInstitution56(letter, raw string) (fields.Field, error) {
	switch letter {
	case "A":
		return fields.ParseField56A(raw)
	case "C":
		return fields.ParseField56C(raw)
	case "D":
		return fields.ParseField56D(raw)
	default:
		return nil, fmt.Errorf("field 56%s is not a recognized option", letter)
	}
}

func parseInstitution57(letter, raw string) (fields.Field, error) {
	switch letter {
	case "A":
		return fields.ParseField57A(raw)
	case "B":
		return fields.ParseField57B(raw)
	case "C":
		return fields.ParseField57C(raw)
	case "D":
		return fields.ParseField57D(raw)
	default:
		return nil, fmt.Errorf("field 57%s is not a recognized option", letter)
	}
}

func parseInstitution58(letter, raw string) (fields.Field, error) {
	switch letter {
	case "A":
		return fields.ParseField58A(raw)
	case "D":
		return fields.ParseField58D(raw)
	default:
		return nil, fmt.Errorf("field 58%s is not a recognized option", letter)
	}
}

func parseBeneficiary59(letter, raw string) (fields.Field, error) {
	switch letter {
	case "":
		return fields.ParseField59(raw)
	case "A":
		return fields.ParseField59A(raw)
	case "F":
		return fields.ParseField59F(raw)
	default:
		return nil, fmt.Errorf("field 59%s is not a recognized option", letter)
	}
}

// tryParty is a small cursor-driven helper: if the next field's base
// matches base, dispatch its letter through parseFn and return the typed
// field; otherwise return (nil, false, nil).
func tryParty(c *cursor.Cursor, base string, parseFn func(letter, raw string) (fields.Field, error)) (fields.Field, bool, error) {
	letter, raw, ok, err := c.TryOptionalVariant(base)
	if err != nil || !ok {
		return nil, ok, err
	}
	f, err := parseFn(letter, raw)
	if err != nil {
		return nil, true, err
	}
	return f, true, nil
}
