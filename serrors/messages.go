package serrors

import (
	"fmt"
	"strings"

	"github.com/samber/lo"
)

// The message functions render the text of the classified kinds. They do not depend on the carrier
// representation, so backends can build their own errors with them in every build.

// InvalidTypeMessage renders an invalid type error.
func InvalidTypeMessage(unexp Unexpected, exp string) string {
	return fmt.Sprintf("invalid type: %s, expected %s", unexp, exp)
}

// InvalidValueMessage renders an invalid value error.
func InvalidValueMessage(unexp Unexpected, exp string) string {
	return fmt.Sprintf("invalid value: %s, expected %s", unexp, exp)
}

// InvalidLengthMessage renders an invalid length error.
func InvalidLengthMessage(length int, exp string) string {
	return fmt.Sprintf("invalid length: %d, expected %s", length, exp)
}

// UnknownVariantMessage renders an unknown variant error.
func UnknownVariantMessage(variant string, expected []string) string {
	return fmt.Sprintf("unknown variant: %s, %s", variant, oneOf(expected, "there are no variants"))
}

// UnknownFieldMessage renders an unknown field error.
func UnknownFieldMessage(field string, expected []string) string {
	return fmt.Sprintf("unknown field: %s, %s", field, oneOf(expected, "there are no fields"))
}

// MissingFieldMessage renders a missing field error.
func MissingFieldMessage(field string) string {
	return fmt.Sprintf("missing field `%s`", field)
}

// DuplicateFieldMessage renders a duplicate field error.
func DuplicateFieldMessage(field string) string {
	return fmt.Sprintf("duplicate field `%s`", field)
}

func oneOf(expected []string, none string) string {
	quoted := lo.Map(expected, func(name string, _ int) string {
		return "`" + name + "`"
	})

	switch len(quoted) {
	case 0:
		return none
	case 1:
		return "expected " + quoted[0]
	case 2:
		return "expected " + quoted[0] + " or " + quoted[1]
	default:
		return "expected one of " + strings.Join(quoted, ", ")
	}
}
