package serrors_test

import (
	"fmt"

	"github.com/iotaledger/dynserde/serrors"
)

// nativeError is the error type of an imaginary backend.
type nativeError struct {
	kind serrors.Kind
	msg  string
}

func (e *nativeError) Error() string { return e.msg }

type nativeFactory struct{}

func (nativeFactory) Custom(msg string) error {
	return &nativeError{serrors.KindCustom, msg}
}

func (nativeFactory) InvalidType(unexp serrors.Unexpected, exp string) error {
	return &nativeError{serrors.KindInvalidType, fmt.Sprintf("invalid type: %s, expected %s", unexp, exp)}
}

func (nativeFactory) InvalidValue(unexp serrors.Unexpected, exp string) error {
	return &nativeError{serrors.KindInvalidValue, fmt.Sprintf("invalid value: %s, expected %s", unexp, exp)}
}

func (nativeFactory) InvalidLength(length int, exp string) error {
	return &nativeError{serrors.KindInvalidLength, fmt.Sprintf("invalid length: %d, expected %s", length, exp)}
}

func (nativeFactory) UnknownVariant(variant string, expected []string) error {
	return &nativeError{serrors.KindUnknownVariant, serrors.UnknownVariantMessage(variant, expected)}
}

func (nativeFactory) UnknownField(field string, expected []string) error {
	return &nativeError{serrors.KindUnknownField, serrors.UnknownFieldMessage(field, expected)}
}

func (nativeFactory) MissingField(field string) error {
	return &nativeError{serrors.KindMissingField, "missing field `" + field + "`"}
}

func (nativeFactory) DuplicateField(field string) error {
	return &nativeError{serrors.KindDuplicateField, "duplicate field `" + field + "`"}
}
