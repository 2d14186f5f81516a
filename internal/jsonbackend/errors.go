package jsonbackend

import (
	"github.com/iotaledger/dynserde/serrors"
)

// Error is the error type of the JSON backend.
type Error struct {
	Kind serrors.Kind
	Msg  string
}

func (e *Error) Error() string {
	return "json: " + e.Msg
}

func newError(kind serrors.Kind, msg string) *Error {
	return &Error{Kind: kind, Msg: msg}
}

// syntaxError reports malformed input.
func syntaxError(msg string) *Error {
	return newError(serrors.KindCustom, "syntax error: "+msg)
}

// Errors is the serrors.Factory of the JSON backend.
var Errors serrors.Factory = factory{}

type factory struct{}

func (factory) Custom(msg string) error { return newError(serrors.KindCustom, msg) }

func (factory) InvalidType(unexp serrors.Unexpected, exp string) error {
	return newError(serrors.KindInvalidType, serrors.InvalidTypeMessage(unexp, exp))
}

func (factory) InvalidValue(unexp serrors.Unexpected, exp string) error {
	return newError(serrors.KindInvalidValue, serrors.InvalidValueMessage(unexp, exp))
}

func (factory) InvalidLength(length int, exp string) error {
	return newError(serrors.KindInvalidLength, serrors.InvalidLengthMessage(length, exp))
}

func (factory) UnknownVariant(variant string, expected []string) error {
	return newError(serrors.KindUnknownVariant, serrors.UnknownVariantMessage(variant, expected))
}

func (factory) UnknownField(field string, expected []string) error {
	return newError(serrors.KindUnknownField, serrors.UnknownFieldMessage(field, expected))
}

func (factory) MissingField(field string) error {
	return newError(serrors.KindMissingField, serrors.MissingFieldMessage(field))
}

func (factory) DuplicateField(field string) error {
	return newError(serrors.KindDuplicateField, serrors.DuplicateFieldMessage(field))
}
