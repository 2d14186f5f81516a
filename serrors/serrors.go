// Package serrors provides the error carrier used on both sides of the dynamic (de)serialization boundary.
//
// A carrier is either a classified error (custom message, invalid type, invalid value, invalid length,
// unknown variant, unknown field, missing field, duplicate field) or, when the module is built with the
// "serrors_marker" build tag, a marker that stores nothing at all.
// Carriers are reconstructed into a backend's own error type with Into.
package serrors

import (
	"fmt"
)

// Kind classifies a carrier.
type Kind uint8

const (
	// KindCustom is a free text error.
	KindCustom Kind = iota
	// KindInvalidType is raised when a value of the wrong type was received.
	KindInvalidType
	// KindInvalidValue is raised when a value of the right type but a wrong value was received.
	KindInvalidValue
	// KindInvalidLength is raised when a sequence or map has the wrong number of elements.
	KindInvalidLength
	// KindUnknownVariant is raised when an enum variant is not known to the receiver.
	KindUnknownVariant
	// KindUnknownField is raised when a struct field is not known to the receiver.
	KindUnknownField
	// KindMissingField is raised when a required struct field was not present.
	KindMissingField
	// KindDuplicateField is raised when a struct field was present more than once.
	KindDuplicateField
)

var kindNames = [...]string{
	KindCustom:         "Custom",
	KindInvalidType:    "InvalidType",
	KindInvalidValue:   "InvalidValue",
	KindInvalidLength:  "InvalidLength",
	KindUnknownVariant: "UnknownVariant",
	KindUnknownField:   "UnknownField",
	KindMissingField:   "MissingField",
	KindDuplicateField: "DuplicateField",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return fmt.Sprintf("Kind(%d)", k)
}

// FidelityLevel tells which carrier representation the module was built with.
type FidelityLevel uint8

const (
	// FidelityFull carriers keep the classification and its data.
	FidelityFull FidelityLevel = iota
	// FidelityMarker carriers keep nothing.
	FidelityMarker
)

func (f FidelityLevel) String() string {
	if f == FidelityMarker {
		return "marker"
	}

	return "full"
}

// MarkerMessage is the text of every carrier in marker mode.
const MarkerMessage = "an error occurred during dynamic (de)serialization"

// Customf creates a custom carrier from a format specifier.
func Customf(format string, args ...any) *Error {
	return Custom(fmt.Sprintf(format, args...))
}

// KindOf returns the kind of the carrier at the top of err.
// The second result is false if err is not a carrier.
func KindOf(err error) (Kind, bool) {
	carrier, ok := err.(*Error) //nolint:errorlint // only the top level error is classified
	if !ok {
		return KindCustom, false
	}

	return carrier.Kind(), true
}
