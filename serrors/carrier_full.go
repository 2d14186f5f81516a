//go:build !serrors_marker

package serrors

// Fidelity is the carrier representation of this build.
const Fidelity = FidelityFull

// Error is the carrier. It keeps the classification and its data.
type Error struct {
	kind     Kind
	msg      string
	unexp    Unexpected
	exp      string
	length   int
	name     string
	expected []string
	cause    error
}

// Custom creates a free text carrier.
func Custom(msg string) *Error {
	return &Error{kind: KindCustom, msg: msg}
}

// Wrap creates a custom carrier that keeps err as its cause.
// Into hands the cause back instead of rebuilding an error from the message.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}

	return &Error{kind: KindCustom, msg: err.Error(), cause: err}
}

// InvalidType creates a carrier for a received value of the wrong type.
func InvalidType(unexp Unexpected, exp string) *Error {
	return &Error{kind: KindInvalidType, unexp: unexp, exp: exp}
}

// InvalidValue creates a carrier for a received value of the right type but with a wrong value.
func InvalidValue(unexp Unexpected, exp string) *Error {
	return &Error{kind: KindInvalidValue, unexp: unexp, exp: exp}
}

// InvalidLength creates a carrier for a sequence or map with the wrong number of elements.
func InvalidLength(length int, exp string) *Error {
	return &Error{kind: KindInvalidLength, length: length, exp: exp}
}

// UnknownVariant creates a carrier for an enum variant that is not in expected.
func UnknownVariant(variant string, expected []string) *Error {
	return &Error{kind: KindUnknownVariant, name: variant, expected: expected}
}

// UnknownField creates a carrier for a struct field that is not in expected.
func UnknownField(field string, expected []string) *Error {
	return &Error{kind: KindUnknownField, name: field, expected: expected}
}

// MissingField creates a carrier for a required struct field that was not present.
func MissingField(field string) *Error {
	return &Error{kind: KindMissingField, name: field}
}

// DuplicateField creates a carrier for a struct field that was present more than once.
func DuplicateField(field string) *Error {
	return &Error{kind: KindDuplicateField, name: field}
}

// Kind returns the classification of the carrier.
func (e *Error) Kind() Kind {
	return e.kind
}

// Unexpected returns the received value of an invalid type or invalid value carrier.
func (e *Error) Unexpected() Unexpected {
	return e.unexp
}

// Expected returns what the receiver expected, for the invalid type, value and length kinds.
func (e *Error) Expected() string {
	return e.exp
}

// Name returns the variant or field name the carrier is about.
func (e *Error) Name() string {
	return e.name
}

func (e *Error) Error() string {
	switch e.kind {
	case KindInvalidType:
		return InvalidTypeMessage(e.unexp, e.exp)
	case KindInvalidValue:
		return InvalidValueMessage(e.unexp, e.exp)
	case KindInvalidLength:
		return InvalidLengthMessage(e.length, e.exp)
	case KindUnknownVariant:
		return UnknownVariantMessage(e.name, e.expected)
	case KindUnknownField:
		return UnknownFieldMessage(e.name, e.expected)
	case KindMissingField:
		return MissingFieldMessage(e.name)
	case KindDuplicateField:
		return DuplicateFieldMessage(e.name)
	default:
		return e.msg
	}
}

func (e *Error) Unwrap() error {
	return e.cause
}

func (e *Error) into(f Factory) error {
	if e.cause != nil {
		return e.cause
	}

	switch e.kind {
	case KindInvalidType:
		return f.InvalidType(e.unexp, e.exp)
	case KindInvalidValue:
		return f.InvalidValue(e.unexp, e.exp)
	case KindInvalidLength:
		return f.InvalidLength(e.length, e.exp)
	case KindUnknownVariant:
		return f.UnknownVariant(e.name, e.expected)
	case KindUnknownField:
		return f.UnknownField(e.name, e.expected)
	case KindMissingField:
		return f.MissingField(e.name)
	case KindDuplicateField:
		return f.DuplicateField(e.name)
	default:
		return f.Custom(e.msg)
	}
}
