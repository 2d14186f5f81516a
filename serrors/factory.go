package serrors

// Factory is the error contract of a backend: one constructor per kind, each returning the backend's own error.
type Factory interface {
	Custom(msg string) error
	InvalidType(unexp Unexpected, exp string) error
	InvalidValue(unexp Unexpected, exp string) error
	InvalidLength(length int, exp string) error
	UnknownVariant(variant string, expected []string) error
	UnknownField(field string, expected []string) error
	MissingField(field string) error
	DuplicateField(field string) error
}

// Domain is implemented by backends that have their own error type.
type Domain interface {
	Errors() Factory
}

// Std is the Factory of backends without an own error type. It produces carriers.
var Std Factory = stdFactory{}

// FactoryOf returns the Factory of v if v is a Domain, and Std otherwise.
func FactoryOf(v any) Factory {
	if domain, ok := v.(Domain); ok {
		if factory := domain.Errors(); factory != nil {
			return factory
		}
	}

	return Std
}

// Into reconstructs err in the error domain of f.
//
// Errors that are neither carriers nor signals are already concrete and are returned unchanged.
// A carrier that wraps a captured error returns that error. Any other carrier is rebuilt through the
// matching constructor of f, and stray signals become custom errors.
func Into(err error, f Factory) error {
	switch typed := err.(type) { //nolint:errorlint // only the top level error is reconstructed
	case nil:
		return nil
	case *Error:
		if typed == nil {
			return nil
		}

		return typed.into(f)
	case Signal:
		return f.Custom(typed.Error())
	default:
		return err
	}
}

type stdFactory struct{}

func (stdFactory) Custom(msg string) error { return Custom(msg) }

func (stdFactory) InvalidType(unexp Unexpected, exp string) error { return InvalidType(unexp, exp) }

func (stdFactory) InvalidValue(unexp Unexpected, exp string) error { return InvalidValue(unexp, exp) }

func (stdFactory) InvalidLength(length int, exp string) error { return InvalidLength(length, exp) }

func (stdFactory) UnknownVariant(variant string, expected []string) error {
	return UnknownVariant(variant, expected)
}

func (stdFactory) UnknownField(field string, expected []string) error {
	return UnknownField(field, expected)
}

func (stdFactory) MissingField(field string) error { return MissingField(field) }

func (stdFactory) DuplicateField(field string) error { return DuplicateField(field) }
