//go:build serrors_marker

package serrors

// Fidelity is the carrier representation of this build.
const Fidelity = FidelityMarker

// Error is the carrier. In marker builds it stores nothing.
type Error struct{}

// Custom creates a marker carrier.
func Custom(string) *Error {
	return &Error{}
}

// Wrap creates a marker carrier. The cause is dropped.
func Wrap(err error) *Error {
	if err == nil {
		return nil
	}

	return &Error{}
}

// InvalidType creates a marker carrier.
func InvalidType(Unexpected, string) *Error {
	return &Error{}
}

// InvalidValue creates a marker carrier.
func InvalidValue(Unexpected, string) *Error {
	return &Error{}
}

// InvalidLength creates a marker carrier.
func InvalidLength(int, string) *Error {
	return &Error{}
}

// UnknownVariant creates a marker carrier.
func UnknownVariant(string, []string) *Error {
	return &Error{}
}

// UnknownField creates a marker carrier.
func UnknownField(string, []string) *Error {
	return &Error{}
}

// MissingField creates a marker carrier.
func MissingField(string) *Error {
	return &Error{}
}

// DuplicateField creates a marker carrier.
func DuplicateField(string) *Error {
	return &Error{}
}

// Kind always reports KindCustom in marker builds.
func (e *Error) Kind() Kind {
	return KindCustom
}

// Unexpected returns the zero Unexpected in marker builds.
func (e *Error) Unexpected() Unexpected {
	return Unexpected{}
}

// Expected returns an empty string in marker builds.
func (e *Error) Expected() string {
	return ""
}

// Name returns an empty string in marker builds.
func (e *Error) Name() string {
	return ""
}

func (e *Error) Error() string {
	return MarkerMessage
}

func (e *Error) Unwrap() error {
	return nil
}

func (e *Error) into(f Factory) error {
	return f.Custom(MarkerMessage)
}
