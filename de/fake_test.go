package de_test

import (
	"github.com/iotaledger/dynserde/de"
	"github.com/iotaledger/dynserde/serrors"
)

// fakeError is the native error type of fake.
type fakeError struct {
	kind serrors.Kind
	msg  string
}

func (e *fakeError) Error() string { return e.msg }

type fakeFactory struct{}

func (fakeFactory) Custom(msg string) error { return &fakeError{serrors.KindCustom, msg} }

func (fakeFactory) InvalidType(unexp serrors.Unexpected, exp string) error {
	return &fakeError{serrors.KindInvalidType, serrors.InvalidTypeMessage(unexp, exp)}
}

func (fakeFactory) InvalidValue(unexp serrors.Unexpected, exp string) error {
	return &fakeError{serrors.KindInvalidValue, serrors.InvalidValueMessage(unexp, exp)}
}

func (fakeFactory) InvalidLength(length int, exp string) error {
	return &fakeError{serrors.KindInvalidLength, serrors.InvalidLengthMessage(length, exp)}
}

func (fakeFactory) UnknownVariant(variant string, expected []string) error {
	return &fakeError{serrors.KindUnknownVariant, serrors.UnknownVariantMessage(variant, expected)}
}

func (fakeFactory) UnknownField(field string, expected []string) error {
	return &fakeError{serrors.KindUnknownField, serrors.UnknownFieldMessage(field, expected)}
}

func (fakeFactory) MissingField(field string) error {
	return &fakeError{serrors.KindMissingField, serrors.MissingFieldMessage(field)}
}

func (fakeFactory) DuplicateField(field string) error {
	return &fakeError{serrors.KindDuplicateField, serrors.DuplicateFieldMessage(field)}
}

// Values understood by fake: nil, bool, int64, uint64, float64, rune, string, []byte, []any, pairs,
// variant, newtype, unit{} and failure.
type (
	pairs   [][2]any
	newtype struct{ inner any }
	unit    struct{}
	failure struct{ err error }
	variant struct {
		name    string
		payload any
	}
)

// fake is a self-describing backend over a tree of Go values.
type fake struct {
	value any
	human bool
}

func (f fake) Errors() serrors.Factory { return fakeFactory{} }

func (f fake) IsHumanReadable() bool { return f.human }

func (f fake) child(value any) fake { return fake{value: value, human: f.human} }

func (f fake) DeserializeAny(v de.BackendVisitor) error {
	switch value := f.value.(type) {
	case nil:
		return v.VisitNone()
	case failure:
		return value.err
	case bool:
		return v.VisitBool(value)
	case int64:
		return v.VisitI64(value)
	case uint64:
		return v.VisitU64(value)
	case float64:
		return v.VisitF64(value)
	case rune:
		return v.VisitChar(value)
	case string:
		return v.VisitBorrowedStr(value)
	case []byte:
		return v.VisitBorrowedBytes(value)
	case unit:
		return v.VisitUnit()
	case newtype:
		return v.VisitNewtypeStruct(f.child(value.inner))
	case []any:
		return v.VisitSeq(&fakeSeq{items: value, human: f.human})
	case pairs:
		return v.VisitMap(&fakeMap{pairs: value, human: f.human})
	case variant:
		return v.VisitEnum(&fakeEnum{variant: value, human: f.human})
	default:
		return &fakeError{serrors.KindCustom, "unsupported value"}
	}
}

func (f fake) DeserializeBool(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeI8(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeI16(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeI32(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeI64(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeU8(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeU16(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeU32(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeU64(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeF32(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeF64(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeChar(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeStr(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeString(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeBytes(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeByteBuf(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeUnit(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeSeq(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeMap(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeIdentifier(v de.BackendVisitor) error { return f.DeserializeAny(v) }
func (f fake) DeserializeIgnoredAny(v de.BackendVisitor) error { return f.DeserializeAny(v) }

func (f fake) DeserializeOption(v de.BackendVisitor) error {
	if f.value == nil {
		return v.VisitNone()
	}

	return v.VisitSome(f)
}

func (f fake) DeserializeUnitStruct(_ string, v de.BackendVisitor) error { return f.DeserializeAny(v) }

func (f fake) DeserializeNewtypeStruct(_ string, v de.BackendVisitor) error {
	if value, ok := f.value.(newtype); ok {
		return v.VisitNewtypeStruct(f.child(value.inner))
	}

	return v.VisitNewtypeStruct(f)
}

func (f fake) DeserializeTuple(_ int, v de.BackendVisitor) error { return f.DeserializeAny(v) }

func (f fake) DeserializeTupleStruct(_ string, _ int, v de.BackendVisitor) error {
	return f.DeserializeAny(v)
}

func (f fake) DeserializeStruct(_ string, _ []string, v de.BackendVisitor) error {
	return f.DeserializeAny(v)
}

func (f fake) DeserializeEnum(_ string, _ []string, v de.BackendVisitor) error {
	switch value := f.value.(type) {
	case string:
		return v.VisitEnum(&fakeEnum{variant: variant{name: value, payload: unit{}}, human: f.human})
	default:
		return f.DeserializeAny(v)
	}
}

type fakeSeq struct {
	items []any
	pos   int
	calls int
	human bool
}

func (s *fakeSeq) Errors() serrors.Factory { return fakeFactory{} }

func (s *fakeSeq) NextElement(seed de.BackendSeed) (bool, error) {
	s.calls++
	if s.pos == len(s.items) {
		return false, nil
	}

	item := s.items[s.pos]
	s.pos++

	return true, seed.Deserialize(fake{value: item, human: s.human})
}

func (s *fakeSeq) SizeHint() (int, bool) { return len(s.items) - s.pos, true }

type fakeMap struct {
	pairs pairs
	pos   int
	calls int
	human bool
}

func (m *fakeMap) Errors() serrors.Factory { return fakeFactory{} }

func (m *fakeMap) NextKey(seed de.BackendSeed) (bool, error) {
	m.calls++
	if m.pos == len(m.pairs) {
		return false, nil
	}

	return true, seed.Deserialize(fake{value: m.pairs[m.pos][0], human: m.human})
}

func (m *fakeMap) NextValue(seed de.BackendSeed) error {
	value := m.pairs[m.pos][1]
	m.pos++

	return seed.Deserialize(fake{value: value, human: m.human})
}

func (m *fakeMap) NextEntry(key, value de.BackendSeed) (bool, error) {
	present, err := m.NextKey(key)
	if err != nil || !present {
		return present, err
	}

	return true, m.NextValue(value)
}

func (m *fakeMap) SizeHint() (int, bool) { return len(m.pairs) - m.pos, true }

type fakeEnum struct {
	variant variant
	human   bool
}

func (e *fakeEnum) Errors() serrors.Factory { return fakeFactory{} }

func (e *fakeEnum) Variant(seed de.BackendSeed) (de.VariantBackend, error) {
	if err := seed.Deserialize(fake{value: e.variant.name, human: e.human}); err != nil {
		return nil, err
	}

	return fakeVariant{payload: e.variant.payload, human: e.human}, nil
}

type fakeVariant struct {
	payload any
	human   bool
}

func (v fakeVariant) UnitVariant() error {
	if _, ok := v.payload.(unit); !ok {
		return &fakeError{serrors.KindInvalidType, "expected unit variant"}
	}

	return nil
}

func (v fakeVariant) NewtypeVariant(seed de.BackendSeed) error {
	return seed.Deserialize(fake{value: v.payload, human: v.human})
}

func (v fakeVariant) TupleVariant(_ int, visitor de.BackendVisitor) error {
	return fake{value: v.payload, human: v.human}.DeserializeSeq(visitor)
}

func (v fakeVariant) StructVariant(_ []string, visitor de.BackendVisitor) error {
	return fake{value: v.payload, human: v.human}.DeserializeMap(visitor)
}
