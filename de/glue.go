package de

import (
	"github.com/iotaledger/dynserde/serrors"
)

// backendVisitor is the BackendVisitor handed to a Backend. It forwards every notification into the
// erased visitor and reports failures in the backend's error domain. Nested cursors are wrapped into
// fresh adapters that this glue owns and resolves.
type backendVisitor struct {
	visitor Visitor
	errs    serrors.Factory
}

func (g *backendVisitor) lower(err error) error {
	return serrors.Into(err, g.errs)
}

func (g *backendVisitor) Expecting() string { return g.visitor.Expecting() }

func (g *backendVisitor) VisitBool(v bool) error { return g.lower(g.visitor.VisitBool(v)) }

func (g *backendVisitor) VisitI8(v int8) error { return g.lower(g.visitor.VisitI8(v)) }

func (g *backendVisitor) VisitI16(v int16) error { return g.lower(g.visitor.VisitI16(v)) }

func (g *backendVisitor) VisitI32(v int32) error { return g.lower(g.visitor.VisitI32(v)) }

func (g *backendVisitor) VisitI64(v int64) error { return g.lower(g.visitor.VisitI64(v)) }

func (g *backendVisitor) VisitU8(v uint8) error { return g.lower(g.visitor.VisitU8(v)) }

func (g *backendVisitor) VisitU16(v uint16) error { return g.lower(g.visitor.VisitU16(v)) }

func (g *backendVisitor) VisitU32(v uint32) error { return g.lower(g.visitor.VisitU32(v)) }

func (g *backendVisitor) VisitU64(v uint64) error { return g.lower(g.visitor.VisitU64(v)) }

func (g *backendVisitor) VisitF32(v float32) error { return g.lower(g.visitor.VisitF32(v)) }

func (g *backendVisitor) VisitF64(v float64) error { return g.lower(g.visitor.VisitF64(v)) }

func (g *backendVisitor) VisitChar(v rune) error { return g.lower(g.visitor.VisitChar(v)) }

func (g *backendVisitor) VisitStr(v string) error { return g.lower(g.visitor.VisitStr(v)) }

func (g *backendVisitor) VisitBorrowedStr(v string) error {
	return g.lower(g.visitor.VisitBorrowedStr(v))
}

func (g *backendVisitor) VisitString(v string) error { return g.lower(g.visitor.VisitString(v)) }

func (g *backendVisitor) VisitBytes(v []byte) error { return g.lower(g.visitor.VisitBytes(v)) }

func (g *backendVisitor) VisitBorrowedBytes(v []byte) error {
	return g.lower(g.visitor.VisitBorrowedBytes(v))
}

func (g *backendVisitor) VisitByteBuf(v []byte) error { return g.lower(g.visitor.VisitByteBuf(v)) }

func (g *backendVisitor) VisitNone() error { return g.lower(g.visitor.VisitNone()) }

func (g *backendVisitor) VisitSome(d Backend) error {
	nested := newDeserializer(d, g.errs)

	return nested.resolve(g.visitor.VisitSome(nested), g.errs)
}

func (g *backendVisitor) VisitUnit() error { return g.lower(g.visitor.VisitUnit()) }

func (g *backendVisitor) VisitNewtypeStruct(d Backend) error {
	nested := newDeserializer(d, g.errs)

	return nested.resolve(g.visitor.VisitNewtypeStruct(nested), g.errs)
}

func (g *backendVisitor) VisitSeq(seq SeqBackend) error {
	access := newSeqAccess(seq, g.errs)

	err := g.visitor.VisitSeq(access)

	return capturedOr(access.Err(), err, g.errs)
}

func (g *backendVisitor) VisitMap(m MapBackend) error {
	access := newMapAccess(m, g.errs)

	err := g.visitor.VisitMap(access)

	return capturedOr(access.Err(), err, g.errs)
}

func (g *backendVisitor) VisitEnum(e EnumBackend) error {
	access := newEnumAccess(e, g.errs)

	err := g.visitor.VisitEnum(access)

	return capturedOr(access.Err(), err, g.errs)
}

// backendSeed is the BackendSeed handed to composite cursors.
type backendSeed struct {
	seed DeserializeSeed
	errs serrors.Factory
}

func (g *backendSeed) Deserialize(d Backend) error {
	nested := newDeserializer(d, g.errs)

	return nested.resolve(g.seed.Deserialize(nested), g.errs)
}

// Drive runs one hint call with v wrapped into a fresh InplaceVisitor and returns what v produced.
//
//	value, err := de.Drive[string](stringVisitor{}, d.DeserializeString)
func Drive[V any](v ValueVisitor[V], call func(Visitor) error) (V, error) {
	visitor := NewVisitor(v)

	return visitor.Expect(call(visitor))
}

// Deserialize decodes a V from b through the erased layer.
// Failures are reported in the error domain of b, preferring what b itself returned.
func Deserialize[V any](b Backend, seed ValueSeed[V]) (V, error) {
	d := NewDeserializer(b)

	value, err := seed.Deserialize(d)
	if err != nil {
		var zero V

		return zero, d.Resolve(err)
	}

	return value, nil
}

// NextElement decodes the next element of seq with seed.
func NextElement[T any](seq SeqAccess, seed ValueSeed[T]) (element T, present bool, err error) {
	s := NewSeed(seed)
	if present, err = seq.NextElement(s); err != nil || !present {
		return element, false, err
	}

	element, err = s.Expect(nil)

	return element, err == nil, err
}

// NextKey decodes the next key of m with seed.
func NextKey[K any](m MapAccess, seed ValueSeed[K]) (key K, present bool, err error) {
	s := NewSeed(seed)
	if present, err = m.NextKey(s); err != nil || !present {
		return key, false, err
	}

	key, err = s.Expect(nil)

	return key, err == nil, err
}

// NextValue decodes the value that belongs to the key NextKey just returned.
func NextValue[T any](m MapAccess, seed ValueSeed[T]) (T, error) {
	s := NewSeed(seed)

	return s.Expect(m.NextValue(s))
}

// NextEntry decodes the next key and value of m.
func NextEntry[K, T any](m MapAccess, keySeed ValueSeed[K], valueSeed ValueSeed[T]) (key K, value T, present bool, err error) {
	ks, vs := NewSeed(keySeed), NewSeed(valueSeed)
	if present, err = m.NextEntry(ks, vs); err != nil || !present {
		return key, value, false, err
	}

	if key, err = ks.Expect(nil); err != nil {
		return key, value, false, err
	}

	if value, err = vs.Expect(nil); err != nil {
		return key, value, false, err
	}

	return key, value, true, nil
}

// VariantOf resolves the variant of e with seed and returns the access for its payload.
func VariantOf[T any](e EnumAccess, seed ValueSeed[T]) (T, VariantAccess, error) {
	s := NewSeed(seed)

	variant, err := e.Variant(s)
	if err != nil {
		var zero T

		return zero, nil, err
	}

	tag, err := s.Expect(nil)

	return tag, variant, err
}

// NewtypeVariant decodes the single value payload of a variant.
func NewtypeVariant[T any](variant VariantAccess, seed ValueSeed[T]) (T, error) {
	s := NewSeed(seed)

	return s.Expect(variant.NewtypeVariant(s))
}

// TupleVariant decodes a tuple payload of a variant with v.
func TupleVariant[V any](variant VariantAccess, length int, v ValueVisitor[V]) (V, error) {
	return Drive(v, func(visitor Visitor) error {
		return variant.TupleVariant(length, visitor)
	})
}

// StructVariant decodes a struct payload of a variant with v.
func StructVariant[V any](variant VariantAccess, fields []string, v ValueVisitor[V]) (V, error) {
	return Drive(v, func(visitor Visitor) error {
		return variant.StructVariant(fields, visitor)
	})
}
