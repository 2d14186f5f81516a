package de

import (
	"github.com/cockroachdb/errors"

	"github.com/iotaledger/dynserde/internal/slot"
	"github.com/iotaledger/dynserde/serrors"
)

// ErrNotVisited is returned by Expect when the adapter was never driven.
var ErrNotVisited = errors.New("the visitor was not visited")

const (
	expectingNotReady = "nothing (the visitor is not ready)"
	expectingDone     = "nothing (the deserialization has done successfully)"
)

// ValueVisitor builds a V from exactly one notification.
// VisitorFuncs provides the usual defaults for the notifications a visitor does not care about.
type ValueVisitor[V any] interface {
	Expecting() string
	VisitBool(v bool) (V, error)
	VisitI8(v int8) (V, error)
	VisitI16(v int16) (V, error)
	VisitI32(v int32) (V, error)
	VisitI64(v int64) (V, error)
	VisitU8(v uint8) (V, error)
	VisitU16(v uint16) (V, error)
	VisitU32(v uint32) (V, error)
	VisitU64(v uint64) (V, error)
	VisitF32(v float32) (V, error)
	VisitF64(v float64) (V, error)
	VisitChar(v rune) (V, error)
	VisitStr(v string) (V, error)
	VisitBorrowedStr(v string) (V, error)
	VisitString(v string) (V, error)
	VisitBytes(v []byte) (V, error)
	VisitBorrowedBytes(v []byte) (V, error)
	VisitByteBuf(v []byte) (V, error)
	VisitNone() (V, error)
	VisitSome(d Deserializer) (V, error)
	VisitUnit() (V, error)
	VisitNewtypeStruct(d Deserializer) (V, error)
	VisitSeq(seq SeqAccess) (V, error)
	VisitMap(m MapAccess) (V, error)
	VisitEnum(e EnumAccess) (V, error)
}

// ValueSeed decodes a V from a Deserializer, usually by driving it with a ValueVisitor.
type ValueSeed[V any] interface {
	Deserialize(d Deserializer) (V, error)
}

// InplaceVisitor wraps a ValueVisitor and accepts exactly one notification.
// Failures of the wrapped visitor are kept and also returned, so the driving backend can report them.
type InplaceVisitor[V any] struct {
	slot slot.Slot[ValueVisitor[V], V]
}

// NewVisitor wraps v.
func NewVisitor[V any](v ValueVisitor[V]) *InplaceVisitor[V] {
	return &InplaceVisitor[V]{slot: slot.New[ValueVisitor[V], V](v)}
}

// Expect moves the produced value out. err is the result of the call that drove the visitor and wins
// if it is set.
func (iv *InplaceVisitor[V]) Expect(err error) (V, error) {
	var zero V
	if err != nil {
		return zero, err
	}

	if value, ok := iv.slot.TakeValue(); ok {
		return value, nil
	}

	if failure := iv.slot.Err(); failure != nil {
		return zero, failure
	}

	return zero, ErrNotVisited
}

// Expecting describes what the wrapped visitor expects, in any state.
func (iv *InplaceVisitor[V]) Expecting() string {
	if v, ok := iv.slot.Peek(); ok {
		return v.Expecting()
	}

	if iv.slot.State() == slot.Produced {
		return expectingDone
	}

	return expectingNotReady
}

func (iv *InplaceVisitor[V]) visit(call string, visit func(ValueVisitor[V]) (V, error)) error {
	v, ok := iv.slot.Take()
	if !ok {
		return violation(serrors.SignalNotVisitor, call)
	}

	value, err := visit(v)
	if err != nil {
		iv.slot.Fail(err)

		return err
	}

	iv.slot.Produce(value)

	return nil
}

func (iv *InplaceVisitor[V]) VisitBool(v bool) error {
	return iv.visit("VisitBool", func(x ValueVisitor[V]) (V, error) { return x.VisitBool(v) })
}

func (iv *InplaceVisitor[V]) VisitI8(v int8) error {
	return iv.visit("VisitI8", func(x ValueVisitor[V]) (V, error) { return x.VisitI8(v) })
}

func (iv *InplaceVisitor[V]) VisitI16(v int16) error {
	return iv.visit("VisitI16", func(x ValueVisitor[V]) (V, error) { return x.VisitI16(v) })
}

func (iv *InplaceVisitor[V]) VisitI32(v int32) error {
	return iv.visit("VisitI32", func(x ValueVisitor[V]) (V, error) { return x.VisitI32(v) })
}

func (iv *InplaceVisitor[V]) VisitI64(v int64) error {
	return iv.visit("VisitI64", func(x ValueVisitor[V]) (V, error) { return x.VisitI64(v) })
}

func (iv *InplaceVisitor[V]) VisitU8(v uint8) error {
	return iv.visit("VisitU8", func(x ValueVisitor[V]) (V, error) { return x.VisitU8(v) })
}

func (iv *InplaceVisitor[V]) VisitU16(v uint16) error {
	return iv.visit("VisitU16", func(x ValueVisitor[V]) (V, error) { return x.VisitU16(v) })
}

func (iv *InplaceVisitor[V]) VisitU32(v uint32) error {
	return iv.visit("VisitU32", func(x ValueVisitor[V]) (V, error) { return x.VisitU32(v) })
}

func (iv *InplaceVisitor[V]) VisitU64(v uint64) error {
	return iv.visit("VisitU64", func(x ValueVisitor[V]) (V, error) { return x.VisitU64(v) })
}

func (iv *InplaceVisitor[V]) VisitF32(v float32) error {
	return iv.visit("VisitF32", func(x ValueVisitor[V]) (V, error) { return x.VisitF32(v) })
}

func (iv *InplaceVisitor[V]) VisitF64(v float64) error {
	return iv.visit("VisitF64", func(x ValueVisitor[V]) (V, error) { return x.VisitF64(v) })
}

func (iv *InplaceVisitor[V]) VisitChar(v rune) error {
	return iv.visit("VisitChar", func(x ValueVisitor[V]) (V, error) { return x.VisitChar(v) })
}

func (iv *InplaceVisitor[V]) VisitStr(v string) error {
	return iv.visit("VisitStr", func(x ValueVisitor[V]) (V, error) { return x.VisitStr(v) })
}

func (iv *InplaceVisitor[V]) VisitBorrowedStr(v string) error {
	return iv.visit("VisitBorrowedStr", func(x ValueVisitor[V]) (V, error) { return x.VisitBorrowedStr(v) })
}

func (iv *InplaceVisitor[V]) VisitString(v string) error {
	return iv.visit("VisitString", func(x ValueVisitor[V]) (V, error) { return x.VisitString(v) })
}

func (iv *InplaceVisitor[V]) VisitBytes(v []byte) error {
	return iv.visit("VisitBytes", func(x ValueVisitor[V]) (V, error) { return x.VisitBytes(v) })
}

func (iv *InplaceVisitor[V]) VisitBorrowedBytes(v []byte) error {
	return iv.visit("VisitBorrowedBytes", func(x ValueVisitor[V]) (V, error) { return x.VisitBorrowedBytes(v) })
}

func (iv *InplaceVisitor[V]) VisitByteBuf(v []byte) error {
	return iv.visit("VisitByteBuf", func(x ValueVisitor[V]) (V, error) { return x.VisitByteBuf(v) })
}

func (iv *InplaceVisitor[V]) VisitNone() error {
	return iv.visit("VisitNone", func(x ValueVisitor[V]) (V, error) { return x.VisitNone() })
}

func (iv *InplaceVisitor[V]) VisitSome(d Deserializer) error {
	return iv.visit("VisitSome", func(x ValueVisitor[V]) (V, error) { return x.VisitSome(d) })
}

func (iv *InplaceVisitor[V]) VisitUnit() error {
	return iv.visit("VisitUnit", func(x ValueVisitor[V]) (V, error) { return x.VisitUnit() })
}

func (iv *InplaceVisitor[V]) VisitNewtypeStruct(d Deserializer) error {
	return iv.visit("VisitNewtypeStruct", func(x ValueVisitor[V]) (V, error) { return x.VisitNewtypeStruct(d) })
}

func (iv *InplaceVisitor[V]) VisitSeq(seq SeqAccess) error {
	return iv.visit("VisitSeq", func(x ValueVisitor[V]) (V, error) { return x.VisitSeq(seq) })
}

func (iv *InplaceVisitor[V]) VisitMap(m MapAccess) error {
	return iv.visit("VisitMap", func(x ValueVisitor[V]) (V, error) { return x.VisitMap(m) })
}

func (iv *InplaceVisitor[V]) VisitEnum(e EnumAccess) error {
	return iv.visit("VisitEnum", func(x ValueVisitor[V]) (V, error) { return x.VisitEnum(e) })
}

// InplaceSeed wraps a ValueSeed and accepts exactly one Deserialize call.
type InplaceSeed[V any] struct {
	slot slot.Slot[ValueSeed[V], V]
}

// NewSeed wraps s.
func NewSeed[V any](s ValueSeed[V]) *InplaceSeed[V] {
	return &InplaceSeed[V]{slot: slot.New[ValueSeed[V], V](s)}
}

// Deserialize runs the wrapped seed against d.
func (is *InplaceSeed[V]) Deserialize(d Deserializer) error {
	s, ok := is.slot.Take()
	if !ok {
		return violation(serrors.SignalNotSeed, "Deserialize")
	}

	value, err := s.Deserialize(d)
	if err != nil {
		is.slot.Fail(err)

		return err
	}

	is.slot.Produce(value)

	return nil
}

// Expect moves the produced value out, see InplaceVisitor.Expect.
func (is *InplaceSeed[V]) Expect(err error) (V, error) {
	var zero V
	if err != nil {
		return zero, err
	}

	if value, ok := is.slot.TakeValue(); ok {
		return value, nil
	}

	if failure := is.slot.Err(); failure != nil {
		return zero, failure
	}

	return zero, ErrNotVisited
}
