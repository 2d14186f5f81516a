package de

import (
	"github.com/iotaledger/dynserde/serrors"
)

// VisitorFuncs is a ValueVisitor made of optional functions.
// A notification without a function falls back the usual way: narrow integers widen to 64 bits, F32 to
// F64, Char to Str, BorrowedStr and String to Str, BorrowedBytes and ByteBuf to Bytes. Whatever is left
// fails with an invalid type error built from Description.
type VisitorFuncs[V any] struct {
	Description string

	Bool          func(v bool) (V, error)
	I8            func(v int8) (V, error)
	I16           func(v int16) (V, error)
	I32           func(v int32) (V, error)
	I64           func(v int64) (V, error)
	U8            func(v uint8) (V, error)
	U16           func(v uint16) (V, error)
	U32           func(v uint32) (V, error)
	U64           func(v uint64) (V, error)
	F32           func(v float32) (V, error)
	F64           func(v float64) (V, error)
	Char          func(v rune) (V, error)
	Str           func(v string) (V, error)
	BorrowedStr   func(v string) (V, error)
	String        func(v string) (V, error)
	Bytes         func(v []byte) (V, error)
	BorrowedBytes func(v []byte) (V, error)
	ByteBuf       func(v []byte) (V, error)
	None          func() (V, error)
	Some          func(d Deserializer) (V, error)
	Unit          func() (V, error)
	NewtypeStruct func(d Deserializer) (V, error)
	Seq           func(seq SeqAccess) (V, error)
	Map           func(m MapAccess) (V, error)
	Enum          func(e EnumAccess) (V, error)
}

var _ ValueVisitor[struct{}] = VisitorFuncs[struct{}]{}

func (f VisitorFuncs[V]) invalid(unexp serrors.Unexpected) (V, error) {
	var zero V

	return zero, serrors.InvalidType(unexp, f.Expecting())
}

func (f VisitorFuncs[V]) Expecting() string {
	if f.Description == "" {
		return "a value"
	}

	return f.Description
}

func (f VisitorFuncs[V]) VisitBool(v bool) (V, error) {
	if f.Bool != nil {
		return f.Bool(v)
	}

	return f.invalid(serrors.UnexpectedBool(v))
}

func (f VisitorFuncs[V]) VisitI8(v int8) (V, error) {
	if f.I8 != nil {
		return f.I8(v)
	}

	return f.VisitI64(int64(v))
}

func (f VisitorFuncs[V]) VisitI16(v int16) (V, error) {
	if f.I16 != nil {
		return f.I16(v)
	}

	return f.VisitI64(int64(v))
}

func (f VisitorFuncs[V]) VisitI32(v int32) (V, error) {
	if f.I32 != nil {
		return f.I32(v)
	}

	return f.VisitI64(int64(v))
}

func (f VisitorFuncs[V]) VisitI64(v int64) (V, error) {
	if f.I64 != nil {
		return f.I64(v)
	}

	return f.invalid(serrors.UnexpectedSigned(v))
}

func (f VisitorFuncs[V]) VisitU8(v uint8) (V, error) {
	if f.U8 != nil {
		return f.U8(v)
	}

	return f.VisitU64(uint64(v))
}

func (f VisitorFuncs[V]) VisitU16(v uint16) (V, error) {
	if f.U16 != nil {
		return f.U16(v)
	}

	return f.VisitU64(uint64(v))
}

func (f VisitorFuncs[V]) VisitU32(v uint32) (V, error) {
	if f.U32 != nil {
		return f.U32(v)
	}

	return f.VisitU64(uint64(v))
}

func (f VisitorFuncs[V]) VisitU64(v uint64) (V, error) {
	if f.U64 != nil {
		return f.U64(v)
	}

	return f.invalid(serrors.UnexpectedUnsigned(v))
}

func (f VisitorFuncs[V]) VisitF32(v float32) (V, error) {
	if f.F32 != nil {
		return f.F32(v)
	}

	return f.VisitF64(float64(v))
}

func (f VisitorFuncs[V]) VisitF64(v float64) (V, error) {
	if f.F64 != nil {
		return f.F64(v)
	}

	return f.invalid(serrors.UnexpectedFloat(v))
}

func (f VisitorFuncs[V]) VisitChar(v rune) (V, error) {
	if f.Char != nil {
		return f.Char(v)
	}

	return f.VisitStr(string(v))
}

func (f VisitorFuncs[V]) VisitStr(v string) (V, error) {
	if f.Str != nil {
		return f.Str(v)
	}

	return f.invalid(serrors.UnexpectedStr(v))
}

func (f VisitorFuncs[V]) VisitBorrowedStr(v string) (V, error) {
	if f.BorrowedStr != nil {
		return f.BorrowedStr(v)
	}

	return f.VisitStr(v)
}

func (f VisitorFuncs[V]) VisitString(v string) (V, error) {
	if f.String != nil {
		return f.String(v)
	}

	return f.VisitStr(v)
}

func (f VisitorFuncs[V]) VisitBytes(v []byte) (V, error) {
	if f.Bytes != nil {
		return f.Bytes(v)
	}

	return f.invalid(serrors.UnexpectedBytes(v))
}

func (f VisitorFuncs[V]) VisitBorrowedBytes(v []byte) (V, error) {
	if f.BorrowedBytes != nil {
		return f.BorrowedBytes(v)
	}

	return f.VisitBytes(v)
}

func (f VisitorFuncs[V]) VisitByteBuf(v []byte) (V, error) {
	if f.ByteBuf != nil {
		return f.ByteBuf(v)
	}

	return f.VisitBytes(v)
}

func (f VisitorFuncs[V]) VisitNone() (V, error) {
	if f.None != nil {
		return f.None()
	}

	return f.invalid(serrors.UnexpectedOption())
}

func (f VisitorFuncs[V]) VisitSome(d Deserializer) (V, error) {
	if f.Some != nil {
		return f.Some(d)
	}

	return f.invalid(serrors.UnexpectedOption())
}

func (f VisitorFuncs[V]) VisitUnit() (V, error) {
	if f.Unit != nil {
		return f.Unit()
	}

	return f.invalid(serrors.UnexpectedUnit())
}

func (f VisitorFuncs[V]) VisitNewtypeStruct(d Deserializer) (V, error) {
	if f.NewtypeStruct != nil {
		return f.NewtypeStruct(d)
	}

	return f.invalid(serrors.UnexpectedNewtypeStruct())
}

func (f VisitorFuncs[V]) VisitSeq(seq SeqAccess) (V, error) {
	if f.Seq != nil {
		return f.Seq(seq)
	}

	return f.invalid(serrors.UnexpectedSeq())
}

func (f VisitorFuncs[V]) VisitMap(m MapAccess) (V, error) {
	if f.Map != nil {
		return f.Map(m)
	}

	return f.invalid(serrors.UnexpectedMap())
}

func (f VisitorFuncs[V]) VisitEnum(e EnumAccess) (V, error) {
	if f.Enum != nil {
		return f.Enum(e)
	}

	return f.invalid(serrors.UnexpectedEnum())
}

// SeedFunc turns a function into a ValueSeed.
type SeedFunc[V any] func(d Deserializer) (V, error)

// Deserialize calls f.
func (f SeedFunc[V]) Deserialize(d Deserializer) (V, error) {
	return f(d)
}
