package de

// Deserializer is the dynamically dispatched mirror of Backend.
// Exactly one hint call is legal per instance. A failed call returns a signal and the failure is kept by
// the adapter for whoever created it.
type Deserializer interface {
	DeserializeAny(v Visitor) error
	DeserializeBool(v Visitor) error
	DeserializeI8(v Visitor) error
	DeserializeI16(v Visitor) error
	DeserializeI32(v Visitor) error
	DeserializeI64(v Visitor) error
	DeserializeU8(v Visitor) error
	DeserializeU16(v Visitor) error
	DeserializeU32(v Visitor) error
	DeserializeU64(v Visitor) error
	DeserializeF32(v Visitor) error
	DeserializeF64(v Visitor) error
	DeserializeChar(v Visitor) error
	DeserializeStr(v Visitor) error
	DeserializeString(v Visitor) error
	DeserializeBytes(v Visitor) error
	DeserializeByteBuf(v Visitor) error
	DeserializeOption(v Visitor) error
	DeserializeUnit(v Visitor) error
	DeserializeUnitStruct(name string, v Visitor) error
	DeserializeNewtypeStruct(name string, v Visitor) error
	DeserializeSeq(v Visitor) error
	DeserializeTuple(length int, v Visitor) error
	DeserializeTupleStruct(name string, length int, v Visitor) error
	DeserializeMap(v Visitor) error
	DeserializeStruct(name string, fields []string, v Visitor) error
	DeserializeEnum(name string, variants []string, v Visitor) error
	DeserializeIdentifier(v Visitor) error
	DeserializeIgnoredAny(v Visitor) error
	IsHumanReadable() bool
}

// Visitor is the dynamically dispatched mirror of BackendVisitor.
type Visitor interface {
	Expecting() string
	VisitBool(v bool) error
	VisitI8(v int8) error
	VisitI16(v int16) error
	VisitI32(v int32) error
	VisitI64(v int64) error
	VisitU8(v uint8) error
	VisitU16(v uint16) error
	VisitU32(v uint32) error
	VisitU64(v uint64) error
	VisitF32(v float32) error
	VisitF64(v float64) error
	VisitChar(v rune) error
	VisitStr(v string) error
	VisitBorrowedStr(v string) error
	VisitString(v string) error
	VisitBytes(v []byte) error
	VisitBorrowedBytes(v []byte) error
	VisitByteBuf(v []byte) error
	VisitNone() error
	VisitSome(d Deserializer) error
	VisitUnit() error
	VisitNewtypeStruct(d Deserializer) error
	VisitSeq(seq SeqAccess) error
	VisitMap(m MapAccess) error
	VisitEnum(e EnumAccess) error
}

// DeserializeSeed consumes one Deserializer and keeps what it decoded.
type DeserializeSeed interface {
	Deserialize(d Deserializer) error
}

// SeqAccess is the mirror of SeqBackend.
type SeqAccess interface {
	NextElement(seed DeserializeSeed) (bool, error)
	SizeHint() (int, bool)
}

// MapAccess is the mirror of MapBackend.
type MapAccess interface {
	NextKey(seed DeserializeSeed) (bool, error)
	NextValue(seed DeserializeSeed) error
	NextEntry(key, value DeserializeSeed) (bool, error)
	SizeHint() (int, bool)
}

// EnumAccess is the mirror of EnumBackend.
type EnumAccess interface {
	Variant(seed DeserializeSeed) (VariantAccess, error)
}

// VariantAccess is the mirror of VariantBackend.
type VariantAccess interface {
	UnitVariant() error
	NewtypeVariant(seed DeserializeSeed) error
	TupleVariant(length int, v Visitor) error
	StructVariant(fields []string, v Visitor) error
}
