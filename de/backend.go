package de

// Backend is the contract a concrete decoder implements.
// Every hint method consumes the backend: it is called at most once and drives v with what it decoded.
// Errors are returned in the backend's own error type; a backend with its own type implements
// serrors.Domain so that visitor failures are rebuilt in that type.
type Backend interface {
	DeserializeAny(v BackendVisitor) error
	DeserializeBool(v BackendVisitor) error
	DeserializeI8(v BackendVisitor) error
	DeserializeI16(v BackendVisitor) error
	DeserializeI32(v BackendVisitor) error
	DeserializeI64(v BackendVisitor) error
	DeserializeU8(v BackendVisitor) error
	DeserializeU16(v BackendVisitor) error
	DeserializeU32(v BackendVisitor) error
	DeserializeU64(v BackendVisitor) error
	DeserializeF32(v BackendVisitor) error
	DeserializeF64(v BackendVisitor) error
	DeserializeChar(v BackendVisitor) error
	DeserializeStr(v BackendVisitor) error
	DeserializeString(v BackendVisitor) error
	DeserializeBytes(v BackendVisitor) error
	DeserializeByteBuf(v BackendVisitor) error
	DeserializeOption(v BackendVisitor) error
	DeserializeUnit(v BackendVisitor) error
	DeserializeUnitStruct(name string, v BackendVisitor) error
	DeserializeNewtypeStruct(name string, v BackendVisitor) error
	DeserializeSeq(v BackendVisitor) error
	DeserializeTuple(length int, v BackendVisitor) error
	DeserializeTupleStruct(name string, length int, v BackendVisitor) error
	DeserializeMap(v BackendVisitor) error
	DeserializeStruct(name string, fields []string, v BackendVisitor) error
	DeserializeEnum(name string, variants []string, v BackendVisitor) error
	DeserializeIdentifier(v BackendVisitor) error
	DeserializeIgnoredAny(v BackendVisitor) error
	IsHumanReadable() bool
}

// BackendVisitor is what a Backend drives. It receives exactly one notification.
// Nested cursors are handed over by value and the returned errors belong to the backend.
type BackendVisitor interface {
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
	// VisitStr delivers a string that is only valid for the duration of the call.
	VisitStr(v string) error
	// VisitBorrowedStr delivers a string that lives as long as the backend's input.
	VisitBorrowedStr(v string) error
	// VisitString hands over ownership of the string.
	VisitString(v string) error
	VisitBytes(v []byte) error
	VisitBorrowedBytes(v []byte) error
	VisitByteBuf(v []byte) error
	VisitNone() error
	VisitSome(d Backend) error
	VisitUnit() error
	VisitNewtypeStruct(d Backend) error
	VisitSeq(seq SeqBackend) error
	VisitMap(m MapBackend) error
	VisitEnum(e EnumBackend) error
}

// BackendSeed is what a composite cursor hands each element decoder to.
type BackendSeed interface {
	Deserialize(d Backend) error
}

// SeqBackend is a cursor over the elements of a sequence.
type SeqBackend interface {
	// NextElement decodes the next element through seed and reports whether there was one.
	NextElement(seed BackendSeed) (bool, error)
	// SizeHint returns the number of remaining elements if known.
	SizeHint() (int, bool)
}

// MapBackend is a cursor over the entries of a map.
type MapBackend interface {
	NextKey(seed BackendSeed) (bool, error)
	NextValue(seed BackendSeed) error
	NextEntry(key, value BackendSeed) (bool, error)
	SizeHint() (int, bool)
}

// EnumBackend resolves the variant of an enum. It is consumed by Variant.
type EnumBackend interface {
	Variant(seed BackendSeed) (VariantBackend, error)
}

// VariantBackend decodes the payload of a resolved variant. It is consumed by one of its methods.
type VariantBackend interface {
	UnitVariant() error
	NewtypeVariant(seed BackendSeed) error
	TupleVariant(length int, v BackendVisitor) error
	StructVariant(fields []string, v BackendVisitor) error
}
