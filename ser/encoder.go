package ser

import "fmt"

// UnknownLength is passed as the length of a sequence or map whose size is not known up front.
const UnknownLength = -1

// Encoder is the contract a concrete encoder implements.
// Every method consumes the encoder: it is called at most once, either producing the output or
// returning the builder that produces it.
// Errors are returned in the encoder's own error type.
type Encoder[Ok any] interface {
	SerializeBool(v bool) (Ok, error)
	SerializeI8(v int8) (Ok, error)
	SerializeI16(v int16) (Ok, error)
	SerializeI32(v int32) (Ok, error)
	SerializeI64(v int64) (Ok, error)
	SerializeU8(v uint8) (Ok, error)
	SerializeU16(v uint16) (Ok, error)
	SerializeU32(v uint32) (Ok, error)
	SerializeU64(v uint64) (Ok, error)
	SerializeF32(v float32) (Ok, error)
	SerializeF64(v float64) (Ok, error)
	SerializeChar(v rune) (Ok, error)
	SerializeStr(v string) (Ok, error)
	SerializeBytes(v []byte) (Ok, error)
	SerializeNone() (Ok, error)
	SerializeSome(v Serialize) (Ok, error)
	SerializeUnit() (Ok, error)
	SerializeUnitStruct(name string) (Ok, error)
	SerializeUnitVariant(name string, index uint32, variant string) (Ok, error)
	SerializeNewtypeStruct(name string, v Serialize) (Ok, error)
	SerializeNewtypeVariant(name string, index uint32, variant string, v Serialize) (Ok, error)
	SerializeSeq(length int) (SeqEncoder[Ok], error)
	SerializeTuple(length int) (TupleEncoder[Ok], error)
	SerializeTupleStruct(name string, length int) (TupleStructEncoder[Ok], error)
	SerializeTupleVariant(name string, index uint32, variant string, length int) (TupleVariantEncoder[Ok], error)
	SerializeMap(length int) (MapEncoder[Ok], error)
	SerializeStruct(name string, length int) (StructEncoder[Ok], error)
	SerializeStructVariant(name string, index uint32, variant string, length int) (StructVariantEncoder[Ok], error)
	CollectStr(v fmt.Stringer) (Ok, error)
	IsHumanReadable() bool
}

// SeqEncoder builds a sequence.
type SeqEncoder[Ok any] interface {
	SerializeElement(v Serialize) error
	End() (Ok, error)
}

// TupleEncoder builds a tuple.
type TupleEncoder[Ok any] interface {
	SerializeElement(v Serialize) error
	End() (Ok, error)
}

// TupleStructEncoder builds a tuple struct.
type TupleStructEncoder[Ok any] interface {
	SerializeField(v Serialize) error
	End() (Ok, error)
}

// TupleVariantEncoder builds a tuple variant.
type TupleVariantEncoder[Ok any] interface {
	SerializeField(v Serialize) error
	End() (Ok, error)
}

// MapEncoder builds a map.
type MapEncoder[Ok any] interface {
	SerializeKey(k Serialize) error
	SerializeValue(v Serialize) error
	SerializeEntry(k, v Serialize) error
	End() (Ok, error)
}

// StructEncoder builds a struct.
type StructEncoder[Ok any] interface {
	SerializeField(key string, v Serialize) error
	SkipField(key string) error
	End() (Ok, error)
}

// StructVariantEncoder builds a struct variant.
type StructVariantEncoder[Ok any] interface {
	SerializeField(key string, v Serialize) error
	SkipField(key string) error
	End() (Ok, error)
}
