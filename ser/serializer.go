// Package ser adapts encoding backends to a dynamically dispatched Serializer.
//
// A value implements Serialize against the Serializer mirror and never learns which Encoder sits
// behind it. Encode wraps an Encoder into an InplaceSerializer, lets the value drive it and hands back
// the encoder's output.
package ser

import "fmt"

// Serialize is implemented by values that can describe themselves to a Serializer.
type Serialize interface {
	Serialize(s Serializer) error
}

// Func turns a function into a Serialize.
type Func func(s Serializer) error

// Serialize calls f.
func (f Func) Serialize(s Serializer) error {
	return f(s)
}

// Serializer is the dynamically dispatched mirror of Encoder.
// Exactly one primitive or composite-begin call is legal per instance. A failed call returns a signal and
// the failure is kept by the adapter for whoever created it.
type Serializer interface {
	SerializeBool(v bool) error
	SerializeI8(v int8) error
	SerializeI16(v int16) error
	SerializeI32(v int32) error
	SerializeI64(v int64) error
	SerializeU8(v uint8) error
	SerializeU16(v uint16) error
	SerializeU32(v uint32) error
	SerializeU64(v uint64) error
	SerializeF32(v float32) error
	SerializeF64(v float64) error
	SerializeChar(v rune) error
	SerializeStr(v string) error
	SerializeBytes(v []byte) error
	SerializeNone() error
	SerializeSome(v Serialize) error
	SerializeUnit() error
	SerializeUnitStruct(name string) error
	SerializeUnitVariant(name string, index uint32, variant string) error
	SerializeNewtypeStruct(name string, v Serialize) error
	SerializeNewtypeVariant(name string, index uint32, variant string, v Serialize) error
	SerializeSeq(length int) (SerializeSeq, error)
	SerializeTuple(length int) (SerializeTuple, error)
	SerializeTupleStruct(name string, length int) (SerializeTupleStruct, error)
	SerializeTupleVariant(name string, index uint32, variant string, length int) (SerializeTupleVariant, error)
	SerializeMap(length int) (SerializeMap, error)
	SerializeStruct(name string, length int) (SerializeStruct, error)
	SerializeStructVariant(name string, index uint32, variant string, length int) (SerializeStructVariant, error)
	CollectStr(v fmt.Stringer) error
	IsHumanReadable() bool
}

// SerializeSeq is the mirror of SeqEncoder.
type SerializeSeq interface {
	SerializeElement(v Serialize) error
	End() error
}

// SerializeTuple is the mirror of TupleEncoder.
type SerializeTuple interface {
	SerializeElement(v Serialize) error
	End() error
}

// SerializeTupleStruct is the mirror of TupleStructEncoder.
type SerializeTupleStruct interface {
	SerializeField(v Serialize) error
	End() error
}

// SerializeTupleVariant is the mirror of TupleVariantEncoder.
type SerializeTupleVariant interface {
	SerializeField(v Serialize) error
	End() error
}

// SerializeMap is the mirror of MapEncoder.
type SerializeMap interface {
	SerializeKey(k Serialize) error
	SerializeValue(v Serialize) error
	SerializeEntry(k, v Serialize) error
	End() error
}

// SerializeStruct is the mirror of StructEncoder.
type SerializeStruct interface {
	SerializeField(key string, v Serialize) error
	SkipField(key string) error
	End() error
}

// SerializeStructVariant is the mirror of StructVariantEncoder.
type SerializeStructVariant interface {
	SerializeField(key string, v Serialize) error
	SkipField(key string) error
	End() error
}
