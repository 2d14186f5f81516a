// Package value is a dynamic document model that can be fed through the erased serializer and built by
// the erased deserializer from any self-describing backend.
package value

import (
	"github.com/iancoleman/orderedmap"
)

// Kind is the type of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindInt
	KindUint
	KindFloat
	KindString
	KindBytes
	KindArray
	KindObject
)

var kindNames = [...]string{
	KindNull:   "null",
	KindBool:   "bool",
	KindInt:    "int",
	KindUint:   "uint",
	KindFloat:  "float",
	KindString: "string",
	KindBytes:  "bytes",
	KindArray:  "array",
	KindObject: "object",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "invalid"
}

// Value is a dynamically typed document node. The zero value is Null.
// Objects keep their keys in insertion order.
type Value struct {
	kind     Kind
	boolean  bool
	signed   int64
	unsigned uint64
	float    float64
	text     string
	bytes    []byte
	elements []Value
	fields   *orderedmap.OrderedMap
}

// Pair is one field of an object.
type Pair struct {
	Key   string
	Value Value
}

func Null() Value { return Value{} }

func Bool(v bool) Value { return Value{kind: KindBool, boolean: v} }

func Int(v int64) Value { return Value{kind: KindInt, signed: v} }

func Uint(v uint64) Value { return Value{kind: KindUint, unsigned: v} }

func Float(v float64) Value { return Value{kind: KindFloat, float: v} }

func String(v string) Value { return Value{kind: KindString, text: v} }

// Bytes returns a byte array value owning a copy of v.
func Bytes(v []byte) Value { return Value{kind: KindBytes, bytes: append([]byte{}, v...)} }

// Array returns an array of elements.
func Array(elements ...Value) Value {
	return Value{kind: KindArray, elements: append([]Value{}, elements...)}
}

// Object returns an object with pairs in the given order. A repeated key keeps its first position and its
// last value.
func Object(pairs ...Pair) Value {
	fields := orderedmap.New()
	for _, pair := range pairs {
		fields.Set(pair.Key, pair.Value)
	}

	return Value{kind: KindObject, fields: fields}
}

// Kind returns the type of v.
func (v Value) Kind() Kind {
	return v.kind
}

// IsNull tells whether v is Null.
func (v Value) IsNull() bool {
	return v.kind == KindNull
}

func (v Value) AsBool() (bool, bool) {
	return v.boolean, v.kind == KindBool
}

// AsInt returns v as a signed integer if it is an integer that fits.
func (v Value) AsInt() (int64, bool) {
	switch v.kind {
	case KindInt:
		return v.signed, true
	case KindUint:
		return int64(v.unsigned), v.unsigned <= 1<<63-1
	default:
		return 0, false
	}
}

// AsUint returns v as an unsigned integer if it is a non-negative integer.
func (v Value) AsUint() (uint64, bool) {
	switch v.kind {
	case KindUint:
		return v.unsigned, true
	case KindInt:
		return uint64(v.signed), v.signed >= 0
	default:
		return 0, false
	}
}

// AsFloat returns any number as a float.
func (v Value) AsFloat() (float64, bool) {
	switch v.kind {
	case KindFloat:
		return v.float, true
	case KindInt:
		return float64(v.signed), true
	case KindUint:
		return float64(v.unsigned), true
	default:
		return 0, false
	}
}

func (v Value) AsString() (string, bool) {
	return v.text, v.kind == KindString
}

func (v Value) AsBytes() ([]byte, bool) {
	return v.bytes, v.kind == KindBytes
}

// Elements returns the elements of an array.
func (v Value) Elements() []Value {
	return v.elements
}

// Keys returns the keys of an object in order.
func (v Value) Keys() []string {
	if v.fields == nil {
		return nil
	}

	return v.fields.Keys()
}

// Field returns the field key of an object.
func (v Value) Field(key string) (Value, bool) {
	if v.fields == nil {
		return Value{}, false
	}

	field, ok := v.fields.Get(key)
	if !ok {
		return Value{}, false
	}

	//nolint:forcetypeassert // only Values are stored
	return field.(Value), true
}

// Lookup walks nested objects along path.
func (v Value) Lookup(path ...string) (Value, bool) {
	current := v
	for _, key := range path {
		next, ok := current.Field(key)
		if !ok {
			return Value{}, false
		}
		current = next
	}

	return current, true
}

// Pairs returns the fields of an object in order.
func (v Value) Pairs() []Pair {
	keys := v.Keys()
	pairs := make([]Pair, 0, len(keys))
	for _, key := range keys {
		field, _ := v.Field(key)
		pairs = append(pairs, Pair{Key: key, Value: field})
	}

	return pairs
}

// Len returns the number of elements of an array, fields of an object or bytes of a string or byte array.
func (v Value) Len() int {
	switch v.kind {
	case KindArray:
		return len(v.elements)
	case KindObject:
		return len(v.Keys())
	case KindString:
		return len(v.text)
	case KindBytes:
		return len(v.bytes)
	default:
		return 0
	}
}
