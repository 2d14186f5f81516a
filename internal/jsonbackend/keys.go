package jsonbackend

import (
	"fmt"
	"strconv"

	"github.com/iotaledger/dynserde/de"
	"github.com/iotaledger/dynserde/ser"
	"github.com/iotaledger/dynserde/serrors"
)

// keyEncoder writes object keys. Strings are written as is, integers and booleans are quoted and every
// other shape is rejected.
type keyEncoder struct {
	encoder
}

var _ ser.Encoder[struct{}] = keyEncoder{}

func keyMustBeString() (struct{}, error) {
	return struct{}{}, newError(serrors.KindCustom, "key must be a string")
}

func (k keyEncoder) quoted(v string) (struct{}, error) {
	k.str(v)

	return k.done()
}

func (k keyEncoder) SerializeBool(v bool) (struct{}, error) { return k.quoted(strconv.FormatBool(v)) }

func (k keyEncoder) SerializeI8(v int8) (struct{}, error) { return k.quoted(strconv.FormatInt(int64(v), 10)) }

func (k keyEncoder) SerializeI16(v int16) (struct{}, error) {
	return k.quoted(strconv.FormatInt(int64(v), 10))
}

func (k keyEncoder) SerializeI32(v int32) (struct{}, error) {
	return k.quoted(strconv.FormatInt(int64(v), 10))
}

func (k keyEncoder) SerializeI64(v int64) (struct{}, error) { return k.quoted(strconv.FormatInt(v, 10)) }

func (k keyEncoder) SerializeU8(v uint8) (struct{}, error) {
	return k.quoted(strconv.FormatUint(uint64(v), 10))
}

func (k keyEncoder) SerializeU16(v uint16) (struct{}, error) {
	return k.quoted(strconv.FormatUint(uint64(v), 10))
}

func (k keyEncoder) SerializeU32(v uint32) (struct{}, error) {
	return k.quoted(strconv.FormatUint(uint64(v), 10))
}

func (k keyEncoder) SerializeU64(v uint64) (struct{}, error) { return k.quoted(strconv.FormatUint(v, 10)) }

func (k keyEncoder) SerializeF32(float32) (struct{}, error) { return keyMustBeString() }

func (k keyEncoder) SerializeF64(float64) (struct{}, error) { return keyMustBeString() }

func (k keyEncoder) SerializeChar(v rune) (struct{}, error) { return k.quoted(string(v)) }

func (k keyEncoder) SerializeStr(v string) (struct{}, error) { return k.quoted(v) }

func (k keyEncoder) SerializeBytes([]byte) (struct{}, error) { return keyMustBeString() }

func (k keyEncoder) SerializeNone() (struct{}, error) { return keyMustBeString() }

func (k keyEncoder) SerializeSome(v ser.Serialize) (struct{}, error) { return ser.Encode[struct{}](v, k) }

func (k keyEncoder) SerializeUnit() (struct{}, error) { return keyMustBeString() }

func (k keyEncoder) SerializeUnitStruct(string) (struct{}, error) { return keyMustBeString() }

func (k keyEncoder) SerializeUnitVariant(_ string, _ uint32, variant string) (struct{}, error) {
	return k.quoted(variant)
}

func (k keyEncoder) SerializeNewtypeStruct(_ string, v ser.Serialize) (struct{}, error) {
	return ser.Encode[struct{}](v, k)
}

func (k keyEncoder) SerializeNewtypeVariant(string, uint32, string, ser.Serialize) (struct{}, error) {
	return keyMustBeString()
}

func (k keyEncoder) SerializeSeq(int) (ser.SeqEncoder[struct{}], error) {
	_, err := keyMustBeString()

	return nil, err
}

func (k keyEncoder) SerializeTuple(int) (ser.TupleEncoder[struct{}], error) {
	_, err := keyMustBeString()

	return nil, err
}

func (k keyEncoder) SerializeTupleStruct(string, int) (ser.TupleStructEncoder[struct{}], error) {
	_, err := keyMustBeString()

	return nil, err
}

func (k keyEncoder) SerializeTupleVariant(string, uint32, string, int) (ser.TupleVariantEncoder[struct{}], error) {
	_, err := keyMustBeString()

	return nil, err
}

func (k keyEncoder) SerializeMap(int) (ser.MapEncoder[struct{}], error) {
	_, err := keyMustBeString()

	return nil, err
}

func (k keyEncoder) SerializeStruct(string, int) (ser.StructEncoder[struct{}], error) {
	_, err := keyMustBeString()

	return nil, err
}

func (k keyEncoder) SerializeStructVariant(string, uint32, string, int) (ser.StructVariantEncoder[struct{}], error) {
	_, err := keyMustBeString()

	return nil, err
}

func (k keyEncoder) CollectStr(v fmt.Stringer) (struct{}, error) { return k.quoted(v.String()) }

// keyDecoder reads an object key. Numeric and boolean hints parse the key text.
type keyDecoder string

var _ de.Backend = keyDecoder("")

func (k keyDecoder) Errors() serrors.Factory { return Errors }

func (k keyDecoder) IsHumanReadable() bool { return true }

func (k keyDecoder) invalid(exp string) error {
	return Errors.InvalidValue(serrors.UnexpectedStr(string(k)), exp)
}

func (k keyDecoder) signed(bits int, visit func(int64) error) error {
	i, err := strconv.ParseInt(string(k), 10, bits)
	if err != nil {
		return k.invalid(fmt.Sprintf("a %d bit signed integer", bits))
	}

	return visit(i)
}

func (k keyDecoder) unsigned(bits int, visit func(uint64) error) error {
	u, err := strconv.ParseUint(string(k), 10, bits)
	if err != nil {
		return k.invalid(fmt.Sprintf("a %d bit unsigned integer", bits))
	}

	return visit(u)
}

func (k keyDecoder) float(bits int, visit func(float64) error) error {
	f, err := strconv.ParseFloat(string(k), bits)
	if err != nil {
		return k.invalid("a floating point number")
	}

	return visit(f)
}

func (k keyDecoder) DeserializeAny(v de.BackendVisitor) error { return v.VisitString(string(k)) }

func (k keyDecoder) DeserializeBool(v de.BackendVisitor) error {
	b, err := strconv.ParseBool(string(k))
	if err != nil {
		return k.invalid("a boolean")
	}

	return v.VisitBool(b)
}

func (k keyDecoder) DeserializeI8(v de.BackendVisitor) error {
	return k.signed(8, func(i int64) error { return v.VisitI8(int8(i)) })
}

func (k keyDecoder) DeserializeI16(v de.BackendVisitor) error {
	return k.signed(16, func(i int64) error { return v.VisitI16(int16(i)) })
}

func (k keyDecoder) DeserializeI32(v de.BackendVisitor) error {
	return k.signed(32, func(i int64) error { return v.VisitI32(int32(i)) })
}

func (k keyDecoder) DeserializeI64(v de.BackendVisitor) error {
	return k.signed(64, v.VisitI64)
}

func (k keyDecoder) DeserializeU8(v de.BackendVisitor) error {
	return k.unsigned(8, func(u uint64) error { return v.VisitU8(uint8(u)) })
}

func (k keyDecoder) DeserializeU16(v de.BackendVisitor) error {
	return k.unsigned(16, func(u uint64) error { return v.VisitU16(uint16(u)) })
}

func (k keyDecoder) DeserializeU32(v de.BackendVisitor) error {
	return k.unsigned(32, func(u uint64) error { return v.VisitU32(uint32(u)) })
}

func (k keyDecoder) DeserializeU64(v de.BackendVisitor) error {
	return k.unsigned(64, v.VisitU64)
}

func (k keyDecoder) DeserializeF32(v de.BackendVisitor) error {
	return k.float(32, func(f float64) error { return v.VisitF32(float32(f)) })
}

func (k keyDecoder) DeserializeF64(v de.BackendVisitor) error {
	return k.float(64, v.VisitF64)
}

func (k keyDecoder) DeserializeChar(v de.BackendVisitor) error   { return k.DeserializeAny(v) }
func (k keyDecoder) DeserializeStr(v de.BackendVisitor) error    { return k.DeserializeAny(v) }
func (k keyDecoder) DeserializeString(v de.BackendVisitor) error { return k.DeserializeAny(v) }

func (k keyDecoder) DeserializeBytes(v de.BackendVisitor) error { return v.VisitBytes([]byte(k)) }

func (k keyDecoder) DeserializeByteBuf(v de.BackendVisitor) error { return v.VisitByteBuf([]byte(k)) }

func (k keyDecoder) DeserializeOption(v de.BackendVisitor) error { return v.VisitSome(k) }

func (k keyDecoder) DeserializeUnit(de.BackendVisitor) error { return k.invalid("unit") }

func (k keyDecoder) DeserializeUnitStruct(name string, _ de.BackendVisitor) error {
	return k.invalid("unit struct " + name)
}

func (k keyDecoder) DeserializeNewtypeStruct(_ string, v de.BackendVisitor) error {
	return v.VisitNewtypeStruct(k)
}

func (k keyDecoder) DeserializeSeq(de.BackendVisitor) error { return k.invalid("a sequence") }

func (k keyDecoder) DeserializeTuple(int, de.BackendVisitor) error { return k.invalid("a tuple") }

func (k keyDecoder) DeserializeTupleStruct(name string, _ int, _ de.BackendVisitor) error {
	return k.invalid("tuple struct " + name)
}

func (k keyDecoder) DeserializeMap(de.BackendVisitor) error { return k.invalid("a map") }

func (k keyDecoder) DeserializeStruct(name string, _ []string, _ de.BackendVisitor) error {
	return k.invalid("struct " + name)
}

// DeserializeEnum reads the key as the name of a unit variant.
func (k keyDecoder) DeserializeEnum(_ string, _ []string, v de.BackendVisitor) error {
	return v.VisitEnum(&enumCursor{tag: string(k), unit: true})
}

func (k keyDecoder) DeserializeIdentifier(v de.BackendVisitor) error { return k.DeserializeAny(v) }

func (k keyDecoder) DeserializeIgnoredAny(v de.BackendVisitor) error { return v.VisitUnit() }
