package jsonbackend

import (
	"encoding/base64"
	"fmt"
	"math"
	"strconv"

	jsoniter "github.com/json-iterator/go"

	"github.com/iotaledger/dynserde/ser"
	"github.com/iotaledger/dynserde/serrors"
)

// encoder writes one JSON value into a shared stream.
type encoder struct {
	stream *jsoniter.Stream
}

var _ ser.Encoder[struct{}] = encoder{}

func (e encoder) Errors() serrors.Factory { return Errors }

func (e encoder) done() (struct{}, error) {
	if e.stream.Error != nil {
		return struct{}{}, newError(serrors.KindCustom, e.stream.Error.Error())
	}

	return struct{}{}, nil
}

func (e encoder) str(v string) {
	e.stream.WriteStringWithHTMLEscaped(v)
}

func (e encoder) SerializeBool(v bool) (struct{}, error) {
	e.stream.WriteBool(v)

	return e.done()
}

func (e encoder) SerializeI8(v int8) (struct{}, error) {
	e.stream.WriteInt8(v)

	return e.done()
}

func (e encoder) SerializeI16(v int16) (struct{}, error) {
	e.stream.WriteInt16(v)

	return e.done()
}

func (e encoder) SerializeI32(v int32) (struct{}, error) {
	e.stream.WriteInt32(v)

	return e.done()
}

func (e encoder) SerializeI64(v int64) (struct{}, error) {
	e.stream.WriteInt64(v)

	return e.done()
}

func (e encoder) SerializeU8(v uint8) (struct{}, error) {
	e.stream.WriteUint8(v)

	return e.done()
}

func (e encoder) SerializeU16(v uint16) (struct{}, error) {
	e.stream.WriteUint16(v)

	return e.done()
}

func (e encoder) SerializeU32(v uint32) (struct{}, error) {
	e.stream.WriteUint32(v)

	return e.done()
}

func (e encoder) SerializeU64(v uint64) (struct{}, error) {
	e.stream.WriteUint64(v)

	return e.done()
}

func (e encoder) SerializeF32(v float32) (struct{}, error) {
	if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
		return struct{}{}, newError(serrors.KindCustom, "unsupported value: "+strconv.FormatFloat(float64(v), 'g', -1, 32))
	}
	e.stream.WriteFloat32(v)

	return e.done()
}

func (e encoder) SerializeF64(v float64) (struct{}, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return struct{}{}, newError(serrors.KindCustom, "unsupported value: "+strconv.FormatFloat(v, 'g', -1, 64))
	}
	e.stream.WriteFloat64(v)

	return e.done()
}

func (e encoder) SerializeChar(v rune) (struct{}, error) {
	e.str(string(v))

	return e.done()
}

func (e encoder) SerializeStr(v string) (struct{}, error) {
	e.str(v)

	return e.done()
}

// SerializeBytes writes standard base64 like encoding/json does for []byte.
func (e encoder) SerializeBytes(v []byte) (struct{}, error) {
	e.str(base64.StdEncoding.EncodeToString(v))

	return e.done()
}

func (e encoder) SerializeNone() (struct{}, error) {
	e.stream.WriteNil()

	return e.done()
}

func (e encoder) SerializeSome(v ser.Serialize) (struct{}, error) {
	return ser.Encode[struct{}](v, e)
}

func (e encoder) SerializeUnit() (struct{}, error) {
	e.stream.WriteNil()

	return e.done()
}

func (e encoder) SerializeUnitStruct(string) (struct{}, error) {
	return e.SerializeUnit()
}

func (e encoder) SerializeUnitVariant(_ string, _ uint32, variant string) (struct{}, error) {
	return e.SerializeStr(variant)
}

func (e encoder) SerializeNewtypeStruct(_ string, v ser.Serialize) (struct{}, error) {
	return ser.Encode[struct{}](v, e)
}

// SerializeNewtypeVariant writes {"variant":value}.
func (e encoder) SerializeNewtypeVariant(_ string, _ uint32, variant string, v ser.Serialize) (struct{}, error) {
	e.stream.WriteObjectStart()
	e.field(variant)
	if _, err := ser.Encode[struct{}](v, e); err != nil {
		return struct{}{}, err
	}
	e.stream.WriteObjectEnd()

	return e.done()
}

func (e encoder) field(key string) {
	e.str(key)
	e.stream.WriteRaw(":")
}

func (e encoder) array() *arrayEncoder {
	e.stream.WriteArrayStart()

	return &arrayEncoder{encoder: e, first: true}
}

func (e encoder) SerializeSeq(int) (ser.SeqEncoder[struct{}], error) {
	return e.array(), nil
}

func (e encoder) SerializeTuple(int) (ser.TupleEncoder[struct{}], error) {
	return e.array(), nil
}

func (e encoder) SerializeTupleStruct(string, int) (ser.TupleStructEncoder[struct{}], error) {
	return e.array(), nil
}

// SerializeTupleVariant writes {"variant":[...]}.
func (e encoder) SerializeTupleVariant(_ string, _ uint32, variant string, _ int) (ser.TupleVariantEncoder[struct{}], error) {
	e.stream.WriteObjectStart()
	e.field(variant)
	a := e.array()
	a.closeVariant = true

	return a, nil
}

func (e encoder) object() *objectEncoder {
	e.stream.WriteObjectStart()

	return &objectEncoder{encoder: e, first: true}
}

func (e encoder) SerializeMap(int) (ser.MapEncoder[struct{}], error) {
	return e.object(), nil
}

func (e encoder) SerializeStruct(string, int) (ser.StructEncoder[struct{}], error) {
	return e.object(), nil
}

// SerializeStructVariant writes {"variant":{...}}.
func (e encoder) SerializeStructVariant(_ string, _ uint32, variant string, _ int) (ser.StructVariantEncoder[struct{}], error) {
	e.stream.WriteObjectStart()
	e.field(variant)
	o := e.object()
	o.closeVariant = true

	return o, nil
}

func (e encoder) CollectStr(v fmt.Stringer) (struct{}, error) {
	return e.SerializeStr(v.String())
}

func (e encoder) IsHumanReadable() bool { return true }

type arrayEncoder struct {
	encoder
	first        bool
	closeVariant bool
}

func (a *arrayEncoder) SerializeElement(v ser.Serialize) error {
	if !a.first {
		a.stream.WriteMore()
	}
	a.first = false

	_, err := ser.Encode[struct{}](v, a.encoder)

	return err
}

func (a *arrayEncoder) SerializeField(v ser.Serialize) error {
	return a.SerializeElement(v)
}

func (a *arrayEncoder) End() (struct{}, error) {
	a.stream.WriteArrayEnd()
	if a.closeVariant {
		a.stream.WriteObjectEnd()
	}

	return a.done()
}

type objectEncoder struct {
	encoder
	first        bool
	closeVariant bool
}

func (o *objectEncoder) next() {
	if !o.first {
		o.stream.WriteMore()
	}
	o.first = false
}

func (o *objectEncoder) SerializeKey(k ser.Serialize) error {
	o.next()
	_, err := ser.Encode[struct{}](k, keyEncoder{o.encoder})

	return err
}

func (o *objectEncoder) SerializeValue(v ser.Serialize) error {
	o.stream.WriteRaw(":")
	_, err := ser.Encode[struct{}](v, o.encoder)

	return err
}

func (o *objectEncoder) SerializeEntry(k, v ser.Serialize) error {
	if err := o.SerializeKey(k); err != nil {
		return err
	}

	return o.SerializeValue(v)
}

func (o *objectEncoder) SerializeField(key string, v ser.Serialize) error {
	o.next()
	o.str(key)

	return o.SerializeValue(v)
}

func (o *objectEncoder) SkipField(string) error {
	return nil
}

func (o *objectEncoder) End() (struct{}, error) {
	o.stream.WriteObjectEnd()
	if o.closeVariant {
		o.stream.WriteObjectEnd()
	}

	return o.done()
}
