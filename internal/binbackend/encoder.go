package binbackend

import (
	"fmt"
	"math"

	"github.com/iotaledger/dynserde/ser"
	"github.com/iotaledger/dynserde/serrors"
)

// encoder writes values in declaration order without any type information.
type encoder struct {
	w *writer
}

var _ ser.Encoder[struct{}] = encoder{}

func done(err error) (struct{}, error) {
	return struct{}{}, err
}

func (e encoder) SerializeBool(v bool) (struct{}, error) { return done(write(e.w, v)) }
func (e encoder) SerializeI8(v int8) (struct{}, error) { return done(write(e.w, v)) }
func (e encoder) SerializeI16(v int16) (struct{}, error) { return done(write(e.w, v)) }
func (e encoder) SerializeI32(v int32) (struct{}, error) { return done(write(e.w, v)) }
func (e encoder) SerializeI64(v int64) (struct{}, error) { return done(write(e.w, v)) }
func (e encoder) SerializeU8(v uint8) (struct{}, error) { return done(write(e.w, v)) }
func (e encoder) SerializeU16(v uint16) (struct{}, error) { return done(write(e.w, v)) }
func (e encoder) SerializeU32(v uint32) (struct{}, error) { return done(write(e.w, v)) }
func (e encoder) SerializeU64(v uint64) (struct{}, error) { return done(write(e.w, v)) }
func (e encoder) SerializeF32(v float32) (struct{}, error) { return done(write(e.w, math.Float32bits(v))) }
func (e encoder) SerializeF64(v float64) (struct{}, error) { return done(write(e.w, math.Float64bits(v))) }

// SerializeChar writes the code point as an uint32.
func (e encoder) SerializeChar(v rune) (struct{}, error) {
	return done(write(e.w, uint32(v)))
}

func (e encoder) SerializeStr(v string) (struct{}, error) {
	return done(writeBytesWithSize(e.w, []byte(v)))
}

func (e encoder) SerializeBytes(v []byte) (struct{}, error) {
	return done(writeBytesWithSize(e.w, v))
}

func (e encoder) SerializeNone() (struct{}, error) {
	return done(write(e.w, uint8(0)))
}

func (e encoder) SerializeSome(v ser.Serialize) (struct{}, error) {
	if err := write(e.w, uint8(1)); err != nil {
		return done(err)
	}

	return ser.Encode[struct{}](v, e)
}

func (e encoder) SerializeUnit() (struct{}, error) { return struct{}{}, nil }

func (e encoder) SerializeUnitStruct(string) (struct{}, error) { return struct{}{}, nil }

func (e encoder) SerializeUnitVariant(_ string, index uint32, _ string) (struct{}, error) {
	return done(write(e.w, index))
}

func (e encoder) SerializeNewtypeStruct(_ string, v ser.Serialize) (struct{}, error) {
	return ser.Encode[struct{}](v, e)
}

func (e encoder) SerializeNewtypeVariant(_ string, index uint32, _ string, v ser.Serialize) (struct{}, error) {
	if err := write(e.w, index); err != nil {
		return done(err)
	}

	return ser.Encode[struct{}](v, e)
}

// collection writes a length prefix that End fills in with the number of written elements.
func (e encoder) collection() *collectionEncoder {
	return &collectionEncoder{encoder: e, offset: e.w.reserve(), counted: true}
}

func (e encoder) fields() *collectionEncoder {
	return &collectionEncoder{encoder: e}
}

func (e encoder) SerializeSeq(int) (ser.SeqEncoder[struct{}], error) {
	return e.collection(), nil
}

func (e encoder) SerializeTuple(int) (ser.TupleEncoder[struct{}], error) {
	return e.fields(), nil
}

func (e encoder) SerializeTupleStruct(string, int) (ser.TupleStructEncoder[struct{}], error) {
	return e.fields(), nil
}

func (e encoder) SerializeTupleVariant(_ string, index uint32, _ string, _ int) (ser.TupleVariantEncoder[struct{}], error) {
	if err := write(e.w, index); err != nil {
		return nil, err
	}

	return e.fields(), nil
}

func (e encoder) SerializeMap(int) (ser.MapEncoder[struct{}], error) {
	return &mapEncoder{collectionEncoder: e.collection()}, nil
}

func (e encoder) SerializeStruct(string, int) (ser.StructEncoder[struct{}], error) {
	return &structEncoder{collectionEncoder: e.fields()}, nil
}

func (e encoder) SerializeStructVariant(_ string, index uint32, _ string, _ int) (ser.StructVariantEncoder[struct{}], error) {
	if err := write(e.w, index); err != nil {
		return nil, err
	}

	return &structEncoder{collectionEncoder: e.fields()}, nil
}

func (e encoder) CollectStr(v fmt.Stringer) (struct{}, error) {
	return e.SerializeStr(v.String())
}

func (e encoder) IsHumanReadable() bool { return false }

type collectionEncoder struct {
	encoder
	offset  int
	count   int
	counted bool
}

func (c *collectionEncoder) SerializeElement(v ser.Serialize) error {
	c.count++
	_, err := ser.Encode[struct{}](v, c.encoder)

	return err
}

func (c *collectionEncoder) SerializeField(v ser.Serialize) error {
	return c.SerializeElement(v)
}

func (c *collectionEncoder) End() (struct{}, error) {
	if !c.counted {
		return struct{}{}, nil
	}

	return done(c.w.patch(c.offset, c.count))
}

type mapEncoder struct {
	*collectionEncoder
}

func (m *mapEncoder) SerializeKey(k ser.Serialize) error {
	return m.SerializeElement(k)
}

func (m *mapEncoder) SerializeValue(v ser.Serialize) error {
	_, err := ser.Encode[struct{}](v, m.encoder)

	return err
}

func (m *mapEncoder) SerializeEntry(k, v ser.Serialize) error {
	if err := m.SerializeKey(k); err != nil {
		return err
	}

	return m.SerializeValue(v)
}

type structEncoder struct {
	*collectionEncoder
}

func (s *structEncoder) SerializeField(_ string, v ser.Serialize) error {
	return s.SerializeElement(v)
}

// SkipField is rejected because fields are identified by their position only.
func (s *structEncoder) SkipField(key string) error {
	return serrors.Customf("can't skip field %s in a positional format", key)
}
