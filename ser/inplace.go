package ser

import (
	"fmt"

	"github.com/cockroachdb/errors"

	"github.com/iotaledger/dynserde/internal/slot"
	"github.com/iotaledger/dynserde/serrors"
)

// ErrIncomplete is returned by Result when the value never reached a terminal call.
var ErrIncomplete = errors.New("serialization did not complete")

type shape uint8

const (
	shapeSerializer shape = iota
	shapeSeq
	shapeTuple
	shapeTupleStruct
	shapeTupleVariant
	shapeMap
	shapeStruct
	shapeStructVariant
)

var shapeSignals = [...]serrors.Signal{
	shapeSerializer:    serrors.SignalNotSerializer,
	shapeSeq:           serrors.SignalNotSerializeSeq,
	shapeTuple:         serrors.SignalNotSerializeTuple,
	shapeTupleStruct:   serrors.SignalNotSerializeTupleStruct,
	shapeTupleVariant:  serrors.SignalNotSerializeTupleVariant,
	shapeMap:           serrors.SignalNotSerializeMap,
	shapeStruct:        serrors.SignalNotSerializeStruct,
	shapeStructVariant: serrors.SignalNotSerializeStructVariant,
}

// held is whatever the adapter currently owns. Only the field matching shape is set.
type held[Ok any] struct {
	shape         shape
	humanReadable bool

	encoder       Encoder[Ok]
	seq           SeqEncoder[Ok]
	tuple         TupleEncoder[Ok]
	tupleStruct   TupleStructEncoder[Ok]
	tupleVariant  TupleVariantEncoder[Ok]
	mapEnc        MapEncoder[Ok]
	structEnc     StructEncoder[Ok]
	structVariant StructVariantEncoder[Ok]
}

// InplaceSerializer wraps an Encoder and walks it through one primitive call, or one composite begin
// followed by any number of builder calls and one End.
type InplaceSerializer[Ok any] struct {
	slot slot.Slot[held[Ok], Ok]
	errs serrors.Factory
}

var _ Serializer = (*InplaceSerializer[struct{}])(nil)

// New wraps enc.
func New[Ok any](enc Encoder[Ok]) *InplaceSerializer[Ok] {
	return &InplaceSerializer[Ok]{
		slot: slot.New[held[Ok], Ok](held[Ok]{shape: shapeSerializer, encoder: enc}),
		errs: serrors.FactoryOf(enc),
	}
}

// Err returns the error captured from the encoder.
func (s *InplaceSerializer[Ok]) Err() error {
	return s.slot.Err()
}

// Result returns the encoder output. err is whatever the driving Serialize returned; the captured
// encoder error wins over it.
func (s *InplaceSerializer[Ok]) Result(err error) (Ok, error) {
	var zero Ok

	if captured := s.slot.Err(); captured != nil {
		return zero, captured
	}

	if err != nil {
		return zero, serrors.Into(err, s.errs)
	}

	out, ok := s.slot.TakeValue()
	if !ok {
		return zero, s.errs.Custom(ErrIncomplete.Error())
	}

	return out, nil
}

// IsHumanReadable reports the encoder's preference until the value is complete and true afterwards.
func (s *InplaceSerializer[Ok]) IsHumanReadable() bool {
	h, ok := s.slot.Peek()
	if !ok {
		return true
	}

	if h.shape == shapeSerializer {
		return h.encoder.IsHumanReadable()
	}

	return h.humanReadable
}

func (s *InplaceSerializer[Ok]) finish(out Ok, err error) error {
	if err != nil {
		s.slot.Fail(err)

		return serrors.SignalFailed
	}

	s.slot.Produce(out)

	return nil
}

func (s *InplaceSerializer[Ok]) take(want shape, call string) (held[Ok], error) {
	h, ok := s.slot.Peek()
	if !ok || h.shape != want {
		return h, violation(shapeSignals[want], call)
	}

	s.slot.Take()

	return h, nil
}

func (s *InplaceSerializer[Ok]) primitive(call string, fn func(Encoder[Ok]) (Ok, error)) error {
	h, err := s.take(shapeSerializer, call)
	if err != nil {
		return err
	}

	return s.finish(fn(h.encoder))
}

// begin moves the encoder out and stores the builder produced by fn.
func (s *InplaceSerializer[Ok]) begin(call string, fn func(enc Encoder[Ok], next *held[Ok]) error) error {
	h, err := s.take(shapeSerializer, call)
	if err != nil {
		return err
	}

	next := held[Ok]{humanReadable: h.encoder.IsHumanReadable()}
	if err := fn(h.encoder, &next); err != nil {
		s.slot.Fail(err)

		return serrors.SignalFailed
	}

	s.slot.Hold(next)

	return nil
}

// step runs one repeatable builder call and puts the builder back.
func (s *InplaceSerializer[Ok]) step(want shape, call string, fn func(h held[Ok]) error) error {
	h, err := s.take(want, call)
	if err != nil {
		return err
	}

	if err := fn(h); err != nil {
		s.slot.Fail(err)

		return serrors.SignalFailed
	}

	s.slot.Hold(h)

	return nil
}

func (s *InplaceSerializer[Ok]) end(want shape, call string, fn func(h held[Ok]) (Ok, error)) error {
	h, err := s.take(want, call)
	if err != nil {
		return err
	}

	return s.finish(fn(h))
}

func (s *InplaceSerializer[Ok]) SerializeBool(v bool) error {
	return s.primitive("SerializeBool", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeBool(v) })
}

func (s *InplaceSerializer[Ok]) SerializeI8(v int8) error {
	return s.primitive("SerializeI8", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeI8(v) })
}

func (s *InplaceSerializer[Ok]) SerializeI16(v int16) error {
	return s.primitive("SerializeI16", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeI16(v) })
}

func (s *InplaceSerializer[Ok]) SerializeI32(v int32) error {
	return s.primitive("SerializeI32", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeI32(v) })
}

func (s *InplaceSerializer[Ok]) SerializeI64(v int64) error {
	return s.primitive("SerializeI64", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeI64(v) })
}

func (s *InplaceSerializer[Ok]) SerializeU8(v uint8) error {
	return s.primitive("SerializeU8", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeU8(v) })
}

func (s *InplaceSerializer[Ok]) SerializeU16(v uint16) error {
	return s.primitive("SerializeU16", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeU16(v) })
}

func (s *InplaceSerializer[Ok]) SerializeU32(v uint32) error {
	return s.primitive("SerializeU32", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeU32(v) })
}

func (s *InplaceSerializer[Ok]) SerializeU64(v uint64) error {
	return s.primitive("SerializeU64", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeU64(v) })
}

func (s *InplaceSerializer[Ok]) SerializeF32(v float32) error {
	return s.primitive("SerializeF32", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeF32(v) })
}

func (s *InplaceSerializer[Ok]) SerializeF64(v float64) error {
	return s.primitive("SerializeF64", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeF64(v) })
}

func (s *InplaceSerializer[Ok]) SerializeChar(v rune) error {
	return s.primitive("SerializeChar", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeChar(v) })
}

func (s *InplaceSerializer[Ok]) SerializeStr(v string) error {
	return s.primitive("SerializeStr", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeStr(v) })
}

func (s *InplaceSerializer[Ok]) SerializeBytes(v []byte) error {
	return s.primitive("SerializeBytes", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeBytes(v) })
}

func (s *InplaceSerializer[Ok]) SerializeNone() error {
	return s.primitive("SerializeNone", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeNone() })
}

func (s *InplaceSerializer[Ok]) SerializeSome(v Serialize) error {
	return s.primitive("SerializeSome", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeSome(v) })
}

func (s *InplaceSerializer[Ok]) SerializeUnit() error {
	return s.primitive("SerializeUnit", func(enc Encoder[Ok]) (Ok, error) { return enc.SerializeUnit() })
}

func (s *InplaceSerializer[Ok]) SerializeUnitStruct(name string) error {
	return s.primitive("SerializeUnitStruct", func(enc Encoder[Ok]) (Ok, error) {
		return enc.SerializeUnitStruct(name)
	})
}

func (s *InplaceSerializer[Ok]) SerializeUnitVariant(name string, index uint32, variant string) error {
	return s.primitive("SerializeUnitVariant", func(enc Encoder[Ok]) (Ok, error) {
		return enc.SerializeUnitVariant(name, index, variant)
	})
}

func (s *InplaceSerializer[Ok]) SerializeNewtypeStruct(name string, v Serialize) error {
	return s.primitive("SerializeNewtypeStruct", func(enc Encoder[Ok]) (Ok, error) {
		return enc.SerializeNewtypeStruct(name, v)
	})
}

func (s *InplaceSerializer[Ok]) SerializeNewtypeVariant(name string, index uint32, variant string, v Serialize) error {
	return s.primitive("SerializeNewtypeVariant", func(enc Encoder[Ok]) (Ok, error) {
		return enc.SerializeNewtypeVariant(name, index, variant, v)
	})
}

// CollectStr is terminal like every primitive.
func (s *InplaceSerializer[Ok]) CollectStr(v fmt.Stringer) error {
	return s.primitive("CollectStr", func(enc Encoder[Ok]) (Ok, error) { return enc.CollectStr(v) })
}

func (s *InplaceSerializer[Ok]) SerializeSeq(length int) (SerializeSeq, error) {
	err := s.begin("SerializeSeq", func(enc Encoder[Ok], next *held[Ok]) (err error) {
		next.shape = shapeSeq
		next.seq, err = enc.SerializeSeq(length)

		return err
	})
	if err != nil {
		return nil, err
	}

	return seqView[Ok]{s}, nil
}

func (s *InplaceSerializer[Ok]) SerializeTuple(length int) (SerializeTuple, error) {
	err := s.begin("SerializeTuple", func(enc Encoder[Ok], next *held[Ok]) (err error) {
		next.shape = shapeTuple
		next.tuple, err = enc.SerializeTuple(length)

		return err
	})
	if err != nil {
		return nil, err
	}

	return tupleView[Ok]{s}, nil
}

func (s *InplaceSerializer[Ok]) SerializeTupleStruct(name string, length int) (SerializeTupleStruct, error) {
	err := s.begin("SerializeTupleStruct", func(enc Encoder[Ok], next *held[Ok]) (err error) {
		next.shape = shapeTupleStruct
		next.tupleStruct, err = enc.SerializeTupleStruct(name, length)

		return err
	})
	if err != nil {
		return nil, err
	}

	return tupleStructView[Ok]{s}, nil
}

func (s *InplaceSerializer[Ok]) SerializeTupleVariant(name string, index uint32, variant string, length int) (SerializeTupleVariant, error) {
	err := s.begin("SerializeTupleVariant", func(enc Encoder[Ok], next *held[Ok]) (err error) {
		next.shape = shapeTupleVariant
		next.tupleVariant, err = enc.SerializeTupleVariant(name, index, variant, length)

		return err
	})
	if err != nil {
		return nil, err
	}

	return tupleVariantView[Ok]{s}, nil
}

func (s *InplaceSerializer[Ok]) SerializeMap(length int) (SerializeMap, error) {
	err := s.begin("SerializeMap", func(enc Encoder[Ok], next *held[Ok]) (err error) {
		next.shape = shapeMap
		next.mapEnc, err = enc.SerializeMap(length)

		return err
	})
	if err != nil {
		return nil, err
	}

	return mapView[Ok]{s}, nil
}

func (s *InplaceSerializer[Ok]) SerializeStruct(name string, length int) (SerializeStruct, error) {
	err := s.begin("SerializeStruct", func(enc Encoder[Ok], next *held[Ok]) (err error) {
		next.shape = shapeStruct
		next.structEnc, err = enc.SerializeStruct(name, length)

		return err
	})
	if err != nil {
		return nil, err
	}

	return structView[Ok]{s}, nil
}

func (s *InplaceSerializer[Ok]) SerializeStructVariant(name string, index uint32, variant string, length int) (SerializeStructVariant, error) {
	err := s.begin("SerializeStructVariant", func(enc Encoder[Ok], next *held[Ok]) (err error) {
		next.shape = shapeStructVariant
		next.structVariant, err = enc.SerializeStructVariant(name, index, variant, length)

		return err
	})
	if err != nil {
		return nil, err
	}

	return structVariantView[Ok]{s}, nil
}
