// Package de adapts decoding backends and value visitors to dynamically dispatched interfaces.
//
// A Backend is wrapped by an InplaceDeserializer, which implements Deserializer. A ValueVisitor is
// wrapped by an InplaceVisitor, which implements Visitor. Backends drive a BackendVisitor, and the glue in
// this package forwards those notifications into the erased Visitor, wrapping every nested cursor into a
// fresh adapter. Every adapter is single use and keeps its position in a slot.
package de

import (
	"github.com/iotaledger/dynserde/internal/slot"
	"github.com/iotaledger/dynserde/serrors"
)

// InplaceDeserializer wraps a Backend and accepts exactly one hint call.
type InplaceDeserializer struct {
	slot slot.Slot[Backend, struct{}]
	errs serrors.Factory
}

var _ Deserializer = (*InplaceDeserializer)(nil)

// NewDeserializer wraps b. Failures of b are reported in the error domain of b.
func NewDeserializer(b Backend) *InplaceDeserializer {
	return newDeserializer(b, serrors.FactoryOf(b))
}

func newDeserializer(b Backend, errs serrors.Factory) *InplaceDeserializer {
	return &InplaceDeserializer{
		slot: slot.New[Backend, struct{}](b),
		errs: errs,
	}
}

// Err returns the error captured from the backend, if the hint call failed.
func (d *InplaceDeserializer) Err() error {
	return d.slot.Err()
}

// Done tells whether the hint call already happened.
func (d *InplaceDeserializer) Done() bool {
	return d.slot.State() != slot.Holding
}

// Resolve turns an error returned by whoever drove d into the error of d's backend.
// The captured backend error wins over anything that could be rebuilt from err.
func (d *InplaceDeserializer) Resolve(err error) error {
	return d.resolve(err, d.errs)
}

func (d *InplaceDeserializer) resolve(err error, errs serrors.Factory) error {
	if err == nil {
		return nil
	}

	if captured := d.slot.Err(); captured != nil {
		return captured
	}

	return serrors.Into(err, errs)
}

// IsHumanReadable asks the backend until the hint call happened and reports true afterwards.
func (d *InplaceDeserializer) IsHumanReadable() bool {
	if b, ok := d.slot.Peek(); ok {
		return b.IsHumanReadable()
	}

	return true
}

func (d *InplaceDeserializer) forward(hint Hint, v Visitor, call func(Backend, BackendVisitor) error) error {
	b, ok := d.slot.Take()
	if !ok {
		return violation(serrors.SignalNotDeserializer, "Deserialize "+hint.String())
	}

	if err := call(b, &backendVisitor{visitor: v, errs: d.errs}); err != nil {
		d.slot.Fail(err)

		return serrors.SignalFailed
	}

	d.slot.Produce(struct{}{})

	return nil
}

func (d *InplaceDeserializer) DeserializeAny(v Visitor) error {
	return d.forward(HintAny, v, Backend.DeserializeAny)
}

func (d *InplaceDeserializer) DeserializeBool(v Visitor) error {
	return d.forward(HintBool, v, Backend.DeserializeBool)
}

func (d *InplaceDeserializer) DeserializeI8(v Visitor) error {
	return d.forward(HintI8, v, Backend.DeserializeI8)
}

func (d *InplaceDeserializer) DeserializeI16(v Visitor) error {
	return d.forward(HintI16, v, Backend.DeserializeI16)
}

func (d *InplaceDeserializer) DeserializeI32(v Visitor) error {
	return d.forward(HintI32, v, Backend.DeserializeI32)
}

func (d *InplaceDeserializer) DeserializeI64(v Visitor) error {
	return d.forward(HintI64, v, Backend.DeserializeI64)
}

func (d *InplaceDeserializer) DeserializeU8(v Visitor) error {
	return d.forward(HintU8, v, Backend.DeserializeU8)
}

func (d *InplaceDeserializer) DeserializeU16(v Visitor) error {
	return d.forward(HintU16, v, Backend.DeserializeU16)
}

func (d *InplaceDeserializer) DeserializeU32(v Visitor) error {
	return d.forward(HintU32, v, Backend.DeserializeU32)
}

func (d *InplaceDeserializer) DeserializeU64(v Visitor) error {
	return d.forward(HintU64, v, Backend.DeserializeU64)
}

func (d *InplaceDeserializer) DeserializeF32(v Visitor) error {
	return d.forward(HintF32, v, Backend.DeserializeF32)
}

func (d *InplaceDeserializer) DeserializeF64(v Visitor) error {
	return d.forward(HintF64, v, Backend.DeserializeF64)
}

func (d *InplaceDeserializer) DeserializeChar(v Visitor) error {
	return d.forward(HintChar, v, Backend.DeserializeChar)
}

func (d *InplaceDeserializer) DeserializeStr(v Visitor) error {
	return d.forward(HintStr, v, Backend.DeserializeStr)
}

func (d *InplaceDeserializer) DeserializeString(v Visitor) error {
	return d.forward(HintString, v, Backend.DeserializeString)
}

func (d *InplaceDeserializer) DeserializeBytes(v Visitor) error {
	return d.forward(HintBytes, v, Backend.DeserializeBytes)
}

func (d *InplaceDeserializer) DeserializeByteBuf(v Visitor) error {
	return d.forward(HintByteBuf, v, Backend.DeserializeByteBuf)
}

func (d *InplaceDeserializer) DeserializeOption(v Visitor) error {
	return d.forward(HintOption, v, Backend.DeserializeOption)
}

func (d *InplaceDeserializer) DeserializeUnit(v Visitor) error {
	return d.forward(HintUnit, v, Backend.DeserializeUnit)
}

func (d *InplaceDeserializer) DeserializeUnitStruct(name string, v Visitor) error {
	return d.forward(HintUnitStruct, v, func(b Backend, bv BackendVisitor) error {
		return b.DeserializeUnitStruct(name, bv)
	})
}

func (d *InplaceDeserializer) DeserializeNewtypeStruct(name string, v Visitor) error {
	return d.forward(HintNewtypeStruct, v, func(b Backend, bv BackendVisitor) error {
		return b.DeserializeNewtypeStruct(name, bv)
	})
}

func (d *InplaceDeserializer) DeserializeSeq(v Visitor) error {
	return d.forward(HintSeq, v, Backend.DeserializeSeq)
}

func (d *InplaceDeserializer) DeserializeTuple(length int, v Visitor) error {
	return d.forward(HintTuple, v, func(b Backend, bv BackendVisitor) error {
		return b.DeserializeTuple(length, bv)
	})
}

func (d *InplaceDeserializer) DeserializeTupleStruct(name string, length int, v Visitor) error {
	return d.forward(HintTupleStruct, v, func(b Backend, bv BackendVisitor) error {
		return b.DeserializeTupleStruct(name, length, bv)
	})
}

func (d *InplaceDeserializer) DeserializeMap(v Visitor) error {
	return d.forward(HintMap, v, Backend.DeserializeMap)
}

func (d *InplaceDeserializer) DeserializeStruct(name string, fields []string, v Visitor) error {
	return d.forward(HintStruct, v, func(b Backend, bv BackendVisitor) error {
		return b.DeserializeStruct(name, fields, bv)
	})
}

func (d *InplaceDeserializer) DeserializeEnum(name string, variants []string, v Visitor) error {
	return d.forward(HintEnum, v, func(b Backend, bv BackendVisitor) error {
		return b.DeserializeEnum(name, variants, bv)
	})
}

func (d *InplaceDeserializer) DeserializeIdentifier(v Visitor) error {
	return d.forward(HintIdentifier, v, Backend.DeserializeIdentifier)
}

func (d *InplaceDeserializer) DeserializeIgnoredAny(v Visitor) error {
	return d.forward(HintIgnoredAny, v, Backend.DeserializeIgnoredAny)
}
