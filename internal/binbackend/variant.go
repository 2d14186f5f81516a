package binbackend

import (
	"github.com/iotaledger/dynserde/de"
	"github.com/iotaledger/dynserde/serrors"
)

// variantIndex decodes an enum tag. Integer hints get the index, string hints the variant name.
type variantIndex struct {
	index    uint32
	variants []string
}

var _ de.Backend = variantIndex{}

func (t variantIndex) IsHumanReadable() bool { return false }

func (t variantIndex) name(v de.BackendVisitor) error {
	if int(t.index) >= len(t.variants) {
		return serrors.InvalidValue(serrors.UnexpectedUnsigned(uint64(t.index)), "a known variant index")
	}

	return v.VisitStr(t.variants[t.index])
}

func (t variantIndex) number(v de.BackendVisitor) error { return v.VisitU32(t.index) }

func (t variantIndex) DeserializeAny(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeBool(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeI8(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeI16(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeI32(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeI64(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeU8(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeU16(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeU32(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeU64(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeF32(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeF64(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeChar(v de.BackendVisitor) error { return t.name(v) }
func (t variantIndex) DeserializeStr(v de.BackendVisitor) error { return t.name(v) }
func (t variantIndex) DeserializeString(v de.BackendVisitor) error { return t.name(v) }
func (t variantIndex) DeserializeBytes(v de.BackendVisitor) error { return t.name(v) }
func (t variantIndex) DeserializeByteBuf(v de.BackendVisitor) error { return t.name(v) }
func (t variantIndex) DeserializeIdentifier(v de.BackendVisitor) error { return t.name(v) }
func (t variantIndex) DeserializeIgnoredAny(v de.BackendVisitor) error { return v.VisitUnit() }
func (t variantIndex) DeserializeOption(v de.BackendVisitor) error { return v.VisitSome(t) }
func (t variantIndex) DeserializeUnit(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeSeq(v de.BackendVisitor) error { return t.number(v) }
func (t variantIndex) DeserializeMap(v de.BackendVisitor) error { return t.number(v) }

func (t variantIndex) DeserializeUnitStruct(_ string, v de.BackendVisitor) error { return t.number(v) }

func (t variantIndex) DeserializeNewtypeStruct(_ string, v de.BackendVisitor) error {
	return v.VisitNewtypeStruct(t)
}

func (t variantIndex) DeserializeTuple(_ int, v de.BackendVisitor) error { return t.number(v) }

func (t variantIndex) DeserializeTupleStruct(_ string, _ int, v de.BackendVisitor) error {
	return t.number(v)
}

func (t variantIndex) DeserializeStruct(_ string, _ []string, v de.BackendVisitor) error {
	return t.number(v)
}

func (t variantIndex) DeserializeEnum(_ string, _ []string, v de.BackendVisitor) error {
	return t.number(v)
}
