package binbackend

import (
	"math"
	"unicode/utf8"

	"github.com/iotaledger/dynserde/de"
	"github.com/iotaledger/dynserde/serrors"
)

const notSelfDescribing = "the binary format is not self-describing"

// decoder reads what the hint asks for, the input carries no type information.
type decoder struct {
	r *reader
}

var _ de.Backend = (*decoder)(nil)

func (d *decoder) IsHumanReadable() bool { return false }

func (d *decoder) DeserializeAny(de.BackendVisitor) error {
	return serrors.Custom(notSelfDescribing)
}

func (d *decoder) DeserializeIgnoredAny(de.BackendVisitor) error {
	return serrors.Custom(notSelfDescribing)
}

func visit[T fixed](d *decoder, fn func(T) error) error {
	v, err := read[T](d.r)
	if err != nil {
		return err
	}

	return fn(v)
}

func (d *decoder) DeserializeBool(v de.BackendVisitor) error {
	return visit(d, func(b uint8) error {
		switch b {
		case 0:
			return v.VisitBool(false)
		case 1:
			return v.VisitBool(true)
		default:
			return serrors.InvalidValue(serrors.UnexpectedUnsigned(uint64(b)), "a boolean")
		}
	})
}

func (d *decoder) DeserializeI8(v de.BackendVisitor) error { return visit(d, v.VisitI8) }
func (d *decoder) DeserializeI16(v de.BackendVisitor) error { return visit(d, v.VisitI16) }
func (d *decoder) DeserializeI32(v de.BackendVisitor) error { return visit(d, v.VisitI32) }
func (d *decoder) DeserializeI64(v de.BackendVisitor) error { return visit(d, v.VisitI64) }
func (d *decoder) DeserializeU8(v de.BackendVisitor) error { return visit(d, v.VisitU8) }
func (d *decoder) DeserializeU16(v de.BackendVisitor) error { return visit(d, v.VisitU16) }
func (d *decoder) DeserializeU32(v de.BackendVisitor) error { return visit(d, v.VisitU32) }
func (d *decoder) DeserializeU64(v de.BackendVisitor) error { return visit(d, v.VisitU64) }

func (d *decoder) DeserializeF32(v de.BackendVisitor) error {
	return visit(d, func(bits uint32) error { return v.VisitF32(math.Float32frombits(bits)) })
}

func (d *decoder) DeserializeF64(v de.BackendVisitor) error {
	return visit(d, func(bits uint64) error { return v.VisitF64(math.Float64frombits(bits)) })
}

func (d *decoder) DeserializeChar(v de.BackendVisitor) error {
	return visit(d, func(code uint32) error {
		r := rune(code)
		if !utf8.ValidRune(r) {
			return serrors.InvalidValue(serrors.UnexpectedUnsigned(uint64(code)), "a char")
		}

		return v.VisitChar(r)
	})
}

func (d *decoder) str() (string, error) {
	b, err := d.r.readBytesWithSize()
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", serrors.InvalidValue(serrors.UnexpectedBytes(b), "a string")
	}

	return string(b), nil
}

func (d *decoder) DeserializeStr(v de.BackendVisitor) error {
	s, err := d.str()
	if err != nil {
		return err
	}

	return v.VisitString(s)
}

func (d *decoder) DeserializeString(v de.BackendVisitor) error { return d.DeserializeStr(v) }

func (d *decoder) DeserializeIdentifier(v de.BackendVisitor) error { return d.DeserializeStr(v) }

// DeserializeBytes hands out a slice of the input.
func (d *decoder) DeserializeBytes(v de.BackendVisitor) error {
	b, err := d.r.readBytesWithSize()
	if err != nil {
		return err
	}

	return v.VisitBorrowedBytes(b)
}

func (d *decoder) DeserializeByteBuf(v de.BackendVisitor) error {
	b, err := d.r.readBytesWithSize()
	if err != nil {
		return err
	}

	return v.VisitByteBuf(append([]byte{}, b...))
}

func (d *decoder) DeserializeOption(v de.BackendVisitor) error {
	return visit(d, func(tag uint8) error {
		switch tag {
		case 0:
			return v.VisitNone()
		case 1:
			return v.VisitSome(d)
		default:
			return serrors.InvalidValue(serrors.UnexpectedUnsigned(uint64(tag)), "an option tag")
		}
	})
}

func (d *decoder) DeserializeUnit(v de.BackendVisitor) error { return v.VisitUnit() }

func (d *decoder) DeserializeUnitStruct(_ string, v de.BackendVisitor) error { return v.VisitUnit() }

func (d *decoder) DeserializeNewtypeStruct(_ string, v de.BackendVisitor) error {
	return v.VisitNewtypeStruct(d)
}

func (d *decoder) DeserializeSeq(v de.BackendVisitor) error {
	size, err := d.r.readSize()
	if err != nil {
		return err
	}

	return d.seq(size, v)
}

func (d *decoder) seq(size int, v de.BackendVisitor) error {
	seq := &seqCursor{d: d, remaining: size}
	if err := v.VisitSeq(seq); err != nil {
		return err
	}
	if seq.remaining != 0 {
		return serrors.InvalidLength(size, "fewer elements")
	}

	return nil
}

func (d *decoder) DeserializeTuple(length int, v de.BackendVisitor) error {
	return d.seq(length, v)
}

func (d *decoder) DeserializeTupleStruct(_ string, length int, v de.BackendVisitor) error {
	return d.seq(length, v)
}

// DeserializeStruct visits the fields as a sequence in declaration order.
func (d *decoder) DeserializeStruct(_ string, fields []string, v de.BackendVisitor) error {
	return d.seq(len(fields), v)
}

func (d *decoder) DeserializeMap(v de.BackendVisitor) error {
	size, err := d.r.readSize()
	if err != nil {
		return err
	}

	m := &mapCursor{d: d, remaining: size}
	if err := v.VisitMap(m); err != nil {
		return err
	}
	if m.remaining != 0 {
		return serrors.InvalidLength(size, "fewer entries")
	}

	return nil
}

// DeserializeEnum reads the variant index. Seeds asking for a string get the name from variants.
func (d *decoder) DeserializeEnum(_ string, variants []string, v de.BackendVisitor) error {
	return visit(d, func(index uint32) error {
		return v.VisitEnum(&enumCursor{d: d, index: index, variants: variants})
	})
}

type seqCursor struct {
	d         *decoder
	remaining int
}

func (s *seqCursor) NextElement(seed de.BackendSeed) (bool, error) {
	if s.remaining == 0 {
		return false, nil
	}
	s.remaining--

	return true, seed.Deserialize(s.d)
}

func (s *seqCursor) SizeHint() (int, bool) { return s.remaining, true }

type mapCursor struct {
	d         *decoder
	remaining int
}

func (m *mapCursor) NextKey(seed de.BackendSeed) (bool, error) {
	if m.remaining == 0 {
		return false, nil
	}
	m.remaining--

	return true, seed.Deserialize(m.d)
}

func (m *mapCursor) NextValue(seed de.BackendSeed) error {
	return seed.Deserialize(m.d)
}

func (m *mapCursor) NextEntry(key, value de.BackendSeed) (bool, error) {
	present, err := m.NextKey(key)
	if err != nil || !present {
		return present, err
	}

	return true, m.NextValue(value)
}

func (m *mapCursor) SizeHint() (int, bool) { return m.remaining, true }

type enumCursor struct {
	d        *decoder
	index    uint32
	variants []string
}

func (e *enumCursor) Variant(seed de.BackendSeed) (de.VariantBackend, error) {
	if err := seed.Deserialize(variantIndex{index: e.index, variants: e.variants}); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *enumCursor) UnitVariant() error { return nil }

func (e *enumCursor) NewtypeVariant(seed de.BackendSeed) error {
	return seed.Deserialize(e.d)
}

func (e *enumCursor) TupleVariant(length int, v de.BackendVisitor) error {
	return e.d.DeserializeTuple(length, v)
}

func (e *enumCursor) StructVariant(fields []string, v de.BackendVisitor) error {
	return e.d.DeserializeStruct("", fields, v)
}
