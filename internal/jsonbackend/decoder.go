package jsonbackend

import (
	"encoding/base64"
	"io"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	"github.com/iotaledger/dynserde/de"
	"github.com/iotaledger/dynserde/serrors"
)

// decoder reads JSON values from a shared iterator. Every hint consumes exactly one value.
type decoder struct {
	iter *jsoniter.Iterator
}

var _ de.Backend = (*decoder)(nil)

func (d *decoder) Errors() serrors.Factory { return Errors }

func (d *decoder) IsHumanReadable() bool { return true }

// check turns the iterator error into a backend error.
func (d *decoder) check() error {
	switch err := d.iter.Error; {
	case err == nil:
		return nil
	case errors.Is(err, io.EOF):
		return syntaxError("unexpected end of input")
	default:
		return syntaxError(err.Error())
	}
}

func (d *decoder) next() (jsoniter.ValueType, error) {
	next := d.iter.WhatIsNext()
	if err := d.check(); err != nil {
		return next, err
	}
	if next == jsoniter.InvalidValue {
		return next, syntaxError("expected value")
	}

	return next, nil
}

// unexpected consumes the next value and describes it for an invalid type error.
func (d *decoder) unexpected(next jsoniter.ValueType) serrors.Unexpected {
	switch next {
	case jsoniter.NilValue:
		d.iter.Skip()
		return serrors.UnexpectedUnit()
	case jsoniter.BoolValue:
		return serrors.UnexpectedBool(d.iter.ReadBool())
	case jsoniter.StringValue:
		return serrors.UnexpectedStr(d.iter.ReadString())
	case jsoniter.ArrayValue:
		d.iter.Skip()
		return serrors.UnexpectedSeq()
	case jsoniter.ObjectValue:
		d.iter.Skip()
		return serrors.UnexpectedMap()
	default:
		number := d.readNumber()
		if f, err := strconv.ParseFloat(number, 64); err == nil {
			return serrors.UnexpectedFloat(f)
		}

		return serrors.UnexpectedOther(number)
	}
}

func (d *decoder) DeserializeAny(v de.BackendVisitor) error {
	next, err := d.next()
	if err != nil {
		return err
	}

	switch next {
	case jsoniter.NilValue:
		d.iter.ReadNil()

		return v.VisitUnit()
	case jsoniter.BoolValue:
		b := d.iter.ReadBool()
		if err := d.check(); err != nil {
			return err
		}

		return v.VisitBool(b)
	case jsoniter.NumberValue:
		return d.number(v)
	case jsoniter.StringValue:
		s := d.iter.ReadString()
		if err := d.check(); err != nil {
			return err
		}

		return v.VisitString(s)
	case jsoniter.ArrayValue:
		seq := &seqCursor{d: d}
		if err := v.VisitSeq(seq); err != nil {
			return err
		}

		return seq.end()
	default:
		m := &mapCursor{d: d}
		if err := v.VisitMap(m); err != nil {
			return err
		}

		return m.end()
	}
}

// readNumber reads a number token. A number that runs to the end of the input leaves io.EOF on the
// iterator although the token is complete.
func (d *decoder) readNumber() string {
	number := d.iter.ReadNumber().String()
	if number != "" && errors.Is(d.iter.Error, io.EOF) {
		d.iter.Error = nil
	}

	return number
}

// number visits F64 for numbers with a fraction or an exponent, I64 for negative integers and U64
// otherwise. Integers out of range are visited as F64.
func (d *decoder) number(v de.BackendVisitor) error {
	number := d.readNumber()
	if err := d.check(); err != nil {
		return err
	}

	if !strings.ContainsAny(number, ".eE") {
		if strings.HasPrefix(number, "-") {
			if i, err := strconv.ParseInt(number, 10, 64); err == nil {
				return v.VisitI64(i)
			}
		} else if u, err := strconv.ParseUint(number, 10, 64); err == nil {
			return v.VisitU64(u)
		}
	}

	f, err := strconv.ParseFloat(number, 64)
	if err != nil {
		return syntaxError("invalid number " + strconv.Quote(number))
	}

	return v.VisitF64(f)
}

func (d *decoder) DeserializeBool(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeI8(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeI16(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeI32(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeI64(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeU8(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeU16(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeU32(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeU64(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeF32(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeF64(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeChar(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeStr(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeString(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeSeq(v de.BackendVisitor) error { return d.DeserializeAny(v) }
func (d *decoder) DeserializeMap(v de.BackendVisitor) error { return d.DeserializeAny(v) }

func (d *decoder) DeserializeIdentifier(v de.BackendVisitor) error { return d.DeserializeAny(v) }

// DeserializeBytes decodes base64 strings, which is how byte arrays are written.
func (d *decoder) DeserializeBytes(v de.BackendVisitor) error {
	next, err := d.next()
	if err != nil {
		return err
	}
	if next != jsoniter.StringValue {
		return d.DeserializeAny(v)
	}

	s := d.iter.ReadString()
	if err := d.check(); err != nil {
		return err
	}

	decoded, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return Errors.InvalidValue(serrors.UnexpectedStr(s), "base64 encoded bytes")
	}

	return v.VisitByteBuf(decoded)
}

func (d *decoder) DeserializeByteBuf(v de.BackendVisitor) error { return d.DeserializeBytes(v) }

func (d *decoder) DeserializeOption(v de.BackendVisitor) error {
	next, err := d.next()
	if err != nil {
		return err
	}
	if next == jsoniter.NilValue {
		d.iter.ReadNil()

		return v.VisitNone()
	}

	return v.VisitSome(d)
}

func (d *decoder) DeserializeUnit(v de.BackendVisitor) error { return d.DeserializeAny(v) }

func (d *decoder) DeserializeUnitStruct(_ string, v de.BackendVisitor) error {
	return d.DeserializeAny(v)
}

func (d *decoder) DeserializeNewtypeStruct(_ string, v de.BackendVisitor) error {
	return v.VisitNewtypeStruct(d)
}

func (d *decoder) DeserializeTuple(_ int, v de.BackendVisitor) error { return d.DeserializeAny(v) }

func (d *decoder) DeserializeTupleStruct(_ string, _ int, v de.BackendVisitor) error {
	return d.DeserializeAny(v)
}

func (d *decoder) DeserializeStruct(_ string, _ []string, v de.BackendVisitor) error {
	return d.DeserializeAny(v)
}

// DeserializeEnum accepts "variant" for unit variants and {"variant":payload} for the others.
func (d *decoder) DeserializeEnum(_ string, _ []string, v de.BackendVisitor) error {
	next, err := d.next()
	if err != nil {
		return err
	}

	switch next {
	case jsoniter.StringValue:
		tag := d.iter.ReadString()
		if err := d.check(); err != nil {
			return err
		}

		return v.VisitEnum(&enumCursor{d: d, tag: tag, unit: true})
	case jsoniter.ObjectValue:
		tag, present, err := d.key()
		if err != nil {
			return err
		}
		if !present {
			return Errors.InvalidValue(serrors.UnexpectedMap(), "map with a single key")
		}

		if err := v.VisitEnum(&enumCursor{d: d, tag: tag}); err != nil {
			return err
		}

		if _, present, err = d.key(); err != nil {
			return err
		}
		if present {
			return Errors.InvalidValue(serrors.UnexpectedMap(), "map with a single key")
		}

		return nil
	default:
		return Errors.InvalidType(d.unexpected(next), "string or map")
	}
}

func (d *decoder) DeserializeIgnoredAny(v de.BackendVisitor) error {
	next, err := d.next()
	if err != nil {
		return err
	}

	if next == jsoniter.NumberValue {
		d.readNumber()
	} else {
		d.iter.Skip()
	}
	if err := d.check(); err != nil {
		return err
	}

	return v.VisitUnit()
}

// key reads the next object key. The empty key and the end of the object both read as "", the end is
// told apart by looking for a value after it.
func (d *decoder) key() (string, bool, error) {
	key := d.iter.ReadObject()
	if err := d.check(); err != nil {
		return "", false, err
	}
	if key != "" {
		return key, true, nil
	}

	present := d.iter.WhatIsNext() != jsoniter.InvalidValue
	if errors.Is(d.iter.Error, io.EOF) {
		d.iter.Error = nil
	}

	return "", present, d.check()
}

type seqCursor struct {
	d    *decoder
	done bool
}

func (s *seqCursor) Errors() serrors.Factory { return Errors }

func (s *seqCursor) NextElement(seed de.BackendSeed) (bool, error) {
	if s.done {
		return false, nil
	}

	more := s.d.iter.ReadArray()
	if err := s.d.check(); err != nil {
		return false, err
	}
	if !more {
		s.done = true

		return false, nil
	}

	return true, seed.Deserialize(s.d)
}

func (s *seqCursor) SizeHint() (int, bool) { return 0, false }

// end consumes the closing bracket of a sequence that was not read to its end.
func (s *seqCursor) end() error {
	if s.done {
		return nil
	}

	if s.d.iter.ReadArray() {
		return syntaxError("trailing characters in array")
	}

	return s.d.check()
}

type mapCursor struct {
	d    *decoder
	done bool
}

func (m *mapCursor) Errors() serrors.Factory { return Errors }

func (m *mapCursor) NextKey(seed de.BackendSeed) (bool, error) {
	if m.done {
		return false, nil
	}

	key, present, err := m.d.key()
	if err != nil {
		return false, err
	}
	if !present {
		m.done = true

		return false, nil
	}

	return true, seed.Deserialize(keyDecoder(key))
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

func (m *mapCursor) SizeHint() (int, bool) { return 0, false }

func (m *mapCursor) end() error {
	if m.done {
		return nil
	}

	_, present, err := m.d.key()
	if err != nil {
		return err
	}
	if present {
		return syntaxError("trailing characters in object")
	}

	return nil
}

type enumCursor struct {
	d    *decoder
	tag  string
	unit bool
}

func (e *enumCursor) Errors() serrors.Factory { return Errors }

func (e *enumCursor) Variant(seed de.BackendSeed) (de.VariantBackend, error) {
	if err := seed.Deserialize(keyDecoder(e.tag)); err != nil {
		return nil, err
	}

	return e, nil
}

func (e *enumCursor) UnitVariant() error {
	if e.unit {
		return nil
	}

	next, err := e.d.next()
	if err != nil {
		return err
	}
	if next != jsoniter.NilValue {
		return Errors.InvalidType(e.d.unexpected(next), "unit variant")
	}
	e.d.iter.ReadNil()

	return nil
}

func (e *enumCursor) NewtypeVariant(seed de.BackendSeed) error {
	if e.unit {
		return Errors.InvalidType(serrors.UnexpectedUnitVariant(), "newtype variant")
	}

	return seed.Deserialize(e.d)
}

func (e *enumCursor) TupleVariant(_ int, v de.BackendVisitor) error {
	if e.unit {
		return Errors.InvalidType(serrors.UnexpectedUnitVariant(), "tuple variant")
	}

	return e.d.DeserializeSeq(v)
}

func (e *enumCursor) StructVariant(_ []string, v de.BackendVisitor) error {
	if e.unit {
		return Errors.InvalidType(serrors.UnexpectedUnitVariant(), "struct variant")
	}

	return e.d.DeserializeMap(v)
}
