package value

import (
	"github.com/iancoleman/orderedmap"

	"github.com/iotaledger/dynserde/de"
	"github.com/iotaledger/dynserde/ser"
)

var _ ser.Serialize = Value{}

// Serialize writes v. Null is written as an absent option.
func (v Value) Serialize(s ser.Serializer) error {
	switch v.kind {
	case KindBool:
		return s.SerializeBool(v.boolean)
	case KindInt:
		return s.SerializeI64(v.signed)
	case KindUint:
		return s.SerializeU64(v.unsigned)
	case KindFloat:
		return s.SerializeF64(v.float)
	case KindString:
		return s.SerializeStr(v.text)
	case KindBytes:
		return s.SerializeBytes(v.bytes)
	case KindArray:
		seq, err := s.SerializeSeq(len(v.elements))
		if err != nil {
			return err
		}
		for _, element := range v.elements {
			if err := seq.SerializeElement(element); err != nil {
				return err
			}
		}

		return seq.End()
	case KindObject:
		keys := v.Keys()
		m, err := s.SerializeMap(len(keys))
		if err != nil {
			return err
		}
		for _, key := range keys {
			field, _ := v.Field(key)
			if err := m.SerializeEntry(ser.Str(key), field); err != nil {
				return err
			}
		}

		return m.End()
	default:
		return s.SerializeNone()
	}
}

// Seed decodes any self-describing input into a Value.
// Map keys must be strings; a repeated key keeps its last value.
func Seed() de.ValueSeed[Value] {
	return de.SeedFunc[Value](func(d de.Deserializer) (Value, error) {
		return de.Drive[Value](visitor(), d.DeserializeAny)
	})
}

func visitor() de.VisitorFuncs[Value] {
	nested := func(d de.Deserializer) (Value, error) { return Seed().Deserialize(d) }

	return de.VisitorFuncs[Value]{
		Description:   "any valid value",
		Bool:          func(v bool) (Value, error) { return Bool(v), nil },
		I64:           func(v int64) (Value, error) { return Int(v), nil },
		U64:           func(v uint64) (Value, error) { return Uint(v), nil },
		F64:           func(v float64) (Value, error) { return Float(v), nil },
		Str:           func(v string) (Value, error) { return String(v), nil },
		Bytes:         func(v []byte) (Value, error) { return Bytes(v), nil },
		ByteBuf:       func(v []byte) (Value, error) { return Value{kind: KindBytes, bytes: v}, nil },
		None:          func() (Value, error) { return Null(), nil },
		Unit:          func() (Value, error) { return Null(), nil },
		Some:          nested,
		NewtypeStruct: nested,
		Seq:           visitSeq,
		Map:           visitMap,
	}
}

func visitSeq(seq de.SeqAccess) (Value, error) {
	elements := make([]Value, 0)
	for {
		element, present, err := de.NextElement(seq, Seed())
		if err != nil {
			return Value{}, err
		}
		if !present {
			return Value{kind: KindArray, elements: elements}, nil
		}

		elements = append(elements, element)
	}
}

func visitMap(m de.MapAccess) (Value, error) {
	fields := orderedmap.New()
	for {
		key, present, err := de.NextKey(m, de.String())
		if err != nil {
			return Value{}, err
		}
		if !present {
			return Value{kind: KindObject, fields: fields}, nil
		}

		field, err := de.NextValue(m, Seed())
		if err != nil {
			return Value{}, err
		}

		fields.Set(key, field)
	}
}
