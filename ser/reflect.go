package ser

import (
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/iotaledger/dynserde/serrors"
)

var (
	serializeType = reflect.TypeOf((*Serialize)(nil)).Elem()
	bytesType     = reflect.TypeOf([]byte(nil))
	byteType      = bytesType.Elem()
)

// Reflect returns a Serialize describing obj through reflection.
//
// Pointers and interfaces serialize as options, slices and arrays as sequences ([]byte as bytes), maps
// as maps with keys in lexical order and structs field by field. Struct fields are renamed with a
// `serde:"name"` tag, skipped when empty with `serde:",omitempty"` and ignored with `serde:"-"`.
// Values implementing Serialize describe themselves.
func Reflect(obj any) Serialize {
	return Func(func(s Serializer) error {
		return encode(s, reflect.ValueOf(obj))
	})
}

func reflected(value reflect.Value) Serialize {
	return Func(func(s Serializer) error {
		return encode(s, value)
	})
}

func encode(s Serializer, value reflect.Value) error {
	if !value.IsValid() {
		return s.SerializeNone()
	}

	if value.Type().Implements(serializeType) && value.CanInterface() {
		if value.Kind() != reflect.Ptr || !value.IsNil() {
			//nolint:forcetypeassert // checked by Implements
			return value.Interface().(Serialize).Serialize(s)
		}
	}

	return encodeBasedOnType(s, value)
}

func encodeBasedOnType(s Serializer, value reflect.Value) error {
	switch value.Kind() {
	case reflect.Ptr, reflect.Interface:
		if value.IsNil() {
			return s.SerializeNone()
		}

		return s.SerializeSome(reflected(value.Elem()))
	case reflect.Bool:
		return s.SerializeBool(value.Bool())
	case reflect.Int8:
		return s.SerializeI8(int8(value.Int()))
	case reflect.Int16:
		return s.SerializeI16(int16(value.Int()))
	case reflect.Int32:
		return s.SerializeI32(int32(value.Int()))
	case reflect.Int, reflect.Int64:
		return s.SerializeI64(value.Int())
	case reflect.Uint8:
		return s.SerializeU8(uint8(value.Uint()))
	case reflect.Uint16:
		return s.SerializeU16(uint16(value.Uint()))
	case reflect.Uint32:
		return s.SerializeU32(uint32(value.Uint()))
	case reflect.Uint, reflect.Uint64, reflect.Uintptr:
		return s.SerializeU64(value.Uint())
	case reflect.Float32:
		return s.SerializeF32(float32(value.Float()))
	case reflect.Float64:
		return s.SerializeF64(value.Float())
	case reflect.String:
		return s.SerializeStr(value.String())
	case reflect.Slice:
		if value.Type().AssignableTo(bytesType) {
			return s.SerializeBytes(value.Bytes())
		}
		if value.IsNil() {
			return s.SerializeNone()
		}

		return encodeSeq(s, value)
	case reflect.Array:
		if value.Type().Elem() == byteType {
			return s.SerializeBytes(bytesFromArray(value))
		}

		return encodeSeq(s, value)
	case reflect.Map:
		if value.IsNil() {
			return s.SerializeNone()
		}

		return encodeMap(s, value)
	case reflect.Struct:
		return encodeStruct(s, value)
	default:
		return serrors.Customf("can't serialize type %s, unsupported kind %s", value.Type(), value.Kind())
	}
}

func encodeSeq(s Serializer, value reflect.Value) error {
	seq, err := s.SerializeSeq(value.Len())
	if err != nil {
		return err
	}

	for i := 0; i < value.Len(); i++ {
		if err := seq.SerializeElement(reflected(value.Index(i))); err != nil {
			return err
		}
	}

	return seq.End()
}

func encodeMap(s Serializer, value reflect.Value) error {
	keys := value.MapKeys()
	sort.Slice(keys, func(i, j int) bool {
		return fmt.Sprint(keys[i].Interface()) < fmt.Sprint(keys[j].Interface())
	})

	m, err := s.SerializeMap(len(keys))
	if err != nil {
		return err
	}

	for _, key := range keys {
		if err := m.SerializeEntry(reflected(key), reflected(value.MapIndex(key))); err != nil {
			return err
		}
	}

	return m.End()
}

func encodeStruct(s Serializer, value reflect.Value) error {
	valueType := value.Type()
	fields := parseStructType(valueType)

	st, err := s.SerializeStruct(valueType.Name(), len(fields))
	if err != nil {
		return err
	}

	for _, field := range fields {
		fieldValue := value.Field(field.index)
		if field.omitEmpty && fieldValue.IsZero() {
			if err := st.SkipField(field.name); err != nil {
				return err
			}

			continue
		}

		if err := st.SerializeField(field.name, reflected(fieldValue)); err != nil {
			return err
		}
	}

	return st.End()
}

type structField struct {
	name      string
	index     int
	omitEmpty bool
}

func parseStructType(structType reflect.Type) []structField {
	structFields := make([]structField, 0, structType.NumField())
	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if field.PkgPath != "" {
			continue
		}

		name, omitEmpty := field.Name, false
		if tag, ok := field.Tag.Lookup("serde"); ok {
			if tag == "-" {
				continue
			}

			parts := strings.Split(tag, ",")
			if parts[0] != "" {
				name = parts[0]
			}
			for _, part := range parts[1:] {
				if part == "omitempty" {
					omitEmpty = true
				}
			}
		}

		structFields = append(structFields, structField{name: name, index: i, omitEmpty: omitEmpty})
	}

	return structFields
}

func bytesFromArray(arrValue reflect.Value) []byte {
	b := make([]byte, arrValue.Len())
	reflect.Copy(reflect.ValueOf(b), arrValue)

	return b
}
