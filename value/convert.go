package value

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/cockroachdb/errors"
	"github.com/iancoleman/orderedmap"
	"github.com/samber/lo"
	"github.com/spf13/cast"
)

// ErrUnsupportedType is returned by FromInterface for Go values that have no Value representation.
var ErrUnsupportedType = errors.New("unsupported type")

// Interface converts v into the model of encoding/json: nil, bool, float64, string, []any and
// map[string]any. Byte arrays stay []byte.
func (v Value) Interface() any {
	switch v.kind {
	case KindBool:
		return v.boolean
	case KindInt, KindUint, KindFloat:
		f, _ := v.AsFloat()

		return f
	case KindString:
		return v.text
	case KindBytes:
		return v.bytes
	case KindArray:
		return lo.Map(v.elements, func(element Value, _ int) any { return element.Interface() })
	case KindObject:
		out := make(map[string]any, v.Len())
		for _, pair := range v.Pairs() {
			out[pair.Key] = pair.Value.Interface()
		}

		return out
	default:
		return nil
	}
}

// FromInterface converts a Go value made of the usual decoded types into a Value.
// Keys of plain maps are sorted, ordered maps keep their order. Other values implementing fmt.Stringer,
// like timestamps, become strings.
func FromInterface(in any) (Value, error) {
	switch typed := in.(type) {
	case nil:
		return Null(), nil
	case Value:
		return typed, nil
	case bool:
		return Bool(typed), nil
	case int:
		return Int(int64(typed)), nil
	case int8:
		return Int(int64(typed)), nil
	case int16:
		return Int(int64(typed)), nil
	case int32:
		return Int(int64(typed)), nil
	case int64:
		return Int(typed), nil
	case uint:
		return Uint(uint64(typed)), nil
	case uint8:
		return Uint(uint64(typed)), nil
	case uint16:
		return Uint(uint64(typed)), nil
	case uint32:
		return Uint(uint64(typed)), nil
	case uint64:
		return Uint(typed), nil
	case float32:
		return Float(float64(typed)), nil
	case float64:
		return Float(typed), nil
	case string:
		return String(typed), nil
	case []byte:
		return Bytes(typed), nil
	case []string:
		return Array(lo.Map(typed, func(s string, _ int) Value { return String(s) })...), nil
	case []any:
		elements := make([]Value, 0, len(typed))
		for i, element := range typed {
			converted, err := FromInterface(element)
			if err != nil {
				return Value{}, errors.Wrapf(err, "element %d", i)
			}
			elements = append(elements, converted)
		}

		return Value{kind: KindArray, elements: elements}, nil
	case map[string]any:
		keys := lo.Keys(typed)
		sort.Strings(keys)

		return fromPairs(keys, func(key string) any { return typed[key] })
	case map[any]any:
		return FromInterface(cast.ToStringMap(typed))
	case *orderedmap.OrderedMap:
		return fromPairs(typed.Keys(), func(key string) any {
			field, _ := typed.Get(key)

			return field
		})
	case orderedmap.OrderedMap:
		return FromInterface(&typed)
	case fmt.Stringer:
		return String(typed.String()), nil
	default:
		return Value{}, errors.Wrapf(ErrUnsupportedType, "can't convert %T", in)
	}
}

func fromPairs(keys []string, get func(key string) any) (Value, error) {
	fields := orderedmap.New()
	for _, key := range keys {
		converted, err := FromInterface(get(key))
		if err != nil {
			return Value{}, errors.Wrapf(err, "field %q", key)
		}
		fields.Set(key, converted)
	}

	return Value{kind: KindObject, fields: fields}, nil
}

// Equal tells whether a and b hold the same document. Integers compare by value across signedness and
// object fields compare regardless of order.
func Equal(a, b Value) bool {
	if isInteger(a) && isInteger(b) {
		au, aok := a.AsUint()
		bu, bok := b.AsUint()
		if aok || bok {
			return aok == bok && au == bu
		}

		return a.signed == b.signed
	}

	if a.kind != b.kind {
		return false
	}

	switch a.kind {
	case KindNull:
		return true
	case KindBool:
		return a.boolean == b.boolean
	case KindFloat:
		return a.float == b.float
	case KindString:
		return a.text == b.text
	case KindBytes:
		return bytes.Equal(a.bytes, b.bytes)
	case KindArray:
		if len(a.elements) != len(b.elements) {
			return false
		}
		for i := range a.elements {
			if !Equal(a.elements[i], b.elements[i]) {
				return false
			}
		}

		return true
	case KindObject:
		if a.Len() != b.Len() {
			return false
		}
		for _, pair := range a.Pairs() {
			other, ok := b.Field(pair.Key)
			if !ok || !Equal(pair.Value, other) {
				return false
			}
		}

		return true
	default:
		return false
	}
}

func isInteger(v Value) bool {
	return v.kind == KindInt || v.kind == KindUint
}

// String renders v for debugging.
func (v Value) String() string {
	return fmt.Sprintf("%v", v.Interface())
}
