package ser_test

import (
	"fmt"
	"strings"

	"github.com/iotaledger/dynserde/ser"
	"github.com/iotaledger/dynserde/serrors"
)

// recError is the native error type of recorder.
type recError struct {
	kind serrors.Kind
	msg  string
}

func (e *recError) Error() string { return e.msg }

type recFactory struct{}

func (recFactory) Custom(msg string) error { return &recError{serrors.KindCustom, msg} }

func (recFactory) InvalidType(unexp serrors.Unexpected, exp string) error {
	return &recError{serrors.KindInvalidType, serrors.InvalidTypeMessage(unexp, exp)}
}

func (recFactory) InvalidValue(unexp serrors.Unexpected, exp string) error {
	return &recError{serrors.KindInvalidValue, serrors.InvalidValueMessage(unexp, exp)}
}

func (recFactory) InvalidLength(length int, exp string) error {
	return &recError{serrors.KindInvalidLength, serrors.InvalidLengthMessage(length, exp)}
}

func (recFactory) UnknownVariant(variant string, expected []string) error {
	return &recError{serrors.KindUnknownVariant, serrors.UnknownVariantMessage(variant, expected)}
}

func (recFactory) UnknownField(field string, expected []string) error {
	return &recError{serrors.KindUnknownField, serrors.UnknownFieldMessage(field, expected)}
}

func (recFactory) MissingField(field string) error {
	return &recError{serrors.KindMissingField, serrors.MissingFieldMessage(field)}
}

func (recFactory) DuplicateField(field string) error {
	return &recError{serrors.KindDuplicateField, serrors.DuplicateFieldMessage(field)}
}

// recorder renders every call as a token, which makes the call sequence visible in the output.
type recorder struct {
	human  bool
	failOn string
}

func (r recorder) Errors() serrors.Factory { return recFactory{} }

func (r recorder) check(call string) error {
	if r.failOn == call {
		return &recError{serrors.KindCustom, "failed " + call}
	}

	return nil
}

func (r recorder) leaf(call string, token string) (string, error) {
	if err := r.check(call); err != nil {
		return "", err
	}

	return token, nil
}

func (r recorder) SerializeBool(v bool) (string, error) {
	return r.leaf("SerializeBool", fmt.Sprintf("bool(%t)", v))
}

func (r recorder) SerializeI8(v int8) (string, error) { return r.leaf("SerializeI8", fmt.Sprintf("i8(%d)", v)) }

func (r recorder) SerializeI16(v int16) (string, error) {
	return r.leaf("SerializeI16", fmt.Sprintf("i16(%d)", v))
}

func (r recorder) SerializeI32(v int32) (string, error) {
	return r.leaf("SerializeI32", fmt.Sprintf("i32(%d)", v))
}

func (r recorder) SerializeI64(v int64) (string, error) {
	return r.leaf("SerializeI64", fmt.Sprintf("i64(%d)", v))
}

func (r recorder) SerializeU8(v uint8) (string, error) { return r.leaf("SerializeU8", fmt.Sprintf("u8(%d)", v)) }

func (r recorder) SerializeU16(v uint16) (string, error) {
	return r.leaf("SerializeU16", fmt.Sprintf("u16(%d)", v))
}

func (r recorder) SerializeU32(v uint32) (string, error) {
	return r.leaf("SerializeU32", fmt.Sprintf("u32(%d)", v))
}

func (r recorder) SerializeU64(v uint64) (string, error) {
	return r.leaf("SerializeU64", fmt.Sprintf("u64(%d)", v))
}

func (r recorder) SerializeF32(v float32) (string, error) {
	return r.leaf("SerializeF32", fmt.Sprintf("f32(%g)", v))
}

func (r recorder) SerializeF64(v float64) (string, error) {
	return r.leaf("SerializeF64", fmt.Sprintf("f64(%g)", v))
}

func (r recorder) SerializeChar(v rune) (string, error) {
	return r.leaf("SerializeChar", fmt.Sprintf("char(%c)", v))
}

func (r recorder) SerializeStr(v string) (string, error) {
	return r.leaf("SerializeStr", fmt.Sprintf("str(%s)", v))
}

func (r recorder) SerializeBytes(v []byte) (string, error) {
	return r.leaf("SerializeBytes", fmt.Sprintf("bytes(%x)", v))
}

func (r recorder) SerializeNone() (string, error) { return r.leaf("SerializeNone", "none") }

func (r recorder) SerializeSome(v ser.Serialize) (string, error) {
	if err := r.check("SerializeSome"); err != nil {
		return "", err
	}

	inner, err := ser.Encode[string](v, r)
	if err != nil {
		return "", err
	}

	return "some(" + inner + ")", nil
}

func (r recorder) SerializeUnit() (string, error) { return r.leaf("SerializeUnit", "unit") }

func (r recorder) SerializeUnitStruct(name string) (string, error) {
	return r.leaf("SerializeUnitStruct", name)
}

func (r recorder) SerializeUnitVariant(name string, index uint32, variant string) (string, error) {
	return r.leaf("SerializeUnitVariant", fmt.Sprintf("%s::%s#%d", name, variant, index))
}

func (r recorder) SerializeNewtypeStruct(name string, v ser.Serialize) (string, error) {
	inner, err := ser.Encode[string](v, r)
	if err != nil {
		return "", err
	}

	return name + "(" + inner + ")", nil
}

func (r recorder) SerializeNewtypeVariant(name string, index uint32, variant string, v ser.Serialize) (string, error) {
	inner, err := ser.Encode[string](v, r)
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s::%s#%d(%s)", name, variant, index, inner), nil
}

func (r recorder) list(call string, open string) (*listBuilder, error) {
	if err := r.check(call); err != nil {
		return nil, err
	}

	return &listBuilder{r: r, open: open}, nil
}

func (r recorder) SerializeSeq(length int) (ser.SeqEncoder[string], error) {
	return r.list("SerializeSeq", fmt.Sprintf("seq/%d[", length))
}

func (r recorder) SerializeTuple(length int) (ser.TupleEncoder[string], error) {
	return r.list("SerializeTuple", fmt.Sprintf("tuple/%d[", length))
}

func (r recorder) SerializeTupleStruct(name string, length int) (ser.TupleStructEncoder[string], error) {
	return r.list("SerializeTupleStruct", fmt.Sprintf("%s/%d[", name, length))
}

func (r recorder) SerializeTupleVariant(name string, index uint32, variant string, length int) (ser.TupleVariantEncoder[string], error) {
	return r.list("SerializeTupleVariant", fmt.Sprintf("%s::%s#%d/%d[", name, variant, index, length))
}

func (r recorder) SerializeMap(length int) (ser.MapEncoder[string], error) {
	if err := r.check("SerializeMap"); err != nil {
		return nil, err
	}

	return &mapBuilder{r: r, open: fmt.Sprintf("map/%d{", length)}, nil
}

func (r recorder) fields(call string, open string) (*fieldBuilder, error) {
	if err := r.check(call); err != nil {
		return nil, err
	}

	return &fieldBuilder{r: r, open: open}, nil
}

func (r recorder) SerializeStruct(name string, length int) (ser.StructEncoder[string], error) {
	return r.fields("SerializeStruct", fmt.Sprintf("%s/%d{", name, length))
}

func (r recorder) SerializeStructVariant(name string, index uint32, variant string, length int) (ser.StructVariantEncoder[string], error) {
	return r.fields("SerializeStructVariant", fmt.Sprintf("%s::%s#%d/%d{", name, variant, index, length))
}

func (r recorder) CollectStr(v fmt.Stringer) (string, error) {
	return r.leaf("CollectStr", fmt.Sprintf("str(%s)", v))
}

func (r recorder) IsHumanReadable() bool { return r.human }

type listBuilder struct {
	r     recorder
	open  string
	items []string
}

func (b *listBuilder) SerializeElement(v ser.Serialize) error {
	out, err := ser.Encode[string](v, b.r)
	if err != nil {
		return err
	}
	b.items = append(b.items, out)

	return nil
}

func (b *listBuilder) SerializeField(v ser.Serialize) error {
	return b.SerializeElement(v)
}

func (b *listBuilder) End() (string, error) {
	return b.r.leaf("End", b.open+strings.Join(b.items, ",")+"]")
}

type mapBuilder struct {
	r       recorder
	open    string
	items   []string
	pending string
}

func (b *mapBuilder) SerializeKey(k ser.Serialize) error {
	out, err := ser.Encode[string](k, b.r)
	if err != nil {
		return err
	}
	b.pending = out

	return nil
}

func (b *mapBuilder) SerializeValue(v ser.Serialize) error {
	out, err := ser.Encode[string](v, b.r)
	if err != nil {
		return err
	}
	b.items = append(b.items, b.pending+":"+out)

	return nil
}

func (b *mapBuilder) SerializeEntry(k, v ser.Serialize) error {
	if err := b.SerializeKey(k); err != nil {
		return err
	}

	return b.SerializeValue(v)
}

func (b *mapBuilder) End() (string, error) {
	return b.r.leaf("End", b.open+strings.Join(b.items, ",")+"}")
}

type fieldBuilder struct {
	r     recorder
	open  string
	items []string
}

func (b *fieldBuilder) SerializeField(key string, v ser.Serialize) error {
	out, err := ser.Encode[string](v, b.r)
	if err != nil {
		return err
	}
	b.items = append(b.items, key+"="+out)

	return nil
}

func (b *fieldBuilder) SkipField(key string) error {
	b.items = append(b.items, "-"+key)

	return nil
}

func (b *fieldBuilder) End() (string, error) {
	return b.r.leaf("End", b.open+strings.Join(b.items, ",")+"}")
}
