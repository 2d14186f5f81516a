package jsonbackend_test

import (
	"math"
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/dynserde/de"
	"github.com/iotaledger/dynserde/internal/jsonbackend"
	"github.com/iotaledger/dynserde/ser"
	"github.com/iotaledger/dynserde/serrors"
	"github.com/iotaledger/dynserde/value"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

func TestRoundTrip(t *testing.T) {
	data := []byte(`{"a":false,"b":0,"c":[null,1.5],"d":{"x":"y"}}`)

	v, err := jsonbackend.Unmarshal(data, value.Seed())
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c", "d"}, v.Keys())

	x, ok := v.Lookup("d", "x")
	require.True(t, ok)
	assert.Equal(t, value.String("y"), x)

	out, err := jsonbackend.Marshal(v)
	require.NoError(t, err)
	assert.Equal(t, string(data), string(out))

	expected, err := api.Marshal(v.Interface())
	require.NoError(t, err)
	assert.Equal(t, string(expected), string(out))

	var direct any
	require.NoError(t, api.Unmarshal(data, &direct))
	assert.Equal(t, direct, v.Interface())
}

func TestRoundTripScalars(t *testing.T) {
	tests := []struct {
		name string
		in   value.Value
		want string
	}{
		{"uint", value.Uint(5), `5`},
		{"int", value.Int(-42), `-42`},
		{"float", value.Float(1.5), `1.5`},
		{"bool", value.Bool(true), `true`},
		{"string", value.String("s"), `"s"`},
		{"null", value.Null(), `null`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := jsonbackend.Marshal(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(out))

			got, err := jsonbackend.Unmarshal(out, value.Seed())
			require.NoError(t, err)
			assert.True(t, value.Equal(tt.in, got), got.String())
		})
	}
}

func TestTopLevelNumberSeeds(t *testing.T) {
	i, err := jsonbackend.Unmarshal([]byte(`42`), de.Int64())
	require.NoError(t, err)
	assert.EqualValues(t, 42, i)

	f, err := jsonbackend.Unmarshal([]byte(`2.5`), de.Float64())
	require.NoError(t, err)
	assert.InDelta(t, 2.5, f, 0)

	_, err = jsonbackend.Unmarshal([]byte(`7`), de.IgnoredAny())
	require.NoError(t, err)

	_, err = jsonbackend.Unmarshal([]byte(`7 8`), de.Int64())
	require.Error(t, err)
}

type item struct {
	Name   string            `serde:"name"`
	Tags   []string          `serde:"tags,omitempty"`
	Score  float64           `serde:"score"`
	Counts map[string]uint16 `serde:"counts"`
	Note   *string           `serde:"note"`
	Hidden bool              `serde:"-"`
}

type jsonItem struct {
	Name   string            `json:"name"`
	Tags   []string          `json:"tags,omitempty"`
	Score  float64           `json:"score"`
	Counts map[string]uint16 `json:"counts"`
	Note   *string           `json:"note"`
}

func TestMarshalMatchesJsoniter(t *testing.T) {
	note := "<b>&"

	tests := []struct {
		name string
		in   item
		want jsonItem
	}{
		{
			name: "full",
			in:   item{Name: "a\"b", Tags: []string{"x"}, Score: 2.5, Counts: map[string]uint16{"z": 1, "y": 2}, Note: &note, Hidden: true},
			want: jsonItem{Name: "a\"b", Tags: []string{"x"}, Score: 2.5, Counts: map[string]uint16{"z": 1, "y": 2}, Note: &note},
		},
		{
			name: "omitted",
			in:   item{Name: "", Score: 1e-7, Counts: map[string]uint16{}},
			want: jsonItem{Name: "", Score: 1e-7, Counts: map[string]uint16{}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := jsonbackend.Marshal(ser.Reflect(tt.in))
			require.NoError(t, err)

			want, err := api.Marshal(tt.want)
			require.NoError(t, err)
			assert.Equal(t, string(want), string(got))
		})
	}
}

func TestMarshalKeys(t *testing.T) {
	got, err := jsonbackend.Marshal(ser.Reflect(map[int]string{2: "b", 1: "a"}))
	require.NoError(t, err)
	assert.Equal(t, `{"1":"a","2":"b"}`, string(got))

	_, err = jsonbackend.Marshal(ser.Reflect(map[[2]int]string{{1, 2}: "a"}))
	assert.ErrorContains(t, err, "key must be a string")
}

func TestMarshalNaN(t *testing.T) {
	_, err := jsonbackend.Marshal(ser.Reflect(math.NaN()))
	assert.Error(t, err)
}

func TestBytes(t *testing.T) {
	out, err := jsonbackend.Marshal(ser.Reflect([]byte{1, 2, 3}))
	require.NoError(t, err)
	assert.Equal(t, `"AQID"`, string(out))

	b, err := jsonbackend.Unmarshal(out, de.Bytes())
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, b)

	b, err = jsonbackend.Unmarshal([]byte(`[4, 5]`), de.Bytes())
	assert.Error(t, err)
	assert.Nil(t, b)
}

func TestEmptyKey(t *testing.T) {
	v, err := jsonbackend.Unmarshal([]byte(`{"":1, "b" : {"":[]} }`), value.Seed())
	require.NoError(t, err)
	assert.Equal(t, []string{"", "b"}, v.Keys())

	inner, ok := v.Lookup("b", "")
	require.True(t, ok)
	assert.Equal(t, value.KindArray, inner.Kind())
}

func TestNumbers(t *testing.T) {
	tests := []struct {
		in   string
		want value.Value
	}{
		{"0", value.Uint(0)},
		{"-3", value.Int(-3)},
		{"1.25", value.Float(1.25)},
		{"1e2", value.Float(100)},
		{"18446744073709551616", value.Float(18446744073709551616)},
		{"-9223372036854775809", value.Float(-9223372036854775809)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := jsonbackend.Unmarshal([]byte(tt.in), value.Seed())
			require.NoError(t, err)
			assert.Equal(t, tt.want.Kind(), got.Kind())
			assert.True(t, value.Equal(tt.want, got), got.String())
		})
	}
}

func TestOption(t *testing.T) {
	got, err := jsonbackend.Unmarshal([]byte(`[1,null,3]`), de.SliceOf(de.Option(de.Int64())))
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.EqualValues(t, 1, *got[0])
	assert.Nil(t, got[1])
	assert.EqualValues(t, 3, *got[2])
}

func TestSyntaxErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
	}{
		{"trailing", `1 2`},
		{"unterminated array", `[1,`},
		{"empty", ``},
		{"unread elements", `[true, false]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.name == "unread elements" {
				_, err = jsonbackend.Unmarshal([]byte(tt.in), firstBool())
			} else {
				_, err = jsonbackend.Unmarshal([]byte(tt.in), value.Seed())
			}

			var native *jsonbackend.Error
			require.ErrorAs(t, err, &native)
			assert.Contains(t, native.Error(), "json: syntax error")
		})
	}
}

// firstBool reads only the first element of a sequence.
func firstBool() de.ValueSeed[bool] {
	return de.SeedFunc[bool](func(d de.Deserializer) (bool, error) {
		return de.Drive[bool](de.VisitorFuncs[bool]{
			Seq: func(seq de.SeqAccess) (bool, error) {
				b, _, err := de.NextElement(seq, de.Bool())

				return b, err
			},
		}, d.DeserializeSeq)
	})
}

func TestVisitorErrorsUseBackendType(t *testing.T) {
	if serrors.Fidelity != serrors.FidelityFull {
		t.Skip("carriers keep no kind in marker mode")
	}

	_, err := jsonbackend.Unmarshal([]byte(`[true, 1]`), de.SliceOf(de.Bool()))

	var native *jsonbackend.Error
	require.ErrorAs(t, err, &native)
	assert.Equal(t, serrors.KindInvalidType, native.Kind)
}

func TestErrorsKeepMessages(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind serrors.Kind
		want string
	}{
		{"invalidType", jsonbackend.Errors.InvalidType(serrors.UnexpectedSeq(), "a string"), serrors.KindInvalidType, "json: invalid type: sequence, expected a string"},
		{"invalidLength", jsonbackend.Errors.InvalidLength(1, "a pair"), serrors.KindInvalidLength, "json: invalid length: 1, expected a pair"},
		{"unknownVariant", jsonbackend.Errors.UnknownVariant("c", []string{"a", "b"}), serrors.KindUnknownVariant, "json: unknown variant: c, expected `a` or `b`"},
		{"missingField", jsonbackend.Errors.MissingField("id"), serrors.KindMissingField, "json: missing field `id`"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var native *jsonbackend.Error
			require.ErrorAs(t, tt.err, &native)
			assert.Equal(t, tt.kind, native.Kind)
			assert.EqualError(t, tt.err, tt.want)
		})
	}
}
