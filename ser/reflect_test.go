package ser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/dynserde/ser"
	"github.com/iotaledger/dynserde/serrors"
)

type point struct {
	X uint16 `serde:"x"`
}

type sample struct {
	Name   string             `serde:"name"`
	Count  int
	Tags   []string           `serde:"tags,omitempty"`
	Origin *point             `serde:"origin"`
	Skip   bool               `serde:"-"`
	Raw    []byte             `serde:"raw"`
	Scores map[string]float64 `serde:"scores"`
	secret int
}

type celsius float64

func (c celsius) Serialize(s ser.Serializer) error {
	return s.SerializeNewtypeStruct("celsius", ser.Func(func(s ser.Serializer) error {
		return s.SerializeF64(float64(c))
	}))
}

func TestReflect(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"nil", nil, "none"},
		{"int", 42, "i64(42)"},
		{"uint8", uint8(9), "u8(9)"},
		{"float32", float32(0.5), "f32(0.5)"},
		{"string", "s", "str(s)"},
		{"nilPointer", (*point)(nil), "none"},
		{"pointer", &point{X: 1}, "some(point/1{x=u16(1)})"},
		{"byteArray", [2]byte{0xab, 0xcd}, "bytes(abcd)"},
		{"intArray", [2]int{1, 2}, "seq/2[i64(1),i64(2)]"},
		{"nilSlice", []string(nil), "none"},
		{"slice", []bool{true}, "seq/1[bool(true)]"},
		{"sortedMap", map[int]string{2: "b", 1: "a"}, "map/2{i64(1):str(a),i64(2):str(b)}"},
		{"serialize", celsius(21.5), "celsius(f64(21.5))"},
		{"serializeInSlice", []celsius{1}, "seq/1[celsius(f64(1))]"},
		{
			"struct",
			sample{
				Name:   "a",
				Count:  3,
				Origin: &point{X: 5},
				Skip:   true,
				Raw:    []byte{0xff},
				Scores: map[string]float64{"b": 2, "a": 1.5},
				secret: 1,
			},
			"sample/6{name=str(a),Count=i64(3),-tags,origin=some(point/1{x=u16(5)}),raw=bytes(ff)," +
				"scores=map/2{str(a):f64(1.5),str(b):f64(2)}}",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := ser.Encode[string](ser.Reflect(tt.value), recorder{})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestReflectUnsupported(t *testing.T) {
	_, err := ser.Encode[string](ser.Reflect(make(chan int)), recorder{})
	require.Error(t, err)

	var native *recError
	require.ErrorAs(t, err, &native)
	if serrors.Fidelity == serrors.FidelityFull {
		assert.Contains(t, native.msg, "unsupported kind chan")
	} else {
		assert.Equal(t, serrors.MarkerMessage, native.msg)
	}
}
