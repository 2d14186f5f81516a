package de_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iotaledger/dynserde/de"
	"github.com/iotaledger/dynserde/serrors"
)

func TestVisitorFuncsFallbacks(t *testing.T) {
	funcs := de.VisitorFuncs[string]{
		I64:   func(v int64) (string, error) { return "i64", nil },
		U64:   func(v uint64) (string, error) { return "u64", nil },
		F64:   func(v float64) (string, error) { return "f64", nil },
		Str:   func(v string) (string, error) { return "str:" + v, nil },
		Bytes: func(v []byte) (string, error) { return "bytes", nil },
	}

	tests := []struct {
		name  string
		visit func(v de.Visitor) error
		want  string
	}{
		{"i8", func(v de.Visitor) error { return v.VisitI8(1) }, "i64"},
		{"i16", func(v de.Visitor) error { return v.VisitI16(1) }, "i64"},
		{"i32", func(v de.Visitor) error { return v.VisitI32(1) }, "i64"},
		{"u8", func(v de.Visitor) error { return v.VisitU8(1) }, "u64"},
		{"u16", func(v de.Visitor) error { return v.VisitU16(1) }, "u64"},
		{"u32", func(v de.Visitor) error { return v.VisitU32(1) }, "u64"},
		{"f32", func(v de.Visitor) error { return v.VisitF32(1) }, "f64"},
		{"char", func(v de.Visitor) error { return v.VisitChar('é') }, "str:é"},
		{"borrowedStr", func(v de.Visitor) error { return v.VisitBorrowedStr("b") }, "str:b"},
		{"string", func(v de.Visitor) error { return v.VisitString("s") }, "str:s"},
		{"borrowedBytes", func(v de.Visitor) error { return v.VisitBorrowedBytes(nil) }, "bytes"},
		{"byteBuf", func(v de.Visitor) error { return v.VisitByteBuf(nil) }, "bytes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := de.Drive[string](funcs, tt.visit)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestVisitorFuncsInvalidType(t *testing.T) {
	if serrors.Fidelity != serrors.FidelityFull {
		t.Skip("carriers keep no kind in marker mode")
	}

	tests := []struct {
		name    string
		visit   func(v de.Visitor) error
		wantMsg string
	}{
		{"bool", func(v de.Visitor) error { return v.VisitBool(true) }, "invalid type: boolean `true`, expected a value"},
		{"i8", func(v de.Visitor) error { return v.VisitI8(-2) }, "invalid type: integer `-2`, expected a value"},
		{"u16", func(v de.Visitor) error { return v.VisitU16(2) }, "invalid type: integer `2`, expected a value"},
		{"f32", func(v de.Visitor) error { return v.VisitF32(1.5) }, "invalid type: floating point `1.5`, expected a value"},
		{"char", func(v de.Visitor) error { return v.VisitChar('c') }, `invalid type: string "c", expected a value`},
		{"bytes", func(v de.Visitor) error { return v.VisitByteBuf([]byte{1}) }, "invalid type: byte array, expected a value"},
		{"none", func(v de.Visitor) error { return v.VisitNone() }, "invalid type: Option value, expected a value"},
		{"unit", func(v de.Visitor) error { return v.VisitUnit() }, "invalid type: unit value, expected a value"},
		{"seq", func(v de.Visitor) error { return v.VisitSeq(nil) }, "invalid type: sequence, expected a value"},
		{"map", func(v de.Visitor) error { return v.VisitMap(nil) }, "invalid type: map, expected a value"},
		{"enum", func(v de.Visitor) error { return v.VisitEnum(nil) }, "invalid type: enum, expected a value"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := de.Drive[struct{}](de.VisitorFuncs[struct{}]{}, tt.visit)
			require.Error(t, err)

			kind, ok := serrors.KindOf(err)
			require.True(t, ok)
			assert.Equal(t, serrors.KindInvalidType, kind)
			assert.EqualError(t, err, tt.wantMsg)
		})
	}
}
