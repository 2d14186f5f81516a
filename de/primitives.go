package de

import (
	"math"

	"github.com/iotaledger/dynserde/serrors"
)

// maxPreallocated caps the capacity taken from a size hint, which comes from untrusted input.
const maxPreallocated = 4096

func identity[V any](v V) (V, error) {
	return v, nil
}

// Bool decodes a boolean.
func Bool() ValueSeed[bool] {
	return SeedFunc[bool](func(d Deserializer) (bool, error) {
		return Drive[bool](VisitorFuncs[bool]{
			Description: "a boolean",
			Bool:        identity[bool],
		}, d.DeserializeBool)
	})
}

// Int64 decodes a signed integer. Unsigned input is accepted while it fits.
func Int64() ValueSeed[int64] {
	return SeedFunc[int64](func(d Deserializer) (int64, error) {
		return Drive[int64](VisitorFuncs[int64]{
			Description: "i64",
			I64:         identity[int64],
			U64: func(v uint64) (int64, error) {
				if v > math.MaxInt64 {
					return 0, serrors.InvalidValue(serrors.UnexpectedUnsigned(v), "i64")
				}

				return int64(v), nil
			},
		}, d.DeserializeI64)
	})
}

// Uint64 decodes an unsigned integer. Signed input is accepted while it is not negative.
func Uint64() ValueSeed[uint64] {
	return SeedFunc[uint64](func(d Deserializer) (uint64, error) {
		return Drive[uint64](VisitorFuncs[uint64]{
			Description: "u64",
			U64:         identity[uint64],
			I64: func(v int64) (uint64, error) {
				if v < 0 {
					return 0, serrors.InvalidValue(serrors.UnexpectedSigned(v), "u64")
				}

				return uint64(v), nil
			},
		}, d.DeserializeU64)
	})
}

// Float64 decodes a floating point number. Integers are converted.
func Float64() ValueSeed[float64] {
	return SeedFunc[float64](func(d Deserializer) (float64, error) {
		return Drive[float64](VisitorFuncs[float64]{
			Description: "f64",
			F64:         identity[float64],
			I64:         func(v int64) (float64, error) { return float64(v), nil },
			U64:         func(v uint64) (float64, error) { return float64(v), nil },
		}, d.DeserializeF64)
	})
}

// String decodes a string.
func String() ValueSeed[string] {
	return SeedFunc[string](func(d Deserializer) (string, error) {
		return Drive[string](VisitorFuncs[string]{
			Description: "a string",
			Str:         identity[string],
		}, d.DeserializeString)
	})
}

// Bytes decodes a byte array into a slice it owns.
func Bytes() ValueSeed[[]byte] {
	return SeedFunc[[]byte](func(d Deserializer) ([]byte, error) {
		return Drive[[]byte](VisitorFuncs[[]byte]{
			Description: "a byte array",
			Bytes:       func(v []byte) ([]byte, error) { return append([]byte(nil), v...), nil },
			ByteBuf:     identity[[]byte],
			Str:         func(v string) ([]byte, error) { return []byte(v), nil },
		}, d.DeserializeByteBuf)
	})
}

// Option decodes an optional value with inner. Absence is reported as nil.
func Option[T any](inner ValueSeed[T]) ValueSeed[*T] {
	some := func(d Deserializer) (*T, error) {
		value, err := inner.Deserialize(d)
		if err != nil {
			return nil, err
		}

		return &value, nil
	}

	return SeedFunc[*T](func(d Deserializer) (*T, error) {
		return Drive[*T](VisitorFuncs[*T]{
			Description: "option",
			None:        func() (*T, error) { return nil, nil },
			Unit:        func() (*T, error) { return nil, nil },
			Some:        some,
		}, d.DeserializeOption)
	})
}

// SliceOf decodes a sequence whose elements are decoded with elem.
func SliceOf[T any](elem ValueSeed[T]) ValueSeed[[]T] {
	return SeedFunc[[]T](func(d Deserializer) ([]T, error) {
		return Drive[[]T](VisitorFuncs[[]T]{
			Description: "a sequence",
			Seq: func(seq SeqAccess) ([]T, error) {
				hint, _ := seq.SizeHint()
				elements := make([]T, 0, min(hint, maxPreallocated))

				for {
					element, present, err := NextElement(seq, elem)
					if err != nil {
						return nil, err
					}
					if !present {
						return elements, nil
					}

					elements = append(elements, element)
				}
			},
		}, d.DeserializeSeq)
	})
}

// IgnoredAny consumes any value and discards it.
func IgnoredAny() ValueSeed[struct{}] {
	return SeedFunc[struct{}](func(d Deserializer) (struct{}, error) {
		return Drive[struct{}](ignoredVisitor(), d.DeserializeIgnoredAny)
	})
}

func ignoredVisitor() VisitorFuncs[struct{}] {
	nothing := func() (struct{}, error) { return struct{}{}, nil }
	nested := func(d Deserializer) (struct{}, error) { return IgnoredAny().Deserialize(d) }

	return VisitorFuncs[struct{}]{
		Description:   "anything at all",
		Bool:          func(bool) (struct{}, error) { return nothing() },
		I64:           func(int64) (struct{}, error) { return nothing() },
		U64:           func(uint64) (struct{}, error) { return nothing() },
		F64:           func(float64) (struct{}, error) { return nothing() },
		Str:           func(string) (struct{}, error) { return nothing() },
		Bytes:         func([]byte) (struct{}, error) { return nothing() },
		None:          nothing,
		Unit:          nothing,
		Some:          nested,
		NewtypeStruct: nested,
		Seq: func(seq SeqAccess) (struct{}, error) {
			for {
				_, present, err := NextElement(seq, IgnoredAny())
				if err != nil || !present {
					return struct{}{}, err
				}
			}
		},
		Map: func(m MapAccess) (struct{}, error) {
			for {
				_, _, present, err := NextEntry(m, IgnoredAny(), IgnoredAny())
				if err != nil || !present {
					return struct{}{}, err
				}
			}
		},
		Enum: func(e EnumAccess) (struct{}, error) {
			_, variant, err := VariantOf(e, IgnoredAny())
			if err != nil {
				return struct{}{}, err
			}

			return NewtypeVariant(variant, IgnoredAny())
		},
	}
}
