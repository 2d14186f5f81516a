package de

import "fmt"

// Hint names the shape a Deserializer is asked to resolve.
type Hint uint8

const (
	HintAny Hint = iota
	HintBool
	HintI8
	HintI16
	HintI32
	HintI64
	HintU8
	HintU16
	HintU32
	HintU64
	HintF32
	HintF64
	HintChar
	HintStr
	HintString
	HintBytes
	HintByteBuf
	HintOption
	HintUnit
	HintUnitStruct
	HintNewtypeStruct
	HintSeq
	HintTuple
	HintTupleStruct
	HintMap
	HintStruct
	HintEnum
	HintIdentifier
	HintIgnoredAny
)

var hintNames = [...]string{
	HintAny:           "any",
	HintBool:          "bool",
	HintI8:            "i8",
	HintI16:           "i16",
	HintI32:           "i32",
	HintI64:           "i64",
	HintU8:            "u8",
	HintU16:           "u16",
	HintU32:           "u32",
	HintU64:           "u64",
	HintF32:           "f32",
	HintF64:           "f64",
	HintChar:          "char",
	HintStr:           "str",
	HintString:        "string",
	HintBytes:         "bytes",
	HintByteBuf:       "byte buf",
	HintOption:        "option",
	HintUnit:          "unit",
	HintUnitStruct:    "unit struct",
	HintNewtypeStruct: "newtype struct",
	HintSeq:           "seq",
	HintTuple:         "tuple",
	HintTupleStruct:   "tuple struct",
	HintMap:           "map",
	HintStruct:        "struct",
	HintEnum:          "enum",
	HintIdentifier:    "identifier",
	HintIgnoredAny:    "ignored any",
}

func (h Hint) String() string {
	if int(h) < len(hintNames) {
		return hintNames[h]
	}

	return fmt.Sprintf("Hint(%d)", h)
}
