package serrors

import (
	"math"
	"strconv"
	"strings"
)

// UnexpectedKind tells what kind of value an Unexpected describes.
type UnexpectedKind uint8

const (
	UnexpectedKindOther UnexpectedKind = iota
	UnexpectedKindBool
	UnexpectedKindUnsigned
	UnexpectedKindSigned
	UnexpectedKindFloat
	UnexpectedKindChar
	UnexpectedKindStr
	UnexpectedKindBytes
	UnexpectedKindUnit
	UnexpectedKindOption
	UnexpectedKindNewtypeStruct
	UnexpectedKindSeq
	UnexpectedKindMap
	UnexpectedKindEnum
	UnexpectedKindUnitVariant
	UnexpectedKindNewtypeVariant
	UnexpectedKindTupleVariant
	UnexpectedKindStructVariant
)

// Unexpected is an owned description of a value that a receiver did not expect.
type Unexpected struct {
	kind     UnexpectedKind
	boolean  bool
	unsigned uint64
	signed   int64
	float    float64
	text     string
	bytes    []byte
}

// UnexpectedBool describes a boolean.
func UnexpectedBool(v bool) Unexpected {
	return Unexpected{kind: UnexpectedKindBool, boolean: v}
}

// UnexpectedUnsigned describes an unsigned integer.
func UnexpectedUnsigned(v uint64) Unexpected {
	return Unexpected{kind: UnexpectedKindUnsigned, unsigned: v}
}

// UnexpectedSigned describes a signed integer.
func UnexpectedSigned(v int64) Unexpected {
	return Unexpected{kind: UnexpectedKindSigned, signed: v}
}

// UnexpectedFloat describes a floating point number.
func UnexpectedFloat(v float64) Unexpected {
	return Unexpected{kind: UnexpectedKindFloat, float: v}
}

// UnexpectedChar describes a character.
func UnexpectedChar(v rune) Unexpected {
	return Unexpected{kind: UnexpectedKindChar, text: string(v)}
}

// UnexpectedStr describes a string.
func UnexpectedStr(v string) Unexpected {
	return Unexpected{kind: UnexpectedKindStr, text: v}
}

// UnexpectedBytes describes a byte array. It copies v.
func UnexpectedBytes(v []byte) Unexpected {
	return Unexpected{kind: UnexpectedKindBytes, bytes: append([]byte(nil), v...)}
}

// UnexpectedUnit describes the unit value.
func UnexpectedUnit() Unexpected {
	return Unexpected{kind: UnexpectedKindUnit}
}

// UnexpectedOption describes an option.
func UnexpectedOption() Unexpected {
	return Unexpected{kind: UnexpectedKindOption}
}

// UnexpectedNewtypeStruct describes a newtype struct.
func UnexpectedNewtypeStruct() Unexpected {
	return Unexpected{kind: UnexpectedKindNewtypeStruct}
}

// UnexpectedSeq describes a sequence.
func UnexpectedSeq() Unexpected {
	return Unexpected{kind: UnexpectedKindSeq}
}

// UnexpectedMap describes a map.
func UnexpectedMap() Unexpected {
	return Unexpected{kind: UnexpectedKindMap}
}

// UnexpectedEnum describes an enum.
func UnexpectedEnum() Unexpected {
	return Unexpected{kind: UnexpectedKindEnum}
}

// UnexpectedUnitVariant describes a unit variant.
func UnexpectedUnitVariant() Unexpected {
	return Unexpected{kind: UnexpectedKindUnitVariant}
}

// UnexpectedNewtypeVariant describes a newtype variant.
func UnexpectedNewtypeVariant() Unexpected {
	return Unexpected{kind: UnexpectedKindNewtypeVariant}
}

// UnexpectedTupleVariant describes a tuple variant.
func UnexpectedTupleVariant() Unexpected {
	return Unexpected{kind: UnexpectedKindTupleVariant}
}

// UnexpectedStructVariant describes a struct variant.
func UnexpectedStructVariant() Unexpected {
	return Unexpected{kind: UnexpectedKindStructVariant}
}

// UnexpectedOther describes a value with free text, which is rendered verbatim.
func UnexpectedOther(text string) Unexpected {
	return Unexpected{kind: UnexpectedKindOther, text: text}
}

// Kind returns the kind of the described value.
func (u Unexpected) Kind() UnexpectedKind {
	return u.kind
}

// Bytes returns the payload of an UnexpectedKindBytes value.
func (u Unexpected) Bytes() []byte {
	return u.bytes
}

func (u Unexpected) String() string {
	switch u.kind {
	case UnexpectedKindBool:
		return "boolean `" + strconv.FormatBool(u.boolean) + "`"
	case UnexpectedKindUnsigned:
		return "integer `" + strconv.FormatUint(u.unsigned, 10) + "`"
	case UnexpectedKindSigned:
		return "integer `" + strconv.FormatInt(u.signed, 10) + "`"
	case UnexpectedKindFloat:
		return "floating point `" + withDecimalPoint(u.float) + "`"
	case UnexpectedKindChar:
		return "character `" + u.text + "`"
	case UnexpectedKindStr:
		return "string " + strconv.Quote(u.text)
	case UnexpectedKindBytes:
		return "byte array"
	case UnexpectedKindUnit:
		return "unit value"
	case UnexpectedKindOption:
		return "Option value"
	case UnexpectedKindNewtypeStruct:
		return "newtype struct"
	case UnexpectedKindSeq:
		return "sequence"
	case UnexpectedKindMap:
		return "map"
	case UnexpectedKindEnum:
		return "enum"
	case UnexpectedKindUnitVariant:
		return "unit variant"
	case UnexpectedKindNewtypeVariant:
		return "newtype variant"
	case UnexpectedKindTupleVariant:
		return "tuple variant"
	case UnexpectedKindStructVariant:
		return "struct variant"
	default:
		return u.text
	}
}

// withDecimalPoint keeps a trailing ".0" on integral floats so they read as floats.
func withDecimalPoint(f float64) string {
	text := strconv.FormatFloat(f, 'g', -1, 64)
	if math.IsInf(f, 0) || math.IsNaN(f) || strings.ContainsAny(text, ".e") {
		return text
	}

	return text + ".0"
}
