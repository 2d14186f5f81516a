package serrors

import (
	"github.com/cockroachdb/errors"
)

// ErrProtocolViolation is matched by every signal that reports a call in the wrong adapter state.
var ErrProtocolViolation = errors.New("protocol violation")

// Signal is the payload-free error returned by the mirror methods of an adapter.
// SignalFailed means the real error was captured by the adapter that returned it.
// Every other signal is a protocol violation that left the adapter untouched.
type Signal uint8

const (
	// SignalFailed reports that the real error was captured by the adapter.
	SignalFailed Signal = iota + 1
	// SignalNotSerializer reports a serializer call on a serializer that is not ready.
	SignalNotSerializer
	// SignalNotSerializeSeq reports a sequence builder call outside the sequence state.
	SignalNotSerializeSeq
	// SignalNotSerializeTuple reports a tuple builder call outside the tuple state.
	SignalNotSerializeTuple
	// SignalNotSerializeTupleStruct reports a tuple struct builder call outside its state.
	SignalNotSerializeTupleStruct
	// SignalNotSerializeTupleVariant reports a tuple variant builder call outside its state.
	SignalNotSerializeTupleVariant
	// SignalNotSerializeMap reports a map builder call outside the map state.
	SignalNotSerializeMap
	// SignalNotSerializeStruct reports a struct builder call outside the struct state.
	SignalNotSerializeStruct
	// SignalNotSerializeStructVariant reports a struct variant builder call outside its state.
	SignalNotSerializeStructVariant
	// SignalNotDeserializer reports a second hint call on a deserializer.
	SignalNotDeserializer
	// SignalNotVisitor reports a visit call on a visitor that was already used.
	SignalNotVisitor
	// SignalNotSeed reports a deserialize call on a seed that was already used.
	SignalNotSeed
	// SignalNotSeqAccess reports a call on a sequence access that is done.
	SignalNotSeqAccess
	// SignalNotMapAccess reports a call on a map access that is done.
	SignalNotMapAccess
	// SignalNotMapValue reports a value request without a pending key.
	SignalNotMapValue
	// SignalNotEnumAccess reports a variant request on an enum access that was already used.
	SignalNotEnumAccess
	// SignalNotVariantAccess reports a variant payload request out of order.
	SignalNotVariantAccess
)

var signalTexts = map[Signal]string{
	SignalFailed:                    "the dynamic (de)serialization has done unsuccessfully",
	SignalNotSerializer:             "the serializer is not ready",
	SignalNotSerializeSeq:           "the serializer is not ready to serialize a sequence",
	SignalNotSerializeTuple:         "the serializer is not ready to serialize a tuple",
	SignalNotSerializeTupleStruct:   "the serializer is not ready to serialize a tuple struct",
	SignalNotSerializeTupleVariant:  "the serializer is not ready to serialize a tuple variant",
	SignalNotSerializeMap:           "the serializer is not ready to serialize a map",
	SignalNotSerializeStruct:        "the serializer is not ready to serialize a struct",
	SignalNotSerializeStructVariant: "the serializer is not ready to serialize a struct variant",
	SignalNotDeserializer:           "the deserializer is not ready",
	SignalNotVisitor:                "the visitor is not ready",
	SignalNotSeed:                   "the deserialize seed is not ready",
	SignalNotSeqAccess:              "the visitor is not ready to deserialize the contents of the sequence",
	SignalNotMapAccess:              "the visitor is not ready to deserialize the contents of the map",
	SignalNotMapValue:               "the map access has no pending key for a value",
	SignalNotEnumAccess:             "the visitor is not ready to deserialize the contents of the enum",
	SignalNotVariantAccess:          "the visitor is not ready to deserialize the contents of the enum variant",
}

func (s Signal) Error() string {
	if text, ok := signalTexts[s]; ok {
		return text
	}

	return "unknown signal"
}

// Violation tells whether s reports a protocol violation.
func (s Signal) Violation() bool {
	return s > SignalFailed && int(s) <= len(signalTexts)
}

// Is makes every violation signal match ErrProtocolViolation.
func (s Signal) Is(target error) bool {
	return target == ErrProtocolViolation && s.Violation() //nolint:errorlint,goerr113 // sentinel comparison
}

// SignalOf returns the signal at the top of err.
func SignalOf(err error) (Signal, bool) {
	signal, ok := err.(Signal) //nolint:errorlint // signals are never wrapped
	return signal, ok
}

// IsSignal tells whether err is a signal.
func IsSignal(err error) bool {
	_, ok := SignalOf(err)
	return ok
}
