package ser

import "fmt"

// Encode drives v through enc and returns the encoder's output.
// Errors come back in the error domain of enc.
func Encode[Ok any](v Serialize, enc Encoder[Ok]) (Ok, error) {
	s := New(enc)

	return s.Result(v.Serialize(s))
}

// Display serializes the String form of v through CollectStr.
func Display(v fmt.Stringer) Serialize {
	return Func(func(s Serializer) error {
		return s.CollectStr(v)
	})
}

// Str returns a Serialize writing v as a string.
func Str(v string) Serialize {
	return Func(func(s Serializer) error {
		return s.SerializeStr(v)
	})
}
