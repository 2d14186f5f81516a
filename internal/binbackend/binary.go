// Package binbackend is a compact, positional binary format for the erased serialization layer.
//
// Integers and floats are written little endian with their fixed width. Strings, byte arrays, sequences
// and maps carry an uint32 length prefix, options a tag byte and enum variants their uint32 index.
// Tuples and structs are written as their fields in order. The format is not self-describing, so
// DeserializeAny is not supported.
package binbackend

import (
	"github.com/iotaledger/dynserde/de"
	"github.com/iotaledger/dynserde/ser"
	"github.com/iotaledger/dynserde/serrors"
)

// Marshal encodes v.
func Marshal(v ser.Serialize) ([]byte, error) {
	w := &writer{}
	if _, err := ser.Encode[struct{}](v, encoder{w: w}); err != nil {
		return nil, err
	}

	return w.buf, nil
}

// Unmarshal decodes data through seed. All of data must be consumed.
func Unmarshal[V any](data []byte, seed de.ValueSeed[V]) (V, error) {
	r := &reader{data: data}

	value, err := de.Deserialize[V](&decoder{r: r}, seed)
	if err != nil {
		return value, err
	}

	if r.remaining() != 0 {
		var zero V

		return zero, serrors.Customf("%d trailing bytes", r.remaining())
	}

	return value, nil
}
