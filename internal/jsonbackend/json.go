// Package jsonbackend is a JSON encoder and decoder for the erased serialization layer, built on jsoniter.
// It writes output byte for byte like encoding/json.
package jsonbackend

import (
	"io"

	"github.com/cockroachdb/errors"
	jsoniter "github.com/json-iterator/go"

	"github.com/iotaledger/dynserde/de"
	"github.com/iotaledger/dynserde/ser"
	"github.com/iotaledger/dynserde/serrors"
)

var api = jsoniter.ConfigCompatibleWithStandardLibrary

// Marshal encodes v as JSON.
func Marshal(v ser.Serialize) ([]byte, error) {
	stream := api.BorrowStream(nil)
	defer api.ReturnStream(stream)

	if _, err := ser.Encode[struct{}](v, encoder{stream: stream}); err != nil {
		return nil, err
	}
	if stream.Error != nil {
		return nil, newError(serrors.KindCustom, stream.Error.Error())
	}

	return append([]byte(nil), stream.Buffer()...), nil
}

// Unmarshal decodes data through seed and rejects anything after the decoded value.
func Unmarshal[V any](data []byte, seed de.ValueSeed[V]) (V, error) {
	iter := api.BorrowIterator(data)
	defer api.ReturnIterator(iter)

	d := &decoder{iter: iter}

	value, err := de.Deserialize[V](d, seed)
	if err != nil {
		return value, err
	}

	iter.WhatIsNext()
	if !errors.Is(iter.Error, io.EOF) {
		var zero V

		return zero, syntaxError("trailing characters")
	}

	return value, nil
}
