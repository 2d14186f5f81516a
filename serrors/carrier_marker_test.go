//go:build serrors_marker

package serrors_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iotaledger/dynserde/serrors"
)

func TestMarkerCarriers(t *testing.T) {
	assert.Equal(t, serrors.FidelityMarker, serrors.Fidelity)

	for _, carrier := range []*serrors.Error{
		serrors.Custom("boom"),
		serrors.InvalidType(serrors.UnexpectedBool(true), "a string"),
		serrors.MissingField("id"),
		serrors.Wrap(assert.AnError),
	} {
		assert.EqualError(t, carrier, serrors.MarkerMessage)
		assert.Equal(t, serrors.KindCustom, carrier.Kind())
		assert.EqualError(t, serrors.Into(carrier, nativeFactory{}), serrors.MarkerMessage)
	}
}
