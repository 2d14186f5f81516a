package de

import (
	"github.com/iotaledger/dynserde/internal/slot"
	"github.com/iotaledger/dynserde/serrors"
)

// capturedOr prefers the error captured by an access adapter over the one its driver returned.
func capturedOr(captured, err error, errs serrors.Factory) error {
	if err == nil {
		return nil
	}

	if captured != nil {
		return captured
	}

	return serrors.Into(err, errs)
}

// InplaceSeqAccess wraps a SeqBackend. NextElement is repeatable until the backend reports the end of
// the sequence, which is latched.
type InplaceSeqAccess struct {
	slot slot.Slot[SeqBackend, struct{}]
	errs serrors.Factory
}

var _ SeqAccess = (*InplaceSeqAccess)(nil)

// NewSeqAccess wraps seq.
func NewSeqAccess(seq SeqBackend) *InplaceSeqAccess {
	return newSeqAccess(seq, serrors.FactoryOf(seq))
}

func newSeqAccess(seq SeqBackend, errs serrors.Factory) *InplaceSeqAccess {
	return &InplaceSeqAccess{slot: slot.New[SeqBackend, struct{}](seq), errs: errs}
}

// Err returns the error captured from the backend.
func (a *InplaceSeqAccess) Err() error {
	return a.slot.Err()
}

// Resolve turns an error returned by whoever drove a into the error of a's backend.
func (a *InplaceSeqAccess) Resolve(err error) error {
	return capturedOr(a.slot.Err(), err, a.errs)
}

func (a *InplaceSeqAccess) NextElement(seed DeserializeSeed) (bool, error) {
	if a.slot.State() == slot.Produced {
		return false, nil
	}

	seq, ok := a.slot.Take()
	if !ok {
		return false, violation(serrors.SignalNotSeqAccess, "NextElement")
	}

	present, err := seq.NextElement(&backendSeed{seed: seed, errs: a.errs})
	switch {
	case err != nil:
		a.slot.Fail(err)

		return false, serrors.SignalFailed
	case !present:
		a.slot.Produce(struct{}{})

		return false, nil
	default:
		a.slot.Hold(seq)

		return true, nil
	}
}

// SizeHint asks the backend until the sequence ended or failed.
func (a *InplaceSeqAccess) SizeHint() (int, bool) {
	if seq, ok := a.slot.Peek(); ok {
		return seq.SizeHint()
	}

	return 0, false
}

// InplaceMapAccess wraps a MapBackend. Keys and values alternate: NextValue is legal only after NextKey
// reported a key, and NextKey or NextEntry are legal only when no value is pending.
type InplaceMapAccess struct {
	slot    slot.Slot[MapBackend, struct{}]
	errs    serrors.Factory
	pending bool
}

var _ MapAccess = (*InplaceMapAccess)(nil)

// NewMapAccess wraps m.
func NewMapAccess(m MapBackend) *InplaceMapAccess {
	return newMapAccess(m, serrors.FactoryOf(m))
}

func newMapAccess(m MapBackend, errs serrors.Factory) *InplaceMapAccess {
	return &InplaceMapAccess{slot: slot.New[MapBackend, struct{}](m), errs: errs}
}

// Err returns the error captured from the backend.
func (a *InplaceMapAccess) Err() error {
	return a.slot.Err()
}

// Resolve turns an error returned by whoever drove a into the error of a's backend.
func (a *InplaceMapAccess) Resolve(err error) error {
	return capturedOr(a.slot.Err(), err, a.errs)
}

func (a *InplaceMapAccess) NextKey(seed DeserializeSeed) (bool, error) {
	return a.next("NextKey", func(m MapBackend) (bool, error) {
		return m.NextKey(&backendSeed{seed: seed, errs: a.errs})
	}, true)
}

func (a *InplaceMapAccess) NextEntry(key, value DeserializeSeed) (bool, error) {
	return a.next("NextEntry", func(m MapBackend) (bool, error) {
		return m.NextEntry(&backendSeed{seed: key, errs: a.errs}, &backendSeed{seed: value, errs: a.errs})
	}, false)
}

func (a *InplaceMapAccess) next(call string, next func(MapBackend) (bool, error), keyOnly bool) (bool, error) {
	if a.pending {
		return false, violation(serrors.SignalNotMapAccess, call)
	}

	if a.slot.State() == slot.Produced {
		return false, nil
	}

	m, ok := a.slot.Take()
	if !ok {
		return false, violation(serrors.SignalNotMapAccess, call)
	}

	present, err := next(m)
	switch {
	case err != nil:
		a.slot.Fail(err)

		return false, serrors.SignalFailed
	case !present:
		a.slot.Produce(struct{}{})

		return false, nil
	default:
		a.slot.Hold(m)
		a.pending = keyOnly

		return true, nil
	}
}

func (a *InplaceMapAccess) NextValue(seed DeserializeSeed) error {
	if !a.pending {
		return violation(serrors.SignalNotMapValue, "NextValue")
	}

	m, ok := a.slot.Take()
	if !ok {
		return violation(serrors.SignalNotMapAccess, "NextValue")
	}

	if err := m.NextValue(&backendSeed{seed: seed, errs: a.errs}); err != nil {
		a.slot.Fail(err)
		a.pending = false

		return serrors.SignalFailed
	}

	a.slot.Hold(m)
	a.pending = false

	return nil
}

// SizeHint asks the backend until the map ended or failed.
func (a *InplaceMapAccess) SizeHint() (int, bool) {
	if m, ok := a.slot.Peek(); ok {
		return m.SizeHint()
	}

	return 0, false
}

// enumCursor is one of the two phases of an enum: exactly one field is set.
type enumCursor struct {
	enum    EnumBackend
	variant VariantBackend
}

// InplaceEnumAccess wraps an EnumBackend. Variant moves it to the variant phase, where exactly one payload
// call is legal. The adapter doubles as the VariantAccess returned by Variant.
type InplaceEnumAccess struct {
	slot slot.Slot[enumCursor, struct{}]
	errs serrors.Factory
}

var (
	_ EnumAccess    = (*InplaceEnumAccess)(nil)
	_ VariantAccess = (*InplaceEnumAccess)(nil)
)

// NewEnumAccess wraps e.
func NewEnumAccess(e EnumBackend) *InplaceEnumAccess {
	return newEnumAccess(e, serrors.FactoryOf(e))
}

func newEnumAccess(e EnumBackend, errs serrors.Factory) *InplaceEnumAccess {
	return &InplaceEnumAccess{slot: slot.New[enumCursor, struct{}](enumCursor{enum: e}), errs: errs}
}

// Err returns the error captured from the backend.
func (a *InplaceEnumAccess) Err() error {
	return a.slot.Err()
}

// Resolve turns an error returned by whoever drove a into the error of a's backend.
func (a *InplaceEnumAccess) Resolve(err error) error {
	return capturedOr(a.slot.Err(), err, a.errs)
}

func (a *InplaceEnumAccess) Variant(seed DeserializeSeed) (VariantAccess, error) {
	if cursor, ok := a.slot.Peek(); !ok || cursor.enum == nil {
		return nil, violation(serrors.SignalNotEnumAccess, "Variant")
	}

	cursor, _ := a.slot.Take()
	variant, err := cursor.enum.Variant(&backendSeed{seed: seed, errs: a.errs})
	if err != nil {
		a.slot.Fail(err)

		return nil, serrors.SignalFailed
	}

	a.slot.Hold(enumCursor{variant: variant})

	return a, nil
}

func (a *InplaceEnumAccess) payload(call string, consume func(VariantBackend) error) error {
	if cursor, ok := a.slot.Peek(); !ok || cursor.variant == nil {
		return violation(serrors.SignalNotVariantAccess, call)
	}

	cursor, _ := a.slot.Take()
	if err := consume(cursor.variant); err != nil {
		a.slot.Fail(err)

		return serrors.SignalFailed
	}

	a.slot.Produce(struct{}{})

	return nil
}

func (a *InplaceEnumAccess) UnitVariant() error {
	return a.payload("UnitVariant", VariantBackend.UnitVariant)
}

func (a *InplaceEnumAccess) NewtypeVariant(seed DeserializeSeed) error {
	return a.payload("NewtypeVariant", func(variant VariantBackend) error {
		return variant.NewtypeVariant(&backendSeed{seed: seed, errs: a.errs})
	})
}

func (a *InplaceEnumAccess) TupleVariant(length int, v Visitor) error {
	return a.payload("TupleVariant", func(variant VariantBackend) error {
		return variant.TupleVariant(length, &backendVisitor{visitor: v, errs: a.errs})
	})
}

func (a *InplaceEnumAccess) StructVariant(fields []string, v Visitor) error {
	return a.payload("StructVariant", func(variant VariantBackend) error {
		return variant.StructVariant(fields, &backendVisitor{visitor: v, errs: a.errs})
	})
}
