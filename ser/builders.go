package ser

// The builder views share the adapter of the Serializer that created them, so a builder obtained from
// an adapter is invalidated by any call that moves that adapter out of the builder's state.

type seqView[Ok any] struct{ s *InplaceSerializer[Ok] }

func (v seqView[Ok]) SerializeElement(e Serialize) error {
	return v.s.step(shapeSeq, "SerializeSeq.SerializeElement", func(h held[Ok]) error {
		return h.seq.SerializeElement(e)
	})
}

func (v seqView[Ok]) End() error {
	return v.s.end(shapeSeq, "SerializeSeq.End", func(h held[Ok]) (Ok, error) { return h.seq.End() })
}

type tupleView[Ok any] struct{ s *InplaceSerializer[Ok] }

func (v tupleView[Ok]) SerializeElement(e Serialize) error {
	return v.s.step(shapeTuple, "SerializeTuple.SerializeElement", func(h held[Ok]) error {
		return h.tuple.SerializeElement(e)
	})
}

func (v tupleView[Ok]) End() error {
	return v.s.end(shapeTuple, "SerializeTuple.End", func(h held[Ok]) (Ok, error) { return h.tuple.End() })
}

type tupleStructView[Ok any] struct{ s *InplaceSerializer[Ok] }

func (v tupleStructView[Ok]) SerializeField(f Serialize) error {
	return v.s.step(shapeTupleStruct, "SerializeTupleStruct.SerializeField", func(h held[Ok]) error {
		return h.tupleStruct.SerializeField(f)
	})
}

func (v tupleStructView[Ok]) End() error {
	return v.s.end(shapeTupleStruct, "SerializeTupleStruct.End", func(h held[Ok]) (Ok, error) {
		return h.tupleStruct.End()
	})
}

type tupleVariantView[Ok any] struct{ s *InplaceSerializer[Ok] }

func (v tupleVariantView[Ok]) SerializeField(f Serialize) error {
	return v.s.step(shapeTupleVariant, "SerializeTupleVariant.SerializeField", func(h held[Ok]) error {
		return h.tupleVariant.SerializeField(f)
	})
}

func (v tupleVariantView[Ok]) End() error {
	return v.s.end(shapeTupleVariant, "SerializeTupleVariant.End", func(h held[Ok]) (Ok, error) {
		return h.tupleVariant.End()
	})
}

type mapView[Ok any] struct{ s *InplaceSerializer[Ok] }

func (v mapView[Ok]) SerializeKey(k Serialize) error {
	return v.s.step(shapeMap, "SerializeMap.SerializeKey", func(h held[Ok]) error {
		return h.mapEnc.SerializeKey(k)
	})
}

func (v mapView[Ok]) SerializeValue(e Serialize) error {
	return v.s.step(shapeMap, "SerializeMap.SerializeValue", func(h held[Ok]) error {
		return h.mapEnc.SerializeValue(e)
	})
}

func (v mapView[Ok]) SerializeEntry(k, e Serialize) error {
	return v.s.step(shapeMap, "SerializeMap.SerializeEntry", func(h held[Ok]) error {
		return h.mapEnc.SerializeEntry(k, e)
	})
}

func (v mapView[Ok]) End() error {
	return v.s.end(shapeMap, "SerializeMap.End", func(h held[Ok]) (Ok, error) { return h.mapEnc.End() })
}

type structView[Ok any] struct{ s *InplaceSerializer[Ok] }

func (v structView[Ok]) SerializeField(key string, f Serialize) error {
	return v.s.step(shapeStruct, "SerializeStruct.SerializeField", func(h held[Ok]) error {
		return h.structEnc.SerializeField(key, f)
	})
}

func (v structView[Ok]) SkipField(key string) error {
	return v.s.step(shapeStruct, "SerializeStruct.SkipField", func(h held[Ok]) error {
		return h.structEnc.SkipField(key)
	})
}

func (v structView[Ok]) End() error {
	return v.s.end(shapeStruct, "SerializeStruct.End", func(h held[Ok]) (Ok, error) { return h.structEnc.End() })
}

type structVariantView[Ok any] struct{ s *InplaceSerializer[Ok] }

func (v structVariantView[Ok]) SerializeField(key string, f Serialize) error {
	return v.s.step(shapeStructVariant, "SerializeStructVariant.SerializeField", func(h held[Ok]) error {
		return h.structVariant.SerializeField(key, f)
	})
}

func (v structVariantView[Ok]) SkipField(key string) error {
	return v.s.step(shapeStructVariant, "SerializeStructVariant.SkipField", func(h held[Ok]) error {
		return h.structVariant.SkipField(key)
	})
}

func (v structVariantView[Ok]) End() error {
	return v.s.end(shapeStructVariant, "SerializeStructVariant.End", func(h held[Ok]) (Ok, error) {
		return h.structVariant.End()
	})
}
