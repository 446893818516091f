package archecs

import "github.com/kamstrup/intmap"

// sparseMap is a small-integer-keyed map with O(1) get/put/delete, used for
// entity_id -> entity_location in the registry facade. Backed by
// kamstrup/intmap the way plus3-ooftn's archetype keys its entity-ref map
// by a small integer EntityId.
type sparseMap[V any] struct {
	m *intmap.Map[uint32, V]
}

func newSparseMap[V any](capacityHint int) sparseMap[V] {
	return sparseMap[V]{m: intmap.New[uint32, V](capacityHint)}
}

func (s sparseMap[V]) get(key uint32) (V, bool) {
	return s.m.Get(key)
}

func (s sparseMap[V]) put(key uint32, v V) {
	s.m.Put(key, v)
}

func (s sparseMap[V]) del(key uint32) {
	s.m.Del(key)
}
