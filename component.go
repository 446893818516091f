package archecs

import (
	"math"
	"reflect"
	"unsafe"
)

// ComponentID is the small integer a distinct component type is assigned
// on first use.
type ComponentID uint32

const invalidComponentID = ComponentID(math.MaxUint32)

// componentMeta is the type registry's per-component-type record: size,
// alignment, a display name, and the move-construct / move-assign /
// destroy thunks that let the rest of the engine operate on untyped byte
// pointers without reflection on the hot path.
//
// Component types must be plain, pointer-free data (no slice, map, string
// or pointer fields): columns live in raw []byte memory blocks that the
// garbage collector never scans for pointers, so a component carrying a
// live Go reference would be silently unsafe.
type componentMeta struct {
	id            ComponentID
	size          uintptr
	align         uintptr
	name          string
	moveConstruct func(dst, src unsafe.Pointer)
	moveAssign    func(dst, src unsafe.Pointer)
	destroy       func(ptr unsafe.Pointer)
}

// Process-wide type registry. There is exactly one binary in a Go build,
// so the cross-translation-unit counter-sharing problem the source worked
// around does not arise: one package-level counter suffices.
var (
	nextComponentID ComponentID
	typeToID        = map[reflect.Type]ComponentID{}
	idToMeta        = map[ComponentID]*componentMeta{}
)

// typeID returns the stable ComponentID for T, registering it on first
// use.
func typeID[T any]() ComponentID {
	var zero T
	t := reflect.TypeOf(zero)
	if id, ok := typeToID[t]; ok {
		return id
	}
	size := unsafe.Sizeof(zero)
	id := nextComponentID
	nextComponentID++
	meta := &componentMeta{
		id:    id,
		size:  size,
		align: unsafe.Alignof(zero),
		name:  t.String(),
		moveConstruct: func(dst, src unsafe.Pointer) {
			memCopy(dst, src, size)
		},
		moveAssign: func(dst, src unsafe.Pointer) {
			memCopy(dst, src, size)
		},
		destroy: func(ptr unsafe.Pointer) {
			memZero(ptr, size)
		},
	}
	typeToID[t] = id
	idToMeta[id] = meta
	return id
}

// tryTypeID returns T's ComponentID without registering it.
func tryTypeID[T any]() (ComponentID, bool) {
	var zero T
	id, ok := typeToID[reflect.TypeOf(zero)]
	return id, ok
}

func metaOf(id ComponentID) *componentMeta {
	return idToMeta[id]
}

func nameOf(id ComponentID) string {
	if m := idToMeta[id]; m != nil {
		return m.name
	}
	return "<unknown component>"
}

// componentMetaSet is the component_meta_set of the data model: a
// component set paired with an insertion-ordered, deduplicated list of the
// metadata records it names. It is the layout input to archetype
// construction.
type componentMetaSet struct {
	set   componentSet
	metas []*componentMeta
}

func newComponentMetaSet() *componentMetaSet {
	return &componentMetaSet{set: newComponentSet()}
}

func (s *componentMetaSet) insert(meta *componentMeta) {
	if s.set.contains(meta.id) {
		return
	}
	s.set.insert(meta.id)
	s.metas = append(s.metas, meta)
}

func (s *componentMetaSet) get(id ComponentID) (*componentMeta, bool) {
	if !s.set.contains(id) {
		return nil, false
	}
	for _, m := range s.metas {
		if m.id == id {
			return m, true
		}
	}
	return nil, false
}

func memCopy(dst, src unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	dstBytes := unsafe.Slice((*byte)(dst), size)
	srcBytes := unsafe.Slice((*byte)(src), size)
	copy(dstBytes, srcBytes)
}

func memZero(ptr unsafe.Pointer, size uintptr) {
	if size == 0 {
		return
	}
	b := unsafe.Slice((*byte)(ptr), size)
	clear(b)
}
