package archecs

import "unsafe"

// Registry is the top-level facade: it maps entity id to entity location
// and drives create/destroy/get/has. There is no variadic generics in Go,
// so the single templated create<Cs...>/get<Refs...> API of the source
// becomes a family of free functions fixed at arity 1 through 4 below.
type Registry struct {
	pool       *entityPool
	archetypes *archetypeRegistry
	locations  sparseMap[entityLocation]
}

// NewRegistry creates an empty registry. initialCapacity is a pre-sizing
// hint for the entity location map, mirroring the teacher's own
// NewWorld(initialCapacity) idiom; it bounds nothing and is never
// exceeded-and-rejected.
func NewRegistry(initialCapacity int) *Registry {
	return &Registry{
		pool:       newEntityPool(),
		archetypes: newArchetypeRegistry(),
		locations:  newSparseMap[entityLocation](initialCapacity),
	}
}

// Alive reports whether e refers to a currently live entity.
func (r *Registry) Alive(e Entity) bool {
	return r.pool.alive(e)
}

// Destroy removes e, swap-filling the freed slot from the archetype's
// tail entity and recycling e's id. Panics if e is not alive.
//
// The moved entity's identity is read only inside the branch that
// confirmed a move happened — erase_and_fill's "optional" return is the
// idiomatic Go (Entity, bool) pair, and there is no code path here that
// can dereference a not-moved result the way the source's unconditional
// post-branch access did.
func (r *Registry) Destroy(e Entity) {
	if !r.pool.alive(e) {
		panicDeadEntity("Destroy", e)
	}
	loc, _ := r.locations.get(e.id)
	moved, ok := loc.archetype.eraseAndFill(loc)
	r.locations.del(e.id)
	if ok {
		r.locations.put(moved.ID(), entityLocation{
			archetype:  loc.archetype,
			blockIndex: loc.blockIndex,
			entryIndex: loc.entryIndex,
		})
	}
	r.pool.recycle(e)
}

// Has reports whether e's archetype carries component type C. Panics if e
// is not alive.
func Has[C any](r *Registry, e Entity) bool {
	if !r.pool.alive(e) {
		panicDeadEntity("Has", e)
	}
	loc, _ := r.locations.get(e.id)
	id, ok := tryTypeID[C]()
	if !ok {
		return false
	}
	return loc.archetype.contains(id)
}

// Get returns a pointer to e's component of type C. Panics if e is not
// alive or the archetype does not carry C.
func Get[C any](r *Registry, e Entity) *C {
	if !r.pool.alive(e) {
		panicDeadEntity("Get", e)
	}
	loc, _ := r.locations.get(e.id)
	id := typeID[C]()
	if !loc.archetype.contains(id) {
		panicMissingComponent(e, id)
	}
	return (*C)(loc.archetype.get(id, loc))
}

// Get2 returns pointers to e's C1 and C2 components.
func Get2[C1, C2 any](r *Registry, e Entity) (*C1, *C2) {
	return Get[C1](r, e), Get[C2](r, e)
}

// Get3 returns pointers to e's C1, C2 and C3 components.
func Get3[C1, C2, C3 any](r *Registry, e Entity) (*C1, *C2, *C3) {
	return Get[C1](r, e), Get[C2](r, e), Get[C3](r, e)
}

// Get4 returns pointers to e's C1, C2, C3 and C4 components.
func Get4[C1, C2, C3, C4 any](r *Registry, e Entity) (*C1, *C2, *C3, *C4) {
	return Get[C1](r, e), Get[C2](r, e), Get[C3](r, e), Get[C4](r, e)
}

// Create1 creates an entity carrying one component.
func Create1[C1 any](r *Registry, v1 C1) Entity {
	id1 := typeID[C1]()
	ms := newComponentMetaSet()
	ms.insert(metaOf(id1))
	arch := r.archetypes.ensure(ms)
	e := r.pool.create()
	loc := arch.append(e, map[ComponentID]unsafe.Pointer{id1: unsafe.Pointer(&v1)})
	r.locations.put(e.id, loc)
	return e
}

// Create2 creates an entity carrying two components. C1 and C2 must be
// distinct types.
func Create2[C1, C2 any](r *Registry, v1 C1, v2 C2) Entity {
	id1, id2 := typeID[C1](), typeID[C2]()
	if id1 == id2 {
		panicDuplicateType("Create2", nameOf(id1))
	}
	ms := newComponentMetaSet()
	ms.insert(metaOf(id1))
	ms.insert(metaOf(id2))
	arch := r.archetypes.ensure(ms)
	e := r.pool.create()
	loc := arch.append(e, map[ComponentID]unsafe.Pointer{
		id1: unsafe.Pointer(&v1),
		id2: unsafe.Pointer(&v2),
	})
	r.locations.put(e.id, loc)
	return e
}

// Create3 creates an entity carrying three components. C1, C2 and C3 must
// be pairwise distinct types.
func Create3[C1, C2, C3 any](r *Registry, v1 C1, v2 C2, v3 C3) Entity {
	id1, id2, id3 := typeID[C1](), typeID[C2](), typeID[C3]()
	checkPairwiseDistinct("Create3", []ComponentID{id1, id2, id3})
	ms := newComponentMetaSet()
	ms.insert(metaOf(id1))
	ms.insert(metaOf(id2))
	ms.insert(metaOf(id3))
	arch := r.archetypes.ensure(ms)
	e := r.pool.create()
	loc := arch.append(e, map[ComponentID]unsafe.Pointer{
		id1: unsafe.Pointer(&v1),
		id2: unsafe.Pointer(&v2),
		id3: unsafe.Pointer(&v3),
	})
	r.locations.put(e.id, loc)
	return e
}

// Create4 creates an entity carrying four components. C1..C4 must be
// pairwise distinct types.
func Create4[C1, C2, C3, C4 any](r *Registry, v1 C1, v2 C2, v3 C3, v4 C4) Entity {
	id1, id2, id3, id4 := typeID[C1](), typeID[C2](), typeID[C3](), typeID[C4]()
	checkPairwiseDistinct("Create4", []ComponentID{id1, id2, id3, id4})
	ms := newComponentMetaSet()
	ms.insert(metaOf(id1))
	ms.insert(metaOf(id2))
	ms.insert(metaOf(id3))
	ms.insert(metaOf(id4))
	arch := r.archetypes.ensure(ms)
	e := r.pool.create()
	loc := arch.append(e, map[ComponentID]unsafe.Pointer{
		id1: unsafe.Pointer(&v1),
		id2: unsafe.Pointer(&v2),
		id3: unsafe.Pointer(&v3),
		id4: unsafe.Pointer(&v4),
	})
	r.locations.put(e.id, loc)
	return e
}

func checkPairwiseDistinct(op string, ids []ComponentID) {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if ids[i] == ids[j] {
				panicDuplicateType(op, nameOf(ids[i]))
			}
		}
	}
}
