package archecs

// View1 is a lazy selection of every entity whose archetype's component
// set is a superset of {C1}.
type View1[C1 any] struct {
	r    *Registry
	id1  ComponentID
	want componentSet
}

// NewView1 builds a View1 over r.
func NewView1[C1 any](r *Registry) *View1[C1] {
	id1 := typeID[C1]()
	return &View1[C1]{r: r, id1: id1, want: newComponentSet(id1)}
}

// Size returns the number of live entities the view would visit.
func (v *View1[C1]) Size() int {
	total := 0
	v.r.archetypes.each(func(a *archetype) {
		if a.set().supersetOf(v.want) {
			total += a.size()
		}
	})
	return total
}

// Each invokes fn once per matching entity with a pointer to its C1.
func (v *View1[C1]) Each(fn func(Entity, *C1)) {
	v.r.archetypes.each(func(a *archetype) {
		if !a.set().supersetOf(v.want) {
			return
		}
		for bi, b := range a.blocks {
			for i := 0; i < b.size; i++ {
				e := *b.entityPtr(i)
				loc := entityLocation{archetype: a, blockIndex: bi, entryIndex: i}
				fn(e, (*C1)(a.get(v.id1, loc)))
			}
		}
	})
}

// View2 is a lazy selection of every entity whose archetype's component
// set is a superset of {C1, C2}.
type View2[C1, C2 any] struct {
	r        *Registry
	id1, id2 ComponentID
	want     componentSet
}

func NewView2[C1, C2 any](r *Registry) *View2[C1, C2] {
	id1, id2 := typeID[C1](), typeID[C2]()
	return &View2[C1, C2]{r: r, id1: id1, id2: id2, want: newComponentSet(id1, id2)}
}

func (v *View2[C1, C2]) Size() int {
	total := 0
	v.r.archetypes.each(func(a *archetype) {
		if a.set().supersetOf(v.want) {
			total += a.size()
		}
	})
	return total
}

func (v *View2[C1, C2]) Each(fn func(Entity, *C1, *C2)) {
	v.r.archetypes.each(func(a *archetype) {
		if !a.set().supersetOf(v.want) {
			return
		}
		for bi, b := range a.blocks {
			for i := 0; i < b.size; i++ {
				e := *b.entityPtr(i)
				loc := entityLocation{archetype: a, blockIndex: bi, entryIndex: i}
				fn(e, (*C1)(a.get(v.id1, loc)), (*C2)(a.get(v.id2, loc)))
			}
		}
	})
}

// View3 is a lazy selection of every entity whose archetype's component
// set is a superset of {C1, C2, C3}.
type View3[C1, C2, C3 any] struct {
	r             *Registry
	id1, id2, id3 ComponentID
	want          componentSet
}

func NewView3[C1, C2, C3 any](r *Registry) *View3[C1, C2, C3] {
	id1, id2, id3 := typeID[C1](), typeID[C2](), typeID[C3]()
	return &View3[C1, C2, C3]{r: r, id1: id1, id2: id2, id3: id3, want: newComponentSet(id1, id2, id3)}
}

func (v *View3[C1, C2, C3]) Size() int {
	total := 0
	v.r.archetypes.each(func(a *archetype) {
		if a.set().supersetOf(v.want) {
			total += a.size()
		}
	})
	return total
}

func (v *View3[C1, C2, C3]) Each(fn func(Entity, *C1, *C2, *C3)) {
	v.r.archetypes.each(func(a *archetype) {
		if !a.set().supersetOf(v.want) {
			return
		}
		for bi, b := range a.blocks {
			for i := 0; i < b.size; i++ {
				e := *b.entityPtr(i)
				loc := entityLocation{archetype: a, blockIndex: bi, entryIndex: i}
				fn(e, (*C1)(a.get(v.id1, loc)), (*C2)(a.get(v.id2, loc)), (*C3)(a.get(v.id3, loc)))
			}
		}
	})
}

// View4 is a lazy selection of every entity whose archetype's component
// set is a superset of {C1, C2, C3, C4}.
type View4[C1, C2, C3, C4 any] struct {
	r                  *Registry
	id1, id2, id3, id4 ComponentID
	want               componentSet
}

func NewView4[C1, C2, C3, C4 any](r *Registry) *View4[C1, C2, C3, C4] {
	id1, id2, id3, id4 := typeID[C1](), typeID[C2](), typeID[C3](), typeID[C4]()
	return &View4[C1, C2, C3, C4]{r: r, id1: id1, id2: id2, id3: id3, id4: id4, want: newComponentSet(id1, id2, id3, id4)}
}

func (v *View4[C1, C2, C3, C4]) Size() int {
	total := 0
	v.r.archetypes.each(func(a *archetype) {
		if a.set().supersetOf(v.want) {
			total += a.size()
		}
	})
	return total
}

func (v *View4[C1, C2, C3, C4]) Each(fn func(Entity, *C1, *C2, *C3, *C4)) {
	v.r.archetypes.each(func(a *archetype) {
		if !a.set().supersetOf(v.want) {
			return
		}
		for bi, b := range a.blocks {
			for i := 0; i < b.size; i++ {
				e := *b.entityPtr(i)
				loc := entityLocation{archetype: a, blockIndex: bi, entryIndex: i}
				fn(e, (*C1)(a.get(v.id1, loc)), (*C2)(a.get(v.id2, loc)), (*C3)(a.get(v.id3, loc)), (*C4)(a.get(v.id4, loc)))
			}
		}
	})
}
