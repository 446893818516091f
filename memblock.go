package archecs

import "unsafe"

// memBlockSize is the hard cap on a memory block's backing buffer.
const memBlockSize = 16 * 1024

var entityMeta = &componentMeta{
	id:    invalidComponentID,
	size:  unsafe.Sizeof(Entity{}),
	align: unsafe.Alignof(Entity{}),
	name:  "archecs.Entity",
}

func alignUp(v, align uintptr) uintptr {
	if align == 0 {
		return v
	}
	return (v + align - 1) &^ (align - 1)
}

// singleEntryFootprint walks the entity column followed by comps in
// order, as if laying out one hypothetical entry, and returns the total
// alignment overhead charged against that one entry plus the sum of
// column sizes (entity included). This is purely an input to
// computeMaxEntries — it is not the real, max_entries-scaled column
// layout (see realLayout).
func singleEntryFootprint(comps []*componentMeta) (overhead, sizeSum uintptr) {
	var cursor uintptr
	step := func(size, align uintptr) {
		aligned := alignUp(cursor, align)
		overhead += aligned - cursor
		cursor = aligned + size
		sizeSum += size
	}
	step(entityMeta.size, entityMeta.align)
	for _, m := range comps {
		step(m.size, m.align)
	}
	return overhead, sizeSum
}

// computeMaxEntries applies the formula of the data model: the aligned
// footprint of one hypothetical entry is subtracted from 16 KiB, the
// remainder is divided by the per-entry size sum, and the one entry
// already accounted for in the footprint is added back. Returns
// errOverflow if that one entry's own aligned footprint already exceeds
// the block.
func computeMaxEntries(overhead, sizeSum uintptr) (int, error) {
	footprint := overhead + sizeSum
	if footprint > memBlockSize {
		return 0, errOverflow
	}
	remaining := uintptr(memBlockSize) - footprint
	return int(remaining/sizeSum) + 1, nil
}

// realLayout computes the actual column offsets for a block sized to hold
// maxEntries entries: the entity column first, then comps in order, each
// column occupying maxEntries*size bytes starting at the next
// alignment-satisfying offset. Unlike singleEntryFootprint this operates
// on the real, scaled column extents, so its padding decisions are
// independent of (and generally differ slightly from) the single-entry
// pass used only to size maxEntries.
func realLayout(comps []*componentMeta, maxEntries int) (offsets []uintptr, entityOffset uintptr, totalSize uintptr) {
	n := uintptr(maxEntries)
	var cursor uintptr
	aligned := alignUp(cursor, entityMeta.align)
	entityOffset = aligned
	cursor = aligned + n*entityMeta.size
	offsets = make([]uintptr, len(comps))
	for i, m := range comps {
		aligned = alignUp(cursor, m.align)
		offsets[i] = aligned
		cursor = aligned + n*m.size
	}
	return offsets, entityOffset, cursor
}

// memoryBlock is a fixed-capacity 16 KiB Struct-of-Arrays buffer: one
// column for the entity, one column per component in the owning
// archetype's meta set, each starting at an alignment-correct offset and
// sized for maxEntries entries.
type memoryBlock struct {
	buf          []byte
	size         int
	maxEntries   int
	entityOffset uintptr
	offsets      map[ComponentID]uintptr
	metaSet      *componentMetaSet
}

func newMemoryBlock(metaSet *componentMetaSet, entityOffset uintptr, offsets map[ComponentID]uintptr, maxEntries int) *memoryBlock {
	return &memoryBlock{
		buf:          make([]byte, memBlockSize),
		maxEntries:   maxEntries,
		entityOffset: entityOffset,
		offsets:      offsets,
		metaSet:      metaSet,
	}
}

func (b *memoryBlock) entityPtr(index int) *Entity {
	return (*Entity)(unsafe.Pointer(&b.buf[b.entityOffset+uintptr(index)*entityMeta.size]))
}

// typedPtr returns a pointer to the component column id at index, or nil
// if id is not a column of this block.
func (b *memoryBlock) typedPtr(id ComponentID, index int) unsafe.Pointer {
	off, ok := b.offsets[id]
	if !ok {
		return nil
	}
	m, ok := b.metaSet.get(id)
	if !ok {
		return nil
	}
	return unsafe.Pointer(&b.buf[off+uintptr(index)*m.size])
}

// append placement-constructs entity and move-constructs the given
// component values into the tail slot. The caller must have already
// checked size < maxEntries.
func (b *memoryBlock) append(e Entity, values map[ComponentID]unsafe.Pointer) int {
	idx := b.size
	*b.entityPtr(idx) = e
	for _, m := range b.metaSet.metas {
		if src, ok := values[m.id]; ok {
			m.moveConstruct(b.typedPtr(m.id, idx), src)
		}
	}
	b.size++
	return idx
}

func (b *memoryBlock) destroySlot(index int) {
	for _, m := range b.metaSet.metas {
		m.destroy(b.typedPtr(m.id, index))
	}
}

// destroyAll runs every live entry's column destructors, then marks the
// block empty. Called when an archetype drops an emptied tail block, so
// the "destructor actually runs" design requirement holds even though the
// Go GC would reclaim the buffer regardless.
func (b *memoryBlock) destroyAll() {
	for i := 0; i < b.size; i++ {
		b.destroySlot(i)
	}
	b.size = 0
}

// eraseAndFill implements the swap-with-last erase protocol for one
// block, pulling the replacement entry from tail (which may be b itself).
// It reports the entity that was moved into the freed slot, or
// (Entity{}, false) if the erased entry was itself the tail and nothing
// moved.
func (b *memoryBlock) eraseAndFill(index int, tail *memoryBlock) (Entity, bool) {
	if tail == b && index == b.size-1 {
		last := b.size - 1
		b.destroySlot(last)
		b.size--
		return Entity{}, false
	}
	tailIdx := tail.size - 1
	moved := *tail.entityPtr(tailIdx)
	for _, m := range b.metaSet.metas {
		m.moveAssign(b.typedPtr(m.id, index), tail.typedPtr(m.id, tailIdx))
	}
	*b.entityPtr(index) = moved
	tail.destroySlot(tailIdx)
	tail.size--
	return moved, true
}
