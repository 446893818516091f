package archecs

import (
	"fmt"
	"unsafe"
)

// entityLocation names where one entity's columns live: which archetype,
// which of its memory blocks, and which entry within that block. It is
// non-owning — the archetype outlives every location that names it,
// because archetypes are never destroyed once created (see
// archetypeRegistry).
type entityLocation struct {
	archetype  *archetype
	blockIndex int
	entryIndex int
}

// archetype owns every memory block for one distinct component set. All
// but the tail block are always full; the tail is empty only when the
// archetype itself is empty, and the archetype always holds at least one
// block.
type archetype struct {
	metaSet      *componentMetaSet
	maxEntries   int
	entityOffset uintptr
	offsets      map[ComponentID]uintptr
	blocks       []*memoryBlock
}

func newArchetype(metaSet *componentMetaSet) (*archetype, error) {
	overhead, sizeSum := singleEntryFootprint(metaSet.metas)
	maxEntries, err := computeMaxEntries(overhead, sizeSum)
	if err != nil {
		return nil, fmt.Errorf("archecs: %w", err)
	}
	offsets, entityOffset, totalSize := realLayout(metaSet.metas, maxEntries)
	for totalSize > memBlockSize && maxEntries > 1 {
		// The single-entry pass' padding estimate can undershoot the real,
		// max_entries-scaled one by a few bytes per column; back off until
		// the real layout actually fits.
		maxEntries--
		offsets, entityOffset, totalSize = realLayout(metaSet.metas, maxEntries)
	}
	if totalSize > memBlockSize {
		return nil, fmt.Errorf("archecs: %w", errOverflow)
	}
	offsetByID := make(map[ComponentID]uintptr, len(metaSet.metas))
	for i, m := range metaSet.metas {
		offsetByID[m.id] = offsets[i]
	}
	a := &archetype{
		metaSet:      metaSet,
		maxEntries:   maxEntries,
		entityOffset: entityOffset,
		offsets:      offsetByID,
	}
	a.blocks = append(a.blocks, newMemoryBlock(metaSet, entityOffset, offsetByID, maxEntries))
	return a, nil
}

func (a *archetype) set() componentSet { return a.metaSet.set }

// ensureTailBlock returns the current tail block, allocating a fresh one
// first if the existing tail is full.
func (a *archetype) ensureTailBlock() *memoryBlock {
	tail := a.blocks[len(a.blocks)-1]
	if tail.size >= a.maxEntries {
		tail = newMemoryBlock(a.metaSet, a.entityOffset, a.offsets, a.maxEntries)
		a.blocks = append(a.blocks, tail)
		logger.Debug("allocated tail block", "block_count", len(a.blocks))
	}
	return tail
}

func (a *archetype) append(e Entity, values map[ComponentID]unsafe.Pointer) entityLocation {
	b := a.ensureTailBlock()
	idx := b.append(e, values)
	return entityLocation{archetype: a, blockIndex: len(a.blocks) - 1, entryIndex: idx}
}

// eraseAndFill delegates to the named block's swap-with-last, pulling the
// replacement entry from the archetype's tail block, then drops the tail
// if it emptied out and more than one block remains.
func (a *archetype) eraseAndFill(loc entityLocation) (Entity, bool) {
	b := a.blocks[loc.blockIndex]
	tailIdx := len(a.blocks) - 1
	tail := a.blocks[tailIdx]
	moved, ok := b.eraseAndFill(loc.entryIndex, tail)
	if tail.size == 0 && len(a.blocks) > 1 {
		tail.destroyAll()
		a.blocks = a.blocks[:tailIdx]
		logger.Debug("released tail block", "block_count", len(a.blocks))
	}
	return moved, ok
}

func (a *archetype) get(id ComponentID, loc entityLocation) unsafe.Pointer {
	return a.blocks[loc.blockIndex].typedPtr(id, loc.entryIndex)
}

func (a *archetype) contains(id ComponentID) bool {
	return a.metaSet.set.contains(id)
}

func (a *archetype) size() int {
	total := 0
	for _, b := range a.blocks {
		total += b.size
	}
	return total
}
