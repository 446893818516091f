package archecs

import (
	"errors"
	"testing"
	"unsafe"
)

type layoutI32 struct{ V int32 }
type layoutI64 struct{ V int64 }

func TestComputeMaxEntriesAtLeastOne(t *testing.T) {
	meta := metaOf(typeID[layoutI32]())
	overhead, sizeSum := singleEntryFootprint([]*componentMeta{meta})
	n, err := computeMaxEntries(overhead, sizeSum)
	if err != nil {
		t.Fatalf("unexpected overflow: %v", err)
	}
	if n < 1 {
		t.Fatalf("max_entries must be >= 1, got %d", n)
	}
}

func TestRealLayoutFitsInBlock(t *testing.T) {
	metas := []*componentMeta{metaOf(typeID[layoutI32]()), metaOf(typeID[layoutI64]())}
	overhead, sizeSum := singleEntryFootprint(metas)
	n, err := computeMaxEntries(overhead, sizeSum)
	if err != nil {
		t.Fatalf("unexpected overflow: %v", err)
	}
	_, _, total := realLayout(metas, n)
	if total > memBlockSize {
		t.Fatalf("real layout of %d entries occupies %d bytes, exceeds the %d byte block", n, total, memBlockSize)
	}
}

func TestArchetypeOverflowOnOversizedComponent(t *testing.T) {
	type huge struct {
		Bytes [memBlockSize + 1]byte
	}
	id := typeID[huge]()
	ms := newComponentMetaSet()
	ms.insert(metaOf(id))
	if _, err := newArchetype(ms); !errors.Is(err, errOverflow) {
		t.Fatalf("expected an error wrapping errOverflow for an oversized component, got %v", err)
	}
}

func TestMemoryBlockAppendAndTypedPtr(t *testing.T) {
	id := typeID[layoutI32]()
	ms := newComponentMetaSet()
	ms.insert(metaOf(id))
	a, err := newArchetype(ms)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	v := layoutI32{V: 42}
	e := Entity{id: 0, generation: 0}
	loc := a.append(e, map[ComponentID]unsafe.Pointer{id: unsafe.Pointer(&v)})
	got := (*layoutI32)(a.get(id, loc))
	if got.V != 42 {
		t.Fatalf("expected 42, got %d", got.V)
	}
}
