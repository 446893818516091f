package archecs

import "testing"

func TestEntityPoolCreateIsDense(t *testing.T) {
	p := newEntityPool()
	a := p.create()
	b := p.create()
	c := p.create()
	if a.id != 0 || b.id != 1 || c.id != 2 {
		t.Fatalf("expected dense ids 0,1,2; got %d,%d,%d", a.id, b.id, c.id)
	}
	if a.generation != 0 || b.generation != 0 || c.generation != 0 {
		t.Fatalf("expected generation 0 for freshly created ids")
	}
}

func TestEntityPoolAliveness(t *testing.T) {
	p := newEntityPool()
	a := p.create()
	if !p.alive(a) {
		t.Fatalf("freshly created entity should be alive")
	}
	if p.alive(InvalidEntity) {
		t.Fatalf("invalid entity must never be alive")
	}
}

func TestEntityPoolRecycleBumpsGeneration(t *testing.T) {
	p := newEntityPool()
	a := p.create()
	p.recycle(a)
	if p.alive(a) {
		t.Fatalf("recycled entity should no longer be alive")
	}
	d := p.create()
	if d.id != a.id {
		t.Fatalf("expected recycled id to be reused, got %d want %d", d.id, a.id)
	}
	if d.generation != a.generation+1 {
		t.Fatalf("expected generation to bump by one, got %d want %d", d.generation, a.generation+1)
	}
	if p.alive(a) {
		t.Fatalf("stale handle must not be alive after recycle")
	}
	if !p.alive(d) {
		t.Fatalf("freshly recycled handle must be alive")
	}
}

func TestEntityPoolRecycleNonAliveIsNoOp(t *testing.T) {
	p := newEntityPool()
	a := p.create()
	p.recycle(a)
	before := len(p.freeIDs)
	p.recycle(a) // already recycled, not alive: must not push the id twice
	if len(p.freeIDs) != before {
		t.Fatalf("recycling a non-alive entity must be a no-op")
	}
}

func TestEntityPoolLIFOReuse(t *testing.T) {
	p := newEntityPool()
	a := p.create()
	b := p.create()
	p.recycle(a)
	p.recycle(b)
	first := p.create()
	if first.id != b.id {
		t.Fatalf("expected LIFO reuse order: want id %d, got %d", b.id, first.id)
	}
}
