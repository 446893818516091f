package archecs

import "testing"

type viewPos struct{ X, Y float32 }
type viewVel struct{ DX, DY float32 }
type viewTag struct{ Team int32 }

func TestView1SizeAndEach(t *testing.T) {
	r := NewRegistry(0)
	Create1(r, viewPos{X: 1})
	Create1(r, viewPos{X: 2})
	Create2(r, viewPos{X: 3}, viewVel{DX: 1})

	v := NewView1[viewPos](r)
	if got := v.Size(); got != 3 {
		t.Fatalf("expected 3 entities carrying viewPos, got %d", got)
	}
	sum := float32(0)
	count := 0
	v.Each(func(e Entity, p *viewPos) {
		sum += p.X
		count++
	})
	if count != 3 || sum != 6 {
		t.Fatalf("expected count=3 sum=6, got count=%d sum=%v", count, sum)
	}
}

func TestView2ExcludesNonMatchingArchetypes(t *testing.T) {
	r := NewRegistry(0)
	a := Create2(r, viewPos{X: 1}, viewVel{DX: 1})
	Create1(r, viewPos{X: 2}) // no viewVel: must not appear in the join
	Create3(r, viewPos{X: 3}, viewVel{DX: 3}, viewTag{Team: 1})

	v := NewView2[viewPos, viewVel](r)
	if got := v.Size(); got != 2 {
		t.Fatalf("expected 2 entities carrying {viewPos,viewVel}, got %d", got)
	}
	seen := map[uint32]bool{}
	v.Each(func(e Entity, p *viewPos, vel *viewVel) {
		seen[e.ID()] = true
	})
	if !seen[a.ID()] {
		t.Fatalf("expected a to be visited")
	}
}

func TestViewMutationThroughPointerIsVisible(t *testing.T) {
	r := NewRegistry(0)
	e := Create1(r, viewPos{X: 1, Y: 1})

	NewView1[viewPos](r).Each(func(_ Entity, p *viewPos) {
		p.X = 100
	})
	if got := Get[viewPos](r, e).X; got != 100 {
		t.Fatalf("expected mutation through the view's pointer to persist, got %v", got)
	}
}

func TestViewSizeZeroWhenNoArchetypeMatches(t *testing.T) {
	r := NewRegistry(0)
	Create1(r, viewTag{Team: 1})

	v := NewView1[viewPos](r)
	if got := v.Size(); got != 0 {
		t.Fatalf("expected 0 entities carrying viewPos, got %d", got)
	}
	v.Each(func(Entity, *viewPos) {
		t.Fatalf("Each must not invoke fn when no archetype matches")
	})
}
