package archecs

import "testing"

func TestComponentSetSupersetOf(t *testing.T) {
	full := newComponentSet(1, 2, 3)
	sub := newComponentSet(1, 3)
	other := newComponentSet(4)

	if !full.supersetOf(sub) {
		t.Fatalf("{1,2,3} should be a superset of {1,3}")
	}
	if full.supersetOf(other) {
		t.Fatalf("{1,2,3} should not be a superset of {4}")
	}
	if !full.supersetOf(newComponentSet()) {
		t.Fatalf("any set is a superset of the empty set")
	}
}

func TestComponentSetKeyIgnoresInsertionOrder(t *testing.T) {
	a := newComponentSet(1, 2)
	b := newComponentSet(2, 1)
	if a.key() != b.key() {
		t.Fatalf("component sets with the same members in different insertion order must produce the same key")
	}
}

func TestComponentSetKeyDiffersOnMembership(t *testing.T) {
	a := newComponentSet(1, 2)
	b := newComponentSet(1, 2, 3)
	if a.key() == b.key() {
		t.Fatalf("component sets with different members must produce different keys")
	}
}

func TestComponentSetEraseAndContains(t *testing.T) {
	s := newComponentSet(5)
	if !s.contains(5) {
		t.Fatalf("expected 5 to be present")
	}
	s.erase(5)
	if s.contains(5) {
		t.Fatalf("expected 5 to be absent after erase")
	}
}
