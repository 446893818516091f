package archecs

import (
	"encoding/binary"

	"github.com/bits-and-blooms/bitset"
)

// componentSet is a growable set of component ids, backed by bits-and-blooms/bitset
// the same way EntityBitset in the retrieval corpus backs an entity
// membership set with a *bitset.BitSet.
type componentSet struct {
	bits *bitset.BitSet
}

func newComponentSet(ids ...ComponentID) componentSet {
	cs := componentSet{bits: bitset.New(64)}
	for _, id := range ids {
		cs.insert(id)
	}
	return cs
}

func (s componentSet) insert(id ComponentID) {
	s.bits.Set(uint(id))
}

func (s componentSet) erase(id ComponentID) {
	s.bits.Clear(uint(id))
}

func (s componentSet) contains(id ComponentID) bool {
	return s.bits.Test(uint(id))
}

func (s componentSet) equal(o componentSet) bool {
	return s.bits.Equal(o.bits)
}

// supersetOf reports whether every bit set in o is also set in s.
func (s componentSet) supersetOf(o componentSet) bool {
	for i, ok := o.bits.NextSet(0); ok; i, ok = o.bits.NextSet(i + 1) {
		if !s.bits.Test(i) {
			return false
		}
	}
	return true
}

// key returns a canonical byte string for s suitable as a map key: trailing
// all-zero words are trimmed first, so two sets with the same members but
// different backing-slice growth history still produce the same key. This
// is the "structural equality and stable hash over the bit blocks" of the
// dynamic bit-set contract, realized as a comparable Go string.
func (s componentSet) key() string {
	words := s.bits.Bytes()
	n := len(words)
	for n > 0 && words[n-1] == 0 {
		n--
	}
	buf := make([]byte, n*8)
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint64(buf[i*8:], words[i])
	}
	return string(buf)
}
