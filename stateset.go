package glud

import (
	"github.com/bits-and-blooms/bitset"
)

// stateSet is a working set of NFA state indices used by closure and move. It is
// bound to the NFA whose indices it holds.
type stateSet struct {
	nfa  *NFA
	bits *bitset.BitSet
}

func (n *NFA) newStateSet() *stateSet {
	return &stateSet{nfa: n, bits: bitset.New(uint(len(n.names)))}
}

func (s *stateSet) add(state int) bool {
	if s.bits.Test(uint(state)) {
		return false
	}
	s.bits.Set(uint(state))
	return true
}

func (s *stateSet) union(other *bitset.BitSet) {
	s.bits.InPlaceUnion(other)
}

func (s *stateSet) isEmpty() bool {
	return s.bits.None()
}

func (s *stateSet) intersects(other *bitset.BitSet) bool {
	return s.bits.IntersectionCardinality(other) > 0
}

// indices Returns the member indices in ascending order.
func (s *stateSet) indices() []int {
	out := make([]int, 0, s.bits.Count())
	for i, ok := s.bits.NextSet(0); ok; i, ok = s.bits.NextSet(i + 1) {
		out = append(out, int(i))
	}
	return out
}

// freeze Converts the set into a composite state of member names.
func (s *stateSet) freeze() CompositeState {
	idx := s.indices()
	names := make([]string, len(idx))
	// NFA names are sorted, so ascending indices give sorted names.
	for i, v := range idx {
		names[i] = s.nfa.names[v]
	}
	return newFrozen(names)
}
