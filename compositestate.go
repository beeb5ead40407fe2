package glud

import (
	"slices"
	"strings"
)

var _ Hashable = CompositeState{}

// CompositeState A frozen, unordered set of NFA state names identifying one DFA state. Equality and
// hashing only look at the members, never at the order they were added in. The empty composite
// state is the sink.
type CompositeState struct {
	members  []string
	hashCode uint64
}

// NewCompositeState Freezes members into a composite state. Duplicates are dropped.
func NewCompositeState(members ...string) CompositeState {
	values := slices.Clone(members)
	slices.Sort(values)
	values = slices.Compact(values)
	return newFrozen(values)
}

// values must already be sorted and unique; they are not copied.
func newFrozen(values []string) CompositeState {
	hashCode := uint64(len(values))
	for _, v := range values {
		hashCode += uint64(mixName(v))
	}
	return CompositeState{members: values, hashCode: hashCode}
}

func (c CompositeState) Hash() uint64 {
	return c.hashCode
}

func (c CompositeState) Equals(other Hashable) bool {
	o, ok := other.(CompositeState)
	if !ok {
		return false
	}
	return c.hashCode == o.hashCode && slices.Equal(c.members, o.members)
}

// Members Returns the sorted member names.
func (c CompositeState) Members() []string {
	return slices.Clone(c.members)
}

func (c CompositeState) Size() int {
	return len(c.members)
}

// IsEmpty Returns true for the sink composite state.
func (c CompositeState) IsEmpty() bool {
	return len(c.members) == 0
}

// Contains Returns true if name is a member.
func (c CompositeState) Contains(name string) bool {
	_, ok := slices.BinarySearch(c.members, name)
	return ok
}

// Key is the comma joined member list used to order composite states for display and naming.
func (c CompositeState) Key() string {
	return strings.Join(c.members, ",")
}

func (c CompositeState) String() string {
	return "{" + c.Key() + "}"
}
