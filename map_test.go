package glud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type testKey struct {
	part1 int
	part2 string
}

func (k testKey) Hash() uint64 {
	return uint64(k.part1 + len(k.part2))
}

func (k testKey) Equals(other Hashable) bool {
	o, ok := other.(testKey)
	return ok && k.part1 == o.part1 && k.part2 == o.part2
}

// anotherKey shares hashes with testKey but is never equal to it.
type anotherKey int

func (k anotherKey) Hash() uint64 {
	return uint64(k)
}

func (k anotherKey) Equals(other Hashable) bool {
	o, ok := other.(anotherKey)
	return ok && k == o
}

func TestHashMapBasic(t *testing.T) {
	t.Run("InsertAndGet", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := testKey{1, "a"}
		hm.Set(key, "value1")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value1", val)

		_, exists = hm.Get(testKey{2, "b"})
		assert.False(t, exists)
	})

	t.Run("UpdateValue", func(t *testing.T) {
		hm := NewHashMap[string](WithCapacity(8))
		key := testKey{1, "a"}
		hm.Set(key, "value1")
		hm.Set(key, "value2")

		val, exists := hm.Get(key)
		assert.True(t, exists)
		assert.Equal(t, "value2", val)
		assert.Equal(t, 1, hm.Size())
	})

	t.Run("KeyTypes", func(t *testing.T) {
		hm := NewHashMap[string]()
		hm.Set(testKey{2, ""}, "struct")
		hm.Set(anotherKey(2), "int")

		assert.Equal(t, 2, hm.Size())
		val, _ := hm.Get(anotherKey(2))
		assert.Equal(t, "int", val)
	})
}

func TestHashCollision(t *testing.T) {
	hm := NewHashMap[string](WithCapacity(16))

	key1 := testKey{1, "a"}  // Hash: 1+1=2
	key2 := testKey{0, "bb"} // Hash: 0+2=2
	key3 := testKey{2, "a"}  // Hash: 2+1=3

	hm.Set(key1, "value1")
	hm.Set(key2, "value2")
	hm.Set(key3, "value3")

	assert.Equal(t, 3, hm.Size())

	val, exists := hm.Get(key1)
	assert.True(t, exists)
	assert.Equal(t, "value1", val)

	val, exists = hm.Get(key2)
	assert.True(t, exists)
	assert.Equal(t, "value2", val)
}

func TestAutoResize(t *testing.T) {
	initialCap := 16
	hm := NewHashMap[int](WithCapacity(initialCap))

	// 16 * 0.75 = 12
	for i := 0; i < 13; i++ {
		hm.Set(testKey{i, ""}, i)
	}

	assert.Greater(t, len(hm.buckets), initialCap)
	for i := 0; i < 13; i++ {
		val, exists := hm.Get(testKey{i, ""})
		assert.True(t, exists)
		assert.Equal(t, i, val)
	}
}

func TestCapacityRoundsUp(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(10))
	assert.Len(t, hm.buckets, 16)
	assert.Equal(t, uint64(15), hm.mask)
}

func TestHashMapInternsCompositeStates(t *testing.T) {
	hm := NewHashMap[StateID]()
	hm.Set(NewCompositeState("A", "qf"), 1)
	hm.Set(NewCompositeState("S"), 0)
	hm.Set(NewCompositeState(), 2)

	id, ok := hm.Get(NewCompositeState("qf", "A", "qf"))
	assert.True(t, ok)
	assert.Equal(t, StateID(1), id)

	id, ok = hm.Get(CompositeState{})
	assert.True(t, ok)
	assert.Equal(t, StateID(2), id)

	_, ok = hm.Get(NewCompositeState("A"))
	assert.False(t, ok)
}

func TestIterator(t *testing.T) {
	hm := NewHashMap[int](WithCapacity(2))
	for i := 0; i < 20; i++ {
		hm.Set(testKey{i, "k"}, i)
	}

	seen := make(map[int]bool)
	for k, v := range hm.Iterator() {
		assert.Equal(t, k.(testKey).part1, v)
		seen[v] = true
	}
	assert.Len(t, seen, 20)

	count := 0
	for range hm.Iterator() {
		count++
		if count == 3 {
			break
		}
	}
	assert.Equal(t, 3, count)
}
