package index

import (
	"iter"

	"github.com/cespare/xxhash"

	"github.com/outofforest/photon"
)

const (
	bitsPerHop = 4
	arraySize  = 1 << bitsPerHop
	mask       = arraySize - 1

	testHashMask = 0xffff
)

var isTesting bool

// New creates new index.
func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		nodes: make([]node, 1),
	}
}

// Map is the hash trie mapping fixed-size keys to values.
// Keys are hashed using their in-memory representation, so K must not contain pointers or padding.
//
// Nodes and entries are kept in two arenas. Node slot is 0 if free, positive index of the child node,
// or negative reference to the first entry of the chain of entries sharing the same hash.
// Node 0 is the root.
type Map[K comparable, V any] struct {
	nodes   []node
	entries []entry[K, V]
}

type node [arraySize]int32

type entry[K comparable, V any] struct {
	hash  uint64
	key   K
	value V

	// next is the reference of the next entry having the same hash, 0 ends the chain.
	next int32
}

// Len returns the number of keys stored in the index.
func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Get gets the value of the key.
func (m *Map[K, V]) Get(key K) (value V, exists bool) {
	h := hashKey(key)
	n := int32(0)
	for shift := 0; ; shift += bitsPerHop {
		slot := m.nodes[n][(h>>shift)&mask]
		switch {
		case slot == 0:
			return value, false
		case slot > 0:
			n = slot
			continue
		}

		for ref := -slot; ref != 0; {
			e := &m.entries[ref-1]
			if e.hash != h {
				return value, false
			}
			if e.key == key {
				return e.value, true
			}
			ref = e.next
		}
		return value, false
	}
}

// Set sets the value for the key.
func (m *Map[K, V]) Set(key K, value V) {
	h := hashKey(key)
	n := int32(0)
	for shift := 0; ; shift += bitsPerHop {
		index := (h >> shift) & mask
		slot := m.nodes[n][index]
		switch {
		case slot == 0:
			m.nodes[n][index] = -m.add(h, key, value, 0)
			return
		case slot > 0:
			n = slot
			continue
		}

		first := &m.entries[-slot-1]
		if first.hash == h {
			for ref := -slot; ref != 0; ref = m.entries[ref-1].next {
				if e := &m.entries[ref-1]; e.key == key {
					e.value = value
					return
				}
			}
			m.nodes[n][index] = -m.add(h, key, value, -slot)
			return
		}

		// Hashes differ, so the chain is moved one level down and the search continues there.
		child := int32(len(m.nodes))
		m.nodes = append(m.nodes, node{})
		m.nodes[child][(first.hash>>(shift+bitsPerHop))&mask] = slot
		m.nodes[n][index] = child
		n = child
	}
}

// Iterator iterates over all the key-value pairs in insertion order.
func (m *Map[K, V]) Iterator() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for i := range m.entries {
			if !yield(m.entries[i].key, m.entries[i].value) {
				return
			}
		}
	}
}

func (m *Map[K, V]) add(h uint64, key K, value V, next int32) int32 {
	m.entries = append(m.entries, entry[K, V]{
		hash:  h,
		key:   key,
		value: value,
		next:  next,
	})
	return int32(len(m.entries))
}

func hashKey[K comparable](key K) uint64 {
	hash := xxhash.Sum64(photon.NewFromValue(&key).B)
	if isTesting {
		hash &= testHashMask
	}
	return hash
}
