package probemap

import (
	"fmt"
	"strings"
)

// ProbeMap is an associative container using open addressing with linear
// probing for collision resolution. Deleting a key eagerly rehashes the
// remainder of its primary cluster instead of leaving tombstones, so
// lookups never scan past stale markers. Capacity grows through a fixed
// schedule of primes and never shrinks.
// Keys are strings; the value type is fixed per instance.
// ProbeMap is not safe for concurrent use without external locking.
type ProbeMap[V any] struct {
	table[V]
}

// Returns a new instance of the probe map. The effective capacity is at
// least MinCapacity.
func New[V any](capacity int, opts ...Option[V]) *ProbeMap[V] {
	var pm ProbeMap[V]
	pm.init(capacity, opts...)

	return &pm
}

// Len returns the number of live entries.
func (pm *ProbeMap[V]) Len() int {
	return pm.count
}

// Get returns the value stored under key.
// Fails with ErrKeyNotFound when the key is absent.
func (pm *ProbeMap[V]) Get(key string) (V, error) {
	return pm.get(key)
}

// Set stores value under key, overwriting any previous value. The table
// grows as needed; the only observable failure is ErrCapacityExhausted.
func (pm *ProbeMap[V]) Set(key string, value V) error {
	return pm.set(key, value)
}

// Delete removes the entry stored under key and repairs its cluster.
// Fails with ErrKeyNotFound when the key is absent.
func (pm *ProbeMap[V]) Delete(key string) error {
	return pm.delete(key)
}

// IsEmpty reports whether the table holds no entries.
func (pm *ProbeMap[V]) IsEmpty() bool {
	return pm.count == 0
}

// IsFull reports whether every slot is occupied.
func (pm *ProbeMap[V]) IsFull() bool {
	return pm.count == len(pm.slots)
}

// String lists all (key,value) pairs, one per line, in no particular
// order. Diagnostic only.
func (pm *ProbeMap[V]) String() string {
	var sb strings.Builder

	for _, e := range pm.slots {
		if e != nil {
			fmt.Fprintf(&sb, "(%s,%v)\n", e.key, e.value)
		}
	}

	return sb.String()
}
