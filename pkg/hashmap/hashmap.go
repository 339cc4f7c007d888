// Copyright (c) 2026 The CrackVault Authors
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in
// all copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
// THE SOFTWARE.
package hashmap

const (
	// minBuckets is the smallest bucket array a map will allocate.
	minBuckets = 16

	// maxLoadFactor is the entries/buckets ratio above which the bucket
	// array doubles. Growth happens as part of Put, so the ratio never
	// exceeds this value once Put returns.
	maxLoadFactor = 0.75
)

type entry[K ~string, V any] struct {
	key  K
	val  V
	next *entry[K, V]
}

// Map is a hash map with string-like keys and separate chaining for
// collisions. Bucket indices come from the DJB2 hash of the key bytes,
// reduced modulo the bucket count. New entries are prepended to their
// bucket's chain, and the bucket array doubles whenever the load factor
// crosses maxLoadFactor, keeping Put, Get and Delete amortized O(1).
//
// A missing key is a normal negative result, reported through the boolean
// second return value, never an error.
type Map[K ~string, V any] struct {
	buckets []*entry[K, V]
	size    int
}

// New returns an empty map with the minimum bucket count.
func New[K ~string, V any]() *Map[K, V] {
	return NewWithCapacity[K, V](minBuckets)
}

// NewWithCapacity returns an empty map pre-sized to at least the given
// number of buckets. Capacities below the minimum are rounded up.
func NewWithCapacity[K ~string, V any](capacity int) *Map[K, V] {
	if capacity < minBuckets {
		capacity = minBuckets
	}
	return &Map[K, V]{
		buckets: make([]*entry[K, V], capacity),
	}
}

// djb2 hashes the key bytes with the classic seed-5381, multiplier-33 scheme.
func djb2[K ~string](key K) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(key); i++ {
		h = h*33 ^ uint32(key[i])
	}
	return h
}

func (m *Map[K, V]) bucketOf(key K) int {
	return int(djb2(key) % uint32(len(m.buckets)))
}

// Put stores val under key, overwriting any previous value.
// It reports whether the key was new.
func (m *Map[K, V]) Put(key K, val V) bool {
	idx := m.bucketOf(key)
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			e.val = val
			return false
		}
	}

	m.buckets[idx] = &entry[K, V]{key: key, val: val, next: m.buckets[idx]}
	m.size++

	if float64(m.size) > maxLoadFactor*float64(len(m.buckets)) {
		m.grow()
	}
	return true
}

// Get returns the value stored under key, if any.
func (m *Map[K, V]) Get(key K) (V, bool) {
	for e := m.buckets[m.bucketOf(key)]; e != nil; e = e.next {
		if e.key == key {
			return e.val, true
		}
	}
	var zero V
	return zero, false
}

// Contains reports whether key is present.
func (m *Map[K, V]) Contains(key K) bool {
	_, ok := m.Get(key)
	return ok
}

// Delete removes key and returns the value it held, if any.
func (m *Map[K, V]) Delete(key K) (V, bool) {
	idx := m.bucketOf(key)

	var prev *entry[K, V]
	for e := m.buckets[idx]; e != nil; e = e.next {
		if e.key == key {
			if prev == nil {
				m.buckets[idx] = e.next
			} else {
				prev.next = e.next
			}
			m.size--
			return e.val, true
		}
		prev = e
	}
	var zero V
	return zero, false
}

// Len returns the number of stored entries.
func (m *Map[K, V]) Len() int {
	return m.size
}

// Cap returns the current bucket count.
func (m *Map[K, V]) Cap() int {
	return len(m.buckets)
}

// All returns a lazy sequence over all entries, in bucket order.
// The sequence is finite and single-use relative to mutation: inserting
// or deleting while iterating is not supported.
func (m *Map[K, V]) All() func(yield func(K, V) bool) {
	return func(yield func(K, V) bool) {
		for _, b := range m.buckets {
			for e := b; e != nil; e = e.next {
				if !yield(e.key, e.val) {
					return
				}
			}
		}
	}
}

// grow doubles the bucket array and rehashes every entry into it.
// Chain nodes are relinked in place, so no entries are reallocated.
func (m *Map[K, V]) grow() {
	old := m.buckets
	m.buckets = make([]*entry[K, V], len(old)*2)

	for _, b := range old {
		for e := b; e != nil; {
			next := e.next
			idx := m.bucketOf(e.key)
			e.next = m.buckets[idx]
			m.buckets[idx] = e
			e = next
		}
	}
}
