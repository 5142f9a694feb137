// Package safemap provides coarse-locked maps in the same family as the
// safelist root package: a partitioned hash map and an ordered tree map.
package safemap

import (
	"hash/crc32"
	"sync"

	"github.com/bburrough/safelist/assert"
)

const defaultPartitionNum = 64

type partition[V any] struct {
	mu sync.RWMutex
	m  map[string]V
}

func (p *partition[V]) get(key string) (V, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	v, ok := p.m[key]
	return v, ok
}

func (p *partition[V]) set(key string, v V) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.m[key] = v
}

func (p *partition[V]) del(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.m, key)
}

// rangeLocked requires the partition's lock (read or write) to be held.
func (p *partition[V]) rangeLocked(visitor func(key string, v V) bool) bool {
	for k, v := range p.m {
		if !visitor(k, v) {
			return false
		}
	}
	return true
}

// Map is a string-keyed map split into crc32-hashed partitions, each guarded
// by its own read/write mutex. Operations on different keys mostly proceed
// in parallel; operations on the same key are linearizable.
type Map[V any] struct {
	partitions []partition[V]
}

// New returns a map with a default partition count.
func New[V any]() *Map[V] {
	return NewWithPartitions[V](defaultPartitionNum)
}

// NewWithPartitions returns a map with partitionNum partitions.
func NewWithPartitions[V any](partitionNum int) *Map[V] {
	assert.Mustf(partitionNum > 0, "partitionNum %d", partitionNum)
	m := &Map[V]{partitions: make([]partition[V], partitionNum)}
	for i := range m.partitions {
		m.partitions[i].m = make(map[string]V)
	}
	return m
}

func (m *Map[V]) partition(key string) *partition[V] {
	return &m.partitions[int(crc32.ChecksumIEEE([]byte(key)))%len(m.partitions)]
}

func (m *Map[V]) Get(key string) (V, bool) {
	return m.partition(key).get(key)
}

func (m *Map[V]) Set(key string, v V) {
	m.partition(key).set(key, v)
}

func (m *Map[V]) Del(key string) {
	m.partition(key).del(key)
}

// rlockAll acquires every partition read lock in index order; runlockAll
// releases in reverse order.
func (m *Map[V]) rlockAll() {
	for i := 0; i < len(m.partitions); i++ {
		m.partitions[i].mu.RLock()
	}
}

func (m *Map[V]) runlockAll() {
	for i := len(m.partitions) - 1; i >= 0; i-- {
		m.partitions[i].mu.RUnlock()
	}
}

// Len returns the element count over a consistent snapshot of all
// partitions.
func (m *Map[V]) Len() int {
	m.rlockAll()
	defer m.runlockAll()
	n := 0
	for i := range m.partitions {
		n += len(m.partitions[i].m)
	}
	return n
}

// Range calls visitor for each entry, locking one partition at a time. The
// visitor returns false to stop early. Entries written to other partitions
// during the walk may or may not be observed.
func (m *Map[V]) Range(visitor func(key string, v V) bool) {
	for i := range m.partitions {
		p := &m.partitions[i]
		p.mu.RLock()
		more := p.rangeLocked(visitor)
		p.mu.RUnlock()
		if !more {
			return
		}
	}
}

// RangeStrict is Range over a consistent snapshot: every partition stays
// read-locked until the walk finishes. The visitor must not call any method
// of m.
func (m *Map[V]) RangeStrict(visitor func(key string, v V) bool) {
	m.rlockAll()
	defer m.runlockAll()
	for i := range m.partitions {
		if !m.partitions[i].rangeLocked(visitor) {
			return
		}
	}
}
