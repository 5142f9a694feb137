package safemap

import (
	"sync"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/utils"
)

// TreeMap is an ordered map guarded by one read/write mutex. Keys are
// ordered by the comparator given at construction.
type TreeMap struct {
	mu sync.RWMutex
	tm *treemap.Map
}

// NewTreeMap returns an empty tree map ordered by comparator, e.g.
// utils.StringComparator or utils.Int64Comparator.
func NewTreeMap(comparator utils.Comparator) *TreeMap {
	return &TreeMap{tm: treemap.NewWith(comparator)}
}

func (t *TreeMap) Put(key, value interface{}) {
	t.mu.Lock()
	t.tm.Put(key, value)
	t.mu.Unlock()
}

func (t *TreeMap) Get(key interface{}) (interface{}, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tm.Get(key)
}

func (t *TreeMap) Remove(key interface{}) {
	t.mu.Lock()
	t.tm.Remove(key)
	t.mu.Unlock()
}

func (t *TreeMap) Clear() {
	t.mu.Lock()
	t.tm.Clear()
	t.mu.Unlock()
}

func (t *TreeMap) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tm.Size()
}

// Min returns the smallest key and its value, or nils when empty.
func (t *TreeMap) Min() (interface{}, interface{}) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tm.Min()
}

// Max returns the largest key and its value, or nils when empty.
func (t *TreeMap) Max() (interface{}, interface{}) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tm.Max()
}

// Find returns the first entry in key order satisfying f, or nils.
func (t *TreeMap) Find(f func(key, value interface{}) bool) (interface{}, interface{}) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.tm.Find(f)
}

// Range walks entries in ascending key order under the read lock; the
// visitor returns false to stop early. The visitor must not call any method
// of t.
func (t *TreeMap) Range(visitor func(key, value interface{}) bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	it := t.tm.Iterator()
	for it.Next() {
		if !visitor(it.Key(), it.Value()) {
			return
		}
	}
}
