package safelist

import (
	"container/list"
	"sync"

	"github.com/bburrough/safelist/assert"
	"github.com/bburrough/safelist/sync2"
	"github.com/golang/glog"
)

const glogLevelTrace = glog.Level(10)

// traceSeq orders trace lines across goroutines. It only advances while
// tracing is enabled.
var traceSeq sync2.AtomicInt64

func traceOp(format string, args ...interface{}) {
	if !glog.V(glogLevelTrace) {
		return
	}
	args = append([]interface{}{traceSeq.Add(1)}, args...)
	glog.V(glogLevelTrace).Infof("[%d] "+format, args...)
}

// List is an ordered sequence of T guarded by one mutex. The front is the
// oldest element still present, the back the most recently pushed. A List
// must not be copied after first use.
//
// The mutex is not re-entrant: no method of List calls another method, and
// callbacks passed to VisitAll must not call back into the same list.
type List[T comparable] struct {
	mu sync.Mutex
	ll *list.List
}

// New returns an empty list.
func New[T comparable]() *List[T] {
	return &List[T]{ll: list.New()}
}

// Empty reports whether the list has no elements.
func (l *List[T]) Empty() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lenLocked() == 0
}

// Len returns the number of elements.
func (l *List[T]) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.lenLocked()
}

// lenLocked requires l.mu to be held.
func (l *List[T]) lenLocked() int {
	return l.ll.Len()
}

// PushBack appends v at the back of the list.
func (l *List[T]) PushBack(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ll.PushBack(v)
	traceOp("PushBack(%v), len %d", v, l.lenLocked())
}

// PopFront removes and returns the front element. On an empty list it
// returns the zero value of T and false; the boolean is the only way to
// tell an empty pop from a stored zero value.
func (l *List[T]) PopFront() (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	front := l.ll.Front()
	if front == nil {
		traceOp("PopFront() on empty list")
		var zero T
		return zero, false
	}
	v, ok := l.ll.Remove(front).(T)
	assert.Mustf(ok, "foreign value %v in list", front.Value)
	traceOp("PopFront() -> %v, len %d", v, l.lenLocked())
	return v, true
}

// Remove deletes every element equal to v. Removing a value that is not
// present is a no-op.
func (l *List[T]) Remove(v T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.removeLocked(v)
	traceOp("Remove(%v), len %d", v, l.lenLocked())
}

// removeLocked requires l.mu to be held.
func (l *List[T]) removeLocked(v T) {
	var next *list.Element
	for e := l.ll.Front(); e != nil; e = next {
		next = e.Next()
		if e.Value.(T) == v {
			l.ll.Remove(e)
		}
	}
}

// VisitAll walks the list from front to back under the lock, calling visitor
// with each element's value. The visitor returns true to keep going or false
// to stop early. The lock is held for the whole traversal and released on
// every exit path, including a panicking visitor.
//
// The visitor must not call any method of l; the lock is not re-entrant and
// the call would deadlock its own goroutine.
func (l *List[T]) VisitAll(visitor func(v T) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	traceOp("VisitAll(), len %d", l.lenLocked())
	for e := l.ll.Front(); e != nil; e = e.Next() {
		if !visitor(e.Value.(T)) {
			break
		}
	}
}
