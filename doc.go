/*
Package safelist provides a doubly-linked list guarded by a single mutex.

Every operation acquires the list's lock for its whole duration, so any two
concurrent operations on the same list behave as if one completed entirely
before the other began. The price is that readers and writers share one
exclusive lock; this is a coarse-grained container, not a high-throughput
concurrent data structure.

The list deliberately exposes no iterator, element, or cursor type. A cursor
handed to a caller could be held across lock boundaries and invalidated by
another goroutine's mutation between two uses; nothing in the type system
would catch that. The only traversal primitive is VisitAll, which runs a
caller-supplied visitor over every element while the lock is held.

The companion safemap package applies the same locking philosophy to maps.
*/
package safelist
