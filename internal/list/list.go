// Package list is a doubly-linked list over an [arena.Pool],
// holding (key, value) pairs for use in the LRU cache.
package list

import (
	"iter"

	arena "github.com/djdv/go-arena"
)

type (
	// node links are arena indices, never pointers.
	// While pooled, next doubles as the free-list link.
	node[Key comparable, Value any] struct {
		key        Key
		value      Value
		prev, next arena.Index
	}
	// A List maintains elements in front-to-rear order with O(1)
	// push-front, O(1) removal by index, and O(1) pop from the rear.
	// The zero value is an empty list; no allocation until first push.
	List[Key comparable, Value any] struct {
		pool        arena.Pool[node[Key, Value], *node[Key, Value]]
		front, rear arena.Index
		length      int
	}
)

func (n *node[Key, Value]) Retire(next arena.Index) {
	var (
		zeroKey   Key
		zeroValue Value
	)
	n.key = zeroKey
	n.value = zeroValue
	n.prev = arena.Nil
	n.next = next
}

func (n *node[Key, Value]) Reuse() arena.Index {
	next := n.next
	n.next = arena.Nil
	return next
}

// PushFront links a new (key, value) element before the current front
// and returns its index.
func (l *List[Key, Value]) PushFront(key Key, value Value) arena.Index {
	i, n := l.pool.Alloc()
	n.key = key
	n.value = value
	n.prev = arena.Nil
	if l.length == 0 {
		n.next = arena.Nil
		l.rear = i
	} else {
		n.next = l.front
		l.pool.At(l.front).prev = i
	}
	l.front = i
	l.length++
	return i
}

// Remove detaches the element at i, splices its neighbors together,
// returns the freed pair, and recycles the node. Passing [arena.Nil]
// reports false; callers must otherwise only pass indices they
// obtained from this list and have not yet removed.
func (l *List[Key, Value]) Remove(i arena.Index) (Key, Value, bool) {
	if i == arena.Nil {
		var (
			zeroKey   Key
			zeroValue Value
		)
		return zeroKey, zeroValue, false
	}
	var (
		n          = l.pool.At(i)
		key        = n.key
		value      = n.value
		prev, next = n.prev, n.next
	)
	if prev != arena.Nil {
		l.pool.At(prev).next = next
	} else {
		l.front = next
	}
	if next != arena.Nil {
		l.pool.At(next).prev = prev
	} else {
		l.rear = prev
	}
	l.pool.Free(i)
	l.length--
	return key, value, true
}

// PopRear removes and returns the rearmost pair,
// reporting false when the list is empty.
func (l *List[Key, Value]) PopRear() (Key, Value, bool) {
	if l.length == 0 {
		var (
			zeroKey   Key
			zeroValue Value
		)
		return zeroKey, zeroValue, false
	}
	return l.Remove(l.rear)
}

// Front returns the index of the frontmost element,
// or [arena.Nil] when the list is empty.
func (l *List[Key, Value]) Front() arena.Index {
	if l.length == 0 {
		return arena.Nil
	}
	return l.front
}

// At returns the stored value at i for in-place access.
func (l *List[Key, Value]) At(i arena.Index) *Value {
	return &l.pool.At(i).value
}

// Len returns the number of linked elements.
func (l *List[Key, Value]) Len() int { return l.length }

// Iter ranges over the list's pairs in front-to-rear order.
// The sequence is restartable and must not outlive
// structural changes to the list.
func (l *List[Key, Value]) Iter() iter.Seq2[Key, Value] {
	return func(yield func(Key, Value) bool) {
		if l.length == 0 {
			return
		}
		for i := l.front; i != arena.Nil; {
			n := l.pool.At(i)
			if !yield(n.key, n.value) {
				return
			}
			i = n.next
		}
	}
}
