// Package nary implements a [Forest] of multi-rooted, ordered N-ary
// trees sharing one arena of nodes, with node recycling.
package nary

import (
	"iter"
	"slices"

	arena "github.com/djdv/go-arena"
)

type (
	// A Pointer identifies a [Node] within its [Forest].
	// [arena.Nil] means "no node".
	Pointer = arena.Index
	// A Node belongs to exactly one [Forest]. A node with Parent ==
	// [arena.Nil] is either a registered root or a pooled free node.
	// Children of a live node never contain [arena.Nil]; while the
	// node is pooled, Children[0] is repurposed as the free-list link
	// and must not be read as tree structure.
	Node[Value any] struct {
		Value    Value
		Parent   Pointer
		Children []Pointer
	}
	// A Predicate reports whether a node satisfies search criteria.
	Predicate[Value any] func(*Node[Value]) bool
	// A Forest is a collection of zero or more rooted, ordered trees.
	// Following Parent links from any non-root node reaches a node in
	// the root list; nodes reachable from the root list are never
	// simultaneously on the free list.
	// Concurrent access must be guarded by the caller.
	Forest[Value any] struct {
		pool  arena.Pool[Node[Value], *Node[Value]]
		roots []Pointer
	}
)

// Retire is the arena's free-list hook; the forest calls it
// from [Forest.Free]. Not intended for direct use.
func (n *Node[Value]) Retire(next Pointer) {
	var zero Value
	n.Value = zero
	n.Parent = arena.Nil
	n.Children = append(n.Children[:0], next)
}

// Reuse is the arena's free-list hook; the forest calls it
// from [Forest.Allocate]. Not intended for direct use.
func (n *Node[Value]) Reuse() Pointer {
	next := n.Children[0]
	n.Children = n.Children[:0]
	return next
}

// New creates an empty [Forest]. No allocation is performed.
func New[Value any]() *Forest[Value] {
	return &Forest[Value]{}
}

// Allocate creates a node holding value, with no parent and no
// children, recycling a freed slot when one is available.
// The node is not registered anywhere; callers must attach it
// via [Forest.AddChild] or register it via [Forest.AddRoot].
func (f *Forest[Value]) Allocate(value Value) Pointer {
	i, node := f.pool.Alloc()
	node.Value = value
	node.Parent = arena.Nil
	return i
}

// Free returns the node at i (and only that node, not its subtree)
// to the free list; freeing [arena.Nil] is a no-op. The node is not
// detached from its parent or the root list - callers must do that
// first or be left holding a dangling pointer to a recycled slot.
func (f *Forest[Value]) Free(i Pointer) {
	f.pool.Free(i)
}

// Node returns the node at i. Passing a pointer that was never
// issued by this forest is a contract violation and panics.
func (f *Forest[Value]) Node(i Pointer) *Node[Value] {
	return f.pool.At(i)
}

// AddChild appends child to parent's children and reparents child.
// Unconditional: no cycle or prior-attachment checks are made.
func (f *Forest[Value]) AddChild(parent, child Pointer) {
	p := f.pool.At(parent)
	p.Children = append(p.Children, child)
	f.pool.At(child).Parent = parent
}

// AddChildAt inserts child at position at in parent's children,
// shifting later siblings right; at == len(children) appends.
// A position past the end returns an error wrapping
// [ErrInsertPosition] with no mutation performed.
func (f *Forest[Value]) AddChildAt(parent, child Pointer, at int) error {
	p := f.pool.At(parent)
	if at > len(p.Children) {
		return insertPositionError(at, len(p.Children))
	}
	p.Children = slices.Insert(p.Children, at, child)
	f.pool.At(child).Parent = parent
	return nil
}

// AddRoot registers the node at i as a root.
// Roots order trees in insertion order.
func (f *Forest[Value]) AddRoot(i Pointer) {
	f.roots = append(f.roots, i)
}

// RemoveRoot unregisters the node at i from the root list,
// reporting whether it was registered. The node itself is untouched;
// pair with [Forest.Free] to recycle a detached root.
func (f *Forest[Value]) RemoveRoot(i Pointer) bool {
	at := slices.Index(f.roots, i)
	if at < 0 {
		return false
	}
	f.roots = slices.Delete(f.roots, at, at+1)
	return true
}

// Roots ranges over the registered roots in tree order.
func (f *Forest[Value]) Roots() iter.Seq[Pointer] {
	return func(yield func(Pointer) bool) {
		for _, root := range f.roots {
			if !yield(root) {
				return
			}
		}
	}
}

// Search walks the tree at root depth-first in pre-order (parent
// before children, children left-to-right) and returns the first
// node satisfying predicate. A [arena.Nil] root or an exhausted
// tree reports false.
func (f *Forest[Value]) Search(root Pointer, predicate Predicate[Value]) (Pointer, bool) {
	if root == arena.Nil {
		return arena.Nil, false
	}
	node := f.pool.At(root)
	if predicate(node) {
		return root, true
	}
	for _, child := range node.Children {
		if found, hit := f.Search(child, predicate); hit {
			return found, hit
		}
	}
	return arena.Nil, false
}

// SearchAll applies the pre-order walk of [Forest.Search] to every
// tree in root order, collecting at most maxResults matches across
// all trees combined. The walk stops as soon as the cap is reached,
// mid-tree included.
func (f *Forest[Value]) SearchAll(maxResults int, predicate Predicate[Value]) []Pointer {
	var results []Pointer
	for _, root := range f.roots {
		results = f.SearchAndCollect(root, results, maxResults, predicate)
		if len(results) >= maxResults {
			break
		}
	}
	return results
}

// SearchAndCollect is the single-root primitive behind
// [Forest.SearchAll]: it appends matches under root to results until
// the combined length reaches maxResults, and returns the buffer.
// Callers may share one buffer and cap across a subset of roots.
func (f *Forest[Value]) SearchAndCollect(
	root Pointer, results []Pointer,
	maxResults int, predicate Predicate[Value],
) []Pointer {
	if root == arena.Nil || len(results) >= maxResults {
		return results
	}
	node := f.pool.At(root)
	if predicate(node) {
		results = append(results, root)
	}
	for _, child := range node.Children {
		results = f.SearchAndCollect(child, results, maxResults, predicate)
		if len(results) >= maxResults {
			break
		}
	}
	return results
}

// Len reports how many nodes the forest has ever allocated,
// live and pooled alike.
func (f *Forest[Value]) Len() int { return f.pool.Len() }

// Clear discards every tree and pooled node in O(1).
// All previously issued pointers become invalid.
func (f *Forest[Value]) Clear() {
	f.roots = f.roots[:0]
	f.pool.Reset()
}
