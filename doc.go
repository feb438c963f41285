// Package arena provides a growable, densely-indexed node store with an
// intrusive free list, used in place of individually allocated node graphs.
//
// The subpackages build two containers on this discipline: an O(1) LRU cache
// ([github.com/djdv/go-arena/lru]) and a multi-rooted N-ary tree forest
// ([github.com/djdv/go-arena/nary]). Both resolve every structural operation
// to index arithmetic on a private [Pool]; neither ever holds a Go pointer
// to another node.
//
// Glossary and invariants:
//
//   - Index
//
//     An integer standing in for a memory address,
//     valid only relative to the [Pool] that issued it.
//
//   - Nil
//
//     The reserved all-ones [Index] meaning "no node",
//     "end of chain", or "empty slot".
//
//   - Slot
//
//     One record in a pool's backing store. Slots are only ever appended;
//     the store never removes or reindexes existing slots, so a valid
//     index is always smaller than the store's length and stays
//     meaningful for the life of the pool.
//
//   - Free list
//
//     A singly-linked chain of currently-unused slots, threaded through
//     repurposed fields of the slots themselves via the [Slot] interface.
//     No separate allocation is made to track reusable slots.
//
//   - Occupied / pooled
//
//     Every slot is exactly one of the two. A pooled slot's intrusive
//     link field must not be interpreted as structural data.
//
// Hazards (accepted trade-offs, by contract with the caller):
//
//   - Freeing a slot does not invalidate indices held elsewhere.
//     A stale index dereferences whatever occupies the slot now.
//     The design omits generation counters, so this is not detectable;
//     callers must only pass indices they know to be live.
//
//   - Indexing with a value that was never issued by the pool is a
//     contract violation and panics. Builds tagged "arenadebug"
//     assert this with a diagnostic message.
//
//   - Nothing here is safe for concurrent mutation. Every structure is
//     purely sequential; callers needing concurrency must synchronize.
package arena
