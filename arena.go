package arena

type (
	// An Index identifies a slot within a specific [Pool].
	// Indices from different pools must never be mixed;
	// the zero Index is a valid slot, not "no slot".
	Index uint32
	// Slot is implemented by node types stored in a [Pool].
	// Both methods repurpose one of the node's own fields
	// as the free-list link while the slot is pooled.
	// Implementations use pointer receivers.
	Slot interface {
		// Retire clears the slot's payload and links,
		// then records next (the previous free-list head)
		// in the repurposed link field.
		Retire(next Index)
		// Reuse pops the recorded free-list link back out
		// and clears any scratch state left by Retire.
		Reuse() Index
	}
	// A Pool is a growable, densely-indexed store of N
	// with O(1) reuse of freed slots.
	// Slots are appended, never removed or reindexed.
	// The zero value is an empty pool ready for use.
	Pool[N any, P interface {
		*N
		Slot
	}] struct {
		slots []N
		// free is the free-list head; Nil when empty.
		// Its zero value aliases slot 0, so it is lazily
		// initialized on first use (see initialized).
		free        Index
		initialized bool
	}
)

// Nil is the reserved [Index] meaning "no node".
const Nil = ^Index(0)

// Alloc returns an unoccupied slot and its index.
// A recycled slot has had its payload and links cleared by [Pool.Free];
// a freshly appended slot is the zero value of N. Fields whose empty
// state is [Nil] rather than zero are the caller's to initialize.
func (p *Pool[N, P]) Alloc() (Index, *N) {
	if !p.initialized {
		p.free = Nil
		p.initialized = true
	}
	if i := p.free; i != Nil {
		slot := &p.slots[i]
		p.free = P(slot).Reuse()
		return i, slot
	}
	if debugging {
		assert(Index(len(p.slots)) != Nil, "pool exhausted the index space")
	}
	p.slots = append(p.slots, *new(N))
	i := Index(len(p.slots) - 1)
	return i, &p.slots[i]
}

// Free clears the slot at i and pushes it onto the free list.
// Freeing [Nil] is a no-op. The backing store never shrinks.
// Indices held elsewhere are not invalidated; see the package
// documentation for the stale-index hazard.
func (p *Pool[N, P]) Free(i Index) {
	if i == Nil {
		return
	}
	if debugging {
		p.assertIssued(i, "Free")
	}
	P(&p.slots[i]).Retire(p.free)
	p.free = i
}

// At returns the slot at i. Passing an index that was not
// issued by this pool is a contract violation and panics.
func (p *Pool[N, P]) At(i Index) *N {
	if debugging {
		p.assertIssued(i, "At")
	}
	return &p.slots[i]
}

// Len reports how many slots the pool has ever created,
// occupied and pooled alike.
func (p *Pool[N, P]) Len() int { return len(p.slots) }

// Reset discards every slot, occupied and pooled, in O(1).
// All previously issued indices become invalid.
// The backing store's capacity is retained.
func (p *Pool[N, P]) Reset() {
	p.slots = p.slots[:0]
	p.free = Nil
	p.initialized = true
}

func (p *Pool[N, P]) assertIssued(i Index, op string) {
	assert(i != Nil, op+": Nil index")
	assert(int(i) < len(p.slots), op+": index was never issued by this pool")
}
