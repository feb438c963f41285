package arena_test

import (
	"testing"

	arena "github.com/djdv/go-arena"
	"github.com/stretchr/testify/require"
)

// slot threads the free list through a dedicated field
// instead of repurposing a structural one.
type slot struct {
	payload  string
	nextFree arena.Index
}

func (s *slot) Retire(next arena.Index) {
	s.payload = ""
	s.nextFree = next
}

func (s *slot) Reuse() arena.Index {
	next := s.nextFree
	s.nextFree = arena.Nil
	return next
}

type pool = arena.Pool[slot, *slot]

func TestAllocAppendsDensely(t *testing.T) {
	var p pool
	for want := arena.Index(0); want < 3; want++ {
		got, s := p.Alloc()
		require.Equal(t, want, got)
		require.NotNil(t, s)
	}
	require.Equal(t, 3, p.Len())
}

func TestAllocStoresRetrievably(t *testing.T) {
	var p pool
	i, s := p.Alloc()
	s.payload = "kept"
	j, s := p.Alloc()
	s.payload = "also kept"
	require.Equal(t, "kept", p.At(i).payload)
	require.Equal(t, "also kept", p.At(j).payload)
}

func TestFreeRecyclesInLIFOOrder(t *testing.T) {
	var p pool
	for range 3 {
		p.Alloc()
	}
	p.Free(0)
	p.Free(2)

	got, _ := p.Alloc()
	require.Equal(t, arena.Index(2), got, "most recently freed slot is reused first")
	got, _ = p.Alloc()
	require.Equal(t, arena.Index(0), got)
	got, _ = p.Alloc()
	require.Equal(t, arena.Index(3), got, "empty free list falls back to appending")
	require.Equal(t, 4, p.Len())
}

func TestFreeNilIsANoop(t *testing.T) {
	var p pool
	p.Alloc()
	p.Free(arena.Nil)
	got, _ := p.Alloc()
	require.Equal(t, arena.Index(1), got)
}

func TestFreeClearsPayload(t *testing.T) {
	var p pool
	i, s := p.Alloc()
	s.payload = "stale"
	p.Free(i)

	j, recycled := p.Alloc()
	require.Equal(t, i, j)
	require.Empty(t, recycled.payload, "recycled slot must not leak the prior payload")
}

func TestFreeDoesNotShrinkStore(t *testing.T) {
	var p pool
	for range 4 {
		p.Alloc()
	}
	p.Free(1)
	p.Free(3)
	require.Equal(t, 4, p.Len())
}

func TestResetDiscardsEverything(t *testing.T) {
	var p pool
	for range 4 {
		p.Alloc()
	}
	p.Free(2)
	p.Reset()
	require.Equal(t, 0, p.Len())

	got, _ := p.Alloc()
	require.Equal(t, arena.Index(0), got, "indices restart after a reset")
}
