package arena

import (
	"fmt"
	"math"
)

// Handle identifies a slot in an Arena.
// The zero value is a valid handle; use Nil for "no node".
type Handle int32

// Nil is the handle that never refers to a slot.
const Nil Handle = -1

// IsNil reports whether h refers to no slot.
func (h Handle) IsNil() bool {
	return h < 0
}

// slot holds either a live node or a link to the next free slot.
type slot[N any] struct {
	node N

	// nextFree chains reclaimed slots together. Only meaningful while used is false.
	nextFree Handle
	used     bool
}

// Arena stores nodes of type N in a single growable slice and hands out
// integer handles instead of pointers. Every slot has exactly one owner,
// the handle returned by Alloc, until that handle is passed to Free.
//
// An Arena is not safe for concurrent use.
type Arena[N any] struct {
	slots []slot[N]

	// freeHead is the most recently freed slot (LIFO reuse).
	freeHead Handle
	free     int
}

// New creates an empty arena with room for capacity nodes before growing.
func New[N any](capacity int) *Arena[N] {
	if capacity < 0 {
		capacity = 0
	}

	return &Arena[N]{
		slots:    make([]slot[N], 0, capacity),
		freeHead: Nil,
	}
}

// Alloc stores n in a free slot, reusing reclaimed slots first,
// and returns the owning handle.
func (a *Arena[N]) Alloc(n N) Handle {
	if !a.freeHead.IsNil() {
		h := a.freeHead
		s := &a.slots[h]
		a.freeHead = s.nextFree
		a.free--

		s.node = n
		s.nextFree = Nil
		s.used = true
		return h
	}

	h := handleAt(len(a.slots))
	a.slots = append(a.slots, slot[N]{node: n, nextFree: Nil, used: true})
	return h
}

// handleAt converts a slot index into a Handle. It panics once the index no
// longer fits, since a wrapped handle would read as Nil.
func handleAt(i int) Handle {
	if i < 0 || i > math.MaxInt32 {
		panic(fmt.Errorf("arena: slot index %d exceeds handle range", i))
	}

	return Handle(i)
}

// Get returns a pointer to the node owned by h.
// The pointer is only valid until the next Alloc or Reset, since the
// backing storage may move when it grows.
// Get panics if h does not refer to a live slot.
func (a *Arena[N]) Get(h Handle) *N {
	return &a.live(h).node
}

// Free reclaims the slot owned by h and returns the node it held.
// Ownership of the returned value moves to the caller.
// Freeing a slot twice panics.
func (a *Arena[N]) Free(h Handle) N {
	s := a.live(h)

	n := s.node
	var zero N
	s.node = zero
	s.used = false
	s.nextFree = a.freeHead

	a.freeHead = h
	a.free++
	return n
}

// Contains reports whether h refers to a live slot.
func (a *Arena[N]) Contains(h Handle) bool {
	return !h.IsNil() && int(h) < len(a.slots) && a.slots[h].used
}

// Len returns the number of live nodes.
func (a *Arena[N]) Len() int {
	return len(a.slots) - a.free
}

// Cap returns the number of slots, live or free.
func (a *Arena[N]) Cap() int {
	return len(a.slots)
}

// Reset drops every slot at once. Handles obtained before Reset are invalid.
func (a *Arena[N]) Reset() {
	clear(a.slots)
	a.slots = a.slots[:0]
	a.freeHead = Nil
	a.free = 0
}

func (a *Arena[N]) live(h Handle) *slot[N] {
	if h.IsNil() || int(h) >= len(a.slots) {
		panic(fmt.Errorf("arena: invalid handle %d (slots: %d)", h, len(a.slots)))
	}

	s := &a.slots[h]
	if !s.used {
		panic(fmt.Errorf("arena: handle %d refers to a free slot", h))
	}

	return s
}
