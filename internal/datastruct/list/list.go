package list

import (
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/rs/zerolog"
	"github.com/xvzc/linkds/internal/arena"
)

// listNode is a single link in the chain; next owns the following node.
type listNode[T any] struct {
	value T
	next  arena.Handle
}

// List is a singly linked list with O(1) push at both ends and O(1) pop
// from the front.
//
// head owns the first node and every node owns its successor through
// next. tail is an additional, non-owning link to the last node.
// A List is not safe for concurrent use.
type List[T any] struct {
	nodes  *arena.Arena[listNode[T]]
	head   arena.Handle
	tail   arena.Handle
	len    int
	logger zerolog.Logger
}

// New creates an empty list.
// The logger receives the teardown diagnostic emitted by Close.
func New[T any](logger zerolog.Logger) *List[T] {
	return &List[T]{
		nodes:  arena.New[listNode[T]](0),
		head:   arena.Nil,
		tail:   arena.Nil,
		logger: logger,
	}
}

// Len returns the number of nodes in the list.
func (l *List[T]) Len() int {
	return l.len
}

// PushFront makes value the new head.
func (l *List[T]) PushFront(value T) {
	h := l.nodes.Alloc(listNode[T]{value: value, next: l.head})

	if l.head.IsNil() {
		l.tail = h
	}

	l.head = h
	l.len++
}

// PushBack makes value the new tail.
func (l *List[T]) PushBack(value T) {
	h := l.nodes.Alloc(listNode[T]{value: value, next: arena.Nil})

	if l.tail.IsNil() {
		l.head = h
	} else {
		l.nodes.Get(l.tail).next = h
	}

	l.tail = h
	l.len++
}

// PopFront detaches the head and hands its value to the caller.
// It returns false and leaves the list unchanged when the list is empty.
func (l *List[T]) PopFront() (T, bool) {
	if l.head.IsNil() {
		var zero T
		return zero, false
	}

	n := l.nodes.Free(l.head)
	l.head = n.next
	if l.head.IsNil() {
		l.tail = arena.Nil
	}
	l.len--

	return n.value, true
}

// Front returns the value at the head without removing it.
func (l *List[T]) Front() (T, bool) {
	return l.peek(l.head)
}

// Back returns the value at the tail without removing it.
func (l *List[T]) Back() (T, bool) {
	return l.peek(l.tail)
}

func (l *List[T]) peek(h arena.Handle) (T, bool) {
	if h.IsNil() {
		var zero T
		return zero, false
	}

	return l.nodes.Get(h).value, true
}

// All returns an iterator over the values from head to tail.
// Each call starts a fresh pass; a pass visits at most Len() nodes as
// counted when it begins.
func (l *List[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for p := range l.AllMut() {
			if !yield(*p) {
				return
			}
		}
	}
}

// AllMut is like All but yields pointers to the stored values so they can
// be modified in place. The pointers must not be kept past the pass, and
// the list must not be pushed to or popped from during it.
func (l *List[T]) AllMut() iter.Seq[*T] {
	return func(yield func(*T) bool) {
		cur, remaining := l.head, l.len
		for remaining > 0 && !cur.IsNil() {
			n := l.nodes.Get(cur)
			if !yield(&n.value) {
				return
			}

			cur = n.next
			remaining--
		}
	}
}

// Print writes the values from head to tail to the standard output, one per line.
func (l *List[T]) Print() {
	_ = l.Fprint(os.Stdout)
}

// Fprint writes the values from head to tail to w, one per line.
func (l *List[T]) Fprint(w io.Writer) error {
	for v := range l.All() {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}

	return nil
}

// Close tears the list down by popping the head until the list is empty,
// and returns the number of nodes reclaimed. The list stays usable.
func (l *List[T]) Close() int {
	l.logger.Debug().Int("nodes", l.len).Msg("dropping list")

	freed := 0
	for {
		if _, ok := l.PopFront(); !ok {
			break
		}
		freed++
	}
	l.nodes.Reset()

	return freed
}
