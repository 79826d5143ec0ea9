package tree

import (
	"cmp"
	"fmt"
	"io"
	"iter"
	"os"

	"github.com/rs/zerolog"
	"github.com/xvzc/linkds/internal/arena"
)

var _ SearchTree[int] = (*BST[int])(nil)

// LessFunc reports whether a sorts strictly before b.
type LessFunc[T any] func(a, b T) bool

// BST is an unbalanced binary search tree. Values strictly less than a
// node go to its left subtree, everything else (ties included) goes right,
// so the shape depends only on insertion order.
//
// Nodes live in a private arena; each node is owned by exactly one link,
// either the root or its parent's left/right. A BST is not safe for
// concurrent use.
type BST[T comparable] struct {
	less   LessFunc[T]
	nodes  *arena.Arena[bstNode[T]]
	root   arena.Handle
	logger zerolog.Logger
}

// NewOrdered creates an empty tree ordered by the natural order of T.
func NewOrdered[T cmp.Ordered](logger zerolog.Logger) *BST[T] {
	return New(cmp.Less[T], logger)
}

// New creates an empty tree ordered by less.
// The logger receives the teardown diagnostic emitted by Close.
func New[T comparable](less LessFunc[T], logger zerolog.Logger) *BST[T] {
	if less == nil {
		panic("tree: nil LessFunc")
	}

	return &BST[T]{
		less:   less,
		nodes:  arena.New[bstNode[T]](0),
		root:   arena.Nil,
		logger: logger,
	}
}

// Insert attaches value as a new leaf. An empty tree gets value as its
// root at depth 1; otherwise the new node sits one level below its parent.
func (t *BST[T]) Insert(value T) {
	if t.root.IsNil() {
		t.root = t.nodes.Alloc(newBSTNode(value, 1))
		return
	}

	cur := t.root
	for {
		n := t.nodes.Get(cur)
		goLeft := t.less(value, n.value)

		next := n.right
		if goLeft {
			next = n.left
		}

		if !next.IsNil() {
			cur = next
			continue
		}

		// Alloc may move the backing storage, so the parent is looked up
		// again before the link is written.
		child := t.nodes.Alloc(newBSTNode(value, n.depth+1))
		parent := t.nodes.Get(cur)
		if goLeft {
			parent.left = child
		} else {
			parent.right = child
		}
		return
	}
}

// Search looks for a node whose value equals value. Each node is checked
// by equality first, then its left subtree, and only when that misses, its
// right subtree. The first match in this order is returned.
func (t *BST[T]) Search(value T) (Node[T], bool) {
	h := t.search(t.root, value)
	if h.IsNil() {
		return Node[T]{}, false
	}

	return t.nodes.Get(h).view(), true
}

func (t *BST[T]) search(h arena.Handle, value T) arena.Handle {
	stack := []arena.Handle{h}

	for len(stack) > 0 {
		cur := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if cur.IsNil() {
			continue
		}

		n := t.nodes.Get(cur)
		if n.value == value {
			return cur
		}

		// right goes first so the whole left subtree is popped before it
		stack = append(stack, n.right, n.left)
	}

	return arena.Nil
}

// Len returns the number of nodes in the tree.
func (t *BST[T]) Len() int {
	return t.nodes.Len()
}

// Height returns the greatest node depth, or 0 for an empty tree.
func (t *BST[T]) Height() int {
	height := 0
	t.Walk(func(n Node[T]) bool {
		height = max(height, n.depth)
		return true
	})

	return height
}

// Walk calls fn for every node in order (left subtree, node, right subtree)
// until fn returns false. The tree must not be mutated from fn.
func (t *BST[T]) Walk(fn func(n Node[T]) bool) {
	var stack []arena.Handle
	cur := t.root

	for !cur.IsNil() || len(stack) > 0 {
		for !cur.IsNil() {
			stack = append(stack, cur)
			cur = t.nodes.Get(cur).left
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		n := t.nodes.Get(top)
		if !fn(n.view()) {
			return
		}
		cur = n.right
	}
}

// All returns an in-order iterator over the values of the tree, which
// yields them in non-decreasing order.
func (t *BST[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		t.Walk(func(n Node[T]) bool {
			return yield(n.value)
		})
	}
}

// Print writes the values in order to the standard output, one per line.
func (t *BST[T]) Print() {
	_ = t.Fprint(os.Stdout)
}

// Fprint writes the values in order to w, one per line.
func (t *BST[T]) Fprint(w io.Writer) error {
	for v := range t.All() {
		if _, err := fmt.Fprintln(w, v); err != nil {
			return err
		}
	}

	return nil
}

// Close tears the tree down, reclaiming every node exactly once, and
// returns the number of nodes reclaimed. The tree is empty afterwards and
// may be reused. Closing an empty tree reclaims nothing.
func (t *BST[T]) Close() int {
	t.logger.Debug().Int("nodes", t.nodes.Len()).Msg("dropping tree")

	freed := t.free(t.root)
	t.root = arena.Nil

	if leaked := t.nodes.Len(); leaked != 0 {
		panic(fmt.Errorf("tree: %d nodes unreachable from root", leaked))
	}
	t.nodes.Reset()

	return freed
}

// free releases the subtree owned by h: left subtree, right subtree,
// then the node itself.
func (t *BST[T]) free(h arena.Handle) int {
	type frame struct {
		h        arena.Handle
		expanded bool
	}

	if h.IsNil() {
		return 0
	}

	freed := 0
	stack := []frame{{h: h}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		if top.expanded {
			stack = stack[:len(stack)-1]
			t.nodes.Free(top.h)
			freed++
			continue
		}

		stack[len(stack)-1].expanded = true
		n := t.nodes.Get(top.h)
		if !n.right.IsNil() {
			stack = append(stack, frame{h: n.right})
		}
		if !n.left.IsNil() {
			stack = append(stack, frame{h: n.left})
		}
	}

	return freed
}
