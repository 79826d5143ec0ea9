package tree

import (
	"fmt"

	"github.com/xvzc/linkds/internal/arena"
)

// bstNode is the arena-resident representation of a tree node.
// left and right are the owning links to the children.
type bstNode[T any] struct {
	value T
	depth int
	left  arena.Handle
	right arena.Handle
}

func newBSTNode[T any](value T, depth int) bstNode[T] {
	return bstNode[T]{
		value: value,
		depth: depth,
		left:  arena.Nil,
		right: arena.Nil,
	}
}

// Node is a read-only view of a tree node returned by Search and Walk.
// It copies the node's value and depth, so it stays valid after the
// tree is mutated or closed.
type Node[T any] struct {
	value T
	depth int
}

// Value returns the value held by the node.
func (n Node[T]) Value() T {
	return n.value
}

// Depth returns the level the node was attached at; the root is at depth 1.
func (n Node[T]) Depth() int {
	return n.depth
}

func (n Node[T]) String() string {
	return fmt.Sprintf("Node{value: %v, depth: %d}", n.value, n.depth)
}

func (n *bstNode[T]) view() Node[T] {
	return Node[T]{value: n.value, depth: n.depth}
}
