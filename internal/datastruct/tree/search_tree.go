package tree

// SearchTree is an ordered container that accepts duplicate values and
// answers membership queries.
type SearchTree[T any] interface {
	// Insert adds value to the tree. Duplicates are always accepted.
	Insert(value T)
	// Search returns the first node holding value, if any.
	Search(value T) (Node[T], bool)
	// Len returns the number of nodes in the tree.
	Len() int
}
