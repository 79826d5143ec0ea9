package ptr

// FromValue returns a pointer to a copy of v.
func FromValue[T any](v T) *T {
	return &v
}

// Clone returns a pointer to a copy of *x, or nil.
func Clone[T any](x *T) *T {
	if x == nil {
		return nil
	}

	v := *x
	return &v
}

// CloneOr clones x, falling back to fallback when x is nil.
func CloneOr[T any](x *T, fallback *T) *T {
	if x == nil {
		return Clone(fallback)
	}

	return Clone(x)
}

// CloneSliceOr copies x, falling back to fallback when x is nil.
// An empty non-nil x wins over fallback.
func CloneSliceOr[T any](x []T, fallback []T) []T {
	if x == nil {
		x = fallback
	}

	if x == nil {
		return nil
	}

	return append([]T{}, x...)
}

// FromPtrOr dereferences x, or returns v when x is nil.
func FromPtrOr[T any](x *T, v T) T {
	if x == nil {
		return v
	}

	return *x
}
