package core

// Ring is a bounded append-only log. When the cap is exceeded the oldest
// entries are evicted, so the cap is an invariant of the container rather
// than a slice trimmed after the fact.
type Ring[T any] struct {
	max   int
	items []T
}

// NewRing creates a ring holding at most max entries.
func NewRing[T any](max int) *Ring[T] {
	if max < 1 {
		max = 1
	}
	return &Ring[T]{max: max}
}

// Append adds an entry, evicting oldest-first past the cap.
func (r *Ring[T]) Append(v T) {
	r.items = append(r.items, v)
	if len(r.items) > r.max {
		r.items = r.items[len(r.items)-r.max:]
	}
}

// Items returns a copy of the entries, oldest first.
func (r *Ring[T]) Items() []T {
	out := make([]T, len(r.items))
	copy(out, r.items)
	return out
}

// Tail returns a copy of the most recent n entries, oldest first.
func (r *Ring[T]) Tail(n int) []T {
	if n > len(r.items) {
		n = len(r.items)
	}
	out := make([]T, n)
	copy(out, r.items[len(r.items)-n:])
	return out
}

// Len reports the number of entries.
func (r *Ring[T]) Len() int {
	return len(r.items)
}

// Max reports the cap.
func (r *Ring[T]) Max() int {
	return r.max
}

// Clear removes all entries.
func (r *Ring[T]) Clear() {
	r.items = nil
}
