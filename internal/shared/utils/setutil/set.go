// Package setutil provides a small generic set for collecting ids before a batch lookup.
package setutil

// Set is an insertion-ordered set of comparable values.
type Set[T comparable] struct {
	index map[T]struct{}
	order []T
}

// New creates a set seeded with the given values.
func New[T comparable](values ...T) *Set[T] {
	s := &Set[T]{index: make(map[T]struct{}, len(values))}
	s.AddAll(values)
	return s
}

// Add inserts v unless it is already present.
func (s *Set[T]) Add(v T) {
	if _, ok := s.index[v]; ok {
		return
	}
	s.index[v] = struct{}{}
	s.order = append(s.order, v)
}

// AddAll inserts every value in vs.
func (s *Set[T]) AddAll(vs []T) {
	for _, v := range vs {
		s.Add(v)
	}
}

// Has reports whether v is in the set.
func (s *Set[T]) Has(v T) bool {
	_, ok := s.index[v]
	return ok
}

// Values returns the members in insertion order.
func (s *Set[T]) Values() []T {
	out := make([]T, len(s.order))
	copy(out, s.order)
	return out
}

// Len returns the number of members.
func (s *Set[T]) Len() int {
	return len(s.order)
}
