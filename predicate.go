package fluent

// Predicate tests a subject. Predicates passed to the dispatch builders are
// evaluated at registration time, not at resolution.
type Predicate[T any] func(T) bool

// And returns a Predicate that holds when all predicates hold.
// With no predicates it always holds.
func And[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if !p(v) {
				return false
			}
		}
		return true
	}
}

// Or returns a Predicate that holds when any predicate holds.
// With no predicates it never holds.
func Or[T any](ps ...Predicate[T]) Predicate[T] {
	return func(v T) bool {
		for _, p := range ps {
			if p(v) {
				return true
			}
		}
		return false
	}
}

// Not negates p.
func Not[T any](p Predicate[T]) Predicate[T] {
	return func(v T) bool {
		return !p(v)
	}
}

// Equals returns a Predicate that holds for values equal to want.
func Equals[T comparable](want T) Predicate[T] {
	return func(v T) bool {
		return v == want
	}
}

// Always returns a Predicate that always holds.
func Always[T any]() Predicate[T] {
	return func(T) bool { return true }
}

// Never returns a Predicate that never holds.
func Never[T any]() Predicate[T] {
	return func(T) bool { return false }
}
