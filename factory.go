package fluent

import (
	"time"
)

// Factory maps discrete keys to producers and creates values by key.
//
// Unlike the dispatch builders, a Factory is a reusable lookup table: it is
// not bound to one subject, Create can be called any number of times, and a
// later Register for a key replaces the earlier producer.
//
// Usage:
//  1. Create a factory with FactoryFrom
//  2. Register producers with Register, RegisterValue or RegisterIf
//  3. Create values with Create
//
// Factory is safe for concurrent use after configuration. Do not call
// Register, RegisterValue or RegisterIf concurrently with Create.
type Factory[K comparable, R any] struct {
	marker    K
	err       error
	producers map[K]func() R
	hooks     hooks[K]
}

// FactoryFrom creates a Factory. marker identifies the factory and must not
// be nil; it is not consulted by Create.
//
// Example:
//
//	shapes := fluent.FactoryFrom[Shape](ShapeKind("shape"),
//	    fluent.WithOnUnknownKey(func(k ShapeKind) {
//	        log.Printf("unknown shape %q", k)
//	    }),
//	)
func FactoryFrom[R any, K comparable](marker K, opts ...Option[K]) *Factory[K, R] {
	f := &Factory[K, R]{
		marker:    marker,
		err:       checkSubject(marker),
		producers: make(map[K]func() R),
	}
	for _, opt := range opts {
		opt(&f.hooks)
	}
	return f
}

// Register stores producer under key, replacing any earlier producer. Keys
// that cannot be compared are ignored.
func (f *Factory[K, R]) Register(key K, producer func() R) *Factory[K, R] {
	if f.err != nil || !hashable(key) {
		return f
	}
	_, replaced := f.producers[key]
	f.producers[key] = producer
	f.hooks.callOnRegister(key, replaced)
	return f
}

// RegisterValue stores a producer returning value under key.
func (f *Factory[K, R]) RegisterValue(key K, value R) *Factory[K, R] {
	return f.Register(key, constant(value))
}

// RegisterIf stores producer under key only when p(key) holds. Otherwise the
// factory is left unchanged.
func (f *Factory[K, R]) RegisterIf(p Predicate[K], key K, producer func() R) *Factory[K, R] {
	if f.err != nil {
		return f
	}
	if !p(key) {
		f.hooks.callOnSkip(key)
		return f
	}
	return f.Register(key, producer)
}

// Has reports whether a producer is registered for key.
func (f *Factory[K, R]) Has(key K) bool {
	if !hashable(key) {
		return false
	}
	_, ok := f.producers[key]
	return ok
}

// Len returns the number of registered keys.
func (f *Factory[K, R]) Len() int {
	return len(f.producers)
}

// Marker returns the value the factory was created from.
func (f *Factory[K, R]) Marker() K {
	return f.marker
}

// Err returns the construction error, if any.
func (f *Factory[K, R]) Err() error {
	return f.err
}

// Create calls the producer registered for key and returns its result.
// The error wraps ErrUnknownKey and names the key when none is registered.
func (f *Factory[K, R]) Create(key K) (R, error) {
	var zero R
	if f.err != nil {
		return zero, f.err
	}

	var producer func() R
	found := false
	if hashable(key) {
		producer, found = f.producers[key]
	}
	if !found {
		f.hooks.callOnUnknownKey(key)
		return zero, unknownKey(key)
	}

	start := time.Now()
	v := producer()
	f.hooks.callOnCreate(key, time.Since(start))
	return v, nil
}
