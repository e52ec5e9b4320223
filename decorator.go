package fluent

// Decorator composes same-type transformations over a value. It is an
// immutable value: With returns a new Decorator and leaves the receiver as it
// was, so a partially built chain can be branched.
//
//	n, _ := fluent.DecoratorFrom(2).
//	    With(func(x int) int { return x + 3 }).
//	    With(func(x int) int { return x * 10 }).
//	    Apply() // 50
type Decorator[T any] struct {
	value T
	err   error
	fn    func(T) T
}

// DecoratorFrom creates a Decorator over value with the identity
// transformation.
func DecoratorFrom[T any](value T) Decorator[T] {
	return Decorator[T]{value: value, err: checkSubject(value), fn: identity[T]}
}

// With returns a Decorator that applies the current transformation and
// then fn.
func (d Decorator[T]) With(fn func(T) T) Decorator[T] {
	if d.fn == nil {
		d.fn = fn
		return d
	}
	d.fn = Compose(d.fn, fn)
	return d
}

// Err returns the construction error, if any.
func (d Decorator[T]) Err() error {
	return d.err
}

// Apply runs the composed transformation on the value once.
func (d Decorator[T]) Apply() (T, error) {
	if d.err != nil {
		var zero T
		return zero, d.err
	}
	if d.fn == nil {
		return d.value, nil
	}
	return d.fn(d.value), nil
}

// Compose returns a function applying fns from left to right.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(v T) T {
		for _, fn := range fns {
			v = fn(v)
		}
		return v
	}
}

func identity[T any](v T) T {
	return v
}
