package fluent

// Runner runs one side effect selected by predicates over a subject. Unlike
// Action, the side effect does not receive the subject.
//
// Runner is a single-use builder and is not safe for concurrent use.
type Runner[T any] struct {
	subject T
	err     error
	winner  slot[func() error]
}

// RunnerFrom creates a Runner over subject.
func RunnerFrom[T any](subject T) *Runner[T] {
	return &Runner[T]{subject: subject, err: checkSubject(subject)}
}

// With registers fn for the case p. p is evaluated immediately.
func (r *Runner[T]) With(p Predicate[T], fn func() error) *Runner[T] {
	if r.err != nil {
		return r
	}
	if p(r.subject) {
		r.winner.offer(fn)
	}
	return r
}

// Otherwise registers the default side effect.
func (r *Runner[T]) Otherwise(fn func() error) *Runner[T] {
	return r.With(Always[T](), fn)
}

// Matched reports whether a case has won so far.
func (r *Runner[T]) Matched() bool {
	_, ok := r.winner.get()
	return ok
}

// Err returns the construction error, if any.
func (r *Runner[T]) Err() error {
	return r.err
}

// Run calls the winning side effect. It fails with ErrNoMatch if no case won.
func (r *Runner[T]) Run() error {
	if r.err != nil {
		return r.err
	}
	fn, ok := r.winner.get()
	if !ok {
		return ErrNoMatch
	}
	return fn()
}
