package fluent

// Consumer acts on a subject. A non-nil error is returned by Action.Run as is.
type Consumer[T any] func(T) error

// Action runs one consumer over a subject, selected by predicate. Resolution
// follows the same first-true-wins rule as Guards, including pre-emption by an
// early Otherwise.
//
// Action is a single-use builder and is not safe for concurrent use.
type Action[T any] struct {
	subject T
	err     error
	winner  slot[Consumer[T]]
}

// ActionFrom creates an Action over subject.
func ActionFrom[T any](subject T) *Action[T] {
	return &Action[T]{subject: subject, err: checkSubject(subject)}
}

// With registers consumer for the case p. p is evaluated immediately.
func (a *Action[T]) With(p Predicate[T], consumer Consumer[T]) *Action[T] {
	if a.err != nil {
		return a
	}
	if p(a.subject) {
		a.winner.offer(consumer)
	}
	return a
}

// Otherwise registers the default consumer.
func (a *Action[T]) Otherwise(consumer Consumer[T]) *Action[T] {
	return a.With(Always[T](), consumer)
}

// Matched reports whether a case has won so far.
func (a *Action[T]) Matched() bool {
	_, ok := a.winner.get()
	return ok
}

// Err returns the construction error, if any.
func (a *Action[T]) Err() error {
	return a.err
}

// Run passes the subject to the winning consumer. It fails with ErrNoMatch if
// no case won.
func (a *Action[T]) Run() error {
	if a.err != nil {
		return a.err
	}
	consumer, ok := a.winner.get()
	if !ok {
		return ErrNoMatch
	}
	return consumer(a.subject)
}
