package fluent

// Guards selects a value by predicate. Cases are registered in order against a
// fixed subject and exactly one result is produced by Apply.
//
// Each predicate runs when its case is registered; the result producer runs
// only if its case wins. The first case whose predicate holds wins. Otherwise
// fills the same winning slot, so it only acts as a fallback when it is
// registered last:
//
//	name, err := fluent.GuardsOf[string](person).
//	    When(func(p Person) bool { return p.Age < 18 }, "minor").
//	    When(func(p Person) bool { return p.Age >= 65 }, "senior").
//	    Otherwise("adult").
//	    Apply()
//
// An Otherwise registered before a When pre-empts it, even if the later
// predicate holds.
//
// Guards is a single-use builder and is not safe for concurrent use.
type Guards[T, R any] struct {
	subject T
	err     error
	winner  slot[func() R]
}

// GuardsOf creates a Guards over subject. The result type is given explicitly
// and the subject type is inferred:
//
//	g := fluent.GuardsOf[string](person)
//
// A nil subject makes every registration a no-op and Apply return
// ErrNilSubject.
func GuardsOf[R, T any](subject T) *Guards[T, R] {
	return &Guards[T, R]{subject: subject, err: checkSubject(subject)}
}

// When registers value as the result for the case p.
func (g *Guards[T, R]) When(p Predicate[T], value R) *Guards[T, R] {
	return g.WhenFunc(p, constant(value))
}

// WhenFunc registers a producer as the result for the case p. The producer
// is called by Apply only if this case wins.
func (g *Guards[T, R]) WhenFunc(p Predicate[T], producer func() R) *Guards[T, R] {
	if g.err != nil {
		return g
	}
	if p(g.subject) {
		g.winner.offer(producer)
	}
	return g
}

// Otherwise registers value as the default result.
func (g *Guards[T, R]) Otherwise(value R) *Guards[T, R] {
	return g.OtherwiseFunc(constant(value))
}

// OtherwiseFunc registers a producer as the default result.
func (g *Guards[T, R]) OtherwiseFunc(producer func() R) *Guards[T, R] {
	return g.WhenFunc(Always[T](), producer)
}

// Matched reports whether a case has won so far.
func (g *Guards[T, R]) Matched() bool {
	_, ok := g.winner.get()
	return ok
}

// Err returns the construction error, if any.
func (g *Guards[T, R]) Err() error {
	return g.err
}

// Apply calls the winning producer and returns its result. It fails with
// ErrNoMatch if no case won.
func (g *Guards[T, R]) Apply() (R, error) {
	var zero R
	if g.err != nil {
		return zero, g.err
	}
	producer, ok := g.winner.get()
	if !ok {
		return zero, ErrNoMatch
	}
	return producer(), nil
}

func constant[R any](v R) func() R {
	return func() R {
		return v
	}
}
