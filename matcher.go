package fluent

// Matcher selects a value by exact equality with the subject. Any number of
// distinct values can be registered; the first registration for a given value
// wins and later ones for the same value are dropped.
//
// Otherwise registers under the subject's own value, so it loses to an earlier
// When for the subject and wins over a later one:
//
//	label, err := fluent.MatcherOf[string](code).
//	    When(200, "ok").
//	    When(404, "not found").
//	    Otherwise("unexpected").
//	    Apply()
//
// Matcher is a single-use builder and is not safe for concurrent use.
type Matcher[T comparable, R any] struct {
	subject T
	err     error
	cases   table[T, func() R]
}

// MatcherOf creates a Matcher over subject. The result type is given
// explicitly and the subject type is inferred. A subject whose dynamic value
// cannot be compared fails with ErrUnhashableSubject.
func MatcherOf[R any, T comparable](subject T) *Matcher[T, R] {
	err := checkSubject(subject)
	if err == nil && !hashable(subject) {
		err = ErrUnhashableSubject
	}
	return &Matcher[T, R]{
		subject: subject,
		err:     err,
		cases:   newTable[T, func() R](),
	}
}

// When registers value as the result for subjects equal to v.
func (m *Matcher[T, R]) When(v T, value R) *Matcher[T, R] {
	return m.WhenFunc(v, constant(value))
}

// WhenFunc registers a producer as the result for subjects equal to v.
// Values that cannot be compared never equal the subject and are ignored.
func (m *Matcher[T, R]) WhenFunc(v T, producer func() R) *Matcher[T, R] {
	if m.err != nil || !hashable(v) {
		return m
	}
	m.cases.putIfAbsent(v, producer)
	return m
}

// Otherwise registers value as the result for the subject itself.
func (m *Matcher[T, R]) Otherwise(value R) *Matcher[T, R] {
	return m.WhenFunc(m.subject, constant(value))
}

// OtherwiseFunc registers a producer as the result for the subject itself.
func (m *Matcher[T, R]) OtherwiseFunc(producer func() R) *Matcher[T, R] {
	return m.WhenFunc(m.subject, producer)
}

// Len returns the number of distinct values registered.
func (m *Matcher[T, R]) Len() int {
	return m.cases.len()
}

// Err returns the construction error, if any.
func (m *Matcher[T, R]) Err() error {
	return m.err
}

// Apply calls the producer registered for the subject and returns its result.
// It fails with ErrNoMatch if nothing was registered for the subject.
func (m *Matcher[T, R]) Apply() (R, error) {
	var zero R
	if m.err != nil {
		return zero, m.err
	}
	producer, ok := m.cases.get(m.subject)
	if !ok {
		return zero, ErrNoMatch
	}
	return producer(), nil
}
