// Package fluent provides chainable combinators for conditional selection,
// function composition and multi-field validation.
//
// The builders replace if/else and switch ladders with a declarative chain of
// predicates and deferred results. A chain is built over one subject, then a
// single terminal call does the work:
//
//	label, err := fluent.GuardsOf[string](order).
//	    When(func(o Order) bool { return o.Total > 1000 }, "large").
//	    When(func(o Order) bool { return o.Total > 100 }, "medium").
//	    Otherwise("small").
//	    Apply()
//
// # Builders
//
//   - Guards: pick a value by predicate (first true case wins)
//   - Matcher: pick a value by equality with the subject
//   - Action: run a consumer of the subject, picked by predicate
//   - Runner: run a side effect, picked by predicate
//   - Decorator: compose transformations left to right
//   - Factory: create values from a table of keyed producers
//   - Validator: accumulate failure messages across checks
//
// # Resolution Rules
//
// Guards, Action and Runner evaluate each predicate as soon as the case is
// registered, against the subject. The result itself (a producer, consumer or
// side effect) is stored and only invoked by the terminal call.
//
// The first case whose predicate holds wins; every later case is dropped,
// whether its predicate holds or not. Otherwise claims the same winning slot.
// Registered last it is a fallback; registered early it pre-empts every case
// after it:
//
//	fluent.GuardsOf[string](7).
//	    Otherwise("default").
//	    When(func(n int) bool { return n > 5 }, "big").
//	    Apply() // "default"
//
// Matcher keys cases by value instead. Each distinct value keeps its first
// registration, and Otherwise registers under the subject's own value.
//
// When no case wins, the terminal call returns ErrNoMatch. There is no silent
// fallthrough to a zero value.
//
// # Factory
//
// Factory is the one reusable component. Register replaces earlier producers
// for the same key, RegisterIf registers only when a predicate accepts the key,
// and Create can be called any number of times:
//
//	f := fluent.FactoryFrom[Shape]("shapes").
//	    Register("circle", func() Shape { return &Circle{} }).
//	    Register("square", func() Shape { return &Square{} })
//
//	s, err := f.Create("circle")
//
// Unknown keys fail with an error wrapping ErrUnknownKey.
//
// # Hooks
//
// The library never logs. Factory accepts hooks as functional options so
// callers can attach their own logging or metrics:
//
//	f := fluent.FactoryFrom[Shape]("shapes",
//	    fluent.WithOnUnknownKey(func(key string) {
//	        logger.Warn("unknown shape", "key", key)
//	    }),
//	    fluent.WithOnCreate(func(key string, d time.Duration) {
//	        metrics.Timing("shapes.create", d, "key:"+key)
//	    }),
//	)
//
// Available hooks:
//   - WithOnRegister: Called after a producer is stored
//   - WithOnSkip: Called when RegisterIf rejects a key
//   - WithOnCreate: Called after a producer returns
//   - WithOnUnknownKey: Called when Create finds no producer
//
// Multiple hooks of the same type are called in order.
//
// # Validation
//
// A Validator runs checks against a subject and records a message for each
// one that fails. Field projects a value out of the subject; the check fails if
// that value is absent, whatever its predicate says:
//
//	v := fluent.ValidatorOf(person).
//	    Validate(fluent.Field(func(p Person) string { return p.FirstName }, notBlank), "first name is required").
//	    Validate(fluent.Field(func(p Person) int { return p.Age }, adult), "must be an adult")
//
// ThenOf moves the chain on to another subject while sharing the same Report,
// so one Execute call reports every failure of a record:
//
//	err := fluent.ThenOf(v, person.Address).
//	    Validate(fluent.Field(func(a *Address) string { return a.City }, notBlank), "city is required").
//	    Execute()
//
//	var verr *fluent.ValidationError
//	if errors.As(err, &verr) {
//	    for _, msg := range verr.Messages() {
//	        fmt.Println(msg)
//	    }
//	}
//
// # JSON Subjects
//
// Document wraps raw JSON so it can be the subject of any builder. HasFields
// and FieldEquals are predicates over documents and Path is a projection for
// Field, all backed by gjson paths:
//
//	doc, err := fluent.ParseDocument(raw)
//	kind, err := fluent.GuardsOf[string](doc).
//	    When(fluent.FieldEquals("source", "aws.s3"), "storage").
//	    When(fluent.HasFields("detail-type"), "event").
//	    Otherwise("unknown").
//	    Apply()
//
// # Errors
//
// A builder created from a nil subject records ErrNilSubject at
// construction. Err reports it immediately, registrations become no-ops, and
// the terminal call returns it. Validators are the exception: every check on
// a nil subject fails and records its message, so Execute still returns the
// messages gathered by the rest of the chain, and the error also matches
// ErrNilSubject. A Matcher whose subject holds an uncomparable value fails the
// same way with ErrUnhashableSubject. Errors returned by consumers and side
// effects pass through unchanged, and panics in caller functions are not
// recovered.
//
// # Thread Safety
//
// Guards, Matcher, Action, Runner and Validator are single-use builders and
// must not be shared between goroutines while being built. Decorator values
// are immutable. Factory is safe for concurrent Create calls once
// registration is complete.
package fluent
