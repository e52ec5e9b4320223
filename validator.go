package fluent

import (
	"reflect"
)

// Check is a single validation over a subject, usually built with Field.
type Check[T any] func(T) bool

// Field projects a value out of the subject and tests it with predicate.
// The check fails when the projected value is absent, whatever the predicate
// says. Absent means a nil pointer, interface, map, slice, func or channel, an
// empty string, slice or map, or a value whose Exists method returns false.
//
//	fluent.Field(func(p Person) string { return p.FirstName }, func(s string) bool {
//	    return len(s) <= 32
//	})
func Field[T, F any](projection func(T) F, predicate func(F) bool) Check[T] {
	return func(subject T) bool {
		field := projection(subject)
		return present(field) && predicate(field)
	}
}

// Validator checks one subject and records a message for every failed check
// in a shared Report. Checks never fail by themselves; Execute reports the
// outcome of the whole chain.
//
//	err := fluent.ValidatorOf(person).
//	    Validate(fluent.Field(firstName, notBlank), "first name is required").
//	    Validate(fluent.Field(age, adult), "must be an adult").
//	    Execute()
//
// Validator is not safe for concurrent use.
type Validator[T any] struct {
	subject T
	err     error
	report  *Report
}

// ValidatorOf creates a Validator over subject with a new Report.
func ValidatorOf[T any](subject T) *Validator[T] {
	return ValidatorWith(NewReport(), subject)
}

// ValidatorWith creates a Validator over subject that records into report.
func ValidatorWith[T any](report *Report, subject T) *Validator[T] {
	v := &Validator[T]{subject: subject, err: checkSubject(subject), report: report}
	if v.err != nil {
		report.precondition(v.err)
	}
	return v
}

// ThenOf returns a Validator over other that records into the same Report as
// v, so failures for several parts of one record are reported together.
//
// It is a function rather than a method because the subject type changes.
func ThenOf[U, T any](v *Validator[T], other U) *Validator[U] {
	return ValidatorWith(v.report, other)
}

// Validate records message when check does not hold for the subject. A nil
// subject fails every check without running it.
func (v *Validator[T]) Validate(check Check[T], message string) *Validator[T] {
	if v.err != nil || !check(v.subject) {
		v.report.fail(message)
	}
	return v
}

// That records message when p does not hold for the subject itself.
func (v *Validator[T]) That(p Predicate[T], message string) *Validator[T] {
	return v.Validate(Check[T](p), message)
}

// Report returns the Report shared by this validation chain.
func (v *Validator[T]) Report() *Report {
	return v.report
}

// Err returns ErrNilSubject when the validator was built from a nil subject.
func (v *Validator[T]) Err() error {
	return v.err
}

// Execute returns nil when every check in the chain passed. Otherwise it
// returns a *ValidationError carrying all messages in order. When a validator
// in the chain was built from a nil subject the error also matches
// ErrNilSubject, and is ErrNilSubject itself if no check was recorded.
func (v *Validator[T]) Execute() error {
	return v.report.Err()
}

// exister is implemented by values that know whether they are present, such
// as gjson.Result.
type exister interface {
	Exists() bool
}

func present(v any) bool {
	if isNil(v) {
		return false
	}
	if e, ok := v.(exister); ok {
		return e.Exists()
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String, reflect.Slice, reflect.Map:
		return rv.Len() > 0
	default:
		return true
	}
}
