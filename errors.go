package fluent

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrNilSubject is returned by the terminal call of any builder that was
	// constructed from a nil subject.
	ErrNilSubject = errors.New("subject must not be nil")

	// ErrNoMatch is returned when no registered case resolved for the subject.
	ErrNoMatch = errors.New("no case matched the subject")

	// ErrUnknownKey is returned by Factory.Create for keys without a producer.
	ErrUnknownKey = errors.New("no producer registered")

	// ErrUnhashableSubject is returned when a Matcher subject holds a value
	// that cannot be compared, such as a slice stored in an interface.
	ErrUnhashableSubject = errors.New("subject is not comparable")
)

// unknownKey builds the Create failure, naming the offending key.
func unknownKey[K comparable](key K) error {
	return fmt.Errorf("%w for key: %v", ErrUnknownKey, key)
}

// checkSubject returns ErrNilSubject for nil pointers, interfaces, maps,
// slices, funcs and channels.
func checkSubject(v any) error {
	if isNil(v) {
		return ErrNilSubject
	}
	return nil
}

func isNil(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return rv.IsNil()
	default:
		return false
	}
}

// hashable reports whether v can be used as a map key without panicking.
// Interface-typed values satisfy comparable but may hold slices, maps or funcs.
func hashable(v any) bool {
	if v == nil {
		return true
	}
	return reflect.ValueOf(v).Comparable()
}
