package fluent

import (
	"errors"
	"slices"
	"strings"

	"github.com/hashicorp/go-multierror"
)

// Report collects validation failures for one logical record. Every Validator
// bound to the same Report, through ThenOf or ValidatorWith, appends to it.
//
// A Report is owned by one validation chain and is not safe for concurrent
// use.
type Report struct {
	err      error
	failures *multierror.Error
}

// NewReport returns an empty Report.
func NewReport() *Report {
	return &Report{}
}

func (r *Report) fail(message string) {
	r.failures = multierror.Append(r.failures, errors.New(message))
}

// precondition records the first nil-subject failure of a validator in the
// chain. The failed validator's checks are still recorded as messages.
func (r *Report) precondition(err error) {
	if r.err == nil {
		r.err = err
	}
}

// Len returns the number of failures recorded so far.
func (r *Report) Len() int {
	if r.failures == nil {
		return 0
	}
	return len(r.failures.Errors)
}

// Messages returns the recorded failure messages in order.
func (r *Report) Messages() []string {
	if r.failures == nil {
		return nil
	}
	messages := make([]string, len(r.failures.Errors))
	for i, err := range r.failures.Errors {
		messages[i] = err.Error()
	}
	return messages
}

// Err returns nil when nothing failed and a *ValidationError otherwise. If a
// validator in the chain was built from a nil subject, the error also
// matches ErrNilSubject; with no recorded failures it is ErrNilSubject.
func (r *Report) Err() error {
	if r.Len() == 0 {
		return r.err
	}
	return &ValidationError{
		failures: &multierror.Error{Errors: slices.Clone(r.failures.Errors)},
		cause:    r.err,
	}
}

// ValidationError is the aggregate failure returned by Validator.Execute.
// It carries every failure message in the order the checks ran.
type ValidationError struct {
	failures *multierror.Error
	cause    error
}

// Messages returns every failure message in order.
func (e *ValidationError) Messages() []string {
	if e.failures == nil {
		return nil
	}
	messages := make([]string, len(e.failures.Errors))
	for i, err := range e.failures.Errors {
		messages[i] = err.Error()
	}
	return messages
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	messages := e.Messages()
	if len(messages) == 0 {
		return "validation failed"
	}
	return "validation failed: " + strings.Join(messages, "; ")
}

// Unwrap returns one error per failure message, followed by ErrNilSubject
// when a subject in the chain was nil.
func (e *ValidationError) Unwrap() []error {
	var errs []error
	if e.failures != nil {
		errs = e.failures.WrappedErrors()
	}
	if e.cause != nil {
		errs = append(slices.Clip(errs), e.cause)
	}
	return errs
}
