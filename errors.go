package promise

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNilRejection replaces a nil error passed to a reject capability, so
// that a rejected promise always carries a non-nil error.
var ErrNilRejection = errors.New("promise: rejected with nil error")

// ErrSelfResolution is the rejection error of a promise that was resolved
// with itself. A promise cannot adopt its own outcome.
var ErrSelfResolution = errors.New("promise: chaining cycle detected")

// A PanicError is the rejection error of a promise whose handler or
// resolver panicked. It carries the panic value and the stack trace
// captured at the point of the panic.
type PanicError struct {
	Value any
	Stack []byte
}

func (e *PanicError) Error() string {
	return fmt.Sprintf("promise: panic: %v", e.Value)
}

// Unwrap returns the panic value if it is an error, and nil otherwise.
func (e *PanicError) Unwrap() error {
	if err, ok := e.Value.(error); ok {
		return err
	}
	return nil
}

// An AggregateError is the rejection error of a promise returned by [Any]
// when every input promise rejects. Errors holds the individual rejection
// errors in input order.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "promise: no promises to fulfill"
	}
	var b strings.Builder
	b.WriteString("promise: all promises rejected: ")
	for i, err := range e.Errors {
		if i != 0 {
			b.WriteString("; ")
		}
		b.WriteString(err.Error())
	}
	return b.String()
}

func (e *AggregateError) Unwrap() []error {
	return e.Errors
}
