package promise

// Result is the type of the return value of promise handlers.
// It determines the outcome of the downstream promise produced by
// a chaining call:
//
//   - [Val] fulfills the downstream promise with a value;
//   - [Err] rejects it with an error;
//   - returning a [Promise] defers the downstream settlement until that
//     promise settles, adopting its outcome;
//   - returning nil fulfills the downstream promise with the zero value.
//
// A Promise implements Result, which is what makes the third form work
// without any special syntax.
type Result[T any] interface {
	// Val returns the fulfillment value, or the zero value if this
	// result is not fulfilled.
	Val() T

	// Err returns the rejection error, or nil if this result is not
	// rejected.
	Err() error

	// State returns the state this result represents.
	State() State
}

// Val returns a fulfilled [Result] carrying v.
func Val[T any](v T) Result[T] {
	return valResult[T]{v: v}
}

// Err returns a rejected [Result] carrying err.
// If err is nil, the result is fulfilled with the zero value instead.
func Err[T any](err error) Result[T] {
	if err == nil {
		return valResult[T]{}
	}
	return errResult[T]{err: err}
}

type valResult[T any] struct{ v T }

func (r valResult[T]) Val() T       { return r.v }
func (r valResult[T]) Err() error   { return nil }
func (r valResult[T]) State() State { return Fulfilled }

type errResult[T any] struct{ err error }

func (r errResult[T]) Val() (v T)   { return v }
func (r errResult[T]) Err() error   { return r.err }
func (r errResult[T]) State() State { return Rejected }
