package promise

// A Settlement is the tagged outcome of one input promise, as reported by
// [AllSettled]. Value is meaningful when State is Fulfilled; Err when State
// is Rejected.
type Settlement[T any] struct {
	State State
	Value T
	Err   error
}

// All returns a promise that fulfills with the values of all promises in
// ps, in input order, once every one of them fulfills.
//
// The first rejection among the inputs rejects the returned promise with
// that error; later settlements of the remaining inputs are ignored for
// the aggregate's outcome, but the inputs themselves still run to
// completion. An empty input fulfills immediately with an empty slice.
func All[T any](e *Executor, ps []*Promise[T]) *Promise[[]T] {
	q := &Promise[[]T]{exec: e}
	if len(ps) == 0 {
		q.fulfill([]T{})
		return q
	}
	results := make([]T, len(ps))
	remaining := len(ps)
	for i, p := range ps {
		i := i
		p.subscribe(func(s State, v T, err error) {
			if s == Rejected {
				q.reject(err)
				return
			}
			results[i] = v
			if remaining--; remaining == 0 {
				q.fulfill(results)
			}
		})
	}
	return q
}

// AllSettled returns a promise that fulfills once every promise in ps has
// settled, with one [Settlement] per input, in input order.
// It never rejects. An empty input fulfills immediately with an empty
// slice.
func AllSettled[T any](e *Executor, ps []*Promise[T]) *Promise[[]Settlement[T]] {
	q := &Promise[[]Settlement[T]]{exec: e}
	if len(ps) == 0 {
		q.fulfill([]Settlement[T]{})
		return q
	}
	results := make([]Settlement[T], len(ps))
	remaining := len(ps)
	for i, p := range ps {
		i := i
		p.subscribe(func(s State, v T, err error) {
			results[i] = Settlement[T]{State: s, Value: v, Err: err}
			if remaining--; remaining == 0 {
				q.fulfill(results)
			}
		})
	}
	return q
}

// Race returns a promise that settles identically to whichever promise in
// ps settles first, fulfillment or rejection alike. Later settlements are
// ignored.
//
// An empty input returns a promise that never settles.
func Race[T any](e *Executor, ps []*Promise[T]) *Promise[T] {
	q := &Promise[T]{exec: e}
	for _, p := range ps {
		p.subscribe(func(s State, v T, err error) {
			if s == Rejected {
				q.reject(err)
			} else {
				q.fulfill(v)
			}
		})
	}
	return q
}

// Any returns a promise that fulfills with the value of the first promise
// in ps to fulfill, ignoring rejections. If every input rejects, it rejects
// with an [AggregateError] carrying the individual errors in input order.
//
// An empty input rejects immediately with an empty [AggregateError].
func Any[T any](e *Executor, ps []*Promise[T]) *Promise[T] {
	q := &Promise[T]{exec: e}
	if len(ps) == 0 {
		q.reject(&AggregateError{})
		return q
	}
	errs := make([]error, len(ps))
	remaining := len(ps)
	for i, p := range ps {
		i := i
		p.subscribe(func(s State, v T, err error) {
			if s == Fulfilled {
				q.fulfill(v)
				return
			}
			errs[i] = err
			if remaining--; remaining == 0 {
				q.reject(&AggregateError{Errors: errs})
			}
		})
	}
	return q
}
