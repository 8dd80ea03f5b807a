package promise

// A Promise is a handle representing a value or an error that becomes
// available after an asynchronous operation completes.
//
// A Promise starts out Pending and settles exactly once, to either
// Fulfilled with a value or Rejected with an error. Settling an already
// settled Promise is a no-op.
//
// Handlers registered with Then, Catch, Finally or Register never run
// inline; they are queued on the promise's [Executor] and run when the
// queue is drained, in registration order.
//
// A Promise must not be shared by more than one [Executor].
type Promise[T any] struct {
	exec *Executor

	// The fields below are guarded by exec's mutex.
	// state, value, err and waiters form a single unit of mutation:
	// settle and subscribe are the only operations that touch them.
	state   State
	value   T
	err     error
	waiters []func(State, T, error)
	handled bool
}

// New creates a pending [Promise] bound to e and invokes resolver
// synchronously with the two settlement capabilities.
//
// Exactly one of fulfill and reject has effect; subsequent calls from
// either are ignored. The capabilities may be retained and called later,
// from any goroutine.
//
// If resolver panics before settling the promise, the promise is rejected
// with a [PanicError].
func New[T any](e *Executor, resolver func(fulfill func(T), reject func(error))) *Promise[T] {
	if resolver == nil {
		panic("promise: nil resolver")
	}
	p := &Promise[T]{exec: e}
	if pe := catch(func() { resolver(p.fulfill, p.reject) }); pe != nil {
		p.reject(pe)
	}
	return p
}

// FulfilledOf creates an already-fulfilled [Promise] carrying v.
func FulfilledOf[T any](e *Executor, v T) *Promise[T] {
	p := &Promise[T]{exec: e}
	p.fulfill(v)
	return p
}

// RejectedOf creates an already-rejected [Promise] carrying err.
func RejectedOf[T any](e *Executor, err error) *Promise[T] {
	p := &Promise[T]{exec: e}
	p.reject(err)
	return p
}

// Resolve creates a [Promise] settled according to res.
// If res is itself a Promise, the returned promise adopts its outcome once
// it settles; it never wraps a promise in a promise.
func Resolve[T any](e *Executor, res Result[T]) *Promise[T] {
	p := &Promise[T]{exec: e}
	p.resolve(res)
	return p
}

// State returns the current state of p.
//
// State is safe for concurrent use, but without further synchronization
// a Pending result may be stale by the time it is observed.
func (p *Promise[T]) State() State {
	e := p.exec
	e.mu.Lock()
	s := p.state
	e.mu.Unlock()
	return s
}

// Val returns the fulfillment value of p, or the zero value if p is not
// fulfilled. Together with Err and State it makes a Promise usable as
// a [Result].
func (p *Promise[T]) Val() T {
	e := p.exec
	e.mu.Lock()
	v := p.value
	e.mu.Unlock()
	return v
}

// Err returns the rejection error of p, or nil if p is not rejected.
func (p *Promise[T]) Err() error {
	e := p.exec
	e.mu.Lock()
	err := p.err
	e.mu.Unlock()
	return err
}

// Register registers a pair of handlers on p and returns the downstream
// promise they feed. Either handler may be nil, in which case the matching
// outcome passes through to the downstream promise unchanged.
//
// Register returns immediately. If p is already settled, the matching
// handler is scheduled now; otherwise it is scheduled when p settles.
// The handler's return value determines the downstream outcome; see
// [Result]. A panic inside a handler rejects the downstream promise with
// a [PanicError].
func (p *Promise[T]) Register(onFulfilled func(v T) Result[T], onRejected func(err error) Result[T]) *Promise[T] {
	next := &Promise[T]{exec: p.exec}
	p.subscribe(func(s State, v T, err error) {
		switch s {
		case Fulfilled:
			if onFulfilled == nil {
				next.fulfill(v)
				return
			}
			next.runHandler(func() Result[T] { return onFulfilled(v) })
		case Rejected:
			if onRejected == nil {
				next.reject(err)
				return
			}
			next.runHandler(func() Result[T] { return onRejected(err) })
		}
	})
	return next
}

// Then registers a fulfillment handler on p and returns the downstream
// promise. A rejection of p passes through to the downstream promise
// unchanged.
func (p *Promise[T]) Then(onFulfilled func(v T) Result[T]) *Promise[T] {
	if onFulfilled == nil {
		panic("promise: nil handler")
	}
	return p.Register(onFulfilled, nil)
}

// Catch registers a rejection handler on p and returns the downstream
// promise. A fulfillment of p passes through unchanged; a rejection is
// caught here and the handler's return value determines the downstream
// outcome, which puts the chain back on the fulfilled track unless the
// handler returns another error.
func (p *Promise[T]) Catch(onRejected func(err error) Result[T]) *Promise[T] {
	if onRejected == nil {
		panic("promise: nil handler")
	}
	return p.Register(nil, onRejected)
}

// Finally registers f to run once p settles, regardless of the outcome,
// and returns a downstream promise that repeats p's outcome unchanged.
// If f panics, the downstream promise is rejected with a [PanicError]
// instead.
func (p *Promise[T]) Finally(f func()) *Promise[T] {
	if f == nil {
		panic("promise: nil handler")
	}
	next := &Promise[T]{exec: p.exec}
	p.subscribe(func(s State, v T, err error) {
		if pe := catch(f); pe != nil {
			next.reject(pe)
			return
		}
		if s == Rejected {
			next.reject(err)
		} else {
			next.fulfill(v)
		}
	})
	return next
}

// subscribe registers f to be scheduled exactly once with p's settlement,
// and marks p as handled.
// If p is already settled, f is scheduled now; otherwise it is appended to
// the waiters list, which is drained in registration order when p settles.
func (p *Promise[T]) subscribe(f func(State, T, error)) {
	e := p.exec
	e.mu.Lock()
	p.handled = true
	if p.state == Pending {
		p.waiters = append(p.waiters, f)
		e.mu.Unlock()
		return
	}
	s, v, err := p.state, p.value, p.err
	autorun := e.wakeLocked()
	e.q.Push(func() { f(s, v, err) })
	e.mu.Unlock()

	if autorun != nil {
		autorun()
	}
}

func (p *Promise[T]) fulfill(v T) {
	p.settle(Fulfilled, v, nil)
}

func (p *Promise[T]) reject(err error) {
	if err == nil {
		err = ErrNilRejection
	}
	var zero T
	p.settle(Rejected, zero, err)
}

// settle performs the one-way transition of p. Settling an already settled
// promise is a no-op; re-entrant settlement attempts from a handler that is
// itself resolving p are discarded the same way.
//
// settle is safe for concurrent use.
func (p *Promise[T]) settle(s State, v T, err error) {
	e := p.exec
	e.mu.Lock()
	if p.state != Pending {
		e.mu.Unlock()
		return
	}
	p.state, p.value, p.err = s, v, err

	waiters := p.waiters
	p.waiters = nil

	var autorun func()
	if len(waiters) != 0 || s == Rejected && !p.handled {
		autorun = e.wakeLocked()
		for _, w := range waiters {
			w := w
			e.q.Push(func() { w(s, v, err) })
		}
		if s == Rejected && !p.handled {
			// No continuation has been registered on p so far.
			// Schedule a check behind everything already queued; if p is
			// still unhandled by then, report it.
			e.q.Push(func() {
				e.mu.Lock()
				handled := p.handled
				e.mu.Unlock()
				if !handled {
					e.reportRejection(err)
				}
			})
		}
	}
	e.mu.Unlock()

	if autorun != nil {
		autorun()
	}
}

// runHandler runs f and settles p according to the [Result] it returns.
// A panic in f rejects p with a [PanicError].
func (p *Promise[T]) runHandler(f func() Result[T]) {
	var res Result[T]
	if pe := catch(func() { res = f() }); pe != nil {
		p.reject(pe)
		return
	}
	p.resolve(res)
}

// resolve settles p according to res. If res is another promise, p's
// settlement is deferred until that promise settles, and p adopts its
// outcome; a promise never wraps a promise.
func (p *Promise[T]) resolve(res Result[T]) {
	if res == nil {
		var zero T
		p.fulfill(zero)
		return
	}
	if inner, ok := res.(*Promise[T]); ok {
		if inner == nil {
			panic("promise: nil promise as result")
		}
		if inner == p {
			p.reject(ErrSelfResolution)
			return
		}
		inner.subscribe(func(s State, v T, err error) {
			if s == Rejected {
				p.reject(err)
			} else {
				p.fulfill(v)
			}
		})
		return
	}
	if err := res.Err(); err != nil {
		p.reject(err)
		return
	}
	p.fulfill(res.Val())
}
