package promise

// A Coroutine is a sequential view over a chain of promises: an execution
// of code that can suspend at any promise it holds and resume with that
// promise's outcome once available.
//
// A coroutine is backed by a goroutine, but it runs in lockstep with its
// [Executor]: while coroutine code runs, the executor waits, and while the
// coroutine is suspended, the executor is free to run other continuations.
// Coroutine code therefore never runs concurrently with executor tasks.
// Each suspension point is an ordinary continuation registration; there is
// no new primitive underneath.
//
// A Coroutine must not be shared by more than one [Executor], and [Await]
// must only be passed promises bound to the coroutine's executor.
type Coroutine struct {
	exec   *Executor
	resume chan struct{} // executor side hands control to the coroutine
	yield  chan struct{} // coroutine hands control back to the executor
}

// Executor returns the executor that runs co.
func (co *Coroutine) Executor() *Executor {
	return co.exec
}

// Async runs f as a [Coroutine] on e and returns a promise for its result.
//
// f starts when the executor drains its queue, not inline with the caller.
// When f returns, the returned promise fulfills with its value, or rejects
// with its error if that is non-nil. If f panics, the promise rejects with
// a [PanicError].
//
// If f awaits a promise that never settles, the backing goroutine leaks.
func Async[T any](e *Executor, f func(co *Coroutine) (T, error)) *Promise[T] {
	if f == nil {
		panic("promise: nil function")
	}
	p := &Promise[T]{exec: e}
	co := &Coroutine{
		exec:   e,
		resume: make(chan struct{}),
		yield:  make(chan struct{}),
	}
	e.enqueue(func() {
		go func() {
			var v T
			var err error
			if pe := catch(func() { v, err = f(co) }); pe != nil {
				err = pe
			}
			if err != nil {
				p.reject(err)
			} else {
				p.fulfill(v)
			}
			co.yield <- struct{}{}
		}()
		<-co.yield
	})
	return p
}

// Await suspends co until p settles, yielding control back to the
// executor. It resumes with p's value once p fulfills, or with p's error
// if p rejects, as if the rejection had been raised at the suspension
// point.
//
// Await must only be called from within co's function. Promises awaited
// one after another, each depending on the previous result, run
// sequentially; promises whose work was already started before awaiting
// run concurrently.
func Await[T any](co *Coroutine, p *Promise[T]) (T, error) {
	var (
		value T
		err   error
	)
	p.subscribe(func(s State, v T, e error) {
		value, err = v, e
		co.resume <- struct{}{}
		<-co.yield
	})
	co.yield <- struct{}{}
	<-co.resume
	return value, err
}
