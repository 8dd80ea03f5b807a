// Package promise implements deferred values with single-threaded,
// cooperative scheduling.
//
// A [Promise] is a handle for a value or an error that becomes available
// after an asynchronous operation completes. It settles exactly once,
// to either a value or an error, and continuations chained on it run later,
// on an [Executor], never inline with the code that registered them.
//
// # Executors
//
// All continuation and combinator logic runs on an [Executor], a
// single-threaded FIFO task queue. One can create as many executors as
// they like; every promise is bound to one.
//
// Settling a promise is safe from any goroutine; what runs single-threaded
// is the continuations. The [Executor.Run] method drains the queue, and
// [Executor.Autorun] can wire draining to happen automatically whenever
// work becomes runnable.
//
// Be aware that there is no back pressure. The queue is unbounded; if
// settlement outruns execution, an Executor can consume a lot of memory
// over time.
//
// # Chaining
//
// [Promise.Then], [Promise.Catch], [Promise.Finally] and the two-handler
// [Promise.Register] each return a new downstream promise whose outcome is
// computed from the handler's return value, a [Result]:
//
//	p.Then(func(v int) promise.Result[int] {
//		return promise.Val(v + 1)
//	})
//
// Returning [Val] fulfills the downstream promise, returning [Err] rejects
// it, and returning another [Promise] defers the downstream settlement to
// that promise's eventual outcome. A missing handler passes the source
// outcome through unchanged, which is how rejections travel down a chain
// until some [Promise.Catch] converts them back to the fulfilled track.
// A panic in a handler rejects the downstream promise with a [PanicError];
// it never escapes to crash the executor.
//
// # Combinators
//
// [All], [AllSettled], [Race] and [Any] compose a slice of promises into
// one aggregate promise. Result ordering always matches input ordering,
// independent of settlement arrival order. Losing inputs are not
// cancelled; their later settlements are simply ignored for the
// aggregate's outcome.
//
// # Coroutines
//
// [Async] and [Await] provide a sequential view: code that suspends at
// each promise and resumes in order, with rejections surfacing as returned
// errors at the suspension point. A [Coroutine] is plain sugar over
// continuation registration and runs in lockstep with its executor, so it
// obeys the same single-threaded discipline as everything else.
//
// # Unhandled Rejections
//
// A promise that rejects with no continuation ever registered on it is
// reported through the hook set with [Executor.OnUnhandledRejection], or
// the standard log package if no hook is set. Reporting is an
// observability aid, not an error path: registering a handler later still
// works.
package promise
