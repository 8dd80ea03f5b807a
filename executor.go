package promise

import (
	"log"
	"sync"
)

// An Executor is a single-threaded, cooperative task runner that decides
// when queued continuations execute.
//
// Whenever a [Promise] settles, or a handler is registered on an already
// settled Promise, the continuations involved are added into an internal
// FIFO queue. The Run method then pops and runs each of them from the queue
// until the queue is emptied.
// It is done in a single-threaded manner.
// If one continuation blocks, no other continuations can run.
// The best practice is not to block.
//
// Continuations run in the order they became runnable, never inline with
// the code that registered them or caused them to become runnable.
//
// Manually calling the Run method is usually not desired.
// One would instead use the Autorun method to set up an autorun function to
// calling the Run method automatically whenever a continuation becomes
// runnable. The Executor never calls the autorun function twice at the same
// time.
type Executor struct {
	mu          sync.Mutex
	q           queue[task]
	running     bool
	autorun     func()
	onRejection func(error)
}

// A task wraps one unit of deferred work, typically "settle a downstream
// promise using this handler and this input".
type task = func()

// Autorun sets up an autorun function to calling the Run method
// automatically whenever a continuation becomes runnable.
//
// One must pass a function that calls the Run method.
//
// With Autorun(e.Run), settling or registering from outside the executor
// drains the queue before the call returns. To guarantee that code outside
// the executor never observes a continuation running before its current
// code block completes, run the executor in its own goroutine, e.g.
// Autorun(func() { wg.Go(e.Run) }), or call Run explicitly.
func (e *Executor) Autorun(f func()) {
	e.autorun = f
}

// OnUnhandledRejection sets up a function to report rejected promises that
// never got a continuation registered on them by the time their settlement
// was processed.
// This is an observability hook; reporting is non-fatal and does not stop
// the executor.
//
// If no function is set, unhandled rejections are logged with the standard
// log package.
func (e *Executor) OnUnhandledRejection(f func(err error)) {
	e.onRejection = f
}

// Run pops and runs every continuation in the queue until the queue is
// emptied.
//
// Run must not be called twice at the same time.
func (e *Executor) Run() {
	e.mu.Lock()
	e.running = true

	for !e.q.Empty() {
		t := e.q.Pop()
		e.mu.Unlock()
		t()
		e.mu.Lock()
	}

	e.running = false
	e.mu.Unlock()
}

// enqueue adds t into the queue and triggers the autorun function if
// the executor is not already running.
//
// enqueue is safe for concurrent use.
func (e *Executor) enqueue(t task) {
	e.mu.Lock()
	autorun := e.wakeLocked()
	e.q.Push(t)
	e.mu.Unlock()

	if autorun != nil {
		autorun()
	}
}

// wakeLocked arranges for the queue to be drained.
// The caller must hold e.mu, push at least one task before releasing it,
// and call the returned function, if any, after releasing it.
func (e *Executor) wakeLocked() (autorun func()) {
	if !e.running && e.autorun != nil {
		e.running = true
		autorun = e.autorun
	}
	return autorun
}

func (e *Executor) reportRejection(err error) {
	if f := e.onRejection; f != nil {
		f(err)
		return
	}
	log.Printf("promise: unhandled rejection: %v", err)
}
