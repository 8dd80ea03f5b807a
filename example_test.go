package promise_test

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/veslav/promise"
)

func Example() {
	// Create an executor.
	var myExecutor promise.Executor

	// Set up an autorun function to run the executor automatically whenever
	// a continuation becomes runnable.
	// The best practice is to pass a function that does not block. See Example (Timers).
	myExecutor.Autorun(myExecutor.Run)

	// Chain continuations on an already-fulfilled promise.
	// The handlers still do not run inline; they are queued and the autorun
	// function drains them.
	promise.FulfilledOf(&myExecutor, 2).Then(func(v int) promise.Result[int] {
		return promise.Val(v * 3)
	}).Then(func(v int) promise.Result[int] {
		fmt.Println("result:", v)
		return nil
	})

	// Output:
	// result: 6
}

func Example_catch() {
	var myExecutor promise.Executor

	p := promise.RejectedOf[string](&myExecutor, errors.New("network down"))

	p.Then(func(v string) promise.Result[string] {
		fmt.Println("never printed")
		return nil
	}).Catch(func(err error) promise.Result[string] {
		fmt.Println("recovered:", err)
		return promise.Val("fallback")
	}).Then(func(v string) promise.Result[string] {
		fmt.Println("value:", v)
		return nil
	})

	myExecutor.Run()

	// Output:
	// recovered: network down
	// value: fallback
}

func Example_all() {
	var myExecutor promise.Executor

	ps := []*promise.Promise[int]{
		promise.FulfilledOf(&myExecutor, 1),
		promise.FulfilledOf(&myExecutor, 2),
		promise.FulfilledOf(&myExecutor, 3),
	}

	promise.All(&myExecutor, ps).Then(func(vs []int) promise.Result[[]int] {
		fmt.Println("all:", vs)
		return nil
	})

	myExecutor.Run()

	// Output:
	// all: [1 2 3]
}

func Example_coroutine() {
	var myExecutor promise.Executor

	var fulfill func(string)
	greeting := promise.New(&myExecutor, func(f func(string), _ func(error)) {
		fulfill = f
	})

	promise.Async(&myExecutor, func(co *promise.Coroutine) (string, error) {
		v, err := promise.Await(co, greeting)
		if err != nil {
			return "", err
		}
		return v + ", world", nil
	}).Then(func(v string) promise.Result[string] {
		fmt.Println(v)
		return nil
	})

	myExecutor.Run() // The coroutine starts and suspends at the await.
	fulfill("hello")
	myExecutor.Run() // The coroutine resumes and completes.

	// Output:
	// hello, world
}

// This example demonstrates producers settling promises from timer
// goroutines while the executor drains in a goroutine of its own.
func Example_timers() {
	var wg sync.WaitGroup // For keeping track of goroutines.

	var myExecutor promise.Executor

	myExecutor.Autorun(func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			myExecutor.Run()
		}()
	})

	after := func(d time.Duration, v string) *promise.Promise[string] {
		return promise.New(&myExecutor, func(fulfill func(string), _ func(error)) {
			wg.Add(1) // Keep track of timers too.
			time.AfterFunc(d, func() {
				defer wg.Done()
				fulfill(v)
			})
		})
	}

	winner := promise.Race(&myExecutor, []*promise.Promise[string]{
		after(100*time.Millisecond, "slow"),
		after(10*time.Millisecond, "fast"),
	})

	done := make(chan struct{})
	winner.Then(func(v string) promise.Result[string] {
		fmt.Println("winner:", v)
		close(done)
		return nil
	})

	<-done
	wg.Wait()

	// Output:
	// winner: fast
}
