// Copyright (c) 2025 Sonic Operations Ltd
//
// Use of this software is governed by the Business Source License included
// in the LICENSE file and at soniclabs.com/bsl11.
//
// Change Date: 2028-4-16
//
// On the date above, in accordance with the Business Source License, use of
// this software will be governed by the GNU Lesser General Public License v3.

// Futures provide a simple abstraction for asynchronous computation results.
// A future is a placeholder for a value that may not yet be available. In this
// module, futures are handed out by pipelines folding many fragments into one,
// so that callers may start a fold and collect its outcome later.
//
// A Promise is used to fulfill a Future. The producer side typically looks as
// follows:
//
//	promise, future := future.Create[T]()
//	go func() {
//	   promise.Fulfill(someOperation())
//	}()
//	return future
//
// If the result is already available, use Immediate instead.
package future

// Promise represents the handle used to fulfill a Future.
type Promise[T any] struct {
	C chan<- T
}

// Future represents a placeholder for a value that will be available in the
// future. Futures can only be consumed once.
type Future[T any] struct {
	C <-chan T
}

// Create initializes a new Promise and Future pair.
func Create[T any]() (Promise[T], Future[T]) {
	ch := make(chan T, 1)
	return Promise[T]{C: ch}, Future[T]{C: ch}
}

// Immediate creates a Future that is already fulfilled with the given value.
func Immediate[T any](value T) Future[T] {
	ch := make(chan T, 1)
	ch <- value
	close(ch)
	return Future[T]{C: ch}
}

// Fulfill fulfills the Promise with the given value. A promise must be
// fulfilled exactly once.
func (p Promise[T]) Fulfill(value T) {
	p.C <- value
	close(p.C)
}

// Await blocks until the Future is fulfilled and returns the contained value.
func (f Future[T]) Await() T {
	return <-f.C
}
