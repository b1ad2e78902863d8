// Package async provides a small generic Future for running a function in its
// own goroutine and joining on its result.
//
// A Future is obtained from Async, which starts the supplied function
// immediately, and resolved with Await, which blocks until the function
// returns. Futures are awaited unconditionally: a failure in one never
// cancels another, which is exactly the join semantics the notification
// fan-out relies on.
package async
