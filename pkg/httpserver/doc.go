// Package httpserver wraps net/http.Server with graceful shutdown, signal
// handling and structured logging.
//
// Run blocks until the context is canceled, an interrupt signal arrives, or
// the listener fails; in the first two cases in-flight requests are drained
// within the configured shutdown timeout before Run returns.
package httpserver
