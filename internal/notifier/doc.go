// Package notifier renders and dispatches the two emails produced by every
// accepted submission: an acknowledgment to the submitter and a detail report
// to the fixed administrative address.
//
// Both sends are issued concurrently and always run to completion; the
// operation succeeds only when both do. The notifier never returns an error —
// transport failures are folded into the Result value so callers decide the
// HTTP outcome without unwinding.
package notifier
