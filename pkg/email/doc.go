// Package email provides a provider-agnostic interface for sending
// transactional emails.
//
// The package is built around the EmailSender interface so the delivery
// provider can be swapped without touching application code:
//
//   - PostmarkClient for production delivery
//   - DevSender for local development (saves emails to disk)
//
// Both implementations validate SendEmailParams before sending and convert
// provider failures into the package's sentinel errors.
package email
