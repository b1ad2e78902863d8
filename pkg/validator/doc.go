// Package validator runs ordered validation rules against form input and
// reports the first failure as a value, never as a panic.
//
// Rules carry the exact user-visible message returned to the client, so
// callers compose per-form rule sets and surface the result directly:
//
//	err := validator.Apply(
//		validator.Rule{Check: validator.Required(name, email), Message: "All fields are required."},
//		validator.Rule{Check: validator.ValidEmail(email), Message: "Invalid email address."},
//	)
package validator
