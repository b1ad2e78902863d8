// Package sanitizer escapes untrusted user input for safe embedding in the
// HTML bodies of outbound emails.
//
// The escape table is fixed by the notification templates: the five
// HTML-significant characters are replaced with their entities and newlines
// become <br> tags so that multi-line form input keeps its line structure in
// the rendered message.
package sanitizer
