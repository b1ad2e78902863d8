// Package storage persists intake records in MongoDB: contact form messages
// in the contact_forms collection and notification audit entries in
// email_logs. Both collections are append-only; nothing in the service
// updates or deletes a record once written.
package storage
