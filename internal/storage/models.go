package storage

import "time"

// ContactForm is one submitted contact message, stored raw: the persisted
// fields are exactly what the submitter posted, before any HTML escaping.
type ContactForm struct {
	ID        string    `bson:"_id,omitempty"`
	Name      string    `bson:"name"`
	Email     string    `bson:"email"`
	Subject   string    `bson:"subject"`
	Message   string    `bson:"message"`
	CreatedAt time.Time `bson:"createdAt"`
}

// EmailLog is one notification dispatch attempt, success or failure.
// Type holds the submission kind; JournalTitle is set for kinds that carry a
// title worth indexing on.
type EmailLog struct {
	ID           string    `bson:"_id,omitempty"`
	Type         string    `bson:"type"`
	UserEmail    string    `bson:"userEmail,omitempty"`
	AdminEmail   string    `bson:"adminEmail,omitempty"`
	JournalTitle string    `bson:"journalTitle,omitempty"`
	SentAt       time.Time `bson:"sentAt"`
	Success      bool      `bson:"success"`
	Error        string    `bson:"error,omitempty"`
}
