package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// ContactFormCollection is the collection holding contact submissions.
const ContactFormCollection = "contact_forms"

// ContactFormRepository appends contact messages to MongoDB.
type ContactFormRepository struct {
	collection *mongo.Collection
}

// NewContactFormRepository creates a Mongo-backed contact form repository.
func NewContactFormRepository(db *mongo.Database) *ContactFormRepository {
	return &ContactFormRepository{collection: db.Collection(ContactFormCollection)}
}

// Insert appends one contact form record. An ID is assigned when the caller
// left it empty.
func (r *ContactFormRepository) Insert(ctx context.Context, form ContactForm) error {
	if form.ID == "" {
		form.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, form); err != nil {
		return fmt.Errorf("insert contact form: %w", err)
	}
	return nil
}
