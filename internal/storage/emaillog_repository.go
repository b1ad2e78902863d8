package storage

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// EmailLogCollection is the collection holding notification audit records.
const EmailLogCollection = "email_logs"

// EmailLogRepository appends notification audit records to MongoDB.
type EmailLogRepository struct {
	collection *mongo.Collection
}

// NewEmailLogRepository creates a Mongo-backed email log repository.
func NewEmailLogRepository(db *mongo.Database) *EmailLogRepository {
	return &EmailLogRepository{collection: db.Collection(EmailLogCollection)}
}

// Insert appends one audit record. An ID is assigned when the caller left it
// empty.
func (r *EmailLogRepository) Insert(ctx context.Context, entry EmailLog) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if _, err := r.collection.InsertOne(ctx, entry); err != nil {
		return fmt.Errorf("insert email log: %w", err)
	}
	return nil
}
