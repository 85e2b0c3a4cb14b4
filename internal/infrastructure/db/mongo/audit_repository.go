package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/ports"
)

const auditCollection = "verification_audit"

// AuditRepository persists anti-spoofing outcomes to the verification_audit
// collection for the manual-review workflow.
type AuditRepository struct {
	db *mongo.Database
}

// NewAuditRepository creates an AuditRepository.
func NewAuditRepository(db *mongo.Database) ports.AuditRepository {
	return &AuditRepository{db: db}
}

// Insert stores one audit record.
func (r *AuditRepository) Insert(ctx context.Context, rec *ports.AuditRecord) error {
	if _, err := r.db.Collection(auditCollection).InsertOne(ctx, rec); err != nil {
		return fmt.Errorf("insert audit record: %w", err)
	}
	return nil
}

// ListByEmployee returns the newest records for one employee, capped at limit.
func (r *AuditRepository) ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*ports.AuditRecord, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.db.Collection(auditCollection).Find(ctx, bson.M{"employee_id": employeeID}, opts)
	if err != nil {
		return nil, fmt.Errorf("list audit records: %w", err)
	}
	defer cursor.Close(ctx)

	var records []*ports.AuditRecord
	if err := cursor.All(ctx, &records); err != nil {
		return nil, fmt.Errorf("decode audit records: %w", err)
	}
	return records, nil
}
