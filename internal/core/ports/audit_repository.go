package ports

import (
	"context"
	"time"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
)

// AuditRecord is one persisted anti-spoofing outcome, kept for manual review.
type AuditRecord struct {
	ID           string                    `bson:"_id"`
	EmployeeID   string                    `bson:"employee_id"`
	BranchID     string                    `bson:"branch_id,omitempty"`
	Reading      domain.LocationReading    `bson:"reading"`
	Result       domain.AntiSpoofingResult `bson:"result"`
	CaptureError domain.CaptureError       `bson:"capture_error,omitempty"`
	CreatedAt    time.Time                 `bson:"created_at"`
}

// AuditRepository persists anti-spoofing outcomes for the review workflow.
type AuditRepository interface {
	Insert(ctx context.Context, rec *AuditRecord) error
	// ListByEmployee returns the most recent records for one employee,
	// newest first, capped at limit.
	ListByEmployee(ctx context.Context, employeeID string, limit int) ([]*AuditRecord, error)
}

// BranchRepository resolves branch IDs to their configured geofences. The
// registry is owned by the workplace collaborator; this engine only reads it.
type BranchRepository interface {
	FindByID(ctx context.Context, id string) (*domain.Branch, error)
}
