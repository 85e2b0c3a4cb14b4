package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/domain"
	"github.com/nopkhun/restaurant-scheduling-sub000/internal/core/ports"
)

// BranchRepository reads workplace geofences from the branches collection.
// The collection is owned and written by the workplace-management system;
// this service only ever reads it.
type BranchRepository struct {
	db *mongo.Database
}

// NewBranchRepository creates a BranchRepository.
func NewBranchRepository(db *mongo.Database) ports.BranchRepository {
	return &BranchRepository{db: db}
}

// FindByID retrieves a branch and its geofence by branch ID.
func (r *BranchRepository) FindByID(ctx context.Context, id string) (*domain.Branch, error) {
	var branch domain.Branch
	err := r.db.Collection("branches").FindOne(ctx, bson.M{"_id": id}).Decode(&branch)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, domain.ErrBranchNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("find branch: %w", err)
	}
	return &branch, nil
}
