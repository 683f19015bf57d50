// File: database/repository/business/crud.go
package businessRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

// ErrBusinessNotFound is returned when no business matches the given ID.
var ErrBusinessNotFound = errors.New("business not found")

func (r *mongoBusinessRepo) Create(ctx context.Context, b *models.Business) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	now := time.Now()
	b.CreatedAt = now
	b.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to insert business: %w", err)
	}
	return nil
}

func (r *mongoBusinessRepo) GetByID(ctx context.Context, id string) (*models.Business, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var b models.Business
	err := r.coll.FindOne(ctx, bson.M{"id": id}).Decode(&b)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrBusinessNotFound
		}
		return nil, fmt.Errorf("failed to fetch business %s: %w", id, err)
	}
	return &b, nil
}

func (r *mongoBusinessRepo) Update(ctx context.Context, b *models.Business) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	b.UpdatedAt = time.Now()
	res, err := r.coll.ReplaceOne(ctx, bson.M{"id": b.ID}, b)
	if err != nil {
		return fmt.Errorf("failed to update business %s: %w", b.ID, err)
	}
	if res.MatchedCount == 0 {
		return ErrBusinessNotFound
	}
	return nil
}

func (r *mongoBusinessRepo) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return fmt.Errorf("failed to delete business %s: %w", id, err)
	}
	if res.DeletedCount == 0 {
		return ErrBusinessNotFound
	}
	return nil
}
