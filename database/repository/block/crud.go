// File: database/repository/block/crud.go
package blockRepo

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"slotify/models"
)

func (r *mongoBlockRepo) Create(ctx context.Context, b *models.Block) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if b.ID == "" {
		b.ID = uuid.New().String()
	}
	b.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, b); err != nil {
		return fmt.Errorf("failed to insert block: %w", err)
	}
	return nil
}

func (r *mongoBlockRepo) Delete(ctx context.Context, businessID, blockID string) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	res, err := r.coll.DeleteOne(ctx, bson.M{"id": blockID, "business_id": businessID})
	if err != nil {
		return fmt.Errorf("failed to delete block %s: %w", blockID, err)
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}

func (r *mongoBlockRepo) ListInRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Block, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	// Half-open overlap with [from, to): block.start < to AND block.end > from.
	filter := bson.M{
		"business_id": businessID,
		"start":       bson.M{"$lt": to},
		"end":         bson.M{"$gt": from},
	}

	cursor, err := r.coll.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query blocks for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var blocks []models.Block
	if err := cursor.All(ctx, &blocks); err != nil {
		return nil, fmt.Errorf("failed to decode blocks for business %s: %w", businessID, err)
	}
	return blocks, nil
}
