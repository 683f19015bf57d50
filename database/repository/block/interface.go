// File: database/repository/block/interface.go
package blockRepo

import (
	"context"
	"time"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// BlockRepository defines methods to interact with ad-hoc unavailability blocks.
type BlockRepository interface {
	Create(ctx context.Context, b *models.Block) error
	Delete(ctx context.Context, businessID, blockID string) error
	// ListInRange returns every block for the business that overlaps
	// [from, to), regardless of type or professional scoping.
	ListInRange(ctx context.Context, businessID string, from, to time.Time) ([]models.Block, error)
}

type mongoBlockRepo struct {
	coll *mongo.Collection
}

// NewMongoBlockRepo constructs a new MongoDB BlockRepository.
func NewMongoBlockRepo() BlockRepository {
	return &mongoBlockRepo{
		coll: database.DB().Collection("blocks"),
	}
}
