// File: database/repository/business/interface.go
package businessRepo

import (
	"context"

	"slotify/database"
	"slotify/models"
	"slotify/utils"

	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

// BusinessRepository defines methods to interact with tenant records.
type BusinessRepository interface {
	Create(ctx context.Context, b *models.Business) error
	GetByID(ctx context.Context, id string) (*models.Business, error)
	Update(ctx context.Context, b *models.Business) error
	Delete(ctx context.Context, id string) error
	ListIDs(ctx context.Context) ([]string, error)
}

type mongoBusinessRepo struct {
	coll *mongo.Collection
}

// NewMongoBusinessRepo constructs a new MongoDB BusinessRepository.
func NewMongoBusinessRepo() BusinessRepository {
	repo := &mongoBusinessRepo{
		coll: database.DB().Collection("businesses"),
	}
	if err := repo.EnsureIndexes(); err != nil {
		utils.GetLogger().Warn("failed to ensure business indexes", zap.Error(err))
	}
	return repo
}
