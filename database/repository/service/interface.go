// File: database/repository/service/interface.go
package serviceRepo

import (
	"context"

	"slotify/database"
	"slotify/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ServiceRepository defines methods to interact with service offerings.
type ServiceRepository interface {
	Create(ctx context.Context, s *models.Service) error
	GetByID(ctx context.Context, businessID, serviceID string) (*models.Service, error)
	ListByBusiness(ctx context.Context, businessID string) ([]models.Service, error)
}

type mongoServiceRepo struct {
	coll *mongo.Collection
}

// NewMongoServiceRepo constructs a new MongoDB ServiceRepository.
func NewMongoServiceRepo() ServiceRepository {
	return &mongoServiceRepo{
		coll: database.DB().Collection("services"),
	}
}
