// File: database/repository/service/crud.go
package serviceRepo

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

// ErrServiceNotFound is returned when no service matches the given ID.
var ErrServiceNotFound = errors.New("service not found")

func (r *mongoServiceRepo) Create(ctx context.Context, s *models.Service) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	s.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert service: %w", err)
	}
	return nil
}

func (r *mongoServiceRepo) GetByID(ctx context.Context, businessID, serviceID string) (*models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var s models.Service
	err := r.coll.FindOne(ctx, bson.M{"id": serviceID, "business_id": businessID}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrServiceNotFound
		}
		return nil, fmt.Errorf("failed to fetch service %s: %w", serviceID, err)
	}
	return &s, nil
}

func (r *mongoServiceRepo) ListByBusiness(ctx context.Context, businessID string) ([]models.Service, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cursor, err := r.coll.Find(ctx, bson.M{"business_id": businessID})
	if err != nil {
		return nil, fmt.Errorf("failed to list services for business %s: %w", businessID, err)
	}
	defer cursor.Close(ctx)

	var services []models.Service
	if err := cursor.All(ctx, &services); err != nil {
		return nil, fmt.Errorf("failed to decode services for business %s: %w", businessID, err)
	}
	return services, nil
}
