// File: database/repository/business/queries.go
package businessRepo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// ListIDs returns the IDs of every business. The reminder scan fans out one
// task per returned ID.
func (r *mongoBusinessRepo) ListIDs(ctx context.Context) ([]string, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	opts := options.Find().SetProjection(bson.M{"id": 1, "_id": 0})
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list business ids: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID string `bson:"id"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode business ids: %w", err)
	}

	ids := make([]string, len(docs))
	for i, d := range docs {
		ids[i] = d.ID
	}
	return ids, nil
}
