// internal/store/mongostore/indexes.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

func slugIndex() mongo.IndexModel {
	return mongo.IndexModel{
		Keys: bson.D{{Key: "slug", Value: 1}},
		Options: options.Index().
			SetName("slug_unique").
			SetUnique(true).
			SetPartialFilterExpression(hasSlugFilter()),
	}
}

// EnsureIndexes creates the unique and lookup indexes. It is idempotent.
func (s *Store) EnsureIndexes(ctx context.Context) error {
	plan := map[string][]mongo.IndexModel{
		productsCollection: {
			slugIndex(),
			{Keys: bson.D{{Key: "category_id", Value: 1}, {Key: "is_active", Value: 1}}},
			{Keys: bson.D{{Key: "created_at", Value: -1}}},
		},
		categoriesCollection: {
			slugIndex(),
			{Keys: bson.D{{Key: "sort_order", Value: 1}, {Key: "name", Value: 1}}},
		},
		redirectsCollection: {
			{Keys: bson.D{{Key: "entity_type", Value: 1}, {Key: "from_slug", Value: 1}, {Key: "is_active", Value: 1}}},
			{Keys: bson.D{{Key: "entity_type", Value: 1}, {Key: "to_slug", Value: 1}}},
		},
		inquiriesCollection: {
			{Keys: bson.D{{Key: "kind", Value: 1}, {Key: "status", Value: 1}}},
		},
		sampleOrdersCollection: {
			{Keys: bson.D{{Key: "order_number", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
		adminUsersCollection: {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
		},
	}

	for name, indexes := range plan {
		if _, err := s.collection(name).Indexes().CreateMany(ctx, indexes); err != nil {
			return err
		}
	}
	return nil
}
