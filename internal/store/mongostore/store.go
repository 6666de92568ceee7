// internal/store/mongostore/store.go
package mongostore

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"

	"github.com/javajoker/wholesale-catalog/internal/store"
)

const (
	productsCollection     = "products"
	categoriesCollection   = "categories"
	redirectsCollection    = "redirects"
	inquiriesCollection    = "inquiries"
	sampleOrdersCollection = "sample_orders"
	adminUsersCollection   = "admin_users"
	auditLogsCollection    = "audit_logs"
)

// Store implements store.Store on a MongoDB database. Deletes are hard deletes.
type Store struct {
	client *mongo.Client
	db     *mongo.Database
	now    func() time.Time
}

var _ store.Store = (*Store)(nil)

func New(client *mongo.Client, database string) *Store {
	return &Store{
		client: client,
		db:     client.Database(database),
		now:    time.Now,
	}
}

func (s *Store) collection(name string) *mongo.Collection {
	return s.db.Collection(name)
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, mongo.ErrNoDocuments):
		return store.ErrNotFound
	case mongo.IsDuplicateKeyError(err):
		return fmt.Errorf("%w: %v", store.ErrDuplicateKey, err)
	}
	return err
}

func translateSlug(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %v", store.ErrDuplicateSlug, err)
	}
	return translate(err)
}

func findOne[T any](ctx context.Context, coll *mongo.Collection, filter bson.M) (*T, error) {
	var doc T
	if err := coll.FindOne(ctx, filter).Decode(&doc); err != nil {
		return nil, translate(err)
	}
	return &doc, nil
}

func findPage[T any](ctx context.Context, coll *mongo.Collection, filter bson.M, page store.Page, sort bson.D) ([]T, int64, error) {
	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().SetSort(sort)
	if page.Offset > 0 {
		opts.SetSkip(int64(page.Offset))
	}
	if page.Limit > 0 {
		opts.SetLimit(int64(page.Limit))
	}

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, err
	}
	docs := []T{}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, 0, err
	}
	return docs, total, nil
}

// replaceByID drops _id from the replacement so documents keyed by a native
// ObjectID keep their key.
func replaceByID(ctx context.Context, coll *mongo.Collection, id string, doc interface{}) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return err
	}
	var replacement bson.D
	if err := bson.Unmarshal(raw, &replacement); err != nil {
		return err
	}
	fields := replacement[:0]
	for _, e := range replacement {
		if e.Key != "_id" {
			fields = append(fields, e)
		}
	}

	result, err := coll.ReplaceOne(ctx, idFilter(id), fields)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func deleteByID(ctx context.Context, coll *mongo.Collection, id string) error {
	result, err := coll.DeleteOne(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if result.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func updateByID(ctx context.Context, coll *mongo.Collection, id string, set bson.M) error {
	result, err := coll.UpdateOne(ctx, idFilter(id), bson.M{"$set": set})
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
