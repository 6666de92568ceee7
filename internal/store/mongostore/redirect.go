// internal/store/mongostore/redirect.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

func (s *Store) FindActiveRedirect(ctx context.Context, t models.EntityType, fromSlug string) (*models.Redirect, error) {
	var redirect models.Redirect
	opts := options.FindOne().SetSort(newestFirst)
	err := s.collection(redirectsCollection).FindOne(ctx, activeRedirectFilter(t, fromSlug), opts).Decode(&redirect)
	if err != nil {
		return nil, translate(err)
	}
	return &redirect, nil
}

func (s *Store) GetRedirect(ctx context.Context, id string) (*models.Redirect, error) {
	return findOne[models.Redirect](ctx, s.collection(redirectsCollection), idFilter(id))
}

func (s *Store) ListRedirects(ctx context.Context, filter store.RedirectFilter) ([]models.Redirect, int64, error) {
	return findPage[models.Redirect](ctx, s.collection(redirectsCollection), redirectFilter(filter), filter.Page, newestFirst)
}

func (s *Store) CreateRedirect(ctx context.Context, redirect *models.Redirect) error {
	redirect.Touch(s.now())
	_, err := s.collection(redirectsCollection).InsertOne(ctx, redirect)
	return translate(err)
}

func (s *Store) UpdateRedirect(ctx context.Context, redirect *models.Redirect) error {
	redirect.UpdatedAt = s.now()
	return translate(replaceByID(ctx, s.collection(redirectsCollection), redirect.ID, redirect))
}

func (s *Store) DeleteRedirect(ctx context.Context, id string) error {
	return deleteByID(ctx, s.collection(redirectsCollection), id)
}

func (s *Store) RetargetRedirects(ctx context.Context, t models.EntityType, oldTo, newTo string) (int64, error) {
	result, err := s.collection(redirectsCollection).UpdateMany(ctx,
		retargetFilter(t, oldTo, newTo),
		bson.M{"$set": bson.M{"to_slug": newTo, "updated_at": s.now()}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}

func (s *Store) DeactivateRedirectsFrom(ctx context.Context, t models.EntityType, fromSlug string) (int64, error) {
	result, err := s.collection(redirectsCollection).UpdateMany(ctx,
		activeRedirectFilter(t, fromSlug),
		bson.M{"$set": bson.M{"is_active": false, "updated_at": s.now()}},
	)
	if err != nil {
		return 0, err
	}
	return result.ModifiedCount, nil
}
