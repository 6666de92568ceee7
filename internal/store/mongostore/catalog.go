// internal/store/mongostore/catalog.go
package mongostore

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

func (s *Store) catalogCollection(t models.EntityType) (*mongo.Collection, models.CatalogEntity, error) {
	switch t {
	case models.EntityTypeProduct:
		return s.collection(productsCollection), &models.Product{}, nil
	case models.EntityTypeCategory:
		return s.collection(categoriesCollection), &models.Category{}, nil
	}
	return nil, nil, fmt.Errorf("entity type %q has no catalog collection", t)
}

func (s *Store) FindBySlug(ctx context.Context, t models.EntityType, slug string) (models.CatalogEntity, error) {
	coll, entity, err := s.catalogCollection(t)
	if err != nil {
		return nil, err
	}
	if err := coll.FindOne(ctx, bson.M{"slug": slug, "is_active": true}).Decode(entity); err != nil {
		return nil, translate(err)
	}
	return entity, nil
}

func (s *Store) FindByID(ctx context.Context, t models.EntityType, id string) (models.CatalogEntity, error) {
	coll, entity, err := s.catalogCollection(t)
	if err != nil {
		return nil, err
	}
	if err := coll.FindOne(ctx, idFilter(id)).Decode(entity); err != nil {
		return nil, translate(err)
	}
	return entity, nil
}

func (s *Store) SlugTaken(ctx context.Context, t models.EntityType, slug, excludeID string) (bool, error) {
	coll, _, err := s.catalogCollection(t)
	if err != nil {
		return false, err
	}
	count, err := coll.CountDocuments(ctx, slugTakenFilter(slug, excludeID))
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) MissingSlugs(ctx context.Context, t models.EntityType) ([]models.CatalogEntity, error) {
	page := store.Page{}
	switch t {
	case models.EntityTypeProduct:
		rows, _, err := findPage[models.Product](ctx, s.collection(productsCollection), missingSlugFilter(), page, oldestFirst)
		if err != nil {
			return nil, err
		}
		entities := make([]models.CatalogEntity, len(rows))
		for i := range rows {
			entities[i] = &rows[i]
		}
		return entities, nil
	case models.EntityTypeCategory:
		rows, _, err := findPage[models.Category](ctx, s.collection(categoriesCollection), missingSlugFilter(), page, oldestFirst)
		if err != nil {
			return nil, err
		}
		entities := make([]models.CatalogEntity, len(rows))
		for i := range rows {
			entities[i] = &rows[i]
		}
		return entities, nil
	}
	return nil, fmt.Errorf("entity type %q has no catalog collection", t)
}

func (s *Store) SetSlug(ctx context.Context, t models.EntityType, id, slug string) error {
	coll, _, err := s.catalogCollection(t)
	if err != nil {
		return err
	}
	filter := bson.M{"$and": bson.A{idFilter(id), missingSlugFilter()}}
	result, err := coll.UpdateOne(ctx, filter, bson.M{"$set": bson.M{"slug": slug, "updated_at": s.now()}})
	if err != nil {
		return translateSlug(err)
	}
	if result.MatchedCount > 0 {
		return nil
	}
	count, err := coll.CountDocuments(ctx, idFilter(id))
	if err != nil {
		return err
	}
	if count == 0 {
		return store.ErrNotFound
	}
	return store.ErrSlugAlreadySet
}

func (s *Store) SlugCounts(ctx context.Context, t models.EntityType) (*models.SlugCounts, error) {
	coll, _, err := s.catalogCollection(t)
	if err != nil {
		return nil, err
	}
	counts := &models.SlugCounts{EntityType: t}
	if counts.Total, err = coll.CountDocuments(ctx, bson.M{}); err != nil {
		return nil, err
	}
	if counts.WithSlug, err = coll.CountDocuments(ctx, hasSlugFilter()); err != nil {
		return nil, err
	}
	counts.WithoutSlug = counts.Total - counts.WithSlug
	return counts, nil
}
