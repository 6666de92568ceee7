// internal/store/gormstore/catalog.go
package gormstore

import (
	"context"
	"fmt"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

const hasSlug = "slug IS NOT NULL AND slug <> ''"

func newEntity(t models.EntityType) (models.CatalogEntity, error) {
	switch t {
	case models.EntityTypeProduct:
		return &models.Product{}, nil
	case models.EntityTypeCategory:
		return &models.Category{}, nil
	}
	return nil, fmt.Errorf("entity type %q has no catalog table", t)
}

func (s *Store) FindBySlug(ctx context.Context, t models.EntityType, slug string) (models.CatalogEntity, error) {
	entity, err := newEntity(t)
	if err != nil {
		return nil, err
	}
	err = s.db.WithContext(ctx).
		Where("slug = ? AND is_active = ?", slug, true).
		First(entity).Error
	if err != nil {
		return nil, translate(err)
	}
	return entity, nil
}

func (s *Store) FindByID(ctx context.Context, t models.EntityType, id string) (models.CatalogEntity, error) {
	entity, err := newEntity(t)
	if err != nil {
		return nil, err
	}
	if err := s.db.WithContext(ctx).First(entity, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return entity, nil
}

func (s *Store) SlugTaken(ctx context.Context, t models.EntityType, slug, excludeID string) (bool, error) {
	entity, err := newEntity(t)
	if err != nil {
		return false, err
	}
	query := s.db.WithContext(ctx).Model(entity).Where("slug = ?", slug)
	if excludeID != "" {
		query = query.Where("id <> ?", excludeID)
	}
	var count int64
	if err := query.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (s *Store) MissingSlugs(ctx context.Context, t models.EntityType) ([]models.CatalogEntity, error) {
	query := s.db.WithContext(ctx).Where("slug IS NULL OR slug = ''").Order("created_at ASC, id ASC")

	switch t {
	case models.EntityTypeProduct:
		var rows []models.Product
		if err := query.Find(&rows).Error; err != nil {
			return nil, err
		}
		entities := make([]models.CatalogEntity, len(rows))
		for i := range rows {
			entities[i] = &rows[i]
		}
		return entities, nil
	case models.EntityTypeCategory:
		var rows []models.Category
		if err := query.Find(&rows).Error; err != nil {
			return nil, err
		}
		entities := make([]models.CatalogEntity, len(rows))
		for i := range rows {
			entities[i] = &rows[i]
		}
		return entities, nil
	}
	return nil, fmt.Errorf("entity type %q has no catalog table", t)
}

func (s *Store) SetSlug(ctx context.Context, t models.EntityType, id, slug string) error {
	entity, err := newEntity(t)
	if err != nil {
		return err
	}
	result := s.db.WithContext(ctx).Model(entity).
		Where("id = ? AND (slug IS NULL OR slug = '')", id).
		Update("slug", slug)
	if result.Error != nil {
		return translateSlug(result.Error)
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(entity).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return store.ErrNotFound
	}
	return store.ErrSlugAlreadySet
}

func (s *Store) SlugCounts(ctx context.Context, t models.EntityType) (*models.SlugCounts, error) {
	entity, err := newEntity(t)
	if err != nil {
		return nil, err
	}
	counts := &models.SlugCounts{EntityType: t}
	db := s.db.WithContext(ctx)
	if err := db.Model(entity).Count(&counts.Total).Error; err != nil {
		return nil, err
	}
	if err := db.Model(entity).Where(hasSlug).Count(&counts.WithSlug).Error; err != nil {
		return nil, err
	}
	counts.WithoutSlug = counts.Total - counts.WithSlug
	return counts, nil
}
