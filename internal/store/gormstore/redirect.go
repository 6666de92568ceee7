// internal/store/gormstore/redirect.go
package gormstore

import (
	"context"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

func (s *Store) FindActiveRedirect(ctx context.Context, t models.EntityType, fromSlug string) (*models.Redirect, error) {
	var redirect models.Redirect
	err := s.db.WithContext(ctx).
		Where("entity_type = ? AND from_slug = ? AND is_active = ?", t, fromSlug, true).
		Order("created_at DESC").
		First(&redirect).Error
	if err != nil {
		return nil, translate(err)
	}
	return &redirect, nil
}

func (s *Store) GetRedirect(ctx context.Context, id string) (*models.Redirect, error) {
	var redirect models.Redirect
	if err := s.db.WithContext(ctx).First(&redirect, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &redirect, nil
}

func (s *Store) ListRedirects(ctx context.Context, filter store.RedirectFilter) ([]models.Redirect, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Redirect{})
	if filter.EntityType != "" {
		query = query.Where("entity_type = ?", filter.EntityType)
	}
	if filter.Active != nil {
		query = query.Where("is_active = ?", *filter.Active)
	}
	if filter.Search != "" {
		pattern := likePattern(filter.Search)
		query = query.Where("from_slug LIKE ? OR to_slug LIKE ?", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var redirects []models.Redirect
	if err := paginate(query, filter.Page).Order("created_at DESC").Find(&redirects).Error; err != nil {
		return nil, 0, err
	}
	return redirects, total, nil
}

func (s *Store) CreateRedirect(ctx context.Context, redirect *models.Redirect) error {
	return translate(s.db.WithContext(ctx).Create(redirect).Error)
}

func (s *Store) UpdateRedirect(ctx context.Context, redirect *models.Redirect) error {
	return translate(s.db.WithContext(ctx).Save(redirect).Error)
}

func (s *Store) DeleteRedirect(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Redirect{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) RetargetRedirects(ctx context.Context, t models.EntityType, oldTo, newTo string) (int64, error) {
	result := s.db.WithContext(ctx).Model(&models.Redirect{}).
		Where("entity_type = ? AND to_slug = ? AND from_slug <> ?", t, oldTo, newTo).
		Update("to_slug", newTo)
	return result.RowsAffected, result.Error
}

func (s *Store) DeactivateRedirectsFrom(ctx context.Context, t models.EntityType, fromSlug string) (int64, error) {
	result := s.db.WithContext(ctx).Model(&models.Redirect{}).
		Where("entity_type = ? AND from_slug = ? AND is_active = ?", t, fromSlug, true).
		Update("is_active", false)
	return result.RowsAffected, result.Error
}
