// internal/store/gormstore/product.go
package gormstore

import (
	"context"
	"strings"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	var product models.Product
	if err := s.db.WithContext(ctx).First(&product, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

func (s *Store) GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	var products []models.Product
	if err := s.db.WithContext(ctx).Where("id IN ?", ids).Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (s *Store) ListProducts(ctx context.Context, filter store.ProductFilter) ([]models.Product, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Product{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.CategoryID != "" {
		query = query.Where("category_id = ?", filter.CategoryID)
	}
	if filter.Search != "" {
		pattern := likePattern(strings.ToLower(filter.Search))
		query = query.Where("LOWER(name) LIKE ? OR LOWER(sku) LIKE ? OR LOWER(description) LIKE ?", pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var products []models.Product
	if err := paginate(query, filter.Page).Order("created_at DESC").Find(&products).Error; err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	return translateSlug(s.db.WithContext(ctx).Create(product).Error)
}

func (s *Store) UpdateProduct(ctx context.Context, product *models.Product) error {
	return translateSlug(s.db.WithContext(ctx).Save(product).Error)
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Product{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *Store) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	var category models.Category
	if err := s.db.WithContext(ctx).First(&category, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &category, nil
}

func (s *Store) ListCategories(ctx context.Context, filter store.CategoryFilter) ([]models.Category, int64, error) {
	query := s.db.WithContext(ctx).Model(&models.Category{})
	if filter.ActiveOnly {
		query = query.Where("is_active = ?", true)
	}
	if filter.ParentID != "" {
		query = query.Where("parent_id = ?", filter.ParentID)
	}
	if filter.Search != "" {
		query = query.Where("LOWER(name) LIKE ?", likePattern(strings.ToLower(filter.Search)))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var categories []models.Category
	if err := paginate(query, filter.Page).Order("sort_order ASC, name ASC").Find(&categories).Error; err != nil {
		return nil, 0, err
	}
	return categories, total, nil
}

func (s *Store) CreateCategory(ctx context.Context, category *models.Category) error {
	return translateSlug(s.db.WithContext(ctx).Create(category).Error)
}

func (s *Store) UpdateCategory(ctx context.Context, category *models.Category) error {
	return translateSlug(s.db.WithContext(ctx).Save(category).Error)
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	result := s.db.WithContext(ctx).Delete(&models.Category{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}
