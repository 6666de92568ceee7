// internal/services/category_service.go
package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

type CategoryService struct {
	store     store.Store
	slugs     *SlugService
	redirects *RedirectService
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Slug        string `json:"slug,omitempty" validate:"omitempty,slug,max=255"`
	Description string `json:"description,omitempty" validate:"omitempty,max=5000"`
	ParentID    string `json:"parent_id,omitempty" validate:"omitempty,len=24,hexadecimal"`
	SortOrder   int    `json:"sort_order"`
	IsActive    *bool  `json:"is_active,omitempty"`
}

type UpdateCategoryRequest struct {
	Name           *string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Slug           *string `json:"slug,omitempty" validate:"omitempty,slug,max=255"`
	RegenerateSlug bool    `json:"regenerate_slug,omitempty"`
	Description    *string `json:"description,omitempty" validate:"omitempty,max=5000"`
	ParentID       *string `json:"parent_id,omitempty" validate:"omitempty,len=24,hexadecimal"`
	SortOrder      *int    `json:"sort_order,omitempty"`
	IsActive       *bool   `json:"is_active,omitempty"`
}

type CategoryListParams struct {
	utils.PaginationParams
	ParentID   string
	ActiveOnly bool
}

func NewCategoryService(st store.Store, slugs *SlugService, redirects *RedirectService) *CategoryService {
	return &CategoryService{store: st, slugs: slugs, redirects: redirects}
}

func (s *CategoryService) CreateCategory(ctx context.Context, req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := s.checkParent(ctx, "", req.ParentID); err != nil {
		return nil, err
	}

	plan, err := s.slugs.PlanCreate(ctx, models.EntityTypeCategory, req.Name, req.Slug)
	if err != nil {
		return nil, err
	}

	category := &models.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: utils.SanitizeRichText(req.Description),
		ParentID:    req.ParentID,
		SortOrder:   req.SortOrder,
		IsActive:    true,
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	if _, err := s.slugs.Write(ctx, plan, func(slug string) error {
		category.Slug = slug
		return s.store.CreateCategory(ctx, category)
	}); err != nil {
		return nil, err
	}

	s.claimSlug(ctx, "", category.Slug, "")
	return category, nil
}

func (s *CategoryService) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	category, err := s.store.GetCategory(ctx, id)
	if err != nil {
		return nil, storageError("get category", err)
	}
	return category, nil
}

func (s *CategoryService) ListCategories(ctx context.Context, params CategoryListParams) ([]models.Category, int64, error) {
	categories, total, err := s.store.ListCategories(ctx, store.CategoryFilter{
		Page:       params.StorePage(),
		ParentID:   params.ParentID,
		Search:     params.Search,
		ActiveOnly: params.ActiveOnly,
	})
	if err != nil {
		return nil, 0, storageError("list categories", err)
	}
	return categories, total, nil
}

func (s *CategoryService) UpdateCategory(ctx context.Context, id string, req *UpdateCategoryRequest, actor string) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	category, err := s.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		category.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		category.Description = utils.SanitizeRichText(*req.Description)
	}
	if req.ParentID != nil {
		if err := s.checkParent(ctx, category.ID, *req.ParentID); err != nil {
			return nil, err
		}
		category.ParentID = *req.ParentID
	}
	if req.SortOrder != nil {
		category.SortOrder = *req.SortOrder
	}
	if req.IsActive != nil {
		category.IsActive = *req.IsActive
	}

	oldSlug := category.Slug
	plan, err := s.slugs.PlanUpdate(ctx, models.EntityTypeCategory, category.ID, oldSlug, category.Name, req.Slug, req.RegenerateSlug)
	if err != nil {
		return nil, err
	}

	if _, err := s.slugs.Write(ctx, plan, func(slug string) error {
		category.Slug = slug
		return s.store.UpdateCategory(ctx, category)
	}); err != nil {
		return nil, err
	}

	s.claimSlug(ctx, oldSlug, category.Slug, actor)
	return category, nil
}

func (s *CategoryService) DeleteCategory(ctx context.Context, id string) error {
	return storageError("delete category", s.store.DeleteCategory(ctx, id))
}

func (s *CategoryService) checkParent(ctx context.Context, id, parentID string) error {
	if parentID == "" {
		return nil
	}
	if parentID == id {
		return invalidReference("parent_id", "category cannot be its own parent")
	}
	if _, err := s.store.GetCategory(ctx, parentID); err != nil {
		if err = storageError("get parent category", err); isNotFound(err) {
			return invalidReference("parent_id", "parent category does not exist")
		}
		return err
	}
	return nil
}

func (s *CategoryService) claimSlug(ctx context.Context, oldSlug, newSlug, actor string) {
	if err := s.redirects.RecordRename(ctx, models.EntityTypeCategory, oldSlug, newSlug, actor); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"from": oldSlug,
			"to":   newSlug,
		}).Error("Failed to record category slug change")
	}
}

func invalidReference(field, message string) error {
	return apperror.Invalid(field, "exists", message)
}
