// internal/services/product_service.go
package services

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

type ProductService struct {
	store     store.Store
	slugs     *SlugService
	redirects *RedirectService
	currency  string
	images    ImageRemover
	// cleanup runs image removal off the request path.
	cleanup func(fn func())
}

// ImageRemover deletes uploaded files that a product no longer lists.
type ImageRemover interface {
	KeyForURL(url string) (string, bool)
	DeleteFile(ctx context.Context, key string) error
}

type CreateProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=255"`
	Slug        string   `json:"slug,omitempty" validate:"omitempty,slug,max=255"`
	SKU         string   `json:"sku,omitempty" validate:"omitempty,max=100"`
	Description string   `json:"description,omitempty" validate:"omitempty,max=20000"`
	CategoryID  string   `json:"category_id,omitempty" validate:"omitempty,len=24,hexadecimal"`
	MOQ         int      `json:"moq,omitempty" validate:"omitempty,min=1"`
	UnitPrice   float64  `json:"unit_price" validate:"min=0"`
	SamplePrice float64  `json:"sample_price" validate:"min=0"`
	Currency    string   `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	Images      []string `json:"images,omitempty" validate:"omitempty,max=20,dive,url"`
	Tags        []string `json:"tags,omitempty" validate:"omitempty,max=30,dive,min=1,max=50"`
	IsActive    *bool    `json:"is_active,omitempty"`
}

type UpdateProductRequest struct {
	Name           *string   `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Slug           *string   `json:"slug,omitempty" validate:"omitempty,slug,max=255"`
	RegenerateSlug bool      `json:"regenerate_slug,omitempty"`
	SKU            *string   `json:"sku,omitempty" validate:"omitempty,max=100"`
	Description    *string   `json:"description,omitempty" validate:"omitempty,max=20000"`
	CategoryID     *string   `json:"category_id,omitempty" validate:"omitempty,len=24,hexadecimal"`
	MOQ            *int      `json:"moq,omitempty" validate:"omitempty,min=1"`
	UnitPrice      *float64  `json:"unit_price,omitempty" validate:"omitempty,min=0"`
	SamplePrice    *float64  `json:"sample_price,omitempty" validate:"omitempty,min=0"`
	Currency       *string   `json:"currency,omitempty" validate:"omitempty,len=3,alpha"`
	Images         *[]string `json:"images,omitempty" validate:"omitempty,max=20,dive,url"`
	Tags           *[]string `json:"tags,omitempty" validate:"omitempty,max=30,dive,min=1,max=50"`
	IsActive       *bool     `json:"is_active,omitempty"`
}

type ProductListParams struct {
	utils.PaginationParams
	// CategorySlug narrows the public listing to one active category.
	CategorySlug string
	CategoryID   string
	ActiveOnly   bool
}

func NewProductService(st store.Store, slugs *SlugService, redirects *RedirectService, currency string) *ProductService {
	if currency == "" {
		currency = "usd"
	}
	return &ProductService{
		store:     st,
		slugs:     slugs,
		redirects: redirects,
		currency:  strings.ToLower(currency),
		cleanup:   func(fn func()) { go fn() },
	}
}

// WithImageRemover enables deletion of uploads dropped from a product.
func (s *ProductService) WithImageRemover(images ImageRemover) *ProductService {
	s.images = images
	return s
}

func (s *ProductService) CreateProduct(ctx context.Context, req *CreateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}
	if err := s.checkCategory(ctx, req.CategoryID); err != nil {
		return nil, err
	}

	plan, err := s.slugs.PlanCreate(ctx, models.EntityTypeProduct, req.Name, req.Slug)
	if err != nil {
		return nil, err
	}

	product := &models.Product{
		Name:        strings.TrimSpace(req.Name),
		SKU:         req.SKU,
		Description: utils.SanitizeRichText(req.Description),
		CategoryID:  req.CategoryID,
		MOQ:         req.MOQ,
		UnitPrice:   req.UnitPrice,
		SamplePrice: req.SamplePrice,
		Currency:    s.currency,
		Images:      models.StringList(req.Images),
		Tags:        models.StringList(req.Tags),
		IsActive:    true,
	}
	if product.MOQ == 0 {
		product.MOQ = 1
	}
	if req.Currency != "" {
		product.Currency = strings.ToLower(req.Currency)
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if _, err := s.slugs.Write(ctx, plan, func(slug string) error {
		product.Slug = slug
		return s.store.CreateProduct(ctx, product)
	}); err != nil {
		return nil, err
	}

	s.claimSlug(ctx, "", product.Slug, "")
	return product, nil
}

func (s *ProductService) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	product, err := s.store.GetProduct(ctx, id)
	if err != nil {
		return nil, storageError("get product", err)
	}
	return product, nil
}

func (s *ProductService) ListProducts(ctx context.Context, params ProductListParams) ([]models.Product, int64, error) {
	filter := store.ProductFilter{
		Page:       params.StorePage(),
		CategoryID: params.CategoryID,
		Search:     params.Search,
		ActiveOnly: params.ActiveOnly,
	}

	if params.CategorySlug != "" {
		category, err := s.store.FindBySlug(ctx, models.EntityTypeCategory, params.CategorySlug)
		if err != nil {
			if err = storageError("find category", err); isNotFound(err) {
				return []models.Product{}, 0, nil
			}
			return nil, 0, err
		}
		filter.CategoryID = category.EntityID()
	}

	products, total, err := s.store.ListProducts(ctx, filter)
	if err != nil {
		return nil, 0, storageError("list products", err)
	}
	return products, total, nil
}

func (s *ProductService) UpdateProduct(ctx context.Context, id string, req *UpdateProductRequest, actor string) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		product.Name = strings.TrimSpace(*req.Name)
	}
	if req.SKU != nil {
		product.SKU = *req.SKU
	}
	if req.Description != nil {
		product.Description = utils.SanitizeRichText(*req.Description)
	}
	if req.CategoryID != nil {
		if err := s.checkCategory(ctx, *req.CategoryID); err != nil {
			return nil, err
		}
		product.CategoryID = *req.CategoryID
	}
	if req.MOQ != nil {
		product.MOQ = *req.MOQ
	}
	if req.UnitPrice != nil {
		product.UnitPrice = *req.UnitPrice
	}
	if req.SamplePrice != nil {
		product.SamplePrice = *req.SamplePrice
	}
	if req.Currency != nil {
		product.Currency = strings.ToLower(*req.Currency)
	}
	previousImages := product.Images
	if req.Images != nil {
		product.Images = models.StringList(*req.Images)
	}
	if req.Tags != nil {
		product.Tags = models.StringList(*req.Tags)
	}
	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	oldSlug := product.Slug
	plan, err := s.slugs.PlanUpdate(ctx, models.EntityTypeProduct, product.ID, oldSlug, product.Name, req.Slug, req.RegenerateSlug)
	if err != nil {
		return nil, err
	}

	if _, err := s.slugs.Write(ctx, plan, func(slug string) error {
		product.Slug = slug
		return s.store.UpdateProduct(ctx, product)
	}); err != nil {
		return nil, err
	}

	s.claimSlug(ctx, oldSlug, product.Slug, actor)
	s.removeImages(droppedImages(previousImages, product.Images))
	return product, nil
}

func (s *ProductService) DeleteProduct(ctx context.Context, id string) error {
	product, err := s.GetProduct(ctx, id)
	if err != nil {
		return err
	}
	if err := s.store.DeleteProduct(ctx, id); err != nil {
		return storageError("delete product", err)
	}
	s.removeImages(product.Images)
	return nil
}

// removeImages deletes the uploads behind urls. External URLs are left alone
// and failures are only logged.
func (s *ProductService) removeImages(urls []string) {
	if s.images == nil {
		return
	}
	var keys []string
	for _, u := range urls {
		if key, ok := s.images.KeyForURL(u); ok {
			keys = append(keys, key)
		}
	}
	if len(keys) == 0 {
		return
	}

	s.cleanup(func() {
		for _, key := range keys {
			if err := s.images.DeleteFile(context.Background(), key); err != nil {
				logrus.WithError(err).WithField("key", key).Warn("Failed to delete product image")
			}
		}
	})
}

func droppedImages(before, after []string) []string {
	kept := make(map[string]bool, len(after))
	for _, u := range after {
		kept[u] = true
	}
	var dropped []string
	for _, u := range before {
		if !kept[u] {
			dropped = append(dropped, u)
		}
	}
	return dropped
}

func (s *ProductService) checkCategory(ctx context.Context, categoryID string) error {
	if categoryID == "" {
		return nil
	}
	if _, err := s.store.GetCategory(ctx, categoryID); err != nil {
		if err = storageError("get category", err); isNotFound(err) {
			return invalidReference("category_id", "category does not exist")
		}
		return err
	}
	return nil
}

// claimSlug runs the redirect bookkeeping after a slug change. The entity
// write already succeeded, so failures are logged rather than returned.
func (s *ProductService) claimSlug(ctx context.Context, oldSlug, newSlug, actor string) {
	if err := s.redirects.RecordRename(ctx, models.EntityTypeProduct, oldSlug, newSlug, actor); err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"from": oldSlug,
			"to":   newSlug,
		}).Error("Failed to record product slug change")
	}
}
