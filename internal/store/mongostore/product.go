// internal/store/mongostore/product.go
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

var categoryOrder = bson.D{{Key: "sort_order", Value: 1}, {Key: "name", Value: 1}}

func (s *Store) GetProduct(ctx context.Context, id string) (*models.Product, error) {
	return findOne[models.Product](ctx, s.collection(productsCollection), idFilter(id))
}

func (s *Store) GetProductsByIDs(ctx context.Context, ids []string) ([]models.Product, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	products, _, err := findPage[models.Product](ctx, s.collection(productsCollection),
		idsFilter(ids), store.Page{}, newestFirst)
	return products, err
}

func (s *Store) ListProducts(ctx context.Context, filter store.ProductFilter) ([]models.Product, int64, error) {
	return findPage[models.Product](ctx, s.collection(productsCollection), productFilter(filter), filter.Page, newestFirst)
}

func (s *Store) CreateProduct(ctx context.Context, product *models.Product) error {
	product.Touch(s.now())
	_, err := s.collection(productsCollection).InsertOne(ctx, product)
	return translateSlug(err)
}

func (s *Store) UpdateProduct(ctx context.Context, product *models.Product) error {
	product.UpdatedAt = s.now()
	return translateSlug(replaceByID(ctx, s.collection(productsCollection), product.ID, product))
}

func (s *Store) DeleteProduct(ctx context.Context, id string) error {
	return deleteByID(ctx, s.collection(productsCollection), id)
}

func (s *Store) GetCategory(ctx context.Context, id string) (*models.Category, error) {
	return findOne[models.Category](ctx, s.collection(categoriesCollection), idFilter(id))
}

func (s *Store) ListCategories(ctx context.Context, filter store.CategoryFilter) ([]models.Category, int64, error) {
	return findPage[models.Category](ctx, s.collection(categoriesCollection), categoryFilter(filter), filter.Page, categoryOrder)
}

func (s *Store) CreateCategory(ctx context.Context, category *models.Category) error {
	category.Touch(s.now())
	_, err := s.collection(categoriesCollection).InsertOne(ctx, category)
	return translateSlug(err)
}

func (s *Store) UpdateCategory(ctx context.Context, category *models.Category) error {
	category.UpdatedAt = s.now()
	return translateSlug(replaceByID(ctx, s.collection(categoriesCollection), category.ID, category))
}

func (s *Store) DeleteCategory(ctx context.Context, id string) error {
	return deleteByID(ctx, s.collection(categoriesCollection), id)
}
