// internal/store/gormstore/store_test.go
package gormstore_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/javajoker/wholesale-catalog/internal/config"
	"github.com/javajoker/wholesale-catalog/internal/database"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
	"github.com/javajoker/wholesale-catalog/internal/store/gormstore"
)

type GormStoreTestSuite struct {
	suite.Suite
	ctx   context.Context
	store *gormstore.Store
}

func (suite *GormStoreTestSuite) SetupTest() {
	db, err := database.Initialize(
		config.StorageConfig{Driver: "sqlite", SQLitePath: ":memory:"},
		config.DatabaseConfig{},
	)
	require.NoError(suite.T(), err)
	require.NoError(suite.T(), database.RunMigrations(db))

	suite.ctx = context.Background()
	suite.store = gormstore.New(db)
}

func (suite *GormStoreTestSuite) TearDownTest() {
	_ = suite.store.Close(suite.ctx)
}

func (suite *GormStoreTestSuite) createProduct(name, slug string, active bool) *models.Product {
	product := &models.Product{Name: name, Slug: slug, IsActive: active}
	require.NoError(suite.T(), suite.store.CreateProduct(suite.ctx, product))
	return product
}

func (suite *GormStoreTestSuite) TestCreateAssignsObjectID() {
	product := suite.createProduct("Canvas Tote", "canvas-tote", true)

	assert.Len(suite.T(), product.ID, 24)
	assert.False(suite.T(), product.CreatedAt.IsZero())
}

func (suite *GormStoreTestSuite) TestSlugUniqueIndex() {
	suite.createProduct("Canvas Tote", "canvas-tote", true)

	dup := &models.Product{Name: "Canvas Tote", Slug: "canvas-tote"}
	err := suite.store.CreateProduct(suite.ctx, dup)
	assert.ErrorIs(suite.T(), err, store.ErrDuplicateSlug)

	// empty slugs are outside the index
	suite.createProduct("Draft A", "", false)
	suite.createProduct("Draft B", "", false)

	// the same slug may be used by another entity type
	category := &models.Category{Name: "Canvas Tote", Slug: "canvas-tote", IsActive: true}
	assert.NoError(suite.T(), suite.store.CreateCategory(suite.ctx, category))
}

func (suite *GormStoreTestSuite) TestSoftDeleteReleasesSlug() {
	product := suite.createProduct("Canvas Tote", "canvas-tote", true)
	require.NoError(suite.T(), suite.store.DeleteProduct(suite.ctx, product.ID))

	taken, err := suite.store.SlugTaken(suite.ctx, models.EntityTypeProduct, "canvas-tote", "")
	require.NoError(suite.T(), err)
	assert.False(suite.T(), taken)

	suite.createProduct("Canvas Tote", "canvas-tote", true)

	err = suite.store.DeleteProduct(suite.ctx, product.ID)
	assert.ErrorIs(suite.T(), err, store.ErrNotFound)
}

func (suite *GormStoreTestSuite) TestFindBySlugActiveOnly() {
	suite.createProduct("Canvas Tote", "canvas-tote", true)
	hidden := suite.createProduct("Hidden Tote", "hidden-tote", false)

	entity, err := suite.store.FindBySlug(suite.ctx, models.EntityTypeProduct, "canvas-tote")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "Canvas Tote", entity.DisplayName())
	assert.Equal(suite.T(), models.EntityTypeProduct, entity.EntityType())

	_, err = suite.store.FindBySlug(suite.ctx, models.EntityTypeProduct, "hidden-tote")
	assert.ErrorIs(suite.T(), err, store.ErrNotFound)

	entity, err = suite.store.FindByID(suite.ctx, models.EntityTypeProduct, hidden.ID)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), entity.Active())

	_, err = suite.store.FindBySlug(suite.ctx, models.EntityTypeOther, "canvas-tote")
	assert.Error(suite.T(), err)
}

func (suite *GormStoreTestSuite) TestSlugTakenExcludesSelf() {
	product := suite.createProduct("Canvas Tote", "canvas-tote", true)

	taken, err := suite.store.SlugTaken(suite.ctx, models.EntityTypeProduct, "canvas-tote", product.ID)
	require.NoError(suite.T(), err)
	assert.False(suite.T(), taken)

	taken, err = suite.store.SlugTaken(suite.ctx, models.EntityTypeProduct, "canvas-tote", "")
	require.NoError(suite.T(), err)
	assert.True(suite.T(), taken)
}

func (suite *GormStoreTestSuite) TestMissingSlugsAndCounts() {
	suite.createProduct("Canvas Tote", "canvas-tote", true)
	a := suite.createProduct("Draft A", "", true)
	b := suite.createProduct("Draft B", "", false)

	missing, err := suite.store.MissingSlugs(suite.ctx, models.EntityTypeProduct)
	require.NoError(suite.T(), err)
	var ids []string
	for _, entity := range missing {
		ids = append(ids, entity.EntityID())
	}
	assert.ElementsMatch(suite.T(), []string{a.ID, b.ID}, ids)

	counts, err := suite.store.SlugCounts(suite.ctx, models.EntityTypeProduct)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), counts.Total)
	assert.Equal(suite.T(), int64(1), counts.WithSlug)
	assert.Equal(suite.T(), int64(2), counts.WithoutSlug)

	require.NoError(suite.T(), suite.store.SetSlug(suite.ctx, models.EntityTypeProduct, a.ID, "draft-a"))
	err = suite.store.SetSlug(suite.ctx, models.EntityTypeProduct, b.ID, "draft-a")
	assert.ErrorIs(suite.T(), err, store.ErrDuplicateSlug)

	err = suite.store.SetSlug(suite.ctx, models.EntityTypeProduct, models.NewID(), "ghost")
	assert.ErrorIs(suite.T(), err, store.ErrNotFound)
}

func (suite *GormStoreTestSuite) TestSetSlugLeavesExistingSlug() {
	tote := suite.createProduct("Canvas Tote", "canvas-tote", true)

	err := suite.store.SetSlug(suite.ctx, models.EntityTypeProduct, tote.ID, "canvas-tote-2")
	assert.ErrorIs(suite.T(), err, store.ErrSlugAlreadySet)

	stored, err := suite.store.GetProduct(suite.ctx, tote.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "canvas-tote", stored.Slug)
}

func (suite *GormStoreTestSuite) TestStringListColumnsRoundTrip() {
	tote := &models.Product{Name: "Canvas Tote", Slug: "canvas-tote", IsActive: true,
		Images: models.StringList{"/uploads/products/a.jpg"}, Tags: models.StringList{"canvas", "eco, bulk"}}
	require.NoError(suite.T(), suite.store.CreateProduct(suite.ctx, tote))

	loaded, err := suite.store.GetProduct(suite.ctx, tote.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), tote.Images, loaded.Images)
	assert.Equal(suite.T(), tote.Tags, loaded.Tags)

	inquiry := &models.Inquiry{
		Kind:       models.InquiryKindInquiry,
		Name:       "Dana",
		Email:      "dana@example.com",
		Message:    "Pricing for 500 units",
		ProductIDs: models.StringList{tote.ID},
		Status:     models.InquiryStatusNew,
	}
	require.NoError(suite.T(), suite.store.CreateInquiry(suite.ctx, inquiry))

	stored, err := suite.store.GetInquiry(suite.ctx, inquiry.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.StringList{tote.ID}, stored.ProductIDs)
}

func (suite *GormStoreTestSuite) TestRedirectBookkeeping() {
	redirects := []*models.Redirect{
		{FromSlug: "tote-v1", ToSlug: "tote-v2", EntityType: models.EntityTypeProduct, IsActive: true},
		{FromSlug: "old-tote", ToSlug: "tote-v2", EntityType: models.EntityTypeProduct, IsActive: true},
		{FromSlug: "tote-v1", ToSlug: "tote-v2", EntityType: models.EntityTypeCategory, IsActive: true},
	}
	for _, r := range redirects {
		require.NoError(suite.T(), suite.store.CreateRedirect(suite.ctx, r))
	}

	n, err := suite.store.RetargetRedirects(suite.ctx, models.EntityTypeProduct, "tote-v2", "tote-v3")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(2), n)

	found, err := suite.store.FindActiveRedirect(suite.ctx, models.EntityTypeProduct, "old-tote")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "tote-v3", found.ToSlug)

	found, err = suite.store.FindActiveRedirect(suite.ctx, models.EntityTypeCategory, "tote-v1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), "tote-v2", found.ToSlug)

	n, err = suite.store.DeactivateRedirectsFrom(suite.ctx, models.EntityTypeProduct, "tote-v1")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), n)

	_, err = suite.store.FindActiveRedirect(suite.ctx, models.EntityTypeProduct, "tote-v1")
	assert.ErrorIs(suite.T(), err, store.ErrNotFound)

	active := true
	list, total, err := suite.store.ListRedirects(suite.ctx, store.RedirectFilter{
		EntityType: models.EntityTypeProduct,
		Active:     &active,
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	assert.Equal(suite.T(), "old-tote", list[0].FromSlug)
}

func (suite *GormStoreTestSuite) TestListProductsFilters() {
	category := &models.Category{Name: "Bags", Slug: "bags", IsActive: true}
	require.NoError(suite.T(), suite.store.CreateCategory(suite.ctx, category))

	tote := &models.Product{Name: "Canvas Tote", Slug: "canvas-tote", CategoryID: category.ID, IsActive: true,
		Images: models.StringList{"a.jpg", "b.jpg"}}
	require.NoError(suite.T(), suite.store.CreateProduct(suite.ctx, tote))
	suite.createProduct("Steel Mug", "steel-mug", true)
	suite.createProduct("Hidden Tote", "hidden-tote", false)

	products, total, err := suite.store.ListProducts(suite.ctx, store.ProductFilter{Search: "TOTE", ActiveOnly: true})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
	assert.Equal(suite.T(), "canvas-tote", products[0].Slug)
	assert.Equal(suite.T(), models.StringList{"a.jpg", "b.jpg"}, products[0].Images)

	products, total, err = suite.store.ListProducts(suite.ctx, store.ProductFilter{
		Page: store.Page{Limit: 2},
	})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), total)
	assert.Len(suite.T(), products, 2)

	_, total, err = suite.store.ListProducts(suite.ctx, store.ProductFilter{CategoryID: category.ID})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), total)
}

func (suite *GormStoreTestSuite) TestSampleOrderItemsRoundTrip() {
	order := &models.SampleOrder{
		OrderNumber:     "SO-TEST-0001",
		ContactName:     "Dana",
		Email:           "dana@example.com",
		ShippingAddress: "1 Harbor Way",
		Items: models.SampleOrderItems{
			{ProductID: models.NewID(), ProductSlug: "canvas-tote", Name: "Canvas Tote", Quantity: 2, UnitPrice: 4.5},
		},
		Total:    9,
		Currency: "usd",
		Status:   models.SampleOrderStatusPending,
	}
	require.NoError(suite.T(), suite.store.CreateSampleOrder(suite.ctx, order))

	loaded, err := suite.store.GetSampleOrder(suite.ctx, order.ID)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), order.Items, loaded.Items)

	dup := *order
	dup.ID = ""
	err = suite.store.CreateSampleOrder(suite.ctx, &dup)
	assert.ErrorIs(suite.T(), err, store.ErrDuplicateKey)
}

func (suite *GormStoreTestSuite) TestAdminUsers() {
	count, err := suite.store.CountAdmins(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Zero(suite.T(), count)

	require.NoError(suite.T(), database.SeedInitialData(suite.ctx, suite.store, config.AdminConfig{
		Email: "Ops@Example.com", Password: "s3cret-pass", Name: "Ops",
	}))

	user, err := suite.store.FindAdminByEmail(suite.ctx, "ops@example.com")
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), models.AdminRoleAdmin, user.Role)
	assert.NoError(suite.T(), user.CheckPassword("s3cret-pass"))
	assert.NoError(suite.T(), suite.store.TouchAdminLogin(suite.ctx, user.ID))

	// seeding is a no-op once an admin exists
	require.NoError(suite.T(), database.SeedInitialData(suite.ctx, suite.store, config.AdminConfig{
		Email: "second@example.com", Password: "another-pass",
	}))
	count, err = suite.store.CountAdmins(suite.ctx)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)
}

func (suite *GormStoreTestSuite) TestCountActiveAdmins() {
	owner := &models.AdminUser{Email: "owner@example.com", Role: models.AdminRoleAdmin, IsActive: true, PasswordHash: "x"}
	retired := &models.AdminUser{Email: "retired@example.com", Role: models.AdminRoleAdmin, PasswordHash: "x"}
	editor := &models.AdminUser{Email: "editor@example.com", Role: models.AdminRoleEditor, IsActive: true, PasswordHash: "x"}
	for _, user := range []*models.AdminUser{owner, retired, editor} {
		require.NoError(suite.T(), suite.store.CreateAdminUser(suite.ctx, user))
	}

	count, err := suite.store.CountActiveAdmins(suite.ctx, models.AdminRoleAdmin)
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), count)

	users, total, err := suite.store.ListAdminUsers(suite.ctx, store.Page{Limit: 2})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(3), total)
	assert.Len(suite.T(), users, 2)

	require.NoError(suite.T(), suite.store.DeleteAdminUser(suite.ctx, editor.ID))
	assert.ErrorIs(suite.T(), suite.store.DeleteAdminUser(suite.ctx, editor.ID), store.ErrNotFound)

	// hard delete frees the unique email
	again := &models.AdminUser{Email: "Editor@Example.com", Role: models.AdminRoleEditor, IsActive: true, PasswordHash: "x"}
	require.NoError(suite.T(), suite.store.CreateAdminUser(suite.ctx, again))
	assert.Equal(suite.T(), "editor@example.com", again.Email)
}

func TestGormStoreTestSuite(t *testing.T) {
	suite.Run(t, new(GormStoreTestSuite))
}
