package services

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/javajoker/wholesale-catalog/internal/config"
	"github.com/javajoker/wholesale-catalog/internal/database"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
	"github.com/javajoker/wholesale-catalog/internal/store/gormstore"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	db, err := database.Initialize(
		config.StorageConfig{Driver: "sqlite", SQLitePath: ":memory:"},
		config.DatabaseConfig{},
	)
	require.NoError(t, err)
	require.NoError(t, database.RunMigrations(db))

	st := gormstore.New(db)
	t.Cleanup(func() { _ = st.Close(context.Background()) })
	return st
}

// seedProduct inserts a product directly, bypassing slug derivation.
func seedProduct(t *testing.T, st store.Store, name, slug string, active bool) *models.Product {
	t.Helper()
	product := &models.Product{Name: name, Slug: slug, IsActive: active, SamplePrice: 5}
	require.NoError(t, st.CreateProduct(context.Background(), product))
	return product
}

func seedCategory(t *testing.T, st store.Store, name, slug string) *models.Category {
	t.Helper()
	category := &models.Category{Name: name, Slug: slug, IsActive: true}
	require.NoError(t, st.CreateCategory(context.Background(), category))
	return category
}

func seedRedirect(t *testing.T, st store.Store, from, to string, et models.EntityType) *models.Redirect {
	t.Helper()
	redirect := &models.Redirect{FromSlug: from, ToSlug: to, EntityType: et, IsActive: true}
	require.NoError(t, st.CreateRedirect(context.Background(), redirect))
	return redirect
}

// editingStore gives the listed entity a slug right after MissingSlugs
// returns, as an editor saving the same record would.
type editingStore struct {
	store.Store
	editID string
	slug   string
}

func (s editingStore) MissingSlugs(ctx context.Context, t models.EntityType) ([]models.CatalogEntity, error) {
	entities, err := s.Store.MissingSlugs(ctx, t)
	if err != nil {
		return nil, err
	}
	if err := s.Store.SetSlug(ctx, t, s.editID, s.slug); err != nil {
		return nil, err
	}
	return entities, nil
}

// blindStore reports every slug as free, forcing writes to hit the unique index.
type blindStore struct {
	store.Store
}

func (blindStore) SlugTaken(context.Context, models.EntityType, string, string) (bool, error) {
	return false, nil
}

// brokenStore fails every catalog read.
type brokenStore struct {
	store.Store
}

var errBackendDown = errors.New("connection refused")

func (brokenStore) FindBySlug(context.Context, models.EntityType, string) (models.CatalogEntity, error) {
	return nil, errBackendDown
}

func (brokenStore) FindByID(context.Context, models.EntityType, string) (models.CatalogEntity, error) {
	return nil, errBackendDown
}

type recordingNotifier struct {
	mu        sync.Mutex
	inquiries []models.Inquiry
	orders    []models.SampleOrder
}

func (n *recordingNotifier) NotifyInquiry(_ context.Context, inquiry *models.Inquiry, _ []models.Product) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.inquiries = append(n.inquiries, *inquiry)
	return nil
}

func (n *recordingNotifier) NotifySampleOrder(_ context.Context, order *models.SampleOrder) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.orders = append(n.orders, *order)
	return nil
}

func runInline(fn func()) { fn() }
