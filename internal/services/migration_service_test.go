package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/models"
)

func TestMigrationBackfillsSlugs(t *testing.T) {
	st := newTestStore(t)
	svc := NewMigrationService(st, NewSlugService(st).WithClock(fixedClock))
	ctx := context.Background()

	bag := seedProduct(t, st, "Classic Messenger Bag", "", true)
	seedProduct(t, st, "Canvas Tote", "canvas-tote", true)
	seedCategory(t, st, "Bags & Luggage", "")

	report, err := svc.Run(ctx)
	require.NoError(t, err)
	require.Len(t, report.Results, 2)

	products := report.Results[0]
	assert.Equal(t, models.EntityTypeProduct, products.EntityType)
	assert.Equal(t, 1, products.Found)
	assert.Equal(t, 1, products.Updated)
	assert.Empty(t, products.Errors)

	categories := report.Results[1]
	assert.Equal(t, 1, categories.Updated)

	stored, err := st.GetProduct(ctx, bag.ID)
	require.NoError(t, err)
	assert.Equal(t, "classic-messenger-bag", stored.Slug)

	// a second run has nothing left to do
	report, err = svc.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, MigrationSummary{}, report.Totals())
}

func TestMigrationToleratesPartialFailure(t *testing.T) {
	st := newTestStore(t)
	svc := NewMigrationService(st, NewSlugService(st).WithClock(fixedClock))
	ctx := context.Background()

	seedProduct(t, st, "Steel Mug", "", true)
	broken := seedProduct(t, st, "!!!", "", true)
	seedProduct(t, st, "Steel Mug", "", true)

	report, err := svc.Run(ctx, models.EntityTypeProduct)
	require.NoError(t, err)

	summary := report.Results[0]
	assert.Equal(t, 3, summary.Found)
	assert.Equal(t, 2, summary.Updated)
	assert.Equal(t, 1, summary.Errored)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, broken.ID, summary.Errors[0].EntityID)
	assert.Equal(t, "!!!", summary.Errors[0].Name)

	status, err := svc.Status(ctx)
	require.NoError(t, err)
	assert.Equal(t, models.SlugCounts{
		EntityType:  models.EntityTypeProduct,
		Total:       3,
		WithSlug:    2,
		WithoutSlug: 1,
	}, status.Counts[0])
}

func TestMigrationSameNameGetsSuffix(t *testing.T) {
	st := newTestStore(t)
	svc := NewMigrationService(st, NewSlugService(st).WithClock(fixedClock))
	ctx := context.Background()

	first := seedProduct(t, st, "Steel Mug", "", true)
	second := seedProduct(t, st, "Steel Mug", "", true)

	_, err := svc.Run(ctx, models.EntityTypeProduct)
	require.NoError(t, err)

	a, err := st.GetProduct(ctx, first.ID)
	require.NoError(t, err)
	b, err := st.GetProduct(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, "steel-mug", a.Slug)
	assert.Equal(t, "steel-mug-1709294400000", b.Slug)
}

func TestMigrationKeepsSlugAssignedMidRun(t *testing.T) {
	inner := newTestStore(t)
	bag := seedProduct(t, inner, "Classic Messenger Bag", "", true)
	st := editingStore{Store: inner, editID: bag.ID, slug: "hand-picked"}
	svc := NewMigrationService(st, NewSlugService(st).WithClock(fixedClock))
	ctx := context.Background()

	report, err := svc.Run(ctx, models.EntityTypeProduct)
	require.NoError(t, err)

	summary := report.Results[0]
	assert.Equal(t, 1, summary.Found)
	assert.Equal(t, 0, summary.Updated)
	assert.Equal(t, 1, summary.Skipped)
	assert.Equal(t, 0, summary.Errored)
	assert.Empty(t, summary.Errors)

	stored, err := inner.GetProduct(ctx, bag.ID)
	require.NoError(t, err)
	assert.Equal(t, "hand-picked", stored.Slug)
}

func TestMigrationRejectsConcurrentRun(t *testing.T) {
	st := newTestStore(t)
	svc := NewMigrationService(st, NewSlugService(st))

	svc.running.Lock()
	defer svc.running.Unlock()

	_, err := svc.Run(context.Background())
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestParseMigrationTarget(t *testing.T) {
	types, err := ParseMigrationTarget("")
	require.NoError(t, err)
	assert.Equal(t, models.SluggableTypes(), types)

	types, err = ParseMigrationTarget("category")
	require.NoError(t, err)
	assert.Equal(t, []models.EntityType{models.EntityTypeCategory}, types)

	_, err = ParseMigrationTarget("other")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestDashboardStats(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seedProduct(t, st, "Steel Mug", "steel-mug", true)
	seedProduct(t, st, "Legacy Mug", "", true)
	seedProduct(t, st, "Retired Mug", "retired-mug", false)
	seedCategory(t, st, "Bags", "bags")
	seedRedirect(t, st, "old-mug", "steel-mug", models.EntityTypeProduct)

	stats, err := NewAdminService(st).GetDashboardStats(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, stats.ActiveProducts)
	assert.EqualValues(t, 1, stats.ActiveCategories)
	assert.EqualValues(t, 1, stats.ActiveRedirects)
	assert.Zero(t, stats.NewInquiries)
	require.Len(t, stats.SlugCoverage, 2)
	assert.EqualValues(t, 1, stats.SlugCoverage[0].WithoutSlug)
}
