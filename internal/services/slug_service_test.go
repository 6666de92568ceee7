package services

import (
	"context"
	"fmt"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/models"
)

var slugCharset = regexp.MustCompile(`^[a-z0-9-]+$`)

func TestEnsureUnique(t *testing.T) {
	st := newTestStore(t)
	svc := NewSlugService(st).WithClock(fixedClock)
	ctx := context.Background()

	owner := seedProduct(t, st, "Leather Tote Bag", "leather-tote-bag", true)

	slug, err := svc.EnsureUnique(ctx, "canvas-tote", models.EntityTypeProduct, "")
	require.NoError(t, err)
	assert.Equal(t, "canvas-tote", slug)

	slug, err = svc.EnsureUnique(ctx, "leather-tote-bag", models.EntityTypeProduct, "")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("leather-tote-bag-%d", fixedNow.UnixMilli()), slug)

	// the owner keeps its own slug
	slug, err = svc.EnsureUnique(ctx, "leather-tote-bag", models.EntityTypeProduct, owner.ID)
	require.NoError(t, err)
	assert.Equal(t, "leather-tote-bag", slug)

	// uniqueness is scoped per entity type
	slug, err = svc.EnsureUnique(ctx, "leather-tote-bag", models.EntityTypeCategory, "")
	require.NoError(t, err)
	assert.Equal(t, "leather-tote-bag", slug)

	_, err = svc.EnsureUnique(ctx, "", models.EntityTypeProduct, "")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestAssignSlugRetriesOnDuplicateKey(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	seedProduct(t, st, "Classic Messenger Bag", "classic-messenger-bag", true)
	late := seedProduct(t, st, "Classic Messenger Bag", "", true)

	// the read-side check is blind, so only the unique index catches the clash
	svc := NewSlugService(blindStore{st}).WithClock(fixedClock)
	slug, err := svc.AssignSlug(ctx, models.EntityTypeProduct, late.ID, "classic-messenger-bag")
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("classic-messenger-bag-%d", fixedNow.UnixMilli()), slug)

	stored, err := st.GetProduct(ctx, late.ID)
	require.NoError(t, err)
	assert.Equal(t, slug, stored.Slug)
}

func TestAssignSlugGivesUpAfterMaxAttempts(t *testing.T) {
	st := newTestStore(t)
	ctx := context.Background()

	base := "steel-mug"
	seedProduct(t, st, "Steel Mug", base, true)
	seedProduct(t, st, "Steel Mug", fmt.Sprintf("%s-%d", base, fixedNow.UnixMilli()), true)
	seedProduct(t, st, "Steel Mug", fmt.Sprintf("%s-%d", base, fixedNow.UnixMilli()+1), true)
	target := seedProduct(t, st, "Steel Mug", "", true)

	svc := NewSlugService(blindStore{st}).WithClock(fixedClock)
	_, err := svc.AssignSlug(ctx, models.EntityTypeProduct, target.ID, base)
	assert.ErrorIs(t, err, apperror.ErrConflict)
}

func TestSameNameYieldsDistinctSlugs(t *testing.T) {
	st := newTestStore(t)
	slugs := NewSlugService(st).WithClock(fixedClock)
	redirects := NewRedirectService(st)
	products := NewProductService(st, slugs, redirects, "usd")
	migrations := NewMigrationService(st, slugs)
	ctx := context.Background()

	legacy := seedProduct(t, st, "Classic Messenger Bag", "", true)

	report, err := migrations.Run(ctx, models.EntityTypeProduct)
	require.NoError(t, err)
	assert.Equal(t, 1, report.Results[0].Updated)

	stored, err := st.GetProduct(ctx, legacy.ID)
	require.NoError(t, err)
	assert.Equal(t, "classic-messenger-bag", stored.Slug)

	second, err := products.CreateProduct(ctx, &CreateProductRequest{Name: "Classic Messenger Bag"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("classic-messenger-bag-%d", fixedNow.UnixMilli()), second.Slug)
	assert.NotEqual(t, stored.Slug, second.Slug)
	assert.Regexp(t, slugCharset, second.Slug)
}

func TestPlanUpdate(t *testing.T) {
	st := newTestStore(t)
	svc := NewSlugService(st).WithClock(fixedClock)
	ctx := context.Background()

	other := seedProduct(t, st, "Canvas Tote", "canvas-tote", true)
	self := seedProduct(t, st, "Steel Mug", "steel-mug", true)

	plan, err := svc.PlanUpdate(ctx, models.EntityTypeProduct, self.ID, "steel-mug", "Steel Mug", nil, false)
	require.NoError(t, err)
	assert.Equal(t, SlugPlan{Slug: "steel-mug"}, plan)

	explicit := other.Slug
	_, err = svc.PlanUpdate(ctx, models.EntityTypeProduct, self.ID, "steel-mug", "Steel Mug", &explicit, false)
	assert.ErrorIs(t, err, apperror.ErrConflict)

	malformed := "Not A Slug"
	_, err = svc.PlanUpdate(ctx, models.EntityTypeProduct, self.ID, "steel-mug", "Steel Mug", &malformed, false)
	assert.ErrorIs(t, err, apperror.ErrValidation)

	plan, err = svc.PlanUpdate(ctx, models.EntityTypeProduct, self.ID, "steel-mug", "Insulated Steel Mug", nil, true)
	require.NoError(t, err)
	assert.Equal(t, "insulated-steel-mug", plan.Slug)
	assert.True(t, plan.Generated())

	_, err = svc.PlanUpdate(ctx, models.EntityTypeProduct, self.ID, "steel-mug", "???", nil, true)
	assert.ErrorIs(t, err, apperror.ErrValidation)
}
