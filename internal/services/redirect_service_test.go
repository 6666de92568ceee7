package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/models"
)

func TestCreateRedirectValidation(t *testing.T) {
	svc := NewRedirectService(newTestStore(t))
	ctx := context.Background()

	tests := []struct {
		name string
		req  CreateRedirectRequest
	}{
		{"self loop", CreateRedirectRequest{FromSlug: "tote", ToSlug: "tote", EntityType: models.EntityTypeProduct}},
		{"bad from slug", CreateRedirectRequest{FromSlug: "Old Tote", ToSlug: "tote", EntityType: models.EntityTypeProduct}},
		{"unknown type", CreateRedirectRequest{FromSlug: "old-tote", ToSlug: "tote", EntityType: "brand"}},
		{"missing target", CreateRedirectRequest{FromSlug: "old-tote", EntityType: models.EntityTypeProduct}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateRedirect(ctx, &tt.req, "")
			assert.ErrorIs(t, err, apperror.ErrValidation)
		})
	}

	inactive := false
	redirect, err := svc.CreateRedirect(ctx, &CreateRedirectRequest{
		FromSlug:   "old-tote",
		ToSlug:     "tote",
		EntityType: models.EntityTypeProduct,
		IsActive:   &inactive,
	}, "")
	require.NoError(t, err)
	assert.False(t, redirect.IsActive)
}

func TestUpdateRedirect(t *testing.T) {
	svc := NewRedirectService(newTestStore(t))
	ctx := context.Background()

	redirect, err := svc.CreateRedirect(ctx, &CreateRedirectRequest{FromSlug: "old-tote", ToSlug: "tote", EntityType: models.EntityTypeProduct}, "")
	require.NoError(t, err)

	loop := "old-tote"
	_, err = svc.UpdateRedirect(ctx, redirect.ID, &UpdateRedirectRequest{ToSlug: &loop})
	assert.ErrorIs(t, err, apperror.ErrValidation)

	off := false
	updated, err := svc.UpdateRedirect(ctx, redirect.ID, &UpdateRedirectRequest{IsActive: &off})
	require.NoError(t, err)
	assert.False(t, updated.IsActive)

	_, err = svc.FindRedirect(ctx, "old-tote", models.EntityTypeProduct)
	assert.ErrorIs(t, err, apperror.ErrNotFound)

	require.NoError(t, svc.DeleteRedirect(ctx, redirect.ID))
	_, err = svc.GetRedirect(ctx, redirect.ID)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestImportRedirectsReportsFailures(t *testing.T) {
	svc := NewRedirectService(newTestStore(t))
	ctx := context.Background()

	summary := svc.ImportRedirects(ctx, []CreateRedirectRequest{
		{FromSlug: "old-tote", ToSlug: "tote", EntityType: models.EntityTypeProduct},
		{FromSlug: "loop", ToSlug: "loop", EntityType: models.EntityTypeProduct},
		{FromSlug: "about-us", ToSlug: "company", EntityType: models.EntityTypeOther},
	}, "")

	assert.Equal(t, 3, summary.Total)
	assert.Equal(t, 2, summary.Created)
	assert.Equal(t, 1, summary.Failed)
	require.Len(t, summary.Errors, 1)
	assert.Equal(t, 1, summary.Errors[0].Index)
	assert.Equal(t, "loop", summary.Errors[0].FromSlug)

	redirect, err := svc.FindRedirect(ctx, "about-us", models.EntityTypeOther)
	require.NoError(t, err)
	assert.Equal(t, "company", redirect.ToSlug)
}
