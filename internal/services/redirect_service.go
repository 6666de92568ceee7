// internal/services/redirect_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

type RedirectService struct {
	store store.RedirectStore
}

type CreateRedirectRequest struct {
	FromSlug   string            `json:"from_slug" yaml:"from" validate:"required,slug,max=255"`
	ToSlug     string            `json:"to_slug" yaml:"to" validate:"required,slug,max=255,nefield=FromSlug"`
	EntityType models.EntityType `json:"entity_type" yaml:"type" validate:"required,entity_type"`
	IsActive   *bool             `json:"is_active,omitempty" yaml:"active,omitempty"`
}

type UpdateRedirectRequest struct {
	FromSlug   *string            `json:"from_slug,omitempty" validate:"omitempty,slug,max=255"`
	ToSlug     *string            `json:"to_slug,omitempty" validate:"omitempty,slug,max=255"`
	EntityType *models.EntityType `json:"entity_type,omitempty" validate:"omitempty,entity_type"`
	IsActive   *bool              `json:"is_active,omitempty"`
}

type RedirectListParams struct {
	utils.PaginationParams
	EntityType models.EntityType
	Active     *bool
}

// ImportSummary reports a bulk redirect import.
type ImportSummary struct {
	Total   int           `json:"total"`
	Created int           `json:"created"`
	Failed  int           `json:"failed"`
	Errors  []ImportError `json:"errors,omitempty"`
}

type ImportError struct {
	Index    int    `json:"index"`
	FromSlug string `json:"from_slug"`
	Error    string `json:"error"`
}

func NewRedirectService(st store.RedirectStore) *RedirectService {
	return &RedirectService{store: st}
}

// FindRedirect returns the active redirect for fromSlug, or an error wrapping
// apperror.ErrNotFound when none exists.
func (s *RedirectService) FindRedirect(ctx context.Context, fromSlug string, t models.EntityType) (*models.Redirect, error) {
	redirect, err := s.store.FindActiveRedirect(ctx, t, fromSlug)
	if err != nil {
		return nil, storageError("find redirect", err)
	}
	return redirect, nil
}

func (s *RedirectService) GetRedirect(ctx context.Context, id string) (*models.Redirect, error) {
	redirect, err := s.store.GetRedirect(ctx, id)
	if err != nil {
		return nil, storageError("get redirect", err)
	}
	return redirect, nil
}

func (s *RedirectService) ListRedirects(ctx context.Context, params RedirectListParams) ([]models.Redirect, int64, error) {
	redirects, total, err := s.store.ListRedirects(ctx, store.RedirectFilter{
		Page:       params.StorePage(),
		EntityType: params.EntityType,
		Active:     params.Active,
		Search:     params.Search,
	})
	if err != nil {
		return nil, 0, storageError("list redirects", err)
	}
	return redirects, total, nil
}

func (s *RedirectService) CreateRedirect(ctx context.Context, req *CreateRedirectRequest, createdBy string) (*models.Redirect, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	redirect := &models.Redirect{
		FromSlug:   req.FromSlug,
		ToSlug:     req.ToSlug,
		EntityType: req.EntityType,
		IsActive:   true,
		CreatedBy:  createdBy,
	}
	if req.IsActive != nil {
		redirect.IsActive = *req.IsActive
	}

	if err := s.store.CreateRedirect(ctx, redirect); err != nil {
		return nil, storageError("create redirect", err)
	}
	return redirect, nil
}

func (s *RedirectService) UpdateRedirect(ctx context.Context, id string, req *UpdateRedirectRequest) (*models.Redirect, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, err
	}

	redirect, err := s.GetRedirect(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FromSlug != nil {
		redirect.FromSlug = *req.FromSlug
	}
	if req.ToSlug != nil {
		redirect.ToSlug = *req.ToSlug
	}
	if req.EntityType != nil {
		redirect.EntityType = *req.EntityType
	}
	if req.IsActive != nil {
		redirect.IsActive = *req.IsActive
	}
	if redirect.FromSlug == redirect.ToSlug {
		return nil, apperror.Invalid("to_slug", "nefield", "to_slug must differ from from_slug")
	}

	if err := s.store.UpdateRedirect(ctx, redirect); err != nil {
		return nil, storageError("update redirect", err)
	}
	return redirect, nil
}

func (s *RedirectService) DeleteRedirect(ctx context.Context, id string) error {
	return storageError("delete redirect", s.store.DeleteRedirect(ctx, id))
}

// ClaimSlug deactivates active redirects whose source is about to become a
// live slug, so a redirect never shadows a real entity.
func (s *RedirectService) ClaimSlug(ctx context.Context, t models.EntityType, slug string) error {
	if slug == "" {
		return nil
	}
	n, err := s.store.DeactivateRedirectsFrom(ctx, t, slug)
	if err != nil {
		return storageError("deactivate redirects", err)
	}
	if n > 0 {
		logrus.WithFields(logrus.Fields{
			"entity_type": t,
			"slug":        slug,
			"count":       n,
		}).Info("Deactivated redirects shadowing a live slug")
	}
	return nil
}

// RecordRename keeps the table single-hop after oldSlug was replaced by newSlug:
// older redirects are retargeted to newSlug and oldSlug itself redirects there.
func (s *RedirectService) RecordRename(ctx context.Context, t models.EntityType, oldSlug, newSlug, actor string) error {
	if oldSlug == newSlug {
		return nil
	}
	if err := s.ClaimSlug(ctx, t, newSlug); err != nil {
		return err
	}
	if oldSlug == "" {
		return nil
	}

	if _, err := s.store.RetargetRedirects(ctx, t, oldSlug, newSlug); err != nil {
		return storageError("retarget redirects", err)
	}

	redirect := &models.Redirect{
		FromSlug:   oldSlug,
		ToSlug:     newSlug,
		EntityType: t,
		IsActive:   true,
		CreatedBy:  actor,
	}
	if err := s.store.CreateRedirect(ctx, redirect); err != nil {
		return storageError("create rename redirect", err)
	}

	logrus.WithFields(logrus.Fields{
		"entity_type": t,
		"from":        oldSlug,
		"to":          newSlug,
	}).Info("Recorded slug rename")
	return nil
}

// ImportRedirects creates each entry independently; invalid entries are reported, not fatal.
func (s *RedirectService) ImportRedirects(ctx context.Context, entries []CreateRedirectRequest, createdBy string) *ImportSummary {
	summary := &ImportSummary{Total: len(entries)}
	for i := range entries {
		entry := &entries[i]
		if _, err := s.CreateRedirect(ctx, entry, createdBy); err != nil {
			summary.Failed++
			summary.Errors = append(summary.Errors, ImportError{Index: i, FromSlug: entry.FromSlug, Error: err.Error()})
			continue
		}
		summary.Created++
	}
	return summary
}

// isNotFound reports whether err is a miss rather than a failure.
func isNotFound(err error) bool {
	return errors.Is(err, apperror.ErrNotFound)
}

func wrapNotFound(what, key string) error {
	return fmt.Errorf("%s %q: %w", what, key, apperror.ErrNotFound)
}
