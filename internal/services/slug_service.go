// internal/services/slug_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

const maxSlugAttempts = 3

// SlugService derives and reserves slugs. The unique index in storage is the
// source of truth; the read-side check only picks a likely-free candidate.
type SlugService struct {
	store store.CatalogStore
	now   func() time.Time
}

// SlugPlan is the slug an entity write should carry. Base is the derived
// candidate before disambiguation and is empty for caller-supplied slugs,
// which are never rewritten.
type SlugPlan struct {
	Slug string
	Base string
}

func (p SlugPlan) Generated() bool {
	return p.Base != ""
}

func NewSlugService(st store.CatalogStore) *SlugService {
	return &SlugService{store: st, now: time.Now}
}

// WithClock replaces the clock used for timestamp suffixes.
func (s *SlugService) WithClock(now func() time.Time) *SlugService {
	s.now = now
	return s
}

func emptySlugError(field string) error {
	return apperror.Invalid(field, "slug", field+" produces an empty slug")
}

// EnsureUnique returns candidate when no other entity of type t owns it, and a
// millisecond-timestamp suffixed variant otherwise.
func (s *SlugService) EnsureUnique(ctx context.Context, candidate string, t models.EntityType, excludeID string) (string, error) {
	if candidate == "" {
		return "", emptySlugError("slug")
	}

	taken, err := s.store.SlugTaken(ctx, t, candidate, excludeID)
	if err != nil {
		return "", storageError("check slug", err)
	}
	if !taken {
		return candidate, nil
	}
	return s.suffixed(candidate, ""), nil
}

func (s *SlugService) suffixed(base, previous string) string {
	ts := s.now().UnixMilli()
	next := fmt.Sprintf("%s-%d", base, ts)
	for i := int64(1); next == previous; i++ {
		next = fmt.Sprintf("%s-%d", base, ts+i)
	}
	return next
}

// PlanCreate decides the slug for a new entity: an explicit slug must be free,
// otherwise one is derived from name.
func (s *SlugService) PlanCreate(ctx context.Context, t models.EntityType, name, explicit string) (SlugPlan, error) {
	if explicit != "" {
		if err := s.claimExplicit(ctx, t, explicit, ""); err != nil {
			return SlugPlan{}, err
		}
		return SlugPlan{Slug: explicit}, nil
	}
	return s.planGenerated(ctx, t, name, "")
}

// PlanUpdate decides the slug after an update. An explicit different slug wins,
// regenerate derives from the (possibly new) name, anything else keeps current.
func (s *SlugService) PlanUpdate(ctx context.Context, t models.EntityType, id, current, name string, explicit *string, regenerate bool) (SlugPlan, error) {
	switch {
	case explicit != nil:
		if *explicit == current {
			return SlugPlan{Slug: current}, nil
		}
		if err := s.claimExplicit(ctx, t, *explicit, id); err != nil {
			return SlugPlan{}, err
		}
		return SlugPlan{Slug: *explicit}, nil
	case regenerate:
		if utils.GenerateSlug(name) == current && current != "" {
			return SlugPlan{Slug: current}, nil
		}
		return s.planGenerated(ctx, t, name, id)
	}
	return SlugPlan{Slug: current}, nil
}

func (s *SlugService) planGenerated(ctx context.Context, t models.EntityType, name, excludeID string) (SlugPlan, error) {
	base := utils.GenerateSlug(name)
	if base == "" {
		return SlugPlan{}, emptySlugError("name")
	}
	slug, err := s.EnsureUnique(ctx, base, t, excludeID)
	if err != nil {
		return SlugPlan{}, err
	}
	return SlugPlan{Slug: slug, Base: base}, nil
}

func (s *SlugService) claimExplicit(ctx context.Context, t models.EntityType, slug, excludeID string) error {
	if !utils.IsValidSlug(slug) {
		return apperror.Invalid("slug", "slug", "slug must contain only lowercase letters, digits and single hyphens")
	}
	taken, err := s.store.SlugTaken(ctx, t, slug, excludeID)
	if err != nil {
		return storageError("check slug", err)
	}
	if taken {
		return fmt.Errorf("%s slug %q: %w", t, slug, apperror.ErrConflict)
	}
	return nil
}

// Write runs write with the planned slug. When storage reports a duplicate
// slug, generated plans retry with a fresh suffix; explicit ones conflict.
func (s *SlugService) Write(ctx context.Context, plan SlugPlan, write func(slug string) error) (string, error) {
	slug := plan.Slug
	for attempt := 1; ; attempt++ {
		err := write(slug)
		if err == nil {
			return slug, nil
		}
		if !errors.Is(err, store.ErrDuplicateSlug) {
			return "", storageError("save slug", err)
		}
		if !plan.Generated() {
			return "", fmt.Errorf("slug %q: %w", slug, apperror.ErrConflict)
		}
		if attempt >= maxSlugAttempts {
			return "", fmt.Errorf("slug %q still taken after %d attempts: %w", plan.Base, attempt, apperror.ErrConflict)
		}

		next := s.suffixed(plan.Base, slug)
		logrus.WithFields(logrus.Fields{
			"slug":    slug,
			"retry":   next,
			"attempt": attempt,
		}).Warn("Slug taken concurrently, retrying")
		slug = next
	}
}

// AssignSlug reserves candidate (or a disambiguated variant) for one entity.
func (s *SlugService) AssignSlug(ctx context.Context, t models.EntityType, id, candidate string) (string, error) {
	slug, err := s.EnsureUnique(ctx, candidate, t, id)
	if err != nil {
		return "", err
	}
	return s.Write(ctx, SlugPlan{Slug: slug, Base: candidate}, func(slug string) error {
		return s.store.SetSlug(ctx, t, id, slug)
	})
}
