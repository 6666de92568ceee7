// internal/services/catalog_service.go
package services

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

type ResolutionKind int

const (
	// ResolvedEntity means the identifier is the live slug of an active entity.
	ResolvedEntity ResolutionKind = iota
	// RedirectHint means the slug was retired; NewSlug is where it went.
	RedirectHint
	// MovedPermanently means a legacy primary key was used; Location is the canonical URL.
	MovedPermanently
)

type Resolution struct {
	Kind     ResolutionKind
	Entity   models.CatalogEntity
	NewSlug  string
	Location string
}

// CatalogService resolves public catalog identifiers. Redirects are followed
// for one hop only.
type CatalogService struct {
	store     store.CatalogStore
	redirects *RedirectService
}

func NewCatalogService(st store.CatalogStore, redirects *RedirectService) *CatalogService {
	return &CatalogService{store: st, redirects: redirects}
}

// CanonicalPath is the slug URL for an entity, relative to the API version prefix.
func CanonicalPath(t models.EntityType, slug string) string {
	return "/catalog/" + string(t) + "/" + slug
}

func (s *CatalogService) Resolve(ctx context.Context, t models.EntityType, identifier string) (*Resolution, error) {
	if !t.Valid() {
		return nil, apperror.Invalid("type", "entity_type", "type must be one of: product, category, other")
	}
	if identifier == "" {
		return nil, wrapNotFound(string(t), identifier)
	}

	if t == models.EntityTypeProduct && utils.LooksLikeObjectID(identifier) {
		res, err := s.resolveLegacyKey(ctx, t, identifier)
		if err != nil || res != nil {
			return res, err
		}
	}

	if t.Sluggable() {
		entity, err := s.store.FindBySlug(ctx, t, identifier)
		if err == nil {
			return &Resolution{Kind: ResolvedEntity, Entity: entity}, nil
		}
		if err = storageError("find by slug", err); !isNotFound(err) {
			return nil, err
		}
	}

	redirect, err := s.redirects.FindRedirect(ctx, identifier, t)
	if err == nil {
		return &Resolution{Kind: RedirectHint, NewSlug: redirect.ToSlug}, nil
	}
	if !isNotFound(err) {
		return nil, err
	}

	return nil, wrapNotFound(string(t), identifier)
}

// resolveLegacyKey handles pre-slug URLs that used the primary key. It returns
// nil, nil when the key does not match an active entity so slug lookup can run.
func (s *CatalogService) resolveLegacyKey(ctx context.Context, t models.EntityType, id string) (*Resolution, error) {
	entity, err := s.store.FindByID(ctx, t, id)
	if err != nil {
		if err = storageError("find by id", err); isNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	if !entity.Active() {
		return nil, nil
	}

	slug := entity.CurrentSlug()
	if slug == "" {
		return &Resolution{Kind: ResolvedEntity, Entity: entity}, nil
	}

	logrus.WithFields(logrus.Fields{
		"entity_type": t,
		"id":          id,
		"slug":        slug,
	}).Debug("Legacy key lookup, redirecting to slug")
	return &Resolution{
		Kind:     MovedPermanently,
		Entity:   entity,
		NewSlug:  slug,
		Location: CanonicalPath(t, slug),
	}, nil
}
