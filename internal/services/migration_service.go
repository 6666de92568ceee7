// internal/services/migration_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/javajoker/wholesale-catalog/internal/apperror"
	"github.com/javajoker/wholesale-catalog/internal/models"
	"github.com/javajoker/wholesale-catalog/internal/store"
	"github.com/javajoker/wholesale-catalog/internal/utils"
)

// MigrationService backfills slugs for entities created before slugs existed.
// Entities are processed one at a time; a failure is recorded and the batch continues.
type MigrationService struct {
	store   store.CatalogStore
	slugs   *SlugService
	running sync.Mutex
	now     func() time.Time
}

type MigrationError struct {
	EntityID string `json:"entity_id"`
	Name     string `json:"name"`
	Error    string `json:"error"`
}

type MigrationSummary struct {
	EntityType models.EntityType `json:"entity_type"`
	Found      int               `json:"found"`
	Updated    int               `json:"updated"`
	Skipped    int               `json:"skipped"`
	Errored    int               `json:"errored"`
	Errors     []MigrationError  `json:"errors"`
}

type MigrationReport struct {
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
	Results    []MigrationSummary `json:"results"`
}

// Totals sums the per-type summaries.
func (r *MigrationReport) Totals() MigrationSummary {
	var total MigrationSummary
	for _, res := range r.Results {
		total.Found += res.Found
		total.Updated += res.Updated
		total.Skipped += res.Skipped
		total.Errored += res.Errored
	}
	return total
}

type SlugStatus struct {
	Counts []models.SlugCounts `json:"counts"`
}

func NewMigrationService(st store.CatalogStore, slugs *SlugService) *MigrationService {
	return &MigrationService{store: st, slugs: slugs, now: time.Now}
}

// ParseMigrationTarget maps a "type" argument to the entity types it covers.
func ParseMigrationTarget(target string) ([]models.EntityType, error) {
	switch target {
	case "", "all":
		return models.SluggableTypes(), nil
	case string(models.EntityTypeProduct):
		return []models.EntityType{models.EntityTypeProduct}, nil
	case string(models.EntityTypeCategory):
		return []models.EntityType{models.EntityTypeCategory}, nil
	}
	return nil, apperror.Invalid("type", "oneof", "type must be one of: product, category, all")
}

// Run backfills the given types in order. Only one run may be active at a time.
func (s *MigrationService) Run(ctx context.Context, types ...models.EntityType) (*MigrationReport, error) {
	if !s.running.TryLock() {
		return nil, fmt.Errorf("slug migration already running: %w", apperror.ErrConflict)
	}
	defer s.running.Unlock()

	if len(types) == 0 {
		types = models.SluggableTypes()
	}

	report := &MigrationReport{StartedAt: s.now()}
	for _, t := range types {
		summary, err := s.runType(ctx, t)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, *summary)
	}
	report.FinishedAt = s.now()

	totals := report.Totals()
	logrus.WithFields(logrus.Fields{
		"found":    totals.Found,
		"updated":  totals.Updated,
		"skipped":  totals.Skipped,
		"errored":  totals.Errored,
		"duration": report.FinishedAt.Sub(report.StartedAt).String(),
	}).Info("Slug migration finished")
	return report, nil
}

func (s *MigrationService) runType(ctx context.Context, t models.EntityType) (*MigrationSummary, error) {
	if !t.Sluggable() {
		return nil, apperror.Invalid("type", "sluggable_type", "type must be one of: product, category")
	}

	entities, err := s.store.MissingSlugs(ctx, t)
	if err != nil {
		return nil, storageError("list entities without slug", err)
	}

	summary := &MigrationSummary{EntityType: t, Found: len(entities), Errors: []MigrationError{}}
	for _, entity := range entities {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		slug, err := s.migrateOne(ctx, t, entity)
		if errors.Is(err, store.ErrSlugAlreadySet) {
			summary.Skipped++
			logrus.WithFields(logrus.Fields{
				"entity_type": t,
				"entity_id":   entity.EntityID(),
			}).Info("Entity received a slug during migration, skipped")
			continue
		}
		if err != nil {
			summary.Errored++
			summary.Errors = append(summary.Errors, MigrationError{
				EntityID: entity.EntityID(),
				Name:     entity.DisplayName(),
				Error:    err.Error(),
			})
			logrus.WithError(err).WithFields(logrus.Fields{
				"entity_type": t,
				"entity_id":   entity.EntityID(),
			}).Warn("Slug migration failed for entity")
			continue
		}

		summary.Updated++
		logrus.WithFields(logrus.Fields{
			"entity_type": t,
			"entity_id":   entity.EntityID(),
			"slug":        slug,
		}).Debug("Assigned slug")
	}

	return summary, nil
}

func (s *MigrationService) migrateOne(ctx context.Context, t models.EntityType, entity models.CatalogEntity) (string, error) {
	candidate := utils.GenerateSlug(entity.DisplayName())
	if candidate == "" {
		return "", emptySlugError("name")
	}
	return s.slugs.AssignSlug(ctx, t, entity.EntityID(), candidate)
}

// Status reports slug coverage for every sluggable type.
func (s *MigrationService) Status(ctx context.Context) (*SlugStatus, error) {
	status := &SlugStatus{}
	for _, t := range models.SluggableTypes() {
		counts, err := s.store.SlugCounts(ctx, t)
		if err != nil {
			return nil, storageError("count slugs", err)
		}
		status.Counts = append(status.Counts, *counts)
	}
	return status, nil
}
