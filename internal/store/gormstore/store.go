// internal/store/gormstore/store.go
package gormstore

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/javajoker/wholesale-catalog/internal/store"
)

// Store implements store.Store on top of GORM (postgres or sqlite).
// The handle must be opened with TranslateError enabled.
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for migrations and transactions.
func (s *Store) DB() *gorm.DB {
	return s.db
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (s *Store) Close(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return store.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: %v", store.ErrDuplicateKey, err)
	}
	return err
}

// translateSlug is used for catalog tables, whose only secondary unique index is the slug.
func translateSlug(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %v", store.ErrDuplicateSlug, err)
	}
	return translate(err)
}

func paginate(query *gorm.DB, page store.Page) *gorm.DB {
	if page.Offset > 0 {
		query = query.Offset(page.Offset)
	}
	if page.Limit > 0 {
		query = query.Limit(page.Limit)
	}
	return query
}

func likePattern(search string) string {
	return "%" + search + "%"
}
