// internal/database/store.go
package database

import (
	"context"
	"fmt"

	"github.com/javajoker/wholesale-catalog/internal/config"
	"github.com/javajoker/wholesale-catalog/internal/store"
	"github.com/javajoker/wholesale-catalog/internal/store/gormstore"
	"github.com/javajoker/wholesale-catalog/internal/store/mongostore"
)

// OpenStore builds the single storage client for the process, runs schema
// migrations and seeds the first admin account when configured.
func OpenStore(ctx context.Context, cfg *config.Config) (store.Store, error) {
	var st store.Store

	switch cfg.Storage.Driver {
	case "mongo":
		client, err := ConnectMongo(ctx, cfg.Mongo)
		if err != nil {
			return nil, err
		}
		ms := mongostore.New(client, cfg.Mongo.Database)
		if err := ms.EnsureIndexes(ctx); err != nil {
			_ = ms.Close(ctx)
			return nil, fmt.Errorf("failed to create indexes: %w", err)
		}
		st = ms
	default:
		db, err := Initialize(cfg.Storage, cfg.Database)
		if err != nil {
			return nil, err
		}
		if err := RunMigrations(db); err != nil {
			Close(db)
			return nil, err
		}
		st = gormstore.New(db)
	}

	if err := SeedInitialData(ctx, st, cfg.Admin); err != nil {
		_ = st.Close(ctx)
		return nil, err
	}
	return st, nil
}
