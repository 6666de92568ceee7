// internal/cli/root.go
package cli

import (
	"context"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/javajoker/wholesale-catalog/internal/config"
	"github.com/javajoker/wholesale-catalog/internal/database"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

// StoreOpener builds the storage client a command runs against.
type StoreOpener func(ctx context.Context) (store.Store, error)

func openConfiguredStore(ctx context.Context) (store.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err == nil {
		logrus.SetLevel(level)
	}
	return database.OpenStore(ctx, cfg)
}

// NewRootCmd assembles catalogctl around open.
func NewRootCmd(open StoreOpener) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Maintenance tasks for the wholesale catalog",
		Long:          "catalogctl backfills slugs, reports slug coverage and bulk-loads redirects against the configured storage backend",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(newMigrateSlugsCmd(open))
	rootCmd.AddCommand(newSlugStatusCmd(open))
	rootCmd.AddCommand(newRedirectsCmd(open))
	return rootCmd
}

// Execute runs the CLI
func Execute() error {
	rootCmd := NewRootCmd(openConfiguredStore)
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), "%v", err)
	}
	return err
}

// withStore opens a store for one command and closes it afterwards.
func withStore(cmd *cobra.Command, open StoreOpener, fn func(ctx context.Context, st store.Store) error) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	st, err := open(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			logrus.WithError(err).Warn("Failed to close storage")
		}
	}()

	return fn(ctx, st)
}
