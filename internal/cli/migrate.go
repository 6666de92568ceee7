// internal/cli/migrate.go
package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javajoker/wholesale-catalog/internal/services"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

func newMigrateSlugsCmd(open StoreOpener) *cobra.Command {
	var target string

	cmd := &cobra.Command{
		Use:   "migrate-slugs",
		Short: "Backfill missing slugs",
		Long:  "Assigns a slug to every product and category that has none. Failures are reported per entity and do not stop the run.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			types, err := services.ParseMigrationTarget(target)
			if err != nil {
				return err
			}

			return withStore(cmd, open, func(ctx context.Context, st store.Store) error {
				migrations := services.NewMigrationService(st, services.NewSlugService(st))
				out := cmd.OutOrStdout()

				printInfo(out, "Backfilling slugs for %s...", target)
				report, err := migrations.Run(ctx, types...)
				if err != nil {
					return err
				}

				for _, res := range report.Results {
					fmt.Fprintf(out, "  %-9s found=%d updated=%d skipped=%d errored=%d\n",
						res.EntityType, res.Found, res.Updated, res.Skipped, res.Errored)
					for _, e := range res.Errors {
						printWarning(out, "%s %s (%q): %s", res.EntityType, e.EntityID, e.Name, e.Error)
					}
				}

				totals := report.Totals()
				if totals.Errored > 0 {
					return fmt.Errorf("%d of %d entities could not be migrated", totals.Errored, totals.Found)
				}
				printSuccess(out, "Updated %d entities in %s", totals.Updated, report.FinishedAt.Sub(report.StartedAt))
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&target, "type", "t", "all", "entity type to migrate: product, category or all")
	return cmd
}

func newSlugStatusCmd(open StoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "slug-status",
		Short: "Show slug coverage",
		Long:  "Shows how many products and categories have a slug",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(cmd, open, func(ctx context.Context, st store.Store) error {
				status, err := services.NewMigrationService(st, services.NewSlugService(st)).Status(ctx)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintln(out, "\n"+strings.Repeat("=", 60))
				fmt.Fprintln(out, "Slug Coverage")
				fmt.Fprintln(out, strings.Repeat("=", 60))
				for _, counts := range status.Counts {
					fmt.Fprintf(out, "  %-9s total=%d with_slug=%d without_slug=%d\n",
						counts.EntityType, counts.Total, counts.WithSlug, counts.WithoutSlug)
				}
				fmt.Fprintln(out)
				return nil
			})
		},
	}
}
