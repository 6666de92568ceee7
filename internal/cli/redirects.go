// internal/cli/redirects.go
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/javajoker/wholesale-catalog/internal/services"
	"github.com/javajoker/wholesale-catalog/internal/store"
)

// RedirectFile is the bulk import format:
//
//	redirects:
//	  - from: old-tote
//	    to: canvas-tote
//	    type: product
type RedirectFile struct {
	Redirects []services.CreateRedirectRequest `yaml:"redirects"`
}

// LoadRedirectFile parses a redirect import file.
func LoadRedirectFile(path string) (*RedirectFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read redirect file: %w", err)
	}

	var file RedirectFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse redirect file: %w", err)
	}
	if len(file.Redirects) == 0 {
		return nil, fmt.Errorf("%s contains no redirects", path)
	}
	return &file, nil
}

func newRedirectsCmd(open StoreOpener) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redirects",
		Short: "Manage slug redirects",
	}
	cmd.AddCommand(newRedirectsImportCmd(open))
	return cmd
}

func newRedirectsImportCmd(open StoreOpener) *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yml>",
		Short: "Bulk-load redirects from a YAML file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file, err := LoadRedirectFile(args[0])
			if err != nil {
				return err
			}

			return withStore(cmd, open, func(ctx context.Context, st store.Store) error {
				out := cmd.OutOrStdout()
				printInfo(out, "Importing %d redirect(s)...", len(file.Redirects))

				summary := services.NewRedirectService(st).ImportRedirects(ctx, file.Redirects, "")
				for _, e := range summary.Errors {
					printWarning(out, "entry %d (%s): %s", e.Index+1, e.FromSlug, e.Error)
				}
				if summary.Failed > 0 {
					return fmt.Errorf("%d of %d redirects failed to import", summary.Failed, summary.Total)
				}

				printSuccess(out, "Imported %d redirect(s)", summary.Created)
				return nil
			})
		},
	}
}
