package cli

import (
	"fmt"

	"gaming-storefront/internal/seed"

	"github.com/spf13/cobra"
)

func NewSeedCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Store the default catalog and testimonials if never written",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := seed.Load()
			if err != nil {
				return err
			}

			return withStore(rootOpts, cmd.ErrOrStderr(), func(s *store) error {
				if err := s.snapshot.SeedDefaults(cmd.Context(), defaults); err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), "defaults seeded where missing")
				return nil
			})
		},
	}
}
