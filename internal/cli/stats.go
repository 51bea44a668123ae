package cli

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"gaming-storefront/internal/handoff"

	"github.com/spf13/cobra"
)

func NewStatsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Print the admin dashboard figures",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, cmd.ErrOrStderr(), func(s *store) error {
				stats, err := s.dashboard.Stats(cmd.Context())
				if err != nil {
					return err
				}

				if rootOpts.Format == "json" {
					enc := json.NewEncoder(cmd.OutOrStdout())
					enc.SetIndent("", "  ")
					return enc.Encode(stats)
				}

				w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
				fmt.Fprintf(w, "Store\t%s\n", s.cfg.Store.Name)
				fmt.Fprintf(w, "Pending orders\t%d\n", stats.PendingOrders)
				fmt.Fprintf(w, "Completed orders\t%d\n", stats.CompletedOrders)
				fmt.Fprintf(w, "Sales today\t%s\n", handoff.FormatRupiah(stats.TodaySales))
				fmt.Fprintf(w, "Unique customers\t%d\n", stats.UniqueCustomers)
				fmt.Fprintf(w, "Products\t%d\n", stats.TotalProducts)
				fmt.Fprintf(w, "Testimonials\t%d\n", stats.TotalTestimonials)
				return w.Flush()
			})
		},
	}
}
