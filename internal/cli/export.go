package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func NewExportCommand(rootOpts *RootOptions) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a JSON snapshot of every collection",
		Long: `Write products, orders and testimonials as a single JSON document.

The output can be fed back to "storectl import" or the admin restore endpoint.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withStore(rootOpts, cmd.ErrOrStderr(), func(s *store) error {
				raw, err := s.snapshot.Export(cmd.Context())
				if err != nil {
					return err
				}

				var pretty bytes.Buffer
				if err := json.Indent(&pretty, raw, "", "  "); err != nil {
					return fmt.Errorf("format snapshot: %w", err)
				}
				pretty.WriteByte('\n')

				if output == "" || output == "-" {
					_, err = cmd.OutOrStdout().Write(pretty.Bytes())
					return err
				}
				if err := os.WriteFile(output, pretty.Bytes(), 0o600); err != nil {
					return fmt.Errorf("write %s: %w", output, err)
				}
				fmt.Fprintf(cmd.ErrOrStderr(), "snapshot written to %s\n", output)
				return nil
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}
