package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
	"os"
	"slices"

	"github.com/spf13/cobra"
)

var ErrImportNotConfirmed = errors.New("import replaces stored data; rerun with --yes to confirm")

func NewImportCommand(rootOpts *RootOptions) *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "import <snapshot.json>",
		Short: "Replace collections with the contents of a snapshot",
		Long: `Replace every collection present in the snapshot file.

Collections missing from the file (or set to null) are left untouched. Present
collections are replaced, never merged. A malformed file changes nothing.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return ErrImportNotConfirmed
			}

			raw, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("read snapshot: %w", err)
			}

			return withStore(rootOpts, cmd.ErrOrStderr(), func(s *store) error {
				result, err := s.snapshot.Import(cmd.Context(), raw)
				if err != nil {
					return err
				}

				if rootOpts.Format == "json" {
					return json.NewEncoder(cmd.OutOrStdout()).Encode(result)
				}
				if len(result.Replaced) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "nothing to import")
					return nil
				}
				for _, key := range slices.Sorted(maps.Keys(result.Replaced)) {
					fmt.Fprintf(cmd.OutOrStdout(), "replaced %s (%d)\n", key, result.Replaced[key])
				}
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&yes, "yes", false, "confirm that stored collections will be replaced")

	return cmd
}
