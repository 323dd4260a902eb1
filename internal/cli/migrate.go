package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/testdriven/employee-api/internal/infrastructure/db/relational"
)

// NewMigrateCommand creates the migrate command.
func NewMigrateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the database schema and exit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt, err := bootstrap(cmd.Context(), rootOpts)
			if err != nil {
				return err
			}
			defer rt.close()

			if err := relational.Migrate(cmd.Context(), rt.db); err != nil {
				return err
			}

			rt.log.Info().Msg("schema up to date")
			fmt.Fprintln(cmd.OutOrStdout(), "schema up to date")
			return nil
		},
	}
}
