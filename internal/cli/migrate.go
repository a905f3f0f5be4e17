package cli

import (
	"github.com/spf13/cobra"

	"cardtracker/internal/database/migration"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Creates the cards table and its indexes when they do not exist.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := bootstrap(cmd.Context())
			if err != nil {
				return err
			}
			defer e.Close()

			return migration.EnsureMigrated(cmd.Context(), e.db, e.log, e.cfg.Database.Host)
		},
	}
}
