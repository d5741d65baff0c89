package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/temporary-accommodation/tasklist/internal/progress"
	"github.com/temporary-accommodation/tasklist/internal/store"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "migrate",
		Short:   "Create the postgres schema",
		GroupID: GroupService,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cfg.Store != "postgres" {
				return fmt.Errorf("migrate needs store=postgres, configured store is %q", cfg.Store)
			}

			display := progress.NewDisplay(cmd.ErrOrStderr(), progress.DetectTerminalCapabilities(os.Stderr))
			display.Start("Migrating database")

			db, err := store.OpenPostgres(cfg.DatabaseURL)
			if err != nil {
				display.Fail(err)
				return err
			}
			defer db.Close()

			if err := store.NewPostgresStore(db).Migrate(cmd.Context()); err != nil {
				display.Fail(err)
				return err
			}
			display.Complete()
			return nil
		},
	}
}
