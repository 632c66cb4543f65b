package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"freight/internal/adapters/out/postgres"
)

func newMigrateCommand(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Create or update the postgres tables",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := LoadConfig(opts.envFile)
			if err != nil {
				return err
			}
			if cfg.Storage != StoragePostgres {
				return fmt.Errorf("migrate needs STORAGE=%s, got %q", StoragePostgres, cfg.Storage)
			}

			db, err := openDatabase(cfg)
			if err != nil {
				return err
			}
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			defer sqlDB.Close()

			if err = postgres.Migrate(cmd.Context(), db); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "migrated")
			return nil
		},
	}
}
