package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"payroll-reports/internal/config"
	"payroll-reports/internal/db"
)

func newMigrateCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations to the payroll database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rt.cfg.Driver != config.DriverSQLite {
				return fmt.Errorf("migrations target the %s driver (got %s)",
					config.DriverSQLite, rt.cfg.Driver)
			}

			sqlDB, err := db.Open(&rt.cfg)
			if err != nil {
				return err
			}
			defer sqlDB.Close() //nolint:errcheck

			if err := db.RunMigrations(sqlDB); err != nil {
				return err
			}
			rt.logger.Info("migrations applied", "dsn", rt.cfg.DSN)
			fmt.Fprintln(cmd.OutOrStdout(), "Migrations applied.")
			return nil
		},
	}
}

func newSeedCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Populate the payroll database with the demo data set",
		Long: "Applies pending migrations and inserts the demo pay period, " +
			"categories, employees, and payroll entries. Does nothing when a " +
			"pay period already exists.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if rt.cfg.Driver != config.DriverSQLite {
				return fmt.Errorf("seeding targets the %s driver (got %s)",
					config.DriverSQLite, rt.cfg.Driver)
			}

			sqlDB, err := db.Open(&rt.cfg)
			if err != nil {
				return err
			}
			defer sqlDB.Close() //nolint:errcheck

			if err := db.RunMigrations(sqlDB); err != nil {
				return err
			}
			if err := db.Seed(cmd.Context(), sqlDB); err != nil {
				return err
			}
			rt.logger.Info("demo data seeded", "dsn", rt.cfg.DSN)
			fmt.Fprintln(cmd.OutOrStdout(), "Demo data seeded.")
			return nil
		},
	}
}
