// Package cli implements the payroll reporting command line interface.
package cli

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"payroll-reports/internal/config"
	"payroll-reports/internal/db"
	"payroll-reports/internal/repository"
)

var (
	version = "dev"
	commit  = "none"
)

// Execute runs the CLI and returns the process exit code.
func Execute() int {
	rootCmd := newRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// runtime carries the settings and logger resolved by the root command's
// PersistentPreRunE into the subcommands.
type runtime struct {
	cfg    config.Config
	logger *slog.Logger
}

// openRepo opens the configured database and wraps it in a PayrollRepo.
// The caller owns the returned handle and must close it on every path.
func (rt *runtime) openRepo() (*sql.DB, *repository.PayrollRepo, error) {
	sqlDB, err := db.Open(&rt.cfg)
	if err != nil {
		return nil, nil, err
	}
	return sqlDB, repository.New(sqlDB), nil
}

func newRootCmd() *cobra.Command {
	rt := &runtime{}
	var (
		driver   string
		dsn      string
		logLevel string
		profile  string
	)

	rootCmd := &cobra.Command{
		Use:           "payroll",
		Short:         "Payroll reporting and CSV export utilities",
		Long:          "Ad-hoc reporting utilities for the payroll database: per-period CSV extracts, summary statistics, and schema inspection.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// .env supplies env vars that are not already set.
			if err := config.LoadDotEnv(".env"); err != nil {
				return err
			}

			// Load profile config; the file is optional.
			ucfg, err := LoadUserConfig()
			if err != nil {
				ucfg = &UserConfig{
					CurrentProfile: "default",
					Profiles:       map[string]Profile{},
				}
			}
			p := ucfg.ActiveProfile(profile)

			// Apply precedence: flag > env > profile > default.
			if !cmd.Flags().Changed("driver") {
				if v := os.Getenv("PAYROLL_DB_DRIVER"); v != "" {
					driver = v
				} else if p.Driver != "" {
					driver = p.Driver
				}
			}
			if !cmd.Flags().Changed("dsn") {
				if v := os.Getenv("PAYROLL_DB_DSN"); v != "" {
					dsn = v
				} else if p.DSN != "" {
					dsn = p.DSN
				}
			}
			if !cmd.Flags().Changed("log-level") {
				if v := os.Getenv("PAYROLL_LOG_LEVEL"); v != "" {
					logLevel = v
				} else if p.LogLevel != "" {
					logLevel = p.LogLevel
				}
			}

			rt.cfg = config.Config{Driver: driver, DSN: dsn, LogLevel: logLevel}
			if err := rt.cfg.Validate(); err != nil {
				return err
			}

			rt.logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: rt.cfg.SlogLevel(),
			})).With("run_id", uuid.NewString())
			return nil
		},
	}

	rootCmd.PersistentFlags().StringVar(&driver, "driver", config.DriverSQLite, "Database driver (sqlite3, duckdb)")
	rootCmd.PersistentFlags().StringVar(&dsn, "dsn", "payroll.sqlite", "Database DSN (file path for sqlite3/duckdb)")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "p", "", "Config profile to use")

	// Report commands
	rootCmd.AddCommand(newDetailsCmd(rt))
	rootCmd.AddCommand(newContributionCmd(rt))
	rootCmd.AddCommand(newCategoriesCmd(rt))
	rootCmd.AddCommand(newInspectCmd(rt))

	// Database lifecycle commands
	rootCmd.AddCommand(newMigrateCmd(rt))
	rootCmd.AddCommand(newSeedCmd(rt))

	// Housekeeping
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newCommandsCmd())
	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newCompletionCmd())

	return rootCmd
}

func newCompletionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "completion [bash|zsh|fish|powershell]",
		Short: "Generate shell completion scripts",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch args[0] {
			case "bash":
				return cmd.Root().GenBashCompletion(os.Stdout)
			case "zsh":
				return cmd.Root().GenZshCompletion(os.Stdout)
			case "fish":
				return cmd.Root().GenFishCompletion(os.Stdout, true)
			case "powershell":
				return cmd.Root().GenPowerShellCompletionWithDesc(os.Stdout)
			default:
				return fmt.Errorf("unsupported shell: %s", args[0])
			}
		},
	}
	return cmd
}
