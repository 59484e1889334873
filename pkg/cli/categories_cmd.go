package cli

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"payroll-reports/internal/domain"
	"payroll-reports/internal/export"
	"payroll-reports/internal/report"
)

func newCategoriesCmd(rt *runtime) *cobra.Command {
	var (
		output    string
		statsOnly bool
	)

	cmd := &cobra.Command{
		Use:   "categories <period>",
		Short: "Export employee identity categories for a pay period",
		Long: "Exports the identity category (code, name, description) of every " +
			"employee paid in the given YYYY-MM pay period, together with their " +
			"gross/net totals.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := domain.ParsePeriodKey(args[0])
			if err != nil {
				return err
			}

			sqlDB, repo, err := rt.openRepo()
			if err != nil {
				return err
			}
			defer sqlDB.Close() //nolint:errcheck

			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			period, err := repo.FindPeriod(ctx, key)
			if err != nil {
				return err
			}
			rt.logger.Info("period resolved", "period", period.Name, "period_id", period.ID)

			stats, err := repo.CategorySummaries(ctx, period)
			if err != nil {
				return err
			}
			if len(stats) == 0 {
				return domain.ErrEmptyResult("no employee rows for period %s", period.Name)
			}
			report.WriteCategorySummary(out, period, stats)

			if statsOnly {
				fmt.Fprintln(out, "Stats-only mode, no file exported.")
				return nil
			}

			rs, err := repo.EmployeeCategories(ctx, period)
			if err != nil {
				return err
			}

			if output == "" {
				output = export.DefaultFilename("员工身份类别", key, time.Now())
			}

			n, err := export.WriteCSV(output, rs, rs.Columns, report.NewFormatter())
			if err != nil {
				return err
			}

			abs, err := filepath.Abs(output)
			if err != nil {
				abs = output
			}
			rt.logger.Info("category export written", "rows", n, "path", abs)
			fmt.Fprintf(out, "Exported %d employee category rows to %s\n", n, abs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV path (default: timestamped name in the working directory)")
	cmd.Flags().BoolVar(&statsOnly, "stats-only", false, "Print summary statistics without writing a file")

	return cmd
}
