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

func newDetailsCmd(rt *runtime) *cobra.Command {
	var (
		output        string
		statsOnly     bool
		includeZero   bool
		analyzeFields bool
	)

	cmd := &cobra.Command{
		Use:   "details <period>",
		Short: "Export the full payroll detail extract for a pay period",
		Long: "Exports every column of the comprehensive payroll view for the given " +
			"YYYY-MM pay period as a CSV extract, after pruning salary item columns " +
			"that are zero for every employee. Summary statistics are always printed.",
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

			stats, err := repo.PayrollStats(ctx, period)
			if err != nil {
				return err
			}
			if len(stats) == 0 {
				return domain.ErrEmptyResult("no payroll entries for period %s", period.Name)
			}
			report.WritePayrollStats(out, period, stats)

			rs, err := repo.PayrollDetails(ctx, period)
			if err != nil {
				return err
			}

			if analyzeFields {
				structure := report.AnalyzeFields(rs.Columns, report.DefaultClassifier())
				report.WriteFieldStructure(out, structure)
			}

			if statsOnly {
				fmt.Fprintln(out, "Stats-only mode, no file exported.")
				return nil
			}

			if len(rs.Rows) == 0 {
				return domain.ErrEmptyResult("no payroll detail rows for period %s", period.Name)
			}

			cols := report.Prune(rs, includeZero)
			if !includeZero {
				fmt.Fprintf(out, "Retained %d of %d columns after zero-column pruning.\n",
					len(cols), len(rs.Columns))
			}

			if output == "" {
				prefix := "工资明细_有效字段"
				if includeZero {
					prefix = "工资明细_完整字段"
				}
				output = export.DefaultFilename(prefix, key, time.Now())
			}

			n, err := export.WriteCSV(output, rs, cols, report.NewFormatter())
			if err != nil {
				return err
			}

			abs, err := filepath.Abs(output)
			if err != nil {
				abs = output
			}
			rt.logger.Info("detail export written", "rows", n, "columns", len(cols), "path", abs)
			fmt.Fprintf(out, "Exported %d payroll detail rows to %s\n", n, abs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV path (default: timestamped name in the working directory)")
	cmd.Flags().BoolVar(&statsOnly, "stats-only", false, "Print summary statistics without writing a file")
	cmd.Flags().BoolVar(&includeZero, "include-zero-columns", false, "Keep salary item columns that are zero for every employee")
	cmd.Flags().BoolVar(&analyzeFields, "analyze-fields", false, "Print the field structure analysis")

	return cmd
}
