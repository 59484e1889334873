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

func newContributionCmd(rt *runtime) *cobra.Command {
	var (
		output    string
		statsOnly bool
	)

	cmd := &cobra.Command{
		Use:   "contribution <period>",
		Short: "Export employee contribution bases for a pay period",
		Long: "Exports per-employee statutory contribution bases, rates, and the " +
			"personal/employer contribution amounts computed from them for the given " +
			"YYYY-MM pay period.",
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

			stats, err := repo.BaseStats(ctx, period)
			if err != nil {
				return err
			}
			if len(stats) == 0 {
				return domain.ErrEmptyResult("no contribution base rows for period %s", period.Name)
			}
			report.WriteBaseStats(out, period, stats)

			if statsOnly {
				fmt.Fprintln(out, "Stats-only mode, no file exported.")
				return nil
			}

			rs, err := repo.ContributionBases(ctx, period)
			if err != nil {
				return err
			}

			if output == "" {
				output = export.DefaultFilename("员工缴费基数", key, time.Now())
			}

			n, err := export.WriteCSV(output, rs, rs.Columns, report.NewFormatter())
			if err != nil {
				return err
			}

			abs, err := filepath.Abs(output)
			if err != nil {
				abs = output
			}
			rt.logger.Info("contribution export written", "rows", n, "path", abs)
			fmt.Fprintf(out, "Exported %d contribution base rows to %s\n", n, abs)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Output CSV path (default: timestamped name in the working directory)")
	cmd.Flags().BoolVar(&statsOnly, "stats-only", false, "Print summary statistics without writing a file")

	return cmd
}
