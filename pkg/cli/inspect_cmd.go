package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"payroll-reports/internal/report"
	"payroll-reports/internal/repository"
)

// defaultPreviewLen caps sample values when stdout is not a terminal.
const defaultPreviewLen = 100

func newInspectCmd(rt *runtime) *cobra.Command {
	var (
		sampleLimit int
		jsonOut     string
	)

	cmd := &cobra.Command{
		Use:   "inspect <table>",
		Short: "Inspect a payroll table's schema, sample rows, and base columns",
		Long: "Prints column metadata, a small row sample, the total record count, " +
			"and aggregate statistics for columns that look like contribution base " +
			"data. Optionally writes the schema report as JSON.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sqlDB, repo, err := rt.openRepo()
			if err != nil {
				return err
			}
			defer sqlDB.Close() //nolint:errcheck

			info, err := repo.InspectTable(cmd.Context(), args[0], sampleLimit)
			if err != nil {
				return err
			}

			writeTableInfo(cmd, info)

			if jsonOut != "" {
				if err := writeSchemaJSON(jsonOut, info); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Schema report written to %s\n", jsonOut)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&sampleLimit, "sample", 5, "Number of sample rows to print")
	cmd.Flags().StringVar(&jsonOut, "json-out", "", "Write the schema report as JSON to this path")

	return cmd
}

func writeTableInfo(cmd *cobra.Command, info *repository.TableInfo) {
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\n=== %s ===\n", info.Table)

	fmt.Fprintln(out, "\nColumns:")
	fmt.Fprintf(out, "%-30s %-20s %-10s %s\n", "Name", "Type", "Nullable", "Default")
	for _, c := range info.Columns {
		dflt := c.Default
		if dflt == "" {
			dflt = "-"
		}
		fmt.Fprintf(out, "%-30s %-20s %-10t %s\n", c.Name, c.Type, c.Nullable, dflt)
	}

	fmt.Fprintf(out, "\nTotal records: %d\n", info.RowCount)

	f := report.NewFormatter()
	f.MaxDisplayLen = previewLen()
	fmt.Fprintf(out, "\nSample (%d rows):\n", len(info.Sample.Rows))
	for i, row := range info.Sample.Rows {
		fmt.Fprintf(out, "Row %d:\n", i+1)
		for _, c := range info.Sample.Columns {
			v := "NULL"
			if row[c.Ordinal] != nil {
				v = f.Format(c, row[c.Ordinal])
			}
			fmt.Fprintf(out, "  %s: %s\n", c.Name, v)
		}
	}

	if len(info.BaseColumns) == 0 {
		fmt.Fprintln(out, "\nNo contribution base columns found.")
		return
	}

	fmt.Fprintf(out, "\nContribution base columns (%d):\n", len(info.BaseColumns))
	for _, name := range info.BaseColumns {
		fmt.Fprintf(out, "  - %s\n", name)
	}
	for _, s := range info.BaseStats {
		fmt.Fprintf(out, "\n%s:\n", s.Column)
		fmt.Fprintf(out, "  Min: %g\n", s.Min)
		fmt.Fprintf(out, "  Max: %g\n", s.Max)
		fmt.Fprintf(out, "  Avg: %.2f\n", s.Avg)
		fmt.Fprintf(out, "  Distinct values: %d\n", s.DistinctValues)
		fmt.Fprintf(out, "  Non-null count: %d\n", s.NonNullCount)
	}
}

// previewLen returns the per-value truncation length for sample output.
// On a narrow terminal the cap follows the terminal width.
func previewLen() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 {
		return defaultPreviewLen
	}
	if w-4 < defaultPreviewLen {
		return w - 4
	}
	return defaultPreviewLen
}

// writeSchemaJSON dumps the inspection report, including formatted sample
// rows, as indented JSON.
func writeSchemaJSON(path string, info *repository.TableInfo) error {
	f := report.NewFormatter()

	sample := make([]map[string]string, 0, len(info.Sample.Rows))
	for _, row := range info.Sample.Rows {
		rec := make(map[string]string, len(info.Sample.Columns))
		for _, c := range info.Sample.Columns {
			rec[c.Name] = f.Format(c, row[c.Ordinal])
		}
		sample = append(sample, rec)
	}

	payload := struct {
		*repository.TableInfo
		SampleData []map[string]string `json:"sample_data"`
	}{info, sample}

	file, err := os.Create(path) //nolint:gosec // path is caller-controlled
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer file.Close() //nolint:errcheck

	enc := json.NewEncoder(file)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("encode schema report: %w", err)
	}
	return nil
}
