package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/exchange"
	"github.com/chris-regnier/moodmemo/internal/query"
)

var (
	exportFormat   string
	exportOut      string
	exportDir      string
	exportCriteria query.Criteria
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export entries as JSON, YAML or Markdown",
	Long: `Write entries to stdout or --out in the chosen format.

Markdown is one front matter document per entry. With --dir each entry is
written to its own file named date_time_id.md.`,
	Example: `  moodmemo export > moods.json
  moodmemo export --format yaml --month 2024-03 --out march.yaml
  moodmemo export --dir ~/journal/moods`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return exportRun(cmd.OutOrStdout())
	},
}

func exportRun(w io.Writer) error {
	entries, err := exportCriteria.Select(store.GetAll())
	if err != nil {
		return withCode(1, err)
	}

	if exportDir != "" {
		if err := exchange.WriteDir(exportDir, entries); err != nil {
			return withCode(2, err)
		}
		fmt.Fprintf(os.Stderr, "Exported %d entries to %s\n", len(entries), exportDir)
		return nil
	}

	format, err := exchange.ParseFormat(exportFormat)
	if err != nil {
		return withCode(1, err)
	}

	if exportOut != "" {
		f, err := os.Create(exportOut)
		if err != nil {
			return withCode(2, err)
		}
		defer f.Close()
		w = f
	}
	if err := exchange.Encode(w, entries, format); err != nil {
		return withCode(2, fmt.Errorf("encoding %s: %w", format, err))
	}
	return nil
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "json", "output format (json|yaml|markdown)")
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "write to a file instead of stdout")
	exportCmd.Flags().StringVar(&exportDir, "dir", "", "write one Markdown file per entry into a directory")
	exportCmd.Flags().StringVar(&exportCriteria.Date, "date", "", "only this day (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportCriteria.Month, "month", "", "only this month (YYYY-MM)")
	exportCmd.Flags().StringVar(&exportCriteria.Start, "from", "", "start of an inclusive date span (YYYY-MM-DD)")
	exportCmd.Flags().StringVar(&exportCriteria.End, "to", "", "end of an inclusive date span (YYYY-MM-DD)")
	rootCmd.AddCommand(exportCmd)
}
