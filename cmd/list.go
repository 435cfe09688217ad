package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/query"
	"github.com/chris-regnier/moodmemo/internal/ui"
)

var (
	listCriteria query.Criteria
	listIDOnly   bool
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List mood entries",
	Long: `List mood entries in stored order.

--date selects one day, --month one calendar month, --from/--to an inclusive
span. The first one given wins.`,
	Example: `  moodmemo list
  moodmemo list --date 2024-03-06
  moodmemo list --month 2024-03
  moodmemo list --from 2024-03-01 --to 2024-03-07 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return listRun(cmd.OutOrStdout(), listCriteria)
	},
}

func listRun(w io.Writer, c query.Criteria) error {
	entries, err := c.Select(store.GetAll())
	if err != nil {
		return withCode(1, err)
	}

	if listIDOnly {
		for _, e := range entries {
			fmt.Fprintln(w, e.ID)
		}
		return nil
	}

	if jsonOutput {
		return ui.FormatJSON(w, entries)
	}
	var buf bytes.Buffer
	ui.FormatEntryList(&buf, entries, theme())
	return ui.OutputOrPage(w, buf.String(), false, maxWidth(), theme())
}

func init() {
	listCmd.Flags().StringVar(&listCriteria.Date, "date", "", "filter by date (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listCriteria.Month, "month", "", "filter by month (YYYY-MM)")
	listCmd.Flags().StringVar(&listCriteria.Start, "from", "", "start of an inclusive date span (YYYY-MM-DD)")
	listCmd.Flags().StringVar(&listCriteria.End, "to", "", "end of an inclusive date span (YYYY-MM-DD)")
	listCmd.Flags().BoolVar(&listIDOnly, "id-only", false, "print just entry IDs, one per line")
	rootCmd.AddCommand(listCmd)
}
