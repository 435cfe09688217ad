package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/chart"
	"github.com/chris-regnier/moodmemo/internal/dateutil"
	"github.com/chris-regnier/moodmemo/internal/query"
	"github.com/chris-regnier/moodmemo/internal/ui"
)

var (
	chartRange string
	chartDate  string
	chartFrom  string
	chartTo    string
)

var chartCmd = &cobra.Command{
	Use:   "chart",
	Short: "Chart moods over a week or a month",
	Long: `Plot every entry in a window on a five-level mood axis.

The window is the week (Sunday to Saturday) or month around --date, default
today. --from/--to pick an explicit inclusive span instead.`,
	Example: `  moodmemo chart
  moodmemo chart --range month
  moodmemo chart --range week --date 2024-02-14
  moodmemo chart --from 2024-01-01 --to 2024-01-10 --json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return chartRun(cmd.OutOrStdout())
	},
}

func chartRun(w io.Writer) error {
	start, end, err := query.ResolveWindow(chartRange, chartDate, chartFrom, chartTo, now())
	if err != nil {
		return withCode(1, err)
	}
	points := chart.Build(query.New(store).ByRange(start, end))

	if jsonOutput {
		return ui.FormatJSON(w, ui.ChartResult{
			Start:   dateutil.FormatDate(start),
			End:     dateutil.FormatDate(end),
			Points:  points,
			Summary: chart.Summarize(points),
		})
	}
	ui.FormatChart(w, points, theme())
	return nil
}

func init() {
	chartCmd.Flags().StringVar(&chartRange, "range", "week", "window size (week|month)")
	chartCmd.Flags().StringVar(&chartDate, "date", "", "any day inside the window (YYYY-MM-DD, default today)")
	chartCmd.Flags().StringVar(&chartFrom, "from", "", "start of an explicit span (YYYY-MM-DD)")
	chartCmd.Flags().StringVar(&chartTo, "to", "", "end of an explicit span (YYYY-MM-DD)")
	rootCmd.AddCommand(chartCmd)
}
