package cmd

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/mood"
	"github.com/chris-regnier/moodmemo/internal/ui"
)

var moodsCmd = &cobra.Command{
	Use:         "moods",
	Short:       "List the mood scale",
	Annotations: map[string]string{noStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		return moodsRun(cmd.OutOrStdout())
	},
}

func moodsRun(w io.Writer) error {
	if jsonOutput {
		return ui.FormatJSON(w, mood.All())
	}
	ui.FormatMoods(w, theme())
	return nil
}

func init() {
	rootCmd.AddCommand(moodsCmd)
}
