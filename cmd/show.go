package cmd

import (
	"bytes"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/ui"
)

var showTextOnly bool

var showCmd = &cobra.Command{
	Use:   "show <id>",
	Short: "Show a mood entry",
	Long:  "Display the mood, time and rendered note of an entry.",
	Example: `  moodmemo show lrx2k1a9f3bq0cd
  moodmemo show lrx2k1a9f3bq0cd --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return showRun(cmd.OutOrStdout(), args[0])
	},
}

func showRun(w io.Writer, id string) error {
	e, ok := store.GetByID(id)
	if !ok {
		return notFound(id)
	}

	if showTextOnly {
		fmt.Fprintln(w, e.Text)
		return nil
	}
	if jsonOutput {
		return ui.FormatJSON(w, e)
	}

	var buf bytes.Buffer
	ui.FormatEntryFull(&buf, e, theme())
	return ui.OutputOrPage(w, buf.String(), false, maxWidth(), theme())
}

func init() {
	showCmd.Flags().BoolVar(&showTextOnly, "text-only", false, "print just the note text")
	rootCmd.AddCommand(showCmd)
}
