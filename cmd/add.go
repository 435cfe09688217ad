package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/editor"
	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/mood"
	"github.com/chris-regnier/moodmemo/internal/ui"
)

var (
	addDate string
	addTime string
	addEdit bool
)

var addCmd = &cobra.Command{
	Use:     "add <mood> [text...]",
	Aliases: []string{"log"},
	Short:   "Record a mood entry",
	Long: `Record how you feel right now, or at --date/--time.

The mood is one of very-sad, sad, neutral, happy, very-happy, or a level 1-5.
Any remaining arguments become the note. "-" reads the note from stdin, and
--edit opens the new entry in your editor before saving.`,
	Example: `  moodmemo add happy
  moodmemo add 4 "long walk after lunch"
  moodmemo add sad --date 2024-03-01 --time 21:15
  echo "rough meeting" | moodmemo add sad -
  moodmemo add neutral --edit`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return addRun(cmd.OutOrStdout(), cmd.InOrStdin(), args)
	},
}

func addRun(w io.Writer, in io.Reader, args []string) error {
	m, err := mood.Parse(args[0])
	if err != nil {
		return withCode(1, err)
	}

	var text string
	switch {
	case len(args) == 2 && args[1] == "-":
		data, err := io.ReadAll(in)
		if err != nil {
			return withCode(2, fmt.Errorf("reading stdin: %w", err))
		}
		text = string(data)
	case len(args) > 1:
		text = strings.Join(args[1:], " ")
	}

	e := entry.New(now(), m, strings.TrimSpace(text))
	if addDate != "" {
		e.Date = addDate
	}
	if addTime != "" {
		e.Time = addTime
	}

	if addEdit {
		edited, _, err := editor.EditEntry(editor.ResolveEditor(appConfig.Editor), e)
		if err != nil {
			return withCode(3, fmt.Errorf("editor: %w", err))
		}
		e = edited
	}

	saved, err := store.Save(e)
	if err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, saved)
	}
	ui.FormatEntryCreated(w, saved)
	return nil
}

func init() {
	addCmd.Flags().StringVar(&addDate, "date", "", "entry date (YYYY-MM-DD, default today)")
	addCmd.Flags().StringVar(&addTime, "time", "", "entry time (HH:MM, default now)")
	addCmd.Flags().BoolVar(&addEdit, "edit", false, "open the entry in your editor before saving")
	addCmd.PostRunE = invalidateCachePostRun
	rootCmd.AddCommand(addCmd)
}
