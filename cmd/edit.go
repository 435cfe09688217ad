package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/editor"
	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/mood"
	"github.com/chris-regnier/moodmemo/internal/ui"
)

// editFlags holds field overrides; nil means "not given".
type editFlags struct {
	mood *string
	date *string
	time *string
	text *string
}

var editCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Change a mood entry",
	Long: `Change an existing entry.

With any of --mood, --date, --time or --text only those fields change.
Without them the entry opens in your editor as a front matter document.`,
	Example: `  moodmemo edit lrx2k1a9f3bq0cd
  moodmemo edit lrx2k1a9f3bq0cd --mood very-happy
  moodmemo edit lrx2k1a9f3bq0cd --text "turned out fine"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var f editFlags
		for name, dst := range map[string]**string{"mood": &f.mood, "date": &f.date, "time": &f.time, "text": &f.text} {
			if cmd.Flags().Changed(name) {
				v, _ := cmd.Flags().GetString(name)
				*dst = &v
			}
		}
		return editRun(cmd.OutOrStdout(), args[0], f)
	},
}

func (f editFlags) any() bool {
	return f.mood != nil || f.date != nil || f.time != nil || f.text != nil
}

func (f editFlags) apply(e entry.Entry) (entry.Entry, error) {
	if f.mood != nil {
		m, err := mood.Parse(*f.mood)
		if err != nil {
			return e, err
		}
		e.Mood = m
	}
	if f.date != nil {
		e.Date = *f.date
	}
	if f.time != nil {
		e.Time = *f.time
	}
	if f.text != nil {
		e.Text = *f.text
	}
	return e, nil
}

func editRun(w io.Writer, id string, f editFlags) error {
	e, ok := store.GetByID(id)
	if !ok {
		return notFound(id)
	}

	var (
		edited  entry.Entry
		changed bool
		err     error
	)
	if f.any() {
		if edited, err = f.apply(e); err != nil {
			return withCode(1, err)
		}
		changed = edited != e
	} else {
		edited, changed, err = editor.EditEntry(editor.ResolveEditor(appConfig.Editor), e)
		if err != nil {
			return withCode(3, fmt.Errorf("editor: %w", err))
		}
	}

	if !changed {
		if jsonOutput {
			return ui.FormatJSON(w, e)
		}
		ui.FormatNoChanges(w, id)
		return nil
	}

	saved, err := store.Save(edited)
	if err != nil {
		return err
	}
	if jsonOutput {
		return ui.FormatJSON(w, saved)
	}
	ui.FormatEntryUpdated(w, saved)
	return nil
}

func init() {
	editCmd.Flags().String("mood", "", "new mood")
	editCmd.Flags().String("date", "", "new date (YYYY-MM-DD)")
	editCmd.Flags().String("time", "", "new time (HH:MM)")
	editCmd.Flags().String("text", "", "new note")
	editCmd.PostRunE = invalidateCachePostRun
	rootCmd.AddCommand(editCmd)
}
