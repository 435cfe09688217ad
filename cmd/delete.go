package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/ui"
)

var forceDelete bool

var deleteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a mood entry",
	Long:  "Permanently delete a mood entry. Requires confirmation unless --force is used.",
	Example: `  moodmemo delete lrx2k1a9f3bq0cd
  moodmemo delete lrx2k1a9f3bq0cd --force`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return deleteRun(cmd.OutOrStdout(), cmd.InOrStdin(), args[0])
	},
}

func deleteRun(w io.Writer, in io.Reader, id string) error {
	// Fetch entry to confirm it exists and show preview
	e, ok := store.GetByID(id)
	if !ok {
		return notFound(id)
	}

	if !forceDelete {
		fmt.Fprintln(w, ui.EntryLine(e, theme()))
		fmt.Fprintln(w)

		confirmed, err := ui.ConfirmIO("Delete this entry? This cannot be undone.", theme(), in, w)
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(w, "Cancelled.")
			return nil
		}
	}

	if err := store.Delete(id); err != nil {
		return err
	}

	if jsonOutput {
		return ui.FormatJSON(w, ui.DeleteResult{ID: id, Deleted: true})
	}
	ui.FormatEntryDeleted(w, id)
	return nil
}

func init() {
	deleteCmd.Flags().BoolVar(&forceDelete, "force", false, "skip confirmation prompt")
	deleteCmd.PostRunE = invalidateCachePostRun
	rootCmd.AddCommand(deleteCmd)
}
