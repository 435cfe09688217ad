package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/exchange"
	"github.com/chris-regnier/moodmemo/internal/ui"
)

var (
	importFormat  string
	importReplace bool
)

var importCmd = &cobra.Command{
	Use:   "import <path|->",
	Short: "Import entries from a file or directory",
	Long: `Read entries from a JSON, YAML or Markdown file, a directory of Markdown
files, or stdin ("-", which needs --format).

Entries are saved one by one: a known id replaces that entry, anything else
is added. --replace instead overwrites the whole collection with the input,
which also recovers a store whose data can no longer be read.`,
	Example: `  moodmemo import moods.json
  moodmemo import ~/journal/moods
  cat backup.yaml | moodmemo import - --format yaml --replace`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return importRun(cmd.OutOrStdout(), cmd.InOrStdin(), args[0])
	},
}

func importRun(w io.Writer, in io.Reader, path string) error {
	entries, err := readImport(in, path)
	if err != nil {
		return withCode(1, err)
	}

	saved := 0
	if importReplace {
		for i := range entries {
			if entries[i].ID == "" {
				if entries[i].ID, err = entry.NewID(); err != nil {
					return withCode(2, err)
				}
			}
		}
		if err := store.Replace(entries); err != nil {
			return err
		}
		saved = len(entries)
	} else {
		for _, e := range entries {
			if _, err := store.Save(e); err != nil {
				return fmt.Errorf("entry %d (%s %s): %w", saved+1, e.Date, e.Time, err)
			}
			saved++
		}
	}

	result := ui.ImportResult{Read: len(entries), Saved: saved, Replaced: importReplace}
	if jsonOutput {
		return ui.FormatJSON(w, result)
	}
	fmt.Fprintf(w, "Imported %d of %d entries.\n", result.Saved, result.Read)
	return nil
}

func readImport(in io.Reader, path string) ([]entry.Entry, error) {
	if path != "-" {
		if importFormat == "" {
			return exchange.ReadPath(path)
		}
		return nil, fmt.Errorf("--format only applies to stdin; the file extension picks the format")
	}
	if importFormat == "" {
		return nil, fmt.Errorf("--format is required when reading stdin")
	}
	format, err := exchange.ParseFormat(importFormat)
	if err != nil {
		return nil, err
	}
	return exchange.Decode(in, format)
}

func init() {
	importCmd.Flags().StringVar(&importFormat, "format", "", "input format for stdin (json|yaml|markdown)")
	importCmd.Flags().BoolVar(&importReplace, "replace", false, "overwrite the whole collection with the input")
	importCmd.PostRunE = invalidateCachePostRun
	rootCmd.AddCommand(importCmd)
}
