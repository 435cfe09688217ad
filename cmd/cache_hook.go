package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/shell"
)

// invalidateCachePostRun is a PostRunE hook that invalidates the prompt cache
// after mutating commands (add, edit, delete, import, seed).
func invalidateCachePostRun(cmd *cobra.Command, args []string) error {
	if appConfig == nil {
		return nil
	}
	// Best-effort: a stale prompt must not fail a successful write.
	_ = shell.InvalidateCache(appConfig.DataDir)
	return nil
}
