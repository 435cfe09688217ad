package cmd

import (
	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/shell"
)

var initShellCmd = &cobra.Command{
	Use:   "init <shell>",
	Short: "Output shell integration script",
	Long: `Output shell integration script for eval.

Generates shell-specific initialization code that sets up:
- Shell completions
- Prompt hook for mood status env vars
- moodmemo_prompt_info helper function

Supported shells: bash, zsh`,
	Example: `  # Add to ~/.bashrc
  eval "$(moodmemo init bash)"

  # Add to ~/.zshrc
  eval "$(moodmemo init zsh)"`,
	Args:        cobra.ExactArgs(1),
	Annotations: map[string]string{noStore: "true"},
	RunE: func(cmd *cobra.Command, args []string) error {
		switch args[0] {
		case "bash":
			shell.WriteBashInit(cmd.OutOrStdout())
		case "zsh":
			shell.WriteZshInit(cmd.OutOrStdout())
		default:
			return usageErrorf("unsupported shell %q (supported: bash, zsh)", args[0])
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initShellCmd)
}
