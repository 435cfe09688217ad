// Package shell provides the prompt status segment and the bash/zsh init
// scripts that export it.
package shell

import (
	"fmt"
	"io"
	"strings"
)

// Variables exported by `moodmemo status --env`. The mood and backend ones
// are only set when known.
const (
	EnvToday      = "MOODMEMO_TODAY"
	EnvStreak     = "MOODMEMO_STREAK"
	EnvStreakIcon = "MOODMEMO_STREAK_ICON"
	EnvMood       = "MOODMEMO_MOOD"
	EnvMoodIcon   = "MOODMEMO_MOOD_ICON"
	EnvBackend    = "MOODMEMO_BACKEND"
)

// EnvVars lists every exported variable in output order.
var EnvVars = []string{EnvToday, EnvStreak, EnvStreakIcon, EnvMood, EnvMoodIcon, EnvBackend}

// The hook clears the optional variables first so a mood from yesterday
// does not survive a day with no entries.
const commonScript = `# moodmemo shell integration
# Exports %s
# after every prompt. Use $(moodmemo_prompt_segment) in PS1/PROMPT.
__moodmemo_prompt_hook() {
  unset %s
  eval "$(command moodmemo status --env 2>/dev/null)"
}

moodmemo_prompt_info() {
  command moodmemo status 2>/dev/null
}

moodmemo_prompt_segment() {
  [[ -n "$%s" ]] || return 0
  printf '%%s %%s%%s' "$%s" "$%s" "$%s"
  [[ -n "$%s" ]] && printf ' %%s' "$%s"
  return 0
}
`

func writeCommon(w io.Writer) {
	fmt.Fprintf(w, commonScript,
		strings.Join(EnvVars, ", "),
		strings.Join([]string{EnvMood, EnvMoodIcon, EnvBackend}, " "),
		EnvToday,
		EnvToday, EnvStreak, EnvStreakIcon,
		EnvMoodIcon, EnvMoodIcon,
	)
}

// WriteBashInit writes the bash shell integration script to the writer.
func WriteBashInit(w io.Writer) {
	writeCommon(w)
	fmt.Fprint(w, `
if [[ -z "$PROMPT_COMMAND" ]]; then
  PROMPT_COMMAND="__moodmemo_prompt_hook"
else
  PROMPT_COMMAND="__moodmemo_prompt_hook;${PROMPT_COMMAND}"
fi

eval "$(command moodmemo completion bash 2>/dev/null)"
`)
}

// WriteZshInit writes the zsh shell integration script to the writer.
func WriteZshInit(w io.Writer) {
	writeCommon(w)
	fmt.Fprint(w, `
setopt prompt_subst
autoload -Uz add-zsh-hook
add-zsh-hook precmd __moodmemo_prompt_hook

eval "$(command moodmemo completion zsh 2>/dev/null)"
`)
}
