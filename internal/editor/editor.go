// Package editor round-trips text and entries through the user's $EDITOR.
package editor

import (
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/exchange"
)

// ResolveEditor picks the configured editor, then $EDITOR, then $VISUAL, then vi.
func ResolveEditor(configEditor string) string {
	if configEditor != "" {
		return configEditor
	}
	if ed := os.Getenv("EDITOR"); ed != "" {
		return ed
	}
	if ed := os.Getenv("VISUAL"); ed != "" {
		return ed
	}
	return "vi"
}

// Edit opens initial in the editor and returns what was saved. An empty or
// unchanged file reports changed=false; an empty file also returns "".
func Edit(editorCmd string, initial string) (content string, changed bool, err error) {
	parts := strings.Fields(editorCmd)
	if len(parts) == 0 {
		return "", false, fmt.Errorf("empty editor command")
	}

	tmp, err := os.CreateTemp("", "moodmemo-*.md")
	if err != nil {
		return "", false, fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.WriteString(initial); err != nil {
		tmp.Close()
		return "", false, fmt.Errorf("writing temp file: %w", err)
	}
	tmp.Close()

	cmd := exec.Command(parts[0], append(parts[1:], tmpName)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return "", false, fmt.Errorf("editor exited with error: %w", err)
	}

	data, err := os.ReadFile(tmpName)
	if err != nil {
		return "", false, fmt.Errorf("reading edited file: %w", err)
	}
	result := string(data)

	switch strings.TrimSpace(result) {
	case "":
		return "", false, nil
	case strings.TrimSpace(initial):
		return initial, false, nil
	}
	return result, true, nil
}

// EditEntry opens e as a front matter document. The id and updatedAt fields
// are carried over from e regardless of what the user typed.
func EditEntry(editorCmd string, e entry.Entry) (entry.Entry, bool, error) {
	content, changed, err := Edit(editorCmd, string(exchange.MarshalMarkdown(e)))
	if err != nil || !changed {
		return e, false, err
	}
	edited, err := exchange.UnmarshalMarkdown([]byte(content))
	if err != nil {
		return e, false, err
	}
	edited.ID = e.ID
	edited.UpdatedAt = e.UpdatedAt
	if edited == e {
		return e, false, nil
	}
	return edited, true, nil
}
