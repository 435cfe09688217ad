package cmd

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/template"
	"time"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/dateutil"
	"github.com/chris-regnier/moodmemo/internal/mood"
	"github.com/chris-regnier/moodmemo/internal/shell"
)

// statusData holds the template data for status formatting.
type statusData struct {
	TodayIcon  string
	Streak     int
	StreakIcon string
	Mood       string
	MoodIcon   string
	Backend    string
	HasToday   bool
}

var (
	statusEnv     bool
	statusRefresh bool
	statusFormat  string
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show mood prompt status",
	Long: `Show mood status for shell prompt integration.

Outputs today indicator, logging streak and today's latest mood.
Reads from cache when fresh, queries storage when stale.

Use --env to output shell environment variable assignments.
Use --refresh to force a cache refresh.
Use --format with a Go template for custom output.`,
	Example: `  moodmemo status
  moodmemo status --env
  moodmemo status --refresh
  moodmemo status --format "{{.MoodIcon}} {{.Streak}}{{.StreakIcon}}"`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return statusRun(cmd.OutOrStdout())
	},
}

func statusRun(w io.Writer) error {
	ttl, err := time.ParseDuration(appConfig.Shell.CacheTTL)
	if err != nil {
		ttl = 5 * time.Minute
	}

	at := now()
	cache := shell.ReadCache(appConfig.DataDir)
	if statusRefresh || !cache.IsFresh(ttl, at) {
		st := shell.ComputeStatus(store.GetAll(), at)
		cache = &shell.PromptCache{
			Today:          st.Today,
			Streak:         st.Streak,
			LastMood:       st.LastMood,
			TodayDate:      dateutil.FormatDate(at),
			StorageBackend: appConfig.Storage,
			UpdatedAt:      at,
		}
		if err := shell.WriteCache(appConfig.DataDir, cache); err != nil {
			// Non-fatal: cache write failure shouldn't break the prompt
			fmt.Fprintln(os.Stderr, "Warning: could not write cache:", err)
		}
	}

	data := buildStatusData(cache)
	switch {
	case statusEnv:
		return outputEnv(w, data)
	case statusFormat != "":
		return outputTemplate(w, data, statusFormat)
	}
	return outputDefault(w, data)
}

func buildStatusData(cache *shell.PromptCache) statusData {
	icon := appConfig.Shell.NoTodayIcon
	if cache.Today {
		icon = appConfig.Shell.TodayIcon
	}
	data := statusData{
		TodayIcon:  icon,
		Streak:     cache.Streak,
		StreakIcon: appConfig.Shell.StreakIcon,
		Backend:    cache.StorageBackend,
		HasToday:   cache.Today,
	}
	if info, ok := mood.Lookup(cache.LastMood); ok {
		data.Mood = string(info.Mood)
		data.MoodIcon = info.Icon
	}
	return data
}

func outputEnv(w io.Writer, data statusData) error {
	export := func(name, value string) {
		fmt.Fprintf(w, "export %s=%q\n", name, value)
	}
	export(shell.EnvToday, data.TodayIcon)
	export(shell.EnvStreak, strconv.Itoa(data.Streak))
	export(shell.EnvStreakIcon, data.StreakIcon)
	if data.Mood != "" {
		export(shell.EnvMood, data.Mood)
		export(shell.EnvMoodIcon, data.MoodIcon)
	}
	if data.Backend != "" {
		export(shell.EnvBackend, data.Backend)
	}
	return nil
}

func outputTemplate(w io.Writer, data statusData, format string) error {
	tmpl, err := template.New("status").Parse(format)
	if err != nil {
		return usageErrorf("invalid format template: %v", err)
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("executing format template: %w", err)
	}
	fmt.Fprintln(w)
	return nil
}

func outputDefault(w io.Writer, data statusData) error {
	parts := []string{fmt.Sprintf("%s %d%s", data.TodayIcon, data.Streak, data.StreakIcon)}
	if appConfig.Shell.ShowMood && data.MoodIcon != "" {
		parts = append(parts, data.MoodIcon)
	}
	if appConfig.Shell.ShowBackend && data.Backend != "" {
		parts = append(parts, data.Backend)
	}
	fmt.Fprintln(w, strings.Join(parts, " "))
	return nil
}

func init() {
	statusCmd.Flags().BoolVar(&statusEnv, "env", false, "output shell environment variable assignments")
	statusCmd.Flags().BoolVar(&statusRefresh, "refresh", false, "force cache refresh")
	statusCmd.Flags().StringVar(&statusFormat, "format", "", "Go template format string")
	rootCmd.AddCommand(statusCmd)
}
