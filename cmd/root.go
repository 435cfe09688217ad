package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/chris-regnier/moodmemo/internal/config"
	"github.com/chris-regnier/moodmemo/internal/dateutil"
	"github.com/chris-regnier/moodmemo/internal/feed"
	"github.com/chris-regnier/moodmemo/internal/logger"
	"github.com/chris-regnier/moodmemo/internal/query"
	"github.com/chris-regnier/moodmemo/internal/storage"
	"github.com/chris-regnier/moodmemo/internal/ui"
	"github.com/chris-regnier/moodmemo/internal/version"
)

// noStore marks commands that run without opening storage.
const noStore = "no-store"

var (
	cfgFile        string
	jsonOutput     bool
	storageBackend string
	appConfig      *config.Config
	appLog         = logger.Nop()
	store          *storage.Store
	now            = time.Now
)

var rootCmd = &cobra.Command{
	Use:   "moodmemo",
	Short: "A mood journal for the terminal",
	Long: `moodmemo records how you feel, a few times a day, on a five-step scale
with optional notes. Browse entries on a month calendar, chart a week or a
month, and serve them over HTTP or MCP.`,
	Version: version.String(),
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
		appConfig = cfg

		if storageBackend != "" {
			appConfig.Storage = storageBackend
		}

		log, err := logger.New(appConfig.Log.Level, appConfig.Log.Pretty)
		if err != nil {
			return fmt.Errorf("initializing logger: %w", err)
		}
		appLog = log

		if p := appConfig.Theme.Preset; p != "" && !slices.Contains(ui.PresetNames(), p) {
			appLog.Warn("unknown theme preset, using default",
				logger.String("preset", p),
				logger.String("available", strings.Join(ui.PresetNames(), ", ")))
		}

		if cmd.Annotations[noStore] == "true" {
			return nil
		}
		store, err = openStore(appConfig, appLog)
		if err != nil {
			return withCode(2, err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		closeAll()
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if !term.IsTerminal(int(os.Stdout.Fd())) {
			// Non-TTY: fall back to today's entries
			return todayRun(cmd.OutOrStdout())
		}
		return browseRun(cmd.Context())
	},
}

// Execute runs the root command.
func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		closeAll()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "output in JSON format")
	rootCmd.PersistentFlags().StringVar(&storageBackend, "storage", "", "storage backend (file|sqlite|disk|redis|memory)")

	// Silence Cobra's built-in error and usage printing so we control stderr output
	rootCmd.SilenceErrors = true
	rootCmd.SilenceUsage = true
}

func theme() ui.Theme {
	if appConfig == nil {
		return ui.ResolveTheme(config.ThemeConfig{})
	}
	return ui.ResolveTheme(appConfig.Theme)
}

func maxWidth() int {
	if appConfig == nil || appConfig.MaxWidth <= 0 {
		return 100
	}
	return appConfig.MaxWidth
}

func todayRun(w io.Writer) error {
	date := dateutil.FormatDate(now())
	entries := query.New(store).ByDate(date)
	if jsonOutput {
		return ui.FormatJSON(w, entries)
	}
	ui.FormatDay(w, date, entries, theme())
	return nil
}

// browseRun opens the calendar browser over a feed-backed view, so writes
// from other sessions show up without a reload. The subscription starts
// before the view is seeded so no write falls between the two.
func browseRun(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var events <-chan feed.Event
	sub, err := changeFeed()
	if err == nil {
		events, err = sub.Subscribe(ctx)
	}
	if err != nil {
		appLog.Warn("change feed unavailable, browsing a snapshot", logger.Error(err))
	}

	view := feed.NewView(store.GetAll())
	browser := ui.NewBrowser(view, ui.TUIConfig{
		MaxWidth: maxWidth(),
		Theme:    theme(),
		Now:      now,
	})

	if events != nil {
		go feed.Pump(ctx, events, view, func(feed.Event) { browser.Notify() })
	}
	return browser.Run()
}
