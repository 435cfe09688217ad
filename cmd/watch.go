package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/chris-regnier/moodmemo/internal/feed"
	"github.com/chris-regnier/moodmemo/internal/ui"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Follow entry changes as they happen",
	Long: `Print each insert, update and delete from the change feed until
interrupted. Other processes' writes are only visible with feed.enabled and
a reachable Redis.`,
	Example: `  moodmemo watch
  moodmemo watch --json | jq .type`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		sub, err := changeFeed()
		if err != nil {
			return withCode(2, err)
		}
		return watchRun(ctx, cmd.OutOrStdout(), sub)
	},
}

// watchRun applies events to a view seeded from the store and prints the
// ones that changed it. The subscription starts before the store is read so
// no write falls between the two.
func watchRun(ctx context.Context, w io.Writer, sub feed.Subscriber) error {
	events, err := sub.Subscribe(ctx)
	if err != nil {
		return withCode(2, err)
	}
	view := feed.NewView(store.GetAll())
	if !jsonOutput {
		fmt.Fprintf(w, "Watching %d entries. Press Ctrl+C to stop.\n", len(view.GetAll()))
	}
	return feed.Pump(ctx, events, view, func(ev feed.Event) {
		if jsonOutput {
			ui.FormatJSON(w, ev)
			return
		}
		printEvent(w, ev, len(view.GetAll()))
	})
}

func printEvent(w io.Writer, ev feed.Event, total int) {
	switch ev.Type {
	case feed.Delete:
		fmt.Fprintf(w, "- %s deleted (%d entries)\n", ev.ID(), total)
	default:
		sign := "+"
		if ev.Type == feed.Update {
			sign = "~"
		}
		fmt.Fprintf(w, "%s %s (%d entries)\n", sign, ui.EntryLine(*ev.New, theme()), total)
	}
}

func init() {
	rootCmd.AddCommand(watchCmd)
}
