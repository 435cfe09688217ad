package shell

import (
	"time"

	"github.com/chris-regnier/moodmemo/internal/dateutil"
	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/mood"
)

// Status is the prompt summary of the journal.
type Status struct {
	Today    bool
	Streak   int
	LastMood mood.Mood
}

// ComputeStatus reports whether today has an entry, how many consecutive
// days up to today have at least one, and the mood of the latest entry
// logged today.
func ComputeStatus(entries []entry.Entry, now time.Time) Status {
	days := make(map[string]bool, len(entries))
	for _, e := range entries {
		days[e.Date] = true
	}

	today := dateutil.Normalize(now)
	key := dateutil.FormatDate(today)

	var st Status
	st.Today = days[key]

	var latest string
	for _, e := range entries {
		if e.Date == key && e.Time >= latest {
			latest = e.Time
			st.LastMood = e.Mood
		}
	}

	for check := today; days[dateutil.FormatDate(check)]; check = check.AddDate(0, 0, -1) {
		st.Streak++
	}
	return st
}
