package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/chris-regnier/moodmemo/internal/config"
	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/mood"
	"github.com/chris-regnier/moodmemo/internal/query"
	"github.com/chris-regnier/moodmemo/internal/storage"
	"github.com/chris-regnier/moodmemo/internal/storage/memory"
)

var fixedNow = time.Date(2024, 3, 6, 20, 0, 0, 0, time.Local)

func setupTestStore(t *testing.T) *storage.Store {
	t.Helper()
	s := storage.New(memory.New(),
		storage.WithClock(func() time.Time { return fixedNow }),
		storage.WithPublisher(broker),
	)
	t.Cleanup(func() { s.Close() })
	return s
}

// setupTestEnv points the package globals at a fresh in-memory store and
// resets every flag variable a test may have touched.
func setupTestEnv(t *testing.T) {
	t.Helper()
	store = setupTestStore(t)
	appConfig = &config.Config{
		Storage:  "memory",
		DataDir:  t.TempDir(),
		MaxWidth: 100,
		Shell: config.ShellConfig{
			CacheTTL:    "5m",
			TodayIcon:   "✓",
			NoTodayIcon: "✗",
			StreakIcon:  "d",
			ShowMood:    true,
		},
	}
	jsonOutput = false
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() {
		now = time.Now
		jsonOutput = false
		addDate, addTime, addEdit = "", "", false
		forceDelete = false
		showTextOnly = false
		listCriteria, listIDOnly = query.Criteria{}, false
		calendarMonth = ""
		chartRange, chartDate, chartFrom, chartTo = "week", "", "", ""
		exportFormat, exportOut, exportDir, exportCriteria = "json", "", "", query.Criteria{}
		importFormat, importReplace = "", false
		statusEnv, statusRefresh, statusFormat = false, false, ""
		seedList, seedSeed = false, 0
	})
}

func seed(t *testing.T, entries ...entry.Entry) []entry.Entry {
	t.Helper()
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		saved, err := store.Save(e)
		if err != nil {
			t.Fatalf("seeding %+v: %v", e, err)
		}
		out = append(out, saved)
	}
	return out
}

func mk(date, clock string, m mood.Mood, text string) entry.Entry {
	return entry.Entry{Date: date, Time: clock, Mood: m, Text: text}
}

// editorScript writes an executable shell script for use as the editor
// command. The file being edited is passed as $1.
func editorScript(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "ed.sh")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+body+"\n"), 0755); err != nil {
		t.Fatal(err)
	}
	return path
}

// syncBuffer is a bytes.Buffer safe to write from one goroutine while
// another reads it.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}
