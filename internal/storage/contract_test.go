package storage_test

import (
	"context"
	"errors"
	"os"
	"testing"
	"time"

	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/logger"
	"github.com/chris-regnier/moodmemo/internal/mood"
	"github.com/chris-regnier/moodmemo/internal/redisconn"
	"github.com/chris-regnier/moodmemo/internal/storage"
	"github.com/chris-regnier/moodmemo/internal/storage/disk"
	"github.com/chris-regnier/moodmemo/internal/storage/file"
	"github.com/chris-regnier/moodmemo/internal/storage/memory"
	redisstore "github.com/chris-regnier/moodmemo/internal/storage/redis"
	"github.com/chris-regnier/moodmemo/internal/storage/sqlite"
)

type backendFactory func(t *testing.T) storage.Backend

func memoryFactory(t *testing.T) storage.Backend {
	t.Helper()
	return memory.New()
}

func fileFactory(t *testing.T) storage.Backend {
	t.Helper()
	b, err := file.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating file backend: %v", err)
	}
	return b
}

func sqliteFactory(t *testing.T) storage.Backend {
	t.Helper()
	b, err := sqlite.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating sqlite backend: %v", err)
	}
	t.Cleanup(func() { b.Close() })
	return b
}

func diskFactory(t *testing.T) storage.Backend {
	t.Helper()
	b, err := disk.New(t.TempDir())
	if err != nil {
		t.Fatalf("creating diskv backend: %v", err)
	}
	return b
}

// redisFactory needs a reachable server: MOODMEMO_TEST_REDIS=localhost:6379.
func redisFactory(t *testing.T) storage.Backend {
	t.Helper()
	addr := os.Getenv("MOODMEMO_TEST_REDIS")
	if addr == "" {
		t.Skip("MOODMEMO_TEST_REDIS not set")
	}
	client, err := redisconn.Connect(redisconn.Options{Addr: addr}, logger.Nop())
	if err != nil {
		t.Fatalf("connecting to redis: %v", err)
	}
	prefix := "moodmemo-test-" + t.Name()
	client.Del(context.Background(), prefix+":"+storage.DefaultKey)
	b := redisstore.New(client, prefix)
	t.Cleanup(func() {
		client.Del(context.Background(), prefix+":"+storage.DefaultKey)
		b.Close()
	})
	return b
}

func TestContract(t *testing.T) {
	runContractTests(t, "memory", memoryFactory)
	runContractTests(t, "file", fileFactory)
	runContractTests(t, "sqlite", sqliteFactory)
	runContractTests(t, "diskv", diskFactory)
	runContractTests(t, "redis", redisFactory)
}

var fixedNow = time.Date(2024, 3, 3, 20, 15, 0, 0, time.UTC)

func newStore(t *testing.T, factory backendFactory) *storage.Store {
	t.Helper()
	return storage.New(factory(t), storage.WithClock(func() time.Time { return fixedNow }))
}

func newEntry(date, tm string, m mood.Mood, text string) entry.Entry {
	return entry.Entry{Date: date, Time: tm, Mood: m, Text: text}
}

func runContractTests(t *testing.T, name string, factory backendFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("GetAll empty", func(t *testing.T) {
			s := newStore(t, factory)
			got := s.GetAll()
			if got == nil || len(got) != 0 {
				t.Errorf("GetAll() = %v, want empty non-nil slice", got)
			}
		})

		t.Run("Backend absent key", func(t *testing.T) {
			b := factory(t)
			if _, err := b.Get("never-written"); !errors.Is(err, storage.ErrNoBlob) {
				t.Errorf("Get absent = %v, want ErrNoBlob", err)
			}
		})

		t.Run("Save creates with generated id", func(t *testing.T) {
			s := newStore(t, factory)
			saved, err := s.Save(newEntry("2024-03-01", "09:00", mood.Neutral, "hello"))
			if err != nil {
				t.Fatalf("Save: %v", err)
			}
			if saved.ID == "" {
				t.Fatal("Save returned empty id")
			}
			all := s.GetAll()
			if len(all) != 1 {
				t.Fatalf("GetAll len = %d, want 1", len(all))
			}
			if all[0].ID != saved.ID {
				t.Errorf("stored id = %q, want %q", all[0].ID, saved.ID)
			}
			for i := 0; i < 3; i++ {
				got, ok := s.GetByID(saved.ID)
				if !ok || got.ID != saved.ID {
					t.Fatalf("GetByID #%d = %+v, %v", i, got, ok)
				}
			}
			if saved.UpdatedAt != "2024-03-03T20:15:00.000Z" {
				t.Errorf("UpdatedAt = %q", saved.UpdatedAt)
			}
		})

		t.Run("Save replaces fully", func(t *testing.T) {
			s := newStore(t, factory)
			a, _ := s.Save(newEntry("2024-03-01", "09:00", mood.Neutral, "keep me?"))
			b, _ := s.Save(newEntry("2024-03-02", "10:00", mood.Happy, "other"))

			update := entry.Entry{ID: a.ID, Date: "2024-03-01", Time: "11:30", Mood: mood.Sad}
			if _, err := s.Save(update); err != nil {
				t.Fatalf("Save update: %v", err)
			}

			all := s.GetAll()
			if len(all) != 2 {
				t.Fatalf("len = %d, want 2", len(all))
			}
			if all[0].ID != a.ID || all[1].ID != b.ID {
				t.Errorf("order changed: %s, %s", all[0].ID, all[1].ID)
			}
			if all[0].Text != "" {
				t.Errorf("old text survived replace: %q", all[0].Text)
			}
			if all[0].Mood != mood.Sad || all[0].Time != "11:30" {
				t.Errorf("replace not applied: %+v", all[0])
			}
		})

		t.Run("Save unknown id appends", func(t *testing.T) {
			s := newStore(t, factory)
			e := newEntry("2024-03-01", "09:00", mood.Happy, "imported")
			e.ID = "fromelsewhere1"
			if _, err := s.Save(e); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, ok := s.GetByID("fromelsewhere1")
			if !ok || got.Text != "imported" {
				t.Errorf("GetByID = %+v, %v", got, ok)
			}
		})

		t.Run("Save rejects missing fields", func(t *testing.T) {
			s := newStore(t, factory)
			_, err := s.Save(entry.Entry{Date: "2024-03-01", Time: "09:00"})
			if !errors.Is(err, storage.ErrValidation) || !errors.Is(err, entry.ErrMissingMood) {
				t.Errorf("missing mood err = %v", err)
			}
			_, err = s.Save(entry.Entry{Date: "2024-03-01", Mood: mood.Happy})
			if !errors.Is(err, storage.ErrValidation) || !errors.Is(err, entry.ErrMissingTime) {
				t.Errorf("missing time err = %v", err)
			}
			if n := len(s.GetAll()); n != 0 {
				t.Errorf("invalid entries persisted: %d", n)
			}
		})

		t.Run("Save defaults date", func(t *testing.T) {
			s := newStore(t, factory)
			saved, err := s.Save(entry.Entry{Time: "08:00", Mood: mood.Happy})
			if err != nil {
				t.Fatalf("Save: %v", err)
			}
			if saved.Date != "2024-03-03" {
				t.Errorf("Date = %q, want clock date", saved.Date)
			}
		})

		t.Run("Delete is idempotent", func(t *testing.T) {
			s := newStore(t, factory)
			a, _ := s.Save(newEntry("2024-03-01", "09:00", mood.Neutral, "a"))
			b, _ := s.Save(newEntry("2024-03-01", "10:00", mood.Neutral, "b"))

			if err := s.Delete(a.ID); err != nil {
				t.Fatalf("Delete: %v", err)
			}
			if _, ok := s.GetByID(a.ID); ok {
				t.Error("entry still present after delete")
			}
			if err := s.Delete(a.ID); err != nil {
				t.Errorf("second Delete: %v", err)
			}
			if err := s.Delete("neverexisted"); err != nil {
				t.Errorf("Delete unknown: %v", err)
			}
			all := s.GetAll()
			if len(all) != 1 || all[0].ID != b.ID {
				t.Errorf("remaining = %+v", all)
			}
		})

		t.Run("Replace rejects duplicate ids", func(t *testing.T) {
			s := newStore(t, factory)
			kept, err := s.Save(newEntry("2024-03-01", "09:00", mood.Happy, "kept"))
			if err != nil {
				t.Fatalf("Save: %v", err)
			}
			dup := []entry.Entry{
				{ID: "dup", Date: "2024-03-02", Time: "09:00", Mood: mood.Sad},
				{ID: "dup", Date: "2024-03-03", Time: "10:00", Mood: mood.Happy},
			}
			if err := s.Replace(dup); !errors.Is(err, storage.ErrValidation) {
				t.Fatalf("Replace with duplicate ids = %v, want ErrValidation", err)
			}
			if got := s.GetAll(); len(got) != 1 || got[0].ID != kept.ID {
				t.Errorf("collection changed after rejected Replace: %+v", got)
			}
		})

		t.Run("Append keeps existing entries", func(t *testing.T) {
			s := newStore(t, factory)
			first, err := s.Save(newEntry("2024-03-01", "09:00", mood.Happy, "first"))
			if err != nil {
				t.Fatalf("Save: %v", err)
			}
			batch := []entry.Entry{
				{ID: "b1", Date: "2024-03-02", Time: "08:00", Mood: mood.Sad},
				{ID: "b2", Date: "2024-03-02", Time: "20:00", Mood: mood.Neutral},
			}
			if err := s.Append(batch); err != nil {
				t.Fatalf("Append: %v", err)
			}
			got := s.GetAll()
			if len(got) != 3 || got[0].ID != first.ID || got[1].ID != "b1" || got[2].ID != "b2" {
				t.Fatalf("GetAll after Append = %+v", got)
			}
			if err := s.Append([]entry.Entry{{ID: first.ID, Date: "2024-03-05", Time: "09:00", Mood: mood.Sad}}); !errors.Is(err, storage.ErrValidation) {
				t.Errorf("Append with existing id = %v, want ErrValidation", err)
			}
			if n := len(s.GetAll()); n != 3 {
				t.Errorf("len after rejected Append = %d, want 3", n)
			}
		})

		t.Run("Round trip", func(t *testing.T) {
			backend := factory(t)
			s := storage.New(backend)
			var want []entry.Entry
			moods := []mood.Mood{mood.VerySad, mood.Sad, mood.Neutral, mood.Happy, mood.VeryHappy}
			for i, m := range moods {
				e, err := s.Save(newEntry("2024-03-0"+string(rune('1'+i)), "12:00", m, "text "+string(m)))
				if err != nil {
					t.Fatalf("Save: %v", err)
				}
				want = append(want, e)
			}

			reloaded := storage.New(backend).GetAll()
			if len(reloaded) != len(want) {
				t.Fatalf("reloaded %d entries, want %d", len(reloaded), len(want))
			}
			for i := range want {
				if reloaded[i] != want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, reloaded[i], want[i])
				}
			}
		})
	})
}
