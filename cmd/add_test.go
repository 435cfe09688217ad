package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/mood"
)

func TestAddInline(t *testing.T) {
	setupTestEnv(t)

	var buf bytes.Buffer
	if err := addRun(&buf, nil, []string{"happy", "long", "walk"}); err != nil {
		t.Fatalf("addRun: %v", err)
	}

	all := store.GetAll()
	if len(all) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(all))
	}
	e := all[0]
	if e.Mood != mood.Happy || e.Text != "long walk" {
		t.Errorf("entry = %+v", e)
	}
	if e.Date != "2024-03-06" || e.Time != "20:00" {
		t.Errorf("date/time = %s %s, want now", e.Date, e.Time)
	}
	if !strings.Contains(buf.String(), "Saved entry "+e.ID) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestAddLevelAndFlags(t *testing.T) {
	setupTestEnv(t)
	addDate, addTime = "2024-02-29", "07:45"

	if err := addRun(&bytes.Buffer{}, nil, []string{"1"}); err != nil {
		t.Fatalf("addRun: %v", err)
	}
	e := store.GetAll()[0]
	if e.Mood != mood.VerySad || e.Date != "2024-02-29" || e.Time != "07:45" || e.Text != "" {
		t.Errorf("entry = %+v", e)
	}
}

func TestAddFromStdin(t *testing.T) {
	setupTestEnv(t)

	in := strings.NewReader("  rough meeting\n")
	if err := addRun(&bytes.Buffer{}, in, []string{"sad", "-"}); err != nil {
		t.Fatalf("addRun: %v", err)
	}
	if got := store.GetAll()[0].Text; got != "rough meeting" {
		t.Errorf("text = %q", got)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	setupTestEnv(t)

	err := addRun(&bytes.Buffer{}, nil, []string{"ecstatic"})
	if err == nil || ExitCode(err) != 1 {
		t.Errorf("unknown mood: err=%v code=%d", err, ExitCode(err))
	}

	addTime = "7pm"
	err = addRun(&bytes.Buffer{}, nil, []string{"happy"})
	if err == nil || ExitCode(err) != 1 {
		t.Errorf("bad time: err=%v code=%d", err, ExitCode(err))
	}
	if len(store.GetAll()) != 0 {
		t.Error("nothing should be saved")
	}
}

func TestAddJSONOutput(t *testing.T) {
	setupTestEnv(t)
	jsonOutput = true

	var buf bytes.Buffer
	if err := addRun(&buf, nil, []string{"very-happy", "sunshine"}); err != nil {
		t.Fatalf("addRun: %v", err)
	}
	var got entry.Entry
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("JSON unmarshal: %v", err)
	}
	if got.ID == "" || got.Mood != mood.VeryHappy || got.UpdatedAt == "" {
		t.Errorf("got %+v", got)
	}
}

func TestAddWithEditor(t *testing.T) {
	setupTestEnv(t)
	appConfig.Editor = editorScript(t, `sed -i 's/"neutral"/"happy"/' "$1"; echo "written in the editor" >> "$1"`)
	addEdit = true

	if err := addRun(&bytes.Buffer{}, nil, []string{"neutral"}); err != nil {
		t.Fatalf("addRun: %v", err)
	}
	e := store.GetAll()[0]
	if e.Mood != mood.Happy || e.Text != "written in the editor" {
		t.Errorf("entry = %+v", e)
	}
}
