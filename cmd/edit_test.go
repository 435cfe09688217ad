package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/chris-regnier/moodmemo/internal/mood"
)

func strp(s string) *string { return &s }

func TestEditFlagsUpdateOnlyGivenFields(t *testing.T) {
	setupTestEnv(t)
	e := seed(t, mk("2024-03-05", "09:00", mood.Sad, "slow start"))[0]

	var buf bytes.Buffer
	if err := editRun(&buf, e.ID, editFlags{mood: strp("4")}); err != nil {
		t.Fatalf("editRun: %v", err)
	}
	got, _ := store.GetByID(e.ID)
	if got.Mood != mood.Happy || got.Text != "slow start" || got.Time != "09:00" {
		t.Errorf("entry = %+v", got)
	}
	if !strings.Contains(buf.String(), "Updated entry "+e.ID) {
		t.Errorf("output = %q", buf.String())
	}
}

func TestEditNoChanges(t *testing.T) {
	setupTestEnv(t)
	e := seed(t, mk("2024-03-05", "09:00", mood.Sad, "same"))[0]

	var buf bytes.Buffer
	if err := editRun(&buf, e.ID, editFlags{text: strp("same")}); err != nil {
		t.Fatalf("editRun: %v", err)
	}
	if !strings.Contains(buf.String(), "No changes detected") {
		t.Errorf("output = %q", buf.String())
	}
}

func TestEditNotFound(t *testing.T) {
	setupTestEnv(t)
	err := editRun(&bytes.Buffer{}, "nope", editFlags{mood: strp("happy")})
	if err == nil || ExitCode(err) != 1 {
		t.Errorf("err=%v code=%d", err, ExitCode(err))
	}
}

func TestEditInvalidValues(t *testing.T) {
	setupTestEnv(t)
	e := seed(t, mk("2024-03-05", "09:00", mood.Sad, ""))[0]

	if err := editRun(&bytes.Buffer{}, e.ID, editFlags{mood: strp("meh")}); ExitCode(err) != 1 {
		t.Errorf("bad mood: err=%v", err)
	}
	if err := editRun(&bytes.Buffer{}, e.ID, editFlags{date: strp("05/03/2024")}); ExitCode(err) != 1 {
		t.Errorf("bad date: err=%v", err)
	}
	got, _ := store.GetByID(e.ID)
	if got != e {
		t.Errorf("entry changed to %+v", got)
	}
}

func TestEditInEditor(t *testing.T) {
	setupTestEnv(t)
	e := seed(t, mk("2024-03-05", "09:00", mood.Sad, "before"))[0]
	appConfig.Editor = editorScript(t, `sed -i 's/before/after/; s/"09:00"/"10:30"/' "$1"`)

	if err := editRun(&bytes.Buffer{}, e.ID, editFlags{}); err != nil {
		t.Fatalf("editRun: %v", err)
	}
	got, _ := store.GetByID(e.ID)
	if got.Text != "after" || got.Time != "10:30" || got.ID != e.ID {
		t.Errorf("entry = %+v", got)
	}
	if len(store.GetAll()) != 1 {
		t.Error("editing must replace, not add")
	}
}
