package cmd

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/chris-regnier/moodmemo/internal/storage"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, 0},
		{"plain", errors.New("boom"), 1},
		{"validation", fmt.Errorf("%w: bad", storage.ErrValidation), 1},
		{"storage", fmt.Errorf("%w: disk full", storage.ErrStorage), 2},
		{"wrapped storage", fmt.Errorf("entry 1: %w", fmt.Errorf("%w: x", storage.ErrStorage)), 2},
		{"explicit", withCode(3, errors.New("editor")), 3},
		{"not found", notFound("abc"), 1},
	}
	for _, tt := range tests {
		if got := ExitCode(tt.err); got != tt.want {
			t.Errorf("%s: ExitCode = %d, want %d", tt.name, got, tt.want)
		}
	}
	if !errors.Is(notFound("abc"), storage.ErrNotFound) {
		t.Error("notFound should wrap ErrNotFound")
	}
}

func TestMoodsAndToday(t *testing.T) {
	setupTestEnv(t)
	var buf bytes.Buffer
	if err := moodsRun(&buf); err != nil {
		t.Fatal(err)
	}
	if lines := strings.Split(strings.TrimSpace(buf.String()), "\n"); len(lines) != 5 {
		t.Errorf("moods lines = %d, want 5", len(lines))
	}

	seedMarch(t)
	buf.Reset()
	if err := todayRun(&buf); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "2024-03-06 (1 entry)") || !strings.Contains(buf.String(), "today") {
		t.Errorf("today output = %q", buf.String())
	}
}
