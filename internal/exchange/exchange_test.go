package exchange

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/mood"
)

func sample() []entry.Entry {
	return []entry.Entry{
		{ID: "a1", Date: "2024-03-01", Time: "09:00", Mood: mood.Happy, Text: "coffee\n\nthen a walk", UpdatedAt: "2024-03-01T09:00:00.000Z"},
		{ID: "b2", Date: "2024-03-02", Time: "22:15", Mood: mood.VerySad},
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    Format
		wantErr bool
	}{
		{"json", JSON, false},
		{"YAML", YAML, false},
		{"yml", YAML, false},
		{"md", Markdown, false},
		{"markdown", Markdown, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseFormat(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseFormat(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestEncodeDecode(t *testing.T) {
	for _, format := range []Format{JSON, YAML, Markdown} {
		t.Run(string(format), func(t *testing.T) {
			var buf bytes.Buffer
			if err := Encode(&buf, sample(), format); err != nil {
				t.Fatalf("Encode: %v", err)
			}
			got, err := Decode(&buf, format)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			want := sample()
			if len(got) != len(want) {
				t.Fatalf("got %d entries, want %d", len(got), len(want))
			}
			for i := range want {
				if got[i] != want[i] {
					t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
				}
			}
		})
	}
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil, JSON); err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(buf.String()) != "[]" {
		t.Errorf("got %q, want []", buf.String())
	}
	got, err := Decode(&buf, JSON)
	if err != nil {
		t.Fatal(err)
	}
	if got == nil || len(got) != 0 {
		t.Errorf("got %v, want empty non-nil slice", got)
	}
}

func TestDecodeYAMLEmptyInput(t *testing.T) {
	got, err := Decode(strings.NewReader(""), YAML)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 0 {
		t.Errorf("got %d entries, want 0", len(got))
	}
}

func TestMarkdownKeepsSurroundingWhitespace(t *testing.T) {
	texts := []string{
		"  indented first line\n\tand a tab",
		"\nstarts with a blank line",
		"ends with a blank line\n\n",
		"trailing spaces   ",
		"",
	}
	var entries []entry.Entry
	for i, text := range texts {
		entries = append(entries, entry.Entry{
			ID: "w" + string(rune('a'+i)), Date: "2024-03-01", Time: "09:00", Mood: mood.Neutral, Text: text,
		})
	}

	var buf bytes.Buffer
	if err := Encode(&buf, entries, Markdown); err != nil {
		t.Fatal(err)
	}
	got, err := Decode(&buf, Markdown)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != len(entries) {
		t.Fatalf("got %d entries, want %d", len(got), len(entries))
	}
	for i := range entries {
		if got[i].Text != entries[i].Text {
			t.Errorf("entry %d Text = %q, want %q", i, got[i].Text, entries[i].Text)
		}
	}

	dir := t.TempDir()
	if err := WriteDir(dir, entries[:1]); err != nil {
		t.Fatal(err)
	}
	fromDir, err := ReadPath(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(fromDir) != 1 || fromDir[0].Text != texts[0] {
		t.Errorf("ReadPath = %+v", fromDir)
	}
}

func TestUnmarshalMarkdownCRLF(t *testing.T) {
	doc := "---\r\ndate: \"2024-03-05\"\r\ntime: \"07:30\"\r\nmood: sad\r\n---\r\n\r\n rainy\r\n"
	e, err := UnmarshalMarkdown([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if e.Text != " rainy" {
		t.Errorf("Text = %q", e.Text)
	}
}

func TestDecodeBadJSON(t *testing.T) {
	if _, err := Decode(strings.NewReader("{not json"), JSON); err == nil {
		t.Error("expected error for malformed json")
	}
}

func TestUnmarshalMarkdownMoodAliases(t *testing.T) {
	doc := "---\ndate: \"2024-03-05\"\ntime: \"07:30\"\nmood: \"4\"\n---\n\nslept well\n"
	e, err := UnmarshalMarkdown([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if e.Mood != mood.Happy {
		t.Errorf("Mood = %q, want %q", e.Mood, mood.Happy)
	}
	if e.Text != "slept well" {
		t.Errorf("Text = %q", e.Text)
	}
	if e.ID != "" {
		t.Errorf("ID = %q, want empty", e.ID)
	}
}

func TestUnmarshalMarkdownBadMood(t *testing.T) {
	doc := "---\ndate: \"2024-03-05\"\ntime: \"07:30\"\nmood: \"ecstatic\"\n---\n"
	if _, err := UnmarshalMarkdown([]byte(doc)); err == nil {
		t.Error("expected error for unknown mood")
	}
}

func TestWriteDirReadPath(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")
	if err := WriteDir(dir, sample()); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(filepath.Join(dir, "2024-03-01_0900_a1.md")); err != nil {
		t.Fatalf("expected file per entry: %v", err)
	}
	got, err := ReadPath(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 || got[0].ID != "a1" || got[1].ID != "b2" {
		t.Errorf("ReadPath = %+v", got)
	}
}

func TestReadPathFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "backup.yaml")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := Encode(f, sample(), YAML); err != nil {
		t.Fatal(err)
	}
	f.Close()

	got, err := ReadPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 2 {
		t.Errorf("got %d entries, want 2", len(got))
	}

	if _, err := ReadPath(filepath.Join(t.TempDir(), "backup.csv")); err == nil {
		t.Error("expected error for missing file")
	}
}
