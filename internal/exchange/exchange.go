// Package exchange moves the entry collection in and out of the store as
// JSON, YAML, or a directory of Markdown files with front matter.
package exchange

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/adrg/frontmatter"
	"gopkg.in/yaml.v3"

	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/mood"
)

// Format is an exchange encoding.
type Format string

const (
	JSON     Format = "json"
	YAML     Format = "yaml"
	Markdown Format = "markdown"
)

// ParseFormat accepts json, yaml/yml, or markdown/md.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "json":
		return JSON, nil
	case "yaml", "yml":
		return YAML, nil
	case "markdown", "md":
		return Markdown, nil
	}
	return "", fmt.Errorf("unknown format %q (use json, yaml, or markdown)", s)
}

// FormatForPath guesses the format from a file extension.
func FormatForPath(path string) (Format, error) {
	return ParseFormat(strings.TrimPrefix(filepath.Ext(path), "."))
}

// Encode writes entries to w. Markdown writes the documents back to back,
// which Decode can read again.
func Encode(w io.Writer, entries []entry.Entry, format Format) error {
	if entries == nil {
		entries = []entry.Entry{}
	}
	switch format {
	case JSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(entries)
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return err
		}
		return enc.Close()
	case Markdown:
		for _, e := range entries {
			if _, err := w.Write(MarshalMarkdown(e)); err != nil {
				return err
			}
		}
		return nil
	}
	return fmt.Errorf("unknown format %q", format)
}

// Decode reads entries from r.
func Decode(r io.Reader, format Format) ([]entry.Entry, error) {
	var entries []entry.Entry
	switch format {
	case JSON:
		if err := json.NewDecoder(r).Decode(&entries); err != nil {
			return nil, fmt.Errorf("decoding json: %w", err)
		}
	case YAML:
		if err := yaml.NewDecoder(r).Decode(&entries); err != nil && err != io.EOF {
			return nil, fmt.Errorf("decoding yaml: %w", err)
		}
	case Markdown:
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, err
		}
		for i, doc := range splitDocuments(string(data)) {
			e, err := UnmarshalMarkdown([]byte(doc))
			if err != nil {
				return nil, fmt.Errorf("document %d: %w", i+1, err)
			}
			entries = append(entries, e)
		}
	default:
		return nil, fmt.Errorf("unknown format %q", format)
	}
	if entries == nil {
		entries = []entry.Entry{}
	}
	return entries, nil
}

type frontMatter struct {
	ID        string `yaml:"id"`
	Date      string `yaml:"date"`
	Time      string `yaml:"time"`
	Mood      string `yaml:"mood"`
	UpdatedAt string `yaml:"updatedAt"`
}

// MarshalMarkdown renders one entry as a Markdown document with front matter.
func MarshalMarkdown(e entry.Entry) []byte {
	var b strings.Builder
	b.WriteString("---\n")
	if e.ID != "" {
		fmt.Fprintf(&b, "id: %s\n", strconv.Quote(e.ID))
	}
	fmt.Fprintf(&b, "date: %s\n", strconv.Quote(e.Date))
	fmt.Fprintf(&b, "time: %s\n", strconv.Quote(e.Time))
	fmt.Fprintf(&b, "mood: %s\n", strconv.Quote(string(e.Mood)))
	if e.UpdatedAt != "" {
		fmt.Fprintf(&b, "updatedAt: %s\n", strconv.Quote(e.UpdatedAt))
	}
	b.WriteString("---\n\n")
	if e.Text != "" {
		b.WriteString(e.Text)
		b.WriteString("\n")
	}
	return []byte(b.String())
}

// UnmarshalMarkdown parses one front matter document. The mood may use any
// spelling mood.Parse accepts.
func UnmarshalMarkdown(data []byte) (entry.Entry, error) {
	var fm frontMatter
	body, err := frontmatter.Parse(strings.NewReader(string(data)), &fm)
	if err != nil {
		return entry.Entry{}, fmt.Errorf("parsing front matter: %w", err)
	}
	e := entry.Entry{
		ID:        fm.ID,
		Date:      fm.Date,
		Time:      fm.Time,
		Text:      trimBody(string(body)),
		UpdatedAt: fm.UpdatedAt,
	}
	if fm.Mood != "" {
		m, err := mood.Parse(fm.Mood)
		if err != nil {
			return entry.Entry{}, err
		}
		e.Mood = m
	}
	return e, nil
}

// trimBody drops the blank line MarshalMarkdown puts after the front matter
// and the newline it puts after the text, keeping any other whitespace.
func trimBody(body string) string {
	if strings.HasPrefix(body, "\r\n") {
		body = body[2:]
	} else {
		body = strings.TrimPrefix(body, "\n")
	}
	if strings.HasSuffix(body, "\r\n") {
		return body[:len(body)-2]
	}
	return strings.TrimSuffix(body, "\n")
}

// splitDocuments cuts a stream of front matter documents at each line that
// opens a new "---" block after a body.
func splitDocuments(s string) []string {
	lines := strings.SplitAfter(s, "\n")
	var docs []string
	var cur strings.Builder
	delims := 0
	for _, line := range lines {
		if strings.TrimRight(line, "\r\n") == "---" {
			if delims == 2 {
				docs = appendDoc(docs, cur.String())
				cur.Reset()
				delims = 0
			}
			delims++
		}
		cur.WriteString(line)
	}
	return appendDoc(docs, cur.String())
}

func appendDoc(docs []string, doc string) []string {
	if strings.TrimSpace(doc) == "" {
		return docs
	}
	return append(docs, doc)
}

// FileName is the Markdown file name for an entry: date, time, then id.
func FileName(e entry.Entry) string {
	return fmt.Sprintf("%s_%s_%s.md", e.Date, strings.ReplaceAll(e.Time, ":", ""), e.ID)
}

// WriteDir writes one Markdown file per entry into dir.
func WriteDir(dir string, entries []entry.Entry) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating export directory: %w", err)
	}
	for _, e := range entries {
		path := filepath.Join(dir, FileName(e))
		if err := os.WriteFile(path, MarshalMarkdown(e), 0644); err != nil {
			return fmt.Errorf("writing %s: %w", path, err)
		}
	}
	return nil
}

// ReadPath loads entries from a file (format by extension) or a directory of
// .md files, read in name order.
func ReadPath(path string) ([]entry.Entry, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		format, err := FormatForPath(path)
		if err != nil {
			return nil, err
		}
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return Decode(f, format)
	}

	names, err := filepath.Glob(filepath.Join(path, "*.md"))
	if err != nil {
		return nil, err
	}
	sort.Strings(names)
	entries := []entry.Entry{}
	for _, name := range names {
		data, err := os.ReadFile(name)
		if err != nil {
			return nil, err
		}
		e, err := UnmarshalMarkdown(data)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(name), err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}
