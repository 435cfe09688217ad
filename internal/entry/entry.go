package entry

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"sync"
	"time"

	gonanoid "github.com/matoous/go-nanoid/v2"

	"github.com/chris-regnier/moodmemo/internal/mood"
)

const (
	idAlphabet     = "abcdefghijklmnopqrstuvwxyz0123456789"
	idSuffixLength = 11

	// DateLayout is the serialized calendar date format.
	DateLayout = "2006-01-02"
	// TimeLayout is the serialized 24-hour wall-clock format.
	TimeLayout = "15:04"
)

var (
	idPattern   = regexp.MustCompile(`^[a-z0-9]+$`)
	datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timePattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// Validation errors. Each missing required field has its own sentinel so
// callers can report a specific message.
var (
	ErrMissingMood = errors.New("mood is required")
	ErrMissingTime = errors.New("time is required")
	ErrInvalidMood = errors.New("invalid mood")
	ErrInvalidDate = errors.New("invalid date")
	ErrInvalidTime = errors.New("invalid time")
)

// Entry is one mood and diary text record for a date and time.
// All fields serialize as strings.
type Entry struct {
	ID        string    `json:"id" yaml:"id"`
	Date      string    `json:"date" yaml:"date"`
	Time      string    `json:"time" yaml:"time"`
	Mood      mood.Mood `json:"mood" yaml:"mood"`
	Text      string    `json:"text" yaml:"text"`
	UpdatedAt string    `json:"updatedAt" yaml:"updatedAt"`
}

var (
	idMu       sync.Mutex
	lastMillis int64
)

// NewID generates an identifier from a monotonically increasing millisecond
// clock in base 36 followed by a random nanoid suffix. Uniqueness is best
// effort; the store is single-user.
func NewID() (string, error) {
	idMu.Lock()
	ms := time.Now().UnixMilli()
	if ms <= lastMillis {
		ms = lastMillis + 1
	}
	lastMillis = ms
	idMu.Unlock()

	suffix, err := gonanoid.Generate(idAlphabet, idSuffixLength)
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(ms, 36) + suffix, nil
}

// ValidateID checks whether an ID is a non-empty lowercase alphanumeric string.
func ValidateID(id string) error {
	if !idPattern.MatchString(id) {
		return fmt.Errorf("invalid entry ID: %q (must be lowercase alphanumeric)", id)
	}
	return nil
}

// ValidateDate checks a YYYY-MM-DD date string.
func ValidateDate(s string) error {
	if !datePattern.MatchString(s) {
		return fmt.Errorf("%w: %q (use YYYY-MM-DD)", ErrInvalidDate, s)
	}
	if _, err := time.ParseInLocation(DateLayout, s, time.Local); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return nil
}

// ValidateTime checks a 24-hour HH:MM time string.
func ValidateTime(s string) error {
	if !timePattern.MatchString(s) {
		return fmt.Errorf("%w: %q (use HH:MM)", ErrInvalidTime, s)
	}
	if _, err := time.Parse(TimeLayout, s); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return nil
}

// ValidateRequired rejects entries that lack a mood or a time, or whose
// present fields are malformed. A missing date is left to the caller.
func ValidateRequired(e Entry) error {
	if e.Mood == "" {
		return ErrMissingMood
	}
	if !e.Mood.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidMood, e.Mood)
	}
	if strings.TrimSpace(e.Time) == "" {
		return ErrMissingTime
	}
	if err := ValidateTime(e.Time); err != nil {
		return err
	}
	if e.Date != "" {
		if err := ValidateDate(e.Date); err != nil {
			return err
		}
	}
	return nil
}

// New builds an unsaved entry for the given moment. The ID is left empty so
// the store assigns one on save.
func New(at time.Time, m mood.Mood, text string) Entry {
	return Entry{
		Date: at.Format(DateLayout),
		Time: at.Format(TimeLayout),
		Mood: m,
		Text: text,
	}
}

// Preview returns a single-line preview of the entry text.
func (e *Entry) Preview(maxLen int) string {
	text := strings.Join(strings.Fields(e.Text), " ")
	r := []rune(text)
	if len(r) <= maxLen {
		return text
	}
	if maxLen <= 3 {
		return string(r[:maxLen])
	}
	return string(r[:maxLen-3]) + "..."
}

// Day parses the entry date as local midnight.
func (e *Entry) Day() (time.Time, error) {
	return time.ParseInLocation(DateLayout, e.Date, time.Local)
}
