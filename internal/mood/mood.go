// Package mood defines the closed, ordered set of mood levels a diary entry
// can carry, along with their numeric scale, display color, label, and icon.
package mood

import (
	"fmt"
	"strings"
)

// Mood is the serialized mood value stored on an entry.
type Mood string

const (
	VerySad   Mood = "verysad"
	Sad       Mood = "sad"
	Neutral   Mood = "neutral"
	Happy     Mood = "happy"
	VeryHappy Mood = "veryhappy"
)

// Info is one row of the mood table.
type Info struct {
	Mood  Mood   `json:"mood"`
	Level int    `json:"level"`
	Color string `json:"color"`
	Label string `json:"label"`
	Icon  string `json:"icon"`
}

// table is ordered by Level ascending. Every mood representation is derived
// from this slice so the level, color, label, and icon cannot drift apart.
var table = []Info{
	{Mood: VerySad, Level: 1, Color: "#ea384c", Label: "very sad", Icon: "😢"},
	{Mood: Sad, Level: 2, Color: "#E5DEFF", Label: "sad", Icon: "🙁"},
	{Mood: Neutral, Level: 3, Color: "#FDE1D3", Label: "neutral", Icon: "😐"},
	{Mood: Happy, Level: 4, Color: "#FFDEE2", Label: "happy", Icon: "🙂"},
	{Mood: VeryHappy, Level: 5, Color: "#F2FCE2", Label: "very happy", Icon: "😄"},
}

// MinLevel and MaxLevel bound the numeric scale.
const (
	MinLevel = 1
	MaxLevel = 5
)

// All returns the mood table in ascending level order.
func All() []Info {
	out := make([]Info, len(table))
	copy(out, table)
	return out
}

// Lookup returns the table row for m.
func Lookup(m Mood) (Info, bool) {
	for _, info := range table {
		if info.Mood == m {
			return info, true
		}
	}
	return Info{}, false
}

// FromLevel returns the mood at the given numeric level.
func FromLevel(level int) (Mood, bool) {
	if level < MinLevel || level > MaxLevel {
		return "", false
	}
	return table[level-1].Mood, true
}

// Parse accepts the serialized value, a hyphen/underscore/space separated
// spelling ("very-sad", "Very Happy"), or a level digit.
func Parse(s string) (Mood, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	if norm == "" {
		return "", fmt.Errorf("empty mood")
	}
	if len(norm) == 1 && norm[0] >= '1' && norm[0] <= '5' {
		m, _ := FromLevel(int(norm[0] - '0'))
		return m, nil
	}
	norm = strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm)
	m := Mood(norm)
	if !m.Valid() {
		return "", fmt.Errorf("unknown mood %q (want one of %s)", s, strings.Join(Names(), ", "))
	}
	return m, nil
}

// Names returns the serialized mood values in ascending level order.
func Names() []string {
	names := make([]string, len(table))
	for i, info := range table {
		names[i] = string(info.Mood)
	}
	return names
}

// Valid reports whether m is one of the five known moods.
func (m Mood) Valid() bool {
	_, ok := Lookup(m)
	return ok
}

// Level returns the numeric level (1-5), or 0 for an unknown mood.
func (m Mood) Level() int {
	info, ok := Lookup(m)
	if !ok {
		return 0
	}
	return info.Level
}

// Color returns the display color. Unknown moods use the neutral color.
func (m Mood) Color() string {
	info, ok := Lookup(m)
	if !ok {
		info, _ = Lookup(Neutral)
	}
	return info.Color
}

// Label returns a human readable name with its icon.
func (m Mood) Label() string {
	info, ok := Lookup(m)
	if !ok {
		return string(m)
	}
	return info.Icon + " " + info.Label
}
