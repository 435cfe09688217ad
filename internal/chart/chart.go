// Package chart turns a date-filtered entry list into plotted mood points.
//
// The x axis is measured in "day indexes": the distinct dates present are
// sorted and numbered 0, 1, 2, ... so empty calendar days do not stretch the
// axis. Entries on the same day are spread across [index, index+1] in time
// order; a lone entry sits at index+0.5.
package chart

import (
	"fmt"
	"sort"

	"github.com/chris-regnier/moodmemo/internal/dateutil"
	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/mood"
)

const noteLength = 60

// Point is one plotted entry.
type Point struct {
	EntryID  string  `json:"entryId"`
	Date     string  `json:"date"`
	Label    string  `json:"label"`
	Time     string  `json:"time"`
	Mood     string  `json:"mood"`
	Value    int     `json:"value"`
	Color    string  `json:"color"`
	Note     string  `json:"note"`
	FullNote string  `json:"fullNote"`
	Key      string  `json:"key"`
	DayIndex int     `json:"dayIndex"`
	Position float64 `json:"position"`
	X        float64 `json:"x"`
}

// Build computes one point per entry, ordered by X.
func Build(entries []entry.Entry) []Point {
	byDay := make(map[string][]entry.Entry)
	for _, e := range entries {
		byDay[e.Date] = append(byDay[e.Date], e)
	}

	days := make([]string, 0, len(byDay))
	for d := range byDay {
		days = append(days, d)
	}
	// YYYY-MM-DD sorts chronologically as a string.
	sort.Strings(days)

	points := make([]Point, 0, len(entries))
	for dayIndex, day := range days {
		dayEntries := byDay[day]
		sort.SliceStable(dayEntries, func(i, j int) bool {
			return dayEntries[i].Time < dayEntries[j].Time
		})

		label := day
		if d, err := dateutil.ParseDate(day); err == nil {
			label = d.Format("Jan 2")
		}

		n := len(dayEntries)
		for i, e := range dayEntries {
			pos := 0.5
			if n > 1 {
				pos = float64(i) / float64(n-1)
			}
			points = append(points, Point{
				EntryID:  e.ID,
				Date:     day,
				Label:    label,
				Time:     e.Time,
				Mood:     string(e.Mood),
				Value:    e.Mood.Level(),
				Color:    e.Mood.Color(),
				Note:     e.Preview(noteLength),
				FullNote: e.Text,
				Key:      fmt.Sprintf("%s-%s-%d", day, e.Time, i),
				DayIndex: dayIndex,
				Position: pos,
				X:        float64(dayIndex) + pos,
			})
		}
	}
	return points
}

// Summary aggregates a set of points.
type Summary struct {
	Count   int               `json:"count"`
	Days    int               `json:"days"`
	Average float64           `json:"average"`
	ByMood  map[mood.Mood]int `json:"byMood"`
	Lowest  int               `json:"lowest"`
	Highest int               `json:"highest"`
}

// Summarize counts points per mood and averages their levels. Points with
// an unknown mood count toward Count but not the average.
func Summarize(points []Point) Summary {
	s := Summary{ByMood: make(map[mood.Mood]int)}
	days := make(map[int]bool)
	total, scored := 0, 0
	for _, p := range points {
		s.Count++
		days[p.DayIndex] = true
		if p.Value == 0 {
			continue
		}
		s.ByMood[mood.Mood(p.Mood)]++
		total += p.Value
		scored++
		if s.Lowest == 0 || p.Value < s.Lowest {
			s.Lowest = p.Value
		}
		if p.Value > s.Highest {
			s.Highest = p.Value
		}
	}
	s.Days = len(days)
	if scored > 0 {
		s.Average = float64(total) / float64(scored)
	}
	return s
}
