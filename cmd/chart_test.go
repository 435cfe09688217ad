package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/chris-regnier/moodmemo/internal/mood"
	"github.com/chris-regnier/moodmemo/internal/ui"
)

func seedChart(t *testing.T) {
	t.Helper()
	seed(t,
		mk("2024-03-02", "09:00", mood.VerySad, "previous week"),
		mk("2024-03-04", "18:00", mood.Happy, ""),
		mk("2024-03-04", "08:00", mood.Sad, ""),
		mk("2024-03-06", "12:00", mood.Neutral, ""),
		mk("2024-03-20", "12:00", mood.VeryHappy, ""),
	)
}

func chartJSON(t *testing.T) ui.ChartResult {
	t.Helper()
	jsonOutput = true
	var buf bytes.Buffer
	if err := chartRun(&buf); err != nil {
		t.Fatalf("chartRun: %v", err)
	}
	var got ui.ChartResult
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil {
		t.Fatalf("JSON unmarshal: %v", err)
	}
	return got
}

func TestChartWeek(t *testing.T) {
	setupTestEnv(t)
	seedChart(t)

	got := chartJSON(t)
	if got.Start != "2024-03-03" || got.End != "2024-03-09" {
		t.Errorf("window = %s..%s", got.Start, got.End)
	}
	if len(got.Points) != 3 {
		t.Fatalf("points = %d, want 3", len(got.Points))
	}
	// Same-day entries are ordered by time and spread across the day.
	if got.Points[0].Time != "08:00" || got.Points[0].X != 0 || got.Points[1].X != 1 {
		t.Errorf("first day points = %+v", got.Points[:2])
	}
	if got.Points[2].DayIndex != 1 || got.Points[2].X != 1.5 {
		t.Errorf("second day point = %+v", got.Points[2])
	}
	if got.Summary.Count != 3 || got.Summary.Average != 3 {
		t.Errorf("summary = %+v", got.Summary)
	}
}

func TestChartMonthAndSpan(t *testing.T) {
	setupTestEnv(t)
	seedChart(t)

	chartRange = "month"
	if got := chartJSON(t); len(got.Points) != 5 || got.End != "2024-03-31" {
		t.Errorf("month: %d points, end %s", len(got.Points), got.End)
	}

	chartFrom, chartTo = "2024-03-06", "2024-03-20"
	if got := chartJSON(t); len(got.Points) != 2 {
		t.Errorf("span: %d points", len(got.Points))
	}
}

func TestChartText(t *testing.T) {
	setupTestEnv(t)
	seedChart(t)

	var buf bytes.Buffer
	if err := chartRun(&buf); err != nil {
		t.Fatalf("chartRun: %v", err)
	}
	if !strings.Contains(buf.String(), "3 entries over 2 days, average 3.00 (neutral)") {
		t.Errorf("output = %s", buf.String())
	}
}

func TestChartBadRange(t *testing.T) {
	setupTestEnv(t)
	chartRange = "year"
	if err := chartRun(&bytes.Buffer{}); ExitCode(err) != 1 {
		t.Errorf("err=%v", err)
	}
}
