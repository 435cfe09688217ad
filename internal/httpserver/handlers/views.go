package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chris-regnier/moodmemo/internal/calendar"
	"github.com/chris-regnier/moodmemo/internal/chart"
	"github.com/chris-regnier/moodmemo/internal/dateutil"
	"github.com/chris-regnier/moodmemo/internal/httpserver/deps"
	"github.com/chris-regnier/moodmemo/internal/mood"
	"github.com/chris-regnier/moodmemo/internal/query"
)

type calendarResponse struct {
	Year  int             `json:"year"`
	Month int             `json:"month"`
	Title string          `json:"title"`
	Cells []calendar.Cell `json:"cells"`
}

// Calendar serves GET /api/calendar/{year}/{month} with month 1-12.
func Calendar(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		year, err1 := strconv.Atoi(chi.URLParam(r, "year"))
		month, err2 := strconv.Atoi(chi.URLParam(r, "month"))
		if err1 != nil || err2 != nil || month < 1 || month > 12 {
			writeBadRequest(w, fmt.Errorf("expected /api/calendar/{year}/{month} with month 1-12"))
			return
		}
		writeJSON(w, http.StatusOK, calendarResponse{
			Year:  year,
			Month: month,
			Title: fmt.Sprintf("%s %d", dateutil.MonthName(month-1), year),
			Cells: calendar.Build(year, month-1, d.Store.GetAll(), d.Now()),
		})
	}
}

type chartResponse struct {
	Start   string        `json:"start"`
	End     string        `json:"end"`
	Points  []chart.Point `json:"points"`
	Summary chart.Summary `json:"summary"`
}

// Chart serves GET /api/chart?range=week|month&date=D or ?start=&end=.
func Chart(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		start, end, err := query.ResolveWindow(q.Get("range"), q.Get("date"), q.Get("start"), q.Get("end"), d.Now())
		if err != nil {
			writeBadRequest(w, err)
			return
		}
		points := chart.Build(query.FilterByRange(d.Store.GetAll(), start, end))
		writeJSON(w, http.StatusOK, chartResponse{
			Start:   dateutil.FormatDate(start),
			End:     dateutil.FormatDate(end),
			Points:  points,
			Summary: chart.Summarize(points),
		})
	}
}

// Moods serves GET /api/moods, the mood scale in ascending order.
func Moods(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, mood.All())
	}
}
