package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/chris-regnier/moodmemo/internal/entry"
	"github.com/chris-regnier/moodmemo/internal/httpserver/deps"
	"github.com/chris-regnier/moodmemo/internal/logger"
	"github.com/chris-regnier/moodmemo/internal/query"
	"github.com/chris-regnier/moodmemo/internal/storage"
)

const maxBodyBytes = 1 << 20

// ListEntries serves GET /api/entries with one of ?date=, ?year=&month=
// (month 1-12), or ?start=&end=.
func ListEntries(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		c := query.Criteria{Date: q.Get("date"), Start: q.Get("start"), End: q.Get("end")}
		if q.Get("year") != "" || q.Get("month") != "" {
			year, err1 := strconv.Atoi(q.Get("year"))
			month, err2 := strconv.Atoi(q.Get("month"))
			if err1 != nil || err2 != nil || month < 1 || month > 12 {
				writeBadRequest(w, fmt.Errorf("year and month (1-12) must both be numbers"))
				return
			}
			c.Month = fmt.Sprintf("%04d-%02d", year, month)
		}
		entries, err := c.Select(d.Store.GetAll())
		if err != nil {
			writeBadRequest(w, err)
			return
		}
		writeJSON(w, http.StatusOK, entries)
	}
}

// GetEntry serves GET /api/entries/{id}.
func GetEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		e, ok := d.Store.GetByID(id)
		if !ok {
			writeError(w, d.Logger, fmt.Errorf("%w: %s", storage.ErrNotFound, id))
			return
		}
		writeJSON(w, http.StatusOK, e)
	}
}

func decodeEntry(w http.ResponseWriter, r *http.Request) (entry.Entry, error) {
	var e entry.Entry
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&e); err != nil {
		return e, fmt.Errorf("invalid entry body: %v", err)
	}
	return e, nil
}

// CreateEntry serves POST /api/entries. An entry without an id, or with an
// id the store does not hold, is created (201); a known id is replaced (200).
func CreateEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := decodeEntry(w, r)
		if err != nil {
			writeBadRequest(w, err)
			return
		}
		status := http.StatusCreated
		if e.ID != "" {
			if _, exists := d.Store.GetByID(e.ID); exists {
				status = http.StatusOK
			}
		}
		saved, err := d.Store.Save(e)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		d.Logger.Debug("entry saved", logger.String("id", saved.ID))
		writeJSON(w, status, saved)
	}
}

// UpdateEntry serves PUT /api/entries/{id}; the path id overrides the body.
func UpdateEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		e, err := decodeEntry(w, r)
		if err != nil {
			writeBadRequest(w, err)
			return
		}
		e.ID = chi.URLParam(r, "id")
		saved, err := d.Store.Save(e)
		if err != nil {
			writeError(w, d.Logger, err)
			return
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

// DeleteEntry serves DELETE /api/entries/{id}. Deleting an unknown id still
// answers 204.
func DeleteEntry(d deps.Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := d.Store.Delete(chi.URLParam(r, "id")); err != nil {
			writeError(w, d.Logger, err)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}
