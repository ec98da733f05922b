package web

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/fairental/fleet/internal/fleet"
	"github.com/fairental/fleet/internal/logging"
	"github.com/fairental/fleet/internal/store"
	"github.com/go-chi/chi/v5"
)

// vehicleItem is one list entry: the record plus the relative due-date text
// the UI shows next to each date.
type vehicleItem struct {
	fleet.Vehicle
	InsuranceDueIn   string `json:"insurance_due_in"`
	MaintenanceDueIn string `json:"maintenance_due_in"`
}

type listResponse struct {
	Vehicles []vehicleItem `json:"vehicles"`
	Count    int           `json:"count"`
}

// handleListVehicles fetches the collection and runs it through the view
// pipeline. A store failure here blocks the whole view, so it maps to 502
// rather than an empty list.
func (s *Server) handleListVehicles(w http.ResponseWriter, r *http.Request) {
	view, err := viewFromQuery(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	vehicles, err := s.vehicles.List(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("list vehicles failed", "error", err)
		writeError(w, http.StatusBadGateway, "failed to fetch vehicles")
		return
	}

	shown := fleet.Apply(vehicles, view, s.reminderSettings())

	items := make([]vehicleItem, len(shown))
	for i, v := range shown {
		items[i] = vehicleItem{
			Vehicle:          v,
			InsuranceDueIn:   fleet.FormatDueIn(v.InsuranceRenewalDate),
			MaintenanceDueIn: fleet.FormatDueIn(v.NextMaintenanceDate),
		}
	}

	writeJSON(w, listResponse{Vehicles: items, Count: len(items)})
}

// viewFromQuery parses filter/q/sort/dir query parameters into a view state.
func viewFromQuery(r *http.Request) (fleet.View, error) {
	q := r.URL.Query()

	view := fleet.View{
		Filter:  fleet.FilterAll,
		Query:   q.Get("q"),
		SortKey: fleet.SortKey(q.Get("sort")),
		SortDir: fleet.SortAsc,
	}

	if f := q.Get("filter"); f != "" {
		view.Filter = fleet.Filter(f)
	}
	if !view.Filter.Valid() {
		return fleet.View{}, errors.New("unknown filter mode")
	}

	if !view.SortKey.Valid() {
		return fleet.View{}, errors.New("unknown sort key")
	}

	if dir := q.Get("dir"); dir == string(fleet.SortDesc) {
		view.SortDir = fleet.SortDesc
	}

	return view, nil
}

func (s *Server) handleCreateVehicle(w http.ResponseWriter, r *http.Request) {
	var draft fleet.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle payload")
		return
	}

	v, err := s.vehicles.Insert(r.Context(), draft)
	if err != nil {
		logging.FromContext(r.Context()).Error("insert vehicle failed", "error", err)
		writeError(w, http.StatusBadGateway, "failed to save vehicle")
		return
	}

	writeJSONStatus(w, http.StatusCreated, v)
}

func (s *Server) handleUpdateVehicle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var draft fleet.Draft
	if err := json.NewDecoder(r.Body).Decode(&draft); err != nil {
		writeError(w, http.StatusBadRequest, "invalid vehicle payload")
		return
	}

	v, err := s.vehicles.Update(r.Context(), id, draft)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "vehicle not found")
		return
	}
	if err != nil {
		logging.FromContext(r.Context()).Error("update vehicle failed", "id", id, "error", err)
		writeError(w, http.StatusBadGateway, "failed to save vehicle")
		return
	}

	writeJSON(w, v)
}

func (s *Server) handleDeleteVehicle(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	err := s.vehicles.Delete(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "vehicle not found")
		return
	}
	if err != nil {
		logging.FromContext(r.Context()).Error("delete vehicle failed", "id", id, "error", err)
		writeError(w, http.StatusBadGateway, "failed to delete vehicle")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// handleAppendNote reads the vehicle's current notes, appends one timestamped
// entry, and writes the record back in full.
func (s *Server) handleAppendNote(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Text == "" {
		writeError(w, http.StatusBadRequest, "note text is required")
		return
	}

	v, err := s.vehicles.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "vehicle not found")
		return
	}
	if err != nil {
		logging.FromContext(r.Context()).Error("get vehicle failed", "id", id, "error", err)
		writeError(w, http.StatusBadGateway, "failed to fetch vehicle")
		return
	}

	draft := v.Draft()
	draft.Notes = fleet.AppendNote(draft.Notes, payload.Text, time.Now())

	updated, err := s.vehicles.Update(r.Context(), id, draft)
	if err != nil {
		logging.FromContext(r.Context()).Error("append note failed", "id", id, "error", err)
		writeError(w, http.StatusBadGateway, "failed to save note")
		return
	}

	writeJSON(w, updated)
}

// handleSummarizeNotes always answers 200: the summarizer degrades to a
// descriptive placeholder instead of surfacing errors.
func (s *Server) handleSummarizeNotes(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	v, err := s.vehicles.Get(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "vehicle not found")
		return
	}
	if err != nil {
		logging.FromContext(r.Context()).Error("get vehicle failed", "id", id, "error", err)
		writeError(w, http.StatusBadGateway, "failed to fetch vehicle")
		return
	}

	summary := s.summarizer.Summarize(r.Context(), v.Notes)
	writeJSON(w, map[string]string{"summary": summary})
}
