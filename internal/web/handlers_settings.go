package web

import (
	"encoding/json"
	"net/http"

	"github.com/fairental/fleet/internal/fleet"
	"github.com/fairental/fleet/internal/logging"
	"github.com/fairental/fleet/internal/settings"
)

func (s *Server) handleGetReminders(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.reminderSettings())
}

// handlePutReminders validates, persists, and swaps in the new reminder
// windows. Subsequent list requests classify with the updated values.
func (s *Server) handlePutReminders(w http.ResponseWriter, r *http.Request) {
	var next fleet.ReminderSettings
	if err := json.NewDecoder(r.Body).Decode(&next); err != nil {
		writeError(w, http.StatusBadRequest, "invalid settings payload")
		return
	}

	if next.InsuranceReminderDays <= 0 || next.MaintenanceReminderDays <= 0 {
		writeError(w, http.StatusBadRequest, "reminder days must be positive")
		return
	}

	if err := settings.Save(r.Context(), s.kv, next); err != nil {
		logging.FromContext(r.Context()).Error("save settings failed", "error", err)
		writeError(w, http.StatusBadGateway, "failed to save settings")
		return
	}

	s.mu.Lock()
	s.settings = next
	s.mu.Unlock()

	writeJSON(w, next)
}
