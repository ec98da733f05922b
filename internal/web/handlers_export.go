package web

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/fairental/fleet/internal/fleet"
	"github.com/fairental/fleet/internal/logging"
	"github.com/fairental/fleet/internal/sheet"
)

// handleExport produces a criteria-based report. Criteria are validated
// before the store is contacted; an empty selection yields 404 rather than
// an empty file.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	var criteria fleet.ExportCriteria
	if err := json.NewDecoder(r.Body).Decode(&criteria); err != nil {
		writeError(w, http.StatusBadRequest, "invalid export criteria")
		return
	}

	if err := criteria.Validate(); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	vehicles, err := s.vehicles.List(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("list vehicles failed", "error", err)
		writeError(w, http.StatusBadGateway, "failed to fetch vehicles")
		return
	}

	selected := fleet.SelectForExport(vehicles, criteria)
	s.writeReport(w, r, selected, fleet.ReportFileName(time.Now()),
		"no vehicles found matching the selected criteria")
}

// handleExportToday produces the always-available today's-updates report.
func (s *Server) handleExportToday(w http.ResponseWriter, r *http.Request) {
	vehicles, err := s.vehicles.List(r.Context())
	if err != nil {
		logging.FromContext(r.Context()).Error("list vehicles failed", "error", err)
		writeError(w, http.StatusBadGateway, "failed to fetch vehicles")
		return
	}

	selected := fleet.TodaysUpdates(vehicles)
	s.writeReport(w, r, selected, fleet.TodaysUpdatesFileName(time.Now()),
		"no vehicles were added or updated today")
}

func (s *Server) writeReport(w http.ResponseWriter, r *http.Request, vehicles []fleet.Vehicle, fileName, emptyMessage string) {
	if len(vehicles) == 0 {
		writeError(w, http.StatusNotFound, emptyMessage)
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, fileName))

	if err := sheet.WriteXLSX(w, vehicles); err != nil {
		// Headers are already sent; log and give up on this response.
		logging.FromContext(r.Context()).Error("report encode failed", "error", err)
	}
}
