package web

import (
	"fmt"
	"net/http"

	"github.com/fairental/fleet/internal/importer"
	"github.com/fairental/fleet/internal/logging"
	"github.com/fairental/fleet/internal/sheet"
)

// handleImport accepts a multipart spreadsheet upload and batch-inserts the
// admissible rows. A file that cannot be parsed is a 400; a file that parses
// but yields no admissible active vehicles is a 422, reported distinctly.
func (s *Server) handleImport(w http.ResponseWriter, r *http.Request) {
	maxSize := s.cfg.Import.MaxFileSize
	r.Body = http.MaxBytesReader(w, r.Body, maxSize)

	if err := r.ParseMultipartForm(maxSize); err != nil {
		writeError(w, http.StatusBadRequest, "file too large or invalid form")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "no file provided")
		return
	}
	defer file.Close()

	rows, err := sheet.Decode(file, header.Filename)
	if err != nil {
		logging.FromContext(r.Context()).Warn("import decode failed",
			"file", header.Filename, "error", err)
		writeError(w, http.StatusBadRequest, "error processing spreadsheet file, check the format")
		return
	}

	drafts := importer.FilterAdmissible(importer.NormalizeAll(rows))
	if len(drafts) == 0 {
		writeError(w, http.StatusUnprocessableEntity,
			`no valid "Active" vehicles found in the file; check column names, data, and renter status`)
		return
	}

	n, err := s.vehicles.BatchInsert(r.Context(), drafts)
	if err != nil {
		logging.FromContext(r.Context()).Error("import insert failed", "error", err)
		writeError(w, http.StatusBadGateway, "failed to import vehicles")
		return
	}

	writeJSONStatus(w, http.StatusCreated, map[string]any{
		"imported": n,
		"message":  fmt.Sprintf("%d vehicles imported successfully", n),
	})
}
