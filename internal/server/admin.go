package server

import (
	"net/http"
	"time"
)

func (s *Server) runBackup(w http.ResponseWriter, r *http.Request) {
	path, err := s.backup.PerformBackup()
	if err != nil {
		s.logger.Error().Err(err).Msg("backup failed")
		writeErrorMessage(w, http.StatusInternalServerError, "Internal Server Error", "backup failed")
		return
	}
	s.backup.CleanupOldBackups()
	writeJSON(w, http.StatusOK, map[string]string{"backup": path})
}

// exportBookings writes the xlsx report and serves it back. The window
// defaults to the 30 days around now.
func (s *Server) exportBookings(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	start := now.AddDate(0, 0, -30)
	end := now.AddDate(0, 0, 30)

	var err error
	if raw := r.URL.Query().Get("start"); raw != "" {
		start, err = time.Parse("2006-01-02", raw)
		if err != nil {
			writeBadRequest(w, "invalid start date; expected YYYY-MM-DD")
			return
		}
	}
	if raw := r.URL.Query().Get("end"); raw != "" {
		end, err = time.Parse("2006-01-02", raw)
		if err != nil {
			writeBadRequest(w, "invalid end date; expected YYYY-MM-DD")
			return
		}
	}
	if !start.Before(end) {
		writeBadRequest(w, "start must be before end")
		return
	}

	path, err := s.exporter.export(r.Context(), start, end)
	if err != nil {
		s.logger.Error().Err(err).Msg("export failed")
		writeErrorMessage(w, http.StatusInternalServerError, "Internal Server Error", "export failed")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	http.ServeFile(w, r, path)
}
