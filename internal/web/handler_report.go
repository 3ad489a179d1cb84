package web

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"flatfinder/internal/report"
)

func (s *Server) handleDownloadReport(w http.ResponseWriter, r *http.Request) {
	p, err := s.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.serviceError(w, err, "failed to get property")
		return
	}
	if p == nil {
		s.respondError(w, http.StatusNotFound, "property not found")
		return
	}

	text := report.Generate(p, time.Now())
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", report.Filename(p.Name)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(text)); err != nil {
		s.logger.Error("failed to write report", "property_id", p.ID, "error", err)
	}
}
