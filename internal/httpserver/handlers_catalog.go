package httpserver

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/M07maaad/Study-Smart-Project/internal/service"
)

func (s *Server) handleCourses(w http.ResponseWriter, r *http.Request) {
	courses, err := s.catalog.Courses(r.Context())
	if err != nil {
		s.log.Error("fetch courses", "error", err, "request_id", requestIDFrom(r.Context()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch courses", "details": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, courses)
}

func (s *Server) handleMaterials(w http.ResponseWriter, r *http.Request) {
	materials, err := s.catalog.Materials(r.Context(), chi.URLParam(r, "courseId"))
	if err != nil {
		if errors.Is(err, service.ErrInvalidCourseID) {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
			return
		}
		s.log.Error("fetch materials", "error", err, "request_id", requestIDFrom(r.Context()))
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to fetch materials", "details": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, materials)
}
