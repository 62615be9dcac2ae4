package httpserver

import (
	"errors"
	"net/http"

	"github.com/M07maaad/Study-Smart-Project/internal/quiz"
	"github.com/M07maaad/Study-Smart-Project/internal/service"
)

type generateQuizRequest struct {
	Topic string `json:"topic"`
}

func (s *Server) handleGenerateQuiz(w http.ResponseWriter, r *http.Request) {
	var req generateQuizRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}

	set, err := s.quiz.Generate(r.Context(), req.Topic)
	if err != nil {
		log := s.log.With("request_id", requestIDFrom(r.Context()), "user_id", userIDFrom(r.Context()))
		var ee *quiz.ExtractionError
		switch {
		case errors.Is(err, service.ErrInvalidTopic):
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		case errors.Is(err, service.ErrUpstream):
			log.Error("quiz generation upstream failure", "error", err)
			writeJSON(w, http.StatusBadGateway, map[string]string{"error": "Failed to reach the quiz generator"})
		case errors.As(err, &ee):
			log.Error("quiz extraction failed", "kind", ee.Kind, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{
				"error":   "Failed to generate quiz",
				"code":    string(ee.Kind),
				"details": err.Error(),
			})
		default:
			log.Error("quiz generation failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "Failed to generate quiz"})
		}
		return
	}
	writeJSON(w, http.StatusOK, set)
}
