package httpserver

import (
	"errors"
	"net/http"

	"github.com/M07maaad/Study-Smart-Project/internal/service"
	"github.com/M07maaad/Study-Smart-Project/internal/supabase"
)

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (s *Server) handleSignUp(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	user, err := s.auth.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeAuthError(w, r, "signup", err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"user": user})
}

func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	var req credentialsRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid json"})
		return
	}
	session, err := s.auth.SignIn(r.Context(), req.Email, req.Password)
	if err != nil {
		s.writeAuthError(w, r, "signin", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"user": session.User, "session": session})
}

// writeAuthError passes Supabase's 4xx answers (bad password, user exists,
// weak password) through to the client and hides everything else behind 502.
func (s *Server) writeAuthError(w http.ResponseWriter, r *http.Request, op string, err error) {
	var apiErr *supabase.APIError
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.As(err, &apiErr) && apiErr.Status >= 400 && apiErr.Status < 500:
		writeJSON(w, apiErr.Status, map[string]string{"error": apiErr.Message})
	case errors.Is(err, supabase.ErrNotConfigured):
		s.log.Error(op+" failed", "error", err)
		writeJSON(w, http.StatusServiceUnavailable, map[string]string{"error": "auth service unavailable"})
	default:
		s.log.Error(op+" failed", "error", err, "request_id", requestIDFrom(r.Context()))
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "auth service error"})
	}
}
