package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/akarpov87/gotodo/internal/common"
)

// errorResponse is the uniform error body returned to clients.
type errorResponse struct {
	StatusCode int    `json:"statusCode"`
	Message    string `json:"message"`
	Timestamp  string `json:"timestamp"`
	Path       string `json:"path"`
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps a sentinel error to its single HTTP status. Anything
// outside the taxonomy is a 500: the cause is logged with method and path
// and the client sees only a generic message.
func (s *Server) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case errors.Is(err, common.ErrInvalidCredentials):
		status, message = http.StatusUnauthorized, err.Error()
	case errors.Is(err, common.ErrDuplicateUser):
		status, message = http.StatusBadRequest, err.Error()
	case errors.Is(err, common.ErrUnauthenticated), errors.Is(err, common.ErrInvalidToken):
		status, message = http.StatusUnauthorized, common.ErrUnauthenticated.Error()
	case errors.Is(err, common.ErrForbidden):
		status, message = http.StatusForbidden, err.Error()
	case errors.Is(err, common.ErrNotFound):
		status, message = http.StatusNotFound, err.Error()
	default:
		s.logger.Error(r.Context(), "request failed",
			"method", r.Method, "path", r.URL.Path, "error", err)
	}

	s.writeJSON(w, status, errorResponse{
		StatusCode: status,
		Message:    message,
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       r.URL.Path,
	})
}

// writeValidationError reports a failed field-constraint check. These never
// reach the services.
func (s *Server) writeValidationError(w http.ResponseWriter, r *http.Request, err error) {
	s.writeJSON(w, http.StatusBadRequest, errorResponse{
		StatusCode: http.StatusBadRequest,
		Message:    err.Error(),
		Timestamp:  time.Now().UTC().Format(time.RFC3339),
		Path:       r.URL.Path,
	})
}
