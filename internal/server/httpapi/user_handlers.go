package httpapi

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/akarpov87/gotodo/internal/server/auth"
	"github.com/akarpov87/gotodo/internal/server/services"
)

// ownedUserID parses the path id and runs the ownership policy against the
// authenticated caller. The policy runs before any store lookup, so a
// mismatched id is 403 even when no such user exists.
func (s *Server) ownedUserID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		s.writeValidationError(w, r, err)
		return 0, false
	}

	current, ok := UserFromContext(r.Context())
	if !ok {
		// Guard misconfiguration; should be unreachable on protected routes.
		s.writeError(w, r, errNoIdentity)
		return 0, false
	}

	if err := auth.Authorize(id, current.ID); err != nil {
		s.writeError(w, r, err)
		return 0, false
	}

	return id, true
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.ownedUserID(w, r)
	if !ok {
		return
	}

	user, err := s.users.GetByID(r.Context(), id)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, user)
}

func (s *Server) handleUpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := s.ownedUserID(w, r)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := decodeValid(r, &req); err != nil {
		s.writeValidationError(w, r, err)
		return
	}

	user, err := s.users.Update(r.Context(), id, services.UserUpdate{
		Username: req.Username,
		Email:    req.Email,
	})
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, user)
}
