package httpapi

import (
	"errors"
	"net/http"
)

// errNoIdentity marks a protected route reached without a guard-attached
// user; it maps to a logged 500.
var errNoIdentity = errors.New("no authenticated user in request context")

func (s *Server) handleCreateTodo(w http.ResponseWriter, r *http.Request) {
	current, ok := UserFromContext(r.Context())
	if !ok {
		s.writeError(w, r, errNoIdentity)
		return
	}

	var req createTodoRequest
	if err := decodeValid(r, &req); err != nil {
		s.writeValidationError(w, r, err)
		return
	}

	// Owner comes from the verified token, never from the body.
	todo, err := s.todos.Create(r.Context(), current.ID, req.Title, req.Description)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusCreated, todo)
}

func (s *Server) handleListTodos(w http.ResponseWriter, r *http.Request) {
	current, ok := UserFromContext(r.Context())
	if !ok {
		s.writeError(w, r, errNoIdentity)
		return
	}

	list, err := s.todos.ListByUser(r.Context(), current.ID)
	if err != nil {
		s.writeError(w, r, err)
		return
	}

	s.writeJSON(w, http.StatusOK, list)
}
