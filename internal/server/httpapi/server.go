// Package httpapi exposes the REST surface: registration, login, user
// profile and the per-user todo list. Handlers translate between HTTP and
// the services; all authorization decisions live in the access guard and
// the ownership policy.
package httpapi

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/akarpov87/gotodo/internal/logging"
	"github.com/akarpov87/gotodo/internal/server/models"
	"github.com/akarpov87/gotodo/internal/server/services"
)

// AuthService is the slice of the auth service the handlers need.
type AuthService interface {
	Login(ctx context.Context, username, password string) (string, error)
	Register(ctx context.Context, username, email, password string) (*models.User, error)
}

// UserService reads and updates user profiles.
type UserService interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	Update(ctx context.Context, id int64, upd services.UserUpdate) (*models.User, error)
}

// TodoService manages the caller's todo list.
type TodoService interface {
	Create(ctx context.Context, userID int64, title string, description *string) (*models.Todo, error)
	ListByUser(ctx context.Context, userID int64) ([]models.Todo, error)
}

// TokenVerifier resolves a bearer token to a user id. The access guard
// depends on this interface, not on the concrete issuer.
type TokenVerifier interface {
	Verify(tokenString string) (int64, error)
}

type Server struct {
	address  string
	logger   logging.Logger
	auth     AuthService
	users    UserService
	todos    TodoService
	verifier TokenVerifier
}

func NewServer(address string, l logging.Logger, as AuthService, us UserService, ts TodoService, v TokenVerifier) *Server {
	return &Server{
		address:  address,
		logger:   l.With("module", "http_server"),
		auth:     as,
		users:    us,
		todos:    ts,
		verifier: v,
	}
}

// Router assembles the routing table. Public routes first, then the group
// protected by the access guard.
func (s *Server) Router() http.Handler {
	r := chi.NewRouter()

	r.Use(s.requestID)
	r.Use(s.requestLogger)
	r.Use(s.recoverer)

	r.Post("/user", s.handleRegister)
	r.Post("/auth/register", s.handleRegister)
	r.Post("/auth/login", s.handleLogin)

	r.Group(func(r chi.Router) {
		r.Use(s.accessGuard)

		r.Get("/user/{id}", s.handleGetUser)
		r.Put("/user/{id}", s.handleUpdateUser)

		r.Post("/todo", s.handleCreateTodo)
		r.Get("/todo", s.handleListTodos)
	})

	return r
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}
