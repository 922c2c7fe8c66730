package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/akarpov87/gotodo/internal/common"
	"github.com/akarpov87/gotodo/internal/logging"
	"github.com/akarpov87/gotodo/internal/server/models"
	"github.com/akarpov87/gotodo/internal/server/services"
)

type fakeAuthService struct {
	loginToken string
	loginErr   error

	registerOut *models.User
	registerErr error
}

func (f *fakeAuthService) Login(ctx context.Context, username, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.loginToken, nil
}

func (f *fakeAuthService) Register(ctx context.Context, username, email, password string) (*models.User, error) {
	if f.registerErr != nil {
		return nil, f.registerErr
	}
	if f.registerOut != nil {
		return f.registerOut, nil
	}
	return &models.User{ID: 1, Username: username, Email: email, PasswordHash: "digest"}, nil
}

type fakeUserService struct {
	users map[int64]*models.User

	updateOut *models.User
	updateErr error

	getCalls int
}

func (f *fakeUserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	f.getCalls++
	if u, ok := f.users[id]; ok {
		return u, nil
	}
	return nil, common.ErrNotFound
}

func (f *fakeUserService) Update(ctx context.Context, id int64, upd services.UserUpdate) (*models.User, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

type fakeTodoService struct {
	createErr error
	listOut   []models.Todo
	listErr   error

	createdOwner int64
}

func (f *fakeTodoService) Create(ctx context.Context, userID int64, title string, description *string) (*models.Todo, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	f.createdOwner = userID
	return &models.Todo{ID: 1, Title: title, Description: description, UserID: userID}, nil
}

func (f *fakeTodoService) ListByUser(ctx context.Context, userID int64) ([]models.Todo, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

// fakeVerifier maps token strings directly to user ids.
type fakeVerifier struct {
	tokens map[string]int64
}

func (f *fakeVerifier) Verify(tokenString string) (int64, error) {
	if id, ok := f.tokens[tokenString]; ok {
		return id, nil
	}
	return 0, common.ErrInvalidToken
}

type testEnv struct {
	server *Server
	auth   *fakeAuthService
	users  *fakeUserService
	todos  *fakeTodoService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	auth := &fakeAuthService{}
	users := &fakeUserService{users: map[int64]*models.User{
		5: {ID: 5, Username: "alice", Email: "a@x.com", PasswordHash: "digest"},
		6: {ID: 6, Username: "bob", Email: "b@x.com", PasswordHash: "digest"},
	}}
	todos := &fakeTodoService{}
	verifier := &fakeVerifier{tokens: map[string]int64{
		"alice-token": 5,
		"bob-token":   6,
	}}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(io.Discard, nil)))
	srv := NewServer(":0", logger, auth, users, todos, verifier)

	return &testEnv{server: srv, auth: auth, users: users, todos: todos}
}

func (e *testEnv) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var rd io.Reader
	if body != "" {
		rd = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, rd)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	e.server.Router().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(dst); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	if w.Code != want {
		t.Fatalf("status = %d, want %d; body: %s", w.Code, want, w.Body.String())
	}
}
