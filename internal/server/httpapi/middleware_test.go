package httpapi

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestAccessGuard_MissingToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/todo", "", "")
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestAccessGuard_MalformedHeader(t *testing.T) {
	env := newTestEnv(t)

	for _, header := range []string{"alice-token", "Basic alice-token", "Bearer "} {
		req := httptest.NewRequest(http.MethodGet, "/todo", nil)
		req.Header.Set("Authorization", header)
		w := httptest.NewRecorder()
		env.server.Router().ServeHTTP(w, req)
		if w.Code != http.StatusUnauthorized {
			t.Fatalf("header %q: status = %d, want 401", header, w.Code)
		}
	}
}

func TestAccessGuard_InvalidToken(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodGet, "/todo", "forged-token", "")
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestAccessGuard_DeletedSubject(t *testing.T) {
	env := newTestEnv(t)
	delete(env.users.users, 5)

	w := env.do(t, http.MethodGet, "/todo", "alice-token", "")
	requireStatus(t, w, http.StatusUnauthorized)
}

func TestAccessGuard_AttachesUser(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/todo", "alice-token", `{"title":"buy milk"}`)
	requireStatus(t, w, http.StatusCreated)

	if env.todos.createdOwner != 5 {
		t.Fatalf("todo owner = %d, want 5 (from token)", env.todos.createdOwner)
	}
}

func TestRequestID_HeaderSet(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(t, http.MethodPost, "/auth/login", "", `{"username":"a","password":"secret1"}`)
	if w.Header().Get("X-Request-Id") == "" {
		t.Fatal("expected X-Request-Id response header")
	}
}

func TestRecoverer_TurnsPanicInto500(t *testing.T) {
	env := newTestEnv(t)

	h := env.server.recoverer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	req := httptest.NewRequest(http.MethodGet, "/panic", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	requireStatus(t, w, http.StatusInternalServerError)

	var body errorResponse
	decodeBody(t, w, &body)
	if body.Message != "Internal server error" {
		t.Fatalf("internal detail leaked to client: %q", body.Message)
	}
}

func TestBearerToken(t *testing.T) {
	cases := []struct {
		header string
		want   string
		ok     bool
	}{
		{"Bearer abc", "abc", true},
		{"bearer abc", "abc", true},
		{"", "", false},
		{"abc", "", false},
		{"Bearer ", "", false},
		{"Basic abc", "", false},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		if tc.header != "" {
			req.Header.Set("Authorization", tc.header)
		}
		got, ok := bearerToken(req)
		if got != tc.want || ok != tc.ok {
			t.Fatalf("bearerToken(%q) = (%q, %v), want (%q, %v)", tc.header, got, ok, tc.want, tc.ok)
		}
	}
}
