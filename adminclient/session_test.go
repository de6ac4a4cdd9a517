package adminclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"rentacar/models"
)

func authServer(t *testing.T) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			http.NotFound(w, r)
			return
		}
		var req models.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		if req.Email != "remsisrentacar@gmail.com" || req.Password != "carcar2525" {
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]string{"error": "invalid email or password"})
			return
		}
		json.NewEncoder(w).Encode(models.LoginResponse{
			Token:     "signed-token",
			ExpiresAt: time.Now().Add(15 * time.Hour),
		})
	}))
}

func TestLoginPersistsSessionAndAuthenticates(t *testing.T) {
	srv := authServer(t)
	defer srv.Close()

	dir := t.TempDir()
	client := New(srv.URL)
	session, err := NewSession(client, dir)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if session.Authenticated() {
		t.Fatalf("expected fresh session unauthenticated")
	}
	if err := session.Require(); err == nil {
		t.Fatalf("expected guard to reject before login")
	}

	if err := session.Login("remsisrentacar@gmail.com", "carcar2525"); err != nil {
		t.Fatalf("Login: %v", err)
	}
	if !session.Authenticated() {
		t.Fatalf("expected session authenticated after login")
	}
	if err := session.Require(); err != nil {
		t.Fatalf("guard rejected a valid session: %v", err)
	}
	if session.Email() != "remsisrentacar@gmail.com" {
		t.Fatalf("unexpected session email %q", session.Email())
	}
	if _, err := os.Stat(filepath.Join(dir, sessionFileName)); err != nil {
		t.Fatalf("expected persisted session file: %v", err)
	}
}

func TestLoginRejectsWrongCredentials(t *testing.T) {
	srv := authServer(t)
	defer srv.Close()

	session, err := NewSession(New(srv.URL), t.TempDir())
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}

	if err := session.Login("remsisrentacar@gmail.com", "wrong"); err == nil {
		t.Fatalf("expected login rejection")
	}
	if session.Authenticated() {
		t.Fatalf("expected no session after rejected login")
	}
}

func TestLogoutClearsSession(t *testing.T) {
	srv := authServer(t)
	defer srv.Close()

	dir := t.TempDir()
	session, err := NewSession(New(srv.URL), dir)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if err := session.Login("remsisrentacar@gmail.com", "carcar2525"); err != nil {
		t.Fatalf("Login: %v", err)
	}

	if err := session.Logout(); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if session.Authenticated() {
		t.Fatalf("expected session cleared after logout")
	}
	// Logging out twice is harmless
	if err := session.Logout(); err != nil {
		t.Fatalf("second Logout: %v", err)
	}
}

func TestExpiredSessionIsNotAuthenticated(t *testing.T) {
	dir := t.TempDir()
	state := sessionState{
		Email:     "remsisrentacar@gmail.com",
		Token:     "stale",
		ExpiresAt: time.Now().Add(-time.Hour),
	}
	data, _ := json.Marshal(state)
	if err := os.WriteFile(filepath.Join(dir, sessionFileName), data, 0600); err != nil {
		t.Fatalf("seed session file: %v", err)
	}

	session, err := NewSession(New("http://example.com/api"), dir)
	if err != nil {
		t.Fatalf("NewSession: %v", err)
	}
	if session.Authenticated() {
		t.Fatalf("expected expired session rejected")
	}
}
