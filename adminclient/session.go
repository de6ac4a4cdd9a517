package adminclient

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

const sessionFileName = "session.json"

// ErrNotAuthenticated is returned when an admin operation is attempted
// without a valid session.
var ErrNotAuthenticated = errors.New("not authenticated, run login first")

// sessionState is the persisted session file under the state dir
type sessionState struct {
	Email     string    `json:"email"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// Session gates admin operations behind a server-verified login. The token
// issued by the API is persisted so the session survives process restarts;
// there is no client-side credential check of any kind.
type Session struct {
	client *Client
	path   string
}

// NewSession creates a session guard persisting into stateDir. An empty
// stateDir uses ~/.rentacar.
func NewSession(client *Client, stateDir string) (*Session, error) {
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		stateDir = filepath.Join(home, ".rentacar")
	}
	if err := os.MkdirAll(stateDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create state dir: %w", err)
	}

	s := &Session{client: client, path: filepath.Join(stateDir, sessionFileName)}
	if state, err := s.load(); err == nil {
		s.client.SetToken(state.Token)
	}
	return s, nil
}

// Login exchanges credentials for a session token and persists it. A
// rejected credential pair leaves no session behind.
func (s *Session) Login(email, password string) error {
	resp, err := s.client.Login(email, password)
	if err != nil {
		return err
	}

	state := sessionState{Email: email, Token: resp.Token, ExpiresAt: resp.ExpiresAt}
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to persist session: %w", err)
	}

	s.client.SetToken(resp.Token)
	return nil
}

// Authenticated reports whether a stored, unexpired session exists
func (s *Session) Authenticated() bool {
	state, err := s.load()
	if err != nil {
		return false
	}
	return time.Now().Before(state.ExpiresAt)
}

// Require is the guard in front of admin operations
func (s *Session) Require() error {
	if !s.Authenticated() {
		return ErrNotAuthenticated
	}
	return nil
}

// Email returns the logged-in admin's email, if any
func (s *Session) Email() string {
	state, err := s.load()
	if err != nil {
		return ""
	}
	return state.Email
}

// Logout clears the persisted session
func (s *Session) Logout() error {
	s.client.SetToken("")
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

func (s *Session) load() (*sessionState, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, err
	}
	var state sessionState
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, err
	}
	if state.Token == "" {
		return nil, errors.New("empty session")
	}
	return &state, nil
}
