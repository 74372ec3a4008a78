package auth

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
)

// Session is the logged-in player of the terminal client.
type Session struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// SessionManager keeps the current session in a small JSON file so the
// player stays logged in between runs.
type SessionManager struct {
	sessionFile string
	current     *Session
}

// NewSessionManager loads any session previously saved at path.
func NewSessionManager(path string) *SessionManager {
	sm := &SessionManager{sessionFile: path}
	if err := sm.LoadSession(); err != nil {
		log.Printf("[DEBUG] No previous session loaded: %v", err)
	}
	return sm
}

// SaveSession makes the given user current and writes it to disk.
func (sm *SessionManager) SaveSession(userID int, username, email string) error {
	s := &Session{UserID: userID, Username: username, Email: email}

	data, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(sm.sessionFile, data, 0600); err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	sm.current = s
	return nil
}

// LoadSession reads the session file. A missing file is not an error.
func (sm *SessionManager) LoadSession() error {
	data, err := os.ReadFile(sm.sessionFile)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read session file: %w", err)
	}

	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("failed to unmarshal session: %w", err)
	}
	sm.current = &s
	return nil
}

// Current returns the logged-in session, or nil.
func (sm *SessionManager) Current() *Session {
	return sm.current
}

// UserID returns the logged-in user's ID, or 0 for a guest.
func (sm *SessionManager) UserID() int {
	if sm.current == nil {
		return 0
	}
	return sm.current.UserID
}

func (sm *SessionManager) IsLoggedIn() bool {
	return sm.current != nil
}

// ClearSession logs out and removes the session file.
func (sm *SessionManager) ClearSession() error {
	sm.current = nil
	if err := os.Remove(sm.sessionFile); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove session file: %w", err)
	}
	return nil
}

// Describe returns a one-line description of who is logged in.
func (sm *SessionManager) Describe() string {
	if sm.current == nil {
		return "Not logged in"
	}
	return fmt.Sprintf("Logged in as: %s (%s)", sm.current.Username, sm.current.Email)
}
