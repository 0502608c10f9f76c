// Package session holds the single authenticated identity. The current
// user record is mirrored to one JSON file so a restarted process resumes
// the last known identity; the blob is a local cache, not a verified
// credential, and is cleared on logout.
package session

import (
	"encoding/json"
	"errors"
	"os"
	"sync"

	"go-nexus-crm/internal/model"
)

// record is the on-disk layout: exactly one persisted key.
type record struct {
	User         *model.User `json:"user"`
	TokenVersion string      `json:"tokenVersion"`
}

type Store struct {
	mu      sync.RWMutex
	path    string
	current *model.User
	version string
}

// NewStore creates a session store backed by the given file. If the file
// exists its record is loaded as-is; a corrupt or unreadable file is
// treated as logged out.
func NewStore(path string) *Store {
	s := &Store{path: path}
	s.load()
	return s
}

func (s *Store) load() {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	var rec record
	if err := json.Unmarshal(data, &rec); err != nil || rec.User == nil {
		return
	}
	s.current = rec.User
	s.version = rec.TokenVersion
}

// Set commits the authenticated user and token version, writing the file
// before returning so the guard observes the login on the next request.
func (s *Store) Set(user *model.User, tokenVersion string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = user
	s.version = tokenVersion
	data, err := json.Marshal(record{User: user, TokenVersion: tokenVersion})
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// Clear drops the session and removes the persisted record.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
	s.version = ""
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// Current returns the authenticated user and active token version, or
// (nil, "") when logged out.
func (s *Store) Current() (*model.User, string) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current, s.version
}

// Authenticated reports whether a user is logged in.
func (s *Store) Authenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current != nil
}
