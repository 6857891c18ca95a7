package services

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"sync"
	"time"

	"saree-shop/internal/models"
)

const sessionTokenBytes = 32

// SessionService maps opaque session tokens to user ids.
type SessionService struct {
	mu       sync.RWMutex
	sessions map[string]models.Session // token -> session
	ttl      time.Duration
	now      func() time.Time
}

func NewSessionService(ttl time.Duration) *SessionService {
	return &SessionService{
		sessions: make(map[string]models.Session),
		ttl:      ttl,
		now:      time.Now,
	}
}

// WithClock replaces the time source. Used by tests.
func (s *SessionService) WithClock(now func() time.Time) *SessionService {
	s.now = now
	return s
}

func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Create issues a new session for userID.
func (s *SessionService) Create(userID string) (models.Session, error) {
	token, err := newSessionToken()
	if err != nil {
		return models.Session{}, fmt.Errorf("create session: %w", err)
	}

	session := models.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: s.now().Add(s.ttl),
	}

	s.mu.Lock()
	s.sessions[token] = session
	s.mu.Unlock()

	return session, nil
}

// Resolve returns the user id for a live session. Unknown and expired
// tokens resolve to anonymous; expired ones are dropped.
func (s *SessionService) Resolve(token string) (string, bool) {
	if token == "" {
		return "", false
	}

	s.mu.RLock()
	session, exists := s.sessions[token]
	s.mu.RUnlock()
	if !exists {
		return "", false
	}

	if !s.now().Before(session.ExpiresAt) {
		s.Destroy(token)
		return "", false
	}
	return session.UserID, true
}

func (s *SessionService) Destroy(token string) {
	s.mu.Lock()
	delete(s.sessions, token)
	s.mu.Unlock()
}

// PurgeExpired drops every expired session and returns how many went.
func (s *SessionService) PurgeExpired() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	purged := 0
	for token, session := range s.sessions {
		if !now.Before(session.ExpiresAt) {
			delete(s.sessions, token)
			purged++
		}
	}
	return purged
}

func (s *SessionService) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

func newSessionToken() (string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
