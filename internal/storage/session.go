package storage

import (
	"sync"

	"github.com/mkazymov/vocab-practice-bot/internal/domain/entities"
)

// SessionStore provides in-memory storage for chat sessions. State lives
// only for the lifetime of the process.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*entities.Session
}

// NewSessionStore creates an empty SessionStore.
func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*entities.Session),
	}
}

// Get retrieves the session for a chat, if one exists.
func (s *SessionStore) Get(chatID int64) (*entities.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess, ok := s.sessions[chatID]
	return sess, ok
}

// GetOrCreate retrieves the session for a chat, creating an idle one on
// first use.
func (s *SessionStore) GetOrCreate(chatID int64) *entities.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[chatID]; ok {
		return sess
	}
	sess := entities.NewSession()
	s.sessions[chatID] = sess
	return sess
}

// Delete removes the session for a chat.
func (s *SessionStore) Delete(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
