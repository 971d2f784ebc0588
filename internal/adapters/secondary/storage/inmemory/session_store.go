package inmemory

import (
	"sync"

	"github.com/TATR0/bot-service/internal/domain"
	"github.com/TATR0/bot-service/internal/ports/cache"
)

var _ cache.ISessionStore = (*SessionStore)(nil)

// SessionStore сессии регистрации по chat_id
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]domain.RegistrationSession
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]domain.RegistrationSession),
	}
}

// Get возвращает копию сессии
func (s *SessionStore) Get(chatID int64) (*domain.RegistrationSession, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[chatID]
	if !ok {
		return nil, false
	}
	return &session, true
}

func (s *SessionStore) Set(chatID int64, session *domain.RegistrationSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[chatID] = *session
}

func (s *SessionStore) Clear(chatID int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, chatID)
}
