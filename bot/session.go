package bot

import (
	"sync"
	"time"
)

// Turn is one exchange in a conversation.
type Turn struct {
	User string
	Bot  string
	At   time.Time
}

// Session is the mutable context of one conversation: the current
// language plus a rolling log of turns. Sessions are allocated per
// conversation, never shared process-wide, so one user's language
// switch cannot leak into another user's replies.
type Session struct {
	mu       sync.Mutex
	language Language
	turns    []Turn
	lastSeen time.Time
}

// NewSession creates a session with the default language (Swahili).
func NewSession() *Session {
	return &Session{
		language: Swahili,
		lastSeen: time.Now(),
	}
}

func (s *Session) Language() Language {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.language
}

func (s *Session) SetLanguage(lang Language) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.language = lang
	s.lastSeen = time.Now()
}

// AddTurn appends an exchange to the session's rolling log.
func (s *Session) AddTurn(user, bot string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, Turn{User: user, Bot: bot, At: time.Now()})
	s.lastSeen = time.Now()
}

// Turns returns a copy of the session's turn log.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

func (s *Session) idleSince() time.Time {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastSeen
}

// SessionManager hands out one Session per conversation ID. Different
// conversations run in parallel without touching each other's state.
type SessionManager struct {
	mu       sync.Mutex
	sessions map[string]*Session
}

func NewSessionManager() *SessionManager {
	return &SessionManager{
		sessions: make(map[string]*Session),
	}
}

// Get returns the session for an ID, creating it on first use.
func (m *SessionManager) Get(id string) *Session {
	m.mu.Lock()
	defer m.mu.Unlock()

	session, ok := m.sessions[id]
	if !ok {
		session = NewSession()
		m.sessions[id] = session
	}
	return session
}

// Len returns the number of live sessions.
func (m *SessionManager) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.sessions)
}

// Cleanup evicts sessions idle longer than maxIdle and reports how
// many were removed.
func (m *SessionManager) Cleanup(maxIdle time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	cutoff := time.Now().Add(-maxIdle)
	removed := 0
	for id, session := range m.sessions {
		if session.idleSince().Before(cutoff) {
			delete(m.sessions, id)
			removed++
		}
	}
	return removed
}
