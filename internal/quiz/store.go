package quiz

import "sync"

// SessionStore holds one Session per chat. Sessions are never shared
// across chats; a finished session stays in its slot until the next quiz
// replaces it.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[int64]*Session
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[int64]*Session),
	}
}

// Get returns the session for chatID, creating an idle one on first use.
func (st *SessionStore) Get(chatID int64) *Session {
	st.mu.RLock()
	session, ok := st.sessions[chatID]
	st.mu.RUnlock()
	if ok {
		return session
	}

	st.mu.Lock()
	defer st.mu.Unlock()
	if session, ok = st.sessions[chatID]; ok {
		return session
	}
	session = NewSession()
	st.sessions[chatID] = session
	return session
}

// Replace installs a fresh idle session for chatID and returns it. A new
// quiz run gets a new session instance; the old one becomes garbage.
func (st *SessionStore) Replace(chatID int64) *Session {
	st.mu.Lock()
	defer st.mu.Unlock()
	session := NewSession()
	st.sessions[chatID] = session
	return session
}
