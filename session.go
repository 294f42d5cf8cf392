package main

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

const (
	maxSessions        = 100
	sessionIdleTimeout = 5 * time.Minute
)

// Session is one joinable encounter lobby
type Session struct {
	ID       string
	Name     string
	Boss     BossArchetype
	Enc      *Encounter
	lastSeen time.Time
}

// SessionManager handles creation and lookup of sessions
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session

	db        *DB
	analytics *Analytics
}

// NewSessionManager creates a new SessionManager
func NewSessionManager(db *DB, analytics *Analytics) *SessionManager {
	return &SessionManager{
		sessions:  make(map[string]*Session),
		db:        db,
		analytics: analytics,
	}
}

// CreateSession creates a new encounter session. Returns nil if the limit
// is reached.
func (sm *SessionManager) CreateSession(name string, boss BossArchetype) *Session {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if len(sm.sessions) >= maxSessions {
		return nil
	}

	id := uuid.NewString()
	enc := NewEncounter(id, name, boss, sm.db, sm.analytics)
	sess := &Session{
		ID:       id,
		Name:     name,
		Boss:     boss,
		Enc:      enc,
		lastSeen: time.Now(),
	}
	sm.sessions[id] = sess
	go enc.Run()

	if sm.analytics != nil {
		sm.analytics.Track(EvtSessionStart, 0, id, "")
		sm.analytics.SetActiveSessions(len(sm.sessions))
	}
	return sess
}

// GetSession returns a session by ID
func (sm *SessionManager) GetSession(id string) *Session {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.sessions[id]
}

// MarkActive refreshes a session's idle timestamp
func (sm *SessionManager) MarkActive(id string) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if sess, ok := sm.sessions[id]; ok {
		sess.lastSeen = time.Now()
	}
}

// RemoveClient detaches a client from a session and tears the session
// down when it goes empty
func (sm *SessionManager) RemoveClient(sessionID, clientID string) {
	sm.mu.RLock()
	sess, ok := sm.sessions[sessionID]
	sm.mu.RUnlock()
	if !ok {
		return
	}
	sess.Enc.RemoveClient(clientID)

	if sess.Enc.ClientCount() == 0 {
		sm.remove(sessionID)
	}
}

// CleanupIdle removes sessions with no clients that have been idle past
// the timeout. Called periodically by the hub.
func (sm *SessionManager) CleanupIdle() {
	sm.mu.RLock()
	var stale []string
	cutoff := time.Now().Add(-sessionIdleTimeout)
	for id, sess := range sm.sessions {
		if sess.Enc.ClientCount() == 0 && sess.lastSeen.Before(cutoff) {
			stale = append(stale, id)
		}
	}
	sm.mu.RUnlock()

	for _, id := range stale {
		sm.remove(id)
	}
}

func (sm *SessionManager) remove(id string) {
	sm.mu.Lock()
	sess, ok := sm.sessions[id]
	if ok {
		delete(sm.sessions, id)
	}
	n := len(sm.sessions)
	sm.mu.Unlock()
	if !ok {
		return
	}

	sess.Enc.Stop()
	if sm.analytics != nil {
		sm.analytics.Track(EvtSessionEnd, 0, id, "")
		sm.analytics.SetActiveSessions(n)
	}
}

// ListSessions returns info about all active sessions
func (sm *SessionManager) ListSessions() []SessionInfo {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	list := make([]SessionInfo, 0, len(sm.sessions))
	for _, sess := range sm.sessions {
		list = append(list, SessionInfo{
			ID:      sess.ID,
			Name:    sess.Name,
			Boss:    int(sess.Boss),
			Started: sess.Enc.Started(),
		})
	}
	return list
}

// Count returns the number of active sessions
func (sm *SessionManager) Count() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return len(sm.sessions)
}
