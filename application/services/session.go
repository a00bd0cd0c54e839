package services

import (
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"superviseme/domain/core/aggregates"
	"superviseme/domain/core/entities"
	apperrors "superviseme/pkg/errors"
)

// Session holds one browser's graph state. Graph node identifiers are
// deterministic, but which nodes are expanded is per-viewer, so every
// session owns its own aggregate.
type Session struct {
	ID        string
	Graph     *aggregates.Graph
	CreatedAt time.Time

	mu       sync.Mutex
	lastSeen time.Time
}

// WithGraph runs fn with exclusive access to the session's graph. All
// expand/collapse/read operations on one session are serialized through
// here, matching the one-event-at-a-time model of the browser client.
func (s *Session) WithGraph(fn func(*aggregates.Graph) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastSeen = time.Now()
	return fn(s.Graph)
}

// SessionManager keeps the in-memory graph sessions and evicts the ones no
// browser has touched within the TTL. There is no persistence behind it;
// an evicted session is simply recreated by the client.
type SessionManager struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	logger   *zap.Logger
	stopCh   chan struct{}
}

// NewSessionManager creates a manager and starts its eviction loop
func NewSessionManager(ttl time.Duration, logger *zap.Logger) *SessionManager {
	m := &SessionManager{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		logger:   logger,
		stopCh:   make(chan struct{}),
	}
	go m.evictExpired()
	return m
}

// Create builds a new session over the given cluster index, with the graph
// in its initial all-collapsed state
func (m *SessionManager) Create(index map[string]*entities.ClusterEntry) (*Session, error) {
	graph, err := aggregates.NewGraph(index)
	if err != nil {
		return nil, apperrors.NewValidationError("cannot create session: " + err.Error())
	}

	now := time.Now()
	session := &Session{
		ID:        uuid.New().String(),
		Graph:     graph,
		CreatedAt: now,
		lastSeen:  now,
	}

	m.mu.Lock()
	m.sessions[session.ID] = session
	m.mu.Unlock()

	m.logger.Debug("Graph session created", zap.String("sessionID", session.ID))
	return session, nil
}

// Get retrieves a live session by ID
func (m *SessionManager) Get(id string) (*Session, error) {
	m.mu.RLock()
	session, exists := m.sessions[id]
	m.mu.RUnlock()

	if !exists {
		return nil, apperrors.NewNotFoundError("session")
	}
	return session, nil
}

// Delete removes a session explicitly
func (m *SessionManager) Delete(id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.sessions[id]; !exists {
		return apperrors.NewNotFoundError("session")
	}
	delete(m.sessions, id)
	return nil
}

// Count returns the number of live sessions
func (m *SessionManager) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sessions)
}

// Stop terminates the eviction loop
func (m *SessionManager) Stop() {
	close(m.stopCh)
}

// evictExpired periodically drops sessions idle past the TTL
func (m *SessionManager) evictExpired() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-m.stopCh:
			return
		case <-ticker.C:
			cutoff := time.Now().Add(-m.ttl)
			m.mu.Lock()
			for id, session := range m.sessions {
				session.mu.Lock()
				idle := session.lastSeen.Before(cutoff)
				session.mu.Unlock()
				if idle {
					delete(m.sessions, id)
					m.logger.Debug("Graph session evicted", zap.String("sessionID", id))
				}
			}
			m.mu.Unlock()
		}
	}
}
