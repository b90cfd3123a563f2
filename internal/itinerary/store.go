package itinerary

import (
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Store errors.
var (
	ErrSessionNotFound = errors.New("itinerary session not found")
)

// Session pairs a wizard state with its session identity. Each session is
// isolated: concurrent users never share state.
type Session struct {
	ID        string
	State     State
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StoreConfig holds configuration for the session store.
type StoreConfig struct {
	// Logger for store operations.
	Logger zerolog.Logger

	// TTL is how long an idle session is kept (default: 24 hours).
	TTL time.Duration

	// CleanupInterval is how often expired sessions are swept
	// (default: 10 minutes).
	CleanupInterval time.Duration
}

// Store owns itinerary sessions and serializes all state transitions
// through the reducer.
type Store struct {
	logger          zerolog.Logger
	ttl             time.Duration
	cleanupInterval time.Duration

	mu          sync.RWMutex
	sessions    map[string]*Session
	lastCleanup time.Time
}

// NewStore creates a new session store.
func NewStore(cfg StoreConfig) *Store {
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = 24 * time.Hour
	}

	cleanupInterval := cfg.CleanupInterval
	if cleanupInterval == 0 {
		cleanupInterval = 10 * time.Minute
	}

	return &Store{
		logger:          cfg.Logger,
		ttl:             ttl,
		cleanupInterval: cleanupInterval,
		sessions:        make(map[string]*Session),
	}
}

// Create starts a new session in the initial wizard state.
func (st *Store) Create() Session {
	now := time.Now()
	session := &Session{
		ID:        "itn_" + uuid.New().String()[:22],
		State:     NewState(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	st.mu.Lock()
	st.sessions[session.ID] = session
	st.cleanupLocked(now)
	st.mu.Unlock()

	st.logger.Debug().
		Str("session_id", session.ID).
		Msg("itinerary session created")

	return *session
}

// Get retrieves a session by ID.
func (st *Store) Get(id string) (Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()

	session, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	return *session, nil
}

// Dispatch applies an action to a session's state through the reducer and
// returns the updated session.
func (st *Store) Dispatch(id string, action Action) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	session.State = Reduce(session.State, action)
	session.UpdatedAt = time.Now()

	st.cleanupLocked(session.UpdatedAt)

	return *session, nil
}

// Consume removes a session and returns its final state in one step, so
// two concurrent bookings of the same session cannot both observe it.
func (st *Store) Consume(id string) (Session, error) {
	st.mu.Lock()
	defer st.mu.Unlock()

	session, ok := st.sessions[id]
	if !ok {
		return Session{}, ErrSessionNotFound
	}

	delete(st.sessions, id)
	return *session, nil
}

// Restore puts a consumed session back and refreshes its idle timer. Used
// when the operation the session was consumed for did not go through.
func (st *Store) Restore(s Session) {
	st.mu.Lock()
	defer st.mu.Unlock()

	s.UpdatedAt = time.Now()
	st.sessions[s.ID] = &s
}

// Delete removes a session.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()

	delete(st.sessions, id)
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()

	return len(st.sessions)
}

// cleanupLocked sweeps idle sessions past the TTL. Callers must hold the
// write lock.
func (st *Store) cleanupLocked(now time.Time) {
	if now.Sub(st.lastCleanup) < st.cleanupInterval {
		return
	}

	st.lastCleanup = now
	expired := 0

	for id, session := range st.sessions {
		if now.Sub(session.UpdatedAt) > st.ttl {
			delete(st.sessions, id)
			expired++
		}
	}

	if expired > 0 {
		st.logger.Debug().
			Int("expired_sessions", expired).
			Msg("cleaned up idle itinerary sessions")
	}
}
