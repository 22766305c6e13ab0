package page

import (
	"log/slog"
	"sync"
	"time"
)

type SessionStoreConfig struct {
	IdleTimeout time.Duration
}

/*
SessionStore keeps the live page sessions of the process. Sessions that
see no request for longer than the idle timeout are closed by the
cleanup routine.
*/
type SessionStore struct {
	mu            sync.Mutex
	sessions      map[string]*Session
	idleTimeout   time.Duration
	cleanupTicker *time.Ticker
	stopCleanup   chan struct{}
	wg            sync.WaitGroup
}

func NewSessionStore(config SessionStoreConfig) *SessionStore {
	// Default idle timeout to 30 minutes if not specified
	if config.IdleTimeout <= 0 {
		config.IdleTimeout = 30 * time.Minute
	}

	return &SessionStore{
		sessions:    map[string]*Session{},
		idleTimeout: config.IdleTimeout,
	}
}

func (s *SessionStore) Add(session *Session) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[session.ID()] = session
}

func (s *SessionStore) Get(id string) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	session, ok := s.sessions[id]

	if !ok || session.Closed() {
		return nil, ErrSessionNotFound
	}

	return session, nil
}

func (s *SessionStore) Remove(id string) {
	s.mu.Lock()
	session, ok := s.sessions[id]
	delete(s.sessions, id)
	s.mu.Unlock()

	if ok {
		session.Close()
	}
}

func (s *SessionStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// Sweep closes every session idle since before now minus the idle timeout.
func (s *SessionStore) Sweep(now time.Time) int {
	cutoff := now.Add(-s.idleTimeout)
	expired := []*Session{}

	s.mu.Lock()

	for id, session := range s.sessions {
		if session.LastSeen().Before(cutoff) || session.Closed() {
			expired = append(expired, session)
			delete(s.sessions, id)
		}
	}

	s.mu.Unlock()

	for _, session := range expired {
		session.Close()
	}

	return len(expired)
}

// StartCleanupRoutine starts a periodic sweep of idle sessions
func (s *SessionStore) StartCleanupRoutine(interval time.Duration) {
	s.stopCleanup = make(chan struct{})
	s.cleanupTicker = time.NewTicker(interval)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		for {
			select {
			case <-s.cleanupTicker.C:
				if removed := s.Sweep(time.Now()); removed > 0 {
					slog.Info("closed idle page sessions", "removed", removed, "remaining", s.Len())
				}

			case <-s.stopCleanup:
				s.cleanupTicker.Stop()
				return
			}
		}
	}()

	slog.Info("page session cleanup routine started", "interval", interval, "idleTimeout", s.idleTimeout)
}

// StopCleanupRoutine stops the cleanup routine
func (s *SessionStore) StopCleanupRoutine() {
	if s.cleanupTicker != nil {
		close(s.stopCleanup)
		s.wg.Wait()
		s.cleanupTicker = nil
		slog.Info("page session cleanup routine stopped")
	}
}

// CloseAll closes and forgets every session.
func (s *SessionStore) CloseAll() {
	s.mu.Lock()
	sessions := s.sessions
	s.sessions = map[string]*Session{}
	s.mu.Unlock()

	for _, session := range sessions {
		session.Close()
	}
}
