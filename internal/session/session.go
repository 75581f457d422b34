// Package session ties one history ledger to one caller conversation. The
// store hands out sessions keyed by opaque IDs and retires the ones nobody
// has touched for a while; an expired session's ledger is discarded with it.
package session

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/Turab-IE/Calcu-App/internal/history"
)

// Session owns the per-conversation state: the audit ledger. The ledger is
// owned exclusively by its session and is never shared across sessions.
type Session struct {
	ID        string
	Ledger    *history.Ledger
	CreatedAt time.Time

	lastSeen time.Time // guarded by the owning store's mutex
}

// Store is the in-memory session registry. Sessions are minted server-side;
// an unknown or absent ID always starts a fresh session rather than failing.
type Store struct {
	mu       sync.Mutex
	sessions map[string]*Session

	ttl   time.Duration
	log   *zap.Logger
	now   func() time.Time
	newID func() string
}

// NewStore builds an empty store. Sessions idle longer than ttl are removed
// by Sweep; ttl <= 0 disables expiry.
func NewStore(ttl time.Duration, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		log:      log,
		now:      time.Now,
		newID:    func() string { return uuid.New().String() },
	}
}

// GetOrCreate resolves id to its session, refreshing its idle timer. An
// empty or unknown id mints a fresh session with a new server-side ID; the
// caller is expected to adopt the returned session's ID.
func (s *Store) GetOrCreate(id string) *Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()

	if id != "" {
		if sess, ok := s.sessions[id]; ok {
			sess.lastSeen = now
			return sess
		}
	}

	sess := &Session{
		ID:        s.newID(),
		Ledger:    history.New(),
		CreatedAt: now,
		lastSeen:  now,
	}
	s.sessions[sess.ID] = sess

	s.log.Debug("session created", zap.String("session_id", sess.ID))
	return sess
}

// Len returns the number of live sessions.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return len(s.sessions)
}

// Sweep removes sessions idle longer than the store TTL and returns how
// many were dropped. Their ledgers go with them.
func (s *Store) Sweep() int {
	if s.ttl <= 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-s.ttl)
	removed := 0
	for id, sess := range s.sessions {
		if sess.lastSeen.Before(cutoff) {
			delete(s.sessions, id)
			removed++
		}
	}

	if removed > 0 {
		s.log.Info("expired idle sessions",
			zap.Int("removed", removed),
			zap.Int("remaining", len(s.sessions)),
		)
	}
	return removed
}

// Start runs the expiry sweeper until ctx is cancelled. It is a no-op when
// expiry is disabled or the interval is not positive.
func (s *Store) Start(ctx context.Context, interval time.Duration) {
	if s.ttl <= 0 || interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep()
		}
	}
}
