package session

import (
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
)

// DefaultMaxIdle is how long a session may sit untouched before the
// registry drops it on the next access. Pruning is lazy; the reviewer runs
// no background timers.
const DefaultMaxIdle = 12 * time.Hour

// Registry maps session RIDs to their state. It is the only shared
// structure between requests, so it is the only locked one.
type Registry struct {
	mu       sync.RWMutex
	sessions map[uuid.UUID]*Session
	maxIdle  time.Duration
	logger   *slog.Logger
}

func NewRegistry(maxIdle time.Duration, logger *slog.Logger) *Registry {
	if maxIdle <= 0 {
		maxIdle = DefaultMaxIdle
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Registry{
		sessions: map[uuid.UUID]*Session{},
		maxIdle:  maxIdle,
		logger:   logger,
	}
}

// GetOrCreate returns the session for a RID, creating it on first use.
// Idle sessions past the TTL are pruned on the way.
func (r *Registry) GetOrCreate(rid uuid.UUID) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.pruneLocked()

	s, ok := r.sessions[rid]
	if !ok {
		s = NewSession(rid)
		r.sessions[rid] = s
		r.logger.Info("Session created", "rid", rid)
	}
	s.Touch()
	return s
}

// Get looks up a session without creating one.
func (r *Registry) Get(rid uuid.UUID) (*Session, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.sessions[rid]
	return s, ok
}

// Delete tears a session down.
func (r *Registry) Delete(rid uuid.UUID) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, rid)
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.sessions)
}

func (r *Registry) pruneLocked() {
	cutoff := time.Now().Add(-r.maxIdle)
	for rid, s := range r.sessions {
		if s.LastActive.Before(cutoff) {
			delete(r.sessions, rid)
			r.logger.Info("Session pruned after idle timeout", "rid", rid)
		}
	}
}
