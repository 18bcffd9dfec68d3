// Package session holds the per-browser-session state of the reviewer:
// the currently loaded table and its ReviewSet. State lives in process
// memory only; a reload of the data replaces it wholesale and the end of
// the session discards it.
package session

import (
	"time"

	"reviewer/model"

	"github.com/google/uuid"
)

// Session is the explicit state object passed to every handler. One
// session owns its table and ReviewSet exclusively; interactions within a
// session are sequential, so the session itself carries no lock.
type Session struct {
	RID        uuid.UUID
	Table      *model.Table
	Reviews    *model.ReviewSet
	Source     string
	Warnings   []string
	CreatedAt  time.Time
	LastActive time.Time
}

func NewSession(rid uuid.UUID) *Session {
	now := time.Now()
	return &Session{
		RID:        rid,
		Reviews:    model.NewReviewSet(),
		CreatedAt:  now,
		LastActive: now,
	}
}

// HasTable reports whether a table is loaded. This is the only top-level
// mode switch: absent until the first successful load, then present until
// replaced by the next load.
func (s *Session) HasTable() bool {
	return s.Table != nil
}

// LoadTable replaces the loaded table wholesale. Review state is reset:
// record identifiers belong to one load generation and do not survive a
// new file.
func (s *Session) LoadTable(t *model.Table, source string, warnings []string) {
	s.Table = t
	s.Source = source
	s.Warnings = warnings
	s.Reviews = model.NewReviewSet()
}

// Touch records activity for idle pruning.
func (s *Session) Touch() {
	s.LastActive = time.Now()
}
