package mutation

import (
	"leadline/internal/lead"
)

// Session tracks one open edit session on a lead. It holds the
// optimistic working copy alongside the last server-confirmed state,
// so every edit path (deferred blur saves, immediate select saves,
// inline grid edits) shares the same stage/commit/rollback primitive.
//
// Overlapping saves on the same field are rejected rather than
// coalesced: Begin returns false while a save for that field is in
// flight, and the caller skips dispatching a second one.
type Session struct {
	current   lead.Lead
	confirmed lead.Lead
	inflight  map[string]struct{}
}

// NewSession opens an edit session on a lead. For a draft the
// confirmed state is the draft itself.
func NewSession(l lead.Lead) *Session {
	return &Session{
		current:   l,
		confirmed: l,
		inflight:  make(map[string]struct{}),
	}
}

// Lead returns the optimistic working copy.
func (s *Session) Lead() lead.Lead { return s.current }

// Confirmed returns the last server-confirmed state.
func (s *Session) Confirmed() lead.Lead { return s.confirmed }

// IsDraft reports whether the session edits a not-yet-created lead.
func (s *Session) IsDraft() bool { return s.current.IsDraft() }

// Stage applies a proposed value to the working copy without sending
// anything. This is the optimistic local update.
func (s *Session) Stage(field, value string) error {
	return s.current.Set(field, value)
}

// Dirty reports whether a field's working value differs from the
// last-confirmed value. Saves of clean fields are no-ops and must not
// hit the network.
func (s *Session) Dirty(field string) bool {
	return s.current.Get(field) != s.confirmed.Get(field)
}

// Begin marks a field save as in flight. It returns false when a save
// for that field is already in flight; the caller must not dispatch
// another one.
func (s *Session) Begin(field string) bool {
	if _, busy := s.inflight[field]; busy {
		return false
	}
	s.inflight[field] = struct{}{}
	return true
}

// Commit records a successful save: the server-returned record becomes
// the confirmed state, the committed field syncs to the server's
// rendering, and the pending-change marker clears. Other fields keep
// their local working values.
func (s *Session) Commit(field string, updated lead.Lead) {
	delete(s.inflight, field)
	s.confirmed = updated
	_ = s.current.Set(field, updated.Get(field))
	s.current.ID = updated.ID
	s.current.UpdatedAt = updated.UpdatedAt
}

// Rollback reverts a field to its last-confirmed value after a failed
// save and clears the in-flight marker.
func (s *Session) Rollback(field string) {
	delete(s.inflight, field)
	_ = s.current.Set(field, s.confirmed.Get(field))
}
