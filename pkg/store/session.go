package store

import (
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

// Login replaces the current session with the given user. It has no
// precondition and always succeeds.
func (s *Store) Login(u proto.User) {
	s.mu.Lock()
	s.session = u
	s.hasSession = true
	s.mu.Unlock()
	s.notify()
}

// Logout clears the current session. Clearing the persisted session token is
// the caller's responsibility; see backend.Logout.
func (s *Store) Logout() {
	s.mu.Lock()
	changed := s.hasSession
	s.session = proto.User{}
	s.hasSession = false
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// User returns the current session user, if any.
func (s *Store) User() (proto.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.hasSession
}
