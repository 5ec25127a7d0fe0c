package store

import (
	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

// AddMember appends a fully-formed member to the directory. No
// de-duplication is performed.
func (s *Store) AddMember(m proto.TeamMember) {
	s.mu.Lock()
	s.members = append(s.members, m)
	s.mu.Unlock()
	s.notify()
}

// AddMemberByEmail adds a directory entry synthesized from an email address.
// If a member with this email already exists the call is a no-op and the
// existing member is returned. The second return value reports whether a new
// member was added.
func (s *Store) AddMemberByEmail(email string, role access.Role) (proto.TeamMember, bool) {
	s.mu.Lock()
	for _, m := range s.members {
		if m.Email == email {
			s.mu.Unlock()
			return m, false
		}
	}
	m := proto.NewTeamMemberByEmail(email, role)
	s.members = append(s.members, m)
	s.mu.Unlock()
	s.notify()
	return m, true
}

// UpdateStatus sets a member's presence status. Unknown ids are ignored.
func (s *Store) UpdateStatus(memberID string, status proto.Status) {
	s.mu.Lock()
	changed := false
	for i := range s.members {
		if s.members[i].ID == memberID {
			changed = s.members[i].Status != status
			s.members[i].Status = status
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// Members returns all directory members in insertion order.
func (s *Store) Members() []proto.TeamMember {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]proto.TeamMember, len(s.members))
	copy(out, s.members)
	return out
}

// Member returns the directory member with the given id.
func (s *Store) Member(id string) (proto.TeamMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.ID == id {
			return m, true
		}
	}
	return proto.TeamMember{}, false
}

// MemberByEmail returns the directory member with the given email.
func (s *Store) MemberByEmail(email string) (proto.TeamMember, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.members {
		if m.Email == email {
			return m, true
		}
	}
	return proto.TeamMember{}, false
}
