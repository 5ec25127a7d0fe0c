package store

import (
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

// CreateProject appends a fully-formed project to the collection. The
// project must carry its required fields; see proto.Project.Validate.
func (s *Store) CreateProject(p proto.Project) error {
	if err := p.Validate(); err != nil {
		return err
	}
	s.mu.Lock()
	s.projects = append(s.projects, cloneProject(p))
	s.mu.Unlock()
	s.notify()
	return nil
}

// UpdateProject replaces the stored record matching p.ID wholesale. Unknown
// ids are ignored.
func (s *Store) UpdateProject(p proto.Project) {
	s.mu.Lock()
	changed := false
	for i := range s.projects {
		if s.projects[i].ID == p.ID {
			s.projects[i] = cloneProject(p)
			changed = true
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// DeleteProject removes the project with the given id. If it was the active
// selection the selection is cleared.
func (s *Store) DeleteProject(id string) {
	s.mu.Lock()
	changed := false
	for i := range s.projects {
		if s.projects[i].ID == id {
			s.projects = append(s.projects[:i], s.projects[i+1:]...)
			changed = true
			break
		}
	}
	if s.currentID == id {
		s.currentID = ""
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// SetCurrent marks the project with the given id as the active selection for
// detail views. Only the id is stored; the project is always resolved by
// lookup.
func (s *Store) SetCurrent(id string) {
	s.mu.Lock()
	s.currentID = id
	s.mu.Unlock()
	s.notify()
}

// ClearCurrent clears the active selection.
func (s *Store) ClearCurrent() {
	s.SetCurrent("")
}

// Current returns the active project selection, resolved against the
// canonical collection.
func (s *Store) Current() (proto.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectLocked(s.currentID)
}

// Projects returns all projects in insertion order.
func (s *Store) Projects() []proto.Project {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]proto.Project, 0, len(s.projects))
	for _, p := range s.projects {
		out = append(out, cloneProject(p))
	}
	return out
}

// Project returns the project with the given id.
func (s *Store) Project(id string) (proto.Project, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.projectLocked(id)
}

func (s *Store) projectLocked(id string) (proto.Project, bool) {
	if id == "" {
		return proto.Project{}, false
	}
	for _, p := range s.projects {
		if p.ID == id {
			return cloneProject(p), true
		}
	}
	return proto.Project{}, false
}

// AddProjectMember appends a member id to the project's member list if not
// already present. Insertion order is preserved; re-adding an existing
// member is a no-op.
func (s *Store) AddProjectMember(projectID, memberID string) {
	s.mu.Lock()
	changed := false
	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}
		if !s.projects[i].HasMember(memberID) {
			s.projects[i].Members = append(s.projects[i].Members, memberID)
			changed = true
		}
		break
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// RemoveProjectMember removes a member id from the project's member list if
// present.
func (s *Store) RemoveProjectMember(projectID, memberID string) {
	s.mu.Lock()
	changed := false
	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}
		members := s.projects[i].Members
		for j, m := range members {
			if m == memberID {
				s.projects[i].Members = append(members[:j], members[j+1:]...)
				changed = true
				break
			}
		}
		break
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// UpdateFrame replaces the frame in the project's frame list whose id
// matches frame.ID. It never inserts; unknown project or frame ids are
// ignored.
func (s *Store) UpdateFrame(projectID string, frame proto.Frame) {
	s.mu.Lock()
	changed := false
	for i := range s.projects {
		if s.projects[i].ID != projectID {
			continue
		}
		for j := range s.projects[i].Frames {
			if s.projects[i].Frames[j].ID == frame.ID {
				s.projects[i].Frames[j] = frame
				s.projects[i].Frames[j].Attachments = append([]string(nil), frame.Attachments...)
				changed = true
				break
			}
		}
		break
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}

// AddMessage appends a message to the end of the project's discussion log.
// Messages are append-only; ordering is arrival order.
func (s *Store) AddMessage(projectID string, msg proto.Message) {
	s.mu.Lock()
	changed := false
	for i := range s.projects {
		if s.projects[i].ID == projectID {
			msg.Attachments = append([]string(nil), msg.Attachments...)
			s.projects[i].Messages = append(s.projects[i].Messages, msg)
			changed = true
			break
		}
	}
	s.mu.Unlock()
	if changed {
		s.notify()
	}
}
