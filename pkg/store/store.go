// Package store implements the application state container. All state the
// view layer renders lives here and is mutated only through the operations
// defined on Store.
//
// Every mutation is atomic: readers never observe a half-applied operation.
// Unknown project or member ids make mutations silent no-ops, never errors.
package store

import (
	"sync"

	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

// Store holds the session, the member directory, and the project
// collection. The zero value is not usable; use New.
type Store struct {
	mu sync.RWMutex

	session    proto.User
	hasSession bool

	members  []proto.TeamMember
	projects []proto.Project

	// currentID is the id of the active project selection. The project
	// itself is always resolved by lookup so the selection can never
	// diverge from the canonical collection.
	currentID string

	subMu sync.Mutex
	subs  map[int]func()
	subID int
}

// New returns an empty state container.
func New() *Store {
	return &Store{
		subs: make(map[int]func()),
	}
}

// Subscribe registers a callback invoked after every mutation that changed
// state. The returned function cancels the subscription. Callbacks run
// outside the store lock and must not be assumed to run once per mutation;
// they are a signal to re-read.
func (s *Store) Subscribe(fn func()) (cancel func()) {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	id := s.subID
	s.subID++
	s.subs[id] = fn
	return func() {
		s.subMu.Lock()
		defer s.subMu.Unlock()
		delete(s.subs, id)
	}
}

func (s *Store) notify() {
	s.subMu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.subMu.Unlock()
	for _, fn := range fns {
		fn()
	}
}

// Reset replaces the directory and project collections wholesale. It is used
// to restore persisted state at startup. The session is left untouched.
func (s *Store) Reset(members []proto.TeamMember, projects []proto.Project) {
	s.mu.Lock()
	s.members = make([]proto.TeamMember, len(members))
	copy(s.members, members)
	s.projects = make([]proto.Project, 0, len(projects))
	for _, p := range projects {
		s.projects = append(s.projects, cloneProject(p))
	}
	s.mu.Unlock()
	s.notify()
}

func cloneProject(p proto.Project) proto.Project {
	out := p
	out.Members = append([]string(nil), p.Members...)
	out.Frames = make([]proto.Frame, len(p.Frames))
	for i, f := range p.Frames {
		out.Frames[i] = f
		out.Frames[i].Attachments = append([]string(nil), f.Attachments...)
	}
	out.Messages = make([]proto.Message, len(p.Messages))
	for i, m := range p.Messages {
		out.Messages[i] = m
		out.Messages[i].Attachments = append([]string(nil), m.Attachments...)
	}
	return out
}
