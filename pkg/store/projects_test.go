package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/matryer/is"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

func newProject(name, creator string) proto.Project {
	return proto.NewProject(name, "#3b82f6", "2024-01-01", "2024-02-01", 5, creator)
}

func TestCreateProjectSeeds(t *testing.T) {
	is := is.New(t)
	s := New()
	p := newProject("A", "u1")
	is.NoErr(s.CreateProject(p))

	got, ok := s.Project(p.ID)
	is.True(ok)
	is.Equal(got.Members, []string{"u1"})
	is.Equal(len(got.Frames), 1)
	is.Equal(got.Frames[0].Title, "Introduction")
	is.Equal(got.Frames[0].Content, "Welcome to our A project.")
	is.Equal(len(got.Messages), 0)
}

func TestCreateProjectValidation(t *testing.T) {
	s := New()
	p := newProject("", "u1")
	err := s.CreateProject(p)
	if !errors.Is(err, proto.ErrMissingField) {
		t.Errorf("CreateProject(no name) => %v, want ErrMissingField", err)
	}
	if got := s.Projects(); len(got) != 0 {
		t.Errorf("projects after failed create => %d, want 0", len(got))
	}
}

func TestAddProjectMemberIdempotent(t *testing.T) {
	is := is.New(t)
	s := New()
	p := newProject("A", "u1")
	is.NoErr(s.CreateProject(p))

	s.AddProjectMember(p.ID, "u2")
	s.AddProjectMember(p.ID, "u2")

	got, ok := s.Project(p.ID)
	is.True(ok)
	is.Equal(got.Members, []string{"u1", "u2"})
}

func TestRemoveThenReAddMember(t *testing.T) {
	is := is.New(t)
	s := New()
	p := newProject("A", "u1")
	is.NoErr(s.CreateProject(p))
	s.AddProjectMember(p.ID, "u2")
	s.AddProjectMember(p.ID, "u3")

	s.RemoveProjectMember(p.ID, "u2")
	got, _ := s.Project(p.ID)
	is.Equal(got.Members, []string{"u1", "u3"})

	// Re-admission appends at the end, not at the original index.
	s.AddProjectMember(p.ID, "u2")
	got, _ = s.Project(p.ID)
	is.Equal(got.Members, []string{"u1", "u3", "u2"})
}

func TestUpdateFrameUnknownIDNoop(t *testing.T) {
	is := is.New(t)
	s := New()
	p := newProject("A", "u1")
	is.NoErr(s.CreateProject(p))

	before, _ := s.Project(p.ID)
	s.UpdateFrame(p.ID, proto.Frame{ID: "frame_missing", Title: "X"})
	after, _ := s.Project(p.ID)
	is.Equal(before.Frames, after.Frames)
}

func TestUpdateFrameReplaces(t *testing.T) {
	is := is.New(t)
	s := New()
	p := newProject("A", "u1")
	is.NoErr(s.CreateProject(p))

	f := p.Frames[0]
	f.Content = "edited"
	f.Attachments = []string{"notes.txt"}
	s.UpdateFrame(p.ID, f)

	got, _ := s.Project(p.ID)
	is.Equal(got.Frames[0].Content, "edited")
	is.Equal(got.Frames[0].Attachments, []string{"notes.txt"})
}

func TestAddMessageAppendOnly(t *testing.T) {
	is := is.New(t)
	s := New()
	p := newProject("A", "u1")
	is.NoErr(s.CreateProject(p))

	u := proto.User{ID: "u1", Email: "u1@example.com", Name: "u1"}
	const n = 10
	for i := 0; i < n; i++ {
		s.AddMessage(p.ID, proto.NewMessage(u, fmt.Sprintf("msg %d", i), nil))
	}

	got, _ := s.Project(p.ID)
	is.Equal(len(got.Messages), n)
	for i, m := range got.Messages {
		is.Equal(m.Content, fmt.Sprintf("msg %d", i))
	}
}

func TestUpdateProjectWholesale(t *testing.T) {
	is := is.New(t)
	s := New()
	p := newProject("A", "u1")
	is.NoErr(s.CreateProject(p))

	p.Name = "B"
	p.Color = "#10b981"
	s.UpdateProject(p)

	got, _ := s.Project(p.ID)
	is.Equal(got.Name, "B")
	is.Equal(got.Color, "#10b981")

	// Unknown id never inserts.
	ghost := newProject("C", "u1")
	s.UpdateProject(ghost)
	is.Equal(len(s.Projects()), 1)
}

func TestDeleteProjectClearsSelection(t *testing.T) {
	is := is.New(t)
	s := New()
	p := newProject("A", "u1")
	is.NoErr(s.CreateProject(p))
	s.SetCurrent(p.ID)

	_, ok := s.Current()
	is.True(ok)

	s.DeleteProject(p.ID)
	_, ok = s.Current()
	is.True(!ok)
	is.Equal(len(s.Projects()), 0)
}

func TestCurrentTracksCanonical(t *testing.T) {
	is := is.New(t)
	s := New()
	p := newProject("A", "u1")
	is.NoErr(s.CreateProject(p))
	s.SetCurrent(p.ID)

	// A mutation targeting the selected project is visible through
	// Current without any separate bookkeeping.
	s.AddProjectMember(p.ID, "u9")
	cur, ok := s.Current()
	is.True(ok)
	is.True(cur.HasMember("u9"))
}

func TestMutationsOnUnknownProjectNoop(t *testing.T) {
	s := New()
	s.AddProjectMember("nope", "u1")
	s.RemoveProjectMember("nope", "u1")
	s.UpdateFrame("nope", proto.Frame{ID: "f"})
	s.AddMessage("nope", proto.Message{ID: "m"})
	s.DeleteProject("nope")
	if got := s.Projects(); len(got) != 0 {
		t.Errorf("projects => %d, want 0", len(got))
	}
}

func TestProjectsReturnsCopies(t *testing.T) {
	is := is.New(t)
	s := New()
	p := newProject("A", "u1")
	is.NoErr(s.CreateProject(p))

	got, _ := s.Project(p.ID)
	got.Members[0] = "tampered"
	got.Frames[0].Title = "tampered"

	fresh, _ := s.Project(p.ID)
	is.Equal(fresh.Members[0], "u1")
	is.Equal(fresh.Frames[0].Title, "Introduction")
}
