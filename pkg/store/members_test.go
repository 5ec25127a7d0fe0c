package store

import (
	"testing"

	"github.com/matryer/is"
	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

func seedDirectory(s *Store) {
	s.AddMember(proto.TeamMember{ID: "user2", Name: "User user2", Email: "user2@example.com", Role: access.RoleAdmin, Status: proto.StatusOffline})
}

func TestAddMemberByEmailDuplicate(t *testing.T) {
	is := is.New(t)
	s := New()
	seedDirectory(s)

	m, added := s.AddMemberByEmail("user2@example.com", access.RoleAdmin)
	is.True(!added)
	is.Equal(m.ID, "user2")
	is.Equal(len(s.Members()), 1)
}

func TestAddMemberByEmailSynthesis(t *testing.T) {
	is := is.New(t)
	s := New()
	seedDirectory(s)

	m, added := s.AddMemberByEmail("new@x.com", access.RoleAdmin)
	is.True(added)
	is.Equal(len(s.Members()), 2)
	is.Equal(m.ID, "user_new_x_com")
	is.Equal(m.Name, "new")
	is.Equal(m.Role, access.RoleAdmin)
	is.Equal(m.Status, proto.StatusOffline)
}

func TestAddMemberByEmailNeverSuperAdmin(t *testing.T) {
	is := is.New(t)
	s := New()
	m, _ := s.AddMemberByEmail("boss@x.com", access.RoleSuperAdmin)
	is.Equal(m.Role, access.RoleParticipant)
}

func TestUpdateStatus(t *testing.T) {
	is := is.New(t)
	s := New()
	seedDirectory(s)

	s.UpdateStatus("user2", proto.StatusOnline)
	m, ok := s.Member("user2")
	is.True(ok)
	is.Equal(m.Status, proto.StatusOnline)

	// Unknown ids are ignored.
	s.UpdateStatus("ghost", proto.StatusOnline)
	is.Equal(len(s.Members()), 1)
}

func TestMemberID(t *testing.T) {
	cases := []struct {
		in  string
		out string
	}{
		{"new@x.com", "user_new_x_com"},
		{"First.Last@Example.COM", "user_first_last_example_com"},
		{"a+b@c.io", "user_a_b_c_io"},
	}
	for _, c := range cases {
		if got := proto.MemberID(c.in); got != c.out {
			t.Errorf("MemberID(%q) => %q, want %q", c.in, got, c.out)
		}
	}
}
