package store

import (
	"testing"

	"github.com/matryer/is"
	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

func TestLoginLogout(t *testing.T) {
	is := is.New(t)
	s := New()

	_, ok := s.User()
	is.True(!ok)

	u := proto.User{ID: "user_1", Email: "a@b.c", Name: "a", Role: access.RoleAdmin}
	s.Login(u)
	got, ok := s.User()
	is.True(ok)
	is.Equal(got, u)

	// Login replaces the session unconditionally.
	u2 := proto.User{ID: "user_2", Email: "x@y.z", Name: "x", Role: access.RoleParticipant}
	s.Login(u2)
	got, _ = s.User()
	is.Equal(got, u2)

	s.Logout()
	_, ok = s.User()
	is.True(!ok)
}

func TestSubscribe(t *testing.T) {
	is := is.New(t)
	s := New()

	var fired int
	cancel := s.Subscribe(func() { fired++ })
	s.Login(proto.User{ID: "u"})
	is.True(fired > 0)

	before := fired
	cancel()
	s.Logout()
	is.Equal(fired, before)
}
