package auth

import (
	"errors"
	"strings"
	"testing"

	"github.com/matryer/is"
	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

func TestAuthenticate(t *testing.T) {
	is := is.New(t)
	creds := DefaultCredentials()

	u, err := Authenticate(creds, "admin@example.com", "admin")
	is.NoErr(err)
	is.Equal(u.Email, "admin@example.com")
	is.Equal(u.Name, "admin")
	is.Equal(u.Role, access.RoleAdmin)
	is.True(strings.HasPrefix(u.ID, "user_"))
}

func TestAuthenticateFailures(t *testing.T) {
	creds := DefaultCredentials()
	cases := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", "admin@example.com", "nope"},
		{"unknown email", "ghost@example.com", "admin"},
		{"empty", "", ""},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Authenticate(creds, c.email, c.password)
			if !errors.Is(err, proto.ErrInvalidCredentials) {
				t.Errorf("Authenticate(%q, %q) => %v, want ErrInvalidCredentials", c.email, c.password, err)
			}
		})
	}
}

func TestVerifyPassword(t *testing.T) {
	is := is.New(t)
	hash, err := HashPassword("hunter2")
	is.NoErr(err)
	is.True(VerifyPassword("hunter2", hash))
	is.True(!VerifyPassword("hunter3", hash))
}
