// Package auth implements the login boundary: a fixed credential table
// checked entirely on the client side.
package auth

import (
	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
	"golang.org/x/crypto/bcrypt"
)

const saltySalt = "salty-radiocarbon"

// Credential is one entry of the login credential table.
type Credential struct {
	// Email is the login email address.
	Email string `yaml:"email"`

	// PasswordHash is the bcrypt hash of the password.
	PasswordHash string `yaml:"password_hash"`

	// Role is the role granted on login.
	Role string `yaml:"role"`
}

// HashPassword hashes the password using bcrypt.
func HashPassword(password string) (string, error) {
	crypt, err := bcrypt.GenerateFromPassword([]byte(password+saltySalt), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}

	return string(crypt), nil
}

// VerifyPassword verifies the password against the hash.
func VerifyPassword(password, hash string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password+saltySalt))
	return err == nil
}

// DefaultCredentials returns the demo credential table: one account per
// role, each with the password equal to the email's local part.
func DefaultCredentials() []Credential {
	creds := make([]Credential, 0, 3)
	for _, c := range []struct {
		email string
		role  access.Role
	}{
		{"superadmin@example.com", access.RoleSuperAdmin},
		{"admin@example.com", access.RoleAdmin},
		{"user@example.com", access.RoleParticipant},
	} {
		hash, err := HashPassword(proto.LocalPart(c.email))
		if err != nil {
			// bcrypt only fails on oversized input, which the demo
			// passwords are not.
			panic(err)
		}
		creds = append(creds, Credential{
			Email:        c.email,
			PasswordHash: hash,
			Role:         c.role.String(),
		})
	}
	return creds
}

// Authenticate checks email and password against the credential table and on
// success synthesizes a session user. Failure returns
// proto.ErrInvalidCredentials.
func Authenticate(creds []Credential, email, password string) (proto.User, error) {
	for _, c := range creds {
		if c.Email != email {
			continue
		}
		if !VerifyPassword(password, c.PasswordHash) {
			break
		}
		role := access.ParseRole(c.Role)
		if role < 0 {
			role = access.RoleParticipant
		}
		return proto.NewUser(email, role), nil
	}
	return proto.User{}, proto.ErrInvalidCredentials
}
