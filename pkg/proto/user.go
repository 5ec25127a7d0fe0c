// Package proto defines the domain types shared across the application.
package proto

import (
	"fmt"
	"strings"
	"time"

	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
)

// User is a session-scoped user. It is created at login and lives only for
// the lifetime of the session and its persisted token.
type User struct {
	ID    string      `json:"id"`
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  access.Role `json:"role"`
}

// NewUser synthesizes a session user for the given email and role. The id is
// derived from the current timestamp and the display name from the email's
// local part.
func NewUser(email string, role access.Role) User {
	return User{
		ID:    fmt.Sprintf("user_%d", time.Now().UnixMilli()),
		Email: email,
		Name:  LocalPart(email),
		Role:  role,
	}
}

// LocalPart returns the part of an email address before the '@'.
func LocalPart(email string) string {
	name, _, _ := strings.Cut(email, "@")
	return name
}
