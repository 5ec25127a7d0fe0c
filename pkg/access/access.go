// Package access defines the roles a user or team member can hold.
package access

import (
	"encoding"
	"errors"
)

// Role is the level of access a user holds in the workspace.
type Role int

const (
	// RoleParticipant allows joining projects and posting to discussions.
	RoleParticipant Role = iota

	// RoleAdmin additionally allows managing projects and inviting members.
	RoleAdmin

	// RoleSuperAdmin allows everything, including managing other admins.
	RoleSuperAdmin
)

// String returns the string representation of the role.
func (r Role) String() string {
	switch r {
	case RoleParticipant:
		return "participant"
	case RoleAdmin:
		return "admin"
	case RoleSuperAdmin:
		return "super-admin"
	default:
		return "unknown"
	}
}

// ParseRole parses a role string. It returns -1 for unknown roles.
func ParseRole(s string) Role {
	switch s {
	case "participant":
		return RoleParticipant
	case "admin":
		return RoleAdmin
	case "super-admin":
		return RoleSuperAdmin
	default:
		return Role(-1)
	}
}

var (
	_ encoding.TextMarshaler   = Role(0)
	_ encoding.TextUnmarshaler = (*Role)(nil)
)

// ErrInvalidRole is returned when an invalid role is provided.
var ErrInvalidRole = errors.New("invalid role")

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Role) UnmarshalText(text []byte) error {
	l := ParseRole(string(text))
	if l < 0 {
		return ErrInvalidRole
	}

	*r = l

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (r Role) MarshalText() (text []byte, err error) {
	return []byte(r.String()), nil
}

// Invitable coerces a role to one that can be handed out through an
// invitation. Only admin and participant are assignable this way, anything
// else falls back to participant.
func Invitable(r Role) Role {
	if r == RoleAdmin {
		return RoleAdmin
	}
	return RoleParticipant
}
