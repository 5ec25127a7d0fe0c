package proto

import (
	"encoding"
	"errors"
	"strings"

	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
)

// Status is a team member's presence status.
type Status int

const (
	// StatusOffline marks a member as offline.
	StatusOffline Status = iota

	// StatusOnline marks a member as online.
	StatusOnline
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusOnline:
		return "online"
	case StatusOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// ParseStatus parses a presence status string. It returns -1 for unknown
// statuses.
func ParseStatus(s string) Status {
	switch s {
	case "online":
		return StatusOnline
	case "offline":
		return StatusOffline
	default:
		return Status(-1)
	}
}

var (
	_ encoding.TextMarshaler   = Status(0)
	_ encoding.TextUnmarshaler = (*Status)(nil)
)

// ErrInvalidStatus is returned when an invalid status is provided.
var ErrInvalidStatus = errors.New("invalid status")

// UnmarshalText implements encoding.TextUnmarshaler.
func (s *Status) UnmarshalText(text []byte) error {
	v := ParseStatus(string(text))
	if v < 0 {
		return ErrInvalidStatus
	}

	*s = v

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (s Status) MarshalText() (text []byte, err error) {
	return []byte(s.String()), nil
}

// TeamMember is an entry in the global member directory. Membership is not
// scoped to any project; a member can belong to zero or many projects.
type TeamMember struct {
	ID     string      `json:"id"`
	Name   string      `json:"name"`
	Email  string      `json:"email"`
	Role   access.Role `json:"role"`
	Status Status      `json:"status"`
}

// NewTeamMemberByEmail synthesizes a directory entry from an email address.
// The id is derived deterministically from the lowercased address, the name
// from its local part, and the role is coerced to one assignable through an
// invitation. New members start offline.
func NewTeamMemberByEmail(email string, role access.Role) TeamMember {
	return TeamMember{
		ID:     MemberID(email),
		Name:   LocalPart(email),
		Email:  email,
		Role:   access.Invitable(role),
		Status: StatusOffline,
	}
}

// MemberID derives a member id from an email address by lowercasing it and
// replacing every non-alphanumeric character with an underscore.
func MemberID(email string) string {
	var b strings.Builder
	b.WriteString("user_")
	for _, r := range strings.ToLower(email) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		} else {
			b.WriteByte('_')
		}
	}
	return b.String()
}
