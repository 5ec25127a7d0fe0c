package proto

import (
	"errors"
)

var (
	// ErrInvalidCredentials is returned when login fails.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrProjectNotFound is returned when a project is not found.
	ErrProjectNotFound = errors.New("project not found")
	// ErrMemberNotFound is returned when a directory member is not found.
	ErrMemberNotFound = errors.New("member not found")
	// ErrMemberExist is returned when a directory member already exists.
	ErrMemberExist = errors.New("member already exists")
	// ErrMissingField is returned when a required field is missing.
	ErrMissingField = errors.New("missing required field")
	// ErrNoSession is returned when no session is established.
	ErrNoSession = errors.New("no session")
)
