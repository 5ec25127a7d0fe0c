package token

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

// Storage persists a session token between runs.
type Storage interface {
	// Read returns the stored token. It returns proto.ErrNoSession when no
	// token is stored.
	Read() (string, error)

	// Write stores the token, replacing any previous one.
	Write(token string) error

	// Clear removes the stored token. Clearing an empty storage is not an
	// error.
	Clear() error
}

// FileStorage stores the session token in a single file.
type FileStorage struct {
	path string
}

var _ Storage = (*FileStorage)(nil)

// NewFileStorage creates a token storage backed by the file at path.
func NewFileStorage(path string) *FileStorage {
	return &FileStorage{path: path}
}

// Read implements Storage.
func (s *FileStorage) Read() (string, error) {
	b, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return "", proto.ErrNoSession
	}
	if err != nil {
		return "", err
	}

	bearer := strings.TrimSpace(string(b))
	if bearer == "" {
		return "", proto.ErrNoSession
	}

	return bearer, nil
}

// Write implements Storage.
func (s *FileStorage) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), os.ModePerm); err != nil {
		return err
	}

	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear implements Storage.
func (s *FileStorage) Clear() error {
	err := os.Remove(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}

	return err
}

// MemoryStorage keeps the session token in memory. It is used by tests and
// when durable sessions are disabled.
type MemoryStorage struct {
	token string
}

var _ Storage = (*MemoryStorage)(nil)

// Read implements Storage.
func (s *MemoryStorage) Read() (string, error) {
	if s.token == "" {
		return "", proto.ErrNoSession
	}

	return s.token, nil
}

// Write implements Storage.
func (s *MemoryStorage) Write(token string) error {
	s.token = token
	return nil
}

// Clear implements Storage.
func (s *MemoryStorage) Clear() error {
	s.token = ""
	return nil
}
