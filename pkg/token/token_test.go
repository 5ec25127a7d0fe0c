package token

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/matryer/is"
	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/config"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := config.DefaultConfig()
	cfg.DataPath = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
	return cfg
}

func TestEncodeDecode(t *testing.T) {
	is := is.New(t)
	m, err := NewManager(testConfig(t), nil)
	is.NoErr(err)

	user := proto.User{ID: "user_1", Email: "admin@example.com", Name: "admin", Role: access.RoleAdmin}
	bearer, err := m.Encode(user)
	is.NoErr(err)

	got, err := m.Decode(bearer)
	is.NoErr(err)
	is.Equal(got, user)
}

func TestDecodeGarbage(t *testing.T) {
	is := is.New(t)
	m, err := NewManager(testConfig(t), nil)
	is.NoErr(err)

	for _, bearer := range []string{"", "not-a-token", "a.b.c"} {
		_, err := m.Decode(bearer)
		is.True(errors.Is(err, ErrInvalidToken))
	}
}

func TestDecodeForeignToken(t *testing.T) {
	is := is.New(t)

	// Tokens signed by one key pair must not verify against another.
	m1, err := NewManager(testConfig(t), nil)
	is.NoErr(err)
	m2, err := NewManager(testConfig(t), nil)
	is.NoErr(err)

	bearer, err := m1.Encode(proto.User{ID: "user_1", Email: "user@example.com"})
	is.NoErr(err)

	_, err = m2.Decode(bearer)
	is.True(errors.Is(err, ErrInvalidToken))
}

func TestSaveRestoreClear(t *testing.T) {
	is := is.New(t)
	m, err := NewManager(testConfig(t), &MemoryStorage{})
	is.NoErr(err)

	_, err = m.Restore()
	is.True(errors.Is(err, proto.ErrNoSession))

	user := proto.User{ID: "user_2", Email: "user@example.com", Name: "user", Role: access.RoleParticipant}
	is.NoErr(m.Save(user))

	got, err := m.Restore()
	is.NoErr(err)
	is.Equal(got, user)

	is.NoErr(m.Clear())
	_, err = m.Restore()
	is.True(errors.Is(err, proto.ErrNoSession))
}

func TestRestoreDropsTamperedToken(t *testing.T) {
	is := is.New(t)
	storage := &MemoryStorage{}
	m, err := NewManager(testConfig(t), storage)
	is.NoErr(err)

	is.NoErr(storage.Write("tampered"))
	_, err = m.Restore()
	is.True(errors.Is(err, proto.ErrNoSession))

	// The broken token is cleared so it is not retried.
	_, err = storage.Read()
	is.True(errors.Is(err, proto.ErrNoSession))
}

func TestFileStorage(t *testing.T) {
	is := is.New(t)
	storage := NewFileStorage(filepath.Join(t.TempDir(), "session"))

	_, err := storage.Read()
	is.True(errors.Is(err, proto.ErrNoSession))
	is.NoErr(storage.Clear())

	is.NoErr(storage.Write("bearer"))
	got, err := storage.Read()
	is.NoErr(err)
	is.Equal(got, "bearer")

	is.NoErr(storage.Clear())
	_, err = storage.Read()
	is.True(errors.Is(err, proto.ErrNoSession))
}
