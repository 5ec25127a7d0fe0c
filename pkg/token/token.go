// Package token issues and verifies signed session tokens.
package token

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/config"
	"github.com/radiocarbon-hq/radiocarbon/pkg/jwk"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

// ErrInvalidToken is returned when a token is invalid.
var ErrInvalidToken = errors.New("invalid token")

// Expiry is how long a session token remains valid.
const Expiry = 30 * 24 * time.Hour

type claims struct {
	Email string      `json:"email"`
	Name  string      `json:"name"`
	Role  access.Role `json:"role"`
	jwt.RegisteredClaims
}

// Manager signs and verifies session tokens using an Ed25519 key pair.
type Manager struct {
	kp      jwk.Pair
	issuer  string
	storage Storage
}

// NewManager creates a new token manager. The storage may be nil, in which
// case Save, Restore, and Clear are no-ops.
func NewManager(cfg *config.Config, storage Storage) (*Manager, error) {
	kp, err := jwk.NewPair(cfg)
	if err != nil {
		return nil, err
	}

	return &Manager{kp: kp, issuer: cfg.Name, storage: storage}, nil
}

// Encode signs a session token for the given user.
func (m *Manager) Encode(user proto.User) (string, error) {
	now := time.Now()
	c := claims{
		Email: user.Email,
		Name:  user.Name,
		Role:  user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(now.Add(Expiry)),
			NotBefore: jwt.NewNumericDate(now),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    m.issuer,
		},
	}

	token := jwt.NewWithClaims(jwk.SigningMethod, c)
	token.Header["kid"] = m.kp.JWK().KeyID
	return token.SignedString(m.kp.PrivateKey())
}

// Decode verifies a session token and returns the user it was issued to.
func (m *Manager) Decode(bearer string) (proto.User, error) {
	token, err := jwt.ParseWithClaims(bearer, &claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodEd25519); !ok {
			return nil, errors.New("invalid signing method")
		}

		return m.kp.PublicKey(), nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithIssuedAt(),
	)
	if err != nil {
		return proto.User{}, ErrInvalidToken
	}

	c, ok := token.Claims.(*claims)
	if !token.Valid || !ok || c.Subject == "" {
		return proto.User{}, ErrInvalidToken
	}

	return proto.User{
		ID:    c.Subject,
		Email: c.Email,
		Name:  c.Name,
		Role:  c.Role,
	}, nil
}

// Save signs a token for the user and writes it to storage.
func (m *Manager) Save(user proto.User) error {
	if m.storage == nil {
		return nil
	}

	bearer, err := m.Encode(user)
	if err != nil {
		return err
	}

	return m.storage.Write(bearer)
}

// Restore reads the stored token, verifies it, and returns the user. It
// returns proto.ErrNoSession when no valid token is stored.
func (m *Manager) Restore() (proto.User, error) {
	if m.storage == nil {
		return proto.User{}, proto.ErrNoSession
	}

	bearer, err := m.storage.Read()
	if err != nil {
		return proto.User{}, err
	}

	user, err := m.Decode(bearer)
	if err != nil {
		// A stale or tampered token is the same as no session.
		_ = m.storage.Clear()
		return proto.User{}, proto.ErrNoSession
	}

	return user, nil
}

// Clear removes the stored token.
func (m *Manager) Clear() error {
	if m.storage == nil {
		return nil
	}

	return m.storage.Clear()
}
