package backend

import (
	"context"
	"errors"

	"github.com/radiocarbon-hq/radiocarbon/pkg/auth"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

// Login authenticates against the credential table and opens a session. On
// success the session token is written to storage so it survives restarts.
func (b *Backend) Login(ctx context.Context, email, password string) (proto.User, error) {
	user, err := auth.Authenticate(b.cfg.Auth.Credentials, email, password)
	if err != nil {
		return proto.User{}, err
	}

	b.store.Login(user)
	if b.tokens != nil {
		if err := b.tokens.Save(user); err != nil {
			b.logger.Warn("failed to save session token", "err", err)
		}
	}

	b.logger.Info("session opened", "user", user.ID, "email", user.Email)

	return user, nil
}

// Logout closes the session and removes the stored token.
func (b *Backend) Logout(ctx context.Context) {
	b.store.Logout()
	if b.tokens != nil {
		if err := b.tokens.Clear(); err != nil {
			b.logger.Warn("failed to clear session token", "err", err)
		}
	}

	b.logger.Info("session closed")
}

// RestoreSession reopens the session recorded in token storage, if any. It
// is a no-op when a session is already open or no valid token is stored.
func (b *Backend) RestoreSession(ctx context.Context) (proto.User, bool) {
	if user, ok := b.store.User(); ok {
		return user, true
	}

	if b.tokens == nil {
		return proto.User{}, false
	}

	user, err := b.tokens.Restore()
	if err != nil {
		if !errors.Is(err, proto.ErrNoSession) {
			b.logger.Warn("failed to restore session", "err", err)
		}
		return proto.User{}, false
	}

	b.store.Login(user)
	b.logger.Info("session restored", "user", user.ID, "email", user.Email)

	return user, true
}
