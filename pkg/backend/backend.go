// Package backend ties the state container to durable persistence. Every
// mutation is applied in memory first and then mirrored to the database;
// a mirror failure is logged and never rolls back the in-memory change.
package backend

import (
	"context"

	"github.com/charmbracelet/log"
	"github.com/radiocarbon-hq/radiocarbon/pkg/config"
	"github.com/radiocarbon-hq/radiocarbon/pkg/db"
	"github.com/radiocarbon-hq/radiocarbon/pkg/store"
	"github.com/radiocarbon-hq/radiocarbon/pkg/token"
)

// Backend owns the application state and its database mirror.
type Backend struct {
	ctx    context.Context
	cfg    *config.Config
	db     *db.DB
	store  *store.Store
	tokens *token.Manager
	logger *log.Logger
	cache  *cache
}

// New returns a new backend around the given store and database. The token
// manager may be nil when session persistence is disabled.
func New(ctx context.Context, cfg *config.Config, database *db.DB, st *store.Store, tokens *token.Manager) *Backend {
	logger := log.FromContext(ctx).WithPrefix("backend")
	b := &Backend{
		ctx:    ctx,
		cfg:    cfg,
		db:     database,
		store:  st,
		tokens: tokens,
		logger: logger,
	}

	b.cache = newCache(b, 1000)

	return b
}

// Store returns the underlying state container.
func (b *Backend) Store() *store.Store {
	return b.store
}

// mirror runs fn against the database and logs a warning on failure. The
// in-memory state is authoritative; the database is an advisory mirror.
func (b *Backend) mirror(ctx context.Context, op string, fn func(tx *db.Tx) error) {
	if b.db == nil {
		return
	}

	if err := b.db.TransactionContext(ctx, fn); err != nil {
		b.logger.Warn("failed to mirror state", "op", op, "err", db.WrapError(err))
	}
}
