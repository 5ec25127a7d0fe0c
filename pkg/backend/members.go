package backend

import (
	"context"

	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/db"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

// Members returns the member directory in insertion order.
func (b *Backend) Members(ctx context.Context) []proto.TeamMember {
	return b.store.Members()
}

// Member resolves a member id, consulting the lookup cache first.
func (b *Backend) Member(ctx context.Context, id string) (proto.TeamMember, bool) {
	if m, ok := b.cache.Get(id); ok {
		return m, true
	}

	m, ok := b.store.Member(id)
	if ok {
		b.cache.Set(id, m)
	}

	return m, ok
}

// AddMember adds a fully-formed member to the directory. Ids are not
// deduplicated; callers synthesizing members from emails should use
// InviteMember instead.
func (b *Backend) AddMember(ctx context.Context, m proto.TeamMember) {
	b.store.AddMember(m)
	b.cache.Purge()
	b.mirror(ctx, "add_member", func(tx *db.Tx) error {
		return upsertMember(ctx, tx, m)
	})
}

// InviteMember adds a member synthesized from an email address. When the
// address is already in the directory the existing entry is returned
// unchanged and no mutation happens.
func (b *Backend) InviteMember(ctx context.Context, email string, role access.Role) (proto.TeamMember, bool) {
	m, added := b.store.AddMemberByEmail(email, role)
	if !added {
		return m, false
	}

	b.cache.Purge()
	b.mirror(ctx, "invite_member", func(tx *db.Tx) error {
		return upsertMember(ctx, tx, m)
	})

	return m, true
}

// SetStatus updates a member's presence status. Unknown ids are a no-op.
func (b *Backend) SetStatus(ctx context.Context, memberID string, status proto.Status) {
	b.store.UpdateStatus(memberID, status)
	b.cache.Purge()

	m, ok := b.store.Member(memberID)
	if !ok {
		return
	}

	b.mirror(ctx, "set_status", func(tx *db.Tx) error {
		return upsertMember(ctx, tx, m)
	})
}
