package backend

import (
	"context"

	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/db"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

// seedMembers is the directory seeded on first run.
var seedMembers = []proto.TeamMember{
	{ID: "user1", Name: "You", Email: "user1@example.com", Role: access.RoleSuperAdmin, Status: proto.StatusOnline},
	{ID: "user2", Name: "User user2", Email: "user2@example.com", Role: access.RoleAdmin, Status: proto.StatusOffline},
	{ID: "user3", Name: "User user3", Email: "user3@example.com", Role: access.RoleParticipant, Status: proto.StatusOffline},
	{ID: "user4", Name: "User user4", Email: "user4@example.com", Role: access.RoleParticipant, Status: proto.StatusOnline},
}

// Load rebuilds the in-memory state from the database, seeding the member
// directory on first run. It must be called before the view layer starts.
func (b *Backend) Load(ctx context.Context) error {
	if b.db == nil {
		b.store.Reset(seedMembers, nil)
		return nil
	}

	var (
		members  []proto.TeamMember
		projects []proto.Project
	)
	if err := b.db.TransactionContext(ctx, func(tx *db.Tx) error {
		count, err := countMembers(ctx, tx)
		if err != nil {
			return err
		}

		if count == 0 {
			b.logger.Debug("seeding member directory")
			for _, m := range seedMembers {
				if err := upsertMember(ctx, tx, m); err != nil {
					return err
				}
			}
		}

		members, err = selectMembers(ctx, tx)
		if err != nil {
			return err
		}

		projects, err = selectProjects(ctx, tx)
		return err
	}); err != nil {
		return db.WrapError(err)
	}

	b.cache.Purge()
	b.store.Reset(members, projects)

	return nil
}
