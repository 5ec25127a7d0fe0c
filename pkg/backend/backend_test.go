package backend

import (
	"context"
	"errors"
	"testing"

	"github.com/matryer/is"
	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/config"
	"github.com/radiocarbon-hq/radiocarbon/pkg/internal/test"
	"github.com/radiocarbon-hq/radiocarbon/pkg/db/migrate"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
	"github.com/radiocarbon-hq/radiocarbon/pkg/store"
	"github.com/radiocarbon-hq/radiocarbon/pkg/token"
)

func testBackend(t *testing.T) (*Backend, context.Context) {
	t.Helper()
	ctx := context.TODO()

	cfg := config.DefaultConfig()
	cfg.DataPath = t.TempDir()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	dbx, err := test.OpenSqlite(ctx, t)
	if err != nil {
		t.Fatal(err)
	}
	if err := migrate.Migrate(ctx, dbx); err != nil {
		t.Fatal(err)
	}

	tokens, err := token.NewManager(cfg, &token.MemoryStorage{})
	if err != nil {
		t.Fatal(err)
	}

	b := New(ctx, cfg, dbx, store.New(), tokens)
	if err := b.Load(ctx); err != nil {
		t.Fatal(err)
	}

	return b, ctx
}

func login(t *testing.T, ctx context.Context, b *Backend) proto.User {
	t.Helper()
	user, err := b.Login(ctx, "admin@example.com", "admin")
	if err != nil {
		t.Fatal(err)
	}
	return user
}

func TestLoadSeedsDirectory(t *testing.T) {
	is := is.New(t)
	b, ctx := testBackend(t)

	members := b.Members(ctx)
	is.Equal(len(members), 4)
	is.Equal(members[0].ID, "user1")
	is.Equal(members[0].Role, access.RoleSuperAdmin)
	is.Equal(members[3].Status, proto.StatusOnline)

	// Loading again must not duplicate the seeds.
	is.NoErr(b.Load(ctx))
	is.Equal(len(b.Members(ctx)), 4)
}

func TestLoginLogout(t *testing.T) {
	is := is.New(t)
	b, ctx := testBackend(t)

	_, err := b.Login(ctx, "admin@example.com", "wrong")
	is.True(errors.Is(err, proto.ErrInvalidCredentials))

	user := login(t, ctx, b)
	is.Equal(user.Email, "admin@example.com")
	is.Equal(user.Role, access.RoleAdmin)

	got, ok := b.Store().User()
	is.True(ok)
	is.Equal(got, user)

	b.Logout(ctx)
	_, ok = b.Store().User()
	is.True(!ok)
}

func TestSessionRestoration(t *testing.T) {
	is := is.New(t)
	b, ctx := testBackend(t)

	_, ok := b.RestoreSession(ctx)
	is.True(!ok)

	user := login(t, ctx, b)

	// Drop the in-memory session and restore it from the token.
	b.store.Logout()
	got, ok := b.RestoreSession(ctx)
	is.True(ok)
	is.Equal(got, user)

	// Logout clears the token; nothing to restore afterwards.
	b.Logout(ctx)
	_, ok = b.RestoreSession(ctx)
	is.True(!ok)
}

func TestProjectRoundTrip(t *testing.T) {
	is := is.New(t)
	b, ctx := testBackend(t)
	user := login(t, ctx, b)

	p, err := b.CreateProject(ctx, "Apollo", "#3b82f6", "2026-01-01", "2026-06-30", 10)
	is.NoErr(err)
	is.Equal(p.Members, []string{user.ID})
	is.Equal(len(p.Frames), 1)

	b.AddProjectMember(ctx, p.ID, "user2")
	b.UpdateFrame(ctx, p.ID, proto.Frame{
		ID:          p.Frames[0].ID,
		Title:       "Introduction",
		Content:     "Hello.",
		Attachments: []string{"a.txt"},
	})
	msg, err := b.PostMessage(ctx, p.ID, "first!", nil)
	is.NoErr(err)

	// A fresh load must reproduce the in-memory state from the mirror.
	is.NoErr(b.Load(ctx))

	got, ok := b.Store().Project(p.ID)
	is.True(ok)
	is.Equal(got.Name, "Apollo")
	is.Equal(got.Members, []string{user.ID, "user2"})
	is.Equal(got.Frames[0].Content, "Hello.")
	is.Equal(got.Frames[0].Attachments, []string{"a.txt"})
	is.Equal(len(got.Messages), 1)
	is.Equal(got.Messages[0].ID, msg.ID)
	is.Equal(got.Messages[0].Content, "first!")
	is.Equal(got.Messages[0].UserID, user.ID)
}

func TestCreateProjectValidation(t *testing.T) {
	is := is.New(t)
	b, ctx := testBackend(t)

	_, err := b.CreateProject(ctx, "Apollo", "#3b82f6", "2026-01-01", "2026-06-30", 0)
	is.True(errors.Is(err, proto.ErrNoSession))

	login(t, ctx, b)
	_, err = b.CreateProject(ctx, "", "#3b82f6", "2026-01-01", "2026-06-30", 0)
	is.True(errors.Is(err, proto.ErrMissingField))
}

func TestDeleteProject(t *testing.T) {
	is := is.New(t)
	b, ctx := testBackend(t)
	login(t, ctx, b)

	p, err := b.CreateProject(ctx, "Apollo", "#3b82f6", "2026-01-01", "2026-06-30", 0)
	is.NoErr(err)

	b.DeleteProject(ctx, p.ID)
	is.NoErr(b.Load(ctx))
	is.Equal(len(b.Store().Projects()), 0)
}

func TestInviteMember(t *testing.T) {
	is := is.New(t)
	b, ctx := testBackend(t)
	login(t, ctx, b)

	m, added := b.InviteMember(ctx, "new@x.com", access.RoleAdmin)
	is.True(added)
	is.Equal(m.ID, "user_new_x_com")
	is.Equal(m.Name, "new")
	is.Equal(m.Status, proto.StatusOffline)

	// Duplicate email leaves the directory unchanged.
	again, added := b.InviteMember(ctx, "user2@example.com", access.RoleAdmin)
	is.True(!added)
	is.Equal(again.ID, "user2")

	is.NoErr(b.Load(ctx))
	is.Equal(len(b.Members(ctx)), 5)
}

func TestInviteToProject(t *testing.T) {
	is := is.New(t)
	b, ctx := testBackend(t)
	user := login(t, ctx, b)

	p, err := b.CreateProject(ctx, "Apollo", "#3b82f6", "2026-01-01", "2026-06-30", 0)
	is.NoErr(err)

	m := b.InviteToProject(ctx, p.ID, "new@x.com", access.RoleParticipant)

	is.NoErr(b.Load(ctx))
	got, ok := b.Store().Project(p.ID)
	is.True(ok)
	is.Equal(got.Members, []string{user.ID, m.ID})
}

func TestMemberCache(t *testing.T) {
	is := is.New(t)
	b, ctx := testBackend(t)

	m, ok := b.Member(ctx, "user2")
	is.True(ok)
	is.Equal(m.Email, "user2@example.com")

	// Cached entries are invalidated by directory mutations.
	b.SetStatus(ctx, "user2", proto.StatusOnline)
	m, ok = b.Member(ctx, "user2")
	is.True(ok)
	is.Equal(m.Status, proto.StatusOnline)

	_, ok = b.Member(ctx, "ghost")
	is.True(!ok)
}

func TestSetStatusPersists(t *testing.T) {
	is := is.New(t)
	b, ctx := testBackend(t)

	b.SetStatus(ctx, "user3", proto.StatusOnline)
	is.NoErr(b.Load(ctx))

	m, ok := b.Member(ctx, "user3")
	is.True(ok)
	is.Equal(m.Status, proto.StatusOnline)
}
