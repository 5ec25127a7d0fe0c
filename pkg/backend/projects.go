package backend

import (
	"context"

	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/db"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

// CreateProject creates a project owned by the current session user and
// returns it fully formed.
func (b *Backend) CreateProject(ctx context.Context, name, color, startDate, endDate string, participantCap int) (proto.Project, error) {
	user, ok := b.store.User()
	if !ok {
		return proto.Project{}, proto.ErrNoSession
	}

	p := proto.NewProject(name, color, startDate, endDate, participantCap, user.ID)
	if err := b.store.CreateProject(p); err != nil {
		return proto.Project{}, err
	}

	b.mirror(ctx, "create_project", func(tx *db.Tx) error {
		return replaceProject(ctx, tx, p)
	})

	b.logger.Info("project created", "project", p.ID, "name", p.Name)

	return p, nil
}

// UpdateProject replaces a project wholesale. Unknown ids are a no-op.
func (b *Backend) UpdateProject(ctx context.Context, p proto.Project) {
	b.store.UpdateProject(p)

	updated, ok := b.store.Project(p.ID)
	if !ok {
		return
	}

	b.mirror(ctx, "update_project", func(tx *db.Tx) error {
		return replaceProject(ctx, tx, updated)
	})
}

// DeleteProject removes a project and everything it owns.
func (b *Backend) DeleteProject(ctx context.Context, id string) {
	if _, ok := b.store.Project(id); !ok {
		return
	}

	b.store.DeleteProject(id)
	b.mirror(ctx, "delete_project", func(tx *db.Tx) error {
		return deleteProject(ctx, tx, id)
	})

	b.logger.Info("project deleted", "project", id)
}

// AddProjectMember puts a member on a project's roster. Adding a member
// already on the roster is a no-op.
func (b *Backend) AddProjectMember(ctx context.Context, projectID, memberID string) {
	b.store.AddProjectMember(projectID, memberID)
	b.mirrorProject(ctx, "add_project_member", projectID)
}

// RemoveProjectMember takes a member off a project's roster.
func (b *Backend) RemoveProjectMember(ctx context.Context, projectID, memberID string) {
	b.store.RemoveProjectMember(projectID, memberID)
	b.mirrorProject(ctx, "remove_project_member", projectID)
}

// InviteToProject invites an email address to a project: the member is
// added to the directory if missing, then to the project roster.
func (b *Backend) InviteToProject(ctx context.Context, projectID, email string, role access.Role) proto.TeamMember {
	m, _ := b.InviteMember(ctx, email, role)
	b.AddProjectMember(ctx, projectID, m.ID)
	return m
}

// UpdateFrame replaces an existing frame on a project. Unknown project or
// frame ids are a no-op; frames are never inserted this way.
func (b *Backend) UpdateFrame(ctx context.Context, projectID string, frame proto.Frame) {
	b.store.UpdateFrame(projectID, frame)
	b.mirrorProject(ctx, "update_frame", projectID)
}

// PostMessage appends a message authored by the session user to a project's
// discussion board.
func (b *Backend) PostMessage(ctx context.Context, projectID, content string, attachments []string) (proto.Message, error) {
	user, ok := b.store.User()
	if !ok {
		return proto.Message{}, proto.ErrNoSession
	}

	msg := proto.NewMessage(user, content, attachments)
	b.store.AddMessage(projectID, msg)
	b.mirrorProject(ctx, "post_message", projectID)

	return msg, nil
}

func (b *Backend) mirrorProject(ctx context.Context, op, projectID string) {
	p, ok := b.store.Project(projectID)
	if !ok {
		return
	}

	b.mirror(ctx, op, func(tx *db.Tx) error {
		return replaceProject(ctx, tx, p)
	})
}
