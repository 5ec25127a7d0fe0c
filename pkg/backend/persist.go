package backend

import (
	"context"
	"time"

	"github.com/radiocarbon-hq/radiocarbon/pkg/access"
	"github.com/radiocarbon-hq/radiocarbon/pkg/db"
	"github.com/radiocarbon-hq/radiocarbon/pkg/db/models"
	"github.com/radiocarbon-hq/radiocarbon/pkg/db/types"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
)

func upsertMember(ctx context.Context, tx *db.Tx, m proto.TeamMember) error {
	query := tx.Rebind(`INSERT INTO members (id, name, email, role, status, updated_at)
			VALUES (?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (id) DO UPDATE SET
				name = excluded.name,
				email = excluded.email,
				role = excluded.role,
				status = excluded.status,
				updated_at = CURRENT_TIMESTAMP;`)
	_, err := tx.ExecContext(ctx, query, m.ID, m.Name, m.Email, m.Role.String(), m.Status.String())
	return err
}

func replaceProject(ctx context.Context, tx *db.Tx, p proto.Project) error {
	query := tx.Rebind(`INSERT INTO projects (id, name, color, start_date, end_date, participant_cap, created_by, updated_at)
			VALUES (?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
			ON CONFLICT (id) DO UPDATE SET
				name = excluded.name,
				color = excluded.color,
				start_date = excluded.start_date,
				end_date = excluded.end_date,
				participant_cap = excluded.participant_cap,
				created_by = excluded.created_by,
				updated_at = CURRENT_TIMESTAMP;`)
	if _, err := tx.ExecContext(ctx, query,
		p.ID, p.Name, p.Color, p.StartDate, p.EndDate, p.ParticipantCap, p.CreatedBy); err != nil {
		return err
	}

	// Child rows are replaced wholesale so their positions always match the
	// in-memory order.
	for _, table := range []string{"project_members", "frames", "messages"} {
		if _, err := tx.ExecContext(ctx,
			tx.Rebind(`DELETE FROM `+table+` WHERE project_id = ?;`), p.ID); err != nil {
			return err
		}
	}

	for i, id := range p.Members {
		if _, err := tx.ExecContext(ctx,
			tx.Rebind(`INSERT INTO project_members (project_id, member_id, position)
				VALUES (?, ?, ?);`),
			p.ID, id, i); err != nil {
			return err
		}
	}

	for i, f := range p.Frames {
		if _, err := tx.ExecContext(ctx,
			tx.Rebind(`INSERT INTO frames (id, project_id, title, content, attachments, discussion, position)
				VALUES (?, ?, ?, ?, ?, ?, ?);`),
			f.ID, p.ID, f.Title, f.Content, types.StringSlice(f.Attachments), f.Discussion, i); err != nil {
			return err
		}
	}

	for i, m := range p.Messages {
		if _, err := tx.ExecContext(ctx,
			tx.Rebind(`INSERT INTO messages (id, project_id, user_id, user_name, user_email, content, timestamp, attachments, position)
				VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?);`),
			m.ID, p.ID, m.UserID, m.UserName, m.UserEmail, m.Content, m.Timestamp, types.StringSlice(m.Attachments), i); err != nil {
			return err
		}
	}

	return nil
}

func deleteProject(ctx context.Context, tx *db.Tx, id string) error {
	// Child rows are removed explicitly so deletion does not depend on
	// foreign key enforcement being enabled.
	for _, table := range []string{"messages", "frames", "project_members"} {
		if _, err := tx.ExecContext(ctx,
			tx.Rebind(`DELETE FROM `+table+` WHERE project_id = ?;`), id); err != nil {
			return err
		}
	}

	_, err := tx.ExecContext(ctx, tx.Rebind(`DELETE FROM projects WHERE id = ?;`), id)
	return err
}

func countMembers(ctx context.Context, tx *db.Tx) (int64, error) {
	var count int64
	err := tx.GetContext(ctx, &count, `SELECT COUNT(*) FROM members;`)
	return count, err
}

func selectMembers(ctx context.Context, tx *db.Tx) ([]proto.TeamMember, error) {
	var rows []models.Member
	if err := tx.SelectContext(ctx, &rows,
		`SELECT * FROM members ORDER BY created_at, id;`); err != nil {
		return nil, err
	}

	members := make([]proto.TeamMember, 0, len(rows))
	for _, r := range rows {
		role := access.ParseRole(r.Role)
		if role == access.Role(-1) {
			role = access.RoleParticipant
		}
		members = append(members, proto.TeamMember{
			ID:     r.ID,
			Name:   r.Name,
			Email:  r.Email,
			Role:   role,
			Status: proto.ParseStatus(r.Status),
		})
	}

	return members, nil
}

func selectProjects(ctx context.Context, tx *db.Tx) ([]proto.Project, error) {
	var rows []models.Project
	if err := tx.SelectContext(ctx, &rows,
		`SELECT * FROM projects ORDER BY created_at, id;`); err != nil {
		return nil, err
	}

	projects := make([]proto.Project, 0, len(rows))
	for _, r := range rows {
		p := proto.Project{
			ID:             r.ID,
			Name:           r.Name,
			Color:          r.Color,
			StartDate:      r.StartDate,
			EndDate:        r.EndDate,
			ParticipantCap: r.ParticipantCap,
			CreatedBy:      r.CreatedBy,
			Members:        []string{},
			Frames:         []proto.Frame{},
			Messages:       []proto.Message{},
		}

		var memberRows []models.ProjectMember
		if err := tx.SelectContext(ctx, &memberRows,
			tx.Rebind(`SELECT * FROM project_members WHERE project_id = ? ORDER BY position;`),
			r.ID); err != nil {
			return nil, err
		}
		for _, m := range memberRows {
			p.Members = append(p.Members, m.MemberID)
		}

		var frameRows []models.Frame
		if err := tx.SelectContext(ctx, &frameRows,
			tx.Rebind(`SELECT * FROM frames WHERE project_id = ? ORDER BY position;`),
			r.ID); err != nil {
			return nil, err
		}
		for _, f := range frameRows {
			p.Frames = append(p.Frames, proto.Frame{
				ID:          f.ID,
				Title:       f.Title,
				Content:     f.Content,
				Attachments: []string(f.Attachments),
				Discussion:  f.Discussion,
			})
		}

		var messageRows []models.Message
		if err := tx.SelectContext(ctx, &messageRows,
			tx.Rebind(`SELECT * FROM messages WHERE project_id = ? ORDER BY position;`),
			r.ID); err != nil {
			return nil, err
		}
		for _, m := range messageRows {
			p.Messages = append(p.Messages, proto.Message{
				ID:          m.ID,
				UserID:      m.UserID,
				UserName:    m.UserName,
				UserEmail:   m.UserEmail,
				Content:     m.Content,
				Timestamp:   m.Timestamp.In(time.Local),
				Attachments: []string(m.Attachments),
			})
		}

		projects = append(projects, p)
	}

	return projects, nil
}
