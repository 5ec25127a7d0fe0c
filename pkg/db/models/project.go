package models

import (
	"time"
)

// Project represents a project row. Frames, messages, and the member list
// live in their own tables.
type Project struct {
	ID             string    `db:"id"`
	Name           string    `db:"name"`
	Color          string    `db:"color"`
	StartDate      string    `db:"start_date"`
	EndDate        string    `db:"end_date"`
	ParticipantCap int       `db:"participant_cap"`
	CreatedBy      string    `db:"created_by"`
	CreatedAt      time.Time `db:"created_at"`
	UpdatedAt      time.Time `db:"updated_at"`
}

// ProjectMember represents project membership, ordered by first insertion.
type ProjectMember struct {
	ID        int64     `db:"id"`
	ProjectID string    `db:"project_id"`
	MemberID  string    `db:"member_id"`
	Position  int       `db:"position"`
	CreatedAt time.Time `db:"created_at"`
}
