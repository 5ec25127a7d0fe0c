package models

import (
	"time"

	"github.com/radiocarbon-hq/radiocarbon/pkg/db/types"
)

// Frame represents a content frame owned by a project.
type Frame struct {
	ID          string            `db:"id"`
	ProjectID   string            `db:"project_id"`
	Title       string            `db:"title"`
	Content     string            `db:"content"`
	Attachments types.StringSlice `db:"attachments"`
	Discussion  string            `db:"discussion"`
	Position    int               `db:"position"`
	CreatedAt   time.Time         `db:"created_at"`
	UpdatedAt   time.Time         `db:"updated_at"`
}
