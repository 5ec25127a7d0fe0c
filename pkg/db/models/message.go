package models

import (
	"time"

	"github.com/radiocarbon-hq/radiocarbon/pkg/db/types"
)

// Message represents a discussion board message. Messages are append-only;
// position preserves arrival order.
type Message struct {
	ID          string            `db:"id"`
	ProjectID   string            `db:"project_id"`
	UserID      string            `db:"user_id"`
	UserName    string            `db:"user_name"`
	UserEmail   string            `db:"user_email"`
	Content     string            `db:"content"`
	Timestamp   time.Time         `db:"timestamp"`
	Attachments types.StringSlice `db:"attachments"`
	Position    int               `db:"position"`
}
