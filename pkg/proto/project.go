package proto

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Project is a collaboration space. It exclusively owns its frames and
// messages; member ids are weak references into the directory.
type Project struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Color          string    `json:"color"`
	StartDate      string    `json:"startDate"`
	EndDate        string    `json:"endDate"`
	ParticipantCap int       `json:"participantCap"`
	Members        []string  `json:"members"`
	CreatedBy      string    `json:"createdBy"`
	Frames         []Frame   `json:"frames"`
	Messages       []Message `json:"messages"`
}

// Frame is a named, editable content block within a project.
type Frame struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Attachments []string `json:"attachments"`
	Discussion  string   `json:"discussion"`
}

// Message is a discussion board entry. Messages are immutable once appended
// and ordered by insertion.
type Message struct {
	ID          string    `json:"id"`
	UserID      string    `json:"userId"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
	Attachments []string  `json:"attachments"`
}

// NewProject builds a fully-formed project for the given creator. The member
// list is seeded with the creator's id and the frame list with a single
// introduction frame.
func NewProject(name, color, startDate, endDate string, participantCap int, createdBy string) Project {
	return Project{
		ID:             "project_" + uuid.NewString(),
		Name:           name,
		Color:          color,
		StartDate:      startDate,
		EndDate:        endDate,
		ParticipantCap: participantCap,
		Members:        []string{createdBy},
		CreatedBy:      createdBy,
		Frames: []Frame{
			{
				ID:          "frame_" + uuid.NewString(),
				Title:       "Introduction",
				Content:     fmt.Sprintf("Welcome to our %s project.", name),
				Attachments: []string{},
				Discussion:  "",
			},
		},
		Messages: []Message{},
	}
}

// NewMessage builds a discussion message authored by the given user,
// timestamped now.
func NewMessage(author User, content string, attachments []string) Message {
	if attachments == nil {
		attachments = []string{}
	}
	return Message{
		ID:          "msg_" + uuid.NewString(),
		UserID:      author.ID,
		UserName:    author.Name,
		UserEmail:   author.Email,
		Content:     content,
		Timestamp:   time.Now(),
		Attachments: attachments,
	}
}

// Validate reports whether the project carries the fields required at
// creation time.
func (p Project) Validate() error {
	switch {
	case p.Name == "":
		return fmt.Errorf("%w: name", ErrMissingField)
	case p.StartDate == "":
		return fmt.Errorf("%w: start date", ErrMissingField)
	case p.EndDate == "":
		return fmt.Errorf("%w: end date", ErrMissingField)
	}
	return nil
}

// HasMember reports whether the given member id is on the project.
func (p Project) HasMember(id string) bool {
	for _, m := range p.Members {
		if m == id {
			return true
		}
	}
	return false
}
