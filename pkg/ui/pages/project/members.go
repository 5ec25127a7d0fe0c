package project

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/radiocarbon-hq/radiocarbon/pkg/proto"
	"github.com/radiocarbon-hq/radiocarbon/pkg/ui/common"
)

// membersPane shows the project roster with presence. The selection moves
// with the bracket keys so arrow keys stay with the other panes.
type membersPane struct {
	common    common.Common
	projectID string
	members   []proto.TeamMember
	index     int
}

func newMembersPane(c common.Common) *membersPane {
	return &membersPane{common: c}
}

func (m *membersPane) SetSize(width, height int) {
	m.common.SetSize(width, height)
}

func (m *membersPane) setRoster(projectID string, memberIDs []string) {
	m.projectID = projectID
	m.members = make([]proto.TeamMember, 0, len(memberIDs))
	for _, id := range memberIDs {
		member, ok := m.common.Backend().Member(m.common.Context(), id)
		if !ok {
			// Weak reference to someone no longer in the directory.
			member = proto.TeamMember{ID: id, Name: id}
		}
		m.members = append(m.members, member)
	}
	if m.index >= len(m.members) {
		m.index = 0
	}
}

func (m *membersPane) Init() tea.Cmd {
	return nil
}

func (m *membersPane) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if len(m.members) == 0 {
			return m, nil
		}
		switch msg.String() {
		case "[":
			m.index = (m.index - 1 + len(m.members)) % len(m.members)
		case "]":
			m.index = (m.index + 1) % len(m.members)
		case "backspace":
			selected := m.members[m.index]
			m.common.Backend().RemoveProjectMember(m.common.Context(), m.projectID, selected.ID)
			return m, refreshCmd
		}
	}
	return m, nil
}

func (m *membersPane) View() string {
	styles := m.common.Styles
	if len(m.members) == 0 {
		return styles.NoItems.Render("No members.")
	}

	chips := make([]string, 0, len(m.members))
	for i, member := range m.members {
		dot := styles.Offline.String()
		if member.Status == proto.StatusOnline {
			dot = styles.Online.String()
		}
		name := member.Name
		if i == m.index {
			name = styles.ItemActive.Underline(true).Render(name)
		}
		chips = append(chips, fmt.Sprintf("%s %s %s", dot, name,
			styles.ItemDetail.Render("("+member.Role.String()+")")))
	}

	label := styles.FormLabel.Render(fmt.Sprintf("Members (%d) ", len(m.members)))
	return common.TruncateString(label+strings.Join(chips, "  "), m.common.Width)
}
